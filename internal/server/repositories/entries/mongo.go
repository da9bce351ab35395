package entries

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the Mongo collection holding entry documents.
const CollectionName = "entries"

// MongoRepository implements Repository over a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository constructs a repository bound to the entries collection
// of the given database.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(CollectionName)}
}

var sortNewestFirst = bson.D{{Key: "date", Value: -1}}

func (r *MongoRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	res, err := r.col.InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	entry.ID = id
	return entry, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*models.Entry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	var entry models.Entry
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &entry, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*models.Entry, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoRepository) Search(ctx context.Context, query string, startDate, endDate *time.Time) ([]*models.Entry, error) {
	filter := bson.D{}

	if query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.M{"name": re},
			bson.M{"from": re},
			bson.M{"comments": re},
		}})
	}

	if startDate != nil || endDate != nil {
		rangeFilter := bson.M{}
		if startDate != nil {
			rangeFilter["$gte"] = *startDate
		}
		if endDate != nil {
			rangeFilter["$lte"] = *endDate
		}
		filter = append(filter, bson.E{Key: "date", Value: rangeFilter})
	}

	return r.find(ctx, filter)
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrorNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *MongoRepository) UpdatePhoto(ctx context.Context, id string, path string) (*models.Entry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	var updated models.Entry
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"photo": path}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &updated, nil
}

func (r *MongoRepository) find(ctx context.Context, filter bson.D) ([]*models.Entry, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(sortNewestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*models.Entry
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
