package archive

import (
	"context"
	"fmt"
	"os/exec"
)

// MongoTool implements Tool by invoking mongodump and mongorestore as
// subprocesses against the configured connection URI.
type MongoTool struct {
	uri string
}

func NewMongoTool(uri string) *MongoTool {
	return &MongoTool{uri: uri}
}

func (t *MongoTool) Dump(ctx context.Context, archivePath string) error {
	return t.run(ctx, "mongodump", "--uri="+t.uri, "--archive="+archivePath, "--gzip")
}

func (t *MongoTool) Restore(ctx context.Context, archivePath string) error {
	return t.run(ctx, "mongorestore", "--uri="+t.uri, "--archive="+archivePath, "--gzip", "--drop")
}

func (t *MongoTool) run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, out)
	}
	return nil
}
