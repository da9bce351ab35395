// Package models defines the documents persisted by the guest book server.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// millisPerDay is the divisor for stay-duration derivation.
const millisPerDay = 24 * 60 * 60 * 1000

// Entry is one guest book record.
//
// ID and Date are assigned by the store/service on creation and are not
// client-controllable. Duration is derived from CheckIn/CheckOut on every
// save and is never authoritative on its own.
type Entry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	From          string             `bson:"from" json:"from"`
	Comments      string             `bson:"comments" json:"comments"`
	Date          time.Time          `bson:"date" json:"date"`
	Photo         string             `bson:"photo,omitempty" json:"photo,omitempty"`
	CheckIn       *time.Time         `bson:"checkIn,omitempty" json:"checkIn,omitempty"`
	CheckOut      *time.Time         `bson:"checkOut,omitempty" json:"checkOut,omitempty"`
	Duration      int64              `bson:"duration,omitempty" json:"duration,omitempty"`
	IsRepeatGuest bool               `bson:"isRepeatGuest" json:"isRepeatGuest"`
}

// ComputeDuration recalculates Duration as the ceiling of the absolute
// check-in/check-out difference in whole days. A no-op unless both stay
// dates are set.
func (e *Entry) ComputeDuration() {
	if e.CheckIn == nil || e.CheckOut == nil {
		return
	}
	ms := e.CheckOut.Sub(*e.CheckIn).Milliseconds()
	if ms < 0 {
		ms = -ms
	}
	e.Duration = (ms + millisPerDay - 1) / millisPerDay
}
