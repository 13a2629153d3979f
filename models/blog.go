package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogState string

const (
	StateDraft     BlogState = "draft"
	StatePublished BlogState = "published"
)

// Valid reports whether s is one of the known lifecycle states.
func (s BlogState) Valid() bool {
	return s == StateDraft || s == StatePublished
}

// Blog is a post owned by a single author. Fields left out by a projection
// decode to their zero value.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Author      primitive.ObjectID `bson:"author,omitempty"`
	State       BlogState          `bson:"state,omitempty"`
	ReadCount   int64              `bson:"read_count"`
	ReadingTime float64            `bson:"reading_time"`
	Tags        []string           `bson:"tags"`
	Body        string             `bson:"body,omitempty"`
	Timestamp   time.Time          `bson:"timestamp"`
}
