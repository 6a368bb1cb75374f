package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video is owned by the upload pipeline; this service only reads it.
type Video struct {
	ID        bson.ObjectID `json:"_id"       bson:"_id,omitempty"`
	Title     string        `json:"title"     bson:"title"`
	Owner     bson.ObjectID `json:"owner"     bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
