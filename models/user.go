package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered author. Password holds the bcrypt hash.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	FirstName string             `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string             `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Password  string             `bson:"password,omitempty" json:"-"`
}
