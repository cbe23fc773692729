package models

import "time"

// User is the ephemeral session identity. There is no password flow:
// login fabricates a guest identity and stores it for the session TTL.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Avatar    string    `bson:"avatar" json:"avatar"`
	IsSeller  bool      `bson:"isSeller" json:"isSeller"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
