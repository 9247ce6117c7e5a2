package domain

import "github.com/google/uuid"

// User is a dashboard login. Password holds the bcrypt hash; it is opaque
// to the query layer and never serialized.
type User struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
}
