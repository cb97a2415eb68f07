package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender is limited to the two values accepted at registration.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender normalizes and validates a gender value. Matching is
// case-insensitive.
func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	default:
		return "", false
	}
}

// User represents a registered account together with its physical profile
// and training goal.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"` // stored lowercased, unique index
	PasswordHash string             `bson:"password" json:"-"`  // never exposed via JSON
	Height       float64            `bson:"height" json:"height"`
	Weight       float64            `bson:"weight" json:"weight"`
	Goal         string             `bson:"goal" json:"goal"`
	Gender       Gender             `bson:"gender" json:"gender"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Identity is the resolved caller snapshot attached to a request after the
// auth middleware verifies the bearer token. Downstream handlers read the
// owner ID from here and never from the request body.
type Identity struct {
	UserID   primitive.ObjectID
	Username string
	Email    string
	Height   float64
	Weight   float64
	Goal     string
	Gender   Gender
}

// IdentityOf builds the request snapshot for a resolved user.
func IdentityOf(u *User) *Identity {
	return &Identity{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Height:   u.Height,
		Weight:   u.Weight,
		Goal:     u.Goal,
		Gender:   u.Gender,
	}
}
