package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Preferences struct {
	Notifications bool `bson:"notifications" json:"notifications"`
	Newsletter    bool `bson:"newsletter" json:"newsletter"`
}

// User is the stored document. Password is write-only and must never
// leave the server; responses go through Profile(). The editable fields
// are pointers because a profile update writes all of them
// unconditionally and an absent field is stored as null.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        *string            `bson:"name" json:"name,omitempty"`
	Phone       *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     *string            `bson:"address,omitempty" json:"address,omitempty"`
	Preferences *Preferences       `bson:"preferences,omitempty" json:"preferences,omitempty"`
	Password    string             `bson:"password,omitempty" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Profile is the secret-stripped view of a User.
type Profile struct {
	ID          string       `json:"id,omitempty"`
	Email       string       `json:"email"`
	Name        string       `json:"name,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Address     string       `json:"address,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
	CreatedAt   time.Time    `json:"createdAt,omitempty"`
	UpdatedAt   time.Time    `json:"updatedAt,omitempty"`
}

func (u *User) Profile() *Profile {
	id := ""
	if !u.ID.IsZero() {
		id = u.ID.Hex()
	}
	return &Profile{
		ID:          id,
		Email:       u.Email,
		Name:        strOrEmpty(u.Name),
		Phone:       strOrEmpty(u.Phone),
		Address:     strOrEmpty(u.Address),
		Preferences: u.Preferences,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ProfileUpdate carries the editable profile fields. All four are written
// unconditionally on update; an absent field clears the stored value.
type ProfileUpdate struct {
	Name        *string      `json:"name"`
	Phone       *string      `json:"phone"`
	Address     *string      `json:"address"`
	Preferences *Preferences `json:"preferences"`
}
