package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the authentication identity. Application-level data lives on the
// Profile row sharing the same id.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`

	Timestamp
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile is linked 1:1 to a User and carries the public-facing fields.
// Optional fields are pointers so an omitted value stays NULL.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	Email     string    `json:"email"`
	Username  *string   `json:"username"`
	FullName  *string   `json:"full_name"`
	Bio       *string   `json:"bio"`
}
