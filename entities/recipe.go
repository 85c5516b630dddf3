package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Ingredients  string    `gorm:"type:text" json:"ingredients"`
	CookingTime  *int      `json:"cooking_time"`
	Difficulty   string    `gorm:"default:medium" json:"difficulty"` // easy, medium, hard
	Category     *string   `json:"category"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	ImageURL     *string   `json:"image_url,omitempty"`

	User *Profile `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
