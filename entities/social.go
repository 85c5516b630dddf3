package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	RecipeID uuid.UUID  `gorm:"type:uuid;index" json:"recipe_id"`
	Content  string     `gorm:"type:text" json:"content"`
	ParentID *uuid.UUID `gorm:"type:uuid" json:"parent_id"`

	User   *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Like rows are unique per (user, recipe); the composite index is the
// authoritative guard, not application sequencing.
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// CommentWithUser maps the read-only comments_with_users view.
type CommentWithUser struct {
	ID        uuid.UUID  `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Content   string     `json:"content"`
	ParentID  *uuid.UUID `json:"parent_id"`
	RecipeID  uuid.UUID  `json:"recipe_id"`
	UserID    uuid.UUID  `json:"user_id"`
	Username  *string    `json:"username"`
	FullName  *string    `json:"full_name"`
}

func (CommentWithUser) TableName() string {
	return "comments_with_users"
}

// RecipeStats maps the read-only recipe_stats view. Counts are recomputed by
// the store, never written directly.
type RecipeStats struct {
	RecipeID     uuid.UUID `json:"recipe_id"`
	Title        string    `json:"title"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func (RecipeStats) TableName() string {
	return "recipe_stats"
}
