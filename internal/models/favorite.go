package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite marks that a user has bookmarked a recipe. The composite
// unique index is the source of truth for the at-most-one-per-pair
// invariant; service-level checks only exist for friendlier errors.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
