package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies a recipe. The set is closed; anything else is
// rejected at binding time.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategoryDessert   Category = "dessert"
	CategoryDrink     Category = "drink"
	CategorySnack     Category = "snack"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner,
		CategoryDessert, CategoryDrink, CategorySnack:
		return true
	}
	return false
}

type Recipe struct {
	ID           uuid.UUID    `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	Instructions string       `gorm:"type:text" json:"instructions"`
	Category     Category     `gorm:"size:20;not null" json:"category"`
	CreatedByID  uuid.UUID    `gorm:"type:varchar(36);not null;index" json:"created_by_id"`
	Ingredients  []Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	Favorites    []Favorite   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	// Favorited is computed per viewer on reads; it is never stored.
	Favorited bool `gorm:"-" json:"favorited"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Ingredient belongs to exactly one recipe and has no identity outside it.
type Ingredient struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipe_id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Quantity string    `gorm:"size:100;not null" json:"quantity"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
