package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/feastbook/backend/internal/cache"
	"github.com/feastbook/backend/internal/models"
	"github.com/feastbook/backend/internal/types"
)

const recipeCacheTTL = 5 * time.Minute

// RecipeService handles recipe CRUD and the favorite relation. The cache
// is optional; a nil cache disables it.
type RecipeService struct {
	db    *gorm.DB
	cache cache.Cache
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, c cache.Cache) *RecipeService {
	return &RecipeService{db: db, cache: c}
}

// ListRecipes returns all recipes with ingredients. When viewerID is set,
// each recipe carries a favorited flag scoped to that viewer; with
// onlyFavorites the result is restricted to the viewer's favorites.
// Without a viewer the flag is always false and no favorites are queried.
func (s *RecipeService) ListRecipes(ctx context.Context, viewerID *uuid.UUID, onlyFavorites bool) ([]models.Recipe, error) {
	var recipes []models.Recipe

	query := s.db.WithContext(ctx).Preload("Ingredients")
	if viewerID != nil {
		if onlyFavorites {
			query = query.Joins(
				"JOIN favorites ON favorites.recipe_id = recipes.id AND favorites.user_id = ?",
				*viewerID,
			)
		} else {
			query = query.Preload("Favorites", "user_id = ?", *viewerID)
		}
	}

	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	for i := range recipes {
		if viewerID == nil {
			continue
		}
		recipes[i].Favorited = onlyFavorites || len(recipes[i].Favorites) > 0
		recipes[i].Favorites = nil
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID, favorite-annotated for the viewer.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*models.Recipe, error) {
	// Viewer-neutral reads are cacheable; the flag is constant false.
	if viewerID == nil && s.cache != nil {
		var cached models.Recipe
		if err := s.cache.GetJSON(ctx, recipeCacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	var recipe models.Recipe
	query := s.db.WithContext(ctx).Preload("Ingredients")
	if viewerID != nil {
		query = query.Preload("Favorites", "user_id = ?", *viewerID)
	}
	if err := query.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if viewerID != nil {
		recipe.Favorited = len(recipe.Favorites) > 0
		recipe.Favorites = nil
	} else if s.cache != nil {
		// Best effort; a cold cache is not an error.
		_ = s.cache.SetJSON(ctx, recipeCacheKey(id), &recipe, recipeCacheTTL)
	}
	return &recipe, nil
}

// GetByCreator returns the recipes created by the given user.
func (s *RecipeService) GetByCreator(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Preload("Ingredients").
		Where("created_by_id = ?", userID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe persists a recipe and its ingredients in one transaction.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if len(req.Ingredients) == 0 {
		return nil, ErrNoIngredients
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", req.CreatedByID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}

	recipe := models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		Category:     req.Category,
		CreatedByID:  req.CreatedByID,
		Ingredients:  toIngredients(req.Ingredients),
	}
	// GORM writes the recipe and its ingredients in a single transaction,
	// so a failed insert never leaves orphaned rows.
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe applies a partial update. A supplied ingredient set must be
// non-empty and replaces the stored set wholesale; the delete and insert
// run inside the same transaction as the field update.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if req.Ingredients != nil && len(*req.Ingredients) == 0 {
		return nil, ErrNoIngredients
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.Category != nil {
		recipe.Category = *req.Category
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}
		if req.Ingredients != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
				return err
			}
			fresh := toIngredients(*req.Ingredients)
			for i := range fresh {
				fresh[i].RecipeID = id
			}
			if err := tx.Create(&fresh).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return s.GetRecipe(ctx, id, nil)
}

// DeleteRecipe removes a recipe; ingredients and favorites cascade.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	s.invalidate(ctx, id)
	return nil
}

// AddFavorite marks a recipe as favorited by a user. The existence
// pre-check gives a friendly Conflict; under concurrent duplicates the
// unique index rejects the second insert and is mapped to the same error.
func (s *RecipeService) AddFavorite(ctx context.Context, recipeID, userID uuid.UUID) (*models.Favorite, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrRecipeNotFound
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}
	if err := s.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyFavorited
	}

	fav := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}
	return &fav, nil
}

// RemoveFavorite deletes the favorite for the pair. Removing an absent
// favorite is a no-op, so the operation is idempotent.
func (s *RecipeService) RemoveFavorite(ctx context.Context, recipeID, userID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&models.Favorite{}).Error
}

func (s *RecipeService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, recipeCacheKey(id))
	}
}

func recipeCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("recipe:%s", id)
}

func toIngredients(inputs []types.IngredientInput) []models.Ingredient {
	out := make([]models.Ingredient, len(inputs))
	for i, in := range inputs {
		out[i] = models.Ingredient{Name: in.Name, Quantity: in.Quantity}
	}
	return out
}
