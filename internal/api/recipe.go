package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feastbook/backend/internal/service"
	"github.com/feastbook/backend/internal/types"
)

// RecipeHandler serves the /recipes routes.
type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/by-user/:userId", h.GetByCreator)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/favorite", h.AddFavorite)
		recipes.DELETE("/:id/favorite", h.RemoveFavorite)
	}
}

// ListRecipes lists recipes, favorite-annotated for the viewer named in
// the userId query parameter. onlyFavorites=true restricts the listing to
// that viewer's favorites.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	viewerID, ok := viewerFromQuery(c)
	if !ok {
		return
	}
	onlyFavorites := c.Query("onlyFavorites") == "true" && viewerID != nil

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), viewerID, onlyFavorites)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	viewerID, ok := viewerFromQuery(c)
	if !ok {
		return
	}
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) GetByCreator(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	recipes, err := h.recipes.GetByCreator(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted successfully", "id": id})
}

func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	fav, err := h.recipes.AddFavorite(c.Request.Context(), recipeID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fav)
}

// RemoveFavorite is idempotent: removing an absent favorite still
// answers 200.
func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.recipes.RemoveFavorite(c.Request.Context(), recipeID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe removed from favorites", "id": recipeID})
}

// viewerFromQuery parses the optional userId query parameter. On a
// malformed id it writes a 400 and reports false.
func viewerFromQuery(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("userId")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return nil, false
	}
	return &id, true
}
