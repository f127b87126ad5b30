package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"herdshare/internal/services"
)

// FavoriteHandler handles the per-user favorites set.
type FavoriteHandler struct {
	favoriteService services.FavoriteServicer
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favoriteService services.FavoriteServicer) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Toggle handles flipping an asset in and out of the acting user's favorites.
// @Summary     Toggle favorite
// @Description Add the asset to the acting user's favorites, or remove it if already present
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Acting user ID"
// @Param       id        path   string true "Asset ID"
// @Success     200 {object} map[string]bool "Membership after the toggle"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /favorites/{id} [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	favorited, err := h.favoriteService.Toggle(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset_id": c.Param("id"), "favorited": favorited})
}

// List handles retrieving the acting user's favorited asset IDs.
// @Summary     List favorites
// @Description Get the asset IDs the acting user has favorited
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Acting user ID"
// @Success     200 {object} map[string][]string "Favorited asset IDs"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetIDs, err := h.favoriteService.List(actor.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": assetIDs})
}
