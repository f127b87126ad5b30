package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/models"
	"herdshare/internal/pagination"
	"herdshare/internal/services"
)

// UserHandler handles user registration and lookup.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// FarmProfileRequest represents the farm details supplied when registering
// a farmer.
type FarmProfileRequest struct {
	FarmName    string `json:"farm_name" binding:"required,min=1,max=200"`
	Location    string `json:"location" binding:"max=200"`
	Bio         string `json:"bio" binding:"max=2000"`
	ImageURL    string `json:"image_url" binding:"max=500"`
	Established int    `json:"established" binding:"omitempty,gte=1800"`
	Specialties string `json:"specialties" binding:"max=500"`
}

// CreateUserRequest represents the request payload for registering a user.
type CreateUserRequest struct {
	Name  string              `json:"name" binding:"required,min=1,max=200"`
	Email string              `json:"email" binding:"required,email"`
	Role  models.UserRole     `json:"role" binding:"required,user_role"`
	Farm  *FarmProfileRequest `json:"farm" binding:"omitempty"`
}

// CreateUser handles registering a new user. Registering a farmer also
// creates their farm profile.
// @Summary     Register user
// @Description Create a user record; the farmer role requires farm details
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body CreateUserRequest true "User details"
// @Success     201 {object} models.User "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var farm *services.FarmerDraft
	if req.Farm != nil {
		farm = &services.FarmerDraft{
			FarmName:    req.Farm.FarmName,
			Location:    req.Farm.Location,
			Bio:         req.Farm.Bio,
			ImageURL:    req.Farm.ImageURL,
			Established: req.Farm.Established,
			Specialties: req.Farm.Specialties,
		}
	}

	user, err := h.userService.CreateUser(req.Name, req.Email, req.Role, farm)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetMe handles retrieving the acting user's own record.
// @Summary     Get current user
// @Description Get the record of the acting user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Acting user ID"
// @Success     200 {object} models.User "User details"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Router      /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": actor})
}

// GetUser handles retrieving a user by ID.
// @Summary     Get user by ID
// @Description Get a user record by ID
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} models.User "User details"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListUsers handles listing user records.
// @Summary     List users
// @Description Get a paginated list of users
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.User] "Paginated users"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.userService.ListUsers(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
