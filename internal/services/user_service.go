package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/models"
	"herdshare/internal/pagination"
)

// userService handles user records. There are no credentials; users are
// plain identity records with a role.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser creates a user. Farmer-role users get a farmer profile
// created from the supplied draft in the same transaction.
func (s *userService) CreateUser(name, email string, role models.UserRole, farm *FarmerDraft) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name and email are required")
	}
	if role == models.UserRoleFarmer && (farm == nil || farm.FarmName == "") {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Farmer registration requires a farm name")
	}

	var existing int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	user := &models.User{Name: name, Email: email, Role: role}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if role == models.UserRoleFarmer {
			farmer := &models.Farmer{
				Name:        name,
				FarmName:    farm.FarmName,
				Location:    farm.Location,
				Bio:         farm.Bio,
				ImageURL:    farm.ImageURL,
				Established: farm.Established,
				Specialties: farm.Specialties,
			}
			if txErr := tx.Create(farmer).Error; txErr != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
			}
			user.FarmerID = &farmer.ID
		}
		if txErr := tx.Create(user).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID returns a user by ID.
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByEmail returns a user by email.
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// ListUsers returns a paginated list of users.
func (s *userService) ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.User{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var users []models.User
	if err := s.db.Order("created_at ASC").
		Scopes(pagination.Paginate(page)).Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(users, page.Page, page.PageSize, totalItems)
	return &result, nil
}
