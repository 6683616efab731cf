package services

import (
	"errors"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	"github.com/ajshan23/alghazal-b-p/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles staff account management
type UserService struct {
	userRepo     *repositories.UserRepository
	notification *NotificationService
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo:     repositories.NewUserRepository(),
		notification: NewNotificationService(),
	}
}

// CreateUser creates a staff account. When no password is supplied a
// secure one is generated and emailed to the new user (best effort).
func (s *UserService) CreateUser(req dto.CreateUserRequest) (models.User, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return models.User{}, apperrors.Validationf("email %s already registered", req.Email)
	}

	password := req.Password
	if password == "" {
		password = utils.GenerateSecurePassword(12)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:       req.Email,
		Password:    string(hashedPassword),
		Name:        req.Name,
		Phone:       req.Phone,
		Role:        models.Role(req.Role),
		DailySalary: req.DailySalary,
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		return models.User{}, err
	}

	s.notification.NotifyCredentials(created, password)

	created.Password = ""
	return created, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(userID string) (models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.NotFoundf("user %s", userID)
		}
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// UpdateUser updates staff details and salary
func (s *UserService) UpdateUser(userID string, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.NotFoundf("user %s", userID)
		}
		return models.User{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.DailySalary != nil {
		if *req.DailySalary < 0 {
			return models.User{}, apperrors.Validationf("dailySalary cannot be negative")
		}
		user.DailySalary = *req.DailySalary
	}

	if err := s.userRepo.Update(user); err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// DeleteUser removes a staff account (soft delete)
func (s *UserService) DeleteUser(userID string) error {
	if _, err := s.GetUser(userID); err != nil {
		return err
	}
	return s.userRepo.Delete(userID)
}

// ListUsers retrieves users with pagination and optional role filter
func (s *UserService) ListUsers(page, pageSize int, role, search string) (dto.UserListResponse, error) {
	var response dto.UserListResponse

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	users, totalCount, err := s.userRepo.FindWithPagination(page, pageSize, role, search)
	if err != nil {
		return response, err
	}

	for i := range users {
		users[i].Password = ""
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	response = dto.UserListResponse{
		Users:      users,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}

	return response, nil
}
