package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartgym/backend-go/internal/database/models"
	"github.com/smartgym/backend-go/internal/database/repository"
)

// UserService defines the business logic for gym owners
type UserService interface {
	Create(ctx context.Context, input models.NewUser) (*models.UserResponse, error)
	FindAll(ctx context.Context) ([]models.UserResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*models.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, changes models.UserChanges) (*models.UserResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (*models.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) Create(ctx context.Context, input models.NewUser) (*models.UserResponse, error) {
	s.logger.Info("📝 [UserService] Registering user", "email", input.Email)

	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [UserService] Database error", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUserNotCreated, err)
	}
	if existing != nil {
		s.logger.Warn("⚠️ [UserService] Email already registered", "email", input.Email)
		return nil, ErrUserAlreadyExists
	}

	// Document, phone and identity uniqueness is left to the store.
	created, err := s.userRepo.Create(ctx, &models.User{
		CognitoUserID: input.CognitoUserID,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Document:      input.Document,
		Email:         input.Email,
		Phone:         input.Phone,
		IsActive:      true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			s.logger.Warn("⚠️ [UserService] User conflicts with an existing one", "email", input.Email)
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("❌ [UserService] Failed to create user", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUserNotCreated, err)
	}

	s.logger.Info("✅ [UserService] User registered", "user_id", created.ID)

	response := created.Response()
	return &response, nil
}

func (s *userService) FindAll(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to list users", "error", err)
		return nil, err
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].Response())
	}
	return responses, nil
}

func (s *userService) FindOne(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	response := user.Response()
	return &response, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, changes models.UserChanges) (*models.UserResponse, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	changes.Apply(user)

	updated, err := s.userRepo.UpdateOne(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("❌ [UserService] Failed to update user", "user_id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUserNotUpdated, err)
	}

	s.logger.Info("✅ [UserService] User updated", "user_id", id)

	response := updated.Response()
	return &response, nil
}

// Remove deactivates the user. Gyms owned by the user are left untouched.
func (s *userService) Remove(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Disable(ctx, id); err != nil {
		s.logger.Error("❌ [UserService] Failed to disable user", "user_id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUserNotDisabled, err)
	}

	s.logger.Info("✅ [UserService] User disabled", "user_id", id)

	response := user.Response()
	response.IsActive = false
	return &response, nil
}

func (s *userService) findUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("❌ [UserService] Failed to load user", "user_id", id, "error", err)
		return nil, err
	}
	return user, nil
}
