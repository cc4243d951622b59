package testutil

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/smartgym/backend-go/internal/database/models"
	"github.com/smartgym/backend-go/internal/database/service"
)

// ==================== MOCK GYM REPOSITORY ====================

// MockGymRepository implements repository.GymRepository for testing
type MockGymRepository struct {
	mock.Mock
}

func (m *MockGymRepository) FindOneByName(ctx context.Context, name string) (*models.Gym, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Gym), args.Error(1)
}

func (m *MockGymRepository) FindOneByID(ctx context.Context, id uuid.UUID) (*models.Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Gym), args.Error(1)
}

func (m *MockGymRepository) FindAll(ctx context.Context) ([]models.Gym, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Gym), args.Error(1)
}

func (m *MockGymRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Gym, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Gym), args.Error(1)
}

func (m *MockGymRepository) Create(ctx context.Context, gym *models.Gym) (*models.Gym, error) {
	args := m.Called(ctx, gym)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Gym), args.Error(1)
}

func (m *MockGymRepository) UpdateOne(ctx context.Context, gym *models.Gym) (*models.Gym, error) {
	args := m.Called(ctx, gym)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Gym), args.Error(1)
}

func (m *MockGymRepository) Disable(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ==================== MOCK USER REPOSITORY ====================

// MockUserRepository implements repository.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindOneByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateOne(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Disable(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ==================== MOCK GYM SERVICE ====================

// MockGymService implements service.GymService for handler tests
type MockGymService struct {
	mock.Mock
}

func (m *MockGymService) Create(ctx context.Context, input models.NewGym) (*models.GymResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GymResponse), args.Error(1)
}

func (m *MockGymService) FindAll(ctx context.Context) ([]models.GymResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GymResponse), args.Error(1)
}

func (m *MockGymService) FindOne(ctx context.Context, id uuid.UUID) (*models.GymResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GymResponse), args.Error(1)
}

func (m *MockGymService) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.GymResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GymResponse), args.Error(1)
}

func (m *MockGymService) Update(ctx context.Context, id uuid.UUID, changes models.GymChanges) (*models.GymResponse, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GymResponse), args.Error(1)
}

func (m *MockGymService) Remove(ctx context.Context, id uuid.UUID) (*models.GymResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GymResponse), args.Error(1)
}

// ==================== MOCK USER SERVICE ====================

// MockUserService implements service.UserService for handler tests
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, input models.NewUser) (*models.UserResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserResponse), args.Error(1)
}

func (m *MockUserService) FindAll(ctx context.Context) ([]models.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserResponse), args.Error(1)
}

func (m *MockUserService) FindOne(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserResponse), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, changes models.UserChanges) (*models.UserResponse, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserResponse), args.Error(1)
}

func (m *MockUserService) Remove(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserResponse), args.Error(1)
}

// ==================== HELPERS ====================

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreateGymServiceWithMocks builds a gym service over mocked repositories.
func CreateGymServiceWithMocks(gymRepo *MockGymRepository, userRepo *MockUserRepository) service.GymService {
	return service.NewGymService(gymRepo, userRepo, DiscardLogger())
}

// CreateUserServiceWithMocks builds a user service over a mocked repository.
func CreateUserServiceWithMocks(userRepo *MockUserRepository) service.UserService {
	return service.NewUserService(userRepo, DiscardLogger())
}
