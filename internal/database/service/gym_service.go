package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartgym/backend-go/internal/database/models"
	"github.com/smartgym/backend-go/internal/database/repository"
	"github.com/smartgym/backend-go/internal/observability"
)

// GymService defines the gym lifecycle business logic
type GymService interface {
	Create(ctx context.Context, input models.NewGym) (*models.GymResponse, error)
	FindAll(ctx context.Context) ([]models.GymResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*models.GymResponse, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.GymResponse, error)
	Update(ctx context.Context, id uuid.UUID, changes models.GymChanges) (*models.GymResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (*models.GymResponse, error)
}

type gymService struct {
	gymRepo  repository.GymRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewGymService creates a new gym service instance
func NewGymService(
	gymRepo repository.GymRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) GymService {
	return &gymService{
		gymRepo:  gymRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create registers a gym for an existing user. The name lookup only short
// circuits the common case; the unique index decides concurrent inserts.
func (s *gymService) Create(ctx context.Context, input models.NewGym) (*models.GymResponse, error) {
	s.logger.Info("🏋️ [GymService] Creating gym", "name", input.Name, "user_id", input.UserID)

	existing, err := s.gymRepo.FindOneByName(ctx, input.Name)
	if err != nil && !errors.Is(err, repository.ErrGymNotFound) {
		s.logger.Error("❌ [GymService] Database error checking name", "error", err)
		return nil, s.fail(observability.OpCreate, fmt.Errorf("%w: %v", ErrGymNotCreated, err))
	}
	if existing != nil {
		s.logger.Warn("⚠️ [GymService] Gym name already taken", "name", input.Name)
		return nil, s.fail(observability.OpCreate, ErrGymAlreadyExists)
	}

	owner, err := s.userRepo.FindOneByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [GymService] Owner not found", "user_id", input.UserID)
			return nil, s.fail(observability.OpCreate, ErrUserNotFound)
		}
		s.logger.Error("❌ [GymService] Database error loading owner", "error", err)
		return nil, s.fail(observability.OpCreate, fmt.Errorf("%w: %v", ErrGymNotCreated, err))
	}

	created, err := s.gymRepo.Create(ctx, &models.Gym{
		Name:     input.Name,
		Address:  input.Address,
		Email:    input.Email,
		Phone:    input.Phone,
		Website:  input.Website,
		IsActive: true,
		UserID:   owner.ID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateGym) {
			s.logger.Warn("⚠️ [GymService] Lost race on gym name", "name", input.Name)
			return nil, s.fail(observability.OpCreate, ErrGymAlreadyExists)
		}
		s.logger.Error("❌ [GymService] Failed to create gym", "error", err)
		return nil, s.fail(observability.OpCreate, fmt.Errorf("%w: %v", ErrGymNotCreated, err))
	}

	s.logger.Info("✅ [GymService] Gym created", "gym_id", created.ID)
	observability.RecordGymOperation(observability.OpCreate, nil)

	response := created.Response()
	return &response, nil
}

func (s *gymService) FindAll(ctx context.Context) ([]models.GymResponse, error) {
	gyms, err := s.gymRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("❌ [GymService] Failed to list gyms", "error", err)
		return nil, err
	}

	return toGymResponses(gyms), nil
}

func (s *gymService) FindOne(ctx context.Context, id uuid.UUID) (*models.GymResponse, error) {
	gym, err := s.findGym(ctx, id)
	if err != nil {
		return nil, err
	}

	response := gym.Response()
	return &response, nil
}

// FindByUser lists the gyms owned by a user, inactive ones included.
func (s *gymService) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.GymResponse, error) {
	if _, err := s.userRepo.FindOneByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	gyms, err := s.gymRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("❌ [GymService] Failed to list user gyms", "user_id", userID, "error", err)
		return nil, err
	}

	return toGymResponses(gyms), nil
}

// Update merges the supplied fields over the stored gym. Fields left nil in
// changes keep their stored value, so an empty change set is a no-op.
func (s *gymService) Update(ctx context.Context, id uuid.UUID, changes models.GymChanges) (*models.GymResponse, error) {
	gym, err := s.findGym(ctx, id)
	if err != nil {
		return nil, s.fail(observability.OpUpdate, err)
	}

	changes.Apply(gym)

	updated, err := s.gymRepo.UpdateOne(ctx, gym)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateGym) {
			s.logger.Warn("⚠️ [GymService] Gym name already taken", "name", gym.Name)
			return nil, s.fail(observability.OpUpdate, ErrGymAlreadyExists)
		}
		s.logger.Error("❌ [GymService] Failed to update gym", "gym_id", id, "error", err)
		return nil, s.fail(observability.OpUpdate, fmt.Errorf("%w: %v", ErrGymNotUpdated, err))
	}

	s.logger.Info("✅ [GymService] Gym updated", "gym_id", id)
	observability.RecordGymOperation(observability.OpUpdate, nil)

	response := updated.Response()
	return &response, nil
}

// Remove soft-deletes the gym. The response is built from the record read
// before disabling, with IsActive forced to false; storage is not re-read.
func (s *gymService) Remove(ctx context.Context, id uuid.UUID) (*models.GymResponse, error) {
	gym, err := s.findGym(ctx, id)
	if err != nil {
		return nil, s.fail(observability.OpRemove, err)
	}

	if err := s.gymRepo.Disable(ctx, id); err != nil {
		s.logger.Error("❌ [GymService] Failed to disable gym", "gym_id", id, "error", err)
		return nil, s.fail(observability.OpRemove, fmt.Errorf("%w: %v", ErrGymNotDisabled, err))
	}

	s.logger.Info("✅ [GymService] Gym disabled", "gym_id", id)
	observability.RecordGymOperation(observability.OpRemove, nil)

	response := gym.Response()
	response.IsActive = false
	return &response, nil
}

func (s *gymService) findGym(ctx context.Context, id uuid.UUID) (*models.Gym, error) {
	gym, err := s.gymRepo.FindOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGymNotFound) {
			return nil, ErrGymNotFound
		}
		s.logger.Error("❌ [GymService] Failed to load gym", "gym_id", id, "error", err)
		return nil, err
	}
	return gym, nil
}

func (s *gymService) fail(op string, err error) error {
	observability.RecordGymOperation(op, err)
	return err
}

func toGymResponses(gyms []models.Gym) []models.GymResponse {
	responses := make([]models.GymResponse, 0, len(gyms))
	for i := range gyms {
		responses = append(responses, gyms[i].Response())
	}
	return responses
}
