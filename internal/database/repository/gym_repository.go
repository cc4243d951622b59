package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartgym/backend-go/internal/database/models"
)

// GymRepository defines the persistence operations for gyms
type GymRepository interface {
	FindOneByName(ctx context.Context, name string) (*models.Gym, error)
	FindOneByID(ctx context.Context, id uuid.UUID) (*models.Gym, error)
	FindAll(ctx context.Context) ([]models.Gym, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Gym, error)
	Create(ctx context.Context, gym *models.Gym) (*models.Gym, error)
	UpdateOne(ctx context.Context, gym *models.Gym) (*models.Gym, error)
	Disable(ctx context.Context, id uuid.UUID) error
}

type gymRepository struct {
	db *gorm.DB
}

// NewGymRepository creates a new gym repository instance
func NewGymRepository(db *gorm.DB) GymRepository {
	return &gymRepository{db: db}
}

func (r *gymRepository) FindOneByName(ctx context.Context, name string) (*models.Gym, error) {
	var gym models.Gym
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&gym).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	return &gym, nil
}

func (r *gymRepository) FindOneByID(ctx context.Context, id uuid.UUID) (*models.Gym, error) {
	var gym models.Gym
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&gym).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	return &gym, nil
}

// FindAll returns every gym, inactive ones included, oldest first.
func (r *gymRepository) FindAll(ctx context.Context) ([]models.Gym, error) {
	gyms := []models.Gym{}
	err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&gyms).Error
	return gyms, err
}

func (r *gymRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Gym, error) {
	gyms := []models.Gym{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&gyms).Error
	return gyms, err
}

// Create inserts the gym, generating its ID when unset. The owning user is
// referenced by UserID only; associations are never upserted.
func (r *gymRepository) Create(ctx context.Context, gym *models.Gym) (*models.Gym, error) {
	if gym.ID == uuid.Nil {
		gym.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(gym).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateGym
		}
		return nil, err
	}
	return gym, nil
}

// UpdateOne writes the mutable columns of gym and returns the stored row.
func (r *gymRepository) UpdateOne(ctx context.Context, gym *models.Gym) (*models.Gym, error) {
	result := r.db.WithContext(ctx).
		Model(gym).
		Omit(clause.Associations).
		Select("Name", "Address", "Email", "Phone", "Website", "IsActive").
		Updates(gym)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateGym
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrGymNotFound
	}
	return r.FindOneByID(ctx, gym.ID)
}

// Disable soft-deletes the gym by clearing its active flag.
func (r *gymRepository) Disable(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.Gym{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGymNotFound
	}
	return nil
}

// Repository errors for gyms
var (
	ErrGymNotFound  = errors.New("gym not found")
	ErrDuplicateGym = errors.New("gym violates a uniqueness constraint")
)
