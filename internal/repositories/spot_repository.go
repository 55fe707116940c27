package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/db_models"
)

type SpotRepository interface {
	List(ctx context.Context) ([]db_models.Spot, error)
	GetByID(ctx context.Context, id string) (*db_models.Spot, error)
	Seed(ctx context.Context, spots []db_models.Spot) error
}

type spotRepository struct {
	db *gorm.DB
}

func NewSpotRepository(db *gorm.DB) SpotRepository {
	return &spotRepository{db: db}
}

func (r *spotRepository) List(ctx context.Context) ([]db_models.Spot, error) {
	var spots []db_models.Spot
	err := r.db.WithContext(ctx).Order("id").Find(&spots).Error
	if err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *spotRepository) GetByID(ctx context.Context, id string) (*db_models.Spot, error) {
	var spot db_models.Spot
	err := r.db.WithContext(ctx).First(&spot, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &spot, nil
}

// Seed upserts the built-in catalog. Safe to run on every startup.
func (r *spotRepository) Seed(ctx context.Context, spots []db_models.Spot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range spots {
			if err := tx.Save(&spots[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
