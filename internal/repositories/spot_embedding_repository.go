package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/db_models"
)

type SpotEmbeddingRepository interface {
	Upsert(embedding db_models.SpotEmbedding) error
	GetNearestByVector(vector pgvector.Vector, excludeSpotID string, limit int) ([]db_models.SpotEmbedding, error)
}

type spotEmbeddingRepository struct {
	db *gorm.DB
}

func NewSpotEmbeddingRepository(db *gorm.DB) SpotEmbeddingRepository {
	return &spotEmbeddingRepository{db: db}
}

func (r *spotEmbeddingRepository) Upsert(embedding db_models.SpotEmbedding) error {
	return r.db.Save(&embedding).Error
}

func (r *spotEmbeddingRepository) GetNearestByVector(vector pgvector.Vector, excludeSpotID string, limit int) ([]db_models.SpotEmbedding, error) {
	var results []db_models.SpotEmbedding

	query := `
        SELECT *
        FROM spot_embeddings
        WHERE spot_id <> $2
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := r.db.Raw(query, vector.String(), excludeSpotID, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
