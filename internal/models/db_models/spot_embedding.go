package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// SpotEmbedding holds a deterministic vector per catalog spot, used to rank
// local candidates for the alternatives prompt.
type SpotEmbedding struct {
	SpotID    string `gorm:"primaryKey;column:spot_id"`
	Name      string
	Category  string
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
