package spotsfx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/api/controllers"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/db_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/repositories"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/services"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		provideSpotRepo,
		provideSpotEmbeddingRepo,
		provideSpotService,
		controllers.NewSpotsController,
	),
	fx.Invoke(seedCatalog),
)

func provideSpotRepo(db *gorm.DB) repositories.SpotRepository {
	return repositories.NewSpotRepository(db)
}

func provideSpotEmbeddingRepo(db *gorm.DB) repositories.SpotEmbeddingRepository {
	return repositories.NewSpotEmbeddingRepository(db)
}

func provideSpotService(spotRepo repositories.SpotRepository) services.SpotServiceInterface {
	return services.NewSpotService(spotRepo)
}

// seedCatalog upserts the fixed catalog and its embeddings on startup.
func seedCatalog(
	spotRepo repositories.SpotRepository,
	embedRepo repositories.SpotEmbeddingRepository,
	client utils.PredictionClientInterface,
) error {
	ctx := context.Background()
	catalog := repositories.HakodateCatalog()

	if err := spotRepo.Seed(ctx, catalog); err != nil {
		return err
	}

	for _, spot := range catalog {
		vector, err := client.GetEmbedding(ctx, spot.DetailsForAI)
		if err != nil {
			log.Printf("skipping embedding for %s: %v", spot.ID, err)
			continue
		}
		embedding := db_models.SpotEmbedding{
			SpotID:    spot.ID,
			Name:      spot.Name,
			Category:  spot.Category,
			Embedding: vector,
		}
		if err := embedRepo.Upsert(embedding); err != nil {
			log.Printf("failed to store embedding for %s: %v", spot.ID, err)
		}
	}

	log.Printf("Seeded %d catalog spots", len(catalog))
	return nil
}
