package sessionfx

import (
	"go.uber.org/fx"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/api/controllers"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/services"
	mem "github.com/FRUITS-CAPRESE/Oidemase/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore,
	provideSessionService,
	controllers.NewSessionController,
)

func provideSessionStore() mem.SessionStoreInterface {
	return mem.NewSessionStore(services.SessionTTL)
}

func provideSessionService(
	store mem.SessionStoreInterface,
	spots services.SpotServiceInterface,
	congestion services.CongestionServiceInterface,
	alternatives services.AlternativesServiceInterface,
) services.SessionServiceInterface {
	return services.NewSessionService(store, spots, congestion, alternatives)
}
