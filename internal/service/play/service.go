package play

import (
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"
	"lucky_wheel/internal/wheel"
)

type Deps struct {
	Prizes   repository.PrizeRepository
	Spins    repository.SpinRepository
	Wheel    wheel.Config
	Renderer wheel.Renderer
	FPS      int
	TTL      time.Duration
	Log      *slog.Logger
}

type serv struct {
	prizes   repository.PrizeRepository
	spins    repository.SpinRepository
	cfg      wheel.Config
	renderer wheel.Renderer
	fps      int
	sessions *cache.Cache
	log      *slog.Logger
}

// NewPlayService - сессии зрителей живут ttl с момента последнего обращения
func NewPlayService(deps Deps) service.PlayService {
	s := &serv{
		prizes:   deps.Prizes,
		spins:    deps.Spins,
		cfg:      deps.Wheel,
		renderer: deps.Renderer,
		fps:      deps.FPS,
		sessions: cache.New(deps.TTL, deps.TTL/2),
		log:      deps.Log,
	}

	s.sessions.OnEvicted(func(id string, v any) {
		v.(*session).close()
		s.log.Debug("wheel session expired", slog.String("session_id", id))
	})

	return s
}
