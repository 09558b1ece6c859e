package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/habitquest/internal/app"
	"github.com/polkiloo/habitquest/internal/config"
	"github.com/polkiloo/habitquest/internal/logger"
	"github.com/polkiloo/habitquest/internal/metrics"
	"github.com/polkiloo/habitquest/internal/pkg/auth"
	"github.com/polkiloo/habitquest/internal/pkg/clock"
	"github.com/polkiloo/habitquest/internal/server/http/handlers"
	"github.com/polkiloo/habitquest/internal/server/http/router"
	"github.com/polkiloo/habitquest/internal/storage/postgres"
	"github.com/polkiloo/habitquest/internal/usecase"
)

// Module assembles the full application graph. Extra options are appended
// last so tests can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		clock.Module,
		auth.Module,
		metrics.Module,
		fx.Provide(func(m *metrics.Metrics) usecase.ProgressRecorder { return m }),
		postgres.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		usecase.Module,
		app.Module,
		fx.Provide(func(f *app.QuestFacade) handlers.QuestFacade { return f }),
		router.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
