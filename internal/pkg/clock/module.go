package clock

import (
	"go.uber.org/fx"

	"github.com/polkiloo/habitquest/internal/config"
)

// Module provides the wall clock in the configured time zone.
var Module = fx.Provide(NewFromConfig)

// NewFromConfig returns a System clock for cfg.Location.
func NewFromConfig(cfg *config.Config) Clock {
	return NewSystem(cfg.Location)
}
