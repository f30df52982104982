package metrics_fx

import (
	"go.uber.org/fx"

	"legendscr/pkg/metrics"
)

var Module = fx.Provide(
	metrics.New)
