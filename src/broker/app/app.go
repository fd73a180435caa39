// Package app assembles the broker's Fx module. The embedding analysis
// program supplies the ansys.Factory (the binding to the actual desktop
// tool, or a fake in tests) and gets back a fully wired session manager.
package app

import (
	"context"
	"time"

	sessionctl "github.com/eprkit/epr-broker/src/broker/controller/session"
	"github.com/eprkit/epr-broker/src/broker/internal/core"
	"github.com/eprkit/epr-broker/src/broker/internal/projectwatch"
	"github.com/eprkit/epr-broker/src/broker/internal/sessioninfofile"
	"github.com/eprkit/epr-broker/src/broker/repository/metadata"
	"github.com/jonboulle/clockwork"
	tally "github.com/uber-go/tally/v4"
	uberconfig "go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module defines the epr-broker application module.
var Module = fx.Options(
	core.ConfigModule,
	core.LoggerModule,
	sessioninfofile.Module,
	fx.Provide(metadata.New),
	fx.Provide(sessionctl.New),
	fx.Provide(func() clockwork.Clock {
		return clockwork.NewRealClock()
	}),
	fx.Provide(func(logger *zap.SugaredLogger, clock clockwork.Clock) projectwatch.Watcher {
		return projectwatch.New(logger, clock, nil)
	}),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "epr-broker",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Invoke(registerConnectOnStart),
)

// registerConnectOnStart connects during startup when the config asks for
// it, and releases the session on shutdown if still connected.
func registerConnectOnStart(lc fx.Lifecycle, ctl sessionctl.Controller, provider uberconfig.Provider) {
	if !sessionctl.ConnectOnStart(provider) {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return ctl.Connect(ctx)
		},
		OnStop: func(ctx context.Context) error {
			if !ctl.CheckConnected() {
				return nil
			}
			return ctl.Disconnect(ctx)
		},
	})
}
