// Package api provides the HTTP API for the application
package api

//go:generate swag init --v3.1 -d ../../../cmd/surveyscope-api,./ -g main.go -o ./docs --outputTypes go

import (
	"time"

	"surveyscope/internal/platform/config"
	"surveyscope/internal/platform/logger"
	phttp "surveyscope/internal/platform/net/http"
	"surveyscope/internal/platform/store"

	"surveyscope/internal/modkit"
	"surveyscope/internal/modkit/httpkit"
	"surveyscope/internal/modkit/module"
	"surveyscope/internal/modkit/swaggerkit"

	explorerdomain "surveyscope/internal/services/api/explorer/domain"
	explorermod "surveyscope/internal/services/api/explorer/module"
	metamod "surveyscope/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// CORSOrigins enables CORS for these browser origins
	CORSOrigins []string
	// Slow marks slow requests in the access log
	Slow time.Duration
	// Timeout bounds each request
	Timeout time.Duration
}

// OptionsFromConfig reads the CORE_API_ flags from cfg
func OptionsFromConfig(cfg config.Conf) Options {
	return Options{
		Config:         cfg,
		EnableSwagger:  cfg.MayBool("SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		CORSOrigins:    cfg.MayCSV("CORS_ORIGINS", nil),
		Slow:           time.Duration(cfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
		Timeout:        cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) []module.Module {
	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		Store: opt.Store,
	}

	explorer := explorermod.New(deps)
	dataset := module.MustPortsOf[explorerdomain.DatasetPort](explorer)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(dataset)),
		explorer,
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackOptions{CORSOrigins: opt.CORSOrigins, Slow: opt.Slow, Timeout: opt.Timeout})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		modkit.MountAll(api, mods...)
	})
	deps.Logger().Debug().
		Int("modules", len(mods)).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Msg("api mounted")
	return mods
}
