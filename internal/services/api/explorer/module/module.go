// Package module wires the explorer API into HTTP via modkit
package module

import (
	"surveyscope/internal/modkit"
	"surveyscope/internal/modkit/httpkit"
	"surveyscope/internal/platform/strings"
	"surveyscope/internal/services/api/explorer/domain"

	explorerhttp "surveyscope/internal/services/api/explorer/http"
	"surveyscope/internal/services/api/explorer/repo"
	"surveyscope/internal/services/api/explorer/service"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Ports exposes the explorer service for cross-module lookups
type Ports struct {
	Service domain.ServicePort
	Dataset domain.DatasetPort
}

// Module implements the explorer module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports Ports

	svc *service.Service
}

// New constructs the explorer module; deps.Store must be set
// EXPLORER_MAX_INFLIGHT in deps.Cfg caps concurrent explorer requests, 0 means no cap
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build("explorer", "/explorer", opts...)
	b.Prefix = strings.MustPrefix(b.Prefix)
	if n := deps.Cfg.MayInt("EXPLORER_MAX_INFLIGHT", 0); n > 0 {
		b.Mw = append(b.Mw, chimw.Throttle(n))
	}
	svc := service.New(repo.New(deps.Store))

	m := &Module{
		deps:  deps,
		built: b,
		svc:   svc,
		ports: Ports{Service: svc, Dataset: svc},
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		explorerhttp.Register(rr, m.svc)
	})
}

// Name is the module name
func (m *Module) Name() string { return strings.MustString(m.built.Name, "module name") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return strings.MustPrefix(m.built.Prefix) }


// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
