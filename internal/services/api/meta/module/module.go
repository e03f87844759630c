// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "surveyscope/internal/modkit"
	"surveyscope/internal/modkit/httpkit"
	str "surveyscope/internal/platform/strings"
	explorer "surveyscope/internal/services/api/explorer/domain"

	metahttp "surveyscope/internal/services/api/meta/http"
)

// ServiceName labels the API process in meta payloads
const ServiceName = "surveyscope-api"

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	startedAt time.Time
}

// New constructs a meta module
// pass the explorer dataset port with modkit.WithPorts to enable /dataset
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build("meta", "/meta", opts...)
	b.Prefix = str.MustPrefix(b.Prefix)

	return &Module{deps: deps, built: b, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   m.startedAt,
	}
	if m.deps.Store != nil {
		d.Checks = append(d.Checks, metahttp.Check{Name: "survey", Pinger: m.deps.Store})
	} else {
		d.Checks = append(d.Checks, metahttp.Check{Name: "survey"})
	}
	if ds, ok := m.built.Ports.(explorer.DatasetPort); ok {
		d.Dataset = ds
	}
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, d)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.built.Prefix }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
