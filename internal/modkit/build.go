package modkit

import (
	"net/http"

	"surveyscope/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies Option funcs on top of the module name and prefix
func Build(name, prefix string, opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{Name: name, Prefix: prefix, Ports: c.ports}
}

// Mount routes b under its prefix with its middleware
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, own)
}
