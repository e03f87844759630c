package modkit

import (
	"surveyscope/internal/modkit/module"
	"surveyscope/internal/platform/logger"
	phttp "surveyscope/internal/platform/net/http"
)

// Module is the common surface for API modules that can mount routes and expose ports
type Module = module.Module

// MountAll mounts every module on r in order, nil entries are skipped
func MountAll(r phttp.Router, mods ...Module) {
	log := logger.Named("modkit")
	for _, m := range mods {
		if m == nil {
			continue
		}
		m.MountRoutes(r)
		log.Debug().Str("module", m.Name()).Msg("module mounted")
	}
}
