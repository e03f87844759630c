// Package modkit provides module wiring and core deps
package modkit

import (
	"surveyscope/internal/platform/config"
	"surveyscope/internal/platform/logger"
	"surveyscope/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   *logger.Logger
	Cfg   config.Conf
	Store *store.Store
}

// Logger returns Log or the root logger when Log is nil
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}
