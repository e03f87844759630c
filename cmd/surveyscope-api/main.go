// @title         surveyscope API
// @version       0.1.0
// @description   Read only endpoints for exploring the attendance survey

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"surveyscope/internal/platform/config"
	"surveyscope/internal/platform/logger"
	phttp "surveyscope/internal/platform/net/http"
	"surveyscope/internal/platform/store"

	"surveyscope/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// the table is loaded once up front; a bad export stops the process
	st := store.Open(store.FromConfig(root))
	if _, err := st.Load(ctx); err != nil {
		l.Panic().Err(err).Msg("survey load failed")
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	opt := api.OptionsFromConfig(apiCfg)
	opt.Store = st
	opt.Logger = l
	api.Mount(srv.Router(), opt)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
