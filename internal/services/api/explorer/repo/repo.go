// Package repo exposes the survey snapshot store to the explorer service
package repo

import (
	"context"

	perr "surveyscope/internal/platform/errors"
	"surveyscope/internal/platform/store"
)

// Snapshots is the storage seam the service reads through
type Snapshots interface {
	Current(ctx context.Context) (*store.Snapshot, error)
	Reload(ctx context.Context) (*store.Snapshot, error)
}

type storeRepo struct {
	st *store.Store
}

// New returns a Snapshots backed by st
func New(st *store.Store) Snapshots {
	if st == nil {
		panic("explorer.repo requires a non-nil store")
	}
	return &storeRepo{st: st}
}

// Current returns the serving snapshot, Unavailable before the first load
func (r *storeRepo) Current(context.Context) (*store.Snapshot, error) {
	snap := r.st.Current()
	if snap == nil {
		return nil, perr.Unavailablef("survey snapshot not loaded")
	}
	return snap, nil
}

// Reload rebuilds the snapshot from its source
func (r *storeRepo) Reload(ctx context.Context) (*store.Snapshot, error) {
	return r.st.Reload(ctx)
}
