package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"surveyscope/internal/adapters/ingest/csvtable"
	"surveyscope/internal/modkit"
	phttp "surveyscope/internal/platform/net/http"
	"surveyscope/internal/platform/store"
	kit "surveyscope/internal/platform/testkit"
	explorer "surveyscope/internal/services/api/explorer/domain"

	"github.com/go-chi/chi/v5"
)

type fixedDataset struct{}

func (fixedDataset) Dataset(context.Context) (explorer.DatasetOutput, error) {
	return explorer.DatasetOutput{SnapshotID: "snap-1"}, nil
}

func serve(m modkit.Module, path string) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestReady_FollowsStore(t *testing.T) {
	st := store.Open(store.Config{Source: csvtable.StringSource{
		Label: "mem",
		Data:  "Last5Years,AttendTRBAM2026,Organization,HowLong\n",
	}})
	m := New(modkit.Deps{Store: st})

	if rr := serve(m, "/meta/ready"); rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("ready before load want 503 got %d", rr.Code)
	}
	if _, err := st.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	rr := serve(m, "/meta/ready")
	if rr.Code != http.StatusOK {
		t.Fatalf("ready after load want 200 got %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), `"name":"survey"`)
}

func TestReady_NoStoreIsDegraded(t *testing.T) {
	rr := serve(New(modkit.Deps{}), "/meta/ready")
	if rr.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), `"status":"degraded"`)
}

func TestDataset_UsesInjectedPort(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPorts[explorer.DatasetPort](fixedDataset{}))
	rr := serve(m, "/meta/dataset")
	if rr.Code != http.StatusOK {
		t.Fatalf("want 200 got %d body=%s", rr.Code, rr.Body.String())
	}
	kit.MustContain(t, rr.Body.String(), `"snapshot_id":"snap-1"`)

	if rr := serve(New(modkit.Deps{}), "/meta/dataset"); rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("unwired dataset want 503 got %d", rr.Code)
	}
}

func TestNameAndPrefix(t *testing.T) {
	m := New(modkit.Deps{}).(*Module)
	if m.Name() != "meta" || m.Prefix() != "/meta" || m.Ports() != nil {
		t.Fatalf("unexpected module %q %q %v", m.Name(), m.Prefix(), m.Ports())
	}
	if rr := serve(m, "/meta/health"); rr.Code != http.StatusOK {
		t.Fatalf("health want 200 got %d", rr.Code)
	}
}
