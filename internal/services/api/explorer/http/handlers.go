// Package http provides HTTP transport for the explorer API
package http

import (
	stdhttp "net/http"

	"surveyscope/internal/modkit/httpkit"
	"surveyscope/internal/services/api/explorer/domain"
)

// SnapshotHeader carries the id of the snapshot an answer was computed from
const SnapshotHeader = "X-Snapshot-ID"

// Register mounts explorer endpoints on the given router
// charts is a POST so the selection travels as a JSON body
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	chartsOpts := httpkit.DefaultJSONOptions()
	chartsOpts.AllowEmptyBody = true

	httpkit.Get(r, "/choices", h.choices)
	httpkit.PostJSON(r, "/charts", h.charts, chartsOpts)
	httpkit.Post(r, "/reload", h.reload)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /explorer/choices Explorer explorerChoices
// @Summary Selectable values and default sidebar state
// @Tags Explorer
// @Produce json
// @Success 200 {object} domain.ChoicesOutput "ok"
// @Router /explorer/choices [get]
func (h *handlers) choices(r *stdhttp.Request) (any, error) {
	return h.svc.Choices(r.Context())
}

// swagger:route POST /explorer/charts Explorer explorerCharts
// @Summary Filtered total and the four count series
// @Tags Explorer
// @Accept json
// @Produce json
// @Param payload body domain.ChartsInput false "Selection"
// @Success 200 {object} domain.ChartsOutput "ok"
// @Header 200 {string} X-Snapshot-ID "snapshot the series were computed from"
// @Router /explorer/charts [post]
func (h *handlers) charts(r *stdhttp.Request, in domain.ChartsInput) (any, error) {
	out, err := h.svc.Charts(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.WithHeader(out, SnapshotHeader, out.SnapshotID), nil
}

// swagger:route POST /explorer/reload Explorer explorerReload
// @Summary Rebuild the snapshot from the survey source
// @Tags Explorer
// @Produce json
// @Success 200 {object} domain.DatasetOutput "ok"
// @Router /explorer/reload [post]
func (h *handlers) reload(r *stdhttp.Request) (any, error) {
	return h.svc.Reload(r.Context())
}
