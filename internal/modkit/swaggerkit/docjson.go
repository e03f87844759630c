package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"surveyscope/internal/core/version"
	"surveyscope/internal/platform/config"
	perr "surveyscope/internal/platform/errors"

	docs "surveyscope/internal/services/api/docs"
)

// docReader is a seam so tests can inject invalid JSON without patching swagger
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Spec parses the generated document and applies the served tweaks
func Spec() (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
		return nil, err
	}

	// OAS3 base url lives in servers, not BasePath
	ensureServers(spec, "/api/v1")

	cfg := config.New().Prefix("CORE_API_")
	if info, ok := spec["info"].(map[string]any); ok {
		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + v
			}
		}
		// stamped builds report their own version
		if bi := version.Info(); bi.Version != "dev" {
			info["version"] = bi.Version
		}
	}

	ensureErrorResponseDefinition(spec)
	addDefaultError(spec)
	addDefaultBadRequest(spec)
	return spec, nil
}

// serveDocJSON serves the swagger JSON
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := Spec()
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers makes sure the spec is OAS 3.0.x with a servers array
// swagger http ui can't render 3.1 yet, so it is downconverted
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		spec["openapi"] = "3.0.3"
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition adds the error envelope model if missing
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultError injects a 500 into every operation lacking one
func addDefaultError(spec map[string]any) {
	addDefault(spec, "500", errorResponse("Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        int(perr.ErrorCodePanic),
		"error":       "panic recovered",
		"request_id":  "579f33bf50b1/abc-000001",
	}))
}

// addDefaultBadRequest injects a 400 shaped like the binder output
func addDefaultBadRequest(spec map[string]any) {
	addDefault(spec, "400", errorResponse("Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        int(perr.ErrorCodeValidation),
		"error":       "intents[0] must not be blank",
		"field":       "intents[0]",
		"request_id":  "579f33bf50b1/abc-000001",
	}))
}

func errorResponse(desc string, example map[string]any) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

func addDefault(spec map[string]any, code string, resp map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps[code]; !exists {
				resps[code] = resp
			}
		}
	}
}
