// Package aliasfile loads organization alias overrides from YAML
//
//	aliases:
//	  "Consultant": "Consulting"
//	  "US DOT": "DOT"
//
// Entries are merged over the built-in alias map; keys stay exact and case-sensitive.
package aliasfile

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"surveyscope/internal/core/survey"
	perr "surveyscope/internal/platform/errors"
	"surveyscope/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape
type File struct {
	Aliases map[string]string `yaml:"aliases"`
}

// Load returns the built-in aliases merged with the file at path
// an empty path means built-ins only
func Load(path string) (survey.Aliases, error) {
	base := survey.DefaultAliases()
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Sourcef(err, "read alias file %s", path)
	}
	over, err := Parse(b)
	if err != nil {
		return nil, perr.WithOp(err, path)
	}
	logger.Named("aliasfile").Debug().Str("path", path).Int("overrides", len(over)).Msg("alias overrides loaded")
	return base.With(over), nil
}

// Parse decodes and checks an alias document; unknown top-level keys are rejected
func Parse(b []byte) (map[string]string, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, perr.Sourcef(err, "parse alias file")
	}

	out := make(map[string]string, len(f.Aliases))
	for raw, canon := range f.Aliases {
		if strings.TrimSpace(raw) == "" {
			return nil, perr.WithField(perr.Newf(perr.ErrorCodeSource, "alias key must not be blank"), "aliases")
		}
		canon = strings.TrimSpace(canon)
		if canon == "" {
			return nil, perr.WithField(perr.Newf(perr.ErrorCodeSource, "alias %q has a blank canonical name", raw), raw)
		}
		out[raw] = canon
	}
	return out, nil
}
