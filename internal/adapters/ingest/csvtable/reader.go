package csvtable

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"surveyscope/internal/core/survey"
	perr "surveyscope/internal/platform/errors"
	"surveyscope/internal/platform/logger"
)

// ctxCheckEvery is how many rows are read between context checks
const ctxCheckEvery = 1024

// Options configures parsing
type Options struct {
	Comma rune // field delimiter, ',' when zero
}

// Reader streams rows from a CSV export
type Reader struct {
	cr     *csv.Reader
	width  int
	rows   int
	ragged int
}

// NewReader wraps r; quoting is lenient and rows may have any width
func NewReader(r io.Reader, opt Options) *Reader {
	cr := csv.NewReader(r)
	if opt.Comma != 0 {
		cr.Comma = opt.Comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = false
	return &Reader{cr: cr}
}

// Header reads the first record; it must be called before Next
func (rd *Reader) Header() ([]string, error) {
	rec, err := rd.cr.Read()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rec))
	for i, h := range rec {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	rd.width = len(out)
	return out, nil
}

// Next returns the next data row or io.EOF
func (rd *Reader) Next() ([]string, error) {
	rec, err := rd.cr.Read()
	if err != nil {
		return nil, err
	}
	rd.rows++
	if len(rec) != rd.width {
		rd.ragged++
	}
	return rec, nil
}

// Rows is the number of data rows read so far
func (rd *Reader) Rows() int { return rd.rows }

// Ragged is the number of rows whose width differs from the header
func (rd *Reader) Ragged() int { return rd.ragged }

// Read loads the whole export from src
func Read(ctx context.Context, src Source, opt Options) (survey.RawTable, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return survey.RawTable{}, perr.Sourcef(err, "open survey source %s", src.Name())
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			logger.Named("csvtable").Warn().Err(cerr).Str("source", src.Name()).Msg("close failed")
		}
	}()

	rd := NewReader(rc, opt)
	header, err := rd.Header()
	if errors.Is(err, io.EOF) {
		return survey.RawTable{}, perr.Newf(perr.ErrorCodeSource, "survey source %s is empty", src.Name())
	}
	if err != nil {
		return survey.RawTable{}, perr.Sourcef(err, "read survey header from %s", src.Name())
	}

	raw := survey.RawTable{Header: header}
	for {
		if rd.Rows()%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return survey.RawTable{}, perr.Sourcef(err, "read survey source %s", src.Name())
			}
		}
		row, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return survey.RawTable{}, perr.Sourcef(err, "read survey source %s", src.Name())
		}
		raw.Rows = append(raw.Rows, row)
	}

	logger.Named("csvtable").Debug().
		Str("source", src.Name()).
		Int("columns", len(header)).
		Int("rows", rd.Rows()).
		Int("ragged", rd.Ragged()).
		Msg("survey source read")
	return raw, nil
}
