// Package csvtable reads the survey export into a survey.RawTable
//
// Every cell is kept as text; typing happens in the survey normalizer.
// Rows may be ragged: short rows read as empty trailing cells and extra cells are kept
// but never looked at. Header cells are trimmed and lose a leading byte order mark.
// Open and parse failures are source errors, so callers can treat them as fatal at load.
package csvtable
