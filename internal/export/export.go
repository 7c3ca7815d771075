// Package export renders expenses and monthly figures as downloadable files:
// CSV, XLSX workbooks and PNG charts.
package export

import "errors"

// ErrNoData is returned when there is nothing to render.
var ErrNoData = errors.New("export: no data")

// Content types of the rendered files.
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePNG  = "image/png"
)
