package render

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV writes the column names and raw values of the view. Headers use the
// field names so the file round-trips through --filter expressions.
func CSV(w io.Writer, v View) error {
	cw := csv.NewWriter(w)

	cols := v.Session.Columns()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, row := range v.Rows {
		if err := cw.Write(v.cells(row, true)); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// Write dispatches on format. Table output is written plain; callers that
// detect a terminal use Styled directly.
func Write(w io.Writer, format Format, v View) error {
	switch format {
	case FormatJSON:
		return JSON(w, v)
	case FormatNDJSON:
		return NDJSON(w, v)
	case FormatCSV:
		return CSV(w, v)
	case FormatTable:
		return Plain(w, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
