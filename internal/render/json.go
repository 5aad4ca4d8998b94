package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rshade/gridgallery/internal/cli/pagination"
	"github.com/rshade/gridgallery/internal/query"
	"github.com/rshade/gridgallery/internal/summary"
)

type jsonOutput struct {
	Demo       string                     `json:"demo"`
	Title      string                     `json:"title"`
	Criteria   query.Criteria             `json:"criteria"`
	Total      int                        `json:"total"`
	Matched    int                        `json:"matched"`
	Summary    *summary.Summary           `json:"summary,omitempty"`
	Pagination *pagination.PaginationMeta `json:"pagination,omitempty"`
	Records    []any                      `json:"records"`
}

// ndjsonSummary is the first line of NDJSON output.
type ndjsonSummary struct {
	Type     string           `json:"type"`
	Demo     string           `json:"demo"`
	Criteria query.Criteria   `json:"criteria"`
	Total    int              `json:"total"`
	Matched  int              `json:"matched"`
	Summary  *summary.Summary `json:"summary,omitempty"`
}

func (v View) records() []any {
	out := make([]any, 0, len(v.Rows))
	for _, row := range v.Rows {
		out = append(out, v.Session.Record(row))
	}
	return out
}

// JSON writes the view as one indented document with criteria, counts,
// summary and pagination metadata.
func JSON(w io.Writer, v View) error {
	s := v.Session
	out := jsonOutput{
		Demo:       s.Demo().ID,
		Title:      s.Demo().Title,
		Criteria:   s.Criteria(),
		Total:      s.Total(),
		Matched:    s.Len(),
		Summary:    s.Summary(),
		Pagination: v.Meta,
		Records:    v.records(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// NDJSON writes a summary line with type "summary" followed by one record
// per line. Pagination metadata is not emitted in streaming mode.
func NDJSON(w io.Writer, v View) error {
	s := v.Session
	encoder := json.NewEncoder(w)

	head := ndjsonSummary{
		Type:     "summary",
		Demo:     s.Demo().ID,
		Criteria: s.Criteria(),
		Total:    s.Total(),
		Matched:  s.Len(),
		Summary:  s.Summary(),
	}
	if err := encoder.Encode(head); err != nil {
		return fmt.Errorf("encoding NDJSON summary: %w", err)
	}

	for _, row := range v.Rows {
		if err := encoder.Encode(s.Record(row)); err != nil {
			return fmt.Errorf("encoding NDJSON: %w", err)
		}
	}
	return nil
}
