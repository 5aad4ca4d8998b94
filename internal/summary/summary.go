// Package summary aggregates the KPIs shown above a demo view: record count,
// per-status counts and the rounded mean of one numeric field.
package summary

import (
	"maps"
	"math"
	"slices"
)

// Summary is the aggregate over one filtered view.
type Summary struct {
	Total int `json:"total" yaml:"total"`
	// ByStatus holds a count for every declared status, zero when absent.
	ByStatus map[string]int `json:"byStatus" yaml:"by_status"`
	// Statuses keeps the declared status order for presentation.
	Statuses []string `json:"-" yaml:"-"`
	// Average is the mean of the value field rounded half-up.
	Average int `json:"average" yaml:"average"`
}

// Count returns the number of rows with status.
func (s Summary) Count(status string) int {
	return s.ByStatus[status]
}

// Clone returns a deep copy of s.
func (s Summary) Clone() Summary {
	s.ByStatus = maps.Clone(s.ByStatus)
	s.Statuses = slices.Clone(s.Statuses)
	return s
}

// Summarize counts rows per declared status and averages value. Statuses not
// listed in statuses are still counted in Total but get no bucket.
func Summarize[T any](rows []T, status func(T) string, statuses []string, value func(T) float64) Summary {
	out := Summary{
		Total:    len(rows),
		ByStatus: make(map[string]int, len(statuses)),
		Statuses: append([]string(nil), statuses...),
	}
	for _, st := range statuses {
		out.ByStatus[st] = 0
	}
	if len(rows) == 0 {
		return out
	}

	var sum float64
	for _, row := range rows {
		if status != nil {
			if _, ok := out.ByStatus[status(row)]; ok {
				out.ByStatus[status(row)]++
			}
		}
		if value != nil {
			sum += value(row)
		}
	}
	if value != nil {
		out.Average = Round(sum / float64(len(rows)))
	}
	return out
}

// Round rounds half-up to the nearest integer, so 30.5 becomes 31 and -0.5
// becomes 0.
func Round(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int(math.Floor(x + 0.5))
}
