package demo

import (
	"fmt"
	"strconv"

	"github.com/rshade/gridgallery/internal/summary"
)

// KPI is one labelled figure of the summary bar.
type KPI struct {
	Label string
	Value string
}

// Footer renders the "Mostrando X de Y" line under a view.
func Footer(s Session) string {
	return fmt.Sprintf("Mostrando %d de %d %s", s.Len(), s.Total(), s.Demo().Noun)
}

// KPIs lists the summary figures of s in display order, or nil when the demo
// has no summary.
func KPIs(s Session) []KPI {
	sum := s.Summary()
	if sum == nil {
		return nil
	}
	return summaryKPIs(s.Demo(), *sum)
}

func summaryKPIs(d Demo, sum summary.Summary) []KPI {
	kpis := []KPI{{Label: "Total", Value: fmt.Sprintf("%d %s", sum.Total, d.Noun)}}
	for _, st := range sum.Statuses {
		kpis = append(kpis, KPI{Label: st + "s", Value: strconv.Itoa(sum.Count(st))})
	}
	label := d.AverageLabel
	if label == "" {
		label = "Promedio"
	}
	value := strconv.Itoa(sum.Average)
	if d.AverageUnit != "" {
		value += " " + d.AverageUnit
	}
	return append(kpis, KPI{Label: label, Value: value})
}

// SummaryLine joins the KPIs of s on one line. Empty without a summary.
func SummaryLine(s Session) string {
	var line string
	for i, k := range KPIs(s) {
		if i > 0 {
			line += " · "
		}
		line += k.Label + ": " + k.Value
	}
	return line
}
