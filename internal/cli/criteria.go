package cli

import (
	"context"
	"fmt"

	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/logging"
	"github.com/rshade/gridgallery/internal/query"
)

// buildCriteria parses the --search, --filter and --sort flags. Malformed
// expressions are errors. Fields the demo does not have, and values a field
// cannot parse, are logged and otherwise ignored by the session.
func buildCriteria(
	ctx context.Context,
	sess demo.Session,
	search string,
	filters []string,
	sortExpr string,
) (query.Criteria, error) {
	log := logging.FromContext(ctx)

	parsed, err := query.ParseFilters(filters)
	if err != nil {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "parse_filters").
			Strs("filters", filters).
			Err(err).
			Msg("invalid filter expression")
		return query.Criteria{}, fmt.Errorf("invalid filter: %w", err)
	}

	key, err := query.ParseSort(sortExpr)
	if err != nil {
		return query.Criteria{}, fmt.Errorf("invalid sort expression: %w", err)
	}

	c := query.Criteria{Search: search, Filters: parsed, Sort: key}

	if unknown := sess.UnknownFields(c); len(unknown) > 0 {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "build_criteria").
			Str("demo", sess.Demo().ID).
			Strs("fields", unknown).
			Msg("ignoring unknown fields")
	}

	if ignored := sess.IgnoredFilters(c); len(ignored) > 0 {
		exprs := make([]string, len(ignored))
		for i, f := range ignored {
			exprs[i] = f.String()
		}
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "build_criteria").
			Str("demo", sess.Demo().ID).
			Strs("filters", exprs).
			Msg("ignoring filters with invalid values")
	}

	return c, nil
}
