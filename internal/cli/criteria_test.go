package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/logging"
)

func TestBuildCriteria_WarnsOnIgnoredFilters(t *testing.T) {
	d, err := demo.Get(demo.AGGrid)
	require.NoError(t, err)
	sess := d.Open(0)

	tests := []struct {
		name    string
		filters []string
		want    []string
	}{
		{name: "bool value", filters: []string{"vegan=maybe"}, want: []string{"vegan=maybe"}},
		{name: "number value", filters: []string{"price=abc"}, want: []string{"price=abc"}},
		{name: "unknown field", filters: []string{"nope=1"}, want: []string{"nope", "unknown fields"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logging.NewLogger(logging.Config{Level: "warn", Format: logging.FormatJSON}, &buf)
			ctx := l.WithContext(context.Background())

			c, err := buildCriteria(ctx, sess, "", tt.filters, "")
			require.NoError(t, err)
			assert.Len(t, c.Filters, 1)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
			assert.Contains(t, buf.String(), `"operation":"build_criteria"`)
		})
	}

	t.Run("valid values are quiet", func(t *testing.T) {
		var buf bytes.Buffer
		l := logging.NewLogger(logging.Config{Level: "warn", Format: logging.FormatJSON}, &buf)
		ctx := l.WithContext(context.Background())

		_, err := buildCriteria(ctx, sess, "", []string{"vegan=sí", "price=12.5", "category=Pizzas"}, "")
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
