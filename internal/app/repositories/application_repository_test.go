package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestApprovedFirstYearQueryOrdering(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	sql, args, err := latestApprovedFirstYearQuery(sb, 42).ToSql()
	require.NoError(t, err)

	// Renewal chaining picks the latest row by creation time, not review time.
	assert.Contains(t, sql, "ORDER BY created_at DESC")
	assert.NotContains(t, sql, "reviewed_at")
	assert.Contains(t, sql, "LIMIT 1")
	assert.Contains(t, args, int64(42))
}
