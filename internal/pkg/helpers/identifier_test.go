package helpers

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackID(t *testing.T) {
	before := time.Now().UnixMilli()
	id := FallbackID(ApplicationIDPrefix)
	after := time.Now().UnixMilli()

	parts := strings.SplitN(id, "-", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "APP", parts[0])

	ms, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, before)
	assert.LessOrEqual(t, ms, after)
}
