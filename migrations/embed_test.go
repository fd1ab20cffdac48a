package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedFS_ContainsInitialSchema(t *testing.T) {
	content, err := FS.ReadFile("001_initial_schema.sql")
	require.NoError(t, err)

	sql := string(content)
	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "-- +goose Down")
	for _, table := range []string{"staff", "teams", "strategic_objectives", "projects", "workshops", "livelihoods"} {
		assert.True(t, strings.Contains(sql, "CREATE TABLE "+table+" ("), "missing table %s", table)
	}
}
