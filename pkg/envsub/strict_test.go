package envsub_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251016-go-pkg-envsub/pkg/envsub"
)

func TestPlaceholders(t *testing.T) {
	tree := map[string]any{
		"db": map[string]any{
			"url":  "postgres://${DB_USER}:${DB_PASS}@${DB_HOST}/app",
			"pool": 10,
		},
		"hosts":  []any{"${DB_HOST}", "${CACHE_HOST}"},
		"${KEY}": "literal",
	}

	assert.Equal(t, []string{"CACHE_HOST", "DB_HOST", "DB_PASS", "DB_USER"}, envsub.Placeholders(tree))
	assert.Nil(t, envsub.Placeholders(map[string]any{"a": 1, "b": "plain"}))
}

func TestMissing(t *testing.T) {
	env := envsub.MapReader{"SET": "x", "EMPTY": ""}
	tree := []any{"${SET}", "${EMPTY}", "${GONE}", []string{"${GONE}", "${ALSO_GONE}"}}

	assert.Equal(t, []string{"ALSO_GONE", "GONE"}, envsub.Missing(tree, env))
	assert.Nil(t, envsub.Missing("${SET}", env))
}

func TestSubstituteStrict(t *testing.T) {
	env := envsub.MapReader{"A": "1"}

	t.Run("all resolved", func(t *testing.T) {
		got, err := envsub.SubstituteStrict(map[string]any{"a": "${A}"}, env)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "1"}, got)
	})

	t.Run("missing reported", func(t *testing.T) {
		input := map[string]any{"a": "${A}", "b": []any{"${Z}", "${Y}", "${Z}"}}
		got, err := envsub.SubstituteStrict(input, env)
		require.Error(t, err)

		var missing *envsub.MissingError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{"Y", "Z"}, missing.Names)
		assert.Equal(t, "envsub: missing variables: Y, Z", err.Error())
		assert.Equal(t, input, got, "original value returned on error")
	})
}
