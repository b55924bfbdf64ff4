package main_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/wikiintro/cmd/wikiintro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAML(t *testing.T) {
	t.Parallel()

	flag := func(name string) *kong.Flag {
		return &kong.Flag{Value: &kong.Value{Name: name}}
	}

	t.Run("resolves dashed and underscored keys", func(t *testing.T) {
		t.Parallel()

		resolver, err := main.YAML(strings.NewReader("base_url: http://example.com/wiki/\ntimeout: 5s\nverbose: true\n"))
		require.NoError(t, err)

		v, err := resolver.Resolve(nil, nil, flag("base-url"))
		require.NoError(t, err)
		assert.Equal(t, "http://example.com/wiki/", v)

		v, err = resolver.Resolve(nil, nil, flag("timeout"))
		require.NoError(t, err)
		assert.Equal(t, "5s", v)

		v, err = resolver.Resolve(nil, nil, flag("verbose"))
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("returns nil for unknown keys", func(t *testing.T) {
		t.Parallel()

		resolver, err := main.YAML(strings.NewReader("timeout: 5s\n"))
		require.NoError(t, err)

		v, err := resolver.Resolve(nil, nil, flag("base-url"))
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("accepts an empty document", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAML(strings.NewReader(""))
		require.NoError(t, err)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAML(strings.NewReader("base-url: [unclosed\n"))
		require.Error(t, err)
	})
}
