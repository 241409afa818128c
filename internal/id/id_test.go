package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	const count = 1000

	for range count {
		s, err := Generate("test")
		require.NoError(t, err)
		assert.False(t, seen[s], "ID should be unique: %s", s)
		seen[s] = true
	}

	assert.Len(t, seen, count)
}

func TestGenerate_Format(t *testing.T) {
	for _, prefix := range []string{PrefixUser, PrefixToken, "custom"} {
		t.Run(prefix, func(t *testing.T) {
			s, err := Generate(prefix)
			require.NoError(t, err)

			require.True(t, strings.HasPrefix(s, prefix+"-"))
			suffix := strings.TrimPrefix(s, prefix+"-")
			assert.Len(t, suffix, 21)

			for _, c := range suffix {
				assert.True(t,
					(c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
						(c >= '0' && c <= '9') || c == '_' || c == '-',
					"character %c should be URL-safe", c)
			}
		})
	}
}

func TestNewUserID(t *testing.T) {
	s, err := NewUserID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "usr-"))
}

func TestNewTokenID(t *testing.T) {
	s, err := NewTokenID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "tok-"))
}
