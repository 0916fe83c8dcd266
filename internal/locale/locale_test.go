// file: internal/locale/locale_test.go
// version: 1.0.0
// guid: 71e67dc3-1ed0-48c5-afa5-2d5a8028053f

package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"en", English, false},
		{"ja", Japanese, false},
		{"JA", Japanese, false},
		{"ja-JP", Japanese, false},
		{"en_US", English, false},
		{" en ", English, false},
		{"fr", "", true},
		{"", "", true},
		{"not a tag", "", true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			require.Error(t, err, "Parse(%q)", tt.in)
			assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
			continue
		}
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Language
	}{
		{"", English},
		{"ja", Japanese},
		{"ja-JP,ja;q=0.9,en;q=0.8", Japanese},
		{"en-GB,en;q=0.9", English},
		{"fr-FR,fr;q=0.9", English},
		{"fr;q=0.9,ja;q=0.5", Japanese},
		{";;;garbage", English},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Negotiate(tt.header), "Negotiate(%q)", tt.header)
	}
}

func TestSupportedIsCopy(t *testing.T) {
	langs := Supported()
	require.Len(t, langs, 2)
	assert.Equal(t, Canonical, langs[0])
	langs[0] = "xx"
	assert.Equal(t, English, Supported()[0])
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, English.IsCanonical())
	assert.False(t, Japanese.IsCanonical())
}

func TestMatch(t *testing.T) {
	l, ok := Match("ja-JP")
	assert.True(t, ok)
	assert.Equal(t, Japanese, l)

	for _, header := range []string{"", "   ", "fr-FR", ";;;garbage"} {
		_, ok := Match(header)
		assert.False(t, ok, "Match(%q)", header)
	}
}
