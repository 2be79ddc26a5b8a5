package textread

import (
	"testing"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srcmerge/internal/logging"
)

func TestDecode(t *testing.T) {
	t.Run("Should keep valid UTF-8 untouched", func(t *testing.T) {
		text, fellBack := Decode([]byte("héllo wörld"))
		assert.Equal(t, "héllo wörld", text)
		assert.False(t, fellBack)
	})

	t.Run("Should strip a leading byte order mark", func(t *testing.T) {
		text, fellBack := Decode([]byte("\xef\xbb\xbfnamespace App;"))
		assert.Equal(t, "namespace App;", text)
		assert.False(t, fellBack)
	})

	t.Run("Should strip only one byte order mark", func(t *testing.T) {
		text, _ := Decode([]byte("\xef\xbb\xbf\xef\xbb\xbfx"))
		assert.Equal(t, "\ufeffx", text)
	})

	t.Run("Should decode invalid UTF-8 with the fallback code page", func(t *testing.T) {
		text, fellBack := Decode([]byte("caf\xe9 \x93quoted\x94"))
		assert.True(t, fellBack)
		assert.Equal(t, "café “quoted”", text)
		assert.True(t, utf8.ValidString(text))
	})

	t.Run("Should replace bytes the fallback code page leaves unassigned", func(t *testing.T) {
		text, fellBack := Decode([]byte("a\x81b\x8dc"))
		assert.True(t, fellBack)
		assert.Equal(t, "a\ufffdb\ufffdc", text)
	})

	t.Run("Should return empty text for empty input", func(t *testing.T) {
		text, fellBack := Decode(nil)
		assert.Equal(t, "", text)
		assert.False(t, fellBack)
	})
}

func TestRead(t *testing.T) {
	t.Run("Should read and decode a file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/src/a.cs", []byte("\xef\xbb\xbfclass A {}"), 0644))

		text, outcome := Read(fs, "/src/a.cs", logging.Discard())
		assert.Equal(t, "class A {}", text)
		assert.Equal(t, Decoded, outcome)
	})

	t.Run("Should fall back without failing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/src/legacy.md", []byte("na\xefve"), 0644))

		text, outcome := Read(fs, "/src/legacy.md", logging.Discard())
		assert.Equal(t, "naïve", text)
		assert.Equal(t, FellBack, outcome)
	})

	t.Run("Should return empty text when the file cannot be read", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		text, outcome := Read(fs, "/missing.cs", logging.Discard())
		assert.Equal(t, "", text)
		assert.Equal(t, Failed, outcome)
	})
}
