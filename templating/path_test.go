package templating_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/byte4ever/ryuji/templating"
)

func TestConcatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir  string
		name string
		want string
	}{
		{"abc/", "/tree.html", "abc/tree.html"},
		{"/abc/", "/tree.html", "/abc/tree.html"},
		{"abc/", "tree.html", "abc/tree.html"},
		{"abc", "/tree.html", "abc/tree.html"},
		{"abc/def", "tree.html", "abc/def/tree.html"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, templating.ConcatPath(tt.dir, tt.name))
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "asdf", templating.Sanitize("asdf"))
	assert.Equal(
		t,
		"&lt;script&gt;a&lt;/script&gt;",
		templating.Sanitize("<script>a</script>"),
	)
	assert.Equal(t, `a & "b"`, templating.Sanitize(`a & "b"`))
}

func TestIndentation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, templating.Indentation(""))
	assert.Equal(t, 2, templating.Indentation("<div>\n  "))
	assert.Equal(t, 4, templating.Indentation("a\n    <p>x"))
	assert.Equal(t, 1, templating.Indentation(" \t  x"))
}

func TestReindent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\n  b\n  c", templating.Reindent("a\nb\nc", 2))
	assert.Equal(t, "a\nb", templating.Reindent("a\nb", 0))
	assert.Equal(t, "single", templating.Reindent("single", 3))
}

func TestWithExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "post.html", templating.WithExtension("post", ".html"))
	assert.Equal(t, "post.txt", templating.WithExtension("post.txt", ".html"))
}

func TestNewFileExtension(t *testing.T) {
	t.Parallel()

	_, err := templating.NewFileExtension("adsf")
	assert.ErrorIs(t, err, templating.ErrInvalidFileExtension)

	_, err = templating.NewFileExtension("ad.sf")
	assert.ErrorIs(t, err, templating.ErrInvalidFileExtension)

	ext, err := templating.NewFileExtension(".png")
	assert.NoError(t, err)
	assert.Equal(t, ".png", ext.String())
}
