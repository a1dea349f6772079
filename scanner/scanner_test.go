package scanner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/ryuji/scanner"
)

func TestScan_finds_directives_in_order(t *testing.T) {
	t.Parallel()

	got := scanner.Scan("[[ test.e ]]\n[[]]\nyay [[ if:yay ]]")

	assert.Equal(t, []scanner.Token{
		{Offset: 0, Content: "[[ test.e ]]"},
		{Offset: 22, Content: "[[ if:yay ]]"},
	}, got)
}

func TestScan_ignores_malformed_runs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{"newline inside", "lorem\n[[ \na ]]\nhello"},
		{"illegal character", "hello [[ na=me ]]"},
		{"inner space", "[[ a b ]]"},
		{"empty body", "x [[ ]] y"},
		{"double space", "x [[  ]] y"},
		{"missing space before close", "x [[ a]] y"},
		{"missing space after open", "x [[a ]] y"},
		{"unterminated", "x [[ abc"},
		{"too short", "[[ ]"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, scanner.Scan(tt.text))
		})
	}
}

func TestScan_accepts_full_alphabet(t *testing.T) {
	t.Parallel()

	got := scanner.Scan("[[ if:Post_1.x-y:!b ]]")

	require.Len(t, got, 1)
	assert.Equal(t, "if:Post_1.x-y:!b", got[0].Body())
}

func TestScan_nested_open_matches_inner(t *testing.T) {
	t.Parallel()

	got := scanner.Scan("[[ a [[ b ]]")

	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Offset)
	assert.Equal(t, "[[ b ]]", got[0].Content)
}

func TestScan_abort_then_recover(t *testing.T) {
	t.Parallel()

	got := scanner.Scan("[[ a=b ]] [[ c ]]")

	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Body())
	assert.Equal(t, 10, got[0].Offset)
	assert.Equal(t, 17, got[0].End())
}

func TestScan_adjacent_directives(t *testing.T) {
	t.Parallel()

	got := scanner.Scan("[[ a ]][[ b ]]")

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Body())
	assert.Equal(t, "b", got[1].Body())
	assert.Equal(t, got[0].End(), got[1].Offset)
}

func TestScan_byte_offsets_after_multibyte_text(t *testing.T) {
	t.Parallel()

	text := "héllo [[ x ]]"
	got := scanner.Scan(text)

	require.Len(t, got, 1)
	assert.Equal(t, "[[ x ]]", text[got[0].Offset:got[0].End()])
}

func FuzzScan(f *testing.F) {
	f.Add("[[ a ]]")
	f.Add("[[ for:a:b ]]x[[ endfor ]]")
	f.Add("[[ [[ a ]] ]]")
	f.Add("[[  ]]")
	f.Add("]] [[ ")
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		prev := 0

		for _, tk := range scanner.Scan(text) {
			if tk.Offset < prev {
				t.Fatalf("token %q overlaps previous", tk.Content)
			}

			if text[tk.Offset:tk.End()] != tk.Content {
				t.Fatalf("token %q is not a source slice", tk.Content)
			}

			if !strings.HasPrefix(tk.Content, "[[ ") ||
				!strings.HasSuffix(tk.Content, " ]]") ||
				tk.Body() == "" {
				t.Fatalf("malformed token %q", tk.Content)
			}

			prev = tk.End()
		}
	})
}
