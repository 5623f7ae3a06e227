package csv_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowset/tidycsv/pkg/csv"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{
			name: "plain fields unquoted",
			rows: [][]string{{"a", "b", "c"}},
			want: "a,b,c",
		},
		{
			name: "embedded quotes doubled",
			rows: [][]string{{"a", `"b"`, "c"}},
			want: `a,"""b""",c`,
		},
		{
			name: "separator forces quoting",
			rows: [][]string{{"a,b", "c"}},
			want: `"a,b",c`,
		},
		{
			name: "newline forces quoting",
			rows: [][]string{{"a\nb"}},
			want: "\"a\nb\"",
		},
		{
			name: "edge whitespace forces quoting",
			rows: [][]string{{" a", "b ", "c"}},
			want: `" a","b ",c`,
		},
		{
			name: "interior whitespace does not",
			rows: [][]string{{"a b", "c"}},
			want: "a b,c",
		},
		{
			name: "rows joined without trailing terminator",
			rows: [][]string{{"a"}, {"b"}},
			want: "a\nb",
		},
		{
			name: "empty fields bare between separators",
			rows: [][]string{{"", "", ""}},
			want: ",,",
		},
		{
			name: "sole empty field quoted to survive round trip",
			rows: [][]string{{""}},
			want: `""`,
		},
		{
			name: "no rows",
			rows: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, csv.Format(tt.rows))
		})
	}
}

func TestFormatWithOptions(t *testing.T) {
	opts := csv.WriterOptions{Separator: ';', LineTerminator: "\r\n"}

	got := csv.FormatWithOptions([][]string{{"a;b", "c"}, {"d", "e"}}, opts)
	assert.Equal(t, "\"a;b\";c\r\nd;e", got)
}

func TestWriteAll(t *testing.T) {
	var sb strings.Builder
	err := csv.WriteAll(&sb, [][]string{{"a", "b"}, {"c", "d"}})
	require.NoError(t, err)
	assert.Equal(t, "a,b\nc,d", sb.String())
}

func TestWriteAllWithOptionsRejectsBadSeparator(t *testing.T) {
	opts := csv.WriterOptions{Separator: '"', LineTerminator: "\n"}
	err := csv.WriteAllWithOptions(&strings.Builder{}, [][]string{{"a"}}, opts)

	var oerr *csv.OptionsError
	require.ErrorAs(t, err, &oerr)
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestWriteAllPropagatesWriteFailure(t *testing.T) {
	wErr := errors.New("sink closed")
	err := csv.WriteAll(&failingWriter{err: wErr}, [][]string{{"a"}})
	assert.Equal(t, wErr, err)
}
