package csv_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowset/tidycsv/pkg/csv"
)

// alphabet for generated field content. It avoids every detection
// candidate so the only candidate hits in a table come from the true
// separator (injected below and quoted away by the writer).
const fieldAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 ._-"

// TestDetectSeparatorProperty writes 1000 random tables with a known
// separator and checks detection recovers it. Generated tables always
// have at least two columns and two rows, which is exactly the regime
// where the field-count-uniformity heuristic is reliable.
func TestDetectSeparatorProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	candidates := []rune{',', ';', ':', '\t'}

	for i := 0; i < 1000; i++ {
		sep := candidates[rng.Intn(len(candidates))]
		rows := randomTable(rng, sep)

		opts := csv.DefaultWriterOptions()
		opts.Separator = sep
		text := csv.FormatWithOptions(rows, opts)

		got := csv.NewSniffer(text).DetectSeparator()
		require.Equalf(t, sep, got, "table %d:\n%s", i, text)

		// And the detecting reader recovers the original fields.
		reread, gotSep, err := csv.ReadStringDetect(text)
		require.NoError(t, err)
		require.Equal(t, sep, gotSep)
		require.Equal(t, rows, reread)
	}
}

// randomTable builds a rectangular table of 2-8 rows by 2-6 columns.
// Roughly a tenth of the fields embed the true separator, which the
// writer then has to quote.
func randomTable(rng *rand.Rand, sep rune) [][]string {
	nRows := 2 + rng.Intn(7)
	nCols := 2 + rng.Intn(5)

	rows := make([][]string, nRows)
	for r := range rows {
		row := make([]string, nCols)
		for c := range row {
			row[c] = randomField(rng, sep)
		}
		rows[r] = row
	}
	return rows
}

func randomField(rng *rand.Rand, sep rune) string {
	n := 1 + rng.Intn(10)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(fieldAlphabet[rng.Intn(len(fieldAlphabet))])
	}
	field := strings.TrimSpace(sb.String())
	if field == "" {
		field = "x"
	}
	if rng.Intn(10) == 0 {
		field += string(sep) + field
	}
	return field
}
