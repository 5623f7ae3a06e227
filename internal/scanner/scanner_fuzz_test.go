//go:build go1.18
// +build go1.18

package scanner

import (
	"errors"
	"strings"
	"testing"
)

// FuzzScanner checks the scanner with random inputs to find edge
// cases and panics.
// Run with: go test -fuzz=FuzzScanner -fuzztime=30s ./internal/scanner
func FuzzScanner(f *testing.F) {
	seeds := []string{
		"",
		"a",
		",",
		"\n",
		"\r\n",
		"\"",
		"\"\"",
		"a,b,c",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"x \"b\" y",
		"a\nb\nc",
		" padded , fields ",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// The scanner must never panic and must always terminate,
		// surfacing ErrUnterminatedQuote as the only structural error.
		s := New(strings.NewReader(input), ',')
		for {
			_, b, err := s.Next()
			if err != nil {
				if !errors.Is(err, ErrUnterminatedQuote) {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if b == EndOfInput {
				return
			}
		}
	})
}
