// Package csv provides CSV dialect detection and header sniffing.
package csv

import (
	"strings"
	"unicode"

	"github.com/rowset/tidycsv/internal/parser"
)

// Sniffer detects the CSV dialect of a sample: the field separator
// and whether the first row looks like a header.
//
// Separator detection is a heuristic, not a proof. Pathological
// inputs - a real separator that appears only once, or decimal and
// thousands marks colliding with a candidate - may be misdetected.
// When no candidate qualifies the sniffer deterministically falls
// back to the first candidate rather than failing.
type Sniffer struct {
	sample     string
	candidates []rune
	separator  rune
	hasHeader  bool
	analyzed   bool
}

// NewSniffer creates a Sniffer over a sample of CSV data using the
// default candidate set. For best results provide at least 2-3 lines.
func NewSniffer(sample string) *Sniffer {
	return NewSnifferWithCandidates(sample, DefaultCandidates)
}

// NewSnifferWithCandidates creates a Sniffer with a caller-supplied
// candidate set. Candidate order is priority order: earlier
// candidates win ties and supply the fallback.
func NewSnifferWithCandidates(sample string, candidates []rune) *Sniffer {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	return &Sniffer{
		sample:     sample,
		candidates: candidates,
	}
}

// analyze performs dialect detection on the sample.
func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.separator = s.detectSeparator()
	s.hasHeader = s.detectHeader()
	s.analyzed = true
}

// DetectSeparator returns the detected field separator.
func (s *Sniffer) DetectSeparator() rune {
	s.analyze()
	return s.separator
}

// detectSeparator scores every candidate and picks the winner.
func (s *Sniffer) detectSeparator() rune {
	best := s.candidates[0]
	bestScore := 0

	for _, cand := range s.candidates {
		if _, score, ok := scoreCandidate(candidateRows(s.sample, cand)); ok && score > bestScore {
			best = cand
			bestScore = score
		}
	}

	return best
}

// candidateRows tokenizes the sample as if cand were the separator.
// A sample that fails to parse under a candidate is scored on the
// rows read before the failure; detection itself never fails.
func candidateRows(sample string, cand rune) [][]string {
	rows, _ := parser.New(strings.NewReader(sample), cand).ReadAll()
	return rows
}

// scoreCandidate rates a candidate separator by the uniformity of the
// field counts it produces. It returns the modal field count, the
// number of rows sharing it, and whether the candidate qualifies at
// all: a candidate qualifies only when the modal count is above one,
// since every candidate trivially splits every row into one field.
func scoreCandidate(rows [][]string) (modal, score int, ok bool) {
	if len(rows) == 0 {
		return 0, 0, false
	}

	freq := make(map[int]int, len(rows))
	for _, row := range rows {
		freq[len(row)]++
	}

	for count, n := range freq {
		if count <= 1 {
			continue
		}
		// Prefer the higher field count on a frequency tie so a
		// sample where every count appears once still has a stable
		// modal value.
		if n > score || (n == score && count > modal) {
			modal, score = count, n
		}
	}

	return modal, score, score > 0
}

// HasHeader returns true if the first row of the sample appears to be
// a header.
func (s *Sniffer) HasHeader() bool {
	s.analyze()
	return s.hasHeader
}

// detectHeader compares the first row against the rows below it.
// Headers are typically non-numeric label text; data rows tend to
// carry numbers. With fewer than two rows there is nothing to compare
// and the answer is false.
func (s *Sniffer) detectHeader() bool {
	rows := candidateRows(s.sample, s.detectSeparator())
	if len(rows) < 2 {
		return false
	}

	first := rows[0]
	headerScore := 0
	dataScore := 0

	for _, field := range first {
		if field == "" {
			continue
		}
		if isNumeric(field) {
			dataScore++
		} else {
			headerScore++
		}
	}

	// A header only makes sense if the rows beneath it look different:
	// count numeric fields in the second row as supporting evidence.
	for _, field := range rows[1] {
		if isNumeric(field) {
			headerScore++
		}
	}

	return headerScore > dataScore && headerScore > 0
}

// isNumeric reports whether s looks like a plain number.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}

	hasDigit := false
	hasDot := false
	for _, ch := range s {
		switch {
		case ch == '.':
			if hasDot {
				return false
			}
			hasDot = true
		case unicode.IsDigit(ch):
			hasDigit = true
		default:
			return false
		}
	}

	return hasDigit
}
