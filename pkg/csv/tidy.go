// Package csv provides tidy (column-aligned) rendering of rows.
package csv

import (
	"io"
	"strings"
	"unicode/utf8"
)

// FormatTidy renders rows as column-aligned CSV text with the default
// options.
//
// Column widths are computed over the rendered (post-quoting) fields
// of multi-field rows. Every field but the last on a row is
// right-padded to its column width, and fields are joined by the
// separator followed by a single space. A row with exactly one field
// is a comment row: it is written verbatim through the ordinary
// quoting rule and contributes nothing to column widths.
//
// Reading tidy output and tidy-formatting it again is a fixed point,
// because the padding lands outside quoted spans and is stripped back
// off as unquoted edge whitespace.
//
// Example:
//
//	csv.FormatTidy([][]string{
//		{"1", "1234", "12"},
//		{"123", "12345"},
//	})
//	// 1  , 1234 , 12
//	// 123, 12345
func FormatTidy(rows [][]string) string {
	return FormatTidyWithOptions(rows, DefaultTidyOptions())
}

// FormatTidyWithOptions renders rows as column-aligned CSV text with
// custom options.
func FormatTidyWithOptions(rows [][]string, opts TidyOptions) string {
	widths := columnWidths(rows, opts.Separator)

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(opts.LineTerminator)
		}
		renderTidyRow(&sb, row, widths, opts.Separator)
	}
	return sb.String()
}

// WriteTidy renders rows to w column-aligned with the default options.
func WriteTidy(w io.Writer, rows [][]string) error {
	return WriteTidyWithOptions(w, rows, DefaultTidyOptions())
}

// WriteTidyWithOptions renders rows to w column-aligned with custom
// options. Write failures from w are returned unchanged.
func WriteTidyWithOptions(w io.Writer, rows [][]string, opts TidyOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	_, err := io.WriteString(w, FormatTidyWithOptions(rows, opts))
	return err
}

// columnWidths computes, per column index, the maximum rendered field
// width across all multi-field rows. Comment rows are skipped.
func columnWidths(rows [][]string, sep rune) []int {
	var widths []int
	for _, row := range rows {
		if len(row) <= 1 {
			continue
		}
		for i, field := range row {
			w := utf8.RuneCountInString(renderField(field, sep, false))
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// renderTidyRow renders one row padded to the given column widths.
func renderTidyRow(sb *strings.Builder, row []string, widths []int, sep rune) {
	if len(row) == 1 {
		// Comment row: verbatim, no padding.
		sb.WriteString(renderField(row[0], sep, true))
		return
	}

	for i, field := range row {
		rendered := renderField(field, sep, false)
		if i == len(row)-1 {
			sb.WriteString(rendered)
			break
		}
		sb.WriteString(rendered)
		if pad := widths[i] - utf8.RuneCountInString(rendered); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteRune(sep)
		sb.WriteByte(' ')
	}
}
