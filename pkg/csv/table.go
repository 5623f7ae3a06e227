// Package csv provides a fluent Table type for building and rendering
// row collections.
//
// A Table is a transient, in-memory sequence of rows with method
// chaining for construction:
//
//	t := csv.NewTable().
//		AddRow("name", "age").
//		AddRow("Alice", "30").
//		AddComment("exported 2024-06-01")
//
//	t.CSV()  // compact CSV text
//	t.Tidy() // column-aligned text
package csv

// Table is an ordered sequence of rows with a fluent build API.
// All setter methods return *Table to enable method chaining.
//
// A row with exactly one field is a comment row: the tidy renderer
// writes it verbatim and excludes it from column-width computation.
type Table struct {
	rows [][]string
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{rows: make([][]string, 0)}
}

// ParseTable reads input into a Table using the ',' separator.
func ParseTable(input string) (*Table, error) {
	rows, err := ReadString(input)
	if err != nil {
		return nil, err
	}
	return &Table{rows: rows}, nil
}

// ParseTableDetect reads input into a Table, detecting the separator
// from the default candidate set first. It returns the separator used.
func ParseTableDetect(input string) (*Table, rune, error) {
	rows, sep, err := ReadStringDetect(input)
	if err != nil {
		return nil, sep, err
	}
	return &Table{rows: rows}, sep, nil
}

// AddRow appends a row of fields. Returns the Table for chaining.
func (t *Table) AddRow(fields ...string) *Table {
	t.rows = append(t.rows, fields)
	return t
}

// AddComment appends a one-field comment row. Returns the Table for
// chaining.
func (t *Table) AddComment(text string) *Table {
	t.rows = append(t.rows, []string{text})
	return t
}

// Rows returns the table's rows. The slice is shared, not copied.
func (t *Table) Rows() [][]string {
	return t.rows
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Row returns the row at index i, or false when out of range.
func (t *Table) Row(i int) ([]string, bool) {
	if i < 0 || i >= len(t.rows) {
		return nil, false
	}
	return t.rows[i], true
}

// CSV renders the table as compact CSV text with default options.
func (t *Table) CSV() string {
	return Format(t.rows)
}

// CSVWithOptions renders the table as compact CSV text.
func (t *Table) CSVWithOptions(opts WriterOptions) string {
	return FormatWithOptions(t.rows, opts)
}

// Tidy renders the table column-aligned with default options.
func (t *Table) Tidy() string {
	return FormatTidy(t.rows)
}

// TidyWithOptions renders the table column-aligned.
func (t *Table) TidyWithOptions(opts TidyOptions) string {
	return FormatTidyWithOptions(t.rows, opts)
}
