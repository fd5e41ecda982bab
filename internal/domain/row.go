package domain

// Row is one spreadsheet row: an ordered sequence of cells. A cell is a
// string or a number. The add-on pastes the values into the sheet as-is and
// owns them once returned; nothing here mutates a row after it is built.
type Row []any

// Table is what the search endpoint returns: the 2-D array the sheet
// renders. The pipeline always produces exactly one row, of variable width.
type Table []Row

// SingleCell wraps one message into a one-row, one-cell table. Every failure
// kind ends up here so the sheet shows a readable cell instead of #ERROR!.
func SingleCell(message string) Table {
	return Table{Row{message}}
}
