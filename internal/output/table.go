package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// emptyCells are the placeholders rendered for nil and empty values. They
// are drawn faint.
var emptyCells = map[string]bool{"-": true, "[]": true, "{}": true}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// ValueTable is a two-column KEY/VALUE listing of configuration values.
// Keys are styled as nouns.
type ValueTable struct {
	rows [][]string
}

// NewValueTable creates an empty value table.
func NewValueTable() *ValueTable {
	return &ValueTable{}
}

// Row adds a key and its rendered value.
func (t *ValueTable) Row(key, value string) *ValueTable {
	t.rows = append(t.rows, []string{key, value})
	return t
}

// Len returns the number of data rows.
func (t *ValueTable) Len() int {
	return len(t.rows)
}

// String renders the table as a string.
func (t *ValueTable) String() string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers("KEY", "VALUE").
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0:
				return tableCellStyle.Foreground(ColorCyan)
			case row < len(t.rows) && emptyCells[t.rows[row][col]]:
				return tableCellStyle.Faint(true)
			}
			return tableCellStyle
		})
	return tbl.String()
}
