package component

import (
	"strings"

	"github.com/rivo/tview"

	"portscribe/internal/pipeline"
	"portscribe/internal/ui/style"
)

// ChangeTable displays the planned description updates for review
type ChangeTable struct {
	table         *tview.Table
	columnHeaders []string
}

// NewChangeTable returns a new instance of ChangeTable
func NewChangeTable() *ChangeTable {
	columnHeaders := []string{
		"SWITCH",
		"INTERFACE",
		"STATUS",
		"MACS",
		"IP",
		"CURRENT",
		"PLANNED",
		"REASON",
	}

	table := createTable("planned changes", columnHeaders)

	return &ChangeTable{
		table:         table,
		columnHeaders: columnHeaders,
	}
}

// Primitive returns the root primitive for ChangeTable
func (t *ChangeTable) Primitive() tview.Primitive {
	return t.table
}

// UpdateTable fills in one row per change, write-worthy rows in
// green, exceptions in orange, untouched ports dimmed
func (t *ChangeTable) UpdateTable(changes []*pipeline.Change) {
	for rowIdx, change := range changes {
		row := []string{
			change.Switch,
			change.Port,
			string(change.Status),
			strings.Join(change.Macs, " "),
			change.IP,
			change.OldDescription,
			change.NewDescription,
			change.Reason,
		}

		color := style.ColorDimGrey

		if change.NeedsWrite() {
			color = style.ColorMediumGreen
		}

		if change.Exception() {
			color = style.ColorOrange
		}

		for col, text := range row {
			cell := tview.NewTableCell(text)
			cell.SetExpansion(1)
			cell.SetAlign(tview.AlignLeft)
			cell.SetTextColor(color)
			t.table.SetCell(rowIdx+1, col, cell)
		}
	}
}
