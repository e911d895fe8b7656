package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"portscribe/internal/pipeline"
	"portscribe/internal/ui/component"
	"portscribe/internal/ui/style"
)

const modalPage = "confirm"

type view struct {
	root         *tview.Pages
	changeTable  *component.ChangeTable
	showingModal bool
}

func newView(changes []*pipeline.Change) *view {
	writes := 0
	exceptions := 0
	switches := map[string]bool{}

	for _, change := range changes {
		switches[change.Switch] = true

		if change.NeedsWrite() {
			writes++
		}

		if change.Exception() {
			exceptions++
		}
	}

	summary := tview.NewTextView().
		SetText(
			fmt.Sprintf(
				"%d ports on %d switches: %d planned updates, %d exceptions",
				len(changes),
				len(switches),
				writes,
				exceptions,
			),
		)

	summary.SetTextColor(style.ColorLightGreen)
	summary.SetTextAlign(tview.AlignLeft)

	legend := tview.NewTextView().
		SetText("a - apply updates, q - quit without applying")

	legend.SetTextColor(style.ColorOrange)
	legend.SetTextAlign(tview.AlignLeft)

	changeTable := component.NewChangeTable()
	changeTable.UpdateTable(changes)

	layout := tview.NewFlex().SetDirection(tview.FlexRow)
	layout.AddItem(summary, 1, 1, false)
	layout.AddItem(legend, 1, 1, false)
	layout.AddItem(changeTable.Primitive(), 0, 1, true)

	root := tview.NewPages()
	root.AddPage("review", layout, true, true)

	return &view{
		root:        root,
		changeTable: changeTable,
	}
}

func (v *view) showConfirm(message string, onYes func(), onNo func()) {
	modal := component.NewModal(message, []component.ModalButton{
		{Label: "Yes", OnClick: onYes},
		{Label: "No", OnClick: onNo},
	})

	v.root.AddPage(modalPage, modal.Primitive(), true, true)
	v.showingModal = true
}

func (v *view) hideConfirm() {
	v.root.RemovePage(modalPage)
	v.showingModal = false
}
