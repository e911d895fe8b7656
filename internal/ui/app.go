package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"portscribe/internal/pipeline"
	"portscribe/internal/ui/key"
	"portscribe/internal/util"
)

type app struct {
	tvApp    *tview.Application
	view     *view
	changes  []*pipeline.Change
	approved bool
}

func newApp(changes []*pipeline.Change) *app {
	uiApp := &app{
		tvApp:   tview.NewApplication(),
		changes: changes,
	}

	uiApp.view = newView(changes)

	return uiApp
}

func (a *app) bindKeys() {
	a.tvApp.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		if evt.Key() == key.KeyCtrlC {
			a.stop(false)
			return evt
		}

		if a.view.showingModal {
			return evt
		}

		if evt.Key() == key.KeyEsc || evt.Rune() == key.RuneQuit {
			a.stop(false)
			return nil
		}

		if evt.Rune() == key.RuneApply {
			a.confirm()
			return nil
		}

		return evt
	})
}

func (a *app) confirm() {
	writes := util.SliceCount(a.changes, (*pipeline.Change).NeedsWrite)

	if writes == 0 {
		a.stop(false)
		return
	}

	message := fmt.Sprintf("Apply %d description updates?", writes)

	a.view.showConfirm(
		message,
		func() {
			a.stop(true)
		},
		func() {
			a.view.hideConfirm()
		},
	)
}

func (a *app) stop(approved bool) {
	a.approved = approved
	a.tvApp.Stop()
}

func (a *app) run() (bool, error) {
	a.bindKeys()

	if err := a.tvApp.SetRoot(a.view.root, true).EnableMouse(true).Run(); err != nil {
		return false, err
	}

	return a.approved, nil
}
