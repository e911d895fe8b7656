package key

import "github.com/gdamore/tcell/v2"

/**
 * Keys and Runes!
 */

const (
	RuneApply = 'a'
	RuneQuit  = 'q'
)

const (
	KeyCtrlC = tcell.KeyCtrlC
	KeyEnter = tcell.KeyEnter
	KeyEsc   = tcell.KeyEsc
)
