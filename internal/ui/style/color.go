package style

import "github.com/gdamore/tcell/v2"

/**
 * Styles and Colors!
 */

const (
	ColorDefault     = tcell.ColorDefault
	ColorBlack       = tcell.ColorBlack
	ColorWhite       = tcell.ColorWhite
	ColorPurple      = tcell.ColorMediumPurple
	ColorLightGreen  = tcell.ColorLightSeaGreen
	ColorMediumGreen = tcell.ColorMediumSeaGreen
	ColorOrange      = tcell.ColorOrange
	ColorDimGrey     = tcell.ColorDimGrey
)

var (
	StyleDefault = tcell.StyleDefault
)
