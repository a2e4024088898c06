package glass

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor   tcell.Color
	FocusedGraphicsColor tcell.Color

	BlurBorderColor   tcell.Color
	BlurGraphicsColor tcell.Color

	TitleColor  tcell.Color
	HotkeyColor string
	ButtonColor tcell.Color
	LogColor    tcell.Color
}

var Style = Styles{
	FocusedBorderColor:   tcell.ColorCornflowerBlue,
	FocusedGraphicsColor: tcell.ColorWhite,

	BlurBorderColor:   tcell.ColorGray,
	BlurGraphicsColor: tcell.ColorGray,

	TitleColor:  tcell.ColorGhostWhite,
	HotkeyColor: "yellow",
	ButtonColor: tcell.ColorDarkSlateGray,
	LogColor:    tcell.ColorLightGray,
}

var (
	focusedStyle = tcell.StyleDefault.Foreground(Style.FocusedBorderColor).Background(tcell.ColorBlack)
	blurredStyle = tcell.StyleDefault.Foreground(Style.BlurBorderColor).Background(tcell.ColorBlack)
)
