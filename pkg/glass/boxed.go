package glass

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type boxedContent interface {
	tview.Primitive
	GetTitle() string
	SetTitle(title string) *tview.Box
	SetBorderPadding(top, bottom, left, right int) *tview.Box
}

// boxed draws a titled frame around its content: double lines while focused,
// single lines otherwise.
type boxed struct {
	boxedContent
	o boxOptions
}

type boxOptions struct {
	leftBorder  bool
	rightBorder bool
	padding     int
}

type BoxOption func(*boxOptions)

func WithLeftBorder() BoxOption {
	return func(opts *boxOptions) {
		opts.leftBorder = true
	}
}

func WithRightBorder() BoxOption {
	return func(opts *boxOptions) {
		opts.rightBorder = true
	}
}

func WithPadding(padding int) BoxOption {
	return func(opts *boxOptions) {
		opts.padding = padding
	}
}

func newBoxed(inner boxedContent, title string, o ...BoxOption) *boxed {
	b := boxed{
		boxedContent: inner,
	}
	for _, option := range o {
		option(&b.o)
	}
	left, right := b.o.padding, b.o.padding
	if b.o.leftBorder {
		left++
	}
	if b.o.rightBorder {
		right++
	}
	inner.SetTitle(title)
	inner.SetBorderPadding(1, 1, left, right)
	return &b
}

func (b boxed) Draw(screen tcell.Screen) {
	b.boxedContent.Draw(screen)
	b.drawBorders(screen)
}

type frameRunes struct {
	horizontal, vertical                       rune
	topLeft, topRight, bottomLeft, bottomRight rune
	titleLeft, titleRight                      rune
}

var (
	focusedFrame = frameRunes{'═', '║', '╔', '╗', '╚', '╝', '╡', '╞'}
	blurredFrame = frameRunes{'─', '│', '┌', '┐', '└', '┘', '┤', '├'}
)

func (b boxed) drawBorders(screen tcell.Screen) {
	x, y, width, height := b.GetRect()
	if width <= 0 || height <= 0 {
		return
	}
	lineStyle, frame := blurredStyle, blurredFrame
	if b.HasFocus() {
		lineStyle, frame = focusedStyle, focusedFrame
	}

	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, frame.horizontal, nil, lineStyle)
		screen.SetContent(x+i, y+height-1, frame.horizontal, nil, lineStyle)
	}

	if title := b.GetTitle(); title != "" {
		titleWidth := tview.TaggedStringWidth(title)
		if titleWidth+2 < width {
			start := x + (width-titleWidth)/2
			screen.SetContent(start-1, y, frame.titleLeft, nil, lineStyle)
			tview.Print(screen, title, start, y, titleWidth, tview.AlignLeft, Style.TitleColor)
			screen.SetContent(start+titleWidth, y, frame.titleRight, nil, lineStyle)
		}
	}

	verticalBorder := func(x int, top, bottom rune) {
		screen.SetContent(x, y, top, nil, lineStyle)
		for i := 1; i < height-1; i++ {
			screen.SetContent(x, y+i, frame.vertical, nil, lineStyle)
		}
		screen.SetContent(x, y+height-1, bottom, nil, lineStyle)
	}
	if b.o.leftBorder {
		verticalBorder(x, frame.topLeft, frame.bottomLeft)
	}
	if b.o.rightBorder {
		verticalBorder(x+width-1, frame.topRight, frame.bottomRight)
	}
}
