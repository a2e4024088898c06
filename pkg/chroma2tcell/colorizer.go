package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const DefaultStyle = "dracula"

var currentStyle = DefaultStyle

// SetStyle selects the chroma style used by ColorizeFile. Unknown names fall back at render time.
func SetStyle(name string) {
	if name == "" {
		name = DefaultStyle
	}
	currentStyle = name
}

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var matchLexer = lexers.Match

// Colorize renders text as tview color-tagged text. Token values are escaped
// so brackets in the source are not taken for tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		value := tview.Escape(token.Value)
		color := style.Get(token.Type)
		if color.IsZero() || !color.Colour.IsSet() {
			sb.WriteString(value)
			continue
		}
		sb.WriteString("[" + color.Colour.String() + "]")
		sb.WriteString(value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeFile picks a lexer by file name. When none matches the text is only escaped
// and highlighted is false.
func ColorizeFile(fileName, text string) (colorized string, highlighted bool, err error) {
	lexer := matchLexer(fileName)
	if lexer == nil {
		return tview.Escape(text), false, nil
	}
	if colorized, err = Colorize(text, currentStyle, lexer); err != nil {
		return tview.Escape(text), false, err
	}
	return colorized, true, nil
}
