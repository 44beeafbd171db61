package notify

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ControlChar is the reserved markup character.
const ControlChar = '&'

// SectionSign is what the game chat expects in place of ControlChar.
const SectionSign = '§'

// Escape doubles every ControlChar so text renders literally.
func Escape(text string) string {
	return strings.ReplaceAll(text, string(ControlChar), string(ControlChar)+string(ControlChar))
}

// Segment is a run of text sharing the same formatting codes. The
// obfuscated code (&k) is consumed but has no field; no renderer draws it.
type Segment struct {
	Text      string
	Color     byte // 0 when no color code applies
	Bold      bool
	Strike    bool
	Underline bool
	Italic    bool
}

// legacyColors maps the 16 chat color codes to their RGB values.
var legacyColors = map[byte]string{
	'0': "#000000",
	'1': "#0000AA",
	'2': "#00AA00",
	'3': "#00AAAA",
	'4': "#AA0000",
	'5': "#AA00AA",
	'6': "#FFAA00",
	'7': "#AAAAAA",
	'8': "#555555",
	'9': "#5555FF",
	'a': "#55FF55",
	'b': "#55FFFF",
	'c': "#FF5555",
	'd': "#FF55FF",
	'e': "#FFFF55",
	'f': "#FFFFFF",
}

func isFormatCode(c byte) bool {
	switch c {
	case 'k', 'l', 'm', 'n', 'o', 'r':
		return true
	}
	return false
}

func isCode(c byte) bool {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	_, ok := legacyColors[c]
	return ok || isFormatCode(c)
}

// Parse splits markup into styled segments. "&&" yields a literal "&", an
// "&" followed by anything that is not a code is kept as-is.
func Parse(markup string) []Segment {
	var (
		segs []Segment
		cur  Segment
		buf  strings.Builder
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		cur.Text = buf.String()
		segs = append(segs, cur)
		buf.Reset()
	}

	for i := 0; i < len(markup); i++ {
		c := markup[i]
		if c != ControlChar || i+1 >= len(markup) {
			buf.WriteByte(c)
			continue
		}
		next := markup[i+1]
		if next == ControlChar {
			buf.WriteByte(ControlChar)
			i++
			continue
		}
		if !isCode(next) {
			buf.WriteByte(c)
			continue
		}
		flush()
		if next >= 'A' && next <= 'Z' {
			next += 'a' - 'A'
		}
		switch next {
		case 'k':
			// Obfuscated text is drawn as-is.
		case 'l':
			cur.Bold = true
		case 'm':
			cur.Strike = true
		case 'n':
			cur.Underline = true
		case 'o':
			cur.Italic = true
		case 'r':
			cur = Segment{}
		default:
			// A color code resets formatting, as in the game.
			cur = Segment{Color: next}
		}
		i++
	}
	flush()
	return segs
}

// Renderer converts markup into a displayable line.
type Renderer interface {
	Render(markup string) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(markup string) string

// Render implements Renderer.
func (f RendererFunc) Render(markup string) string { return f(markup) }

// SectionRenderer swaps the markup character for the section sign, the
// format the game chat understands. "&&" collapses to "&".
var SectionRenderer = RendererFunc(func(markup string) string {
	var b strings.Builder
	for i := 0; i < len(markup); i++ {
		c := markup[i]
		if c == ControlChar && i+1 < len(markup) {
			next := markup[i+1]
			if next == ControlChar {
				b.WriteByte(ControlChar)
				i++
				continue
			}
			if isCode(next) {
				b.WriteRune(SectionSign)
				b.WriteByte(next)
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
})

// PlainRenderer drops every code.
var PlainRenderer = RendererFunc(func(markup string) string {
	var b strings.Builder
	for _, seg := range Parse(markup) {
		b.WriteString(seg.Text)
	}
	return b.String()
})

// TerminalRenderer styles each segment with lipgloss. Colors degrade to
// whatever the output supports, and disappear entirely when it is not a TTY.
type TerminalRenderer struct {
	r *lipgloss.Renderer
}

// NewTerminalRenderer returns a renderer whose color support is detected
// on w, the writer the rendered lines end up on.
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{r: lipgloss.NewRenderer(w)}
}

// Render implements Renderer.
func (t *TerminalRenderer) Render(markup string) string {
	var b strings.Builder
	for _, seg := range Parse(markup) {
		style := t.r.NewStyle()
		if hex, ok := legacyColors[seg.Color]; ok {
			style = style.Foreground(lipgloss.Color(hex))
		}
		style = style.
			Bold(seg.Bold).
			Strikethrough(seg.Strike).
			Underline(seg.Underline).
			Italic(seg.Italic)
		b.WriteString(style.Render(seg.Text))
	}
	return b.String()
}
