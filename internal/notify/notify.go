package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Level is the severity of a message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the bracketed tag text for the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelSuccess:
		return "SUCCESS"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// prefix is the markup placed before the escaped message: a gold tag
// followed by the level's body color.
func (l Level) prefix() string {
	body := "f"
	switch l {
	case LevelWarning:
		body = "e"
	case LevelError:
		body = "4"
	case LevelSuccess:
		body = "a"
	}
	return "&6[" + l.String() + "] &" + body
}

// Format builds the markup line for msg at level l.
func Format(l Level, msg string) string {
	return l.prefix() + Escape(msg)
}

// Sink receives finished lines.
type Sink interface {
	Log(line string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(line string)

// Log implements Sink.
func (f SinkFunc) Log(line string) { f(line) }

// WriterSink writes one line per message to w. Write errors are ignored.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(line string) {
		fmt.Fprintln(w, line)
	})
}

// LoggerSink hands lines to a charmbracelet logger without a level, so the
// message keeps its own tag.
func LoggerSink(l *log.Logger) Sink {
	return SinkFunc(func(line string) {
		l.Print(line)
	})
}

// Reporter is the subset of Notifier other packages depend on.
type Reporter interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Success(msg string)
}

// Notifier emits leveled messages. It holds no state beyond its sink and
// renderer and is safe to share.
type Notifier struct {
	sink     Sink
	renderer Renderer
}

var _ Reporter = (*Notifier)(nil)

// New returns a Notifier writing through sink with renderer r.
// A nil renderer means PlainRenderer.
func New(sink Sink, r Renderer) *Notifier {
	if r == nil {
		r = PlainRenderer
	}
	return &Notifier{sink: sink, renderer: r}
}

// Discard returns a Notifier that drops everything.
func Discard() *Notifier {
	return New(SinkFunc(func(string) {}), PlainRenderer)
}

// Log forwards msg unformatted.
func (n *Notifier) Log(msg string) { n.sink.Log(msg) }

// Info reports an informational message.
func (n *Notifier) Info(msg string) { n.emit(LevelInfo, msg) }

// Warn reports a warning.
func (n *Notifier) Warn(msg string) { n.emit(LevelWarning, msg) }

// Error reports an error.
func (n *Notifier) Error(msg string) { n.emit(LevelError, msg) }

// Success reports a completed action.
func (n *Notifier) Success(msg string) { n.emit(LevelSuccess, msg) }

func (n *Notifier) emit(l Level, msg string) {
	n.sink.Log(n.renderer.Render(Format(l, msg)))
}
