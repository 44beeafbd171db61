package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

type recorder struct {
	lines []string
}

func (r *recorder) Log(line string) { r.lines = append(r.lines, line) }

func TestFormat(t *testing.T) {
	tests := []struct {
		level Level
		msg   string
		want  string
	}{
		{LevelInfo, "hello", "&6[INFO] &fhello"},
		{LevelWarning, "careful", "&6[WARNING] &ecareful"},
		{LevelError, "broke", "&6[ERROR] &4broke"},
		{LevelSuccess, "done", "&6[SUCCESS] &adone"},
		{LevelError, "fish & chips", "&6[ERROR] &4fish && chips"},
		{LevelInfo, "&cred?", "&6[INFO] &f&&cred?"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String()+"/"+tt.msg, func(t *testing.T) {
			if got := Format(tt.level, tt.msg); got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotifier_SectionRenderer(t *testing.T) {
	rec := &recorder{}
	n := New(rec, SectionRenderer)

	n.Error("[Updater] Failed & done")
	n.Success("ok")

	want := []string{
		"§6[ERROR] §4[Updater] Failed & done",
		"§6[SUCCESS] §aok",
	}
	if len(rec.lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(rec.lines), len(want))
	}
	for i := range want {
		if rec.lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, rec.lines[i], want[i])
		}
	}
}

func TestNotifier_PlainRenderer(t *testing.T) {
	rec := &recorder{}
	n := New(rec, nil)

	n.Warn("&lnot bold")
	if got := rec.lines[0]; got != "[WARNING] &lnot bold" {
		t.Errorf("line = %q", got)
	}
}

func TestNotifier_LogIsRaw(t *testing.T) {
	rec := &recorder{}
	New(rec, SectionRenderer).Log("&6raw")
	if rec.lines[0] != "&6raw" {
		t.Errorf("Log modified the message: %q", rec.lines[0])
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	New(WriterSink(&buf), PlainRenderer).Info("one")
	New(WriterSink(&buf), PlainRenderer).Info("two")

	if buf.String() != "[INFO] one\n[INFO] two\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLoggerSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{})
	New(LoggerSink(logger), PlainRenderer).Error("boom")

	if !strings.Contains(buf.String(), "[ERROR] boom") {
		t.Errorf("logger output = %q", buf.String())
	}
}

func TestTerminalRenderer_KeepsText(t *testing.T) {
	rec := &recorder{}
	New(rec, NewTerminalRenderer(&bytes.Buffer{})).Success("Updated foo & bar")

	if !strings.Contains(rec.lines[0], "[SUCCESS]") || !strings.Contains(rec.lines[0], "Updated foo & bar") {
		t.Errorf("rendered line = %q", rec.lines[0])
	}
}

func TestTerminalRenderer_NoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	New(WriterSink(&buf), NewTerminalRenderer(&buf)).Error("boom")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("escape codes written to a non-terminal: %q", buf.String())
	}
	if buf.String() != "[ERROR] boom\n" {
		t.Errorf("output = %q", buf.String())
	}
}
