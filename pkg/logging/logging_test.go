package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdLoggerPrintfWritesLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf, false)
	l.Printf("pass %d done in %s", 3, "12ms")
	if got := buf.String(); !strings.Contains(got, "pass 3 done in 12ms") {
		t.Errorf("Printf output = %q, missing formatted message", got)
	}
}

func TestStdLoggerDebugfSuppressedWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf, false)
	l.Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestStdLoggerDebugfEmittedWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf, true)
	l.Debugf("visible %d", 1)
	if got := buf.String(); !strings.Contains(got, "visible 1") {
		t.Errorf("Debugf output = %q, missing formatted message", got)
	}
}

func TestStdLoggerWarnfAndErrorfPrefixed(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf, false)
	l.Warnf("slow snapshot write")
	l.Errorf("snapshot write failed: %s", "disk full")
	got := buf.String()
	if !strings.Contains(got, "WARN slow snapshot write") {
		t.Errorf("missing WARN prefix in %q", got)
	}
	if !strings.Contains(got, "ERROR snapshot write failed: disk full") {
		t.Errorf("missing ERROR prefix in %q", got)
	}
}

func TestStdLoggerImplementsLogger(t *testing.T) {
	var _ Logger = NewStdLogger(&bytes.Buffer{}, false)
}
