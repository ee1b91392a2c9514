package log

import (
	"io"
	"os"
	"sync"
)

// ConsoleOutput writes formatted entries to standard error, keeping standard
// output free for program results.
type ConsoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleOutput returns an Output writing to stderr.
func NewConsoleOutput() *ConsoleOutput {
	return &ConsoleOutput{w: os.Stderr}
}

// NewWriterOutput returns an Output writing to w.
func NewWriterOutput(w io.Writer) *ConsoleOutput {
	return &ConsoleOutput{w: w}
}

// Write implements Output.
func (o *ConsoleOutput) Write(_ *Entry, formattedEntry []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.w.Write(formattedEntry)
	return err
}

// Close implements Output. The underlying writer is not owned and stays open.
func (o *ConsoleOutput) Close() error { return nil }

// NullOutput discards all entries.
type NullOutput struct{}

// NewNullOutput returns an Output that drops everything.
func NewNullOutput() *NullOutput { return &NullOutput{} }

// Write implements Output.
func (o *NullOutput) Write(_ *Entry, _ []byte) error { return nil }

// Close implements Output.
func (o *NullOutput) Close() error { return nil }
