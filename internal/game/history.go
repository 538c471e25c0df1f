package game

import (
	"fmt"
	"os"
	"path/filepath"
)

// HistoryWriter records completed rounds.
type HistoryWriter interface {
	WriteRound(result Result) error
}

// FileHistoryWriter appends one line per round to a session log file
type FileHistoryWriter struct {
	directory string
	filename  string
}

// NewFileHistoryWriter creates a writer for the log of sessionID in directory.
func NewFileHistoryWriter(directory, sessionID string) *FileHistoryWriter {
	return &FileHistoryWriter{
		directory: directory,
		filename:  fmt.Sprintf("session_%s.log", sessionID),
	}
}

// Path returns the file the writer appends to.
func (w *FileHistoryWriter) Path() string {
	return filepath.Join(w.directory, w.filename)
}

// WriteRound appends the round summary to the session log
func (w *FileHistoryWriter) WriteRound(result Result) error {
	if err := os.MkdirAll(w.directory, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(w.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, result.Summary()); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// NoOpHistoryWriter discards rounds
type NoOpHistoryWriter struct{}

// WriteRound does nothing
func (w *NoOpHistoryWriter) WriteRound(Result) error {
	return nil
}
