package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"rumor-checker/models"
)

var logHeader = []string{"timestamp", "user_text", "result"}

// RequestLogger appends one CSV row per analyzed request. A mutex scopes
// exclusive access to the file for the duration of one append, so
// concurrent requests cannot interleave rows.
type RequestLogger struct {
	mu   sync.Mutex
	path string
}

func NewRequestLogger(path string) *RequestLogger {
	return &RequestLogger{path: path}
}

// Append writes one row. When the file does not exist yet it is created
// with a UTF-8 BOM (for spreadsheet tools) and the header row.
func (l *RequestLogger) Append(entry models.LogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, statErr := os.Stat(l.path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if newFile {
		if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
		if err := w.Write(logHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	if err := w.Write([]string{entry.Timestamp, entry.UserText, entry.Result}); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush log file: %w", err)
	}
	return nil
}
