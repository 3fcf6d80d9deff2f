// Package history keeps an append-only log of wizard runs.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pvermeer/zbminstall/internal/config"
)

// Operation represents the type of operation logged
type Operation string

const (
	OpValidate Operation = "validate"
	OpPlan     Operation = "plan"
	OpInstall  Operation = "install"
)

// Entry represents a single history log entry
type Entry struct {
	Timestamp time.Time
	Operation Operation
	Host      string
	Details   string
	Summary   string
}

// HistoryPath returns the path of the run log
func HistoryPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.log"), nil
}

// Log appends an entry to the history log
func Log(op Operation, host, details, summary string) error {
	path, err := HistoryPath()
	if err != nil {
		return err
	}

	if err := config.EnsureDir(); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	entry := formatEntry(Entry{
		Timestamp: time.Now(),
		Operation: op,
		Host:      host,
		Details:   details,
		Summary:   summary,
	})

	if _, err := f.WriteString(entry + "\n"); err != nil {
		return fmt.Errorf("failed to write history entry: %w", err)
	}

	return nil
}

// LogInstall logs a completed (or failed) install run
func LogInstall(host, pool string, drives []string, apply bool, runErr error) error {
	mode := "simulated"
	if apply {
		mode = "applied"
	}
	details := fmt.Sprintf("pool=%s;drives=%s;%s", pool, strings.Join(drives, ","), mode)

	summary := "success"
	if runErr != nil {
		summary = "failed: " + runErr.Error()
	}
	return Log(OpInstall, host, details, summary)
}

// LogValidate logs a validation run
func LogValidate(host string, failed int) error {
	summary := "passed"
	if failed > 0 {
		summary = fmt.Sprintf("%d check(s) failed", failed)
	}
	return Log(OpValidate, host, "", summary)
}

// LogPlan logs a plan preview
func LogPlan(host, pool string, drives []string, steps int) error {
	details := fmt.Sprintf("pool=%s;drives=%s", pool, strings.Join(drives, ","))
	return Log(OpPlan, host, details, fmt.Sprintf("%d steps", steps))
}

// Read returns the most recent history entries, newest first
func Read(limit int) ([]Entry, error) {
	path, err := HistoryPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		entry, err := parseEntry(line)
		if err != nil {
			continue // Skip malformed entries
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading history file: %w", err)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return entries, nil
}

// Clear removes all history entries
func Clear() error {
	path, err := HistoryPath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// formatEntry formats an entry for the log file
// Format: timestamp|operation|host|details|summary
func formatEntry(e Entry) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		e.Timestamp.Format(time.RFC3339),
		e.Operation,
		e.Host,
		e.Details,
		e.Summary,
	)
}

// parseEntry parses a log line into an Entry
func parseEntry(line string) (Entry, error) {
	parts := strings.SplitN(line, "|", 5)
	if len(parts) < 5 {
		return Entry{}, fmt.Errorf("invalid entry format")
	}

	timestamp, err := time.Parse(time.RFC3339, parts[0])
	if err != nil {
		return Entry{}, fmt.Errorf("invalid timestamp: %w", err)
	}

	return Entry{
		Timestamp: timestamp,
		Operation: Operation(parts[1]),
		Host:      parts[2],
		Details:   parts[3],
		Summary:   parts[4],
	}, nil
}

// Format returns a human-readable representation of an entry
func (e Entry) Format(detailed bool) string {
	timeStr := e.Timestamp.Format("2006-01-02 15:04")

	if detailed {
		return fmt.Sprintf("%s  %-9s  %-12s  %s  (%s)",
			timeStr,
			e.Operation,
			e.Host,
			e.Details,
			e.Summary,
		)
	}

	return fmt.Sprintf("%s  %-9s  %s  %s",
		timeStr,
		e.Operation,
		e.Host,
		e.Summary,
	)
}
