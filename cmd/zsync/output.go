package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prereview/zsync/internal/zenodo"
)

// Title truncation length for human-readable listings.
const ListTitleMaxLen = 60

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable line.
func outputHuman(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// RecordIDResponse is the response for the record-id command.
type RecordIDResponse struct {
	DOI      string `json:"doi"`
	RecordID int    `json:"record_id"`
}

// ReviewSummary is one line of the reviews command.
type ReviewSummary struct {
	UUID     string `json:"uuid"`
	DOI      string `json:"doi,omitempty"`
	Preprint string `json:"preprint"`
	Title    string `json:"title"`
	Authors  int    `json:"authors"`
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatCreators formats creators as "Name, Name, ...".
func formatCreators(creators []zenodo.Creator) string {
	names := make([]string, len(creators))
	for i, c := range creators {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// printRecordHuman prints a one-record summary.
func printRecordHuman(w io.Writer, r zenodo.Record) {
	outputHuman(w, "%d  %s\n", r.ID, r.DOI)
	outputHuman(w, "   %s\n", truncateString(r.Metadata.Title, ListTitleMaxLen))
	outputHuman(w, "   %s\n", formatCreators(r.Metadata.Creators))
}
