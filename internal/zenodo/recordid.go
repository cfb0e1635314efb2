package zenodo

import (
	"fmt"
	"regexp"
	"strconv"
)

// Zenodo DOIs are 10.5281/zenodo.<id>; the sandbox uses 10.5072.
var recordDOIPattern = regexp.MustCompile(`^10\.(?:5072|5281|)/zenodo\.([1-9][0-9]*)$`)

// RecordIDFromDOI extracts the numeric record ID from a Zenodo DOI.
func RecordIDFromDOI(doi string) (int, error) {
	matches := recordDOIPattern.FindStringSubmatch(doi)
	if matches == nil {
		return 0, fmt.Errorf("%w: %s", ErrNotZenodoDOI, doi)
	}
	return ParseRecordID(matches[1])
}

// ParseRecordID parses a positive integer record ID.
func ParseRecordID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRecordID, s)
	}
	return id, nil
}

// DOIForRecord returns the DOI Zenodo mints for a record ID under prefix,
// e.g. "10.5281".
func DOIForRecord(prefix string, id int) string {
	return fmt.Sprintf("%s/zenodo.%d", prefix, id)
}
