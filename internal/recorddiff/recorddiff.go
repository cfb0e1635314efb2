// Package recorddiff produces unified diffs between two Zenodo records.
package recorddiff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/prereview/zsync/internal/zenodo"
)

// ContextLines is the number of unchanged lines shown around each change.
const ContextLines = 4

// Patch is a unified diff between two encoded records.
type Patch struct {
	Hunks int
	text  string
}

// Empty reports whether the two records encoded identically.
func (p Patch) Empty() bool {
	return p.Hunks == 0
}

// String returns the unified diff text, or "" for an empty patch.
func (p Patch) String() string {
	return p.text
}

// Compare diffs the JSON encodings of actual and expected. fromName and
// toName label the two sides in the diff header.
func Compare(fromName, toName string, actual, expected zenodo.Record) (Patch, error) {
	a, err := zenodo.EncodeRecord(actual)
	if err != nil {
		return Patch{}, err
	}
	b, err := zenodo.EncodeRecord(expected)
	if err != nil {
		return Patch{}, err
	}
	return Lines(fromName, toName, string(a), string(b))
}

// Lines diffs two texts line by line.
func Lines(fromName, toName, a, b string) (Patch, error) {
	aLines := difflib.SplitLines(a)
	bLines := difflib.SplitLines(b)

	hunks := len(difflib.NewMatcher(aLines, bLines).GetGroupedOpCodes(ContextLines))
	if hunks == 0 {
		return Patch{}, nil
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        aLines,
		B:        bLines,
		FromFile: fromName,
		ToFile:   toName,
		Context:  ContextLines,
	})
	if err != nil {
		return Patch{}, fmt.Errorf("writing diff: %w", err)
	}
	return Patch{Hunks: hunks, text: text}, nil
}
