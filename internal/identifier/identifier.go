// Package identifier validates the identifier schemes exchanged with
// PREreview and Zenodo: DOIs, ORCID iDs, arXiv IDs and UUIDs.
package identifier

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// 10.<registrant>[.<sub>...]/<suffix>
	doiPattern = regexp.MustCompile(`^10[.][0-9]{2,}(?:[.][0-9]+)*/\S+$`)

	orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

	// Matches: 2106.15928, 2106.15928v2, 0704.0001
	arxivNewPattern = regexp.MustCompile(`^\d{4}\.\d{4,5}(?:v\d+)?$`)
	// Matches: hep-th/9901001, math.GT/0309136v1
	arxivOldPattern = regexp.MustCompile(`^[a-z]+(?:-[a-z]+)*(?:\.[A-Z]{2})?/\d{7}(?:v\d+)?$`)
)

// ArxivPrefix is the prefix every arXiv ID carries.
const ArxivPrefix = "arXiv:"

// IsDOI reports whether s is a DOI (10.NNNN/suffix).
func IsDOI(s string) bool {
	return doiPattern.MatchString(s)
}

// IsORCID reports whether s is an ORCID iD in dash format with a valid
// check digit.
func IsORCID(s string) bool {
	if !orcidPattern.MatchString(s) {
		return false
	}
	digits := strings.ReplaceAll(s, "-", "")
	return orcidCheckDigit(digits[:15]) == digits[15]
}

// orcidCheckDigit computes the ISO 7064 MOD 11-2 check character.
func orcidCheckDigit(base string) byte {
	total := 0
	for i := 0; i < len(base); i++ {
		total = (total + int(base[i]-'0')) * 2
	}
	result := (12 - total%11) % 11
	if result == 10 {
		return 'X'
	}
	return byte('0' + result)
}

// IsArxivID reports whether s is a prefixed arXiv ID, e.g. "arXiv:2106.15928".
func IsArxivID(s string) bool {
	id, ok := strings.CutPrefix(s, ArxivPrefix)
	if !ok {
		return false
	}
	return arxivNewPattern.MatchString(id) || arxivOldPattern.MatchString(id)
}

// IsUUID reports whether s is a UUID in the canonical hyphenated form.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
