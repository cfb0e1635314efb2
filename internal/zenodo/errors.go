package zenodo

import "errors"

// Common errors returned by the Zenodo client.
var (
	// ErrUnavailable wraps every failure to read from Zenodo.
	ErrUnavailable = errors.New("unable to read from Zenodo")

	// ErrInvalidRecord indicates a record failed validation.
	ErrInvalidRecord = errors.New("invalid Zenodo record")

	// ErrNotZenodoDOI indicates a DOI that was not minted by Zenodo.
	ErrNotZenodoDOI = errors.New("not a DOI with a Zenodo record ID")

	// ErrInvalidRecordID indicates a record ID that is not a positive integer.
	ErrInvalidRecordID = errors.New("invalid Zenodo record ID")
)
