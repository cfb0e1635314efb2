package identifier

import "testing"

func TestIsDOI(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10.5281/zenodo.1234567", true},
		{"10.1101/2020.01.01.123456", true},
		{"10.1000.10/123456", true},
		{"10.5072/zenodo.1005912", true},
		{"10.1/foo", false},
		{"11.1234/foo", false},
		{"10.1234/", false},
		{"10.1234/has space", false},
		{"https://doi.org/10.1234/abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsDOI(tt.input); got != tt.want {
				t.Errorf("IsDOI(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsORCID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0000-0002-1825-0097", true},
		{"0000-0001-5109-3700", true},
		{"0000-0002-1694-233X", true},
		{"0000-0002-1825-0098", false}, // bad check digit
		{"0000000218250097", false},    // no dashes
		{"0000-0002-1694-233x", false}, // lowercase check character
		{"https://orcid.org/0000-0002-1825-0097", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsORCID(tt.input); got != tt.want {
				t.Errorf("IsORCID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsArxivID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"arXiv:2106.15928", true},
		{"arXiv:2106.15928v3", true},
		{"arXiv:0704.0001", true},
		{"arXiv:hep-th/9901001", true},
		{"arXiv:math.GT/0309136v1", true},
		{"2106.15928", false},
		{"arxiv:2106.15928", false},
		{"arXiv:2106.159", false},
		{"arXiv:", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsArxivID(tt.input); got != tt.want {
				t.Errorf("IsArxivID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsUUID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2e9e5e2c-63b6-4b0e-8f0a-9a1d5e5a7c11", true},
		{"00000000-0000-0000-0000-000000000000", true},
		{"2e9e5e2c63b64b0e8f0a9a1d5e5a7c11", false},
		{"{2e9e5e2c-63b6-4b0e-8f0a-9a1d5e5a7c11}", false},
		{"urn:uuid:2e9e5e2c-63b6-4b0e-8f0a-9a1d5e5a7c11", false},
		{"2e9e5e2c-63b6-4b0e-8f0a-9a1d5e5a7c1z", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsUUID(tt.input); got != tt.want {
				t.Errorf("IsUUID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
