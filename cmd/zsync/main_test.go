package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prereview/zsync/internal/config"
	"github.com/prereview/zsync/internal/prereview"
)

const (
	reviewUUID = "2e9e5e2c-63b6-4b0e-8f0a-9a1d5e5a7c11"
	authorUUID = "7b1f0a3e-2c4d-4e5f-9a8b-1c2d3e4f5a6b"
)

const zenodoRecordJSON = `{
  "conceptdoi": "10.5281/zenodo.1000",
  "doi": "10.5281/zenodo.1001",
  "id": 1001,
  "links": {"latest": "https://zenodo.org/api/records/1001", "latest_html": "https://zenodo.org/records/1001"},
  "metadata": {
    "access_right": "open",
    "access_right_category": "success",
    "creators": [{"name": "Josiah Carberry", "orcid": "0000-0002-1825-0097"}],
    "description": "<p>Review</p>",
    "language": "eng",
    "license": {"id": "CC-BY-4.0"},
    "related_identifiers": [{"identifier": "10.5281/zenodo.1000", "relation": "isVersionOf", "scheme": "doi"}],
    "resource_type": {"subtype": "article", "type": "publication"},
    "title": "Review of An old title"
  }
}`

// setupEnv points zsync at test servers and an empty config directory.
func setupEnv(t *testing.T, prereviewURL, zenodoURL, apiKey string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvZenodoAPIKey, apiKey)
	t.Setenv(config.EnvPREreviewURL, prereviewURL)
	t.Setenv(config.EnvZenodoURL, zenodoURL)
	t.Setenv(config.EnvZenodoRateLimit, "0")
	t.Setenv(config.EnvTimeout, "")
	t.Setenv(config.EnvZenodoSandbox, "")
}

// execute runs zsync with args and returns the exit code and stdout.
func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)
	defer func() { humanOutput = false }()

	code := run(args)
	return code, out.String()
}

func newPREreviewServer(t *testing.T, reviewsBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/full-reviews", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(reviewsBody))
	})
	mux.HandleFunc("/api/v2/personas/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"name": "Josiah Carberry", "isAnonymous": false, "orcid": "0000-0002-1825-0097"}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newZenodoServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var auth []string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/records/1001", func(w http.ResponseWriter, r *http.Request) {
		auth = append(auth, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(zenodoRecordJSON))
	})
	mux.HandleFunc("/api/records", func(w http.ResponseWriter, r *http.Request) {
		auth = append(auth, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"hits": {"hits": [` + zenodoRecordJSON + `]}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &auth
}

func TestRun_MissingAPIKey(t *testing.T) {
	setupEnv(t, "http://127.0.0.1:1/", "http://127.0.0.1:1/api/", "")

	code, out := execute(t)
	if code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
}

func TestRun_NothingToDo(t *testing.T) {
	pr := newPREreviewServer(t, `{"data": []}`)
	zen, auth := newZenodoServer(t)
	setupEnv(t, pr.URL+"/", zen.URL+"/api/", "test-key")

	code, out := execute(t)
	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if len(*auth) != 0 {
		t.Errorf("Zenodo was called %d times", len(*auth))
	}
}

func TestRun_ChangesNeeded(t *testing.T) {
	pr := newPREreviewServer(t, `{"data": [{
		"uuid": "`+reviewUUID+`",
		"doi": "10.5281/zenodo.1001",
		"authors": [{"uuid": "`+authorUUID+`"}],
		"drafts": [{"contents": "text"}],
		"preprint": {"handle": "doi:10.1101/2020.01.01.123456", "title": "A new title"},
		"updatedAt": "2022-03-01T00:00:00Z"
	}]}`)
	zen, auth := newZenodoServer(t)
	setupEnv(t, pr.URL+"/", zen.URL+"/api/", "test-key")

	code, out := execute(t, "check")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(out, `-    "title": "Review of An old title"`) ||
		!strings.Contains(out, `+    "title": "Review of A new title"`) {
		t.Errorf("stdout missing title diff:\n%s", out)
	}
	if len(*auth) != 1 || (*auth)[0] != "Bearer test-key" {
		t.Errorf("Zenodo Authorization headers = %v", *auth)
	}
}

func TestRun_PREreviewDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	setupEnv(t, srv.URL+"/", srv.URL+"/api/", "test-key")

	if code, _ := execute(t); code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
}

func TestRecordIDCommand(t *testing.T) {
	setupEnv(t, "", "", "")

	code, out := execute(t, "record-id", "10.5281/zenodo.42")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	var resp RecordIDResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if resp.RecordID != 42 || resp.DOI != "10.5281/zenodo.42" {
		t.Errorf("response = %+v", resp)
	}

	if code, _ := execute(t, "record-id", "10.1101/123"); code != ExitError {
		t.Errorf("exit code for non-Zenodo DOI = %d, want %d", code, ExitError)
	}
}

func TestRecordCommand_Human(t *testing.T) {
	zen, _ := newZenodoServer(t)
	setupEnv(t, "", zen.URL+"/api/", "test-key")

	code, out := execute(t, "record", "1001", "--human")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out, "1001  10.5281/zenodo.1001") || !strings.Contains(out, "Josiah Carberry") {
		t.Errorf("stdout = %q", out)
	}
}

func TestSearchCommand(t *testing.T) {
	zen, _ := newZenodoServer(t)
	setupEnv(t, "", zen.URL+"/api/", "test-key")

	code, out := execute(t, "search", "title:review")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	var records []map[string]any
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestSearchQuery(t *testing.T) {
	q := searchQuery(`title:"Review of"`, 5, true, "prereview-reviews")
	want := "all_versions=true&communities=prereview-reviews&q=title%3A%22Review+of%22&size=5"
	if got := q.Encode(); got != want {
		t.Errorf("searchQuery() = %q, want %q", got, want)
	}

	if got := searchQuery("*", 0, false, "").Encode(); got != "q=%2A" {
		t.Errorf("searchQuery() = %q", got)
	}
}

func TestSummarizeReviews(t *testing.T) {
	doi := "10.5281/zenodo.1001"
	reviews := []prereview.FullReview{
		{
			UUID:     reviewUUID,
			DOI:      &doi,
			Authors:  []prereview.Author{{UUID: authorUUID}},
			Preprint: prereview.Preprint{Handle: prereview.Handle{Scheme: "arxiv", Identifier: "arXiv:2106.15928"}, Title: "T"},
		},
	}
	got := summarizeReviews(reviews)
	want := ReviewSummary{UUID: reviewUUID, DOI: doi, Preprint: "arxiv:2106.15928", Title: "T", Authors: 1}
	if len(got) != 1 || got[0] != want {
		t.Errorf("summarizeReviews() = %+v, want %+v", got, want)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer title here", 10, "a longe..."},
		{"Réview of épreuves", 8, "Réview..."},
	}
	for _, tt := range tests {
		if got := truncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}
