// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/litsum/internal/httputil"
)

func init() {
	httputil.RetryBaseDelay = 1 // effectively no sleep on 429 retries
}

// canned is the JSON object the fake model returns for a paper.
const canned = `{
	"id": "wrong-id.pdf",
	"title": "Indoor Navigation Under Smoke",
	"year": "2021",
	"venue": "CHI",
	"study_type": "user study",
	"environment": "smoke-filled corridor mockup",
	"interface_type": "AR headset",
	"task": "evacuate to the nearest exit",
	"participants": "24 adults",
	"measures": "egress time, wayfinding errors",
	"main_findings": "- AR arrows cut egress time by 18%",
	"relevance_to_my_thesis": "Directly informs cue design."
}`

// messagesResponse wraps text in a Claude Messages API response body.
func messagesResponse(text string) string {
	body := map[string]any{
		"content": []map[string]string{{"type": "text", "text": text}},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func withAPIServer(t *testing.T, handler http.HandlerFunc) *ClaudeSummarizer {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	orig := claudeAPIURL
	claudeAPIURL = ts.URL
	t.Cleanup(func() { claudeAPIURL = orig })

	return &ClaudeSummarizer{APIKey: "test-key", Model: "test-model", Client: ts.Client()}
}

func TestClaudeSummarize(t *testing.T) {
	var gotAuth, gotPrompt string
	s := withAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("x-api-key")
		var req claudeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.Messages) == 1 {
			gotPrompt = req.Messages[0].Content
		}
		w.Write([]byte(messagesResponse(canned)))
	})

	rec, err := s.Summarize(context.Background(), "paper body text", "smith2021.pdf")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if gotAuth != "test-key" {
		t.Errorf("x-api-key = %q, want %q", gotAuth, "test-key")
	}
	if !strings.Contains(gotPrompt, "paper body text") {
		t.Error("prompt should contain the paper text")
	}
	if !strings.Contains(gotPrompt, "smith2021.pdf") {
		t.Error("prompt should name the paper file")
	}

	// The model echoed a wrong id; the document identity must win.
	if rec.ID != "smith2021.pdf" {
		t.Errorf("ID = %q, want %q", rec.ID, "smith2021.pdf")
	}
	if rec.Title != "Indoor Navigation Under Smoke" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.MainFindings != "- AR arrows cut egress time by 18%" {
		t.Errorf("MainFindings = %q", rec.MainFindings)
	}
}

func TestClaudeSummarizeTruncatesLongText(t *testing.T) {
	var gotPrompt string
	s := withAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req claudeRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Messages[0].Content
		w.Write([]byte(messagesResponse(canned)))
	})

	long := strings.Repeat("x", maxPromptChars+5000)
	if _, err := s.Summarize(context.Background(), long, "a.pdf"); err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(gotPrompt) > maxPromptChars+2000 {
		t.Errorf("prompt length %d exceeds the truncation cap", len(gotPrompt))
	}
}

func TestClaudeSummarizeTruncatesOnRuneBoundary(t *testing.T) {
	var gotPrompt string
	s := withAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req claudeRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Messages[0].Content
		w.Write([]byte(messagesResponse(canned)))
	})

	// Three-byte runes guarantee the byte cap lands mid-rune.
	long := strings.Repeat("界", maxPromptChars/3+100)
	if _, err := s.Summarize(context.Background(), long, "a.pdf"); err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !utf8.ValidString(gotPrompt) {
		t.Error("truncated prompt contains a mangled multi-byte character")
	}
}

func TestClaudeSummarizeAPIError(t *testing.T) {
	s := withAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusInternalServerError)
	})
	s.MaxRetries = 1

	_, err := s.Summarize(context.Background(), "text", "a.pdf")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q should mention the status code", err)
	}
}

func TestClaudeSummarizeRetriesTransientFailure(t *testing.T) {
	var calls int32
	s := withAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "bad gateway", http.StatusBadGateway)
			return
		}
		w.Write([]byte(messagesResponse(canned)))
	})
	s.MaxRetries = 2

	rec, err := s.Summarize(context.Background(), "text", "a.pdf")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if rec.ID != "a.pdf" {
		t.Errorf("ID = %q, want %q", rec.ID, "a.pdf")
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("API calls = %d, want 2", n)
	}
}

func TestClaudeSummarizeMalformedJSON(t *testing.T) {
	s := withAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(messagesResponse("Sure! Here is the summary you asked for.")))
	})
	s.MaxRetries = 1

	_, err := s.Summarize(context.Background(), "text", "a.pdf")
	if err == nil {
		t.Fatal("expected error for non-JSON model output")
	}
}
