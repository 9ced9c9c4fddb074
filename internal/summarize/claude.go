// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"text/template"
	"unicode/utf8"

	"github.com/pdiddy/litsum/internal/httputil"
	"github.com/pdiddy/litsum/pkg/types"
)

// summaryPromptTmpl is the prompt sent to the Claude API for each paper. It
// instructs the model to fill the fixed record schema from the paper text.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`You are a literature review assistant. Read the following academic paper text and summarize it into a structured record.

Fill every field below. Use an empty string when the paper gives no signal for a field; never invent values.
- id: always exactly "{{.Filename}}"
- title: the paper title
- year: publication year as a string
- venue: journal, conference, or publisher
- study_type: e.g. "user study", "simulation", "survey", "system paper"
- environment: the setting or platform the work targets
- interface_type: the interaction or interface modality studied
- task: the task participants or systems performed
- participants: number and kind of participants, if any
- measures: the dependent measures or evaluation metrics
- main_findings: the key findings, as short "- " bullet lines
- relevance_to_my_thesis: one or two sentences on relevance to indoor emergency navigation research

Respond with a single JSON object containing exactly these keys, all values strings. Do not include any text outside the JSON object.

Paper file: {{.Filename}}

Paper text:
{{.Text}}
`))

// maxPromptChars caps the paper text included in the prompt. Papers longer
// than this are truncated; the lead sections carry the metadata the record
// needs.
const maxPromptChars = 100000

// claudeAPIURL is the Claude API endpoint. Package-level var for test substitution.
var claudeAPIURL = "https://api.anthropic.com/v1/messages"

// ClaudeSummarizer calls the Claude Messages API to produce one summary
// record per paper. It honors the Summarizer contract: the returned record
// always carries the document ID, and failures propagate to the caller.
type ClaudeSummarizer struct {
	APIKey     string
	Model      string
	MaxRetries int
	Client     *http.Client
}

// claudeRequest is the request body for the Claude Messages API.
type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

// claudeMessage is a single message in the Claude API conversation.
type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeResponse is the response body from the Claude Messages API.
type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

// claudeContent is a content block in the Claude API response.
type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Summarize renders the prompt, calls the API with retries, and parses the
// model's JSON object into a SummaryRecord.
func (c *ClaudeSummarizer) Summarize(ctx context.Context, text, docID string) (types.SummaryRecord, error) {
	maxRetries := c.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return callWithRetry(ctx, func(ctx context.Context) (types.SummaryRecord, error) {
		return c.request(ctx, text, docID)
	}, maxRetries)
}

func (c *ClaudeSummarizer) request(ctx context.Context, text, docID string) (types.SummaryRecord, error) {
	if len(text) > maxPromptChars {
		// Back up to a rune boundary so the cut never mangles a
		// multi-byte character.
		cut := maxPromptChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	prompt, err := renderPrompt(text, docID)
	if err != nil {
		return types.SummaryRecord{}, fmt.Errorf("rendering prompt: %w", err)
	}

	reqBody := claudeRequest{
		Model:     c.Model,
		MaxTokens: 4096,
		Messages: []claudeMessage{
			{Role: "user", Content: prompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return types.SummaryRecord{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, claudeAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return types.SummaryRecord{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return types.SummaryRecord{}, fmt.Errorf("calling Claude API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return types.SummaryRecord{}, fmt.Errorf("Claude API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return types.SummaryRecord{}, fmt.Errorf("decoding Claude response: %w", err)
	}

	for _, block := range cResp.Content {
		if block.Type != "text" {
			continue
		}
		var rec types.SummaryRecord
		if err := json.Unmarshal([]byte(block.Text), &rec); err != nil {
			return types.SummaryRecord{}, fmt.Errorf("parsing summary JSON: %w", err)
		}
		// The model is told to echo the filename, but the ID must hold
		// regardless of what it returns.
		rec.ID = docID
		return rec, nil
	}

	return types.SummaryRecord{}, fmt.Errorf("no text content in Claude API response")
}

// renderPrompt executes the summary prompt template.
func renderPrompt(text, filename string) (string, error) {
	var buf bytes.Buffer
	err := summaryPromptTmpl.Execute(&buf, struct {
		Filename string
		Text     string
	}{Filename: filename, Text: text})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
