package coach

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"gauravfit/coach-app/internal/config"
	"gauravfit/coach-app/internal/domain"
)

// defaultHTTPTimeout applies when config leaves the timeout unset.
const defaultHTTPTimeout = 2 * time.Minute

// GeminiClient implements Provider against the Gemini REST API.
type GeminiClient struct {
	cfg    config.GeminiConfig
	client *http.Client
}

// NewGeminiClient creates the client. It does not validate the key:
// a missing key surfaces as ErrNoAPIKey on first use so the rest of
// the dashboard keeps working.
func NewGeminiClient(cfg config.GeminiConfig) *GeminiClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultHTTPTimeout
	}
	return &GeminiClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether a credential is available.
func (g *GeminiClient) Configured() bool {
	return g.cfg.APIKey != ""
}

// --- Wire types (generateContent request/response) ---

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type thinkingConfig struct {
	IncludeThoughts bool `json:"includeThoughts"`
	ThinkingBudget  int  `json:"thinkingBudget"`
}

type generationConfig struct {
	Temperature    *float64        `json:"temperature,omitempty"`
	ThinkingConfig *thinkingConfig `json:"thinkingConfig,omitempty"`
}

type generateRequest struct {
	SystemInstruction *geminiContent    `json:"system_instruction,omitempty"`
	Contents          []geminiContent   `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Text joins the first candidate's parts.
func (r generateResponse) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// modelFor selects the model identifier for a coaching mode: the
// low-latency model for standard, the higher-capability one for
// expert.
func (g *GeminiClient) modelFor(mode Mode) string {
	if mode == ModeExpert {
		return g.cfg.ExpertModel
	}
	return g.cfg.StandardModel
}

// configFor selects the generation configuration: a moderate
// temperature for standard chat, an internal reasoning budget (never
// surfaced to the user) for expert mode.
func (g *GeminiClient) configFor(mode Mode) *generationConfig {
	if mode == ModeExpert {
		return &generationConfig{
			ThinkingConfig: &thinkingConfig{
				IncludeThoughts: false,
				ThinkingBudget:  g.cfg.ThinkingBudget,
			},
		}
	}
	temp := g.cfg.Temperature
	return &generationConfig{Temperature: &temp}
}

// buildRequest converts the conversation into the provider's wire
// shape, preserving role and order exactly and appending the new
// prompt as the final user turn.
func (g *GeminiClient) buildRequest(history []domain.ChatMessage, prompt string, mode Mode) generateRequest {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, geminiContent{
			Role:  string(msg.Role),
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  string(domain.RoleUser),
		Parts: []geminiPart{{Text: prompt}},
	})
	return generateRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: instructionFor(mode)}}},
		Contents:          contents,
		GenerationConfig:  g.configFor(mode),
	}
}

// Chat performs a single non-streaming call and returns the reply.
func (g *GeminiClient) Chat(ctx context.Context, history []domain.ChatMessage, prompt string, mode Mode) (string, error) {
	if !g.Configured() {
		return "", ErrNoAPIKey
	}
	body := g.buildRequest(history, prompt, mode)
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.cfg.BaseURL, g.modelFor(mode), g.cfg.APIKey)

	var resp generateResponse
	if err := g.post(ctx, url, body, &resp); err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

// ChatStream performs a streaming call. Fragments are delivered in
// arrival order through onChunk; the assembled text is returned once
// the stream completes. A stream that dies midway is a failure: the
// caller must not treat the partial text as a completed reply.
func (g *GeminiClient) ChatStream(ctx context.Context, history []domain.ChatMessage, prompt string, mode Mode, onChunk func(string)) (string, error) {
	if !g.Configured() {
		return "", ErrNoAPIKey
	}
	body := g.buildRequest(history, prompt, mode)
	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse&key=%s", g.cfg.BaseURL, g.modelFor(mode), g.cfg.APIKey)

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(httpResp.Body)
		return "", fmt.Errorf("%w: status %d: %s", ErrRemoteCall, httpResp.StatusCode, truncate(string(raw), 200))
	}

	// The SSE stream is a sequence of "data: {json}" lines. Each event
	// carries one incremental candidate fragment.
	var sb strings.Builder
	scanner := bufio.NewScanner(httpResp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}
		var chunk generateResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			logrus.WithError(err).Debug("coach: skipping malformed stream event")
			continue
		}
		if text := chunk.Text(); text != "" {
			sb.WriteString(text)
			if onChunk != nil {
				onChunk(text)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: stream interrupted: %v", ErrRemoteCall, err)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyReply
	}
	return sb.String(), nil
}

// DailyTip fetches a one-sentence tip on the cheap model. It degrades
// to a static fallback rather than erroring: the tip is decoration,
// not a feature that may block the dashboard.
func (g *GeminiClient) DailyTip(ctx context.Context) (string, error) {
	if !g.Configured() {
		return fallbackTip, nil
	}
	body := generateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: dailyTipPrompt}}}},
	}
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.cfg.BaseURL, g.cfg.TipModel, g.cfg.APIKey)

	var resp generateResponse
	if err := g.post(ctx, url, body, &resp); err != nil {
		logrus.WithError(err).Debug("coach: daily tip call failed, using fallback")
		return fallbackTip, nil
	}
	if text := resp.Text(); text != "" {
		return text, nil
	}
	return fallbackTip, nil
}

// post marshals the request, performs the call and decodes the reply.
// Every remote failure maps onto ErrRemoteCall.
func (g *GeminiClient) post(ctx context.Context, url string, body generateRequest, out *generateResponse) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrRemoteCall, resp.StatusCode, truncate(string(raw), 200))
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrRemoteCall, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// interface guard
var _ Provider = (*GeminiClient)(nil)
