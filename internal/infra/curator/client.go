package curator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"museum-app/internal/domain/museum"
	"museum-app/internal/logging"

	"go.uber.org/zap"
)

// ErrUnconfigured is returned by Chat when no API key is set. Analysis
// requests are different: an unconfigured client yields (nil, nil), which
// callers treat as "analysis unavailable" rather than a failure.
var ErrUnconfigured = fmt.Errorf("curator: no API key configured")

// Client talks to the generative-language API over its REST surface.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	httpc   *http.Client
}

func New(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Configured() bool { return c.apiKey != "" }

// ---------- wire types

type genRequest struct {
	SystemInstruction *content   `json:"systemInstruction,omitempty"`
	Contents          []content  `json:"contents"`
	GenerationConfig  *genConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type       string            `json:"type"`
	Properties map[string]schema `json:"properties,omitempty"`
	Required   []string          `json:"required,omitempty"`
}

type genResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// analysisPayload matches the JSON field names the model is asked to emit.
type analysisPayload struct {
	FullDescription   string `json:"fullDescription"`
	TechnicalAnalysis string `json:"technicalAnalysis"`
	HistoricalContext string `json:"historicalContext"`
	Symbolism         string `json:"symbolism"`
}

// GenerateAnalysis requests the structured four-section curatorial
// analysis of one artwork in one language. All four sections are required
// in the response schema.
func (c *Client) GenerateAnalysis(ctx context.Context, title, artist, year string, lang museum.Language) (*museum.AnalysisSections, error) {
	if !c.Configured() {
		return nil, nil
	}

	langInstruction := "Output in English."
	if lang == museum.LangJA {
		langInstruction = "OUTPUT IN JAPANESE. Translate all fields naturally for a Japanese art museum context."
	}

	prompt := fmt.Sprintf(`You are a senior museum curator and art historian.
Provide a detailed academic analysis of the painting "%s" by %s (%s).

%s

The response must be valid JSON with the following structure:
{
  "fullDescription": "A comprehensive visual description of the composition.",
  "technicalAnalysis": "Analysis of brushwork, color palette, and medium.",
  "historicalContext": "The social, political, or personal context of the creation.",
  "symbolism": "Interpretation of key symbols and metaphors."
}

Tone: Academic, sophisticated, objective, yet engaging for an art enthusiast.`,
		title, artist, year, langInstruction)

	str := schema{Type: "STRING"}
	req := genRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &genConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]schema{
					"fullDescription":   str,
					"technicalAnalysis": str,
					"historicalContext": str,
					"symbolism":         str,
				},
				Required: []string{"fullDescription", "technicalAnalysis", "historicalContext", "symbolism"},
			},
		},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("curator: decode analysis: %w", err)
	}
	if payload.FullDescription == "" || payload.TechnicalAnalysis == "" ||
		payload.HistoricalContext == "" || payload.Symbolism == "" {
		return nil, fmt.Errorf("curator: incomplete analysis response")
	}

	return &museum.AnalysisSections{
		FullDescription:   payload.FullDescription,
		TechnicalAnalysis: payload.TechnicalAnalysis,
		HistoricalContext: payload.HistoricalContext,
		Symbolism:         payload.Symbolism,
	}, nil
}

// Chat sends the prior transcript plus the new message. When current is
// non-nil the system instruction biases answers toward that artwork.
// Response tone and language follow lang.
func (c *Client) Chat(ctx context.Context, history []museum.ChatTurn, message string, current *museum.LocalizedArtwork, lang museum.Language) (string, error) {
	if !c.Configured() {
		return "", ErrUnconfigured
	}

	langInstruction := "Reply in English."
	if lang == museum.LangJA {
		langInstruction = "You must reply in Japanese. Use polite, formal Japanese (Desu/Masu) suitable for a museum curator."
	}

	system := fmt.Sprintf(`You are "The Archivist," a knowledgeable, polite, and slightly formal art museum curator.
Your goal is to educate users about art history, techniques, and specific masterpieces.
Keep answers concise (under 150 words) unless asked for elaboration.
Use sophisticated vocabulary but explain complex terms.
%s`, langInstruction)

	if current != nil {
		system += fmt.Sprintf("\nThe user is currently viewing %q by %s. Focus answers on this work if relevant.",
			current.Title, current.Artist)
	}

	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		if turn.Role == museum.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: turn.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	req := genRequest{
		SystemInstruction: &content{Parts: []part{{Text: system}}},
		Contents:          contents,
	}
	return c.generate(ctx, req)
}

func (c *Client) generate(ctx context.Context, req genRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("curator: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("curator: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		logging.L().Error("curator request failed", zap.Error(err))
		return "", fmt.Errorf("curator: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("curator: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logging.L().Error("curator returned non-200",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", raw))
		return "", fmt.Errorf("curator: status %d", resp.StatusCode)
	}

	var out genResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("curator: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
