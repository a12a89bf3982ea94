// Package concierge talks to the Gemini generateContent REST endpoint.
package concierge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"restrofi/storefront-svc/internal/domain"

	"github.com/tidwall/gjson"
)

const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

var ErrMissingAPIKey = errors.New("concierge api key is not configured")

const instructionTemplate = `You are Chef Aurelius, the digital concierge of a premium restaurant.
Your tone is sophisticated, welcoming, and knowledgeable.

Here is our Menu:
%s

Answer guest inquiries about ingredients, dietary suitability, and pairings.
Recommend dishes based on their preferences.
If a dish is not on the menu, politely inform them.
Keep answers concise (under 3 sentences) unless asked for details.`

type Config struct {
	APIKey     string
	Model      string
	Endpoint   string
	HTTPClient *http.Client
}

type GeminiClient struct {
	cfg Config
}

func NewGeminiClient(cfg Config) *GeminiClient {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	return &GeminiClient{cfg: cfg}
}

type blob struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string `json:"text,omitempty"`
	InlineData *blob  `json:"inline_data,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type schema struct {
	Type       string             `json:"type"`
	Items      *schema            `json:"items,omitempty"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

// SystemInstruction embeds the catalog summary into the concierge persona.
func SystemInstruction(catalogSummary string) string {
	return fmt.Sprintf(instructionTemplate, catalogSummary)
}

// buildContents maps the transcript plus the new message to Gemini turns.
// Leading assistant turns (the greeting) are dropped since a conversation
// has to open with a user turn.
func buildContents(history []domain.ChatMessage, message string) []content {
	out := make([]content, 0, len(history)+1)
	for _, msg := range history {
		if len(out) == 0 && msg.Role != domain.RoleUser {
			continue
		}
		out = append(out, content{Role: geminiRole(msg.Role), Parts: []part{{Text: msg.Text}}})
	}
	return append(out, content{Role: "user", Parts: []part{{Text: message}}})
}

func geminiRole(role domain.ChatRole) string {
	if role == domain.RoleAssistant {
		return "model"
	}
	return "user"
}

func (c *GeminiClient) GenerateReply(ctx context.Context, history []domain.ChatMessage, message, catalogSummary string) (string, error) {
	raw, err := c.generate(ctx, generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: SystemInstruction(catalogSummary)}}},
		Contents:          buildContents(history, message),
	})
	if err != nil {
		return "", err
	}
	return responseText(raw)
}

// generate posts one generateContent call and returns the raw body of a
// successful response.
func (c *GeminiClient) generate(ctx context.Context, payload generateRequest) ([]byte, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generate request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read generate response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := gjson.GetBytes(raw, "error.message").String()
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return nil, fmt.Errorf("generate request status %d: %s", res.StatusCode, msg)
	}
	return raw, nil
}

func responseText(raw []byte) (string, error) {
	var b strings.Builder
	for _, p := range gjson.GetBytes(raw, "candidates.0.content.parts.#.text").Array() {
		b.WriteString(p.String())
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		reason := gjson.GetBytes(raw, "candidates.0.finishReason").String()
		return "", fmt.Errorf("generate response had no text (finish reason %q)", reason)
	}
	return text, nil
}
