package concierge

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"restrofi/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const scanPrompt = "Analyze this menu image. Extract the dishes. Return a JSON array where each object has: " +
	"'name' (string), 'description' (string, keep it short), 'price' (number), " +
	"'category' (guess one: starter, main, dessert, drink), " +
	"'dietary' (array of strings, e.g. 'V', 'GF', 'VG', 'JAIN' if detected)."

var ErrUnreadableScan = errors.New("menu scan returned no readable items")

var menuSchema = &schema{
	Type: "ARRAY",
	Items: &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"name":        {Type: "STRING"},
			"description": {Type: "STRING"},
			"price":       {Type: "NUMBER"},
			"category":    {Type: "STRING"},
			"dietary":     {Type: "ARRAY", Items: &schema{Type: "STRING"}},
		},
		Required: []string{"name", "price"},
	},
}

// ScanMenu asks the model to read a photographed menu and returns the dishes
// it found. Entries carry no id or restaurant; callers decide what to keep.
func (c *GeminiClient) ScanMenu(ctx context.Context, image []byte, mimeType string) ([]domain.MenuEntry, error) {
	raw, err := c.generate(ctx, generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &blob{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
				{Text: scanPrompt},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   menuSchema,
		},
	})
	if err != nil {
		return nil, err
	}
	text, err := responseText(raw)
	if err != nil {
		return nil, err
	}
	return parseScannedItems(text)
}

// parseScannedItems reads the model's JSON array. Some replies still arrive
// wrapped in a markdown fence despite the response mime type.
func parseScannedItems(text string) ([]domain.MenuEntry, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}
	if !gjson.Valid(text) {
		return nil, ErrUnreadableScan
	}
	doc := gjson.Parse(text)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: expected an array", ErrUnreadableScan)
	}

	entries := make([]domain.MenuEntry, 0, len(doc.Array()))
	for _, item := range doc.Array() {
		name := strings.TrimSpace(item.Get("name").String())
		if name == "" {
			continue
		}
		entries = append(entries, domain.MenuEntry{
			Name:        name,
			Description: strings.TrimSpace(item.Get("description").String()),
			Price:       scannedPrice(item.Get("price")),
			Category:    strings.ToLower(strings.TrimSpace(item.Get("category").String())),
			DietaryTags: scannedTags(item.Get("dietary")),
			InStock:     true,
		})
	}
	return entries, nil
}

func scannedPrice(v gjson.Result) decimal.Decimal {
	switch v.Type {
	case gjson.Number:
		if d, err := decimal.NewFromString(v.Raw); err == nil {
			return d
		}
		return decimal.NewFromFloat(v.Float())
	case gjson.String:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, v.String())
		if d, err := decimal.NewFromString(cleaned); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func scannedTags(v gjson.Result) []string {
	tags := []string{}
	for _, tag := range v.Array() {
		t := strings.ToUpper(strings.TrimSpace(tag.String()))
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
