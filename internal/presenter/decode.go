package presenter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pageza/dapur-ai/backend/internal/model"
)

// DecodeDishes turns a /api/generate reply into normalized dishes. A body
// that is not JSON is an error; a missing or non-array "dishes" field is an
// empty result. Entries that are not dish objects are skipped.
func DecodeDishes(body []byte) ([]model.DishSuggestion, error) {
	var envelope struct {
		Dishes json.RawMessage `json:"dishes"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	raw := bytes.TrimSpace(envelope.Dishes)
	if len(raw) == 0 || raw[0] != '[' {
		return []model.DishSuggestion{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse dishes: %w", err)
	}

	out := make([]model.DishSuggestion, 0, len(entries))
	for _, entry := range entries {
		var d model.DishSuggestion
		if !bytes.HasPrefix(bytes.TrimSpace(entry), []byte("{")) || json.Unmarshal(entry, &d) != nil {
			continue
		}
		out = append(out, d.Normalize())
	}
	return out, nil
}
