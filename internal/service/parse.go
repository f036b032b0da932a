package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pageza/dapur-ai/backend/internal/model"
)

// ParseOutcome is the result of decoding model output. It is either Ok with
// a RecipeResponse or Malformed. Malformed output is not an error for the
// caller: Response then returns the empty result.
type ParseOutcome struct {
	response model.RecipeResponse
	dropped  int
	err      error
}

// Ok wraps a successfully decoded response.
func Ok(resp model.RecipeResponse) ParseOutcome {
	return ParseOutcome{response: resp.Normalize()}
}

// Malformed records why the text could not be decoded.
func Malformed(err error) ParseOutcome {
	return ParseOutcome{response: model.EmptyRecipeResponse(), err: err}
}

// IsMalformed reports whether the text failed to decode.
func (o ParseOutcome) IsMalformed() bool {
	return o.err != nil
}

// Reason is the decode error for a Malformed outcome, nil otherwise.
func (o ParseOutcome) Reason() error {
	return o.err
}

// Dropped is the number of dish entries that were skipped because they
// could not be decoded.
func (o ParseOutcome) Dropped() int {
	return o.dropped
}

// Response is the decoded response, or {dishes: []} when malformed.
func (o ParseOutcome) Response() model.RecipeResponse {
	return o.response
}

// ParseRecipeResponse decodes text as a RecipeResponse. Only text that is
// not a JSON object (or null) is Malformed. Dishes are decoded one at a
// time and an entry that does not fit the dish shape is dropped without
// affecting the others. A missing or non-array "dishes" field is an empty
// result.
func ParseRecipeResponse(text string) ParseOutcome {
	var envelope struct {
		Dishes json.RawMessage `json:"dishes"`
	}
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return Malformed(fmt.Errorf("model output is not recipe JSON: %w", err))
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(envelope.Dishes, &entries); err != nil {
		return Ok(model.EmptyRecipeResponse())
	}

	resp := model.RecipeResponse{Dishes: make([]model.DishSuggestion, 0, len(entries))}
	dropped := 0
	for _, entry := range entries {
		var dish model.DishSuggestion
		if !bytes.HasPrefix(bytes.TrimSpace(entry), []byte("{")) || json.Unmarshal(entry, &dish) != nil {
			dropped++
			continue
		}
		resp.Dishes = append(resp.Dishes, dish)
	}

	outcome := Ok(resp)
	outcome.dropped = dropped
	return outcome
}
