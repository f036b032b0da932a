package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// maxCount bounds Count so that any model value fits an int on every platform.
const maxCount = math.MaxInt32

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// Count is an integer field that tolerates the loose typing of model output.
// A JSON number is rounded and clamped to [0, MaxInt32], a string
// contributes its leading number ("450 kcal" is 450), and anything else is 0.
// It never fails to decode and always marshals as a plain integer.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	num := looseNumber(data)
	switch {
	case num <= 0:
		*c = 0
	case num >= maxCount:
		*c = maxCount
	default:
		*c = Count(math.Round(num))
	}
	return nil
}

// Amount is a gram quantity with the same tolerance as Count, kept as a
// float. Negative values become 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	num := looseNumber(data)
	if num < 0 {
		num = 0
	}
	*a = Amount(num)
	return nil
}

// looseNumber reads a JSON number, or the leading number of a JSON string.
// Null, other types, text without a leading number and non-finite results
// are 0.
func looseNumber(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return 0
		}
		raw = leadingNumber.FindString(strings.TrimSpace(raw))
	} else {
		raw = string(data)
	}

	num, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if math.IsNaN(num) {
		return 0
	}
	if math.IsInf(num, 1) {
		return math.MaxFloat64
	}
	if math.IsInf(num, -1) {
		return -math.MaxFloat64
	}
	return num
}
