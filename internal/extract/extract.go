/*
Package extract pulls a JSON object out of raw model output.

Models frequently wrap their JSON in prose or markdown fences, so strict
parsing of the whole reply would fail far too often. The approach here is
deliberately lenient and deliberately naive: take the span from the first '{'
to the last '}' and parse that. Known limitation: a '{' or '}' inside a
string literal before/after the real object, or multiple independent objects
in one reply, will confuse the slice. That trade-off is acceptable because
every caller substitutes a fallback value on ErrMalformed anyway; replacing
this with a real tokenizer is possible without touching any caller.
*/
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed reports that no parseable JSON object was found in the text.
var ErrMalformed = errors.New("malformed generation response")

// Extract returns the first JSON object found in raw as a generic map.
func Extract(raw string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := ExtractInto(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractInto unmarshals the first JSON object found in raw into v.
func ExtractInto(raw string, v interface{}) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return fmt.Errorf("%w: no JSON object in text", ErrMalformed)
	}

	if err := json.Unmarshal([]byte(raw[start:end+1]), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
