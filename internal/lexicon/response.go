package lexicon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const codeFence = "```"

var ErrNotObject = errors.New("response is not a JSON object")

// StripCodeFence removes the markdown code fence the service sometimes wraps
// its JSON in, including a language tag such as "json" after the opening fence.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, codeFence) {
		text = strings.TrimPrefix(text, codeFence)
		// Drop the language tag, which runs until the first line break or brace
		tagEnd := strings.IndexAny(text, "\n{[")
		if tagEnd == -1 {
			tagEnd = len(text)
		}
		text = text[tagEnd:]
	}
	if strings.HasSuffix(text, codeFence) {
		text = strings.TrimSuffix(text, codeFence)
	}
	return strings.TrimSpace(text)
}

// ParseRecord repairs and decodes a completion into a Record.
// Missing keys stay nil; anything but a JSON object is an error.
func ParseRecord(text string) (Record, error) {
	repaired := StripCodeFence(text)
	if !strings.HasPrefix(repaired, "{") {
		return Record{}, fmt.Errorf("%w: %q", ErrNotObject, truncate(repaired, 80))
	}

	var record Record
	decoder := json.NewDecoder(strings.NewReader(repaired))
	if err := decoder.Decode(&record); err != nil {
		return Record{}, fmt.Errorf("json.Unmarshal(%s) > %w", truncate(repaired, 80), err)
	}
	if decoder.InputOffset() != int64(len(repaired)) {
		return Record{}, fmt.Errorf("%w: trailing data after the object", ErrNotObject)
	}
	return record, nil
}

// JSON renders the record the way the service returned it.
func (r Record) JSON() string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Sprintf("%+v", r)
	}
	return buf.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
