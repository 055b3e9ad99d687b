package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Placeholder is shown in place of a field the service did not return.
const Placeholder = "N/A"

// Record is the lexical data generated for one word.
// A nil field means the service did not return it.
type Record struct {
	Word           *string   `json:"word" yaml:"word"`
	Meanings       *Meanings `json:"meanings" yaml:"meanings"`
	Pronunciation  *string   `json:"pronunciation" yaml:"pronunciation"`
	Grammar        *string   `json:"grammar" yaml:"grammar"`
	Etymology      *string   `json:"etymology" yaml:"etymology"`
	ExampleGeneral *string   `json:"example_general" yaml:"example_general"`
	ExampleDomain  *string   `json:"example_domain" yaml:"example_domain"`
}

// Meanings holds either an ordered list of glosses or, when the service
// answered with something else, its raw value.
type Meanings struct {
	Items []string
	Raw   string
}

func NewMeanings(items ...string) *Meanings {
	if items == nil {
		items = []string{}
	}
	return &Meanings{Items: items}
}

// ParseMeanings splits a comma separated input and trims every segment.
func ParseMeanings(input string) *Meanings {
	segments := strings.Split(input, ",")
	items := make([]string, 0, len(segments))
	for _, segment := range segments {
		items = append(items, strings.TrimSpace(segment))
	}
	return NewMeanings(items...)
}

func (m *Meanings) IsList() bool {
	return m != nil && m.Items != nil
}

func (m *Meanings) String() string {
	if m == nil {
		return Placeholder
	}
	if m.IsList() {
		return strings.Join(m.Items, ", ")
	}
	return m.Raw
}

func (m *Meanings) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		var values []any
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return fmt.Errorf("json.Unmarshal(meanings) > %w", err)
		}
		items := make([]string, 0, len(values))
		for _, value := range values {
			if s, ok := value.(string); ok {
				items = append(items, s)
				continue
			}
			items = append(items, fmt.Sprint(value))
		}
		*m = Meanings{Items: items}
	case len(trimmed) > 0 && trimmed[0] == '"':
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("json.Unmarshal(meanings) > %w", err)
		}
		*m = Meanings{Raw: raw}
	default:
		*m = Meanings{Raw: string(trimmed)}
	}
	return nil
}

func (m Meanings) MarshalJSON() ([]byte, error) {
	if m.Items != nil {
		return json.Marshal(m.Items)
	}
	return json.Marshal(m.Raw)
}

func (m Meanings) MarshalYAML() (any, error) {
	if m.Items != nil {
		return m.Items, nil
	}
	return m.Raw, nil
}

// ValueOr dereferences an optional field.
func ValueOr(field *string, fallback string) string {
	if field == nil {
		return fallback
	}
	return *field
}

// Display returns the field or the placeholder when it is missing.
func Display(field *string) string {
	return ValueOr(field, Placeholder)
}

// YAML renders the record for the operator.
func (r Record) YAML() string {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return fmt.Sprintf("%+v", r)
	}
	_ = encoder.Close()
	return buf.String()
}
