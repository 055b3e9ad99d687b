package anki

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/ankigen/internal/lexicon"
	"github.com/spf13/pflag"
)

// Card is the rendered front and back of a note. Values are inserted verbatim, without HTML escaping.
type Card struct {
	Front string
	Back  string
}

// Render formats a record as a card. Missing fields render as empty strings.
func Render(record lexicon.Record) Card {
	front := fmt.Sprintf("%s (%s)<br><br>%s",
		lexicon.ValueOr(record.Word, ""),
		lexicon.ValueOr(record.Pronunciation, ""),
		lexicon.ValueOr(record.ExampleDomain, ""),
	)

	var back strings.Builder
	switch {
	case record.Meanings.IsList():
		back.WriteString("<ul>")
		for _, meaning := range record.Meanings.Items {
			back.WriteString("<li>")
			back.WriteString(meaning)
			back.WriteString("</li>")
		}
		back.WriteString("</ul>")
	case record.Meanings != nil:
		back.WriteString(record.Meanings.Raw)
	}
	back.WriteString("<br>")

	return Card{
		Front: front,
		Back:  back.String(),
	}
}

// CardTemplate is the note type (modelName) a card is created with.
type CardTemplate string

const (
	TemplateBasic    CardTemplate = "Basic"
	TemplateReversed CardTemplate = "Basic (and reversed card)"
)

var (
	_ pflag.Value = (*CardTemplate)(nil)

	allTemplates = []CardTemplate{TemplateBasic, TemplateReversed}

	flagValues = map[string]CardTemplate{
		"basic":    TemplateBasic,
		"reversed": TemplateReversed,
	}
)

// Templates returns the selectable templates in menu order.
func Templates() []CardTemplate {
	return append([]CardTemplate(nil), allTemplates...)
}

// TemplateFromChoice maps the menu choices "1" and "2" to a template.
func TemplateFromChoice(choice string) (CardTemplate, bool) {
	switch strings.TrimSpace(choice) {
	case "1":
		return TemplateBasic, true
	case "2":
		return TemplateReversed, true
	default:
		return "", false
	}
}

func (t *CardTemplate) Set(val string) error {
	if template, ok := flagValues[strings.ToLower(val)]; ok {
		*t = template
		return nil
	}
	if template, ok := TemplateFromChoice(val); ok {
		*t = template
		return nil
	}
	return fmt.Errorf("invalid template: %s. Possible values are basic, reversed, 1 or 2", val)
}

func (t CardTemplate) String() string {
	return string(t)
}

func (t *CardTemplate) Type() string {
	return "template"
}
