package cli

import (
	"fmt"
	"strings"
)

// State is a step of the card creation loop.
type State int

const (
	StateAwaitingWord State = iota
	StateGenerating
	StateReviewingCard
	StateSelectingTemplate
	StateSubmitting
	StateExited
)

var stateNames = map[State]string{
	StateAwaitingWord:      "AwaitingWord",
	StateGenerating:        "Generating",
	StateReviewingCard:     "ReviewingCard",
	StateSelectingTemplate: "SelectingTemplate",
	StateSubmitting:        "Submitting",
	StateExited:            "Exited",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// InputValidationError is reported when a menu answer is not one of the offered options.
// The prompt is repeated and the state does not change.
type InputValidationError struct {
	Input   string
	Allowed []string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid choice %q, expected one of %s", e.Input, strings.Join(e.Allowed, ", "))
}

// Message is the text shown to the operator.
func (e *InputValidationError) Message() string {
	quoted := make([]string, 0, len(e.Allowed))
	for _, allowed := range e.Allowed {
		quoted = append(quoted, fmt.Sprintf("'%s'", allowed))
	}
	return fmt.Sprintf("Opción no válida. Por favor, elige %s.", joinChoices(quoted))
}

func joinChoices(choices []string) string {
	switch len(choices) {
	case 0:
		return ""
	case 1:
		return choices[0]
	default:
		return strings.Join(choices[:len(choices)-1], ", ") + " o " + choices[len(choices)-1]
	}
}
