// Package dialog builds the user-facing text surfaces: the duplicate-title
// alert and the remove confirmation.
package dialog

import (
	"fmt"
	"strings"
)

// Alert is a one-button notice.
type Alert struct {
	Title string
	Body  string
}

// ChoiceStyle marks how a confirmation choice behaves.
type ChoiceStyle int

const (
	StyleCancel ChoiceStyle = iota
	StyleDestructive
)

// Choice is one button of a Confirm.
type Choice struct {
	Label string
	Style ChoiceStyle
}

// Destructive reports whether picking this choice performs the action.
func (c Choice) Destructive() bool { return c.Style == StyleDestructive }

// Confirm is a two-choice prompt guarding a destructive action.
// Choices[Default] is the non-destructive one.
type Confirm struct {
	Title   string
	Body    string
	Choices []Choice
	Default int
}

// Cancel returns the non-destructive choice.
func (c Confirm) Cancel() Choice { return c.Choices[c.Default] }

// Match finds the choice whose label equals answer, ignoring case and
// surrounding space. The English yes/no forms are accepted for any locale.
func (c Confirm) Match(answer string) (Choice, bool) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	for _, ch := range c.Choices {
		if strings.ToLower(ch.Label) == answer {
			return ch, true
		}
	}
	switch answer {
	case "y", "yes", "s":
		for _, ch := range c.Choices {
			if ch.Destructive() {
				return ch, true
			}
		}
	case "n", "no":
		return c.Cancel(), true
	}
	return Choice{}, false
}

// String renders the prompt on a single line, default choice first.
func (c Confirm) String() string {
	labels := make([]string, 0, len(c.Choices))
	for _, ch := range c.Choices {
		labels = append(labels, ch.Label)
	}
	return fmt.Sprintf("%s: %s [%s]", c.Title, c.Body, strings.Join(labels, "/"))
}
