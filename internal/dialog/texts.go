package dialog

import (
	"fmt"
	"strings"
)

// Texts holds the strings of one locale.
type Texts struct {
	DuplicateTitle string
	DuplicateBody  string
	RemoveTitle    string
	RemoveBody     string
	No             string
	Yes            string

	// List labels
	Header       string
	Empty        string
	PendingLabel string
	DoneLabel    string
}

// Default locale.
const DefaultLocale = "pt-BR"

var locales = map[string]Texts{
	"pt-BR": {
		DuplicateTitle: "Task já cadastrada",
		DuplicateBody:  "Você não pode cadastar uma task com o mesmo nome",
		RemoveTitle:    "Remover item",
		RemoveBody:     "Tem certeza que você deseja remover este item?",
		No:             "nao",
		Yes:            "sim",
		Header:         "Tarefas",
		Empty:          "nenhuma tarefa",
		PendingLabel:   "Pendentes",
		DoneLabel:      "Concluídas",
	},
	"en": {
		DuplicateTitle: "Task already registered",
		DuplicateBody:  "You cannot register a task with the same name",
		RemoveTitle:    "Remove item",
		RemoveBody:     "Are you sure you want to remove this item?",
		No:             "no",
		Yes:            "yes",
		Header:         "Tasks",
		Empty:          "no tasks",
		PendingLabel:   "Pending",
		DoneLabel:      "Done",
	},
}

// Locale returns the texts for name. Matching ignores case and accepts "_".
func Locale(name string) (Texts, error) {
	key := strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
	for k, t := range locales {
		if strings.EqualFold(k, key) {
			return t, nil
		}
	}
	return Texts{}, fmt.Errorf("unknown locale %q", name)
}

// MustLocale is Locale for names already validated by config.
func MustLocale(name string) Texts {
	t, err := Locale(name)
	if err != nil {
		return locales[DefaultLocale]
	}
	return t
}

// DuplicateAlert is shown when an add is rejected.
func (t Texts) DuplicateAlert() Alert {
	return Alert{Title: t.DuplicateTitle, Body: t.DuplicateBody}
}

// RemoveConfirm guards a task removal. "No" comes first and is the default.
func (t Texts) RemoveConfirm() Confirm {
	return Confirm{
		Title: t.RemoveTitle,
		Body:  t.RemoveBody,
		Choices: []Choice{
			{Label: t.No, Style: StyleCancel},
			{Label: t.Yes, Style: StyleDestructive},
		},
		Default: 0,
	}
}
