package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Edit   key.Binding
	Remove key.Binding
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding

	Yes   key.Binding
	No    key.Binding
	Left  key.Binding
	Right key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Remove: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Yes:   key.NewBinding(key.WithKeys("s", "y")),
		No:    key.NewBinding(key.WithKeys("n", "esc")),
		Left:  key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
		Right: key.NewBinding(key.WithKeys("right", "l", "tab")),
	}
}

// listHelp is appended to the list's own help. It reads through the
// pointer so a disabled Remove disappears from the help line.
func (k *keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Remove}
}
