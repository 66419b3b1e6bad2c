package navbar

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the navbar actions.
type KeyMap struct {
	Home       key.Binding
	Features   key.Binding
	About      key.Binding
	Contact    key.Binding
	Menu       key.Binding
	Language   key.Binding
	GetStarted key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Close      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Home:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Features:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "features")),
		About:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "about")),
		Contact:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "contact")),
		Menu:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Language:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		GetStarted: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "get started")),
		Up:         key.NewBinding(key.WithKeys("up", "k")),
		Down:       key.NewBinding(key.WithKeys("down", "j")),
		Select:     key.NewBinding(key.WithKeys("enter")),
		Close:      key.NewBinding(key.WithKeys("esc")),
	}
}
