package practice

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Pick   key.Binding
	Repeat key.Binding
}

// Letters are answers, so navigation stays on the arrow keys.
var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
	Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
	Pick:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Pick")),
	Repeat: key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Say again")),
}
