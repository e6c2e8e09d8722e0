package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	start        key.Binding
	toggle       key.Binding
	end          key.Binding
	set          key.Binding
	next         key.Binding
	prev         key.Binding
	addSet       key.Binding
	dropSet      key.Binding
	editSet      key.Binding
	addExercise  key.Binding
	dropExercise key.Binding
	save         key.Binding
	quit         key.Binding
}

var defaultKeymap = keymap{
	start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	toggle: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause/resume"),
	),
	end: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "end"),
	),
	set: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete set"),
	),
	next: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/k", "select"),
	),
	prev: key.NewBinding(
		key.WithKeys("k", "up"),
	),
	addSet: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add set"),
	),
	dropSet: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "drop set"),
	),
	editSet: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reps/weight"),
	),
	addExercise: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new exercise"),
	),
	dropExercise: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "drop exercise"),
	),
	save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
