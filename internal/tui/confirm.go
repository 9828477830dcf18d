package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Confirm asks a yes/no question on the terminal. Only y answers yes; any
// other key declines.
func Confirm(ctx context.Context, question string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(confirmModel{question: question},
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	cm, _ := final.(confirmModel)
	return cm.answer, nil
}

type confirmModel struct {
	question string
	answer   bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer = true
	case "n", "N", "enter", "esc", "q", "ctrl+c":
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if !m.done {
		return searchPromptStyle.Render("? ") + m.question + countStyle.Render(" [y/N] ")
	}
	answer := "no"
	if m.answer {
		answer = "yes"
	}
	return searchPromptStyle.Render("? ") + m.question + " " + answer + "\n"
}
