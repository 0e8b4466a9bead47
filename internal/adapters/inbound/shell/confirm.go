package shell

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
)

// confirmPrompt guards destructive actions. The action command runs
// only on an explicit yes.
type confirmPrompt struct {
	question string
	action   tea.Cmd
}

func (m *Model) openConfirm(prompt confirmPrompt) {
	m.confirm = &prompt
	m.dialog = dialogConfirm
}

func (m *Model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		action := m.confirm.action
		// keep the dialog up until the result lands
		return action
	case "n", "N", "esc", "q":
		m.closeDialog()
	}
	return nil
}

func (m *Model) viewConfirm() string {
	return "  " + tui.RenderConfirm(m.confirm.question) + "\n"
}
