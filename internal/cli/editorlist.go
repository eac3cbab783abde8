package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/opnr/internal/launch"
)

type editorItem struct {
	editor launch.EditorInfo
}

func (i editorItem) Title() string {
	return fmt.Sprintf("%s %s", i.editor.Icon, i.editor.Name)
}

func (i editorItem) Description() string {
	return i.editor.Command
}

func (i editorItem) FilterValue() string {
	return i.editor.Name
}

// EditorListModel is a Bubbletea model for picking an installed editor.
type EditorListModel struct {
	list     list.Model
	selected *launch.EditorInfo
	quitting bool
}

func (m EditorListModel) Init() tea.Cmd {
	return nil
}

func (m EditorListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(editorItem)
			if ok {
				m.selected = &i.editor
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m EditorListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Selected returns the chosen editor, or nil when the picker was dismissed.
func (m EditorListModel) Selected() *launch.EditorInfo {
	return m.selected
}

// NewEditorList builds the picker over the given editors.
func NewEditorList(title string, editors []launch.EditorInfo) EditorListModel {
	items := make([]list.Item, len(editors))
	for i, e := range editors {
		items[i] = editorItem{editor: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return EditorListModel{list: l}
}
