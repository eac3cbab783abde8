package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/opnr/internal/model"
)

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type projectItem struct {
	project model.Project
}

func (i projectItem) Title() string {
	fav := ""
	if i.project.Favorite {
		fav = "⭐ "
	}

	return fmt.Sprintf("%s%s", fav, i.project.Name)
}

func (i projectItem) Description() string {
	desc := i.project.Path

	if !i.project.LastModified.IsZero() {
		desc = fmt.Sprintf("%s | Modified: %s", desc, i.project.LastModified.Format("2006-01-02 15:04"))
	}

	if !i.project.LastAccessed.IsZero() {
		desc = fmt.Sprintf("%s | Opened: %s", desc, i.project.LastAccessed.Format("2006-01-02 15:04"))
	}

	return desc
}

func (i projectItem) FilterValue() string {
	return i.project.Name + " " + i.project.Path
}

// ProjectListModel is a Bubbletea model for picking a project to open.
type ProjectListModel struct {
	list     list.Model
	selected *model.Project
	status   string
	quitting bool
}

func (m ProjectListModel) Init() tea.Cmd {
	return nil
}

func (m ProjectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		// let list filtering consume keys first
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(projectItem)
			if ok {
				m.selected = &i.project
			}

			return m, tea.Quit

		case "c":
			if i, ok := m.list.SelectedItem().(projectItem); ok {
				if err := clipboard.WriteAll(i.project.Path); err == nil {
					m.status = "copied " + i.project.Path
				}
			}

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ProjectListModel) View() string {
	if m.quitting {
		return ""
	}

	view := docStyle.Render(m.list.View())

	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}

	return view
}

// Selected returns the chosen project, or nil when the picker was dismissed.
func (m ProjectListModel) Selected() *model.Project {
	return m.selected
}

// NewProjectList builds the picker over an already-assembled project list.
func NewProjectList(title string, projects []model.Project) ProjectListModel {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return ProjectListModel{list: l}
}
