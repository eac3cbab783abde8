package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/opnr/internal/model"
)

type hostItem struct {
	host model.Host
}

func (i hostItem) Title() string {
	fav := ""
	if i.host.Favorite {
		fav = "⭐ "
	}

	return fmt.Sprintf("%s%s", fav, i.host.Authority())
}

func (i hostItem) Description() string {
	if i.host.LastAccessed.IsZero() {
		return "never connected"
	}

	return fmt.Sprintf("Connected: %s", i.host.LastAccessed.Format("2006-01-02 15:04"))
}

func (i hostItem) FilterValue() string {
	return i.host.Authority()
}

// HostListModel is a Bubbletea model for picking an SSH host.
type HostListModel struct {
	list     list.Model
	selected *model.Host
	quitting bool
}

func (m HostListModel) Init() tea.Cmd {
	return nil
}

func (m HostListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			i, ok := m.list.SelectedItem().(hostItem)
			if ok {
				m.selected = &i.host
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m HostListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Selected returns the chosen host, or nil when the picker was dismissed.
func (m HostListModel) Selected() *model.Host {
	return m.selected
}

// NewHostList builds the picker over known hosts.
func NewHostList(title string, hosts []model.Host) HostListModel {
	items := make([]list.Item, len(hosts))
	for i, h := range hosts {
		items[i] = hostItem{host: h}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return HostListModel{list: l}
}
