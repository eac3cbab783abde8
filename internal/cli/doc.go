// Package cli provides the terminal user interface components for opnr.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// Components:
//   - ProjectList: filterable list of scanned projects
//   - EditorList: list of installed editors
//   - HostList: list of remembered ssh targets
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
