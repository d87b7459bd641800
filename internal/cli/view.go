package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID names each view kind on the navigation stack. The app model
// routes keys differently for ViewForm, which owns the whole keyboard.
type ViewID int

const (
	ViewFilter ViewID = iota
	ViewPlanEditor
	ViewHeatmap
	ViewForm
)

// View is what every screen implements: a tea.Model plus the metadata
// the frame needs for the breadcrumb and help bar.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}
