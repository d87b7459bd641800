package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
)

// heatmapLoadedMsg carries the heatmap round trip back to the view.
type heatmapLoadedMsg struct {
	resp *contract.HeatmapResponse
	err  error
}

// heatmapView shows the utilization grid of the scoped team and lets the
// user drill one cell down to its per-project hours.
type heatmapView struct {
	state   *SharedState
	resp    *contract.HeatmapResponse
	row     int
	col     int
	loading bool
	loadErr error
}

func newHeatmapView(state *SharedState) *heatmapView {
	return &heatmapView{state: state}
}

func (v *heatmapView) Init() tea.Cmd {
	v.loading = true
	app := v.state.App
	teamID := v.state.Scope.TeamID
	year := time.Now().Year()
	return func() tea.Msg {
		resp, err := app.Heatmap.ProjectTeam(context.Background(), contract.HeatmapRequest{
			TeamID: teamID,
			Range: domain.PeriodRange{
				From: domain.Period{Year: year, Month: 1},
				To:   domain.Period{Year: year, Month: 12},
			},
		})
		return heatmapLoadedMsg{resp: resp, err: err}
	}
}

func (v *heatmapView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case heatmapLoadedMsg:
		v.loading = false
		v.resp = msg.resp
		v.loadErr = msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.Init()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *heatmapView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.resp == nil {
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.row > 0 {
			v.row--
		}
	case "down", "j":
		if v.row < len(v.resp.Rows)-1 {
			v.row++
		}
	case "left":
		if v.col > 0 {
			v.col--
		}
	case "right":
		if v.col < len(v.resp.Periods)-1 {
			v.col++
		}
	case "enter":
		if len(v.resp.Rows) > 0 {
			return v, v.drilldownCmd()
		}
	}

	return v, nil
}

func (v *heatmapView) drilldownCmd() tea.Cmd {
	app := v.state.App
	req := contract.DrilldownRequest{
		ResourceID: v.resp.Rows[v.row].ResourceID,
		Period:     v.resp.Periods[v.col],
		Kind:       domain.MetricPlanned,
	}
	return func() tea.Msg {
		resp, err := app.Heatmap.Drilldown(context.Background(), req)
		if err != nil {
			return outputMsg{output: formatter.StyleRed.Render(err.Error())}
		}
		return outputMsg{output: formatter.FormatDrilldown(resp)}
	}
}

func (v *heatmapView) View() string {
	if v.loading {
		return formatter.Dim("Loading heatmap...")
	}
	if v.loadErr != nil {
		return formatter.StyleRed.Render(v.loadErr.Error())
	}
	if v.resp == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.FormatHeatmap(v.resp))
	if len(v.resp.Rows) > 0 {
		b.WriteString("\n" + formatter.Dim(fmt.Sprintf("Selected: %s, %s",
			v.resp.Rows[v.row].ResourceName,
			formatter.PeriodLabel(v.resp.Periods[v.col]))) + "\n")
	}
	return b.String()
}

func (v *heatmapView) ID() ViewID    { return ViewHeatmap }
func (v *heatmapView) Title() string { return "heatmap" }
func (v *heatmapView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→", "cell")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drill down")),
	}
}
