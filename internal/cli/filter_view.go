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
	"github.com/ricardofreitas/staffing/internal/repository"
)

// scopeResolvedMsg carries one resolver round trip back to the filter view.
type scopeResolvedMsg struct {
	gen  int
	resp *contract.ScopeResponse
	err  error
}

// filterView is the home view: the cascading section > team > resource >
// project filter. Changing a field clears its descendants and starts a
// new resolver round trip; responses for stale generations are dropped.
type filterView struct {
	state    *SharedState
	fields   []contract.ScopeField
	cursor   int
	loading  bool
	warnings []contract.Warning
}

func newFilterView(state *SharedState) *filterView {
	return &filterView{
		state: state,
		fields: []contract.ScopeField{
			contract.FieldSection,
			contract.FieldTeam,
			contract.FieldResource,
			contract.FieldProject,
		},
	}
}

// resolveScopeCmd runs the hierarchy resolver for one generation.
func resolveScopeCmd(app *App, scope contract.Scope, gen int) tea.Cmd {
	return func() tea.Msg {
		resp, err := app.Scope.Resolve(context.Background(), scope)
		return scopeResolvedMsg{gen: gen, resp: resp, err: err}
	}
}

func (v *filterView) Init() tea.Cmd {
	v.loading = true
	return resolveScopeCmd(v.state.App, v.state.Scope, v.state.NextScopeGen())
}

func (v *filterView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case scopeResolvedMsg:
		// A field changed while this round trip was in flight; the
		// response describes an options set that no longer applies.
		if msg.gen != v.state.ScopeGen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			return v, showOutput(formatter.StyleRed.Render("filter resolve failed: " + msg.err.Error()))
		}
		v.state.Scope = msg.resp.Scope
		v.state.Options = msg.resp.Options
		v.warnings = msg.resp.Warnings
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, resolveScopeCmd(v.state.App, v.state.Scope, v.state.NextScopeGen())

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *filterView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case "down", "j":
		if v.cursor < len(v.fields)-1 {
			v.cursor++
		}
		return v, nil

	case "left":
		return v, v.cycle(-1)

	case "right":
		return v, v.cycle(1)

	case "d":
		if v.state.Scope.ResourceID == "" {
			return v, showOutput(formatter.Dim("Select a resource first."))
		}
		return v, dashboardOutputCmd(v.state)

	case "h":
		if v.state.Scope.TeamID == "" {
			return v, showOutput(formatter.Dim("Select a team first."))
		}
		return v, pushView(newHeatmapView(v.state))

	case "p":
		if v.state.Scope.ResourceID == "" || v.state.Scope.ProjectID == "" {
			return v, showOutput(formatter.Dim("Select a resource and a project first."))
		}
		return v, openPlanEditorCmd(v.state)

	case "n":
		return v, newAllocationWizardCmd(v.state)
	}

	return v, nil
}

// cycle moves the active field's selection through its option list.
// Position 0 is the synthetic "all" choice that leaves the field unset.
func (v *filterView) cycle(delta int) tea.Cmd {
	field := v.fields[v.cursor]
	options := v.optionsFor(field)
	current := v.valueOf(field)

	idx := 0
	for i, o := range options {
		if o.ID == current {
			idx = i + 1
			break
		}
	}

	idx += delta
	if idx < 0 || idx > len(options) {
		return nil
	}

	value := ""
	if idx > 0 {
		value = options[idx-1].ID
	}

	v.loading = true
	gen := v.state.SetScope(field, value)
	return resolveScopeCmd(v.state.App, v.state.Scope, gen)
}

func (v *filterView) optionsFor(field contract.ScopeField) []contract.Option {
	switch field {
	case contract.FieldSection:
		return v.state.Options.Sections
	case contract.FieldTeam:
		return v.state.Options.Teams
	case contract.FieldResource:
		return v.state.Options.Resources
	default:
		return v.state.Options.Projects
	}
}

func (v *filterView) valueOf(field contract.ScopeField) string {
	switch field {
	case contract.FieldSection:
		return v.state.Scope.SectionID
	case contract.FieldTeam:
		return v.state.Scope.TeamID
	case contract.FieldResource:
		return v.state.Scope.ResourceID
	default:
		return v.state.Scope.ProjectID
	}
}

func (v *filterView) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Filters") + "\n\n")

	labels := map[contract.ScopeField]string{
		contract.FieldSection:  "Section",
		contract.FieldTeam:     "Team",
		contract.FieldResource: "Resource",
		contract.FieldProject:  "Project",
	}

	for i, field := range v.fields {
		options := v.optionsFor(field)
		name := "All"
		if current := v.valueOf(field); current != "" {
			name = current
			for _, o := range options {
				if o.ID == current {
					name = o.Name
					break
				}
			}
		}

		marker := "  "
		line := fmt.Sprintf("%-10s %s %s", labels[field], formatter.Dim("‹"+name+"›"),
			formatter.Dim(fmt.Sprintf("(%d)", len(options))))
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("> ")
			line = fmt.Sprintf("%-10s %s %s", labels[field],
				formatter.StyleGreen.Render("‹"+name+"›"),
				formatter.Dim(fmt.Sprintf("(%d)", len(options))))
		}
		b.WriteString(marker + line + "\n")
	}

	if v.loading {
		b.WriteString("\n" + formatter.Dim("Resolving...") + "\n")
	}
	if w := formatter.FormatWarnings(v.warnings); w != "" {
		b.WriteString("\n" + w)
	}

	return b.String()
}

func (v *filterView) ID() ViewID    { return ViewFilter }
func (v *filterView) Title() string { return "filters" }
func (v *filterView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "field")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "value")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "heatmap")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "plan hours")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new allocation")),
	}
}

// dashboardOutputCmd renders the current-year dashboard of the scoped
// resource as transient output.
func dashboardOutputCmd(state *SharedState) tea.Cmd {
	return func() tea.Msg {
		req := contract.NewDashboardRequest(state.Scope.ResourceID, time.Now().Year())
		req.ProjectID = state.Scope.ProjectID
		resp, err := state.App.Dashboard.Aggregate(context.Background(), req)
		if err != nil {
			return outputMsg{output: formatter.StyleRed.Render(err.Error())}
		}
		return outputMsg{output: formatter.FormatDashboard(resp)}
	}
}

// openPlanEditorCmd finds the allocation for the scoped resource and
// project and opens the plan editor on it.
func openPlanEditorCmd(state *SharedState) tea.Cmd {
	return func() tea.Msg {
		items, err := state.App.Allocations.List(context.Background(), repository.AllocationFilter{
			ResourceID: state.Scope.ResourceID,
			ProjectID:  state.Scope.ProjectID,
		})
		if err != nil {
			return outputMsg{output: formatter.StyleRed.Render(err.Error())}
		}
		if len(items) == 0 {
			return outputMsg{output: formatter.Dim("No allocation for this resource and project; press n to create one.")}
		}
		view, err := newPlanEditorView(state, items[0].Allocation.ID)
		if err != nil {
			return outputMsg{output: formatter.StyleRed.Render(err.Error())}
		}
		return pushViewMsg{view: view}
	}
}
