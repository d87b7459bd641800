package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/planner"
)

// planEditorView edits the monthly plan matrix of one allocation. Rows
// are periods; the whole matrix is committed in one save so removed
// months are retracted together with the updated ones.
type planEditorView struct {
	state        *SharedState
	alloc        *domain.Allocation
	resourceName string
	projectName  string
	matrix       *planner.PlanMatrix
	cursor       int
	input        textinput.Model
	editing      bool
	editErr      string
	saving       bool
}

func newPlanEditorView(state *SharedState, allocationID string) (*planEditorView, error) {
	ctx := context.Background()

	alloc, plans, err := state.App.Allocations.Get(ctx, allocationID)
	if err != nil {
		return nil, err
	}

	resourceName := alloc.ResourceID
	if r, err := state.App.Resources.GetByID(ctx, alloc.ResourceID); err == nil {
		resourceName = r.Name
	}
	projectName := alloc.ProjectID
	if p, err := state.App.Projects.GetByID(ctx, alloc.ProjectID); err == nil {
		projectName = p.Name
	}

	matrix := planner.NewPlanMatrix(alloc.ID)
	matrix.Load(plans)
	if matrix.Len() == 0 {
		matrix.AddPeriod()
	}

	input := textinput.New()
	input.CharLimit = 7
	input.Width = 8

	return &planEditorView{
		state:        state,
		alloc:        alloc,
		resourceName: resourceName,
		projectName:  projectName,
		matrix:       matrix,
		input:        input,
	}, nil
}

// planSavedMsg carries the save round trip result back to the editor.
type planSavedMsg struct {
	resp *contract.SaveAllocationResponse
	err  error
}

func (v *planEditorView) Init() tea.Cmd {
	return nil
}

func (v *planEditorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case planSavedMsg:
		v.saving = false
		return v, showOutput(formatSaveResult(msg.resp, msg.err))

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKey(msg)
		}
		return v.handleKey(msg)
	}

	if v.editing {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *planEditorView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := v.matrix.Entries()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(entries)-1 {
			v.cursor++
		}

	case "a":
		v.matrix.AddPeriod()
		v.cursor = v.matrix.Len() - 1

	case "x":
		if len(entries) > 0 {
			v.matrix.RemovePeriod(entries[v.cursor].Period)
			if v.cursor >= v.matrix.Len() && v.cursor > 0 {
				v.cursor--
			}
		}

	case "enter":
		if len(entries) > 0 {
			v.editing = true
			v.editErr = ""
			v.input.SetValue(strconv.FormatFloat(entries[v.cursor].PlannedHours, 'f', -1, 64))
			v.input.Focus()
			return v, textinput.Blink
		}

	case "s":
		if !v.saving {
			v.saving = true
			return v, v.saveCmd()
		}
	}

	return v, nil
}

func (v *planEditorView) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.editing = false
		v.input.Blur()
		return v, nil

	case tea.KeyEnter:
		entries := v.matrix.Entries()
		if err := v.matrix.SetHours(entries[v.cursor].Period, v.input.Value()); err != nil {
			v.editErr = err.Error()
			return v, nil
		}
		v.editing = false
		v.editErr = ""
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *planEditorView) saveCmd() tea.Cmd {
	req := contract.SaveAllocationRequest{
		Allocation:  *v.alloc,
		Plans:       v.matrix.ChangedBatch(),
		KeepPeriods: v.matrix.KeepPeriods(),
	}
	app := v.state.App
	return func() tea.Msg {
		resp, err := app.Allocations.Save(context.Background(), req)
		return planSavedMsg{resp: resp, err: err}
	}
}

func formatSaveResult(resp *contract.SaveAllocationResponse, err error) string {
	var partial *contract.PartialSaveError
	if errors.As(err, &partial) {
		periods := make([]string, len(partial.FailedPeriods))
		for i, p := range partial.FailedPeriods {
			periods[i] = p.String()
		}
		return formatter.StyleYellow.Render("Allocation saved, but hours failed for "+strings.Join(periods, ", ")) +
			"\n" + formatter.Dim("Save again to retry the failed months.")
	}
	if err != nil {
		return formatter.StyleRed.Render(err.Error())
	}
	return formatter.StyleGreen.Render(fmt.Sprintf("Saved %d planned month(s).", resp.PlansSaved))
}

func (v *planEditorView) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Plan hours") + "\n\n")
	b.WriteString(formatter.Bold(v.resourceName) + formatter.Dim(" on ") + formatter.Bold(v.projectName) + "\n\n")

	entries := v.matrix.Entries()
	var total float64
	for i, e := range entries {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("> ")
		}

		hours := formatter.FormatHours(e.PlannedHours)
		if v.editing && i == v.cursor {
			hours = v.input.View()
		}
		b.WriteString(fmt.Sprintf("%s%-10s %s\n", marker, formatter.PeriodLabel(e.Period), hours))
		total += e.PlannedHours
	}
	if len(entries) == 0 {
		b.WriteString(formatter.Dim("No months planned. Press a to add one.") + "\n")
	}

	b.WriteString("\n" + formatter.Dim("Total: "+formatter.FormatHours(total)) + "\n")

	if v.editErr != "" {
		b.WriteString("\n" + formatter.StyleRed.Render(v.editErr) + "\n")
	}
	if v.saving {
		b.WriteString("\n" + formatter.Dim("Saving...") + "\n")
	}

	return b.String()
}

func (v *planEditorView) ID() ViewID    { return ViewPlanEditor }
func (v *planEditorView) Title() string { return "plan" }
func (v *planEditorView) ShortHelp() []key.Binding {
	if v.editing {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "set hours")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "month")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add month")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove month")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	}
}
