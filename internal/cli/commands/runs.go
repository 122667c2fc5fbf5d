package commands

import (
	"fmt"
	"io"
	"strconv"

	"boTester/internal/cli/ui"
	"boTester/internal/database"
)

type RunStore interface {
	ListRuns(limit, offset int) ([]database.Run, error)
	GetRunByID(id uint) (*database.Run, error)
	GetActionsByRunID(runID uint) ([]database.ActionRecord, error)
}

// RunsHandler prints the action journal.
type RunsHandler struct {
	store RunStore
	out   io.Writer
}

func NewRunsHandler(store RunStore, out io.Writer) *RunsHandler {
	return &RunsHandler{store: store, out: out}
}

func (h *RunsHandler) List(limit int) error {
	runs, err := h.store.ListRuns(limit, 0)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(h.out, ui.ColorGray+"no runs recorded"+ui.ColorReset)
		return nil
	}

	fmt.Fprintln(h.out, ui.ColorBold+ui.IconList+" Runs:"+ui.ColorReset)
	for _, r := range runs {
		icon, color, text := ui.FormatStatus(r.Status)
		fmt.Fprintf(h.out, "  "+ui.ColorBold+"#%d"+ui.ColorReset+" %s%s %s"+ui.ColorReset+" "+ui.ColorGray+"%s"+ui.ColorReset+"\n",
			r.ID, color, icon, text, r.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(h.out, "  "+ui.ColorGray+"└─"+ui.ColorReset+" %s\n", r.Command)
	}
	return nil
}

func (h *RunsHandler) Show(idStr string) error {
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return fmt.Errorf("bad run id %q", idStr)
	}
	run, err := h.store.GetRunByID(uint(id))
	if err != nil {
		return fmt.Errorf("run %d: %w", id, err)
	}
	actions, err := h.store.GetActionsByRunID(run.ID)
	if err != nil {
		return fmt.Errorf("actions of run %d: %w", id, err)
	}

	_, color, text := ui.FormatStatus(run.Status)
	fmt.Fprintf(h.out, ui.ColorBold+"=== Run #%d ==="+ui.ColorReset+"\n", run.ID)
	fmt.Fprintf(h.out, ui.ColorCyan+"Command:"+ui.ColorReset+" %s\n", run.Command)
	fmt.Fprintf(h.out, ui.ColorCyan+"Status:"+ui.ColorReset+" %s%s"+ui.ColorReset+"\n", color, text)
	if run.Summary != "" {
		fmt.Fprintf(h.out, ui.ColorCyan+"Summary:"+ui.ColorReset+" %s\n", run.Summary)
	}

	for _, a := range actions {
		fmt.Fprintf(h.out, ui.ColorGray+"[%s]"+ui.ColorReset+" "+ui.ColorCyan+"%s"+ui.ColorReset+" %s",
			a.CreatedAt.Format("15:04:05"), a.Operation, a.GridTable)
		if a.RowNo > 0 {
			fmt.Fprintf(h.out, " row %d", a.RowNo)
		}
		if a.ColumnName != "" {
			fmt.Fprintf(h.out, " ["+ui.ColorYellow+"%s"+ui.ColorReset+"]", a.ColumnName)
		}
		fmt.Fprintf(h.out, " "+ui.ColorGray+"%dms"+ui.ColorReset+"\n", a.DurationMs)
		if a.Error != "" {
			fmt.Fprintf(h.out, "  "+ui.ColorRed+"[ERROR]"+ui.ColorReset+" %s\n", a.Error)
		} else if a.Detail != "" {
			fmt.Fprintf(h.out, "  "+ui.ColorGreen+"[OK]"+ui.ColorReset+" %s\n", a.Detail)
		}
	}
	return nil
}
