package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"boTester/internal/cli/ui"
	"boTester/internal/grid"
	"boTester/internal/monitoring"
)

// Grid is what the grid commands need from a page object.
type Grid interface {
	GetNumberOfElementInGrid(ctx context.Context, table string) (int, error)
	ResetAndGetNumberOfLines(ctx context.Context, table string) (int, error)
	FilterTable(ctx context.Context, table string, filterType grid.FilterType, filterBy, value string) error
	GetTextColumnFromTable(ctx context.Context, table string, row int, column string) (string, error)
	GoToEditElementPage(ctx context.Context, table string, row int) error
	DeleteProductInGrid(ctx context.Context, table string, row int, opts ...grid.ActionOption) (string, error)
	ViewCategoryInGrid(ctx context.Context, row int) error
	EditCategoryInGrid(ctx context.Context, row int) error
	DeleteCategoryInGrid(ctx context.Context, table string, row, deletionModePosition int, opts ...grid.ActionOption) (string, error)
	Counts(ctx context.Context) (map[string]int, error)
}

// GridHandler runs one grid operation per command and prints the outcome.
type GridHandler struct {
	grid Grid
	out  io.Writer
}

func NewGridHandler(g Grid, out io.Writer) *GridHandler {
	return &GridHandler{grid: g, out: out}
}

func parsePosition(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, s)
	}
	return n, nil
}

func (h *GridHandler) Count(ctx context.Context, table string) error {
	n, err := h.grid.GetNumberOfElementInGrid(ctx, table)
	if err != nil {
		return err
	}
	ui.Info(h.out, ui.IconChart, "%s: %d", table, n)
	return nil
}

// Counts prints the element count of every monitoring grid in page order.
// Counts read before a failure are still printed.
func (h *GridHandler) Counts(ctx context.Context) error {
	counts, err := h.grid.Counts(ctx)
	for _, table := range monitoring.Tables {
		if n, ok := counts[table]; ok {
			ui.Info(h.out, ui.IconChart, "%s: %d", table, n)
		}
	}
	return err
}

func (h *GridHandler) Reset(ctx context.Context, table string) error {
	n, err := h.grid.ResetAndGetNumberOfLines(ctx, table)
	if err != nil {
		return err
	}
	ui.Success(h.out, "%s reset, %d element(s)", table, n)
	return nil
}

func (h *GridHandler) Filter(ctx context.Context, table, filterType, column, value string) error {
	if err := h.grid.FilterTable(ctx, table, grid.FilterType(filterType), column, value); err != nil {
		return err
	}
	n, err := h.grid.GetNumberOfElementInGrid(ctx, table)
	if err != nil {
		return err
	}
	ui.Success(h.out, "%s filtered by %s=%q, %d element(s)", table, column, value, n)
	return nil
}

func (h *GridHandler) Cell(ctx context.Context, table, rowArg, column string) error {
	row, err := parsePosition("row", rowArg)
	if err != nil {
		return err
	}
	text, err := h.grid.GetTextColumnFromTable(ctx, table, row, column)
	if err != nil {
		return err
	}
	fmt.Fprintln(h.out, text)
	return nil
}

func (h *GridHandler) Edit(ctx context.Context, table, rowArg string) error {
	row, err := parsePosition("row", rowArg)
	if err != nil {
		return err
	}
	if err := h.grid.GoToEditElementPage(ctx, table, row); err != nil {
		return err
	}
	ui.Info(h.out, ui.IconArrow, "edit page of row %d opened", row)
	return nil
}

func (h *GridHandler) Delete(ctx context.Context, table, rowArg string, accept bool) error {
	row, err := parsePosition("row", rowArg)
	if err != nil {
		return err
	}
	msg, err := h.grid.DeleteProductInGrid(ctx, table, row, grid.WithDialogResponse(accept))
	if err != nil {
		return err
	}
	ui.Success(h.out, "%s", msg)
	return nil
}

func (h *GridHandler) ViewCategory(ctx context.Context, rowArg string) error {
	row, err := parsePosition("row", rowArg)
	if err != nil {
		return err
	}
	if err := h.grid.ViewCategoryInGrid(ctx, row); err != nil {
		return err
	}
	ui.Info(h.out, ui.IconArrow, "category of row %d opened", row)
	return nil
}

func (h *GridHandler) EditCategory(ctx context.Context, rowArg string) error {
	row, err := parsePosition("row", rowArg)
	if err != nil {
		return err
	}
	if err := h.grid.EditCategoryInGrid(ctx, row); err != nil {
		return err
	}
	ui.Info(h.out, ui.IconArrow, "edit page of category row %d opened", row)
	return nil
}

func (h *GridHandler) DeleteCategory(ctx context.Context, table, rowArg, modeArg string, accept bool) error {
	row, err := parsePosition("row", rowArg)
	if err != nil {
		return err
	}
	mode, err := parsePosition("mode", modeArg)
	if err != nil {
		return err
	}
	msg, err := h.grid.DeleteCategoryInGrid(ctx, table, row, mode, grid.WithDialogResponse(accept))
	if err != nil {
		return err
	}
	ui.Success(h.out, "%s", msg)
	return nil
}
