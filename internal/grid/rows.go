package grid

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// GetTextColumnFromTable returns the text of one cell.
func (g *GridPage) GetTextColumnFromTable(ctx context.Context, table string, row int, column string) (string, error) {
	var text string
	a := &Action{Operation: OpReadCell, Table: table, Row: row, Column: column}
	err := g.track(ctx, a, func() error {
		if err := checkRow(row); err != nil {
			return err
		}
		var err error
		text, err = g.Page.GetTextContent(ctx, TableColumn(table, row, column))
		if err != nil {
			return fmt.Errorf("read %s of row %d in %s: %w", column, row, table, err)
		}
		a.Detail = text
		return nil
	})
	return text, err
}

// IsEmpty reports whether the grid shows its "no records" row.
func (g *GridPage) IsEmpty(ctx context.Context, table string) (bool, error) {
	hidden, err := g.Page.ElementNotVisible(ctx, TableEmptyRow(table), g.resetTimeout)
	if err != nil {
		return false, fmt.Errorf("look for empty row of %s: %w", table, err)
	}
	return !hidden, nil
}

// GoToEditElementPage follows the edit link of row.
func (g *GridPage) GoToEditElementPage(ctx context.Context, table string, row int) error {
	a := &Action{Operation: OpEdit, Table: table, Row: row}
	return g.track(ctx, a, func() error {
		if err := checkRow(row); err != nil {
			return err
		}
		if err := g.Page.ClickAndWaitForNavigation(ctx, EditRowLink(table, row)); err != nil {
			return fmt.Errorf("edit row %d of %s: %w", row, table, err)
		}
		return nil
	})
}

// OpenDropdownMenu opens the actions menu of row and waits until its toggle reports aria-expanded.
func (g *GridPage) OpenDropdownMenu(ctx context.Context, table string, row int) error {
	a := &Action{Operation: OpOpenDropdown, Table: table, Row: row}
	return g.track(ctx, a, func() error {
		if err := checkRow(row); err != nil {
			return err
		}
		return g.openDropdownMenu(ctx, table, row)
	})
}

func (g *GridPage) openDropdownMenu(ctx context.Context, table string, row int) error {
	err := g.clickAndWaitVisible(ctx, DropdownToggleButton(table, row), ExpandedDropdownToggle(table, row))
	var notVisible *visibilityError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &notVisible):
		return fmt.Errorf("%w: row %d of %s: %w", ErrDropdownNotExpanded, row, table, notVisible.Err)
	default:
		return fmt.Errorf("open dropdown of row %d in %s: %w", row, table, err)
	}
}

// IsDropdownExpanded reads the aria-expanded state of the row toggle.
func (g *GridPage) IsDropdownExpanded(ctx context.Context, table string, row int) (bool, error) {
	if err := checkRow(row); err != nil {
		return false, err
	}
	v, err := g.Page.GetAttribute(ctx, DropdownToggleButton(table, row), "aria-expanded")
	if err != nil {
		return false, fmt.Errorf("read dropdown state of row %d in %s: %w", row, table, err)
	}
	return v == "true", nil
}

// visibilityError is the wait half of clickAndWaitVisible failing.
type visibilityError struct {
	Selector string
	Err      error
}

func (e *visibilityError) Error() string {
	return fmt.Sprintf("wait for %s: %v", e.Selector, e.Err)
}

func (e *visibilityError) Unwrap() error {
	return e.Err
}

// clickAndWaitVisible starts the click and the wait together and returns when both are done.
// The wait must already be listening when the click lands.
// The first failure wins: a failed click cancels the wait and is returned as is.
func (g *GridPage) clickAndWaitVisible(ctx context.Context, clickSelector, waitSelector string) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := g.Page.Click(egCtx, clickSelector); err != nil {
			return fmt.Errorf("click %s: %w", clickSelector, err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := g.Page.WaitForVisibleSelector(egCtx, waitSelector); err != nil {
			return &visibilityError{Selector: waitSelector, Err: err}
		}
		return nil
	})
	return eg.Wait()
}

// DeleteProductInGrid deletes row through its actions menu, answering the confirmation
// dialog, and returns the success banner text.
func (g *GridPage) DeleteProductInGrid(ctx context.Context, table string, row int, opts ...ActionOption) (string, error) {
	o := actionOptions(opts)
	var message string
	a := &Action{Operation: OpDelete, Table: table, Row: row}
	err := g.track(ctx, a, func() error {
		if err := checkRow(row); err != nil {
			return err
		}

		// armed before the click: the dialog can open synchronously
		release := g.Page.ArmDialog(o.AcceptDialog)
		defer release()

		if err := g.openDropdownMenu(ctx, table, row); err != nil {
			return err
		}
		if err := g.Page.ClickAndWaitForNavigation(ctx, DeleteRowLink(table, row)); err != nil {
			return fmt.Errorf("delete row %d of %s: %w", row, table, err)
		}

		var err error
		message, err = g.SuccessMessage(ctx)
		a.Detail = message
		return err
	})
	return message, err
}
