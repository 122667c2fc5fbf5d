package grid

import (
	"context"
	"fmt"
)

// Deletion modes offered by the empty category modal, by radio position.
const (
	DeleteModeAssociateAndDisable = 0
	DeleteModeAssociateOnly       = 1
	DeleteModeRemoveProducts      = 2
)

func (g *GridPage) ViewCategoryInGrid(ctx context.Context, row int) error {
	a := &Action{Operation: OpViewCategory, Table: CategoryTable, Row: row}
	return g.track(ctx, a, func() error {
		if err := checkRow(row); err != nil {
			return err
		}
		if err := g.Page.ClickAndWaitForNavigation(ctx, ViewCategoryRowLink(row)); err != nil {
			return fmt.Errorf("view category row %d: %w", row, err)
		}
		return nil
	})
}

func (g *GridPage) EditCategoryInGrid(ctx context.Context, row int) error {
	a := &Action{Operation: OpEditCategory, Table: CategoryTable, Row: row}
	return g.track(ctx, a, func() error {
		if err := checkRow(row); err != nil {
			return err
		}
		if err := g.openDropdownMenu(ctx, CategoryTable, row); err != nil {
			return err
		}
		if err := g.Page.ClickAndWaitForNavigation(ctx, EditCategoryRowLink(row)); err != nil {
			return fmt.Errorf("edit category row %d: %w", row, err)
		}
		return nil
	})
}

// DeleteCategoryInGrid deletes a category through the deletion mode modal, choosing the
// radio at deletionModePosition, and returns the success banner text.
// The menu is opened on table; the delete link and modal always belong to the empty category grid.
func (g *GridPage) DeleteCategoryInGrid(ctx context.Context, table string, row, deletionModePosition int, opts ...ActionOption) (string, error) {
	o := actionOptions(opts)
	var message string
	a := &Action{Operation: OpDeleteCategory, Table: table, Row: row, Detail: fmt.Sprintf("mode %d", deletionModePosition)}
	err := g.track(ctx, a, func() error {
		if err := checkRow(row); err != nil {
			return err
		}
		if deletionModePosition < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidDeletionMode, deletionModePosition)
		}

		release := g.Page.ArmDialog(o.AcceptDialog)
		defer release()

		if err := g.openDropdownMenu(ctx, table, row); err != nil {
			return err
		}
		if err := g.clickAndWaitVisible(ctx, DeleteCategoryRowLink(row), DeleteModeModal); err != nil {
			return fmt.Errorf("open deletion mode modal for row %d: %w", row, err)
		}
		if err := g.Page.Click(ctx, DeleteModeInput(deletionModePosition)); err != nil {
			return fmt.Errorf("choose deletion mode %d: %w", deletionModePosition, err)
		}
		if err := g.Page.ClickAndWaitForNavigation(ctx, SubmitDeleteModeButton); err != nil {
			return fmt.Errorf("submit category deletion: %w", err)
		}

		var err error
		message, err = g.SuccessMessage(ctx)
		a.Detail = message
		return err
	})
	return message, err
}
