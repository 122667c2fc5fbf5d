package grid

import "fmt"

// Locators for a back-office grid keyed by its table id (e.g. "product", "empty_category").
// They only build strings and never touch the browser.

func GridPanel(table string) string {
	return fmt.Sprintf("#%s_grid_panel", table)
}

func GridTable(table string) string {
	return fmt.Sprintf("#%s_grid_table", table)
}

// GridHeaderTitle holds the element count, e.g. "Empty categories (3)".
func GridHeaderTitle(table string) string {
	return GridPanel(table) + " div.card-header h3"
}

// Filters

func FilterColumn(table, filterBy string) string {
	return fmt.Sprintf("%s #%s_%s", GridTable(table), table, filterBy)
}

func FilterSearchButton(table string) string {
	return fmt.Sprintf("%s button[name='%s[actions][search]']", GridTable(table), table)
}

func FilterResetButton(table string) string {
	return fmt.Sprintf("%s button[name='%s[actions][reset]']", GridTable(table), table)
}

// Table

func TableBody(table string) string {
	return GridTable(table) + " tbody"
}

// TableRow selects a row by its 1-based position.
func TableRow(table string, row int) string {
	return fmt.Sprintf("%s tr:nth-child(%d)", TableBody(table), row)
}

func TableEmptyRow(table string) string {
	return TableBody(table) + " tr.empty_row"
}

func TableColumn(table string, row int, column string) string {
	return fmt.Sprintf("%s td.column-%s", TableRow(table, row), column)
}

// Row actions

func ActionsColumn(table string, row int) string {
	return TableRow(table, row) + " td.column-actions"
}

func EditRowLink(table string, row int) string {
	return ActionsColumn(table, row) + " a[data-original-title='Edit']"
}

func DropdownToggleButton(table string, row int) string {
	return ActionsColumn(table, row) + " a.dropdown-toggle"
}

// ExpandedDropdownToggle matches the toggle only once its menu is open.
func ExpandedDropdownToggle(table string, row int) string {
	return DropdownToggleButton(table, row) + "[aria-expanded='true']"
}

func DropdownToggleMenu(table string, row int) string {
	return ActionsColumn(table, row) + " div.dropdown-menu"
}

func DeleteRowLink(table string, row int) string {
	return DropdownToggleMenu(table, row) + " a[href*='/delete']"
}

// Empty category grid

const CategoryTable = "empty_category"

const (
	DeleteModeModal        = "#empty_category_grid_delete_categories_modal"
	DeleteModeModalDiv     = "#delete_categories_delete_mode"
	SubmitDeleteModeButton = DeleteModeModal + " button.js-submit-delete-categories"
)

func ViewCategoryRowLink(row int) string {
	return ActionsColumn(CategoryTable, row) + " a[data-original-title='View']"
}

func EditCategoryRowLink(row int) string {
	return DropdownToggleMenu(CategoryTable, row) + " a[href*='/edit']"
}

func DeleteCategoryRowLink(row int) string {
	return DropdownToggleMenu(CategoryTable, row) + " a.js-delete-category-row-action"
}

// DeleteModeInput is the radio of the deletion mode at position.
func DeleteModeInput(position int) string {
	return fmt.Sprintf("%s_%d", DeleteModeModalDiv, position)
}
