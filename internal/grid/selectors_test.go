package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridSelectors(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"panel", GridPanel("product"), "#product_grid_panel"},
		{"table", GridTable("product"), "#product_grid_table"},
		{"header", GridHeaderTitle("product"), "#product_grid_panel div.card-header h3"},
		{"filter", FilterColumn("product", "active"), "#product_grid_table #product_active"},
		{"search", FilterSearchButton("product"), "#product_grid_table button[name='product[actions][search]']"},
		{"reset", FilterResetButton("product"), "#product_grid_table button[name='product[actions][reset]']"},
		{"body", TableBody("product"), "#product_grid_table tbody"},
		{"row", TableRow("product", 3), "#product_grid_table tbody tr:nth-child(3)"},
		{"empty row", TableEmptyRow("product"), "#product_grid_table tbody tr.empty_row"},
		{"column", TableColumn("product", 1, "name"), "#product_grid_table tbody tr:nth-child(1) td.column-name"},
		{"actions", ActionsColumn("product", 2), "#product_grid_table tbody tr:nth-child(2) td.column-actions"},
		{"edit", EditRowLink("product", 2), "#product_grid_table tbody tr:nth-child(2) td.column-actions a[data-original-title='Edit']"},
		{"toggle", DropdownToggleButton("product", 2), "#product_grid_table tbody tr:nth-child(2) td.column-actions a.dropdown-toggle"},
		{"expanded", ExpandedDropdownToggle("product", 2), "#product_grid_table tbody tr:nth-child(2) td.column-actions a.dropdown-toggle[aria-expanded='true']"},
		{"menu", DropdownToggleMenu("product", 2), "#product_grid_table tbody tr:nth-child(2) td.column-actions div.dropdown-menu"},
		{"delete", DeleteRowLink("product", 2), "#product_grid_table tbody tr:nth-child(2) td.column-actions div.dropdown-menu a[href*='/delete']"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestCategorySelectors(t *testing.T) {
	assert.Equal(t,
		"#empty_category_grid_table tbody tr:nth-child(4) td.column-actions a[data-original-title='View']",
		ViewCategoryRowLink(4))
	assert.Equal(t,
		"#empty_category_grid_table tbody tr:nth-child(4) td.column-actions div.dropdown-menu a[href*='/edit']",
		EditCategoryRowLink(4))
	assert.Equal(t,
		"#empty_category_grid_table tbody tr:nth-child(4) td.column-actions div.dropdown-menu a.js-delete-category-row-action",
		DeleteCategoryRowLink(4))
	assert.Equal(t, "#delete_categories_delete_mode_1", DeleteModeInput(1))
	assert.Equal(t, DeleteModeModalDiv+"_2", DeleteModeInput(DeleteModeRemoveProducts))
	assert.Equal(t, "#empty_category_grid_delete_categories_modal button.js-submit-delete-categories", SubmitDeleteModeButton)
}
