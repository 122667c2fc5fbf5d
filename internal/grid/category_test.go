package grid

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boTester/internal/browser"
	"boTester/internal/page"
)

func TestViewCategoryInGrid(t *testing.T) {
	f := newFakePage()
	g := New(f, "Monitoring •")

	require.NoError(t, g.ViewCategoryInGrid(context.Background(), 2))
	assert.Equal(t, []call{{Method: "ClickAndWaitForNavigation", Selector: ViewCategoryRowLink(2)}}, f.recorded())
}

func TestEditCategoryInGrid(t *testing.T) {
	f := newFakePage()
	g := New(f, "Monitoring •")

	require.NoError(t, g.EditCategoryInGrid(context.Background(), 2))

	calls := f.recorded()
	require.Len(t, calls, 3)
	assert.ElementsMatch(t, []call{
		{Method: "Click", Selector: DropdownToggleButton(CategoryTable, 2)},
		{Method: "WaitForVisibleSelector", Selector: ExpandedDropdownToggle(CategoryTable, 2)},
	}, calls[:2])
	assert.Equal(t, call{Method: "ClickAndWaitForNavigation", Selector: EditCategoryRowLink(2)}, calls[2])
}

func TestDeleteCategoryInGrid(t *testing.T) {
	f := newFakePage()
	f.texts[page.AlertSuccessBlockParagraph] = "Successful deletion"
	g := New(f, "Monitoring •")

	msg, err := g.DeleteCategoryInGrid(context.Background(), CategoryTable, 2, DeleteModeAssociateOnly)
	require.NoError(t, err)
	assert.Equal(t, "Successful deletion", msg)

	calls := f.recorded()
	require.Len(t, calls, 9)
	assert.Equal(t, call{Method: "ArmDialog", Arg: "true"}, calls[0])
	assert.ElementsMatch(t, []call{
		{Method: "Click", Selector: DropdownToggleButton(CategoryTable, 2)},
		{Method: "WaitForVisibleSelector", Selector: ExpandedDropdownToggle(CategoryTable, 2)},
	}, calls[1:3])
	assert.ElementsMatch(t, []call{
		{Method: "Click", Selector: DeleteCategoryRowLink(2)},
		{Method: "WaitForVisibleSelector", Selector: DeleteModeModal},
	}, calls[3:5])
	assert.Equal(t, call{Method: "Click", Selector: "#delete_categories_delete_mode_1"}, calls[5])
	assert.Equal(t, call{Method: "ClickAndWaitForNavigation", Selector: SubmitDeleteModeButton}, calls[6])
	assert.Equal(t, call{Method: "GetTextContent", Selector: page.AlertSuccessBlockParagraph}, calls[7])
	assert.Equal(t, "ReleaseDialog", calls[8].Method)
}

func TestDeleteCategoryInGridModalNeverShows(t *testing.T) {
	f := newFakePage()
	f.failOn("WaitForVisibleSelector", DeleteModeModal, browser.ErrTimeout)
	g := New(f, "Monitoring •")

	_, err := g.DeleteCategoryInGrid(context.Background(), CategoryTable, 1, DeleteModeRemoveProducts)
	assert.ErrorIs(t, err, browser.ErrTimeout)
	assert.NotErrorIs(t, err, ErrDropdownNotExpanded)
	assert.NotContains(t, f.methods(), "ClickAndWaitForNavigation")
}

func TestDeleteCategoryInGridRejectsNegativeMode(t *testing.T) {
	f := newFakePage()
	g := New(f, "Monitoring •")

	_, err := g.DeleteCategoryInGrid(context.Background(), CategoryTable, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidDeletionMode)
	assert.Empty(t, f.recorded())
}

func TestDeleteCategoryInGridMissingBanner(t *testing.T) {
	f := newFakePage()
	g := New(f, "Monitoring •")

	_, err := g.DeleteCategoryInGrid(context.Background(), CategoryTable, 1, DeleteModeAssociateAndDisable)
	require.Error(t, err)
	assert.True(t, errors.Is(err, browser.ErrElementAbsent))
}
