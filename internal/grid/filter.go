package grid

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type FilterType string

const (
	FilterInput  FilterType = "input"
	FilterSelect FilterType = "select"
)

const (
	selectYes = "Yes"
	selectNo  = "No"
)

// GetNumberOfElementInGrid reads the element count from the grid header.
func (g *GridPage) GetNumberOfElementInGrid(ctx context.Context, table string) (int, error) {
	var n int
	a := &Action{Operation: OpCount, Table: table}
	err := g.track(ctx, a, func() error {
		var err error
		n, err = g.numberOfElements(ctx, table)
		a.Detail = strconv.Itoa(n)
		return err
	})
	return n, err
}

func (g *GridPage) numberOfElements(ctx context.Context, table string) (int, error) {
	n, err := g.Page.GetNumberFromText(ctx, GridHeaderTitle(table))
	if err != nil {
		return 0, fmt.Errorf("count elements in %s: %w", table, err)
	}
	return n, nil
}

// ResetFilter clicks the reset button when the grid shows one.
// A reset button still hidden after the reset timeout means there is nothing to reset.
func (g *GridPage) ResetFilter(ctx context.Context, table string) error {
	a := &Action{Operation: OpReset, Table: table}
	return g.track(ctx, a, func() error {
		return g.resetFilter(ctx, table, a)
	})
}

func (g *GridPage) resetFilter(ctx context.Context, table string, a *Action) error {
	hidden, err := g.Page.ElementNotVisible(ctx, FilterResetButton(table), g.resetTimeout)
	if err != nil {
		return fmt.Errorf("look for reset button of %s: %w", table, err)
	}
	if hidden {
		a.Detail = "nothing to reset"
		return nil
	}
	if err := g.Page.ClickAndWaitForNavigation(ctx, FilterResetButton(table)); err != nil {
		return fmt.Errorf("reset filters of %s: %w", table, err)
	}
	a.Detail = "reset"
	return nil
}

// ResetAndGetNumberOfLines resets the filters then returns the grid count.
func (g *GridPage) ResetAndGetNumberOfLines(ctx context.Context, table string) (int, error) {
	if err := g.ResetFilter(ctx, table); err != nil {
		return 0, err
	}
	return g.GetNumberOfElementInGrid(ctx, table)
}

// FilterTable sets value into the filter of column filterBy and submits the search.
// Select filters pick "Yes" when value is truthy and "No" otherwise.
func (g *GridPage) FilterTable(ctx context.Context, table string, filterType FilterType, filterBy, value string) error {
	a := &Action{Operation: OpFilter, Table: table, Column: filterBy, Detail: value}
	return g.track(ctx, a, func() error {
		return g.filterTable(ctx, table, filterType, filterBy, value)
	})
}

// FilterByText is FilterTable for an input filter.
func (g *GridPage) FilterByText(ctx context.Context, table, filterBy, text string) error {
	return g.FilterTable(ctx, table, FilterInput, filterBy, text)
}

// FilterByBool is FilterTable for a Yes/No select filter.
func (g *GridPage) FilterByBool(ctx context.Context, table, filterBy string, value bool) error {
	return g.FilterTable(ctx, table, FilterSelect, filterBy, strconv.FormatBool(value))
}

func (g *GridPage) filterTable(ctx context.Context, table string, filterType FilterType, filterBy, value string) error {
	selector := FilterColumn(table, filterBy)

	switch filterType {
	case FilterInput:
		if err := g.Page.SetValue(ctx, selector, value); err != nil {
			return fmt.Errorf("fill filter %s of %s: %w", filterBy, table, err)
		}
	case FilterSelect:
		label := selectNo
		if truthy(value) {
			label = selectYes
		}
		if err := g.Page.SelectByVisibleText(ctx, selector, label); err != nil {
			return fmt.Errorf("select filter %s of %s: %w", filterBy, table, err)
		}
	default:
		return &UnsupportedFilterTypeError{FilterType: filterType, FilterBy: filterBy}
	}

	if err := g.Page.ClickAndWaitForNavigation(ctx, FilterSearchButton(table)); err != nil {
		return fmt.Errorf("search %s: %w", table, err)
	}
	return nil
}

// truthy treats empty strings, "0", "false", "no" and "off" as false.
func truthy(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	switch strings.ToLower(v) {
	case "no", "off":
		return false
	}
	return true
}
