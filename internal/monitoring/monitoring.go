// Package monitoring is the catalog monitoring screen: several grids listing
// catalog entries that need attention.
package monitoring

import (
	"context"
	"fmt"
	"strings"

	"boTester/internal/browser"
	"boTester/internal/grid"
)

const PageTitle = "Monitoring •"

// DefaultPath is appended to the back-office url when none is configured.
const DefaultPath = "index.php?controller=AdminMonitoring"

// Grid keys of the monitoring screen.
const (
	EmptyCategories                 = grid.CategoryTable
	NoQtyProductsWithCombinations   = "no_qty_product_with_combination"
	NoQtyProductsWithoutCombination = "no_qty_product_without_combination"
	DisabledProducts                = "disabled_product"
	ProductsWithoutImage            = "product_without_image"
	ProductsWithoutDescription      = "product_without_description"
	ProductsWithoutPrice            = "product_without_price"
)

// Tables lists every grid on the page in display order.
var Tables = []string{
	EmptyCategories,
	NoQtyProductsWithCombinations,
	NoQtyProductsWithoutCombination,
	DisabledProducts,
	ProductsWithoutImage,
	ProductsWithoutDescription,
	ProductsWithoutPrice,
}

type Page struct {
	*grid.GridPage
	url string
}

func New(p browser.Page, baseURL, path string, opts ...grid.Option) *Page {
	return &Page{
		GridPage: grid.New(p, PageTitle, opts...),
		url:      URL(baseURL, path),
	}
}

// URL joins the back-office base url and the monitoring path.
func URL(baseURL, path string) string {
	if path == "" {
		path = DefaultPath
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func (p *Page) URL() string {
	return p.url
}

// Open navigates to the monitoring page and checks its title.
func (p *Page) Open(ctx context.Context) error {
	if err := p.GoTo(ctx, p.url); err != nil {
		return fmt.Errorf("open monitoring page: %w", err)
	}
	ok, err := p.IsOpen(ctx)
	if err != nil {
		return fmt.Errorf("read monitoring page title: %w", err)
	}
	if !ok {
		title, _ := p.GetPageTitle(ctx)
		return fmt.Errorf("unexpected page title %q", title)
	}
	return nil
}

// Counts resets and counts every grid on the page.
func (p *Page) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(Tables))
	for _, table := range Tables {
		n, err := p.ResetAndGetNumberOfLines(ctx, table)
		if err != nil {
			return counts, err
		}
		counts[table] = n
	}
	return counts, nil
}

// IsKnownTable reports whether table is one of the monitoring grids.
func IsKnownTable(table string) bool {
	for _, t := range Tables {
		if t == table {
			return true
		}
	}
	return false
}
