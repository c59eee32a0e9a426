package services

import (
	"fmt"
	"testing"

	"github.com/gadgetfinder/gadget-finder-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{Name: "Galaxy S24", Description: "Flagship phone", Category: "Smartphones", SKU: "G-1"},
		{Name: "ThinkPad X1", Description: "Business laptop", Category: "Laptops & Computers", SKU: "T-1"},
		{Name: "iPad Air", Description: "Thin tablet", Category: "Tablets", SKU: "I-1"},
		{Name: "Pixel Watch", Description: "Android smartwatch", Category: "Smart Watches", SKU: "P-1"},
		{Name: "Galaxy Tab", Description: "Android tablet", Category: "Tablets", SKU: "G-2"},
		{Name: "AirPods Pro", Description: "Wireless earbuds", Category: "Headphones & Audio", SKU: "A-1"},
	}
}

func TestFilterProductsMatchesNameOrDescription(t *testing.T) {
	products := sampleCatalog()

	byName := FilterProducts(products, "galaxy", AllCategories)
	assert.Len(t, byName, 2)

	byDescription := FilterProducts(products, "tablet", AllCategories)
	assert.Len(t, byDescription, 2)

	none := FilterProducts(products, "toaster", AllCategories)
	assert.Empty(t, none)
}

func TestFilterProductsCategoryMatch(t *testing.T) {
	products := sampleCatalog()

	tablets := FilterProducts(products, "", "Tablets")
	require.Len(t, tablets, 2)

	// exact match is case-insensitive
	lower := FilterProducts(products, "", "tablets")
	assert.Equal(t, tablets, lower)

	// both filters must match
	both := FilterProducts(products, "galaxy", "Tablets")
	require.Len(t, both, 1)
	assert.Equal(t, "Galaxy Tab", both[0].Name)
}

func TestFilterProductsIsPureAndSubset(t *testing.T) {
	products := sampleCatalog()

	first := FilterProducts(products, "android", AllCategories)
	second := FilterProducts(products, "android", AllCategories)
	assert.Equal(t, first, second, "filtering twice must yield the same result")

	// every filtered product exists in the source list
	for _, p := range first {
		assert.Contains(t, products, p)
	}

	// source is untouched
	assert.Equal(t, sampleCatalog(), products)
}

func TestCategoryOptions(t *testing.T) {
	products := sampleCatalog()
	products = append(products, models.Product{Name: "Mystery", SKU: "M-1"}) // empty category
	products = append(products, models.Product{Name: "Second Tab", SKU: "S-1", Category: "Tablets"})

	options := CategoryOptions(products)

	require.Equal(t, AllCategories, options[0])

	seen := map[string]int{}
	for _, option := range options {
		seen[option]++
	}
	assert.Equal(t, 1, seen[AllCategories], `"all" appears exactly once`)
	assert.Equal(t, 1, seen["Tablets"], "duplicates collapse to one option")
	assert.NotContains(t, options, "", "empty categories are dropped")
	assert.Len(t, options, 6)
}

func TestPaginateCoversEveryItemExactlyOnce(t *testing.T) {
	products := make([]models.Product, 0, 23)
	for i := 0; i < 23; i++ {
		products = append(products, models.Product{Name: fmt.Sprintf("Item %d", i), SKU: fmt.Sprintf("S-%d", i)})
	}

	pageSize := 9
	first := Paginate(products, 1, pageSize)
	require.Equal(t, 3, first.TotalPages)
	require.Equal(t, 23, first.Total)

	var union []models.Product
	for p := 1; p <= first.TotalPages; p++ {
		page := Paginate(products, p, pageSize)
		assert.LessOrEqual(t, len(page.Items), pageSize)
		if p == first.TotalPages {
			assert.NotEmpty(t, page.Items, "last page has at least one item")
		}
		union = append(union, page.Items...)
	}
	assert.Equal(t, products, union, "pages reassemble the filtered list with no gaps or duplicates")
}

func TestPaginateEdges(t *testing.T) {
	empty := Paginate(nil, 1, 9)
	assert.Zero(t, empty.TotalPages)
	assert.Empty(t, empty.Items)

	products := sampleCatalog()
	beyond := Paginate(products, 99, 9)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, len(products), beyond.Total)

	// invalid inputs fall back to defaults rather than erroring
	defaulted := Paginate(products, 0, 0)
	assert.Equal(t, 1, defaulted.Page)
	assert.Equal(t, DefaultPageSize, defaulted.PageSize)
}

func TestCatalogViewResetsPageOnFilterChange(t *testing.T) {
	products := make([]models.Product, 0, 30)
	for i := 0; i < 30; i++ {
		category := "Tablets"
		if i%2 == 0 {
			category = "Smartphones"
		}
		products = append(products, models.Product{Name: fmt.Sprintf("Item %d", i), SKU: fmt.Sprintf("S-%d", i), Category: category})
	}

	view := NewCatalogView(products, 9)
	view.SetPage(3)
	require.Equal(t, 3, view.CurrentPage().Page)

	view.SetSearchTerm("item")
	assert.Equal(t, 1, view.CurrentPage().Page, "search change resets to page 1")

	view.SetPage(2)
	view.SetCategory("Tablets")
	assert.Equal(t, 1, view.CurrentPage().Page, "category change resets to page 1")

	// setting the same value again keeps the page
	view.SetPage(2)
	view.SetCategory("Tablets")
	assert.Equal(t, 2, view.CurrentPage().Page)
}
