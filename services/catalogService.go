package services

import (
	"strings"

	"github.com/gadgetfinder/gadget-finder-api/models"
)

const (
	DefaultPageSize  = 9
	FeaturedPageSize = 4
	AllCategories    = "all"
)

// FilterProducts keeps the products whose name or description contains the
// search term (case-insensitive) and whose category matches the selected one.
// The "all" sentinel matches every category. Pure: the input slice is never
// modified and the result is always a subset of it.
func FilterProducts(products []models.Product, searchTerm, selectedCategory string) []models.Product {
	search := strings.ToLower(searchTerm)
	category := strings.ToLower(selectedCategory)

	filtered := []models.Product{}
	for _, product := range products {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(product.Name), search) ||
			strings.Contains(strings.ToLower(product.Description), search)

		matchesCategory := category == "" || category == AllCategories ||
			strings.ToLower(product.Category) == category

		if matchesSearch && matchesCategory {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// CategoryOptions derives the filter control's options: "all" first, then
// each distinct non-empty category in first-seen order.
func CategoryOptions(products []models.Product) []string {
	options := []string{AllCategories}
	seen := map[string]bool{}
	for _, product := range products {
		if product.Category == "" || seen[product.Category] {
			continue
		}
		seen[product.Category] = true
		options = append(options, product.Category)
	}
	return options
}

// Page is one slice of a filtered result set.
type Page struct {
	Items      []models.Product `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
}

// Paginate returns page p (1-indexed) of the given list. Out-of-range pages
// come back with empty items, never an error.
func Paginate(products []models.Product, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(products)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      products[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
	}
}

// CatalogView is the stateful browse session over one fetched list: current
// search term, category and page. Changing either filter resets the page to
// 1, matching how the product grid behaves.
type CatalogView struct {
	products         []models.Product
	searchTerm       string
	selectedCategory string
	page             int
	pageSize         int
}

func NewCatalogView(products []models.Product, pageSize int) *CatalogView {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &CatalogView{
		products:         products,
		selectedCategory: AllCategories,
		page:             1,
		pageSize:         pageSize,
	}
}

func (v *CatalogView) SetSearchTerm(term string) {
	if v.searchTerm != term {
		v.searchTerm = term
		v.page = 1
	}
}

func (v *CatalogView) SetCategory(category string) {
	if v.selectedCategory != category {
		v.selectedCategory = category
		v.page = 1
	}
}

func (v *CatalogView) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

func (v *CatalogView) CurrentPage() Page {
	filtered := FilterProducts(v.products, v.searchTerm, v.selectedCategory)
	return Paginate(filtered, v.page, v.pageSize)
}

func (v *CatalogView) Categories() []string {
	return CategoryOptions(v.products)
}
