package catalog

import "strings"

// AllCategories is the sentinel selector that matches every category.
const AllCategories = "All"

// Filter returns the products matching the active category and search text.
// A product matches when the category selector is the sentinel or equals
// the product category exactly, and the lowercased concatenation of
// name, description, and category contains the lowercased query as a
// substring. The query is matched as typed, whitespace included. Order is
// preserved; an empty query with the sentinel category returns the input
// unchanged.
func Filter(items []Product, category, query string) []Product {
	query = strings.ToLower(query)
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if category != AllCategories && category != "" && p.Category != category {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(p.Name + p.Desc + p.Category)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Categories derives the chip list: the sentinel followed by the distinct
// categories present in the catalog, in first-seen order.
func Categories(items []Product) []string {
	out := []string{AllCategories}
	seen := map[string]struct{}{}
	for _, p := range items {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
