package catalog

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// DefaultCategory labels products created without an explicit category.
const DefaultCategory = "General"

// Product is a single catalog entry. The JSON shape is the persisted
// layout under the storage key; renaming a tag is a storage format change.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Desc     string  `json:"desc"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
}

// Candidate carries raw admin-form input for a new product. Price arrives
// as the submitted string so coercion rules live in one place.
type Candidate struct {
	Name     string
	Desc     string
	Price    string
	Category string
	Color    string
}

// ErrEmptyName rejects a candidate whose name is blank after trimming.
var ErrEmptyName = errors.New("catalog: product name is required")

// NewProduct validates and normalizes a candidate into a Product.
// Invalid numeric price input coerces to zero, as do negative values.
// An omitted category falls back to DefaultCategory.
func NewProduct(c Candidate) (Product, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return Product{}, ErrEmptyName
	}
	price := cast.ToFloat64(strings.TrimSpace(c.Price))
	if price < 0 {
		price = 0
	}
	category := strings.TrimSpace(c.Category)
	if category == "" {
		category = DefaultCategory
	}
	color := strings.TrimSpace(c.Color)
	if color == "" {
		color = "#6b4226"
	}
	return Product{
		ID:       newProductID(),
		Name:     name,
		Desc:     strings.TrimSpace(c.Desc),
		Price:    price,
		Category: category,
		Color:    color,
	}, nil
}

// newProductID derives an identifier from a high-resolution timestamp.
// Collisions are possible in principle but not in interactive use.
func newProductID() string {
	return "p" + strconv.FormatInt(time.Now().UnixNano(), 36)
}
