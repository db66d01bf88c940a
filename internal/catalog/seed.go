package catalog

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedProduct struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Desc     string  `yaml:"desc"`
	Price    float64 `yaml:"price"`
	Category string  `yaml:"category"`
	Color    string  `yaml:"color"`
}

// Seed returns a fresh copy of the default catalog shipped with the
// binary. It is the fallback whenever the persisted catalog is missing,
// empty, or unparseable.
func Seed() []Product {
	var raw []seedProduct
	if err := yaml.Unmarshal(seedYAML, &raw); err != nil {
		// the embedded seed is fixed at build time; a parse failure here
		// is a build defect, not a runtime condition
		panic("catalog: embedded seed is invalid: " + err.Error())
	}
	out := make([]Product, 0, len(raw))
	for _, s := range raw {
		out = append(out, Product{
			ID:       s.ID,
			Name:     s.Name,
			Desc:     s.Desc,
			Price:    s.Price,
			Category: s.Category,
			Color:    s.Color,
		})
	}
	return out
}
