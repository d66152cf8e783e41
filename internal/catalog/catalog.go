// Package catalog provides the built-in product catalog and a YAML loader
// for custom catalogs. Products convert to indexable documents.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	domdoc "github.com/curio-labs/searchlab/internal/domain/document"
)

// Product is a catalog entry as loaded from YAML or the built-in set.
type Product struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	ImageURL    string  `yaml:"image_url"`
	Category    string  `yaml:"category"`
	Badge       string  `yaml:"badge,omitempty"`
}

// Document converts the product into an indexable document. The description
// doubles as content; the remaining fields land in metadata.
func (p Product) Document() (domdoc.Document, error) {
	meta := map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"price":       p.Price,
		"image_url":   p.ImageURL,
	}
	if p.Badge != "" {
		meta["badge"] = p.Badge
	}
	return domdoc.New(p.ID, p.Description, meta)
}

// Default returns the built-in jewelry catalog.
func Default() []Product {
	return []Product{
		{
			ID:          "001",
			Name:        "Diamond Solitaire Ring",
			Description: "Classic round brilliant diamond set in 18k white gold. Timeless elegance for engagements.",
			Price:       4999.00,
			ImageURL:    "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=400&h=400&fit=crop",
			Category:    "Rings",
		},
		{
			ID:          "002",
			Name:        "Gold Chain Necklace",
			Description: "14k yellow gold Cuban link chain. Bold statement piece for everyday wear.",
			Price:       1299.00,
			ImageURL:    "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=400&h=400&fit=crop",
			Category:    "Necklaces",
		},
		{
			ID:          "003",
			Name:        "Pearl Drop Earrings",
			Description: "Freshwater pearls with sterling silver hooks. Elegant and sophisticated.",
			Price:       299.00,
			ImageURL:    "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400&h=400&fit=crop",
			Category:    "Earrings",
		},
		{
			ID:          "004",
			Name:        "Silver Tennis Bracelet",
			Description: "Sterling silver with cubic zirconia stones. Sparkle for any occasion.",
			Price:       449.00,
			ImageURL:    "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=400&h=400&fit=crop",
			Category:    "Bracelets",
		},
		{
			ID:          "005",
			Name:        "Vintage Emerald Ring",
			Description: "Art deco inspired emerald ring with diamond accents in platinum setting.",
			Price:       3799.00,
			ImageURL:    "https://images.unsplash.com/photo-1551406483-3731d1997540?w=400&h=400&fit=crop",
			Category:    "Rings",
			Badge:       "VINTAGE",
		},
		{
			ID:          "006",
			Name:        "Rose Gold Pendant",
			Description: "Delicate heart-shaped pendant in 14k rose gold with diamond accent.",
			Price:       599.00,
			ImageURL:    "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400&h=400&fit=crop",
			Category:    "Necklaces",
		},
		{
			ID:          "007",
			Name:        "Sapphire Stud Earrings",
			Description: "Blue sapphire studs set in white gold. Deep color, brilliant sparkle.",
			Price:       899.00,
			ImageURL:    "https://images.unsplash.com/photo-1588444650733-d0b6271cfc55?w=400&h=400&fit=crop",
			Category:    "Earrings",
		},
		{
			ID:          "008",
			Name:        "Men's Signet Ring",
			Description: "Classic gold signet ring with customizable engraving surface.",
			Price:       799.00,
			ImageURL:    "https://images.unsplash.com/photo-1573408301185-9146fe634ad0?w=400&h=400&fit=crop",
			Category:    "Rings",
		},
	}
}

// Load reads a catalog from a YAML file.
func Load(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file struct {
		Products []Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog %s contains no products", path)
	}

	return file.Products, nil
}

// Documents converts products into documents, failing on the first invalid
// entry.
func Documents(products []Product) ([]domdoc.Document, error) {
	docs := make([]domdoc.Document, 0, len(products))
	for _, p := range products {
		doc, err := p.Document()
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ID, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
