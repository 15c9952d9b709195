package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Catalog is an immutable set of products. It is safe for concurrent use.
type Catalog struct {
	products []Product
}

// catalogFile is the on-disk layout read by Load.
type catalogFile struct {
	Products []Product `json:"products" yaml:"products"`
}

// New validates products and returns a catalog holding a copy of them.
func New(products []Product) (*Catalog, error) {
	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("product %d: %w: duplicate id %q", i, ErrInvalidProduct, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return &Catalog{products: append([]Product(nil), products...)}, nil
}

// Load reads a catalog file. The format follows the extension: .yaml, .yml or
// .json.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var f catalogFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".json":
		err = json.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	c, err := New(f.Products)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of every product in insertion order.
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}
