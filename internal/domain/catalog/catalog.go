// Package catalog holds the static DMT product reference table. The table is
// not user-editable; records reference products by id and the export pivot
// resolves them by code.
package catalog

// ProductCategory partitions the catalog into current and legacy offerings.
type ProductCategory string

const (
	CategoryNew ProductCategory = "New"
	CategoryOld ProductCategory = "Old"
)

type Product struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	DefaultPrice float64         `json:"defaultPrice"`
	Category     ProductCategory `json:"category"`
}

var products = []Product{
	{ID: "p1", Code: "15391", Name: "Curator SE", DefaultPrice: 8275, Category: CategoryNew},
	{ID: "p2", Code: "15392", Name: "Managed", DefaultPrice: 1750, Category: CategoryNew},
	{ID: "p3", Code: "15435", Name: "Addl. Web", DefaultPrice: 799, Category: CategoryNew},
	{ID: "p4", Code: "15436", Name: "Manag. Addl. Web", DefaultPrice: 799, Category: CategoryNew},
	{ID: "p5", Code: "15381", Name: "AA", DefaultPrice: 4995, Category: CategoryOld},
	{ID: "p6", Code: "15382", Name: "SE", DefaultPrice: 8275, Category: CategoryOld},
	{ID: "p7", Code: "15390", Name: "SMS", DefaultPrice: 795, Category: CategoryOld},
}

// Products returns the full catalog in its fixed display order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ByID resolves a product id.
func ByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ByCode resolves a product code.
func ByCode(code string) (Product, bool) {
	for _, p := range products {
		if p.Code == code {
			return p, true
		}
	}
	return Product{}, false
}
