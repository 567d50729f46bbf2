package domain

import "time"

// ProductSnapshot is a denormalized copy of a product's display fields,
// captured when the product is added to the cart or wishlist. It is never
// revalidated against the live catalog and can go stale.
type ProductSnapshot struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	// Price is the unit price in cents at snapshot time.
	Price int64 `json:"price"`
}

// LineItem is one entry in the cart: a product (and optional variant) with a
// quantity and a price snapshot. The id is generated locally and is only
// unique within the store that created it.
type LineItem struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	VariantID *int64 `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	// TotalPrice is always UnitPrice * Quantity; it is recomputed on every
	// mutation and never treated as ground truth.
	TotalPrice int64           `json:"total_price"`
	Product    ProductSnapshot `json:"product"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Cart holds the current list of line items.
type Cart struct {
	Items []LineItem `json:"items"`
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// TotalPrice returns the sum of all line totals (in cents).
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.TotalPrice
	}
	return total
}

// FindLine returns the index of the line matching the given product and
// variant IDs, or -1 if no line matches. A nil variant matches only lines
// for the base product.
func (c *Cart) FindLine(productID int64, variantID *int64) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && sameVariant(c.Items[i].VariantID, variantID) {
			return i
		}
	}
	return -1
}

func sameVariant(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
