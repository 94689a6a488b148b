package model

// Books are the recognized trading books. Every position carries a
// quantity for each of them.
var Books = []string{"TRSY1", "TRSY2", "TRSY3"}

// Position is a product's signed quantity per book. The aggregate is
// derived lazily as the sum over books.
type Position struct {
	ProductID  string
	Quantities map[string]int64
}

// NewPosition creates a zero position across the recognized books.
func NewPosition(productID string) Position {
	q := make(map[string]int64, len(Books))
	for _, book := range Books {
		q[book] = 0
	}
	return Position{ProductID: productID, Quantities: q}
}

// Quantity returns the signed quantity held in book.
func (p Position) Quantity(book string) int64 {
	return p.Quantities[book]
}

// Aggregate returns the sum of the per-book quantities.
func (p Position) Aggregate() int64 {
	var total int64
	for _, q := range p.Quantities {
		total += q
	}
	return total
}

// Clone returns a deep copy, so stored positions are never aliased by
// records observed downstream.
func (p Position) Clone() Position {
	q := make(map[string]int64, len(p.Quantities))
	for book, qty := range p.Quantities {
		q[book] = qty
	}
	return Position{ProductID: p.ProductID, Quantities: q}
}
