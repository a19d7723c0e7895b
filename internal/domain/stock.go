package domain

import "time"

// Lot is a single warehouse receipt of a product. Lots are never merged:
// distinct import dates must stay distinguishable for expiry tracking. An
// exhausted lot keeps its row as the anchor for displays sourced from it.
type Lot struct {
	ID         int
	ProductID  int
	Quantity   int
	ImportDate time.Time
	CreatedAt  time.Time
}

func (l Lot) Exhausted() bool {
	return l.Quantity <= 0
}

func (l Lot) CanDecrement(amount int) bool {
	return amount > 0 && amount <= l.Quantity
}

// Display is a physical counter facing holding a bounded quantity of one
// lot's stock. Emptied displays persist so the slot can be restocked from
// the same lot.
type Display struct {
	ID              int
	LotID           int
	CounterID       int
	Position        string
	MaxQuantity     int
	CurrentQuantity int
	CreatedAt       time.Time
}

func (d Display) FreeCapacity() int {
	free := d.MaxQuantity - d.CurrentQuantity
	if free < 0 {
		return 0
	}
	return free
}

func (d Display) CanAbsorb(amount int) bool {
	return amount > 0 && amount <= d.FreeCapacity()
}

// Counter is dedicated to merchandising a single product category.
type Counter struct {
	ID         int
	Name       string
	CategoryID int
	Category   string
}

type Category struct {
	ID   int
	Name string
}
