package model

import "time"

// --- Bill Structures ---

// Food is one ordered line item on a bill. Quantity is always positive;
// Price is the unit price in whole đồng.
type Food struct {
	Name     string  `firestore:"name"`
	Quantity int     `firestore:"quantity"`
	Price    float64 `firestore:"price"`
	Type     string  `firestore:"type"`
}

// Bill is the order snapshot fetched once per print attempt. Foods keep
// their insertion order; the line total and bill total are always computed
// at render time, never stored.
type Bill struct {
	TableNumber string    `firestore:"tableNumber"`
	CreatedAt   time.Time `firestore:"createdAt"`
	Foods       []Food    `firestore:"foods"`
	Note        string    `firestore:"note"`

	// Page and PageCount are filled in by the kitchen orchestrator when a
	// bill is split into one sheet per food category.
	Page      int `firestore:"-"`
	PageCount int `firestore:"-"`
}
