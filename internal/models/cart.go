package models

// CartItem pairs a product snapshot with a quantity. The snapshot is the
// product as it looked when it was added; the cart never re-reads live
// price or stock from the catalog.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartEntry is the persisted form of a client profile's cart: one row per
// storage key holding the serialized item list.
type CartEntry struct {
	Key   string `gorm:"primaryKey;type:varchar(255)"`
	Value string
}
