package model

// MenuItem is one dish on the menu. Identity is ID; items are treated as
// values once a source has produced them.
type MenuItem struct {
	ID       string `json:"id" cbor:"id"`
	Title    string `json:"title" cbor:"title"`
	Price    string `json:"price" cbor:"price"` // decimal-formatted, e.g. "9.99"
	Category string `json:"category" cbor:"category"`
}

// Section groups the items of one category for a sectioned display.
type Section struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"data"`
}

// Selection maps a category name to whether its chip is selected.
type Selection map[string]bool
