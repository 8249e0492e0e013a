package source

import "github.com/idilsaglam/littlelemon/internal/model"

var defaultMenu = []model.MenuItem{
	{ID: "1", Title: "Spinach Artichoke Dip", Price: "10.99", Category: "Appetizers"},
	{ID: "2", Title: "Hummus", Price: "8.99", Category: "Appetizers"},
	{ID: "3", Title: "Fried Calamari Rings", Price: "12.99", Category: "Appetizers"},
	{ID: "4", Title: "Fried Mushroom", Price: "9.99", Category: "Appetizers"},

	{ID: "5", Title: "Greek Salad", Price: "9.99", Category: "Salads"},
	{ID: "6", Title: "Caesar Salad", Price: "8.99", Category: "Salads"},
	{ID: "7", Title: "Tuna Salad", Price: "11.99", Category: "Salads"},
	{ID: "8", Title: "Grilled Chicken Salad", Price: "12.99", Category: "Salads"},

	{ID: "9", Title: "Water", Price: "1.99", Category: "Beverages"},
	{ID: "10", Title: "Coke", Price: "2.99", Category: "Beverages"},
	{ID: "11", Title: "Beer", Price: "5.99", Category: "Beverages"},
	{ID: "12", Title: "Ice Tea", Price: "3.99", Category: "Beverages"},
}

// DefaultMenu returns a copy of the compiled-in menu. It is never empty.
func DefaultMenu() []model.MenuItem {
	out := make([]model.MenuItem, len(defaultMenu))
	copy(out, defaultMenu)
	return out
}
