package store

import "github.com/thepromise/ordering-platform/models"

// The catalog is static demo data shared by every branch. It is defined at
// process start and read-only afterwards.

var branches = []models.Branch{
	{ID: "lagos", Name: "Lagos Mainland", Timezone: "Africa/Lagos"},
	{ID: "abuja", Name: "Abuja Central", Timezone: "Africa/Lagos"},
	{ID: "ph", Name: "Port Harcourt", Timezone: "Africa/Lagos"},
}

var menu = []models.MenuItem{
	{ID: "jollof", Name: "Jollof Rice", Price: 3500, Category: "Meals"},
	{ID: "grilled-chicken", Name: "Grilled Chicken", Price: 4800, Category: "Protein"},
	{ID: "suya", Name: "Suya Platter", Price: 4200, Category: "Meals"},
	{ID: "salad", Name: "Garden Salad", Price: 2800, Category: "Sides"},
	{ID: "smoothie", Name: "Tropical Smoothie", Price: 1900, Category: "Drinks"},
	{ID: "waffles", Name: "Buttermilk Waffles", Price: 2600, Category: "Dessert"},
}

func ListBranches() []models.Branch {
	out := make([]models.Branch, len(branches))
	copy(out, branches)
	return out
}

func ListMenu() []models.MenuItem {
	out := make([]models.MenuItem, len(menu))
	copy(out, menu)
	return out
}

// MenuItemByID looks up a catalog item. The second return value is false for
// ids that are not on the menu.
func MenuItemByID(id string) (models.MenuItem, bool) {
	for _, item := range menu {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}
