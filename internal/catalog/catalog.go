// Package catalog holds the static reference data for returnable items:
// categories, items with their reward ranges, condition tiers, and the
// fixed drop-off points. All of it is read-only.
package catalog

// Category groups returnable items.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a returnable product with its advertised reward range.
// Reward is either a range ("30,000–150,000 MMK") or a per-unit rate
// ("500 MMK/kg"); per-unit rates bypass condition scaling.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"img"`
	Reward   string `json:"reward"`
}

// Condition is a wear tier with its reward multiplier.
type Condition struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Factor float64 `json:"-"`
}

// DropoffPoint is a fixed collection location shown on the map.
type DropoffPoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

var categories = []Category{
	{ID: "electronics", Name: "Electronics"},
	{ID: "clothing", Name: "Clothing"},
	{ID: "packaging", Name: "Packaging"},
}

var items = map[string][]Item{
	"electronics": {
		{ID: "phone", Name: "Smartphone", ImageURL: "/public/img/phone.png", Reward: "30,000–150,000 MMK"},
		{ID: "laptop", Name: "Laptop", ImageURL: "/public/img/laptop.png", Reward: "80,000–400,000 MMK"},
	},
	"clothing": {
		{ID: "jeans", Name: "Jeans", ImageURL: "/public/img/jeans.png", Reward: "5,000–15,000 MMK"},
	},
	"packaging": {
		{ID: "cardboard", Name: "Cardboard", ImageURL: "/public/img/cardboard.png", Reward: "500 MMK/kg"},
	},
}

var conditions = []Condition{
	{ID: "like-new", Label: "Like New", Factor: 1.0},
	{ID: "good", Label: "Good", Factor: 0.7},
	{ID: "worn", Label: "Worn", Factor: 0.4},
}

var dropoffPoints = []DropoffPoint{
	{Name: "City Mart Yangon", Lat: 16.8400, Lng: 96.1700},
	{Name: "Ocean Mandalay", Lat: 21.9833, Lng: 96.0833},
}

// Categories returns all item categories.
func Categories() []Category {
	return categories
}

// ItemsByCategory returns the items for a category, or nil for an
// unknown category.
func ItemsByCategory(categoryID string) []Item {
	return items[categoryID]
}

// FindItem looks up an item by category and item ID.
func FindItem(categoryID, itemID string) (Item, bool) {
	for _, it := range items[categoryID] {
		if it.ID == itemID {
			return it, true
		}
	}
	return Item{}, false
}

// Conditions returns all condition tiers, best first.
func Conditions() []Condition {
	return conditions
}

// FindCondition looks up a condition tier by ID.
func FindCondition(id string) (Condition, bool) {
	for _, c := range conditions {
		if c.ID == id {
			return c, true
		}
	}
	return Condition{}, false
}

// DropoffPoints returns the fixed drop-off locations.
func DropoffPoints() []DropoffPoint {
	return dropoffPoints
}

// FindDropoffPoint looks up a drop-off point by name.
func FindDropoffPoint(name string) (DropoffPoint, bool) {
	for _, p := range dropoffPoints {
		if p.Name == name {
			return p, true
		}
	}
	return DropoffPoint{}, false
}
