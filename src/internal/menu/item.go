package menu

// Category is the menu section an item belongs to.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryEntree    Category = "entree"
	CategoryDessert   Category = "dessert"
	CategoryBeverage  Category = "beverage"
)

// Categories lists the accepted categories in display order.
var Categories = []Category{
	CategoryAppetizer,
	CategoryEntree,
	CategoryDessert,
	CategoryBeverage,
}

// MenuItem is a single dish or drink.
//
// Every field except ID and Available is omitted from JSON when empty. A full
// replace only stores the fields present in the request, so the encoded record
// reflects exactly what was supplied.
type MenuItem struct {
	ID          int      `json:"id" toml:"id"`
	Name        string   `json:"name,omitempty" toml:"name"`
	Description string   `json:"description,omitempty" toml:"description"`
	Price       float64  `json:"price,omitempty" toml:"price"`
	Category    Category `json:"category,omitempty" toml:"category"`
	Ingredients []string `json:"ingredients,omitempty" toml:"ingredients"`
	Available   bool     `json:"available" toml:"available"`
}

// Fields are the validated attributes of a create or update request.
// A nil field was not present in the request body.
type Fields struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *Category
	Ingredients []string
	Available   *bool
}

// DefaultAvailable marks the item as available when the request did not say otherwise.
func (f *Fields) DefaultAvailable() {
	if f.Available == nil {
		available := true
		f.Available = &available
	}
}

// newItem builds a record carrying only the supplied fields.
func (f Fields) newItem(id int) MenuItem {
	item := MenuItem{ID: id}
	f.applyTo(&item)
	return item
}

// applyTo overwrites the item attributes that are present in f.
func (f Fields) applyTo(item *MenuItem) {
	if f.Name != nil {
		item.Name = *f.Name
	}
	if f.Description != nil {
		item.Description = *f.Description
	}
	if f.Price != nil {
		item.Price = *f.Price
	}
	if f.Category != nil {
		item.Category = *f.Category
	}
	if f.Ingredients != nil {
		item.Ingredients = append([]string(nil), f.Ingredients...)
	}
	if f.Available != nil {
		item.Available = *f.Available
	}
}

// Body renders the item as a request body, without the id.
func (m MenuItem) Body() map[string]any {
	ingredients := make([]any, 0, len(m.Ingredients))
	for _, ing := range m.Ingredients {
		ingredients = append(ingredients, ing)
	}
	return map[string]any{
		"name":        m.Name,
		"description": m.Description,
		"price":       m.Price,
		"category":    string(m.Category),
		"ingredients": ingredients,
		"available":   m.Available,
	}
}

func (m MenuItem) clone() MenuItem {
	m.Ingredients = append([]string(nil), m.Ingredients...)
	return m
}
