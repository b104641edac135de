package models

// SearchField identifies which listing field a search resolved against.
// The declaration order of the text fields is the probe precedence order.
type SearchField string

const (
	SearchFieldTitle    SearchField = "title"
	SearchFieldCategory SearchField = "category"
	SearchFieldCountry  SearchField = "country"
	SearchFieldLocation SearchField = "location"
	SearchFieldPrice    SearchField = "price"
)

// Label returns the user-facing name of the field, e.g. for
// "Listings searched by Category!" style messages.
func (f SearchField) Label() string {
	switch f {
	case SearchFieldTitle:
		return "Title"
	case SearchFieldCategory:
		return "Category"
	case SearchFieldCountry:
		return "Country"
	case SearchFieldLocation:
		return "Location"
	case SearchFieldPrice:
		return "Price"
	}
	return string(f)
}

// SearchResult is a resolved search: the normalized term, the field that
// matched, and the listings it matched, in the order the store returned them.
type SearchResult struct {
	Term     string      `json:"term"`
	Field    SearchField `json:"field"`
	Listings []Listing   `json:"listings"`
}
