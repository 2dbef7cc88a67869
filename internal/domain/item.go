package domain

import "encoding/json"

// Item is an e-commerce line item. Unset fields are left off the wire.
type Item struct {
	ID          string
	Name        string
	Affiliation string
	Coupon      string
	Discount    *float64
	Index       *int
	Brand       string
	Category    string
	Category2   string
	Category3   string
	Category4   string
	Category5   string
	ListID      string
	ListName    string
	Variant     string
	LocationID  string
	Price       *Price
	Quantity    *int
}

// EncodeFields maps the item to its wire keys. The item price is sent as
// price with a sibling currency.
func (i Item) EncodeFields() Fields {
	f := Fields{}.
		String("item_id", i.ID).
		String("item_name", i.Name).
		String("affiliation", i.Affiliation).
		String("coupon", i.Coupon).
		Float("discount", i.Discount).
		Int("index", i.Index).
		String("item_brand", i.Brand).
		String("item_category", i.Category).
		String("item_category2", i.Category2).
		String("item_category3", i.Category3).
		String("item_category4", i.Category4).
		String("item_category5", i.Category5).
		String("item_list_id", i.ListID).
		String("item_list_name", i.ListName).
		String("item_variant", i.Variant).
		String("location_id", i.LocationID)
	if i.Price != nil {
		f = f.Set("price", i.Price.Value).Set("currency", i.Price.CurrencyCode())
	}
	return f.Int("quantity", i.Quantity)
}

func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.EncodeFields())
}
