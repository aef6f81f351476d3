package cart

// ComboConfig records the customization behind a wings/tenders/combo
// line item. It is only present on customized lines and is what lets
// the cart re-open an item for editing.
type ComboConfig struct {
	ComboType      string   `json:"comboType"` // "wings" | "tenders"
	SelectedSauces []string `json:"selectedSauces"`
	SelectedDrink  string   `json:"selectedDrink,omitempty"`
	BaseItemID     string   `json:"baseItemId"`
}

// Item is one cart line: a quantity of one purchasable configuration.
// ID is either a raw menu item id or a composite id derived from the
// customization, so equal configurations collide into one line.
// Name is localized at the time the item is added.
type Item struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       int          `json:"price"`
	Quantity    int          `json:"quantity"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	IsCombo     bool         `json:"isCombo,omitempty"`
	ComboConfig *ComboConfig `json:"comboConfig,omitempty"`
}
