package catalog

import "github.com/YonatanCohen1020/nightwing-site/internal/i18n"

// Category is the fixed menu section an item belongs to.
type Category string

const (
	CategoryWings   Category = "wings"
	CategoryTenders Category = "tenders"
	CategorySauces  Category = "sauces"
	CategorySalads  Category = "salads"
	CategoryDrinks  Category = "drinks"
	CategoryAddons  Category = "addons"
	CategoryCombo   Category = "combo"
)

// MenuItem is an immutable catalog entry, loaded once at startup.
type MenuItem struct {
	ID            string   `json:"id"`
	NameHe        string   `json:"nameHe"`
	NameEn        string   `json:"nameEn"`
	DescriptionHe string   `json:"descriptionHe"`
	DescriptionEn string   `json:"descriptionEn"`
	Price         int      `json:"price"`
	Category      Category `json:"category"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	SpiceLevel    int      `json:"spiceLevel,omitempty"` // 0-5
	IsAvailable   bool     `json:"isAvailable"`
}

// Name returns the display name in the given language.
func (m *MenuItem) Name(lang i18n.Language) string {
	if lang == i18n.English {
		return m.NameEn
	}
	return m.NameHe
}

// Description returns the description in the given language.
func (m *MenuItem) Description(lang i18n.Language) string {
	if lang == i18n.English {
		return m.DescriptionEn
	}
	return m.DescriptionHe
}
