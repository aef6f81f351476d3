package combo

import (
	"sort"
	"strings"

	"github.com/YonatanCohen1020/nightwing-site/internal/catalog"
)

const maxSauces = 2

// Selection is the in-progress customization of a wings, tenders or
// combo purchase: which base, which sauces (up to two), which drink
// (combo only). It is a plain value; nothing here touches the cart.
type Selection struct {
	Item      *catalog.MenuItem // the tapped menu item
	ComboType string            // "wings" | "tenders", combos only
	Sauces    []string          // sauce ids, insertion order
	Drink     string            // drink id, combos only
}

func NewSelection(item *catalog.MenuItem) *Selection {
	return &Selection{
		Item:      item,
		ComboType: "wings",
	}
}

// IsCombo reports whether the selection is for the combo meal rather
// than à-la-carte wings/tenders.
func (s *Selection) IsCombo() bool {
	return s.Item.Category == catalog.CategoryCombo
}

// AddSauce appends a sauce. Already-selected sauces and selections at
// the two-sauce cap are left unchanged.
func (s *Selection) AddSauce(id string) {
	if len(s.Sauces) >= maxSauces || s.hasSauce(id) {
		return
	}
	s.Sauces = append(s.Sauces, id)
}

// RemoveSauce removes one occurrence of the sauce if present.
func (s *Selection) RemoveSauce(id string) {
	for i, sauce := range s.Sauces {
		if sauce == id {
			s.Sauces = append(s.Sauces[:i], s.Sauces[i+1:]...)
			return
		}
	}
}

// ToggleSauce mirrors tapping a sauce button in the panel.
func (s *Selection) ToggleSauce(id string) {
	if s.hasSauce(id) {
		s.RemoveSauce(id)
		return
	}
	s.AddSauce(id)
}

func (s *Selection) hasSauce(id string) bool {
	for _, sauce := range s.Sauces {
		if sauce == id {
			return true
		}
	}
	return false
}

// SetBaseType switches which base item a combo resolves to.
func (s *Selection) SetBaseType(comboType string) {
	if comboType == "wings" || comboType == "tenders" {
		s.ComboType = comboType
	}
}

func (s *Selection) SetDrink(id string) {
	s.Drink = id
}

// ToggleDrink is single-select: re-selecting the current drink clears it.
func (s *Selection) ToggleDrink(id string) {
	if s.Drink == id {
		s.Drink = ""
		return
	}
	s.Drink = id
}

// CanConfirm reports whether the selection is complete: exactly two
// sauces, plus a drink for the combo meal.
func (s *Selection) CanConfirm() bool {
	if len(s.Sauces) != maxSauces {
		return false
	}
	if s.IsCombo() && s.Drink == "" {
		return false
	}
	return true
}

// CompositeID derives the deterministic cart identity for the
// selection. Sauces are sorted before joining so that the same
// configuration always maps to the same id regardless of the order the
// sauces were picked in.
func (s *Selection) CompositeID() string {
	sauces := append([]string(nil), s.Sauces...)
	sort.Strings(sauces)

	var parts []string
	if s.IsCombo() {
		parts = append(parts, "combo", s.ComboType)
		parts = append(parts, sauces...)
		if s.Drink != "" {
			parts = append(parts, s.Drink)
		}
	} else {
		parts = append(parts, s.Item.ID)
		parts = append(parts, sauces...)
	}
	return strings.Join(parts, "-")
}
