package combo

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/YonatanCohen1020/nightwing-site/internal/cart"
	"github.com/YonatanCohen1020/nightwing-site/internal/catalog"
	"github.com/YonatanCohen1020/nightwing-site/internal/i18n"
)

var (
	// ErrIncompleteSelection is returned when a selection is confirmed
	// before it satisfies CanConfirm.
	ErrIncompleteSelection = errors.New("selection is incomplete")

	ErrNotCustomizable = errors.New("item is not customizable")
	ErrNotCustomized   = errors.New("cart item has no selection to edit")

	// The selection ids come from the client and are not trusted:
	// a sauce slot only accepts sauces, a drink slot only drinks.
	ErrInvalidSauce = errors.New("id is not a sauce")
	ErrInvalidDrink = errors.New("id is not a drink")
)

// Request is the confirmed state of the selection panel.
type Request struct {
	ItemID            string   `json:"itemId"` // the tapped item: combo-1 / wings-1 / tenders-1
	ComboType         string   `json:"comboType,omitempty"`
	Sauces            []string `json:"sauces"`
	Drink             string   `json:"drink,omitempty"`
	Quantity          int      `json:"quantity,omitempty"`
	EditingCartItemID string   `json:"editingCartItemId,omitempty"`
}

type Service struct {
	catalog *catalog.Service
	cart    *cart.Service
}

func NewService(catalogService *catalog.Service, cartService *cart.Service) *Service {
	return &Service{catalog: catalogService, cart: cartService}
}

// Confirm turns a finished selection into a cart line. A fresh add
// dedups against an existing line with the same composite id; an edit
// (EditingCartItemID set) replaces that line in place, preserving its
// quantity.
func (s *Service) Confirm(
	sessionID string,
	req Request,
	lang i18n.Language,
) (*cart.Item, error) {

	item, err := s.catalog.GetItem(req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, cart.ErrItemUnavailable
	}

	switch item.Category {
	case catalog.CategoryWings, catalog.CategoryTenders, catalog.CategoryCombo:
	default:
		return nil, ErrNotCustomizable
	}

	sel := NewSelection(item)
	sel.SetBaseType(req.ComboType)
	for _, sauceID := range req.Sauces {
		sauce, err := s.catalog.GetItem(sauceID)
		if err != nil {
			return nil, err
		}
		if sauce.Category != catalog.CategorySauces {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSauce, sauceID)
		}
		if !sauce.IsAvailable {
			return nil, cart.ErrItemUnavailable
		}
		sel.AddSauce(sauceID)
	}
	if req.Drink != "" {
		drink, err := s.catalog.GetItem(req.Drink)
		if err != nil {
			return nil, err
		}
		if drink.Category != catalog.CategoryDrinks {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDrink, req.Drink)
		}
		if !drink.IsAvailable {
			return nil, cart.ErrItemUnavailable
		}
		sel.SetDrink(req.Drink)
	}

	if sel.IsCombo() {
		base, err := s.catalog.ResolveBaseItem(sel.ComboType, "")
		if err != nil {
			return nil, err
		}
		if !base.IsAvailable {
			return nil, cart.ErrItemUnavailable
		}
	}

	if !sel.CanConfirm() {
		return nil, ErrIncompleteSelection
	}

	line, err := s.buildCartItem(sel, lang)
	if err != nil {
		return nil, err
	}

	if req.EditingCartItemID != "" {
		return s.cart.ReplaceItem(sessionID, req.EditingCartItemID, line)
	}

	line.Quantity = req.Quantity
	return s.cart.AddItem(sessionID, line), nil
}

// buildCartItem assembles the composite id, localized display name and
// price for a confirmed selection. Price is always the top-level
// item's selling price: sauces, drink, fries and salad are bundled, no
// upcharges.
func (s *Service) buildCartItem(sel *Selection, lang i18n.Language) (*cart.Item, error) {
	sauceNames := make([]string, 0, len(sel.Sauces))
	sorted := append([]string(nil), sel.Sauces...)
	sort.Strings(sorted)
	for _, id := range sorted {
		sauce, err := s.catalog.GetItem(id)
		if err != nil {
			return nil, err
		}
		sauceNames = append(sauceNames, sauce.Name(lang))
	}

	if sel.IsCombo() {
		base, err := s.catalog.ResolveBaseItem(sel.ComboType, "")
		if err != nil {
			return nil, err
		}

		parts := []string{strings.Join(sauceNames, ", ")}
		if drink, err := s.catalog.GetItem(sel.Drink); err == nil {
			parts = append(parts, drink.Name(lang))
		}
		// The combo bundles fries and coleslaw; they show up in the
		// line name even though they are not chosen.
		if fries, err := s.catalog.GetItem("addon-fries"); err == nil {
			parts = append(parts, fries.Name(lang))
		}
		if salad, err := s.catalog.GetItem("salad-coleslaw"); err == nil {
			parts = append(parts, salad.Name(lang))
		}

		return &cart.Item{
			ID:       sel.CompositeID(),
			Name:     sel.Item.Name(lang) + " - " + base.Name(lang) + " (" + strings.Join(parts, ", ") + ")",
			Price:    sel.Item.Price,
			ImageURL: base.ImageURL,
			IsCombo:  true,
			ComboConfig: &cart.ComboConfig{
				ComboType:      sel.ComboType,
				SelectedSauces: sorted,
				SelectedDrink:  sel.Drink,
				BaseItemID:     base.ID,
			},
		}, nil
	}

	comboType := "wings"
	if sel.Item.Category == catalog.CategoryTenders {
		comboType = "tenders"
	}

	return &cart.Item{
		ID:       sel.CompositeID(),
		Name:     sel.Item.Name(lang) + " - " + strings.Join(sauceNames, ", "),
		Price:    sel.Item.Price,
		ImageURL: sel.Item.ImageURL,
		ComboConfig: &cart.ComboConfig{
			ComboType:      comboType,
			SelectedSauces: sorted,
			BaseItemID:     sel.Item.ID,
		},
	}, nil
}

// Rehydrate rebuilds the selection state for an existing cart line so
// the panel can re-open it for editing. Sauce/drink ids that have left
// the catalog since the line was added are dropped.
func (s *Service) Rehydrate(sessionID, cartItemID string) (*Selection, error) {
	line, err := s.cart.Get(sessionID, cartItemID)
	if err != nil {
		return nil, err
	}
	if line.ComboConfig == nil {
		return nil, ErrNotCustomized
	}
	cfg := line.ComboConfig

	var item *catalog.MenuItem
	if line.IsCombo {
		item, err = s.catalog.ComboItem()
	} else {
		item, err = s.catalog.GetItem(cfg.BaseItemID)
	}
	if err != nil {
		return nil, err
	}

	sel := NewSelection(item)
	sel.SetBaseType(cfg.ComboType)
	for _, sauce := range cfg.SelectedSauces {
		if _, err := s.catalog.GetItem(sauce); err == nil {
			sel.AddSauce(sauce)
		}
	}
	if cfg.SelectedDrink != "" {
		if _, err := s.catalog.GetItem(cfg.SelectedDrink); err == nil {
			sel.SetDrink(cfg.SelectedDrink)
		}
	}
	return sel, nil
}
