package combo

import (
	"errors"
	"testing"

	"github.com/YonatanCohen1020/nightwing-site/internal/cart"
	"github.com/YonatanCohen1020/nightwing-site/internal/catalog"
	"github.com/YonatanCohen1020/nightwing-site/internal/i18n"
)

func newTestServices(t *testing.T) (*cart.Service, *Service) {
	t.Helper()

	catalogService := catalog.NewService(
		catalog.NewInMemoryRepository(catalog.Seed()),
		nil,
	)
	cartService := cart.NewService(cart.NewInMemoryRepository(), catalogService)
	return cartService, NewService(catalogService, cartService)
}

func TestSameWingsConfigurationCollidesIntoOneLine(t *testing.T) {
	cartService, service := newTestServices(t)
	sid := "session-1"

	_, err := service.Confirm(sid, Request{
		ItemID: "wings-1",
		Sauces: []string{"sauce-chili", "sauce-peanut"},
	}, i18n.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cartService.Total(sid); got != 45 {
		t.Fatalf("expected total 45, got %d", got)
	}

	// Same sauces, reversed order: must hit the same line.
	_, err = service.Confirm(sid, Request{
		ItemID: "wings-1",
		Sauces: []string{"sauce-peanut", "sauce-chili"},
	}, i18n.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := cartService.Items(sid)
	if len(items) != 1 {
		t.Fatalf("expected 1 cart line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if got := cartService.Total(sid); got != 90 {
		t.Fatalf("expected total 90, got %d", got)
	}
}

func TestIncompleteSelectionIsRejected(t *testing.T) {
	_, service := newTestServices(t)

	_, err := service.Confirm("session-1", Request{
		ItemID: "wings-1",
		Sauces: []string{"sauce-chili"},
	}, i18n.Hebrew)
	if err != ErrIncompleteSelection {
		t.Fatalf("expected ErrIncompleteSelection, got %v", err)
	}

	// Combo with two sauces but no drink is still incomplete.
	_, err = service.Confirm("session-1", Request{
		ItemID:    "combo-1",
		ComboType: "wings",
		Sauces:    []string{"sauce-chili", "sauce-peanut"},
	}, i18n.Hebrew)
	if err != ErrIncompleteSelection {
		t.Fatalf("expected ErrIncompleteSelection, got %v", err)
	}
}

func TestSauceSlotsOnlyAcceptSauces(t *testing.T) {
	cartService, service := newTestServices(t)
	sid := "session-1"

	// Pricier items smuggled into the free sauce slots must not
	// produce a 45₪ wings line carrying a corndog and a cola.
	_, err := service.Confirm(sid, Request{
		ItemID: "wings-1",
		Sauces: []string{"addon-corndog", "drink-cola-zero"},
	}, i18n.English)
	if !errors.Is(err, ErrInvalidSauce) {
		t.Fatalf("expected ErrInvalidSauce, got %v", err)
	}
	if items := cartService.Items(sid); len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
}

func TestDrinkSlotOnlyAcceptsDrinks(t *testing.T) {
	_, service := newTestServices(t)

	_, err := service.Confirm("session-1", Request{
		ItemID:    "combo-1",
		ComboType: "wings",
		Sauces:    []string{"sauce-chili", "sauce-peanut"},
		Drink:     "sauce-mustard",
	}, i18n.English)
	if !errors.Is(err, ErrInvalidDrink) {
		t.Fatalf("expected ErrInvalidDrink, got %v", err)
	}
}

func TestUnavailableItemsCannotBeConfirmed(t *testing.T) {
	repo := catalog.NewInMemoryRepository(catalog.Seed())
	catalogService := catalog.NewService(repo, nil)
	cartService := cart.NewService(cart.NewInMemoryRepository(), catalogService)
	service := NewService(catalogService, cartService)

	if err := repo.SetAvailability("wings-1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sid := "session-1"

	// The tapped item itself.
	_, err := service.Confirm(sid, Request{
		ItemID: "wings-1",
		Sauces: []string{"sauce-chili", "sauce-peanut"},
	}, i18n.English)
	if !errors.Is(err, cart.ErrItemUnavailable) {
		t.Fatalf("expected ErrItemUnavailable, got %v", err)
	}

	// A combo whose resolved base is the unavailable item.
	_, err = service.Confirm(sid, Request{
		ItemID:    "combo-1",
		ComboType: "wings",
		Sauces:    []string{"sauce-chili", "sauce-peanut"},
		Drink:     "drink-fanta",
	}, i18n.English)
	if !errors.Is(err, cart.ErrItemUnavailable) {
		t.Fatalf("expected ErrItemUnavailable for combo on unavailable base, got %v", err)
	}

	// An unavailable sauce.
	if err := repo.SetAvailability("sauce-chili", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = service.Confirm(sid, Request{
		ItemID: "tenders-1",
		Sauces: []string{"sauce-chili", "sauce-peanut"},
	}, i18n.English)
	if !errors.Is(err, cart.ErrItemUnavailable) {
		t.Fatalf("expected ErrItemUnavailable for unavailable sauce, got %v", err)
	}

	if items := cartService.Items(sid); len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
}

func TestComboPriceIsFixedRegardlessOfChoices(t *testing.T) {
	cartService, service := newTestServices(t)
	sid := "session-1"

	item, err := service.Confirm(sid, Request{
		ItemID:    "combo-1",
		ComboType: "tenders",
		Sauces:    []string{"sauce-mustard", "sauce-chili"},
		Drink:     "drink-fanta",
	}, i18n.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.Price != 65 {
		t.Fatalf("expected combo price 65, got %d", item.Price)
	}
	if got := cartService.Total(sid); got != 65 {
		t.Fatalf("expected total 65, got %d", got)
	}
	if !item.IsCombo || item.ComboConfig == nil {
		t.Fatalf("expected combo line with config, got %+v", item)
	}
	if item.ComboConfig.BaseItemID != "tenders-1" {
		t.Fatalf("expected base item tenders-1, got %q", item.ComboConfig.BaseItemID)
	}
}

func TestEditingComboReplacesLineInPlace(t *testing.T) {
	cartService, service := newTestServices(t)
	sid := "session-1"

	original, err := service.Confirm(sid, Request{
		ItemID:    "combo-1",
		ComboType: "tenders",
		Sauces:    []string{"sauce-mustard", "sauce-chili"},
		Drink:     "drink-fanta",
		Quantity:  3,
	}, i18n.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := service.Confirm(sid, Request{
		ItemID:            "combo-1",
		ComboType:         "tenders",
		Sauces:            []string{"sauce-mustard", "sauce-chili"},
		Drink:             "drink-sprite",
		EditingCartItemID: original.ID,
	}, i18n.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := cartService.Items(sid)
	if len(items) != 1 {
		t.Fatalf("expected 1 cart line after edit, got %d", len(items))
	}
	if items[0].ID != updated.ID {
		t.Fatalf("expected edited line %q in cart, got %q", updated.ID, items[0].ID)
	}
	if items[0].ID == original.ID {
		t.Fatalf("expected id to change with the drink")
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity preserved at 3, got %d", items[0].Quantity)
	}
	if got := cartService.Total(sid); got != 3*65 {
		t.Fatalf("expected total %d, got %d", 3*65, got)
	}
	if items[0].ComboConfig.SelectedDrink != "drink-sprite" {
		t.Fatalf("expected drink-sprite, got %q", items[0].ComboConfig.SelectedDrink)
	}
}

func TestLocalizedLineNames(t *testing.T) {
	_, service := newTestServices(t)

	he, err := service.Confirm("s-he", Request{
		ItemID: "wings-1",
		Sauces: []string{"sauce-chili", "sauce-peanut"},
	}, i18n.Hebrew)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	en, err := service.Confirm("s-en", Request{
		ItemID: "wings-1",
		Sauces: []string{"sauce-chili", "sauce-peanut"},
	}, i18n.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if he.Name == en.Name {
		t.Fatalf("expected language-specific names, both were %q", he.Name)
	}
	if he.ID != en.ID {
		t.Fatalf("identity must not depend on language: %q vs %q", he.ID, en.ID)
	}
}

func TestRehydrateFiltersRemovedCatalogEntries(t *testing.T) {
	// Catalog without the chili sauce, as if it was removed after the
	// line was added.
	var seed []catalog.MenuItem
	for _, item := range catalog.Seed() {
		if item.ID != "sauce-chili" {
			seed = append(seed, item)
		}
	}
	catalogService := catalog.NewService(catalog.NewInMemoryRepository(seed), nil)
	cartService := cart.NewService(cart.NewInMemoryRepository(), catalogService)
	service := NewService(catalogService, cartService)

	sid := "session-1"
	cartService.AddItem(sid, &cart.Item{
		ID:      "combo-wings-sauce-chili-sauce-peanut-drink-fanta",
		Name:    "Combo Meal - Wings",
		Price:   65,
		IsCombo: true,
		ComboConfig: &cart.ComboConfig{
			ComboType:      "wings",
			SelectedSauces: []string{"sauce-chili", "sauce-peanut"},
			SelectedDrink:  "drink-fanta",
			BaseItemID:     "wings-1",
		},
	})

	sel, err := service.Rehydrate(sid, "combo-wings-sauce-chili-sauce-peanut-drink-fanta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sel.Sauces) != 1 || sel.Sauces[0] != "sauce-peanut" {
		t.Fatalf("expected only sauce-peanut to survive, got %v", sel.Sauces)
	}
	if sel.Drink != "drink-fanta" {
		t.Fatalf("expected drink preserved, got %q", sel.Drink)
	}
	if sel.CanConfirm() {
		t.Fatalf("selection with one surviving sauce must not be confirmable")
	}
}

func TestRehydrateNonCustomizedLine(t *testing.T) {
	cartService, service := newTestServices(t)
	sid := "session-1"

	if _, err := cartService.AddMenuItem(sid, "drink-fanta", 1, i18n.English); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Rehydrate(sid, "drink-fanta"); err != ErrNotCustomized {
		t.Fatalf("expected ErrNotCustomized, got %v", err)
	}
}
