package catalog

import "testing"

func newTestService() *Service {
	return NewService(NewInMemoryRepository(Seed()), nil)
}

func TestGetMenuFiltersUnavailable(t *testing.T) {
	repo := NewInMemoryRepository(Seed())
	service := NewService(repo, nil)

	all := len(service.GetMenu())

	if err := repo.SetAvailability("addon-corndog", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(service.GetMenu()); got != all-1 {
		t.Fatalf("expected %d items, got %d", all-1, got)
	}
}

func TestGetItemNotFound(t *testing.T) {
	service := newTestService()

	if _, err := service.GetItem("no-such-item"); err != ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestResolveBaseItem(t *testing.T) {
	service := newTestService()

	wings, err := service.ResolveBaseItem("wings", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wings.ID != "wings-1" {
		t.Fatalf("expected wings-1, got %s", wings.ID)
	}

	tenders, err := service.ResolveBaseItem("tenders", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenders.ID != "tenders-1" {
		t.Fatalf("expected tenders-1, got %s", tenders.ID)
	}

	// An explicit base item id wins over the combo type.
	byID, err := service.ResolveBaseItem("wings", "tenders-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byID.ID != "tenders-1" {
		t.Fatalf("expected tenders-1, got %s", byID.ID)
	}

	if _, err := service.ResolveBaseItem("pizza", ""); err == nil {
		t.Fatalf("expected error for unknown combo type")
	}
}

func TestSaucesCategory(t *testing.T) {
	service := newTestService()

	sauces := service.Sauces()
	if len(sauces) != 4 {
		t.Fatalf("expected 4 sauces, got %d", len(sauces))
	}
	for _, sauce := range sauces {
		if sauce.Category != CategorySauces {
			t.Fatalf("unexpected category %s for %s", sauce.Category, sauce.ID)
		}
	}
}

func TestComboItem(t *testing.T) {
	service := newTestService()

	combo, err := service.ComboItem()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if combo.ID != "combo-1" || combo.Price != 65 {
		t.Fatalf("unexpected combo item: %+v", combo)
	}
}

func TestRepositoryReturnsCopies(t *testing.T) {
	repo := NewInMemoryRepository(Seed())

	item, err := repo.GetByID("wings-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item.Price = 999

	again, _ := repo.GetByID("wings-1")
	if again.Price != 45 {
		t.Fatalf("repository item was mutated through a returned copy")
	}
}

func TestValidateImageExtension(t *testing.T) {
	if err := ValidateImageExtension("wings.webp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateImageExtension("menu.pdf"); err == nil {
		t.Fatalf("expected error for pdf")
	}
	if err := ValidateImageExtension("noext"); err == nil {
		t.Fatalf("expected error for missing extension")
	}
}
