package cart

import (
	"errors"

	"github.com/YonatanCohen1020/nightwing-site/internal/catalog"
	"github.com/YonatanCohen1020/nightwing-site/internal/i18n"
)

var (
	// ErrRequiresSelection is returned when a wings/tenders/combo item
	// is added directly; those go through the combo configurator.
	ErrRequiresSelection = errors.New("item requires sauce selection")

	ErrItemUnavailable = errors.New("item is not available")
)

type Service struct {
	repo    Repository
	catalog *catalog.Service
}

func NewService(repo Repository, catalogService *catalog.Service) *Service {
	return &Service{repo: repo, catalog: catalogService}
}

func (s *Service) Items(sessionID string) []*Item {
	return s.repo.Items(sessionID)
}

func (s *Service) Get(sessionID, itemID string) (*Item, error) {
	return s.repo.Get(sessionID, itemID)
}

// AddItem adds a line to the cart. If a line with the same derived id
// already exists, its quantity is incremented instead of duplicating —
// this is what makes the composite-id identity matter.
func (s *Service) AddItem(sessionID string, item *Item) *Item {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	if existing, err := s.repo.Get(sessionID, item.ID); err == nil {
		existing.Quantity += item.Quantity
		// Replace cannot fail here: the line was just read.
		_ = s.repo.Replace(sessionID, item.ID, existing)
		return existing
	}

	s.repo.Append(sessionID, item)
	return item
}

// AddMenuItem adds a plain catalog item (sauce, drink, salad, addon) by
// id. Customizable categories are rejected: they carry a selection and
// enter the cart through the combo configurator.
func (s *Service) AddMenuItem(
	sessionID, itemID string,
	quantity int,
	lang i18n.Language,
) (*Item, error) {

	menuItem, err := s.catalog.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if !menuItem.IsAvailable {
		return nil, ErrItemUnavailable
	}

	switch menuItem.Category {
	case catalog.CategoryWings, catalog.CategoryTenders, catalog.CategoryCombo:
		return nil, ErrRequiresSelection
	}

	line := &Item{
		ID:       menuItem.ID,
		Name:     menuItem.Name(lang),
		Price:    menuItem.Price,
		Quantity: quantity,
		ImageURL: menuItem.ImageURL,
	}
	return s.AddItem(sessionID, line), nil
}

// ReplaceItem swaps an existing line for a re-configured one, in place.
// The original quantity carries over: editing a combo never resets how
// many of it were ordered.
func (s *Service) ReplaceItem(sessionID, itemID string, item *Item) (*Item, error) {
	existing, err := s.repo.Get(sessionID, itemID)
	if err != nil {
		return nil, err
	}

	item.Quantity = existing.Quantity
	if err := s.repo.Replace(sessionID, itemID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity sets a line's quantity, removing the line entirely
// when it drops to zero or below.
func (s *Service) UpdateQuantity(sessionID, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.repo.Remove(sessionID, itemID)
	}

	item, err := s.repo.Get(sessionID, itemID)
	if err != nil {
		return err
	}
	item.Quantity = quantity
	return s.repo.Replace(sessionID, itemID, item)
}

func (s *Service) RemoveItem(sessionID, itemID string) error {
	return s.repo.Remove(sessionID, itemID)
}

func (s *Service) Clear(sessionID string) {
	s.repo.Clear(sessionID)
}

// Total is the cart total: Σ(unit price × quantity).
func (s *Service) Total(sessionID string) int {
	total := 0
	for _, item := range s.repo.Items(sessionID) {
		total += item.Price * item.Quantity
	}
	return total
}

// ItemCount is the sum of quantities, shown on the cart badge.
func (s *Service) ItemCount(sessionID string) int {
	count := 0
	for _, item := range s.repo.Items(sessionID) {
		count += item.Quantity
	}
	return count
}
