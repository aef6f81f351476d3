package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage uploads menu images and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// GetMenu returns every available item, in menu order.
func (s *Service) GetMenu() []*MenuItem {
	var out []*MenuItem
	for _, item := range s.repo.List() {
		if item.IsAvailable {
			out = append(out, item)
		}
	}
	return out
}

func (s *Service) GetItem(id string) (*MenuItem, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByCategory(category Category) []*MenuItem {
	return s.repo.ListByCategory(category)
}

// Sauces returns the sauce options shown in the selection panel.
func (s *Service) Sauces() []*MenuItem {
	return s.repo.ListByCategory(CategorySauces)
}

// ComboItem returns the combo meal entry.
func (s *Service) ComboItem() (*MenuItem, error) {
	items := s.repo.ListByCategory(CategoryCombo)
	if len(items) == 0 {
		return nil, ErrItemNotFound
	}
	return items[0], nil
}

// ResolveBaseItem is the single place a combo type or base item id is
// turned into the wings/tenders catalog entry it stands for. Every
// name/id derivation in the combo flow goes through here.
func (s *Service) ResolveBaseItem(comboType, baseItemID string) (*MenuItem, error) {
	if baseItemID != "" {
		return s.repo.GetByID(baseItemID)
	}

	var category Category
	switch comboType {
	case "wings":
		category = CategoryWings
	case "tenders":
		category = CategoryTenders
	default:
		return nil, fmt.Errorf("unknown combo type %q", comboType)
	}

	items := s.repo.ListByCategory(category)
	if len(items) == 0 {
		return nil, ErrItemNotFound
	}
	return items[0], nil
}

// --------------------------------------------------
// ADMIN: menu image upload + availability
// --------------------------------------------------

func (s *Service) UploadImage(
	ctx context.Context,
	itemID string,
	file multipart.File,
	filename string,
) (string, error) {

	if s.storage == nil {
		return "", errors.New("image storage not configured")
	}

	if _, err := s.repo.GetByID(itemID); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("menu_items/%s/%s%s", itemID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateImageURL(itemID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *Service) SetAvailability(itemID string, available bool) error {
	return s.repo.SetAvailability(itemID, available)
}
