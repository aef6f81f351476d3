package catalog

// Repository defines the catalog data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	GetByID(id string) (*MenuItem, error)
	List() []*MenuItem
	ListByCategory(category Category) []*MenuItem
	UpdateImageURL(id, url string) error
	SetAvailability(id string, available bool) error
}
