package cart

// Repository defines the cart data-access contract, keyed by session.
// Service depends ONLY on this interface.
type Repository interface {
	Items(sessionID string) []*Item
	Get(sessionID, itemID string) (*Item, error)
	Append(sessionID string, item *Item)
	// Replace swaps the line identified by itemID with item, keeping
	// its position in the cart.
	Replace(sessionID, itemID string, item *Item) error
	Remove(sessionID, itemID string) error
	Clear(sessionID string)
}
