package session

// Repository is the session-scoped key/value state that outlives a
// single request but not the session: currently just the saved scroll
// offset.
type Repository interface {
	SetScroll(sessionID string, offset float64)
	// TakeScroll returns the saved offset and clears it: the scroll
	// position is restored once and then forgotten.
	TakeScroll(sessionID string) (float64, bool)
}
