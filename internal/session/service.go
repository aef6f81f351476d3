package session

import "github.com/google/uuid"

type Service struct {
	tokens *TokenManager
	repo   Repository
}

func NewService(tokens *TokenManager, repo Repository) *Service {
	return &Service{tokens: tokens, repo: repo}
}

// Start opens a new anonymous session and returns its id and token.
func (s *Service) Start() (string, string, error) {
	sessionID := uuid.New().String()
	token, err := s.tokens.Generate(sessionID)
	if err != nil {
		return "", "", err
	}
	return sessionID, token, nil
}

func (s *Service) SaveScroll(sessionID string, offset float64) {
	s.repo.SetScroll(sessionID, offset)
}

// RestoreScroll hands back the saved offset once; subsequent calls
// report nothing until the next save.
func (s *Service) RestoreScroll(sessionID string) (float64, bool) {
	return s.repo.TakeScroll(sessionID)
}
