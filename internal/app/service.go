package app

import (
	"fmt"
	"io"

	"deuces/internal/domain"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Service exposes the move rules to adapters, memoizing classification by card set.
// It is safe for concurrent use.
type Service struct {
	cache  *lru.Cache[domain.GroupKey, domain.Combo]
	logger *log.Logger
}

// NewService constructs a Service. A cacheSize <= 0 disables memoization; a nil logger
// discards output.
func NewService(cacheSize int, logger *log.Logger) (*Service, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Service{logger: logger.WithPrefix("rules")}

	if cacheSize > 0 {
		cache, err := lru.New[domain.GroupKey, domain.Combo](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create classify cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// Classify returns the combination formed by cards.
func (s *Service) Classify(cards []domain.Card) domain.Combo {
	if s.cache == nil || len(cards) < 1 || len(cards) > domain.MaxGroupSize {
		return domain.Classify(cards)
	}
	key, distinct := domain.KeyOf(cards)
	if !distinct {
		return domain.Classify(cards)
	}

	if combo, ok := s.cache.Get(key); ok {
		return combo
	}
	combo := domain.Classify(cards)
	s.cache.Add(key, combo)
	return combo
}

// CheckMove validates move against the table group, returning a domain rejection
// reason or nil.
func (s *Service) CheckMove(move, against []domain.Card) error {
	err := domain.Classifier(s.Classify).CheckMove(move, against)
	if err != nil {
		s.logger.Debug("Move rejected", "move", domain.FormatCards(move, " "), "against", domain.FormatCards(against, " "), "reason", err)
	}
	return err
}

// IsValidMove reports whether move legally beats against (or leads when against is empty).
func (s *Service) IsValidMove(move, against []domain.Card) bool {
	return s.CheckMove(move, against) == nil
}

// CacheLen reports how many classifications are memoized.
func (s *Service) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}
