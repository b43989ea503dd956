package dictionary

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/storage"
)

// Service holds the pool of secret words new games are drawn from
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  []model.Word
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line).
// Blank lines and lines starting with # are skipped.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" && !strings.HasPrefix(word, "#") {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

// loadWords normalizes and deduplicates the words. Sorting keeps the pool in a
// stable order whatever order the store returned them in, so a given random
// index always picks the same word.
func (s *Service) loadWords(raw []string) error {
	seen := make(map[string]struct{}, len(raw))
	words := make([]model.Word, 0, len(raw))
	for _, r := range raw {
		w, err := model.NewWord(r)
		if err != nil {
			s.logger.Warn("skipping dictionary word",
				slog.String("word", r),
				slog.String("error", err.Error()),
			)
			continue
		}
		key := w.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		words = append(words, w)
	}
	slices.SortFunc(words, func(a, b model.Word) int {
		return strings.Compare(a.String(), b.String())
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = words
	s.loaded = true

	s.logger.Info("dictionary loaded", slog.Int("word_count", len(words)))
	return nil
}

// RandomWord picks a word using the given source of randomness
func (s *Service) RandomWord(rnd random.Random) (model.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, model.ErrDictionaryNotLoaded
	}
	word, ok := random.Choose(rnd, s.words)
	if !ok {
		return nil, model.ErrNoWords
	}
	return slices.Clone(word), nil
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
