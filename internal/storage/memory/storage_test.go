package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Game log tests

func (s *StorageSuite) TestAppendAndReadLog() {
	now := time.Now().UTC()
	header := model.LogRecord{GameID: "game-1", Kind: model.RecordKindGame, Word: "abruptly", MaxWrongGuesses: 3, CreatedAt: now}
	guess := model.LogRecord{GameID: "game-1", Kind: model.RecordKindGuess, Letter: "a", CreatedAt: now}

	seq1, err := s.storage.AppendRecord(s.ctx, header)
	s.Require().NoError(err)
	seq2, err := s.storage.AppendRecord(s.ctx, guess)
	s.Require().NoError(err)
	s.Less(seq1, seq2)

	records, err := s.storage.ReadLog(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(seq1, records[0].Seq)
	s.Equal("abruptly", records[0].Word)
	s.Equal(seq2, records[1].Seq)
	s.Equal("a", records[1].Letter)
}

func (s *StorageSuite) TestReadLogUnknownGameIsEmpty() {
	records, err := s.storage.ReadLog(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *StorageSuite) TestLogsAreSeparatedByGame() {
	_, _ = s.storage.AppendRecord(s.ctx, model.LogRecord{GameID: "game-1", Kind: model.RecordKindGame})
	_, _ = s.storage.AppendRecord(s.ctx, model.LogRecord{GameID: "game-2", Kind: model.RecordKindGame})
	_, _ = s.storage.AppendRecord(s.ctx, model.LogRecord{GameID: "game-1", Kind: model.RecordKindGuess, Letter: "x"})

	records, err := s.storage.ReadLog(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Len(records, 2)
}

func (s *StorageSuite) TestReadLogReturnsCopy() {
	_, _ = s.storage.AppendRecord(s.ctx, model.LogRecord{GameID: "game-1", Kind: model.RecordKindGuess, Letter: "a"})

	records, _ := s.storage.ReadLog(s.ctx, "game-1")
	records[0].Letter = "z"

	again, _ := s.storage.ReadLog(s.ctx, "game-1")
	s.Equal("a", again[0].Letter)
}

func (s *StorageSuite) TestConcurrentAppendsGetDistinctSeq() {
	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			_, err := s.storage.AppendRecord(s.ctx, model.LogRecord{GameID: "game-1", Kind: model.RecordKindGuess, Letter: "a"})
			s.NoError(err)
		})
	}
	wg.Wait()

	records, err := s.storage.ReadLog(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Require().Len(records, n)

	seen := make(map[int64]bool)
	for _, r := range records {
		s.False(seen[r.Seq], "duplicate seq %d", r.Seq)
		seen[r.Seq] = true
	}
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}
