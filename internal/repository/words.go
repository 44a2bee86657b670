package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
)

var ErrNoWords = errors.New("no words in vocabulary")

type WordsR struct {
	db QueryI
}

func NewWordsRepository(db QueryI) *WordsR {
	return &WordsR{db: db}
}

func (w *WordsR) AddWord(ctx context.Context, word models.Word) error {
	query := `INSERT INTO words (greek, russian, word_type, created_by)
		VALUES ($1, $2, $3, $4)`

	_, err := w.db.ExecContext(ctx, query, word.Greek, word.Russian, word.WordType, word.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to add word %q: %w", word.Greek, err)
	}

	return nil
}

func (w *WordsR) CountWords(ctx context.Context) (int, error) {
	var total int
	err := w.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM words`)
	if err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return total, nil
}

// WordAt fetches a single word by its position in stable id order.
// Combined with an in-process uniform offset this keeps word selection
// uniform regardless of the storage engine's notion of random order.
func (w *WordsR) WordAt(ctx context.Context, offset int) (models.Word, error) {
	query := `
		SELECT id, greek, russian, word_type
		FROM words
		ORDER BY id
		LIMIT 1 OFFSET $1
	`

	var word models.Word
	err := w.db.GetContext(ctx, &word, query, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Word{}, ErrNoWords
		}
		return models.Word{}, fmt.Errorf("failed to fetch word at offset %d: %w", offset, err)
	}
	return word, nil
}

// CandidateWords loads every word of the given type except the excluded
// one. Sampling happens in the service, not in SQL.
func (w *WordsR) CandidateWords(ctx context.Context, wordType models.WordType, excludeID int64) ([]models.Word, error) {
	query := `
		SELECT id, greek, russian, word_type
		FROM words
		WHERE id != $1 AND word_type = $2
	`

	var words []models.Word
	err := w.db.SelectContext(ctx, &words, query, excludeID, wordType)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s candidates: %w", wordType, err)
	}
	return words, nil
}

// CandidatePhrases loads translations of all phrases except the one
// matching the correct answer text.
func (w *WordsR) CandidatePhrases(ctx context.Context, excludeRussian string) ([]string, error) {
	query := `
		SELECT russian
		FROM words
		WHERE russian != $1 AND word_type = 'phrase'
	`

	var phrases []string
	err := w.db.SelectContext(ctx, &phrases, query, excludeRussian)
	if err != nil {
		return nil, fmt.Errorf("failed to load phrase candidates: %w", err)
	}
	return phrases, nil
}
