package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
	"go.uber.org/zap"
)

var ErrInvalidWord = errors.New("invalid word")

type WordS struct {
	repo WordRI
	log  *zap.Logger
}

func NewWordService(repo WordRI, log *zap.Logger) *WordS {
	return &WordS{
		repo: repo,
		log:  log,
	}
}

// AddWord validates and stores a new vocabulary entry.
func (w *WordS) AddWord(ctx context.Context, word models.Word) error {
	word.Greek = strings.TrimSpace(word.Greek)
	word.Russian = strings.TrimSpace(word.Russian)

	if word.Greek == "" || word.Russian == "" {
		return fmt.Errorf("%w: empty greek or russian text", ErrInvalidWord)
	}
	if !models.ValidWordType(string(word.WordType)) {
		return fmt.Errorf("%w: unknown word type %q", ErrInvalidWord, word.WordType)
	}

	if err := w.repo.AddWord(ctx, word); err != nil {
		w.log.Warn("failed to add word",
			zap.String("greek", word.Greek),
			zap.Int64("created_by", word.CreatedBy),
			zap.Error(err))
		return err
	}

	w.log.Info("word added",
		zap.String("greek", word.Greek),
		zap.String("word_type", string(word.WordType)),
		zap.Int64("created_by", word.CreatedBy))
	return nil
}
