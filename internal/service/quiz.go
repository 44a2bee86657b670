package service

import (
	"context"
	crypto "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
	"go.uber.org/zap"
)

// ErrInsufficientVocabulary means fewer than 4 distinct answer options
// could be assembled: the store is empty or the word's category has
// fewer than 3 other members.
var ErrInsufficientVocabulary = errors.New("not enough words to build a quiz")

// ErrNoCurrentQuiz means an answer arrived for a quiz that no longer
// exists: never issued, already answered, or replaced by a newer one.
var ErrNoCurrentQuiz = errors.New("no current quiz for user")

const distractorCount = 3

type WordRI interface {
	AddWord(ctx context.Context, word models.Word) error
	CountWords(ctx context.Context) (int, error)
	WordAt(ctx context.Context, offset int) (models.Word, error)
	CandidateWords(ctx context.Context, wordType models.WordType, excludeID int64) ([]models.Word, error)
	CandidatePhrases(ctx context.Context, excludeRussian string) ([]string, error)
}

type QuizS struct {
	words WordRI
	log   *zap.Logger
}

func NewQuizService(words WordRI, log *zap.Logger) *QuizS {
	return &QuizS{
		words: words,
		log:   log,
	}
}

// NewQuiz builds a 4-option translation question around one uniformly
// chosen word. Direction is a fresh coin flip per quiz.
func (q *QuizS) NewQuiz(ctx context.Context, userID int64) (models.QuizItem, error) {
	word, err := q.randomWord(ctx)
	if err != nil {
		return models.QuizItem{}, err
	}

	greekToRussian := q.randomIndex(2) == 0

	direction := models.DirectionGreekToRussian
	question := word.Greek
	correct := word.Russian
	if !greekToRussian {
		direction = models.DirectionRussianToGreek
		question = word.Russian
		correct = word.Greek
	}

	distractors, err := q.distractors(ctx, word, greekToRussian)
	if err != nil {
		return models.QuizItem{}, err
	}
	if len(distractors) < distractorCount {
		q.log.Info("not enough distractors for quiz",
			zap.Int64("user_id", userID),
			zap.Int64("word_id", word.ID),
			zap.String("word_type", string(word.WordType)),
			zap.Int("got", len(distractors)))
		return models.QuizItem{}, ErrInsufficientVocabulary
	}

	answers := make([]string, 0, distractorCount+1)
	answers = append(answers, correct)
	answers = append(answers, distractors...)

	rand.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})

	correctIndex := 0
	for i, a := range answers {
		if a == correct {
			correctIndex = i
			break
		}
	}

	return models.QuizItem{
		WordID:       word.ID,
		Question:     question,
		Answers:      answers,
		CorrectIndex: correctIndex,
		Direction:    direction,
		WordType:     word.WordType,
	}, nil
}

// CheckAnswer is a pure comparison; any index outside the answer list
// is just wrong.
func (q *QuizS) CheckAnswer(item models.QuizItem, selected int) bool {
	if selected < 0 || selected >= len(item.Answers) {
		return false
	}
	return selected == item.CorrectIndex
}

func (q *QuizS) randomWord(ctx context.Context) (models.Word, error) {
	total, err := q.words.CountWords(ctx)
	if err != nil {
		return models.Word{}, fmt.Errorf("failed to select random word: %w", err)
	}
	if total == 0 {
		return models.Word{}, ErrInsufficientVocabulary
	}

	word, err := q.words.WordAt(ctx, q.randomIndex(total))
	if err != nil {
		return models.Word{}, fmt.Errorf("failed to select random word: %w", err)
	}
	return word, nil
}

// distractors samples up to 3 wrong answers without replacement from
// words of the same category. Phrases asked GR→RU match on the exact
// translation text instead of the id; RU→GR always draws Greek terms.
func (q *QuizS) distractors(ctx context.Context, word models.Word, greekToRussian bool) ([]string, error) {
	var candidates []string

	if greekToRussian && word.WordType == models.WordTypePhrase {
		phrases, err := q.words.CandidatePhrases(ctx, word.Russian)
		if err != nil {
			return nil, err
		}
		candidates = phrases
	} else {
		words, err := q.words.CandidateWords(ctx, word.WordType, word.ID)
		if err != nil {
			return nil, err
		}
		candidates = make([]string, 0, len(words))
		for _, w := range words {
			if greekToRussian {
				candidates = append(candidates, w.Russian)
			} else {
				candidates = append(candidates, w.Greek)
			}
		}
	}

	correct := word.Russian
	if !greekToRussian {
		correct = word.Greek
	}

	return q.sample(candidates, correct, distractorCount), nil
}

// sample picks up to count distinct strings uniformly without
// replacement, never including the correct answer text itself.
func (q *QuizS) sample(candidates []string, exclude string, count int) []string {
	seen := make(map[string]bool, len(candidates))
	pool := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == exclude || seen[c] {
			continue
		}
		seen[c] = true
		pool = append(pool, c)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

func (q *QuizS) randomIndex(max int) int {
	n, err := crypto.Int(crypto.Reader, big.NewInt(int64(max)))
	if err != nil {
		q.log.Warn("crypto/rand failed, using math/rand fallback", zap.Error(err))
		return rand.Intn(max)
	}
	return int(n.Int64())
}
