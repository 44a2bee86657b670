package repository

import (
	"context"
	"fmt"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
)

type StatsR struct {
	db QueryI
}

func NewStatsRepository(db QueryI) *StatsR {
	return &StatsR{db: db}
}

// RecordAnswer upserts the (user, word) stat row in a single statement,
// so concurrent answers never lose an increment.
func (s *StatsR) RecordAnswer(ctx context.Context, userID, wordID int64, isCorrect bool) error {
	query := `
		INSERT INTO user_stats (user_id, word_id, correct_answers, total_answers, last_asked)
		VALUES ($1, $2, $3, 1, NOW())
		ON CONFLICT (user_id, word_id)
		DO UPDATE SET
			correct_answers = user_stats.correct_answers + EXCLUDED.correct_answers,
			total_answers = user_stats.total_answers + 1,
			last_asked = NOW()
	`

	correct := 0
	if isCorrect {
		correct = 1
	}

	_, err := s.db.ExecContext(ctx, query, userID, wordID, correct)
	if err != nil {
		return fmt.Errorf("failed to record answer for user %d: %w", userID, err)
	}

	return nil
}

func (s *StatsR) UserStats(ctx context.Context, userID int64) (models.StatsSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(correct_answers), 0) AS total_correct,
			COALESCE(SUM(total_answers), 0) AS total_questions
		FROM user_stats
		WHERE user_id = $1
	`

	var stats models.StatsSummary
	err := s.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		return models.StatsSummary{}, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}

	return stats, nil
}
