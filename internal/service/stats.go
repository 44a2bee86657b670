package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
	"go.uber.org/zap"
)

type StatsRI interface {
	RecordAnswer(ctx context.Context, userID, wordID int64, isCorrect bool) error
	UserStats(ctx context.Context, userID int64) (models.StatsSummary, error)
}

type StatsS struct {
	repo StatsRI
	log  *zap.Logger
}

func NewStatsService(repo StatsRI, log *zap.Logger) *StatsS {
	return &StatsS{
		repo: repo,
		log:  log,
	}
}

func (s *StatsS) RecordAnswer(ctx context.Context, userID, wordID int64, isCorrect bool) error {
	if err := s.repo.RecordAnswer(ctx, userID, wordID, isCorrect); err != nil {
		s.log.Warn("failed to record answer",
			zap.Int64("user_id", userID),
			zap.Int64("word_id", wordID),
			zap.Error(err))
		return err
	}
	return nil
}

// UserStats aggregates all of the user's answers. Success rate is 0.0
// for a user with no answers, otherwise a percentage rounded to one
// decimal place.
func (s *StatsS) UserStats(ctx context.Context, userID int64) (models.StatsSummary, error) {
	stats, err := s.repo.UserStats(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get user stats", zap.Int64("user_id", userID), zap.Error(err))
		return models.StatsSummary{}, err
	}

	if stats.TotalQuestions > 0 {
		rate := float64(stats.TotalCorrect) / float64(stats.TotalQuestions) * 100
		stats.SuccessRate = math.Round(rate*10) / 10
	}

	return stats, nil
}

func (s *StatsS) StatsReport(ctx context.Context, userID int64) (string, error) {
	stats, err := s.UserStats(ctx, userID)
	if err != nil {
		return "", err
	}
	return statsFormat(stats), nil
}

func statsFormat(stats models.StatsSummary) string {
	var sb strings.Builder

	sb.WriteString("📊 Ваша статистика:\n")
	sb.WriteString("Правильных ответов: ")
	sb.WriteString(strconv.Itoa(stats.TotalCorrect))
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(stats.TotalQuestions))
	sb.WriteString(" (")
	sb.WriteString(fmt.Sprintf("%.1f", stats.SuccessRate))
	sb.WriteString("%)")

	return sb.String()
}
