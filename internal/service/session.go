package service

import (
	"context"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
	"go.uber.org/zap"
)

type SessionRI interface {
	UpsertUser(ctx context.Context, user models.User) error
	SetSessionActive(ctx context.Context, userID int64, active bool) error
	SessionActive(ctx context.Context, userID int64) (bool, error)
}

type SessionS struct {
	repo SessionRI
	log  *zap.Logger
}

func NewSessionService(repo SessionRI, log *zap.Logger) *SessionS {
	return &SessionS{
		repo: repo,
		log:  log,
	}
}

// StartSession turns on continuous quiz mode. Starting while already
// active is a no-op reported to the caller, not an error.
func (s *SessionS) StartSession(ctx context.Context, user models.User) (alreadyActive bool, err error) {
	active, err := s.repo.SessionActive(ctx, user.UserID)
	if err != nil {
		return false, err
	}
	if active {
		return true, nil
	}

	if err := s.repo.UpsertUser(ctx, user); err != nil {
		return false, err
	}
	if err := s.repo.SetSessionActive(ctx, user.UserID, true); err != nil {
		return false, err
	}

	s.log.Info("quiz session started", zap.Int64("user_id", user.UserID))
	return false, nil
}

func (s *SessionS) StopSession(ctx context.Context, userID int64) error {
	if err := s.repo.SetSessionActive(ctx, userID, false); err != nil {
		return err
	}
	s.log.Info("quiz session stopped", zap.Int64("user_id", userID))
	return nil
}

func (s *SessionS) SessionActive(ctx context.Context, userID int64) (bool, error) {
	return s.repo.SessionActive(ctx, userID)
}
