package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
)

type SessionR struct {
	db QueryI
}

func NewSessionRepository(db QueryI) *SessionR {
	return &SessionR{db: db}
}

func (s *SessionR) UpsertUser(ctx context.Context, user models.User) error {
	query := `
		INSERT INTO users (user_id, username, first_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name
	`

	_, err := s.db.ExecContext(ctx, query, user.UserID, user.Username, user.FirstName)
	if err != nil {
		return fmt.Errorf("failed to upsert user %d: %w", user.UserID, err)
	}

	return nil
}

func (s *SessionR) SetSessionActive(ctx context.Context, userID int64, active bool) error {
	query := `
		INSERT INTO users (user_id, quiz_session_active)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET quiz_session_active = EXCLUDED.quiz_session_active
	`

	_, err := s.db.ExecContext(ctx, query, userID, active)
	if err != nil {
		return fmt.Errorf("failed to set session flag for user %d: %w", userID, err)
	}

	return nil
}

// SessionActive reports the user's session flag; an unknown user is
// simply not in a session.
func (s *SessionR) SessionActive(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT quiz_session_active FROM users WHERE user_id = $1`

	var active bool
	err := s.db.GetContext(ctx, &active, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read session flag for user %d: %w", userID, err)
	}

	return active, nil
}
