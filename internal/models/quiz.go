package models

import "time"

type Direction string

const (
	DirectionGreekToRussian Direction = "GR→RU"
	DirectionRussianToGreek Direction = "RU→GR"
)

// QuizItem is one outstanding question. It lives in the per-user cache
// only and is never written to the database.
type QuizItem struct {
	WordID       int64
	Question     string
	Answers      []string
	CorrectIndex int
	Direction    Direction
	WordType     WordType
}

func (q QuizItem) CorrectAnswer() string {
	return q.Answers[q.CorrectIndex]
}

type UserStat struct {
	UserID         int64     `db:"user_id"`
	WordID         int64     `db:"word_id"`
	CorrectAnswers int       `db:"correct_answers"`
	TotalAnswers   int       `db:"total_answers"`
	LastAsked      time.Time `db:"last_asked"`
}

type StatsSummary struct {
	TotalCorrect   int `db:"total_correct"`
	TotalQuestions int `db:"total_questions"`
	SuccessRate    float64
}
