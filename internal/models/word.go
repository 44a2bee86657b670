package models

import (
	"time"
)

type WordType string

const (
	WordTypeNoun        WordType = "noun"
	WordTypeVerb        WordType = "verb"
	WordTypeAdjective   WordType = "adjective"
	WordTypeAdverb      WordType = "adverb"
	WordTypePronoun     WordType = "pronoun"
	WordTypePreposition WordType = "preposition"
	WordTypeConjunction WordType = "conjunction"
	WordTypePhrase      WordType = "phrase"
)

func ValidWordType(t string) bool {
	switch WordType(t) {
	case WordTypeNoun, WordTypeVerb, WordTypeAdjective, WordTypeAdverb,
		WordTypePronoun, WordTypePreposition, WordTypeConjunction, WordTypePhrase:
		return true
	}
	return false
}

type Word struct {
	ID        int64     `db:"id"`
	Greek     string    `db:"greek"`
	Russian   string    `db:"russian"`
	WordType  WordType  `db:"word_type"`
	CreatedAt time.Time `db:"created_at"`
	CreatedBy int64     `db:"created_by"`
}

type User struct {
	UserID            int64     `db:"user_id"`
	Username          string    `db:"username"`
	FirstName         string    `db:"first_name"`
	QuizSessionActive bool      `db:"quiz_session_active"`
	JoinedAt          time.Time `db:"joined_at"`
}
