package cache

import (
	"sync"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
)

// Cache holds the current quiz per user. It is process-local: a restart
// drops outstanding questions and users simply request new ones.
type Cache struct {
	mu   sync.Mutex
	quiz map[int64]models.QuizItem
}

func NewCache() *Cache {
	return &Cache{
		quiz: make(map[int64]models.QuizItem),
	}
}

// SetQuiz replaces any previously stored quiz for the user, so a stale
// question can no longer be answered once a new one is issued.
func (c *Cache) SetQuiz(userID int64, quiz models.QuizItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiz[userID] = quiz
}

func (c *Cache) GetQuiz(userID int64) (models.QuizItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	quiz, exists := c.quiz[userID]
	return quiz, exists
}

// TakeQuiz returns the user's current quiz and removes it in one step.
// Of two racing answer events only one can take the quiz; the other
// finds nothing and is rejected instead of double-recording stats.
func (c *Cache) TakeQuiz(userID int64) (models.QuizItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	quiz, exists := c.quiz[userID]
	if exists {
		delete(c.quiz, userID)
	}
	return quiz, exists
}

func (c *Cache) DeleteQuiz(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.quiz, userID)
}
