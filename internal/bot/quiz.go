package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
	"github.com/ShurikGr/greek-learning-bot/internal/service"
	"github.com/ShurikGr/greek-learning-bot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizSI interface {
	NewQuiz(ctx context.Context, userID int64) (models.QuizItem, error)
	CheckAnswer(item models.QuizItem, selected int) bool
}

type StatsSI interface {
	RecordAnswer(ctx context.Context, userID, wordID int64, isCorrect bool) error
	StatsReport(ctx context.Context, userID int64) (string, error)
}

type SessionSI interface {
	StartSession(ctx context.Context, user models.User) (bool, error)
	StopSession(ctx context.Context, userID int64) error
	SessionActive(ctx context.Context, userID int64) (bool, error)
}

type QuizT struct {
	bot          BotSender
	cache        *cache.Cache
	quiz         QuizSI
	stats        StatsSI
	session      SessionSI
	advanceDelay time.Duration
}

type quizServiceI interface {
	QuizSI
	StatsSI
	SessionSI
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service quizServiceI, advanceDelay time.Duration) *QuizT {
	return &QuizT{
		bot:          bot,
		cache:        cache,
		quiz:         service,
		stats:        service,
		session:      service,
		advanceDelay: advanceDelay,
	}
}

func (t *QuizT) handleQuizCommand(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	t.sendNewQuiz(message.Chat.ID, message.From.ID)
}

func (t *QuizT) handleSessionCommand(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user := models.User{
		UserID:    message.From.ID,
		Username:  message.From.UserName,
		FirstName: message.From.FirstName,
	}

	alreadyActive, err := t.session.StartSession(ctx, user)
	if err != nil {
		log.Printf("failed to start session for user %d: %v", user.UserID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Не удалось начать сессию. Попробуй позже.")
		sendMessage(t.bot, msg)
		return
	}

	if alreadyActive {
		msg := tgbotapi.NewMessage(message.Chat.ID,
			"⚠️ У вас уже активна сессия квиза.\nИспользуйте /stop для остановки.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID,
		"🎯 Сессия квиза начата!\n\n"+
			"Отвечайте на вопросы один за другим.\n"+
			"Используйте /stop для остановки.\n\n"+
			"Приготовьтесь...")
	sendMessage(t.bot, msg)

	t.sendNewQuiz(message.Chat.ID, user.UserID)
}

func (t *QuizT) handleStopCommand(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.session.StopSession(ctx, userID); err != nil {
		log.Printf("failed to stop session for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Не удалось остановить сессию. Попробуй позже.")
		sendMessage(t.bot, msg)
		return
	}

	text := "🛑 Сессия квиза остановлена."

	report, err := t.stats.StatsReport(ctx, userID)
	if err != nil {
		log.Printf("failed to get final stats for user %d: %v", userID, err)
	} else {
		text += "\n\n" + report + "\n\nОтличная работа! 💪"
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	sendMessage(t.bot, msg)
}

func (t *QuizT) handleStatsCommand(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	report, err := t.stats.StatsReport(ctx, message.From.ID)
	if err != nil {
		log.Printf("failed to get stats for user %d: %v", message.From.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Ошибка получения статистики")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, report)
	sendMessage(t.bot, msg)
}

// sendNewQuiz generates a question and stores it as the user's current
// quiz, invalidating whatever was outstanding before.
func (t *QuizT) sendNewQuiz(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	item, err := t.quiz.NewQuiz(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientVocabulary) {
			msg := tgbotapi.NewMessage(chatID,
				"❌ Недостаточно слов в базе для создания квиза.\nПопросите админа добавить больше слов.")
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to get new quiz for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка при получении викторины. Попробуй позже.")
		sendMessage(t.bot, msg)
		return
	}

	t.deliverQuiz(chatID, userID, item)
}

func (t *QuizT) deliverQuiz(chatID, userID int64, item models.QuizItem) {
	t.cache.SetQuiz(userID, item)

	buttons := make([][]tgbotapi.InlineKeyboardButton, 0, len(item.Answers))
	for i, answer := range item.Answers {
		button := tgbotapi.NewInlineKeyboardButtonData(answer, "answer_"+strconv.Itoa(i))
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{button})
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s %s\n\n❓ %s\n\nВыберите правильный ответ:",
		directionEmoji(item.Direction), item.Direction, item.Question))
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)

	log.Printf("User %d got quiz for word_id %d", userID, item.WordID)
}

func (t *QuizT) processQuizAnswer(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}
	chatID := query.Message.Chat.ID

	// Taking the quiz consumes it: a second tap on the same question
	// finds nothing here and never reaches the stats update.
	item, exists := t.cache.TakeQuiz(userID)
	if !exists {
		log.Printf("no current quiz for user %d: %v", userID, service.ErrNoCurrentQuiz)
		editMsg := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID,
			"❌ Викторина не найдена. Запросите новую: /quiz")
		sendMessage(t.bot, editMsg)
		return
	}

	// A malformed or out-of-range index counts as a wrong answer.
	selected := -1
	if idx, err := strconv.Atoi(strings.TrimPrefix(query.Data, "answer_")); err == nil {
		selected = idx
	}

	isCorrect := t.quiz.CheckAnswer(item, selected)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.stats.RecordAnswer(ctx, userID, item.WordID, isCorrect); err != nil {
		log.Printf("failed to save quiz result for user %d: %v", userID, err)
		editMsg := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID,
			"❌ Ошибка сохранения результата. Попробуйте позже.")
		sendMessage(t.bot, editMsg)
		return
	}

	var response string
	if isCorrect {
		response = "✅ Правильно!\n\n"
	} else {
		response = "❌ Неправильно.\n\nПравильный ответ: " + item.CorrectAnswer() + "\n\n"
	}

	report, err := t.stats.StatsReport(ctx, userID)
	if err != nil {
		log.Printf("failed to get stats for user %d: %v", userID, err)
	} else {
		response += report + "\n\n"
	}
	response += "Используйте /quiz для следующего вопроса"

	editMsg := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, response)
	buttons := [][]tgbotapi.InlineKeyboardButton{
		{tgbotapi.NewInlineKeyboardButtonData("❓ Новая викторина", "new_quiz")},
	}
	editMsg.ReplyMarkup = &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
	sendMessage(t.bot, editMsg)

	log.Printf("User %d answered %s", userID, answerStatus(isCorrect))

	active, err := t.session.SessionActive(ctx, userID)
	if err != nil {
		log.Printf("failed to check session for user %d: %v", userID, err)
		return
	}
	if active {
		go t.advanceSession(chatID, userID)
	}
}

// advanceSession delivers the next question of an active session after a
// short delay. The flag is re-read after the delay so a /stop issued in
// the meantime suppresses the pending question.
func (t *QuizT) advanceSession(chatID, userID int64) {
	time.Sleep(t.advanceDelay)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	active, err := t.session.SessionActive(ctx, userID)
	if err != nil {
		log.Printf("failed to check session for user %d: %v", userID, err)
		return
	}
	if !active {
		return
	}

	item, err := t.quiz.NewQuiz(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientVocabulary) {
			// Rather than stalling silently, end the session and say why.
			if err := t.session.StopSession(ctx, userID); err != nil {
				log.Printf("failed to stop stalled session for user %d: %v", userID, err)
			}
			msg := tgbotapi.NewMessage(chatID,
				"⚠️ Недостаточно слов для продолжения.\nСессия остановлена — попросите админа добавить слова.")
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to get next session quiz for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка при получении викторины. Попробуй позже.")
		sendMessage(t.bot, msg)
		return
	}

	t.deliverQuiz(chatID, userID, item)
}

func directionEmoji(d models.Direction) string {
	if d == models.DirectionGreekToRussian {
		return "🇬🇷→🇷🇺"
	}
	return "🇷🇺→🇬🇷"
}

func answerStatus(isCorrect bool) string {
	if isCorrect {
		return "correctly"
	}
	return "incorrectly"
}
