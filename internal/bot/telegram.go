package bot

import (
	"log"
	"strings"
	"time"

	"github.com/ShurikGr/greek-learning-bot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ServiceI interface {
	WordSI
	QuizSI
	StatsSI
	SessionSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot  *tgbotapi.BotAPI
	quiz *QuizT
	word *WordT
}

func NewTelegramAPI(botToken, env string, service ServiceI, cache *cache.Cache, admins []int64, advanceDelay time.Duration) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	return &TelegramAPI{
		bot:  bot,
		quiz: NewQuizTAPI(bot, cache, service, advanceDelay),
		word: NewWordTAPI(bot, service, admins),
	}, nil
}

func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(update.Message)
			} else {
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, "answer_"):
		t.quiz.processQuizAnswer(query)

	case data == "new_quiz":
		if query.Message == nil {
			log.Printf("CallbackQuery without message: %v", query.ID)
			return
		}
		t.quiz.sendNewQuiz(query.Message.Chat.ID, query.From.ID)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	} else {
		log.Printf("Sent message to %d", sentMsg.Chat.ID)
	}
}
