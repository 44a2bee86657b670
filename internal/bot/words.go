package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
	"github.com/ShurikGr/greek-learning-bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type WordSI interface {
	AddWord(ctx context.Context, word models.Word) error
}

type WordT struct {
	bot     BotSender
	service WordSI
	admins  map[int64]bool
}

func NewWordTAPI(bot BotSender, service WordSI, admins []int64) *WordT {
	adminSet := make(map[int64]bool, len(admins))
	for _, id := range admins {
		adminSet[id] = true
	}

	return &WordT{
		bot:     bot,
		service: service,
		admins:  adminSet,
	}
}

func (t *WordT) handleAddWordCommand(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID

	if !t.admins[userID] {
		msg := tgbotapi.NewMessage(message.Chat.ID, "⛔ Команда доступна только администраторам.")
		sendMessage(t.bot, msg)
		return
	}

	parts := strings.SplitN(message.CommandArguments(), ";", 3)
	if len(parts) != 3 {
		msg := tgbotapi.NewMessage(message.Chat.ID,
			"Использование: /addword греческое;перевод;тип\n"+
				"Типы: noun, verb, adjective, adverb, pronoun, preposition, conjunction, phrase")
		sendMessage(t.bot, msg)
		return
	}

	word := models.Word{
		Greek:     strings.TrimSpace(parts[0]),
		Russian:   strings.TrimSpace(parts[1]),
		WordType:  models.WordType(strings.TrimSpace(parts[2])),
		CreatedBy: userID,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.service.AddWord(ctx, word); err != nil {
		if errors.Is(err, service.ErrInvalidWord) {
			msg := tgbotapi.NewMessage(message.Chat.ID, "❌ "+err.Error())
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to add word for admin %d: %v", userID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Не удалось добавить слово. Попробуйте позже.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("✅ Слово добавлено: %s — %s (%s)", word.Greek, word.Russian, word.WordType))
	sendMessage(t.bot, msg)
}
