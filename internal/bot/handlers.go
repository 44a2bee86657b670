package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "quiz":
		t.quiz.handleQuizCommand(message)
	case "quiz_session":
		t.quiz.handleSessionCommand(message)
	case "stop":
		t.quiz.handleStopCommand(message)
	case "stats":
		t.quiz.handleStatsCommand(message)
	case "addword":
		t.word.handleAddWordCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используй /help")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	welcomeText := "Привет, " + message.From.FirstName + "!\n\n" +
		"Я бот для изучения греческого языка.\n\n" +
		"📚 Квизы:\n" +
		"/quiz — получить один вопрос\n" +
		"/quiz_session — начать непрерывную сессию\n" +
		"/stop — остановить сессию\n" +
		"/stats — моя статистика\n\n" +
		"ℹ️ Справка:\n" +
		"/start — показать это сообщение\n" +
		"/help — полная справка"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	sendMessage(t.bot, msg)

	log.Printf("User %d (@%s) started the bot", message.From.ID, message.From.UserName)
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Greek Learning Bot — Справка

Бот задаёт вопросы с четырьмя вариантами перевода,
в обе стороны: 🇬🇷→🇷🇺 и 🇷🇺→🇬🇷.

Команды:
/quiz — один вопрос
/quiz_session — вопросы один за другим, пока не скажешь /stop
/stop — остановить сессию и показать итог
/stats — текущая статистика

Для администраторов:
/addword греческое;перевод;тип — добавить слово
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "Я понимаю только команды. Используй /help")
	sendMessage(t.bot, msg)
}
