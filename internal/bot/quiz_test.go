package bot

import (
	"strings"
	"testing"

	mock_bot "github.com/ShurikGr/greek-learning-bot/internal/bot/mock"
	"github.com/ShurikGr/greek-learning-bot/internal/models"
	"github.com/ShurikGr/greek-learning-bot/internal/service"
	"github.com/ShurikGr/greek-learning-bot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) *QuizT {
	mockService := mock_bot.NewMockServiceI(ctrl)
	cache := cache.NewCache()
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewQuizTAPI(mockBot, cache, mockService, 0)
}

func testQuizItem() models.QuizItem {
	return models.QuizItem{
		WordID:       42,
		Question:     "νερό",
		Answers:      []string{"дом", "хлеб", "вода", "дорога"},
		CorrectIndex: 2,
		Direction:    models.DirectionGreekToRussian,
		WordType:     models.WordTypeNoun,
	}
}

func answerQuery(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cb1",
		Data: data,
		From: &tgbotapi.User{ID: 456},
		Message: &tgbotapi.Message{
			MessageID: 10,
			Chat:      &tgbotapi.Chat{ID: 123},
			Text:      "🇬🇷→🇷🇺 GR→RU\n\n❓ νερό\n\nВыберите правильный ответ:",
		},
	}
}

func TestQuizT_sendNewQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *QuizT, *mock_bot.MockBot)
	}{
		{
			name: "success: sends quiz with four option buttons",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().NewQuiz(gomock.Any(), int64(456)).Return(testQuizItem(), nil)
			},
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "❓ νερό")
				assert.Contains(t, msg.Text, "GR→RU")

				markup, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				require.Len(t, markup.InlineKeyboard, 4)
				assert.Equal(t, "answer_0", *markup.InlineKeyboard[0][0].CallbackData)

				item, exists := quizT.cache.GetQuiz(456)
				require.True(t, exists)
				assert.Equal(t, int64(42), item.WordID)
			},
		},
		{
			name: "insufficient vocabulary is a friendly message",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().NewQuiz(gomock.Any(), int64(456)).
					Return(models.QuizItem{}, service.ErrInsufficientVocabulary)
			},
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Недостаточно слов")

				_, exists := quizT.cache.GetQuiz(456)
				assert.False(t, exists)
			},
		},
		{
			name: "generic error",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().NewQuiz(gomock.Any(), int64(456)).
					Return(models.QuizItem{}, assert.AnError)
			},
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Ошибка при получении викторины")
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.sendNewQuiz(123, 456)

			if tt.assertFunc != nil {
				tt.assertFunc(t, quizT, mb)
			}
		})
	}
}

func TestQuizT_processQuizAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      *tgbotapi.CallbackQuery
		preload    bool
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *QuizT, *mock_bot.MockBot)
	}{
		{
			name:    "correct answer records and reports",
			query:   answerQuery("answer_2"),
			preload: true,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().CheckAnswer(testQuizItem(), 2).Return(true)
				ms.EXPECT().RecordAnswer(gomock.Any(), int64(456), int64(42), true).Return(nil)
				ms.EXPECT().StatsReport(gomock.Any(), int64(456)).
					Return("📊 Ваша статистика:\nПравильных ответов: 1/1 (100.0%)", nil)
				ms.EXPECT().SessionActive(gomock.Any(), int64(456)).Return(false, nil)
			},
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				edit, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.True(t, strings.HasPrefix(edit.Text, "✅ Правильно!"))
				assert.Contains(t, edit.Text, "Ваша статистика")

				_, exists := quizT.cache.GetQuiz(456)
				assert.False(t, exists, "answer must consume the quiz")
			},
		},
		{
			name:    "wrong answer shows the correct one",
			query:   answerQuery("answer_0"),
			preload: true,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().CheckAnswer(testQuizItem(), 0).Return(false)
				ms.EXPECT().RecordAnswer(gomock.Any(), int64(456), int64(42), false).Return(nil)
				ms.EXPECT().StatsReport(gomock.Any(), int64(456)).Return("📊", nil)
				ms.EXPECT().SessionActive(gomock.Any(), int64(456)).Return(false, nil)
			},
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, edit.Text, "❌ Неправильно")
				assert.Contains(t, edit.Text, "Правильный ответ: вода")
			},
		},
		{
			name:    "malformed index counts as a wrong answer",
			query:   answerQuery("answer_oops"),
			preload: true,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().CheckAnswer(testQuizItem(), -1).Return(false)
				ms.EXPECT().RecordAnswer(gomock.Any(), int64(456), int64(42), false).Return(nil)
				ms.EXPECT().StatsReport(gomock.Any(), int64(456)).Return("📊", nil)
				ms.EXPECT().SessionActive(gomock.Any(), int64(456)).Return(false, nil)
			},
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
			},
		},
		{
			name:    "no current quiz",
			query:   answerQuery("answer_2"),
			preload: false,
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, edit.Text, "Викторина не найдена")
			},
		},
		{
			name:    "storage failure aborts the answer",
			query:   answerQuery("answer_2"),
			preload: true,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().CheckAnswer(testQuizItem(), 2).Return(true)
				ms.EXPECT().RecordAnswer(gomock.Any(), int64(456), int64(42), true).Return(assert.AnError)
			},
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, edit.Text, "Ошибка сохранения")
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			if tt.preload {
				quizT.cache.SetQuiz(456, testQuizItem())
			}

			mock_bot.ClearSentMessages(mb)
			quizT.processQuizAnswer(tt.query)

			if tt.assertFunc != nil {
				tt.assertFunc(t, quizT, mb)
			}
		})
	}
}

func TestQuizT_advanceSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *QuizT, *mock_bot.MockBot)
	}{
		{
			name: "active session gets the next question",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SessionActive(gomock.Any(), int64(456)).Return(true, nil)
				ms.EXPECT().NewQuiz(gomock.Any(), int64(456)).Return(testQuizItem(), nil)
			},
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "❓ νερό")

				_, exists := quizT.cache.GetQuiz(456)
				assert.True(t, exists)
			},
		},
		{
			name: "stop during the delay suppresses the question",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SessionActive(gomock.Any(), int64(456)).Return(false, nil)
			},
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
		{
			name: "insufficient vocabulary auto-stops the session",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SessionActive(gomock.Any(), int64(456)).Return(true, nil)
				ms.EXPECT().NewQuiz(gomock.Any(), int64(456)).
					Return(models.QuizItem{}, service.ErrInsufficientVocabulary)
				ms.EXPECT().StopSession(gomock.Any(), int64(456)).Return(nil)
			},
			assertFunc: func(t *testing.T, quizT *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Сессия остановлена")
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.advanceSession(123, 456)

			if tt.assertFunc != nil {
				tt.assertFunc(t, quizT, mb)
			}
		})
	}
}

func TestQuizT_handleSessionCommand(t *testing.T) {
	t.Parallel()

	message := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456, UserName: "alex", FirstName: "Alex"},
	}

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "fresh session starts and delivers a quiz",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartSession(gomock.Any(), models.User{
					UserID: 456, Username: "alex", FirstName: "Alex",
				}).Return(false, nil)
				ms.EXPECT().NewQuiz(gomock.Any(), int64(456)).Return(testQuizItem(), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				intro := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, intro.Text, "Сессия квиза начата")
				quiz := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Contains(t, quiz.Text, "❓ νερό")
			},
		},
		{
			name: "starting twice warns without restarting",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartSession(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "уже активна сессия")
			},
		},
		{
			name: "start failure",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartSession(gomock.Any(), gomock.Any()).Return(false, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Не удалось начать сессию")
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.handleSessionCommand(message)

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestQuizT_handleStopCommand(t *testing.T) {
	t.Parallel()

	message := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().StopSession(gomock.Any(), int64(456)).Return(nil)
		ms.EXPECT().StatsReport(gomock.Any(), int64(456)).
			Return("📊 Ваша статистика:\nПравильных ответов: 3/5 (60.0%)", nil)
	})
	mb, _ := quizT.bot.(*mock_bot.MockBot)

	quizT.handleStopCommand(message)

	require.Equal(t, 1, len(mb.SentMessages))
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Contains(t, msg.Text, "Сессия квиза остановлена")
	assert.Contains(t, msg.Text, "3/5 (60.0%)")
}

func TestQuizT_handleStatsCommand(t *testing.T) {
	t.Parallel()

	message := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().StatsReport(gomock.Any(), int64(456)).
			Return("📊 Ваша статистика:\nПравильных ответов: 0/0 (0.0%)", nil)
	})
	mb, _ := quizT.bot.(*mock_bot.MockBot)

	quizT.handleStatsCommand(message)

	require.Equal(t, 1, len(mb.SentMessages))
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Contains(t, msg.Text, "0/0 (0.0%)")
}
