package handler

import (
	"strings"

	"overtime-tracker/internal/service"
	"overtime-tracker/pkg/clock"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Sender is the part of the Telegram API the bot talks through.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

const (
	callbackConfirmDelete = "confirm_delete_record_"
	callbackCancelDelete  = "cancel_delete_record"
)

type Handler struct {
	bot                  Sender
	recordService        *service.WorkRecordService
	statsService         *service.StatisticsService
	nonWorkingDayService *service.NonWorkingDayService
	clock                clock.Clock
	ownerChatID          int64
	logger               *logrus.Logger
}

func NewHandler(
	bot Sender,
	recordService *service.WorkRecordService,
	statsService *service.StatisticsService,
	nonWorkingDayService *service.NonWorkingDayService,
	clk clock.Clock,
	ownerChatID int64,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		bot:                  bot,
		recordService:        recordService,
		statsService:         statsService,
		nonWorkingDayService: nonWorkingDayService,
		clock:                clk,
		ownerChatID:          ownerChatID,
		logger:               logger,
	}
}

// HandleUpdates processes updates until the channel is closed.
func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		h.HandleUpdate(update)
	}
}

func (h *Handler) HandleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	h.handleMessage(update.Message)
}

func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Answer the callback so the client stops the button spinner.
	defer h.bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	if !h.isOwner(chatID) {
		return
	}

	// Drop the keyboard so the buttons cannot be pressed twice.
	h.bot.Request(tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup()))

	switch {
	case strings.HasPrefix(data, callbackConfirmDelete):
		h.confirmDeleteRecord(chatID, strings.TrimPrefix(data, callbackConfirmDelete))
	case data == callbackCancelDelete:
		h.reply(chatID, "❌ Deletion cancelled.")
	default:
		h.logger.WithField("data", data).Warn("Unknown callback data")
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	fields := logrus.Fields{"chat_id": chatID, "text": message.Text}
	if message.From != nil {
		fields["user"] = message.From.UserName
	}
	h.logger.WithFields(fields).Info("Message received")

	if !h.isOwner(chatID) {
		h.logger.WithField("chat_id", chatID).Warn("Message from unknown chat ignored")
		h.reply(chatID, "⛔ This bot is private.")
		return
	}

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.reply(chatID, "🤔 Send /help for the list of commands.")
}

func (h *Handler) isOwner(chatID int64) bool {
	return chatID == h.ownerChatID
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
	}
}
