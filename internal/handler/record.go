package handler

import (
	"errors"
	"fmt"
	"strings"

	"overtime-tracker/internal/overtime"
	"overtime-tracker/internal/service"
	"overtime-tracker/pkg/dateutil"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// clockOut saves a clock-out time: /out HH:MM [YYYY-MM-DD]
func (h *Handler) clockOut(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	parts := strings.Fields(args)
	if len(parts) == 0 || len(parts) > 2 {
		h.reply(chatID, "❌ Usage: /out HH:MM [YYYY-MM-DD]")
		return
	}

	if _, ok := overtime.ParseClock(parts[0]); !ok {
		h.reply(chatID, "❌ Time must be HH:MM, for example /out 18:45")
		return
	}

	date := h.today()
	if len(parts) == 2 {
		date = parts[1]
	}

	clockOut := parts[0]
	record, err := h.recordService.Save(service.RecordInput{Date: date, ClockOut: &clockOut})
	if err != nil {
		h.replyError(chatID, "save the record", err)
		return
	}

	h.reply(chatID, "✅ Saved\n"+service.FormatRecord(record))
}

// markLeave records a leave day: /leave [YYYY-MM-DD]
func (h *Handler) markLeave(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	date := strings.TrimSpace(args)
	if date == "" {
		date = h.today()
	}

	record, err := h.recordService.Save(service.RecordInput{Date: date, IsLeave: true})
	if err != nil {
		h.replyError(chatID, "save the record", err)
		return
	}

	h.reply(chatID, "✅ Saved\n"+service.FormatRecord(record))
}

func (h *Handler) showRecord(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	record, err := h.recordService.Get(args)
	if err != nil {
		h.replyError(chatID, "load the record", err)
		return
	}

	h.reply(chatID, service.FormatRecord(record))
}

// deleteRecord asks for confirmation before removing a day.
func (h *Handler) deleteRecord(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	record, err := h.recordService.Get(args)
	if err != nil {
		h.replyError(chatID, "load the record", err)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Delete", callbackConfirmDelete+record.Date),
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", callbackCancelDelete),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🗑 Delete this day?\n%s", service.FormatRecord(record)))
	msg.ReplyMarkup = keyboard
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.WithError(err).Error("Failed to send delete confirmation")
	}
}

func (h *Handler) confirmDeleteRecord(chatID int64, date string) {
	if err := h.recordService.Delete(date); err != nil {
		h.replyError(chatID, "delete the record", err)
		return
	}

	h.logger.WithField("date", date).Info("Record deleted from chat")
	h.reply(chatID, fmt.Sprintf("✅ %s deleted", date))
}

func (h *Handler) today() string {
	return dateutil.FormatDate(h.clock.Now())
}

// replyError turns service errors into a chat message.
func (h *Handler) replyError(chatID int64, action string, err error) {
	switch {
	case errors.Is(err, service.ErrDateRequired),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidMonth):
		h.reply(chatID, "❌ "+err.Error())
	case errors.Is(err, service.ErrRecordNotFound):
		h.reply(chatID, "📭 No record for that day")
	default:
		h.logger.WithError(err).Errorf("Failed to %s", action)
		h.reply(chatID, fmt.Sprintf("❌ Could not %s, please try again later", action))
	}
}
