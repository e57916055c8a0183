package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) showProjection(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	stats, err := h.statsService.CurrentMonthProjection()
	if err != nil {
		h.replyError(chatID, "calculate statistics", err)
		return
	}

	h.reply(chatID, h.statsService.FormatProjection(stats))
}

// showMonth: /month MM, /month YYYY MM or /month YYYY-MM
func (h *Handler) showMonth(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	year, month, err := parseMonthArgs(args, h.clock.Now())
	if err != nil {
		h.reply(chatID, "❌ Usage: /month [YYYY] MM")
		return
	}

	stats, err := h.statsService.MonthStatistics(year, month)
	if err != nil {
		h.replyError(chatID, "calculate statistics", err)
		return
	}

	h.reply(chatID, h.statsService.FormatMonth(stats))
}

func (h *Handler) showHistory(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	history, err := h.statsService.History()
	if err != nil {
		h.replyError(chatID, "load history", err)
		return
	}

	h.reply(chatID, h.statsService.FormatHistory(history))
}

func parseMonthArgs(args string, now time.Time) (int, int, error) {
	parts := strings.Fields(strings.ReplaceAll(args, "-", " "))

	var yearStr, monthStr string
	switch len(parts) {
	case 0:
		return now.Year(), int(now.Month()), nil
	case 1:
		yearStr, monthStr = strconv.Itoa(now.Year()), parts[0]
	case 2:
		yearStr, monthStr = parts[0], parts[1]
	default:
		return 0, 0, fmt.Errorf("too many arguments: %q", args)
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", yearStr)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q", monthStr)
	}

	return year, month, nil
}
