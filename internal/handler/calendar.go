package handler

import (
	"fmt"
	"strings"

	"overtime-tracker/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) checkDay(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	date := strings.TrimSpace(args)
	if date == "" {
		date = h.today()
	}

	status, err := h.nonWorkingDayService.CheckDay(date)
	if err != nil {
		h.replyError(chatID, "check the day", err)
		return
	}

	response := fmt.Sprintf("📅 Date: %s\n", status.Date)
	if status.IsWorkday {
		response += "✅ Workday"
	} else {
		response += "❌ Day off"
	}
	if !status.YearLoaded {
		response += "\nℹ️ No production calendar for this year, Mon-Fri assumed"
	}

	h.reply(chatID, response)
}

// showCalendar: /calendar, /calendar MM or /calendar YYYY MM
func (h *Handler) showCalendar(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	year, month, err := parseMonthArgs(args, h.clock.Now())
	if err != nil {
		h.reply(chatID, "❌ Usage: /calendar [YYYY] MM")
		return
	}

	years, err := h.nonWorkingDayService.ListYears()
	if err != nil {
		h.replyError(chatID, "load the calendar", err)
		return
	}

	days, err := h.nonWorkingDayService.ListForMonth(year, month)
	if err != nil {
		h.replyError(chatID, "load the calendar", err)
		return
	}

	h.reply(chatID, service.FormatCalendarYears(years)+"\n\n"+service.FormatDaysOff(year, month, days))
}
