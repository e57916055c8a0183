package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start", "help":
		h.sendHelpMessage(message)

	// Records
	case "out":
		h.clockOut(message, args)
	case "leave":
		h.markLeave(message, args)
	case "record":
		h.showRecord(message, args)
	case "delete":
		h.deleteRecord(message, args)

	// Statistics
	case "stats":
		h.showProjection(message)
	case "month":
		h.showMonth(message, args)
	case "history":
		h.showHistory(message)

	// Calendar
	case "checkday":
		h.checkDay(message, args)
	case "calendar":
		h.showCalendar(message, args)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, "❌ Unknown command. Use /help for the list of commands.")
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := `📋 Commands:

🕔 Records:
/out HH:MM [YYYY-MM-DD] - Clock-out time (today by default)
/leave [YYYY-MM-DD] - Mark a leave day
/record YYYY-MM-DD - Show a day
/delete YYYY-MM-DD - Delete a day

📊 Statistics:
/stats - Current month and target
/month [YYYY] MM - A past month
/history - All months

📅 Calendar:
/checkday [YYYY-MM-DD] - Is it a workday?
/calendar [YYYY] MM - Imported years and days off`

	h.reply(message.Chat.ID, text)
}
