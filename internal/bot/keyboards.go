package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

const (
	btnWhereIsPupil = "🔎 Где ученик"
	btnBells        = "🔔 Звонки"
	btnClasses      = "🏫 Классы"
	btnTeachers     = "👩‍🏫 Учителя"
	btnHelp         = "❓ Помощь"
	btnCancel       = "❌ Отмена"
)

func createMainKeyboard(isAdmin bool) tgbotapi.ReplyKeyboardMarkup {
	rows := [][]tgbotapi.KeyboardButton{
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnWhereIsPupil),
			tgbotapi.NewKeyboardButton(btnBells),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnClasses),
			tgbotapi.NewKeyboardButton(btnHelp),
		),
	}

	// Учителя нужны администратору для /add
	if isAdmin {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnTeachers),
		))
	}

	return tgbotapi.NewReplyKeyboard(rows...)
}

func createCancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}
