package relay

// User-facing texts.
const (
	ackText             = "Спасибо за ваше сообщение! Мы скоро свяжемся с вами."
	apologyText         = "Извините, произошла ошибка. Пожалуйста, попробуйте позже."
	readReceiptText     = "👀 Оператор прочитал ваше сообщение и скоро ответит."
	sizeLimitText       = "Файл слишком большой (%s). Максимальный размер — %s."
	unsupportedUserText = "К сожалению, такой тип сообщений не поддерживается. " +
		"Отправьте текст, фото, документ, видео, аудио или голосовое сообщение."
)

// Operator-facing texts.
const (
	replyButtonLabel        = "Ответить"
	relayHeaderFmt          = "📩 %s\nНовое сообщение от %s"
	replyHeaderFmt          = "Ответ от %s:"
	replyPromptFmt          = "✍️ Ответьте на это сообщение, чтобы написать пользователю %s."
	replySentFmt            = "✅ Ответ отправлен пользователю %s."
	deliveryFailedFmt       = "❌ Не удалось отправить ответ пользователю %s: %s."
	referenceNotFoundText   = "⚠️ Не удалось определить получателя. Ответьте на пересланное сообщение пользователя или нажмите «Ответить»."
	operatorHintText        = "ℹ️ Чтобы написать пользователю, ответьте на его сообщение или нажмите «Ответить»."
	operatorUnsupportedText = "⚠️ Этот тип сообщения нельзя отправить пользователю."
)

const (
	historyTitle = "📜 История переписки:"
	historyEmpty = "📜 История переписки пуста"
	messageTitle = "💬 Сообщение:"
)

// Failure reasons shown to the operator.
const (
	reasonBlocked     = "пользователь заблокировал бота"
	reasonNotFound    = "чат не найден"
	reasonDeactivated = "аккаунт пользователя удалён"
	reasonUnsupported = "тип сообщения не поддерживается"
	reasonOther       = "ошибка Telegram"
)
