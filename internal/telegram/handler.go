package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/answersheet/gradebot/internal/msglog"
)

func (l *Listener) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	entry := entryFromMessage(msg)
	if err := l.store.Append(entry); err != nil {
		l.logger.Error().Err(err).Msg("error saving message to log")
	}

	l.logger.Info().
		Str("chat", entry.ChatTitle).
		Str("chat_type", entry.ChatType).
		Str("user", entry.FirstName).
		Str("type", entry.MessageType).
		Str("text", entry.Text).
		Msg("message received")

	switch {
	case msg.IsCommand():
		l.handleCommand(msg)
	case len(msg.Photo) > 0:
		if l.ocrEnabled.Load() {
			go l.processImage(ctx, msg, largestPhoto(msg.Photo).FileID)
		}
	case msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/"):
		if l.ocrEnabled.Load() {
			go l.processImage(ctx, msg, msg.Document.FileID)
		}
	}
}

func (l *Listener) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "hello", "start":
		l.reply(msg, "Hello! Send a photo of an answer sheet and I will grade it.")
	case "ocr":
		args := strings.ToLower(msg.CommandArguments())
		switch {
		case strings.Contains(args, "on") || strings.Contains(args, "enable"):
			l.ocrEnabled.Store(true)
			l.reply(msg, "Image processing enabled. Send images to grade answers.")
		case strings.Contains(args, "off") || strings.Contains(args, "disable"):
			l.ocrEnabled.Store(false)
			l.reply(msg, "Image processing disabled.")
		default:
			status := "disabled"
			if l.ocrEnabled.Load() {
				status = "enabled"
			}
			l.reply(msg, fmt.Sprintf("Image processing is currently %s.\nUse /ocr on or /ocr off to toggle.", status))
		}
	}
}

func (l *Listener) processImage(ctx context.Context, msg *tgbotapi.Message, fileID string) {
	l.sendTyping(msg.Chat.ID)
	l.logger.Info().Str("file_id", fileID).Msg("processing image")

	path, err := l.downloadFile(ctx, fileID)
	if err != nil {
		l.logger.Error().Err(err).Str("file_id", fileID).Msg("download failed")
		l.reply(msg, "Error processing image. Please check if the backend is running.")
		return
	}
	defer l.removeFile(path)

	outcome, err := l.pipeline.GradeImage(ctx, path)
	if err != nil {
		l.reply(msg, "Error processing image. Please check if the backend is running.")
		return
	}

	switch {
	case outcome.Text == "":
		l.reply(msg, "No readable text found in this image. The image may not contain text, or the text may be too blurry or small to read.")
	case !outcome.Evaluated:
		l.reply(msg, "Answer too short to evaluate. Please provide a more detailed response.")
	default:
		l.reply(msg, fmt.Sprintf("ANSWER EVALUATION\n\nScore: %d/5\nFeedback: %s",
			outcome.Result.Score, outcome.Result.Reason))
		l.logger.Info().Int("score", outcome.Result.Score).Msg("evaluation sent")
	}
}

func (l *Listener) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	if _, err := l.bot.Send(out); err != nil {
		l.logger.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("failed to send reply")
	}
}

func (l *Listener) sendTyping(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := l.bot.Request(action); err != nil {
		l.logger.Debug().Err(err).Msg("failed to send typing action")
	}
}

func largestPhoto(photos []tgbotapi.PhotoSize) tgbotapi.PhotoSize {
	largest := photos[0]
	for _, p := range photos[1:] {
		if p.FileSize > largest.FileSize {
			largest = p
		}
	}
	return largest
}

// entryFromMessage maps a Telegram message onto a structured log entry.
func entryFromMessage(msg *tgbotapi.Message) msglog.Entry {
	entry := msglog.Entry{
		Timestamp:   time.Now(),
		MessageID:   msg.MessageID,
		ChatID:      msg.Chat.ID,
		ChatTitle:   msg.Chat.Title,
		ChatType:    msg.Chat.Type,
		Text:        msg.Text,
		MessageType: "text",
	}

	if msg.From != nil {
		entry.UserID = msg.From.ID
		entry.Username = msg.From.UserName
		entry.FirstName = msg.From.FirstName
		entry.LastName = msg.From.LastName
		if entry.ChatTitle == "" {
			entry.ChatTitle = strings.TrimSpace(msg.From.FirstName + " " + msg.From.LastName)
		}
	}

	switch {
	case len(msg.Photo) > 0:
		entry.MessageType = "photo"
		entry.HasMedia = true
		entry.Text = msg.Caption
		if entry.Text == "" {
			entry.Text = "[Photo]"
		}
	case msg.Document != nil:
		entry.MessageType = "document"
		entry.HasMedia = true
		entry.Text = fmt.Sprintf("[Document: %s]", msg.Document.FileName)
	case msg.Audio != nil:
		entry.MessageType = "audio"
		entry.HasMedia = true
		entry.Text = "[Audio]"
	case msg.Video != nil:
		entry.MessageType = "video"
		entry.HasMedia = true
		entry.Text = "[Video]"
	case msg.Voice != nil:
		entry.MessageType = "voice"
		entry.HasMedia = true
		entry.Text = "[Voice Message]"
	case msg.Location != nil:
		entry.MessageType = "location"
		entry.Text = fmt.Sprintf("[Location: %f, %f]", msg.Location.Latitude, msg.Location.Longitude)
	case msg.Sticker != nil:
		entry.MessageType = "sticker"
		entry.HasMedia = true
		entry.Text = fmt.Sprintf("[Sticker: %s]", msg.Sticker.Emoji)
	}

	return entry
}
