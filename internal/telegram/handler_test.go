package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestLargestPhoto(t *testing.T) {
	photos := []tgbotapi.PhotoSize{
		{FileID: "small", FileSize: 1024},
		{FileID: "large", FileSize: 90000},
		{FileID: "medium", FileSize: 20000},
	}

	if got := largestPhoto(photos); got.FileID != "large" {
		t.Errorf("expected the largest photo, got %q", got.FileID)
	}

	single := []tgbotapi.PhotoSize{{FileID: "only", FileSize: 10}}
	if got := largestPhoto(single); got.FileID != "only" {
		t.Errorf("expected the only photo, got %q", got.FileID)
	}
}

func TestEntryFromTextMessage(t *testing.T) {
	msg := &tgbotapi.Message{
		MessageID: 42,
		Chat:      &tgbotapi.Chat{ID: 100, Title: "Biology Group", Type: "group"},
		From:      &tgbotapi.User{ID: 200, UserName: "student1", FirstName: "Alex", LastName: "Kim"},
		Text:      "the mitochondria is the powerhouse of the cell",
	}

	entry := entryFromMessage(msg)
	if entry.MessageID != 42 || entry.ChatID != 100 || entry.UserID != 200 {
		t.Errorf("unexpected identifiers in %+v", entry)
	}
	if entry.MessageType != "text" || entry.HasMedia {
		t.Errorf("expected a plain text entry, got %+v", entry)
	}
	if entry.Text != msg.Text {
		t.Errorf("unexpected text %q", entry.Text)
	}
	if entry.ChatTitle != "Biology Group" {
		t.Errorf("unexpected chat title %q", entry.ChatTitle)
	}
}

func TestEntryFromPrivateChatUsesUserName(t *testing.T) {
	msg := &tgbotapi.Message{
		MessageID: 1,
		Chat:      &tgbotapi.Chat{ID: 100, Type: "private"},
		From:      &tgbotapi.User{ID: 200, FirstName: "Alex", LastName: "Kim"},
		Text:      "hello",
	}

	entry := entryFromMessage(msg)
	if entry.ChatTitle != "Alex Kim" {
		t.Errorf("expected the sender name as chat title, got %q", entry.ChatTitle)
	}
}

func TestEntryFromPhotoMessage(t *testing.T) {
	msg := &tgbotapi.Message{
		MessageID: 2,
		Chat:      &tgbotapi.Chat{ID: 100, Type: "private"},
		From:      &tgbotapi.User{ID: 200, FirstName: "Alex"},
		Photo:     []tgbotapi.PhotoSize{{FileID: "p1", FileSize: 1000}},
	}

	entry := entryFromMessage(msg)
	if entry.MessageType != "photo" || !entry.HasMedia {
		t.Errorf("expected a photo entry, got %+v", entry)
	}
	if entry.Text != "[Photo]" {
		t.Errorf("expected photo placeholder text, got %q", entry.Text)
	}

	msg.Caption = "my answer to question 3"
	entry = entryFromMessage(msg)
	if entry.Text != "my answer to question 3" {
		t.Errorf("expected the caption as text, got %q", entry.Text)
	}
}

func TestEntryFromDocumentMessage(t *testing.T) {
	msg := &tgbotapi.Message{
		MessageID: 3,
		Chat:      &tgbotapi.Chat{ID: 100, Type: "private"},
		From:      &tgbotapi.User{ID: 200, FirstName: "Alex"},
		Document:  &tgbotapi.Document{FileID: "d1", FileName: "answer.png", MimeType: "image/png"},
	}

	entry := entryFromMessage(msg)
	if entry.MessageType != "document" || !entry.HasMedia {
		t.Errorf("expected a document entry, got %+v", entry)
	}
	if entry.Text != "[Document: answer.png]" {
		t.Errorf("unexpected text %q", entry.Text)
	}
}

func TestEntryFromVoiceMessage(t *testing.T) {
	msg := &tgbotapi.Message{
		MessageID: 4,
		Chat:      &tgbotapi.Chat{ID: 100, Type: "private"},
		From:      &tgbotapi.User{ID: 200, FirstName: "Alex"},
		Voice:     &tgbotapi.Voice{FileID: "v1"},
	}

	entry := entryFromMessage(msg)
	if entry.MessageType != "voice" || !entry.HasMedia {
		t.Errorf("expected a voice entry, got %+v", entry)
	}
	if entry.Text != "[Voice Message]" {
		t.Errorf("unexpected text %q", entry.Text)
	}
}
