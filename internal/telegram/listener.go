package telegram

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/executor"
	"github.com/answersheet/gradebot/internal/msglog"
)

const downloadTimeout = 30 * time.Second

// Listener runs the long-polling bot loop and feeds incoming answer images
// through the grading pipeline.
type Listener struct {
	bot        *tgbotapi.BotAPI
	pipeline   *executor.Pipeline
	store      *msglog.Store
	httpClient *http.Client
	tempDir    string
	ocrEnabled atomic.Bool
	logger     *zerolog.Logger
}

func NewListener(token string, pipeline *executor.Pipeline, store *msglog.Store, logger *zerolog.Logger) (*Listener, error) {
	if token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("unable to create bot client: %w", err)
	}

	tempDir := filepath.Join(os.TempDir(), "telegram_images")
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create temp dir: %w", err)
	}

	l := &Listener{
		bot:        bot,
		pipeline:   pipeline,
		store:      store,
		httpClient: &http.Client{Timeout: downloadTimeout},
		tempDir:    tempDir,
		logger:     logger,
	}
	l.ocrEnabled.Store(true)
	return l, nil
}

// SetOCREnabled toggles image processing; used by startup when the backend
// probe fails.
func (l *Listener) SetOCREnabled(enabled bool) {
	l.ocrEnabled.Store(enabled)
}

// Run polls for updates until the context is cancelled. Each image pipeline
// runs on its own goroutine so one grading call never blocks the update loop.
func (l *Listener) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := l.bot.GetUpdatesChan(u)

	l.logger.Info().Str("bot", l.bot.Self.UserName).Msg("listening for messages")

	for {
		select {
		case <-ctx.Done():
			l.bot.StopReceivingUpdates()
			l.CleanupTempFiles()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			l.handleMessage(ctx, update.Message)
		}
	}
}

// CleanupTempFiles removes any leftover downloaded images.
func (l *Listener) CleanupTempFiles() {
	entries, err := os.ReadDir(l.tempDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			_ = os.Remove(filepath.Join(l.tempDir, entry.Name()))
		}
	}
}
