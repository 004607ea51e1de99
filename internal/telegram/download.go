package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// downloadFile fetches one Telegram file into the temp dir and returns its
// local path. The caller removes the file when done.
func (l *Listener) downloadFile(ctx context.Context, fileID string) (string, error) {
	fileURL, err := l.bot.GetFileDirectURL(fileID)
	if err != nil {
		return "", fmt.Errorf("unable to resolve file %s: %w", fileID, err)
	}

	ext := path.Ext(fileURL)
	if ext == "" {
		ext = ".jpg"
	}
	localPath := filepath.Join(l.tempDir, sanitizeFileID(fileID)+ext)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", fmt.Errorf("unable to build download request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("unable to create local file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = os.Remove(localPath)
		return "", fmt.Errorf("unable to write local file: %w", err)
	}

	l.logger.Info().Str("path", localPath).Msg("downloaded image")
	return localPath, nil
}

func (l *Listener) removeFile(path string) {
	if err := os.Remove(path); err != nil {
		l.logger.Debug().Err(err).Str("path", path).Msg("failed to remove temp file")
	}
}

// File IDs are opaque; keep only characters safe for a filename.
func sanitizeFileID(fileID string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, fileID)
}
