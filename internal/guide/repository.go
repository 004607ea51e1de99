package guide

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/models"
)

// Extractor converts one image file into text.
type Extractor interface {
	ExtractText(ctx context.Context, imagePath string) (string, error)
}

// Repository holds the reference guide sections extracted from a folder of
// images. The folder is scanned at most once per process lifetime.
type Repository struct {
	folder    string
	extractor Extractor
	logger    *zerolog.Logger

	mu        sync.Mutex
	attempted bool
	loaded    bool
	sections  []models.GuideSection
}

func NewRepository(folder string, extractor Extractor, logger *zerolog.Logger) *Repository {
	return &Repository{
		folder:    folder,
		extractor: extractor,
		logger:    logger,
	}
}

// Load ingests the guide folder and reports whether any section was loaded.
// The first caller performs the load; concurrent and later callers get the
// cached outcome.
func (r *Repository) Load(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.attempted {
		return r.loaded
	}
	r.attempted = true
	r.loaded = r.load(ctx)
	return r.loaded
}

// Sections returns the loaded guide sections in ingestion order.
func (r *Repository) Sections() []models.GuideSection {
	r.mu.Lock()
	defer r.mu.Unlock()

	sections := make([]models.GuideSection, len(r.sections))
	copy(sections, r.sections)
	return sections
}

func (r *Repository) load(ctx context.Context) bool {
	entries, err := os.ReadDir(r.folder)
	if err != nil {
		r.logger.Warn().Err(err).Str("folder", r.folder).
			Msg("guide folder not found, evaluation will proceed without reference material")
		return false
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpeg", ".jpg", ".png":
			files = append(files, entry.Name())
		}
	}

	if len(files) == 0 {
		r.logger.Warn().Str("folder", r.folder).Msg("no guide images found in guide folder")
		return false
	}

	// os.ReadDir returns entries sorted by filename, which fixes ingestion order.
	r.logger.Info().Int("count", len(files)).Msg("loading guide files")

	for _, name := range files {
		path := filepath.Join(r.folder, name)
		content, err := r.extractor.ExtractText(ctx, path)
		if err != nil {
			r.logger.Error().Err(err).Str("file", name).Msg("error processing guide file")
			continue
		}

		content = strings.TrimSpace(content)
		if content == "" {
			r.logger.Warn().Str("file", name).Msg("no text extracted from guide file")
			continue
		}

		r.sections = append(r.sections, models.GuideSection{
			SourceID: name,
			Content:  content,
		})
		r.logger.Info().Str("file", name).Int("chars", len(content)).Msg("loaded guide content")
	}

	if len(r.sections) == 0 {
		r.logger.Warn().Msg("no guide content could be extracted")
		return false
	}

	r.logger.Info().Int("sections", len(r.sections)).Msg("guide content loaded")
	return true
}
