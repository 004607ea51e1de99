package guide

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/models"
)

// NoGuideSentinel is returned when the repository holds no sections. Callers
// treat it as valid grading context, not an error.
const NoGuideSentinel = "No reference guide available."

const (
	sectionCharLimit  = 800
	fallbackCharLimit = 1000
)

// SectionSource yields guide sections in ingestion order.
type SectionSource interface {
	Sections() []models.GuideSection
}

// Selector picks the guide sections most relevant to an answer using plain
// keyword overlap. No stemming or synonym matching; a deliberate simplicity
// trade-off.
type Selector struct {
	source SectionSource
	logger *zerolog.Logger
}

func NewSelector(source SectionSource, logger *zerolog.Logger) *Selector {
	return &Selector{
		source: source,
		logger: logger,
	}
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "can": true,
	"this": true, "that": true, "these": true, "those": true,
}

type scoredSection struct {
	overlap int
	section models.GuideSection
}

// SelectContext builds a bounded context string from the sections that share
// the most keywords with the answer text.
func (s *Selector) SelectContext(answerText string, maxSections int) string {
	sections := s.source.Sections()
	if len(sections) == 0 {
		return NoGuideSentinel
	}

	keywords := answerKeywords(answerText)

	var scored []scoredSection
	for _, section := range sections {
		overlap := overlapCount(keywords, section.Content)
		if overlap > 0 {
			scored = append(scored, scoredSection{overlap: overlap, section: section})
		}
	}

	if len(scored) == 0 {
		// No keyword overlap: fall back to the first guide section.
		first := sections[0]
		return fmt.Sprintf("Reference Guide (%s):\n%s...", first.SourceID, truncate(first.Content, fallbackCharLimit))
	}

	// Ties keep ingestion order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].overlap > scored[j].overlap
	})

	if len(scored) > maxSections {
		scored = scored[:maxSections]
	}

	parts := make([]string, 0, len(scored))
	for _, sc := range scored {
		parts = append(parts, fmt.Sprintf("Guide %s (relevance: %d):\n%s",
			sc.section.SourceID, sc.overlap, truncate(sc.section.Content, sectionCharLimit)))
	}

	s.logger.Debug().Int("sections", len(parts)).Msg("relevant guide context selected")
	return strings.Join(parts, "\n\n")
}

// answerKeywords tokenizes the answer into a lowercase word set with common
// function words removed.
func answerKeywords(text string) map[string]bool {
	keywords := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if !stopWords[word] {
			keywords[word] = true
		}
	}
	return keywords
}

// overlapCount is the number of distinct answer keywords present in the
// section's full token set. The guide side keeps its stop words.
func overlapCount(keywords map[string]bool, content string) int {
	sectionWords := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(content)) {
		sectionWords[word] = true
	}

	count := 0
	for kw := range keywords {
		if sectionWords[kw] {
			count++
		}
	}
	return count
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
