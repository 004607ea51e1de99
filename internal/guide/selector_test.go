package guide

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/models"
)

type staticSource struct {
	sections []models.GuideSection
}

func (s staticSource) Sections() []models.GuideSection {
	return s.sections
}

func newTestSelector(sections ...models.GuideSection) *Selector {
	logger := zerolog.Nop()
	return NewSelector(staticSource{sections: sections}, &logger)
}

func TestSelectContextNoSections(t *testing.T) {
	selector := newTestSelector()

	got := selector.SelectContext("photosynthesis converts light energy", 2)
	if got != NoGuideSentinel {
		t.Errorf("expected sentinel %q, got %q", NoGuideSentinel, got)
	}
}

func TestSelectContextRanksByOverlap(t *testing.T) {
	selector := newTestSelector(
		models.GuideSection{SourceID: "g1.jpg", Content: "photosynthesis happens in chloroplasts"},
		models.GuideSection{SourceID: "g2.jpg", Content: "photosynthesis converts light energy into glucose using chlorophyll"},
		models.GuideSection{SourceID: "g3.jpg", Content: "newton's laws of motion describe forces"},
	)

	got := selector.SelectContext("photosynthesis converts light energy into glucose", 2)

	if strings.Contains(got, "g3.jpg") {
		t.Errorf("section without overlap should be excluded: %q", got)
	}
	g1 := strings.Index(got, "Guide g1.jpg")
	g2 := strings.Index(got, "Guide g2.jpg")
	if g1 == -1 || g2 == -1 {
		t.Fatalf("expected both overlapping sections, got %q", got)
	}
	if g2 > g1 {
		t.Errorf("higher-overlap section should come first: %q", got)
	}
	if !strings.Contains(got, "Guide g2.jpg (relevance: 6):") {
		t.Errorf("expected relevance count 6 for g2.jpg, got %q", got)
	}
}

func TestSelectContextHonorsMaxSections(t *testing.T) {
	selector := newTestSelector(
		models.GuideSection{SourceID: "g1.jpg", Content: "cell membrane transport"},
		models.GuideSection{SourceID: "g2.jpg", Content: "cell membrane transport osmosis"},
		models.GuideSection{SourceID: "g3.jpg", Content: "cell membrane transport osmosis diffusion"},
	)

	got := selector.SelectContext("cell membrane transport osmosis diffusion", 2)
	if count := strings.Count(got, "Guide g"); count != 2 {
		t.Errorf("expected 2 sections, got %d in %q", count, got)
	}
	if strings.Contains(got, "g1.jpg") {
		t.Errorf("lowest-overlap section should be dropped: %q", got)
	}
}

func TestSelectContextZeroOverlapFallsBackToFirstSection(t *testing.T) {
	selector := newTestSelector(
		models.GuideSection{SourceID: "g1.jpg", Content: "thermodynamics entropy enthalpy"},
		models.GuideSection{SourceID: "g2.jpg", Content: "kinematics velocity acceleration"},
	)

	got := selector.SelectContext("unrelated answer about cooking pasta", 2)
	if !strings.HasPrefix(got, "Reference Guide (g1.jpg):\n") {
		t.Errorf("expected fallback to the first section, got %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("fallback context should end with an ellipsis, got %q", got)
	}
}

func TestSelectContextTruncatesLongSections(t *testing.T) {
	long := strings.Repeat("respiration ", 200)
	selector := newTestSelector(
		models.GuideSection{SourceID: "g1.jpg", Content: long},
	)

	got := selector.SelectContext("respiration in cells", 1)
	header := "Guide g1.jpg (relevance: 1):\n"
	if !strings.HasPrefix(got, header) {
		t.Fatalf("unexpected context format: %q", got)
	}
	body := strings.TrimPrefix(got, header)
	if len([]rune(body)) != 800 {
		t.Errorf("expected section body truncated to 800 chars, got %d", len([]rune(body)))
	}
}

func TestSelectContextIgnoresStopWords(t *testing.T) {
	selector := newTestSelector(
		models.GuideSection{SourceID: "g1.jpg", Content: "the and of with is are"},
		models.GuideSection{SourceID: "g2.jpg", Content: "enzyme catalysis lowers activation energy"},
	)

	got := selector.SelectContext("the enzyme is a catalyst and it lowers the activation energy of the reaction", 2)
	if strings.Contains(got, "Guide g1.jpg") {
		t.Errorf("stop-word-only section should not match: %q", got)
	}
	if !strings.Contains(got, "Guide g2.jpg") {
		t.Errorf("expected the content section to match: %q", got)
	}
}

func TestAnswerKeywords(t *testing.T) {
	keywords := answerKeywords("The cell membrane IS a barrier and the membrane regulates transport")

	for _, stop := range []string{"the", "is", "a", "and"} {
		if keywords[stop] {
			t.Errorf("stop word %q should be filtered", stop)
		}
	}
	for _, kw := range []string{"cell", "membrane", "barrier", "regulates", "transport"} {
		if !keywords[kw] {
			t.Errorf("expected keyword %q", kw)
		}
	}
}
