package timeline

import (
	"fmt"
	"testing"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
	"github.com/not-lavanya/janeaustenstoryteller/internal/random"
)

func TestIsCandidateKeyword(t *testing.T) {
	if !IsCandidate("They arrived at the assembly rooms.", nil, Keywords) {
		t.Fatal("'arrived' should mark a candidate")
	}
	if !IsCandidate("An invitation to the BALL was delivered.", nil, Keywords) {
		t.Fatal("keyword matching should be case-insensitive")
	}
	if IsCandidate("The weather was unremarkable.", nil, Keywords) {
		t.Fatal("paragraph without keywords or names is not a candidate")
	}
}

func TestIsCandidateCharacterName(t *testing.T) {
	names := []string{"Elizabeth Bennet"}
	if !IsCandidate("elizabeth bennet walked out early.", names, nil) {
		t.Fatal("name matching should be case-insensitive")
	}
	if IsCandidate("Nobody of consequence was present.", names, nil) {
		t.Fatal("unmentioned name should not match")
	}
}

func TestIsCandidateSkipsEmptyNames(t *testing.T) {
	// A character record without a name must not match every paragraph.
	if IsCandidate("A quiet morning in the parlour.", []string{""}, nil) {
		t.Fatal("empty name matched")
	}
}

func storyParagraphs(n int) []string {
	paras := make([]string, n)
	for i := range paras {
		paras[i] = fmt.Sprintf("Paragraph %d of the tale describes a ball in the evening.", i)
	}
	return paras
}

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(random.New(seed))
}

func TestSelectSignificantRange(t *testing.T) {
	g := newTestGenerator(7)
	paras := storyParagraphs(20)

	selected := g.selectSignificant(paras, 6)
	if len(selected) != 6 {
		t.Fatalf("expected 6 selections, got %d", len(selected))
	}
	for _, idx := range selected {
		if idx < introSkip || idx >= len(paras) {
			t.Fatalf("index %d outside [%d, %d)", idx, introSkip, len(paras))
		}
	}
}

func TestSelectSignificantFewCandidates(t *testing.T) {
	// No keywords and no characters: the fallback distributes across the
	// whole post-introduction range.
	g := newTestGenerator(11)
	paras := make([]string, 15)
	for i := range paras {
		paras[i] = fmt.Sprintf("Quiet paragraph %d with nothing of note.", i)
	}

	selected := g.selectSignificant(paras, 5)
	if len(selected) != 5 {
		t.Fatalf("expected 5 selections, got %d", len(selected))
	}
	for _, idx := range selected {
		if idx < introSkip || idx >= len(paras) {
			t.Fatalf("index %d outside fallback range", idx)
		}
	}
}

func TestSelectSignificantShortStory(t *testing.T) {
	g := newTestGenerator(3)
	paras := storyParagraphs(3) // fewer paragraphs than the intro skip

	selected := g.selectSignificant(paras, 6)
	if len(selected) == 0 {
		t.Fatal("short story should still yield at least one selection")
	}
	for _, idx := range selected {
		if idx < 2 || idx >= 3 {
			t.Fatalf("short story index %d outside [2, 3)", idx)
		}
	}
}

func TestSelectSignificantEmpty(t *testing.T) {
	g := newTestGenerator(1)
	if got := g.selectSignificant(nil, 5); got != nil {
		t.Fatalf("expected nil for empty story, got %v", got)
	}
}

func TestSelectSignificantUsesCharacterNames(t *testing.T) {
	g := newTestGenerator(5)
	g.SetCharacters([]model.Character{{Name: "Anne Elliot"}})

	paras := make([]string, 30)
	for i := range paras {
		paras[i] = fmt.Sprintf("Plain paragraph %d.", i)
	}
	// Only these paragraphs mention the character; with enough of them,
	// selection stays within the candidate set.
	mentions := map[int]bool{}
	for i := 5; i < 30; i += 3 {
		paras[i] = fmt.Sprintf("Anne Elliot considered the matter in paragraph %d.", i)
		mentions[i] = true
	}

	selected := g.selectSignificant(paras, 6)
	if len(selected) != 6 {
		t.Fatalf("expected 6 selections, got %d", len(selected))
	}
	for _, idx := range selected {
		if !mentions[idx] {
			t.Fatalf("selected paragraph %d does not mention the character: %q", idx, paras[idx])
		}
	}
}

func TestDistributeSpreads(t *testing.T) {
	g := newTestGenerator(9)
	candidates := make([]int, 0, 46)
	for i := 4; i < 50; i++ {
		candidates = append(candidates, i)
	}

	selected := g.distribute(candidates, 5, 4, 50)
	if len(selected) != 5 {
		t.Fatalf("expected 5, got %d", len(selected))
	}
	// One pick per section: strictly increasing when every section has
	// candidates.
	for i := 1; i < len(selected); i++ {
		if selected[i] <= selected[i-1] {
			t.Fatalf("selections not spread: %v", selected)
		}
	}
}

func TestDistributeFewerCandidatesThanTarget(t *testing.T) {
	g := newTestGenerator(2)
	candidates := []int{4, 9, 12}
	selected := g.distribute(candidates, 7, 4, 20)
	if len(selected) != 3 {
		t.Fatalf("expected all candidates back, got %v", selected)
	}
}

func TestDistributeEmptySectionBorrowsClosest(t *testing.T) {
	g := newTestGenerator(4)
	// All candidates cluster at the start; later sections must borrow.
	candidates := []int{4, 5, 6, 7, 8}
	selected := g.distribute(candidates, 4, 4, 40)
	if len(selected) != 4 {
		t.Fatalf("expected 4 selections, got %v", selected)
	}
	for _, idx := range selected {
		if idx < 4 || idx > 8 {
			t.Fatalf("selection %d is not a candidate", idx)
		}
	}
}
