// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

func sampleBlocks() []types.FormattedBlock {
	return []types.FormattedBlock{
		{SectionID: "ai-tech", Heading: "AI & TECH", Body: "**A**: one.", StyleTag: types.StyleContent, OK: true},
		{SectionID: "finance", Heading: "FINANCE", Body: "Error retrieving news for this section: quota: over budget", StyleTag: types.StyleContent},
		{SectionID: "europe", Heading: "EUROPE", Body: "**B**: two.", StyleTag: types.StyleContent, OK: true},
	}
}

func TestDocumentPreservesBlocks(t *testing.T) {
	ts := time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC)
	blocks := sampleBlocks()

	doc := Document("DAILY INTELLIGENCE BRIEF", ts, blocks)

	if doc.Title != "DAILY INTELLIGENCE BRIEF" || !doc.GeneratedAt.Equal(ts) {
		t.Errorf("document header = %q/%v", doc.Title, doc.GeneratedAt)
	}
	if len(doc.Blocks) != len(blocks) {
		t.Fatalf("block count = %d, want %d", len(doc.Blocks), len(blocks))
	}
	for i := range blocks {
		if doc.Blocks[i] != blocks[i] {
			t.Errorf("block %d reordered or altered: %+v", i, doc.Blocks[i])
		}
	}
}

func TestDocumentIsIdempotent(t *testing.T) {
	ts := time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC)
	blocks := sampleBlocks()

	first := Document("T", ts, blocks)
	second := Document("T", ts, blocks)

	if !reflect.DeepEqual(first, second) {
		t.Error("assembling the same blocks twice must produce identical documents")
	}
}

func TestDocumentCopiesBlocks(t *testing.T) {
	ts := time.Now()
	blocks := sampleBlocks()
	doc := Document("T", ts, blocks)

	blocks[0].Body = "mutated"
	if doc.Blocks[0].Body == "mutated" {
		t.Error("document must not share backing storage with the input slice")
	}
}

func TestDeepDiveContext(t *testing.T) {
	context := DeepDiveContext(sampleBlocks())

	for _, want := range []string{"## AI & TECH", "## FINANCE", "## EUROPE", "**A**: one.", "Error retrieving news"} {
		if !strings.Contains(context, want) {
			t.Errorf("context missing %q:\n%s", want, context)
		}
	}
	// Catalog order survives into the context.
	if strings.Index(context, "## AI & TECH") > strings.Index(context, "## EUROPE") {
		t.Error("context sections out of catalog order")
	}
}

func TestDeepDiveContextCapsVerboseSections(t *testing.T) {
	long := strings.Repeat("x", deepDiveContextCap*3)
	blocks := []types.FormattedBlock{
		{SectionID: "a", Heading: "A", Body: long, OK: true},
		{SectionID: "b", Heading: "B", Body: "short", OK: true},
	}

	context := DeepDiveContext(blocks)

	if len([]rune(context)) > deepDiveContextCap+len("## A\n\n")+len("\n\n## B\n\nshort")+1 {
		t.Errorf("verbose section not capped, context is %d runes", len([]rune(context)))
	}
	if !strings.Contains(context, "short") {
		t.Error("capping one section must not drop the next")
	}
	if !strings.Contains(context, "…") {
		t.Error("truncation should be visible")
	}
}

func TestDeepDiveContextEmpty(t *testing.T) {
	if got := DeepDiveContext(nil); got != "" {
		t.Errorf("empty block list should yield empty context, got %q", got)
	}
}
