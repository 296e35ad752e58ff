// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the fixed ordered list of brief sections and builds
// the retrieval prompt for each one. The catalog is defined once at process
// start and never mutated: primary topics first, then the regional sections,
// then the synthesized deep-dive section.
package catalog

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

// promptSuffixTmpl is appended to every non-deep-dive section prompt. It asks
// the retrieval service for a target number of stories in a fixed markdown
// convention; the service self-selects the actual count.
var promptSuffixTmpl = template.Must(template.New("suffix").Parse(
	"\n\nProvide {{.Count}} of the most important and newsworthy stories. " +
		"Focus on stories that are moving the needle, not fluff. " +
		"Be concise but informative. " +
		"Format each story as: **Title**: Brief summary (1-2 sentences)."))

// deepDiveTmpl wraps the deep-dive section's framing together with the
// combined output of all preceding sections.
var deepDiveTmpl = template.Must(template.New("deepdive").Parse(
	"{{.Framing}}\n\nToday's gathered sections:\n\n{{.Context}}"))

// BuildPrompt substitutes the section's target story count into the shared
// instruction suffix and appends it to the section's topic framing. Pure
// function; a malformed suffix template is a programming error caught at
// package init.
func BuildPrompt(spec types.SectionSpec) string {
	var buf bytes.Buffer
	if err := promptSuffixTmpl.Execute(&buf, struct{ Count int }{Count: spec.TargetStoryCount}); err != nil {
		panic("catalog: prompt suffix template: " + err.Error())
	}
	return strings.TrimSpace(spec.PromptTemplate) + buf.String()
}

// BuildDeepDivePrompt builds the prompt for the synthesized final section
// from its framing and the concatenated output of every preceding section.
// Callers must not invoke it before all other sections have produced a block.
func BuildDeepDivePrompt(spec types.SectionSpec, context string) string {
	var buf bytes.Buffer
	data := struct{ Framing, Context string }{
		Framing: strings.TrimSpace(spec.PromptTemplate),
		Context: context,
	}
	if err := deepDiveTmpl.Execute(&buf, data); err != nil {
		panic("catalog: deep-dive template: " + err.Error())
	}
	return buf.String()
}

// Default returns the built-in catalog in its fixed order.
func Default() []types.SectionSpec {
	return []types.SectionSpec{
		{
			ID:          "ai-tech",
			DisplayName: "ARTIFICIAL INTELLIGENCE & TECHNOLOGY",
			PromptTemplate: "Search for the top 3 most important AI and technology news stories from the past 24 hours. " +
				"Focus on: new AI model releases, major tech company announcements, AI policy/regulation, " +
				"breakthrough research, significant product launches, or major industry shifts.",
			TargetStoryCount: 3,
			StyleTag:         types.StyleContent,
		},
		{
			ID:          "finance",
			DisplayName: "FINANCE & MARKETS",
			PromptTemplate: "Search for the top 3 most important financial and market news stories from the past 24 hours. " +
				"Focus on: major market movements, Federal Reserve or central bank decisions, significant " +
				"corporate earnings or announcements, economic policy changes, crypto developments, or major " +
				"sector shifts.",
			TargetStoryCount: 3,
			StyleTag:         types.StyleContent,
		},
		{
			ID:          "real-estate",
			DisplayName: "REAL ESTATE",
			PromptTemplate: "Search for the top 3 most important real estate news stories from the past 24 hours. " +
				"Focus on: residential and commercial real estate markets, major policy changes, significant " +
				"transactions, market trend shifts, or regulatory developments.",
			TargetStoryCount: 3,
			StyleTag:         types.StyleContent,
		},
		{
			ID:          "hacker-news",
			DisplayName: "HACKER NEWS HIGHLIGHTS",
			PromptTemplate: "Search for the top stories on Hacker News from the past 24 hours. " +
				"Focus on the most interesting technical discussions, product launches, or thought-provoking " +
				"articles. Avoid 'Show HN' posts unless exceptionally noteworthy. Pick 2-3 stories.",
			TargetStoryCount: 3,
			StyleTag:         types.StyleContent,
		},
		{
			ID:          "north-america",
			DisplayName: "NORTH AMERICA",
			PromptTemplate: "Search for 2-3 needle-moving news stories from North America (US, Canada, Mexico) " +
				"in the past 24 hours that are NOT being widely covered by mainstream media like CNN or BBC. " +
				"Focus on local sources, regional developments, policy changes, or significant events that mainstream " +
				"media is missing or underreporting.",
			TargetStoryCount: 3,
			StyleTag:         types.StyleContent,
		},
		{
			ID:          "europe",
			DisplayName: "EUROPE",
			PromptTemplate: "Search for 2-3 needle-moving news stories from Europe in the past 24 hours that are NOT " +
				"being widely covered by mainstream media like BBC or major EU outlets. Focus on local sources, " +
				"regional political developments, economic changes, or significant events that mainstream media " +
				"is missing or underreporting.",
			TargetStoryCount: 3,
			StyleTag:         types.StyleContent,
		},
		{
			ID:          "asia-pacific",
			DisplayName: "ASIA-PACIFIC",
			PromptTemplate: "Search for 2-3 needle-moving news stories from Asia-Pacific region in the past 24 hours " +
				"that are NOT being widely covered by mainstream Western media. Focus on local sources, regional " +
				"political developments, economic changes, or significant events that mainstream media is missing.",
			TargetStoryCount: 3,
			StyleTag:         types.StyleContent,
		},
		{
			ID:          "middle-east-africa",
			DisplayName: "MIDDLE EAST & AFRICA",
			PromptTemplate: "Search for 2-3 needle-moving news stories from Middle East and Africa in the " +
				"past 24 hours that are NOT being widely covered by mainstream Western media. Focus on local sources, " +
				"regional developments, policy changes, or significant events that mainstream media is missing.",
			TargetStoryCount: 3,
			StyleTag:         types.StyleContent,
		},
		{
			ID:          "latin-america",
			DisplayName: "LATIN AMERICA",
			PromptTemplate: "Search for 2-3 needle-moving news stories from Latin America in the past 24 hours " +
				"that are NOT being widely covered by mainstream media. Focus on local sources, regional political " +
				"and economic developments, or significant events that mainstream media is missing.",
			TargetStoryCount: 3,
			StyleTag:         types.StyleContent,
		},
		{
			ID:          "deep-dive",
			DisplayName: "DEEP DIVE",
			PromptTemplate: "From the stories gathered below, pick 1-2 that are worth a deeper read and explain " +
				"why they matter: second-order effects, who wins and loses, and what to watch next. " +
				"Sections that failed to retrieve are marked as errors; work with what succeeded.",
			TargetStoryCount: 2,
			StyleTag:         types.StyleContent,
			DeepDive:         true,
		},
	}
}

// Validate checks the catalog-order contract: at least one section, unique
// IDs, and at most one deep-dive section which must come last.
func Validate(specs []types.SectionSpec) error {
	if len(specs) == 0 {
		return errEmptyCatalog
	}
	seen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		if spec.ID == "" {
			return &InvalidCatalogError{Reason: "section with empty id"}
		}
		if seen[spec.ID] {
			return &InvalidCatalogError{Reason: "duplicate section id " + spec.ID}
		}
		seen[spec.ID] = true
		if spec.DeepDive && i != len(specs)-1 {
			return &InvalidCatalogError{Reason: "deep-dive section " + spec.ID + " is not last"}
		}
	}
	return nil
}
