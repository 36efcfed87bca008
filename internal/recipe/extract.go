// Package recipe turns assistant replies into structured recipe data.
//
// The assistant is instructed to format recipes with fixed markdown-style
// section markers. Adherence is best-effort on the model's side, so
// extraction always succeeds: text without the start marker is plain prose,
// and missing sections degrade to empty fields.
package recipe

import (
	"regexp"
	"strings"

	"github.com/lifeofnimah/host-with-nimah/internal/model"
)

const (
	// FallbackTitle is used when the start marker carries no title text.
	FallbackTitle = "Chef's Selection"

	startMarker = "# Recipe:"

	markerDescription  = "## Description"
	markerPrepInfo     = "## Prep Info"
	markerIngredients  = "## Ingredients"
	markerInstructions = "## Instructions"
	markerPlating      = "## Plating"
)

var stepPrefix = regexp.MustCompile(`^\d+\.\s*`)

// Extraction is the result of inspecting one assistant message.
// IsRecipe reports whether a recipe block was found; when false the whole
// message is conversational prose and the other fields are zero.
type Extraction struct {
	IsRecipe    bool          `json:"is_recipe"`
	LeadingText string        `json:"leading_text,omitempty"`
	Recipe      *model.Recipe `json:"recipe,omitempty"`
}

// Extract scans text for a recipe block. Everything before the first
// "# Recipe:" marker becomes leading prose; the remainder is split into
// sections by scanning lines and routing content to the most recently
// recognized section marker. A marker appearing out of the usual order
// still lands its content in the right field.
func Extract(text string) Extraction {
	start := strings.Index(text, startMarker)
	if start == -1 {
		return Extraction{}
	}

	leading := strings.TrimSpace(text[:start])
	region := text[start:]

	sections := make(map[string][]string)
	var title, current string

	for i, line := range strings.Split(region, "\n") {
		trimmed := strings.TrimSpace(line)
		if i == 0 {
			title = strings.TrimSpace(strings.TrimPrefix(trimmed, startMarker))
			continue
		}
		if marker, ok := matchMarker(trimmed); ok {
			current = marker
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	if title == "" {
		title = FallbackTitle
	}

	rec := model.Recipe{
		Title:        title,
		Description:  joinTrimmed(sections[markerDescription]),
		PrepInfo:     bulletLines(sections[markerPrepInfo]),
		Ingredients:  bulletLines(sections[markerIngredients]),
		Instructions: numberedLines(sections[markerInstructions]),
		Plating:      joinTrimmed(sections[markerPlating]),
	}

	return Extraction{IsRecipe: true, LeadingText: leading, Recipe: &rec}
}

func matchMarker(trimmed string) (string, bool) {
	for _, marker := range []string{
		markerDescription,
		markerPrepInfo,
		markerIngredients,
		markerInstructions,
		markerPlating,
	} {
		if strings.HasPrefix(trimmed, marker) {
			return marker, true
		}
	}
	return "", false
}

func joinTrimmed(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// bulletLines keeps lines starting with "*" and strips the bullet.
// Anything else in the section is dropped.
func bulletLines(lines []string) []string {
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "*") {
			continue
		}
		items = append(items, strings.TrimSpace(strings.TrimPrefix(trimmed, "*")))
	}
	return items
}

// numberedLines keeps lines starting with a step number ("1.", "2.", ...)
// and strips the numeric prefix. Source order is preserved; it is the
// cooking order.
func numberedLines(lines []string) []string {
	steps := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !stepPrefix.MatchString(trimmed) {
			continue
		}
		steps = append(steps, stepPrefix.ReplaceAllString(trimmed, ""))
	}
	return steps
}
