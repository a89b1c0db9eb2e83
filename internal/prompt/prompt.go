// Package prompt assembles the instruction sequences sent to the language model.
// Everything here is pure.
package prompt

import (
	"fmt"
	"strings"

	"textbook-rag/internal/model"
)

// FormatContext numbers results from [1] in retrieval order so citation
// indices match positions in the response's source list.
func FormatContext(results []model.RetrievalResult) string {
	if len(results) == 0 {
		return ""
	}
	parts := make([]string, len(results))
	for i, r := range results {
		title := r.Title
		if title == "" {
			title = untitled
		}
		parts[i] = fmt.Sprintf("[%d] %s (/%s):\n%s", i+1, title, strings.TrimPrefix(r.Slug, "/"), r.Snippet)
	}
	return strings.Join(parts, "\n\n")
}

// Build returns the system instruction, history in order, then the current question.
func Build(query, context string, history []model.Turn) []model.Message {
	msgs := make([]model.Message, 0, len(history)+2)
	msgs = append(msgs, model.Message{Role: model.RoleSystem, Content: SystemPrompt})
	for _, t := range history {
		msgs = append(msgs, model.Message{Role: t.Role, Content: t.Content})
	}

	var user string
	if context != "" {
		user = fmt.Sprintf(contextTemplate, context, query)
	} else {
		user = fmt.Sprintf(noContextTemplate, query)
	}
	return append(msgs, model.Message{Role: model.RoleUser, Content: user})
}

// Personalization builds the single-message prompt adapting a chapter to a reader.
func Personalization(p model.UserProfile, chapterContent string) []model.Message {
	content := fmt.Sprintf(personalizationTemplate,
		p.ProgrammingLevel, p.HardwareBackground, strings.Join(p.LearningGoals, ", "), chapterContent)
	return []model.Message{{Role: model.RoleUser, Content: content}}
}

// Translation builds the prompt translating chapter content to Urdu.
func Translation(chapterContent string) []model.Message {
	return []model.Message{{Role: model.RoleUser, Content: fmt.Sprintf(translationTemplate, chapterContent)}}
}

// TitleTranslation builds the prompt translating a chapter title to Urdu.
func TitleTranslation(title string) []model.Message {
	return []model.Message{{Role: model.RoleUser, Content: fmt.Sprintf(titleTranslationTemplate, title)}}
}

// Truncate cuts content to maxChars runes and appends TruncationMarker.
// It reports whether content was cut.
func Truncate(content string, maxChars int) (string, bool) {
	if maxChars <= 0 {
		return content, false
	}
	runes := []rune(content)
	if len(runes) <= maxChars {
		return content, false
	}
	return string(runes[:maxChars]) + TruncationMarker, true
}

var (
	levelDescriptions = map[string]string{
		model.LevelBeginner:     "beginner programmers",
		model.LevelIntermediate: "intermediate programmers",
		model.LevelAdvanced:     "advanced programmers",
	}
	hardwareDescriptions = map[string]string{
		model.HardwareNone:         "no hardware background",
		model.HardwareHobbyist:     "hobbyist hardware experience",
		model.HardwareProfessional: "professional hardware background",
	}
	goalDescriptions = map[string]string{
		model.GoalCareerTransition: "career transition",
		model.GoalAcademic:         "academic study",
		model.GoalPersonal:         "personal learning",
		model.GoalUpskilling:       "professional upskilling",
	}
)

// ProfileSummary renders a profile as "Adapted for <level> with <hardware>, focused on <goals>".
func ProfileSummary(p model.UserProfile) string {
	goals := make([]string, len(p.LearningGoals))
	for i, g := range p.LearningGoals {
		goals[i] = describe(goalDescriptions, g)
	}
	return fmt.Sprintf("Adapted for %s with %s, focused on %s",
		describe(levelDescriptions, p.ProgrammingLevel),
		describe(hardwareDescriptions, p.HardwareBackground),
		strings.Join(goals, ", "))
}

func describe(m map[string]string, key string) string {
	if d, ok := m[key]; ok {
		return d
	}
	return key
}
