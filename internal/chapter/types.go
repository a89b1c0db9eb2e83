package chapter

import (
	"time"

	"textbook-rag/internal/model"
)

const (
	SourceLanguage = "en"
	TargetLanguage = "ur"
)

// Config bounds chapter processing.
type Config struct {
	MaxContentChars int
	ValidSlugs      []string
}

// --- UseCase Inputs ---

type PersonalizeInput struct {
	ChapterSlug string
	// Profile may be nil for an authenticated caller, whose stored profile is used.
	Profile *model.UserProfile
}

type TranslateInput struct {
	ChapterID string
}

// --- UseCase Outputs ---

type PersonalizeOutput struct {
	ChapterSlug         string
	OriginalTitle       string
	PersonalizedContent string
	ProcessingTimeMS    int64
	TokensUsed          int
	ProfileSummary      string
}

type TranslateOutput struct {
	ChapterID         string
	OriginalTitle     string
	TranslatedTitle   string
	TranslatedContent string
	SourceLanguage    string
	TargetLanguage    string
	TranslatedAt      time.Time
	ProcessingTimeMS  int64
	TokensUsed        int
	UserID            string
}
