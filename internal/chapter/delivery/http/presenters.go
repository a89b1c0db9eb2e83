package http

import (
	"textbook-rag/internal/chapter"
	"textbook-rag/internal/model"
	"textbook-rag/pkg/response"
)

// --- Request DTOs ---

type profileReq struct {
	ProgrammingLevel   string   `json:"programming_level" example:"beginner"`
	HardwareBackground string   `json:"hardware_background" example:"hobbyist"`
	LearningGoals      []string `json:"learning_goals" example:"academic"`
}

type personalizeReq struct {
	ChapterSlug string      `json:"chapter_slug" binding:"required" example:"chapter-1"`
	UserProfile *profileReq `json:"user_profile,omitempty"`
}

func (r personalizeReq) toInput() chapter.PersonalizeInput {
	in := chapter.PersonalizeInput{ChapterSlug: r.ChapterSlug}
	if r.UserProfile != nil {
		in.Profile = &model.UserProfile{
			ProgrammingLevel:   r.UserProfile.ProgrammingLevel,
			HardwareBackground: r.UserProfile.HardwareBackground,
			LearningGoals:      r.UserProfile.LearningGoals,
		}
	}
	return in
}

type translateReq struct {
	ChapterID string `json:"chapter_id" binding:"required" example:"chapter-1"`
}

func (r translateReq) toInput() chapter.TranslateInput {
	return chapter.TranslateInput{ChapterID: r.ChapterID}
}

// --- Response DTOs ---

type personalizeMetaResp struct {
	ProcessingTimeMS int64  `json:"processing_time_ms"`
	TokensUsed       int    `json:"tokens_used"`
	ProfileSummary   string `json:"profile_summary"`
}

type personalizeResp struct {
	ChapterSlug         string              `json:"chapter_slug"`
	OriginalTitle       string              `json:"original_title"`
	PersonalizedContent string              `json:"personalized_content"`
	Metadata            personalizeMetaResp `json:"metadata"`
}

type translateMetaResp struct {
	ProcessingTimeMS int64  `json:"processing_time_ms"`
	TokensUsed       int    `json:"tokens_used"`
	UserID           string `json:"user_id"`
}

type translateResp struct {
	ChapterID         string            `json:"chapter_id"`
	OriginalTitle     string            `json:"original_title"`
	TranslatedTitle   string            `json:"translated_title"`
	TranslatedContent string            `json:"translated_content"`
	SourceLanguage    string            `json:"source_language"`
	TargetLanguage    string            `json:"target_language"`
	TranslatedAt      response.DateTime `json:"translated_at"`
	Metadata          translateMetaResp `json:"metadata"`
}

func (h *handler) newPersonalizeResp(out chapter.PersonalizeOutput) personalizeResp {
	return personalizeResp{
		ChapterSlug:         out.ChapterSlug,
		OriginalTitle:       out.OriginalTitle,
		PersonalizedContent: out.PersonalizedContent,
		Metadata: personalizeMetaResp{
			ProcessingTimeMS: out.ProcessingTimeMS,
			TokensUsed:       out.TokensUsed,
			ProfileSummary:   out.ProfileSummary,
		},
	}
}

func (h *handler) newTranslateResp(out chapter.TranslateOutput) translateResp {
	return translateResp{
		ChapterID:         out.ChapterID,
		OriginalTitle:     out.OriginalTitle,
		TranslatedTitle:   out.TranslatedTitle,
		TranslatedContent: out.TranslatedContent,
		SourceLanguage:    out.SourceLanguage,
		TargetLanguage:    out.TargetLanguage,
		TranslatedAt:      response.DateTime(out.TranslatedAt),
		Metadata: translateMetaResp{
			ProcessingTimeMS: out.ProcessingTimeMS,
			TokensUsed:       out.TokensUsed,
			UserID:           out.UserID,
		},
	}
}
