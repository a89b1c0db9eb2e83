package chapter

import "errors"

var (
	ErrInvalidChapter   = errors.New("invalid chapter")
	ErrProfileRequired  = errors.New("user_profile is required")
	ErrChapterNotFound  = errors.New("chapter content not found")
	ErrGenerationFailed = errors.New("generation failed")
	ErrUnauthenticated  = errors.New("authentication required")
)
