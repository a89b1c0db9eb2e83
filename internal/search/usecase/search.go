package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"textbook-rag/internal/search"
	"textbook-rag/internal/search/repository"
)

// Search validates the request and runs a similarity query.
func (uc *implUseCase) Search(ctx context.Context, input search.SearchInput) (search.SearchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return search.SearchOutput{}, search.ErrEmptyQuery
	}
	if utf8.RuneCountInString(input.Query) > uc.limits.MaxQueryLength {
		return search.SearchOutput{}, fmt.Errorf("%w of %d characters", search.ErrQueryTooLong, uc.limits.MaxQueryLength)
	}

	topK := uc.limits.DefaultTopK
	if input.TopK != nil {
		topK = *input.TopK
	}
	if topK < 1 || topK > uc.limits.MaxTopK {
		return search.SearchOutput{}, fmt.Errorf("%w: must be between 1 and %d", search.ErrInvalidTopK, uc.limits.MaxTopK)
	}

	results, err := uc.retriever.Search(ctx, repository.SearchOptions{Query: input.Query, TopK: topK})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Search: %v", err)
		return search.SearchOutput{}, err
	}

	return search.SearchOutput{Query: input.Query, Results: results}, nil
}
