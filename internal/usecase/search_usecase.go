package usecase

import (
	"context"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/textnorm"
)

type searchUsecase struct {
	profiles domain.CitizenProfileRepository
}

func NewSearchUsecase(profiles domain.CitizenProfileRepository) domain.SearchUsecase {
	return &searchUsecase{profiles: profiles}
}

// SearchCitizens ANDs the non-blank filters as case-insensitive substring matches.
func (u *searchUsecase) SearchCitizens(ctx context.Context, filter domain.CitizenSearchFilter) ([]domain.CitizenSearchResult, error) {
	escaped := domain.CitizenSearchFilter{
		SkillName:  textnorm.EscapeLike(textnorm.Clean(filter.SkillName)),
		City:       textnorm.EscapeLike(textnorm.Clean(filter.City)),
		Department: textnorm.EscapeLike(textnorm.Clean(filter.Department)),
	}
	results, err := u.profiles.Search(ctx, escaped, domain.MaxSearchResults)
	if err != nil {
		return nil, err
	}
	if len(results) > domain.MaxSearchResults {
		results = results[:domain.MaxSearchResults]
	}
	return results, nil
}
