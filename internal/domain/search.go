package domain

import "context"

// MaxSearchResults caps every citizen search.
const MaxSearchResults = 50

// CitizenSearchFilter fields are matched as case-insensitive substrings. Blank means no constraint.
type CitizenSearchFilter struct {
	SkillName  string `form:"skill"`
	City       string `form:"city"`
	Department string `form:"department"`
}

type CitizenSearchResult struct {
	CitizenProfile
	User   UserRef        `json:"user"`
	Skills []CitizenSkill `json:"skills"`
}

type SearchUsecase interface {
	SearchCitizens(ctx context.Context, filter CitizenSearchFilter) ([]CitizenSearchResult, error)
}
