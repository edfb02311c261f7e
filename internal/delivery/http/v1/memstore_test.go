package v1_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"
)

// memStore is an in-memory stand-in for PostgreSQL that honours the same
// uniqueness and ownership rules as the SQL repositories.
type memStore struct {
	mu             sync.Mutex
	users          map[string]*domain.User
	citizens       map[string]*domain.CitizenProfile // by user id
	companies      map[string]*domain.CompanyProfile
	institutions   map[string]*domain.InstitutionProfile
	skills         map[string]*domain.Skill
	citizenSkills  map[string]*domain.CitizenSkill
	educations     map[string]*domain.Education
	experiences    map[string]*domain.Experience
	certifications map[string]*domain.Certification
}

func newMemStore() *memStore {
	return &memStore{
		users:          map[string]*domain.User{},
		citizens:       map[string]*domain.CitizenProfile{},
		companies:      map[string]*domain.CompanyProfile{},
		institutions:   map[string]*domain.InstitutionProfile{},
		skills:         map[string]*domain.Skill{},
		citizenSkills:  map[string]*domain.CitizenSkill{},
		educations:     map[string]*domain.Education{},
		experiences:    map[string]*domain.Experience{},
		certifications: map[string]*domain.Certification{},
	}
}

func unescapeLike(s string) string {
	return strings.NewReplacer(`\\`, `\`, `\%`, `%`, `\_`, `_`).Replace(s)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(unescapeLike(needle)))
}

// ---- users ----

type memUsers struct{ s *memStore }

func (r memUsers) CreateWithProfile(_ context.Context, user *domain.User, profile domain.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperror.Conflict("Este email ya está registrado", apperror.ErrDuplicateEmail)
		}
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	cp := *user
	r.s.users[user.ID] = &cp
	switch p := profile.(type) {
	case *domain.CitizenProfile:
		p.CreatedAt = now
		v := *p
		r.s.citizens[user.ID] = &v
	case *domain.CompanyProfile:
		v := *p
		r.s.companies[user.ID] = &v
	case *domain.InstitutionProfile:
		v := *p
		r.s.institutions[user.ID] = &v
	}
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		v := *u
		return &v, nil
	}
	return nil, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			v := *u
			return &v, nil
		}
	}
	return nil, nil
}

func (r memUsers) List(_ context.Context, role domain.Role) ([]domain.UserSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.UserSummary{}
	for _, u := range r.s.users {
		if role == "" || u.Role == role {
			out = append(out, domain.UserSummary{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ---- citizen profiles ----

type memCitizens struct{ s *memStore }

func (r memCitizens) GetByUserID(_ context.Context, userID string) (*domain.CitizenProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.citizens[userID]; ok {
		v := *p
		return &v, nil
	}
	return nil, nil
}

func (r memCitizens) skillsOf(citizenID string) []domain.CitizenSkill {
	out := []domain.CitizenSkill{}
	for _, cs := range r.s.citizenSkills {
		if cs.CitizenID == citizenID {
			v := *cs
			skill := *r.s.skills[cs.SkillID]
			v.Skill = &skill
			out = append(out, v)
		}
	}
	return out
}

func (r memCitizens) GetDetailByUserID(_ context.Context, userID string) (*domain.CitizenProfileDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.citizens[userID]
	if !ok {
		return nil, nil
	}
	u := r.s.users[userID]
	d := &domain.CitizenProfileDetail{
		CitizenProfile: *p,
		User:           domain.UserRef{ID: u.ID, Email: u.Email, Name: u.Name},
		Skills:         r.skillsOf(p.ID),
		Education:      []domain.Education{},
		Experience:     []domain.Experience{},
		Certifications: []domain.Certification{},
	}
	for _, e := range r.s.educations {
		if e.CitizenID == p.ID {
			d.Education = append(d.Education, *e)
		}
	}
	for _, e := range r.s.experiences {
		if e.CitizenID == p.ID {
			d.Experience = append(d.Experience, *e)
		}
	}
	for _, c := range r.s.certifications {
		if c.CitizenID == p.ID {
			d.Certifications = append(d.Certifications, *c)
		}
	}
	return d, nil
}

func (r memCitizens) Patch(_ context.Context, userID string, patch domain.CitizenProfilePatch) (*domain.CitizenProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.citizens[userID]
	if !ok {
		return nil, nil
	}
	if patch.Bio != nil {
		p.Bio = patch.Bio
	}
	if patch.Address != nil {
		p.Address = patch.Address
	}
	if patch.Phone != nil {
		p.Phone = patch.Phone
	}
	if patch.JobStatus != nil {
		p.JobStatus = patch.JobStatus
	}
	v := *p
	return &v, nil
}

func (r memCitizens) Search(_ context.Context, f domain.CitizenSearchFilter, limit int) ([]domain.CitizenSearchResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.CitizenSearchResult{}
	for userID, p := range r.s.citizens {
		if f.City != "" && !containsFold(p.City, f.City) {
			continue
		}
		if f.Department != "" && !containsFold(p.Department, f.Department) {
			continue
		}
		skills := r.skillsOf(p.ID)
		if f.SkillName != "" {
			found := false
			for _, cs := range skills {
				found = found || containsFold(cs.Skill.Name, f.SkillName)
			}
			if !found {
				continue
			}
		}
		u := r.s.users[userID]
		out = append(out, domain.CitizenSearchResult{
			CitizenProfile: *p,
			User:           domain.UserRef{ID: u.ID, Email: u.Email, Name: u.Name},
			Skills:         skills,
		})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ---- company / institution ----

type memCompanies struct{ s *memStore }

func (r memCompanies) GetByUserID(_ context.Context, userID string) (*domain.CompanyProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.companies[userID]; ok {
		v := *p
		return &v, nil
	}
	return nil, nil
}

func (r memCompanies) Update(_ context.Context, p *domain.CompanyProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v := *p
	r.s.companies[p.UserID] = &v
	return nil
}

type memInstitutions struct{ s *memStore }

func (r memInstitutions) GetByUserID(_ context.Context, userID string) (*domain.InstitutionProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.institutions[userID]; ok {
		v := *p
		return &v, nil
	}
	return nil, nil
}

func (r memInstitutions) Update(_ context.Context, p *domain.InstitutionProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v := *p
	r.s.institutions[p.UserID] = &v
	return nil
}

// ---- skills ----

type memSkills struct{ s *memStore }

func (r memSkills) List(_ context.Context, category domain.SkillCategory) ([]domain.Skill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Skill{}
	for _, sk := range r.s.skills {
		if category == "" || sk.Category == category {
			out = append(out, *sk)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r memSkills) GetByID(_ context.Context, id string) (*domain.Skill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sk, ok := r.s.skills[id]; ok {
		v := *sk
		return &v, nil
	}
	return nil, nil
}

func (r memSkills) Create(_ context.Context, sk *domain.Skill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.skills {
		if existing.Name == sk.Name {
			return apperror.New(400, "Ya existe una habilidad con este nombre", apperror.ErrDuplicateSkillName)
		}
	}
	sk.CreatedAt = time.Now()
	v := *sk
	r.s.skills[sk.ID] = &v
	return nil
}

func (r memSkills) UpsertByName(ctx context.Context, sk *domain.Skill) (bool, error) {
	return true, r.Create(ctx, sk)
}

type memCitizenSkills struct{ s *memStore }

func (r memCitizenSkills) ListByCitizen(_ context.Context, citizenID string) ([]domain.CitizenSkill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memCitizens(r).skillsOf(citizenID), nil
}

func (r memCitizenSkills) Exists(_ context.Context, citizenID, skillID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cs := range r.s.citizenSkills {
		if cs.CitizenID == citizenID && cs.SkillID == skillID {
			return true, nil
		}
	}
	return false, nil
}

func (r memCitizenSkills) Create(ctx context.Context, cs *domain.CitizenSkill) error {
	if exists, _ := r.Exists(ctx, cs.CitizenID, cs.SkillID); exists {
		return apperror.Conflict("Ya tienes esta habilidad agregada", apperror.ErrDuplicateSkill)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cs.CreatedAt = time.Now()
	v := *cs
	v.Skill = nil
	r.s.citizenSkills[cs.ID] = &v
	return nil
}

func (r memCitizenSkills) Update(_ context.Context, citizenID, id string, patch domain.CitizenSkillUpdate) (*domain.CitizenSkill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.citizenSkills[id]
	if !ok || existing.CitizenID != citizenID {
		return nil, nil
	}
	existing.Level = patch.Level
	if patch.YearsOfExp != nil {
		existing.YearsOfExp = *patch.YearsOfExp
	}
	v := *existing
	skill := *r.s.skills[existing.SkillID]
	v.Skill = &skill
	return &v, nil
}

func (r memCitizenSkills) Delete(_ context.Context, citizenID, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.citizenSkills[id]
	if !ok || existing.CitizenID != citizenID {
		return false, nil
	}
	delete(r.s.citizenSkills, id)
	return true, nil
}

// ---- education / experience / certifications ----

type memEducations struct{ s *memStore }

func (r memEducations) ListByCitizen(_ context.Context, citizenID string) ([]domain.Education, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Education{}
	for _, e := range r.s.educations {
		if e.CitizenID == citizenID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate > out[j].StartDate })
	return out, nil
}

func (r memEducations) Create(_ context.Context, e *domain.Education) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v := *e
	r.s.educations[e.ID] = &v
	return nil
}

func (r memEducations) Update(_ context.Context, e *domain.Education) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.educations[e.ID]
	if !ok || existing.CitizenID != e.CitizenID {
		return false, nil
	}
	v := *e
	r.s.educations[e.ID] = &v
	return true, nil
}

func (r memEducations) Delete(_ context.Context, citizenID, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.educations[id]
	if !ok || existing.CitizenID != citizenID {
		return false, nil
	}
	delete(r.s.educations, id)
	return true, nil
}

type memExperiences struct{ s *memStore }

func (r memExperiences) ListByCitizen(_ context.Context, citizenID string) ([]domain.Experience, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Experience{}
	for _, e := range r.s.experiences {
		if e.CitizenID == citizenID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r memExperiences) Create(_ context.Context, e *domain.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v := *e
	r.s.experiences[e.ID] = &v
	return nil
}

func (r memExperiences) Update(_ context.Context, e *domain.Experience) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.experiences[e.ID]
	if !ok || existing.CitizenID != e.CitizenID {
		return false, nil
	}
	v := *e
	r.s.experiences[e.ID] = &v
	return true, nil
}

func (r memExperiences) Delete(_ context.Context, citizenID, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.experiences[id]
	if !ok || existing.CitizenID != citizenID {
		return false, nil
	}
	delete(r.s.experiences, id)
	return true, nil
}

type memCertifications struct{ s *memStore }

func (r memCertifications) ListByCitizen(_ context.Context, citizenID string) ([]domain.Certification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Certification{}
	for _, c := range r.s.certifications {
		if c.CitizenID == citizenID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r memCertifications) Create(_ context.Context, c *domain.Certification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v := *c
	r.s.certifications[c.ID] = &v
	return nil
}

func (r memCertifications) Delete(_ context.Context, citizenID, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.certifications[id]
	if !ok || existing.CitizenID != citizenID {
		return false, nil
	}
	delete(r.s.certifications, id)
	return true, nil
}
