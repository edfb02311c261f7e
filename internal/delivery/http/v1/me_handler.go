package v1

import (
	"net/http"

	"talento-local-backend/internal/delivery/http/middleware"
	"talento-local-backend/internal/delivery/http/response"
	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// MeHandler serves the authenticated account's own profile and its sub-entities.
type MeHandler struct {
	citizenUC       domain.CitizenProfileUsecase
	profileUC       domain.ProfileUsecase
	skillUC         domain.CitizenSkillUsecase
	educationUC     domain.EducationUsecase
	experienceUC    domain.ExperienceUsecase
	certificationUC domain.CertificationUsecase
}

type MeDeps struct {
	CitizenUC       domain.CitizenProfileUsecase
	ProfileUC       domain.ProfileUsecase
	SkillUC         domain.CitizenSkillUsecase
	EducationUC     domain.EducationUsecase
	ExperienceUC    domain.ExperienceUsecase
	CertificationUC domain.CertificationUsecase
}

func NewMeHandler(protected *gin.RouterGroup, deps MeDeps) {
	handler := &MeHandler{
		citizenUC:       deps.CitizenUC,
		profileUC:       deps.ProfileUC,
		skillUC:         deps.SkillUC,
		educationUC:     deps.EducationUC,
		experienceUC:    deps.ExperienceUC,
		certificationUC: deps.CertificationUC,
	}

	me := protected.Group("/me")
	{
		me.GET("/profile", handler.GetProfile)

		me.GET("/skills", handler.ListSkills)
		me.POST("/skills", handler.AddSkill)
		me.PUT("/skills/:id", handler.UpdateSkill)
		me.DELETE("/skills/:id", handler.RemoveSkill)

		me.GET("/education", handler.ListEducation)
		me.POST("/education", handler.AddEducation)
		me.PUT("/education/:id", handler.UpdateEducation)
		me.DELETE("/education/:id", handler.RemoveEducation)

		me.GET("/experience", handler.ListExperience)
		me.POST("/experience", handler.AddExperience)
		me.PUT("/experience/:id", handler.UpdateExperience)
		me.DELETE("/experience/:id", handler.RemoveExperience)

		me.GET("/certifications", handler.ListCertifications)
		me.POST("/certifications", handler.AddCertification)
		me.DELETE("/certifications/:id", handler.RemoveCertification)

		me.GET("/company-profile", handler.GetCompanyProfile)
		me.PUT("/company-profile", handler.UpdateCompanyProfile)
		me.GET("/institution-profile", handler.GetInstitutionProfile)
		me.PUT("/institution-profile", handler.UpdateInstitutionProfile)
	}
}

// GetProfile godoc
// @Summary      Own citizen profile
// @Tags         me
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /me/profile [get]
// @Security     BearerAuth
func (h *MeHandler) GetProfile(c *gin.Context) {
	profile, err := h.citizenUC.GetOwnProfile(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// ---------------------------------------------------------------------------
// Skills
// ---------------------------------------------------------------------------

// ListSkills godoc
// @Summary      Own skills
// @Tags         me
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /me/skills [get]
// @Security     BearerAuth
func (h *MeHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUC.List(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"skills": skills, "count": len(skills)})
}

// AddSkill godoc
// @Summary      Add a skill to the own profile
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CitizenSkillInput  true  "Skill"
// @Success      201      {object}  map[string]interface{}
// @Failure      409      {object}  response.ErrorResponse
// @Router       /me/skills [post]
// @Security     BearerAuth
func (h *MeHandler) AddSkill(c *gin.Context) {
	var req domain.CitizenSkillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}
	skill, err := h.skillUC.Add(c.Request.Context(), middleware.Actor(c), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"skill": skill})
}

// UpdateSkill godoc
// @Summary      Change level or years of an own skill
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Citizen skill ID"
// @Param        request  body      domain.CitizenSkillUpdate  true  "Level and years"
// @Success      200      {object}  map[string]interface{}
// @Failure      404      {object}  response.ErrorResponse
// @Router       /me/skills/{id} [put]
// @Security     BearerAuth
func (h *MeHandler) UpdateSkill(c *gin.Context) {
	var req domain.CitizenSkillUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}
	skill, err := h.skillUC.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"skill": skill})
}

// RemoveSkill godoc
// @Summary      Remove an own skill
// @Tags         me
// @Produce      json
// @Param        id   path      string  true  "Citizen skill ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /me/skills/{id} [delete]
// @Security     BearerAuth
func (h *MeHandler) RemoveSkill(c *gin.Context) {
	if err := h.skillUC.Remove(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Habilidad eliminada")
}

// ---------------------------------------------------------------------------
// Education
// ---------------------------------------------------------------------------

// ListEducation godoc
// @Summary      Own education, newest first
// @Tags         me
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /me/education [get]
// @Security     BearerAuth
func (h *MeHandler) ListEducation(c *gin.Context) {
	items, err := h.educationUC.List(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"education": items, "count": len(items)})
}

// AddEducation godoc
// @Summary      Add an education entry
// @Description  current=true clears endDate.
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        request  body      domain.Education  true  "Education"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Router       /me/education [post]
// @Security     BearerAuth
func (h *MeHandler) AddEducation(c *gin.Context) {
	var req domain.Education
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}
	item, err := h.educationUC.Add(c.Request.Context(), middleware.Actor(c), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"education": item})
}

// UpdateEducation godoc
// @Summary      Replace an education entry
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Education ID"
// @Param        request  body      domain.Education  true  "Education"
// @Success      200      {object}  map[string]interface{}
// @Failure      404      {object}  response.ErrorResponse
// @Router       /me/education/{id} [put]
// @Security     BearerAuth
func (h *MeHandler) UpdateEducation(c *gin.Context) {
	var req domain.Education
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}
	item, err := h.educationUC.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"education": item})
}

// RemoveEducation godoc
// @Summary      Remove an education entry
// @Tags         me
// @Produce      json
// @Param        id   path      string  true  "Education ID"
// @Success      200  {object}  response.MessageResponse
// @Router       /me/education/{id} [delete]
// @Security     BearerAuth
func (h *MeHandler) RemoveEducation(c *gin.Context) {
	if err := h.educationUC.Remove(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Educación eliminada")
}

// ---------------------------------------------------------------------------
// Experience
// ---------------------------------------------------------------------------

// ListExperience godoc
// @Summary      Own work experience, newest first
// @Tags         me
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /me/experience [get]
// @Security     BearerAuth
func (h *MeHandler) ListExperience(c *gin.Context) {
	items, err := h.experienceUC.List(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"experience": items, "count": len(items)})
}

// AddExperience godoc
// @Summary      Add a work experience entry
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        request  body      domain.Experience  true  "Experience"
// @Success      201      {object}  map[string]interface{}
// @Router       /me/experience [post]
// @Security     BearerAuth
func (h *MeHandler) AddExperience(c *gin.Context) {
	var req domain.Experience
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}
	item, err := h.experienceUC.Add(c.Request.Context(), middleware.Actor(c), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"experience": item})
}

// UpdateExperience godoc
// @Summary      Replace a work experience entry
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Experience ID"
// @Param        request  body      domain.Experience  true  "Experience"
// @Success      200      {object}  map[string]interface{}
// @Router       /me/experience/{id} [put]
// @Security     BearerAuth
func (h *MeHandler) UpdateExperience(c *gin.Context) {
	var req domain.Experience
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}
	item, err := h.experienceUC.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"experience": item})
}

// RemoveExperience godoc
// @Summary      Remove a work experience entry
// @Tags         me
// @Produce      json
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  response.MessageResponse
// @Router       /me/experience/{id} [delete]
// @Security     BearerAuth
func (h *MeHandler) RemoveExperience(c *gin.Context) {
	if err := h.experienceUC.Remove(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Experiencia eliminada")
}

// ---------------------------------------------------------------------------
// Certifications
// ---------------------------------------------------------------------------

// ListCertifications godoc
// @Summary      Own certifications
// @Tags         me
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /me/certifications [get]
// @Security     BearerAuth
func (h *MeHandler) ListCertifications(c *gin.Context) {
	items, err := h.certificationUC.List(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"certifications": items, "count": len(items)})
}

// AddCertification godoc
// @Summary      Add a certification
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        request  body      domain.Certification  true  "Certification"
// @Success      201      {object}  map[string]interface{}
// @Router       /me/certifications [post]
// @Security     BearerAuth
func (h *MeHandler) AddCertification(c *gin.Context) {
	var req domain.Certification
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}
	item, err := h.certificationUC.Add(c.Request.Context(), middleware.Actor(c), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"certification": item})
}

// RemoveCertification godoc
// @Summary      Remove a certification
// @Tags         me
// @Produce      json
// @Param        id   path      string  true  "Certification ID"
// @Success      200  {object}  response.MessageResponse
// @Router       /me/certifications/{id} [delete]
// @Security     BearerAuth
func (h *MeHandler) RemoveCertification(c *gin.Context) {
	if err := h.certificationUC.Remove(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Certificación eliminada")
}

// ---------------------------------------------------------------------------
// Company / institution
// ---------------------------------------------------------------------------

// GetCompanyProfile godoc
// @Summary      Own company profile
// @Tags         me
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorResponse
// @Router       /me/company-profile [get]
// @Security     BearerAuth
func (h *MeHandler) GetCompanyProfile(c *gin.Context) {
	profile, err := h.profileUC.GetCompanyProfile(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// UpdateCompanyProfile godoc
// @Summary      Replace own company profile
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CompanyProfileInput  true  "Company profile"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Router       /me/company-profile [put]
// @Security     BearerAuth
func (h *MeHandler) UpdateCompanyProfile(c *gin.Context) {
	var req domain.CompanyProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}
	profile, err := h.profileUC.UpdateCompanyProfile(c.Request.Context(), middleware.Actor(c), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// GetInstitutionProfile godoc
// @Summary      Own institution profile
// @Tags         me
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorResponse
// @Router       /me/institution-profile [get]
// @Security     BearerAuth
func (h *MeHandler) GetInstitutionProfile(c *gin.Context) {
	profile, err := h.profileUC.GetInstitutionProfile(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// UpdateInstitutionProfile godoc
// @Summary      Replace own institution profile
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        request  body      domain.InstitutionProfileInput  true  "Institution profile"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Router       /me/institution-profile [put]
// @Security     BearerAuth
func (h *MeHandler) UpdateInstitutionProfile(c *gin.Context) {
	var req domain.InstitutionProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}
	profile, err := h.profileUC.UpdateInstitutionProfile(c.Request.Context(), middleware.Actor(c), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}
