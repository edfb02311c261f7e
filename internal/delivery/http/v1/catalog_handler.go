package v1

import (
	"net/http"

	"talento-local-backend/internal/delivery/http/middleware"
	"talento-local-backend/internal/delivery/http/response"
	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	skillUC domain.SkillUsecase
	userUC  domain.UserUsecase
}

// NewCatalogHandler registers the public skill catalog and user listing.
func NewCatalogHandler(public *gin.RouterGroup, skillUC domain.SkillUsecase, userUC domain.UserUsecase) {
	handler := &CatalogHandler{skillUC: skillUC, userUC: userUC}

	public.GET("/skills", handler.ListSkills)
	public.POST("/skills", handler.CreateSkill)
	public.GET("/users", handler.ListUsers)
}

// ListSkills godoc
// @Summary      List the skill catalog
// @Description  Ordered by category then name. Optional exact category filter.
// @Tags         skills
// @Produce      json
// @Param        category  query     string  false  "TECHNICAL, SOFT_SKILLS, LANGUAGE, TOOLS or INDUSTRY"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  response.ErrorResponse
// @Router       /skills [get]
func (h *CatalogHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"skills": skills, "count": len(skills)})
}

// CreateSkill godoc
// @Summary      Add a catalog skill
// @Description  Requires a session unless anonymous creation is enabled. Duplicate names are rejected with 400.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        request  body      domain.SkillInput  true  "Skill"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Router       /skills [post]
// @Security     BearerAuth
func (h *CatalogHandler) CreateSkill(c *gin.Context) {
	var req domain.SkillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}

	skill, err := h.skillUC.CreateSkill(c.Request.Context(), middleware.Actor(c), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"skill": skill})
}

// ListUsers godoc
// @Summary      List users
// @Description  Newest first. Optional role filter.
// @Tags         users
// @Produce      json
// @Param        role  query     string  false  "CITIZEN, COMPANY or INSTITUTION"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorResponse
// @Router       /users [get]
func (h *CatalogHandler) ListUsers(c *gin.Context) {
	users, err := h.userUC.ListUsers(c.Request.Context(), c.Query("role"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users, "count": len(users)})
}
