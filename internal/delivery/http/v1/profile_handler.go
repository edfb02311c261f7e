package v1

import (
	"net/http"

	"talento-local-backend/internal/delivery/http/middleware"
	"talento-local-backend/internal/delivery/http/response"
	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.CitizenProfileUsecase
	searchUC  domain.SearchUsecase
}

// NewProfileHandler registers the public citizen profile routes.
func NewProfileHandler(public *gin.RouterGroup, profileUC domain.CitizenProfileUsecase, searchUC domain.SearchUsecase) {
	handler := &ProfileHandler{profileUC: profileUC, searchUC: searchUC}

	profiles := public.Group("/profiles")
	{
		profiles.GET("/search", handler.Search)
		profiles.GET("/:userId", handler.GetProfile)
		profiles.PUT("/:userId/update", handler.UpdateProfile)
	}
}

// Search godoc
// @Summary      Search citizens
// @Description  Case-insensitive substring match on skill name, city and department. At most 50 results.
// @Tags         profiles
// @Produce      json
// @Param        skill       query     string  false  "Skill name fragment"
// @Param        city        query     string  false  "City fragment"
// @Param        department  query     string  false  "Department fragment"
// @Success      200         {object}  map[string]interface{}
// @Router       /profiles/search [get]
func (h *ProfileHandler) Search(c *gin.Context) {
	var filter domain.CitizenSearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest("Parámetros de búsqueda inválidos"))
		return
	}

	profiles, err := h.searchUC.SearchCitizens(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profiles": profiles, "count": len(profiles)})
}

// GetProfile godoc
// @Summary      Citizen profile
// @Description  Profile with user identity, skills, education, experience and certifications.
// @Tags         profiles
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  map[string]interface{}
// @Failure      404     {object}  response.ErrorResponse
// @Router       /profiles/{userId} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile godoc
// @Summary      Update own citizen profile
// @Description  Partial update of bio, address, phone and jobStatus. Only the profile owner may call it.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        userId   path      string                      true  "User ID"
// @Param        request  body      domain.CitizenProfilePatch  true  "Fields to change"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Router       /profiles/{userId}/update [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.Param("userId")
	actor := middleware.Actor(c)
	if actor == nil || actor.UserID != userID {
		c.Error(apperror.Unauthorized("No autorizado"))
		return
	}

	var patch domain.CitizenProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}

	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), actor, userID, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}
