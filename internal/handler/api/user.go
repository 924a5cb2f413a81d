package api

import (
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userQueries    queries.UserQueries
	reviewCommands commands.ReviewCommands
}

func NewUserHandler(userQueries queries.UserQueries, reviewCommands commands.ReviewCommands) *UserHandler {
	return &UserHandler{
		userQueries:    userQueries,
		reviewCommands: reviewCommands,
	}
}

// @Summary Get current user profile
// @Description Get the authenticated user's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	view, err := h.userQueries.GetProfile(c.Request.Context(), session.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unable to fetch user data",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Create or update a room review
// @Description Submit a review for a room; an existing review by the same user is updated in place
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpsertReviewRequest true "Review payload"
// @Success 200 {object} resdto.UpsertReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) UpsertReview(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var req reqdto.UpsertReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "All fields are required",
		})
		return
	}

	result, err := h.reviewCommands.Upsert(c.Request.Context(), req.ToCommand(), session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Unable to save review",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUpsertResult(result))
}

// @Summary Get current user
// @Description Get the authenticated user's session identity
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.userQueries.GetProfile(c.Request.Context(), session.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
