package api

import (
	"errors"
	"net/http"

	"hotelhub/internal/domain/booking"
	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Create a checkout session
// @Description Create a hosted payment session for a room booking
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutSessionRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd := req.ToCommand(c.GetHeader("Origin"))

	result, err := h.checkoutCommands.CreateSession(c.Request.Context(), cmd, session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrInvalidStay),
			errors.Is(err, booking.ErrInvalidNights):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid stay dates",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create checkout session", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutSession(result))
}
