package api

import (
	"errors"
	"net/http"

	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries   queries.RoomQueries
	reviewQueries queries.ReviewQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries, reviewQueries queries.ReviewQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries:   roomQueries,
		reviewQueries: reviewQueries,
	}
}

// @Summary List rooms
// @Description List rooms, optionally filtered by type and a name search
// @Tags rooms
// @Produce json
// @Param roomType query string false "Room type filter, 'all' disables it"
// @Param searchQuery query string false "Substring match on room name"
// @Success 200 {array} resdto.RoomResponse
// @Failure 500 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	filters := queries.RoomFilters{
		RoomType: c.Query("roomType"),
		Search:   c.Query("searchQuery"),
	}

	views, err := h.roomQueries.List(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch rooms", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get featured room
// @Description Get the room currently flagged as featured
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /rooms/featured [get]
func (h *RoomHandler) Featured(c *gin.Context) {
	view, err := h.roomQueries.GetFeatured(c.Request.Context())
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No featured room", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch featured room", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Get room by slug
// @Description Get a single room's detail by its slug
// @Tags rooms
// @Produce json
// @Param slug path string true "Room slug"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /rooms/{slug} [get]
func (h *RoomHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	view, err := h.roomQueries.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch room", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List room reviews
// @Description List reviews for the room identified by slug, newest first
// @Tags rooms
// @Produce json
// @Param slug path string true "Room slug"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 500 {object} httperr.Response
// @Router /rooms/{slug}/reviews [get]
func (h *RoomHandler) ListReviews(c *gin.Context) {
	slug := c.Param("slug")

	views, err := h.reviewQueries.ListByRoomSlug(c.Request.Context(), slug)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch reviews", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}
