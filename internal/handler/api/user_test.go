//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotelhub/internal/handler/api"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/commands"
	"hotelhub/tests/common/builder"
	"hotelhub/tests/common/httptest"
	"hotelhub/tests/common/testutil"
	commandsmock "hotelhub/tests/mock/commands"
	queriesmock "hotelhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockQueries   *queriesmock.MockUserQueries
	mockCommands  *commandsmock.MockReviewCommands
	handler       *api.UserHandler
	sessionUserID string
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockQueries, s.mockCommands)
	s.sessionUserID = uuid.NewString()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("session", &usecase.Session{UserID: s.sessionUserID, Name: "Test Guest"})
		c.Next()
	}

	s.router.GET("/users", authMiddleware, s.handler.GetProfile)
	s.router.POST("/users", authMiddleware, s.handler.UpsertReview)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

// ================================================================================
// TestGetProfile
// ================================================================================

func (s *UserHandlerTestSuite) TestGetProfile() {
	url := "/users"

	s.Run("success: returns 200 OK with UserResponse", func() {
		view := builder.NewUserBuilder().With(func(u *builder.UserBuilder) { u.ID = s.sessionUserID }).BuildView()
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.sessionUserID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Name, response.Name)
		s.Equal(view.Email, response.Email)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]string
		s.Equal(http.StatusUnauthorized, rec.Code)
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Authentication required", body["error"])
	})

	s.Run("error: 400 Bad Request on query failure", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.sessionUserID).
			Return(nil, errors.New("content api down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]string
		s.Equal(http.StatusBadRequest, rec.Code)
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Unable to fetch user data", body["error"])
	})
}

// ================================================================================
// TestUpsertReview
// ================================================================================

func (s *UserHandlerTestSuite) TestUpsertReview() {
	url := "/users"

	reqBody := builder.NewReviewBuilder().BuildUpsertRequestDTO()

	s.Run("success: returns 200 OK with review id on create", func() {
		s.mockCommands.EXPECT().
			Upsert(gomock.Any(), commands.UpsertReviewRequest{
				RoomID: reqBody.RoomID,
				Rating: reqBody.RatingValue,
				Text:   reqBody.RatingText,
			}, s.sessionUserID).
			Return(&commands.UpsertReviewResult{ReviewID: "rev-1", Updated: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.UpsertReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("rev-1", response.ReviewID)
		s.False(response.Updated)
	})

	s.Run("success: reports update for an existing review", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), gomock.Any(), s.sessionUserID).
			Return(&commands.UpsertReviewResult{ReviewID: "rev-1", Updated: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.UpsertReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Updated)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: roomId (required)", mutate: testutil.Field("roomId", nil)},
			{name: "missing field: ratingText (required)", mutate: testutil.Field("ratingText", nil)},
			{name: "missing field: ratingValue (required)", mutate: testutil.Field("ratingValue", nil)},
			{name: "rating boundary invalid (0)", mutate: testutil.Field("ratingValue", 0)},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("ratingValue", 6)},
			{name: "text length invalid (1001 chars)", mutate: testutil.Field("ratingText", strings.Repeat("a", 1001))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

				var body map[string]string
				s.Equal(http.StatusBadRequest, rec.Code)
				httptest.DecodeResponseBody(s.T(), rec.Body, &body)
				s.Equal("All fields are required", body["error"])
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 500 Internal Server Error on command failure", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), gomock.Any(), s.sessionUserID).
			Return(nil, errors.New("mutation rejected")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		s.Equal(http.StatusInternalServerError, rec.Code)
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Unable to save review", body["error"])
	})
}

// ================================================================================
// TestMe
// ================================================================================

func (s *UserHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the session user", func() {
		view := builder.NewUserBuilder().With(func(u *builder.UserBuilder) { u.ID = s.sessionUserID }).BuildView()
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.sessionUserID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.sessionUserID, response.ID)
	})

	s.Run("error: 404 Not Found when the profile lookup fails", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.sessionUserID).
			Return(nil, errors.New("user missing")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]string
		s.Equal(http.StatusNotFound, rec.Code)
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("User not found", body["error"])
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
