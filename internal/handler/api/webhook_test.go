//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelhub/internal/handler/api"
	"hotelhub/internal/usecase/commands"
	"hotelhub/tests/common/builder"
	commandsmock "hotelhub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockVerifier *commandsmock.MockWebhookVerifier
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockVerifier = commandsmock.NewMockWebhookVerifier(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockVerifier, s.mockCommands)

	s.router.POST("/webhook", s.handler.Handle)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) perform(payload []byte, sigHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(payload))
	if sigHeader != "" {
		req.Header.Set("Stripe-Signature", sigHeader)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *WebhookHandlerTestSuite) TestHandle() {
	payload := []byte(`{"type": "checkout.session.completed"}`)

	s.Run("missing signature is acknowledged without any action", func() {
		rec := s.perform(payload, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("unconfigured secret is acknowledged without any action", func() {
		s.mockVerifier.EXPECT().SecretConfigured().Return(false)

		rec := s.perform(payload, "t=1,v1=abc")

		s.Equal(http.StatusOK, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("bad signature returns 500 without confirming anything", func() {
		s.mockVerifier.EXPECT().SecretConfigured().Return(true)
		s.mockVerifier.EXPECT().VerifyEvent(payload, "t=1,v1=bad").
			Return(nil, errors.New("signature mismatch"))

		rec := s.perform(payload, "t=1,v1=bad")

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "Webhook Error: signature mismatch")
	})

	s.Run("completed checkout confirms the booking", func() {
		metadata := builder.NewBookingBuilder().BuildMetadata()
		s.mockVerifier.EXPECT().SecretConfigured().Return(true)
		s.mockVerifier.EXPECT().VerifyEvent(payload, "t=1,v1=good").
			Return(&commands.PaymentEvent{Type: commands.EventCheckoutSessionCompleted, Metadata: metadata}, nil)
		s.mockCommands.EXPECT().ConfirmFromCheckout(gomock.Any(), metadata).
			Return(&commands.ConfirmBookingResult{BookingID: "booking-1"}, nil).Times(1)

		rec := s.perform(payload, "t=1,v1=good")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("Booking successful", rec.Body.String())
	})

	s.Run("confirmation failure returns 500", func() {
		s.mockVerifier.EXPECT().SecretConfigured().Return(true)
		s.mockVerifier.EXPECT().VerifyEvent(gomock.Any(), gomock.Any()).
			Return(&commands.PaymentEvent{Type: commands.EventCheckoutSessionCompleted, Metadata: map[string]string{}}, nil)
		s.mockCommands.EXPECT().ConfirmFromCheckout(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("metadata malformed"))

		rec := s.perform(payload, "t=1,v1=good")

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "Webhook Error")
	})

	s.Run("unhandled event types are acknowledged without action", func() {
		s.mockVerifier.EXPECT().SecretConfigured().Return(true)
		s.mockVerifier.EXPECT().VerifyEvent(gomock.Any(), gomock.Any()).
			Return(&commands.PaymentEvent{Type: "payment_intent.created"}, nil)

		rec := s.perform(payload, "t=1,v1=good")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("Event received", rec.Body.String())
	})
}
