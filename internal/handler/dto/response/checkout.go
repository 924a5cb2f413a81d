package response

import (
	"hotelhub/internal/usecase/commands"
)

type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func FromCheckoutSession(s *commands.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		ID:  s.ID,
		URL: s.URL,
	}
}
