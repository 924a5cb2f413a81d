package bootstrap

import (
	"net/http"
	"time"

	"hotelhub/internal/infra/sanity"
	"hotelhub/internal/pkg/config"

	"go.uber.org/fx"
)

var SanityModule = fx.Module("sanity",
	fx.Provide(
		NewSanityClient,
	),
)

func NewSanityClient(cfg config.Config) *sanity.Client {
	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}
	return sanity.NewClient(cfg.Sanity, httpClient)
}
