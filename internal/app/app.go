// Package app wires the adapters into the fulfillment core. Both entry
// points share it.
package app

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/jch254/muzo-fulfillment-handler/internal/adapters/genius"
	"github.com/jch254/muzo-fulfillment-handler/internal/adapters/httpx"
	"github.com/jch254/muzo-fulfillment-handler/internal/adapters/spotify"
	"github.com/jch254/muzo-fulfillment-handler/internal/config"
	"github.com/jch254/muzo-fulfillment-handler/internal/core/services"
	"github.com/jch254/muzo-fulfillment-handler/internal/observability"
)

const providerTimeout = 10 * time.Second

// NewDispatcher builds the provider clients, instruments them, and injects
// them into the handlers. A nil registerer disables provider metrics.
func NewDispatcher(cfg *config.Config, log *zap.Logger, reg prometheus.Registerer) *services.Dispatcher {
	httpClient := &http.Client{Timeout: providerTimeout}
	retry := httpx.Options{
		MaxRetries:  cfg.MaxRetries,
		BaseBackoff: cfg.RetryBackoff,
		Logger:      log,
	}

	var metrics *observability.Metrics
	if reg != nil {
		metrics = observability.NewMetrics(reg)
	}

	// -- Driven adapters
	geniusClient := genius.NewClient(genius.Options{
		BaseURL:     cfg.GeniusAPIURL,
		AccessToken: cfg.GeniusAccessToken,
		HTTPClient:  httpClient,
		Retry:       retry,
		Logger:      log,
	})
	spotifyClient := spotify.NewClient(spotify.Options{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
		BaseURL:      cfg.SpotifyAPIURL,
		TokenURL:     cfg.SpotifyTokenURL,
		HTTPClient:   httpClient,
		Retry:        retry,
		Logger:       log,
	})

	metadata := observability.InstrumentMetadata(geniusClient, "genius", log, metrics)
	streaming := observability.InstrumentStreaming(spotifyClient, "spotify", log, metrics)

	// -- Core
	lookup := services.NewLookup(metadata, streaming, log, services.LookupOptions{
		StrictTitleMatch: cfg.StrictTitleMatch,
	})
	disambiguation := services.NewDisambiguation(lookup, log)

	return services.NewDispatcher(lookup, disambiguation, log)
}
