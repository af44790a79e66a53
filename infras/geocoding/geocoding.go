package geocoding

//go:generate go run go.uber.org/mock/mockgen -source=./geocoding.go -destination=./mocks/geocoding_mock.go -package=mocks

import (
	"context"
	"courtbook/config"
	"courtbook/infras/otel"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"googlemaps.github.io/maps"
)

const defaultRegion = "vn"

type Location struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formattedAddress"`
	PlaceID          string  `json:"placeId"`
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (Location, error)
}

type mapsGeocoder struct {
	client *maps.Client
	region string
	otel   otel.Otel
}

// unconfigured answers every call with a configuration failure instead of refusing to start.
type unconfigured struct {
	reason string
}

func New(cfg *config.Config, ot otel.Otel) Geocoder {
	apiKey := cfg.External.GoogleMaps.APIKey
	if apiKey == "" {
		log.Warn().Msg("Google Maps API key is not configured, geocoding disabled")

		return unconfigured{reason: "google maps api key is not configured"}
	}

	options := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if cfg.External.GoogleMaps.BaseURL != "" {
		options = append(options, maps.WithBaseURL(cfg.External.GoogleMaps.BaseURL))
	}

	client, err := maps.NewClient(options...)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Google Maps client, geocoding disabled")

		return unconfigured{reason: "google maps client is misconfigured: " + err.Error()}
	}

	region := cfg.External.GoogleMaps.Region
	if region == "" {
		region = defaultRegion
	}

	return &mapsGeocoder{
		client: client,
		region: region,
		otel:   ot,
	}
}

func (g *mapsGeocoder) Geocode(ctx context.Context, address string) (loc Location, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".geocoding.Geocode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	address = strings.TrimSpace(address)
	if address == "" {
		return loc, failure.Validation("address", "is required") //nolint:wrapcheck
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  g.region,
	})
	if err != nil {
		log.Error().Err(err).Str("address", address).Msg("failed to geocode address")

		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return loc, failure.Network(err) //nolint:wrapcheck
		}

		return loc, failure.Provider(http.StatusBadGateway, err.Error()) //nolint:wrapcheck
	}

	if len(results) == 0 {
		return loc, failure.NotFound("address not found") //nolint:wrapcheck
	}

	best := results[0]

	return Location{
		Lat:              best.Geometry.Location.Lat,
		Lng:              best.Geometry.Location.Lng,
		FormattedAddress: best.FormattedAddress,
		PlaceID:          best.PlaceID,
	}, nil
}

func (u unconfigured) Geocode(_ context.Context, _ string) (Location, error) {
	return Location{}, failure.Configuration(u.reason) //nolint:wrapcheck
}
