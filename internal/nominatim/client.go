package nominatim

import (
	"context"
	"github.com/evanhutnik/weathercheck-service/internal/common"
	t "github.com/evanhutnik/weathercheck-service/internal/types"
	"go.uber.org/zap"
	"net/url"
	"strconv"
	"strings"
)

const (
	errorLabel = "Geocoding error"
	unknown    = "Unknown"
)

type ClientOption func(*Client)

func BaseUrlOption(baseUrl string) ClientOption {
	return func(c *Client) {
		c.baseUrl = baseUrl
	}
}

func FetcherOption(f *common.Fetcher) ClientOption {
	return func(c *Client) {
		c.fetcher = f
	}
}

func LoggerOption(logger *zap.SugaredLogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

type Client struct {
	baseUrl string
	fetcher *common.Fetcher
	logger  *zap.SugaredLogger
}

func New(opts ...ClientOption) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseUrl == "" {
		panic("Missing baseUrl in nominatim client")
	}
	if c.fetcher == nil {
		panic("Missing fetcher in nominatim client")
	}
	if c.logger == nil {
		c.logger = zap.NewNop().Sugar()
	}
	return c
}

// GeoCode resolves query to the provider's first match. It returns nil when
// the request fails, nothing matched or the match has unusable coordinates.
func (c *Client) GeoCode(ctx context.Context, query string) *t.GeoCode {
	req, err := url.Parse(c.baseUrl)
	if err != nil {
		c.logger.Errorw(errorLabel+": failed to parse baseUrl",
			"baseUrl", c.baseUrl, "error", err.Error())
		return nil
	}

	q := req.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("addressdetails", "1")
	req.RawQuery = q.Encode()

	var places []Place
	if !c.fetcher.GetJSON(ctx, req.String(), nil, errorLabel, &places) {
		return nil
	}
	if len(places) == 0 {
		c.logger.Infow("no geocoding match", "query", query, "action", "GeoCode")
		return nil
	}
	place := places[0]

	lat, err := strconv.ParseFloat(place.Latitude, 64)
	if err != nil {
		c.logger.Errorw(errorLabel+": invalid latitude",
			"query", query, "lat", place.Latitude, "action", "GeoCode")
		return nil
	}
	lon, err := strconv.ParseFloat(place.Longitude, 64)
	if err != nil {
		c.logger.Errorw(errorLabel+": invalid longitude",
			"query", query, "lon", place.Longitude, "action", "GeoCode")
		return nil
	}

	return &t.GeoCode{
		Latitude:  lat,
		Longitude: lon,
		Name:      placeName(place),
		Country:   placeCountry(place),
	}
}

func placeName(p Place) string {
	for _, name := range []string{
		p.Address.City,
		p.Address.Town,
		p.Address.Village,
		p.Address.Municipality,
		p.Address.County,
	} {
		if name != "" {
			return name
		}
	}
	if p.DisplayName != "" {
		if first := strings.TrimSpace(strings.Split(p.DisplayName, ",")[0]); first != "" {
			return first
		}
	}
	return unknown
}

func placeCountry(p Place) string {
	if p.Address.Country != "" {
		return p.Address.Country
	}
	if p.DisplayName != "" {
		segments := strings.Split(p.DisplayName, ",")
		if last := strings.TrimSpace(segments[len(segments)-1]); last != "" {
			return last
		}
	}
	return unknown
}
