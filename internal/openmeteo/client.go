package openmeteo

import (
	"context"
	"github.com/evanhutnik/weathercheck-service/internal/common"
	"go.uber.org/zap"
	"net/url"
	"strconv"
	"strings"
)

const errorLabel = "Weather fetch error"

var (
	currentFields = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"weather_code",
		"wind_speed_10m",
	}
	dailyFields = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"weather_code",
		"precipitation_probability_max",
	}
)

// Response is the subset of a forecast response that gets assembled.
// Every numeric value may be null upstream.
type Response struct {
	Current    *Current          `json:"current"`
	Daily      *Daily            `json:"daily"`
	DailyUnits map[string]string `json:"daily_units"`
}

type Current struct {
	Temperature         *float64 `json:"temperature_2m"`
	RelativeHumidity    *float64 `json:"relative_humidity_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	WeatherCode         *int     `json:"weather_code"`
	WindSpeed           *float64 `json:"wind_speed_10m"`
}

// Daily holds parallel arrays indexed by day offset, 0 being today.
type Daily struct {
	Time                        []string   `json:"time"`
	TemperatureMax              []*float64 `json:"temperature_2m_max"`
	TemperatureMin              []*float64 `json:"temperature_2m_min"`
	WeatherCode                 []*int     `json:"weather_code"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
}

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
		panic("Missing baseUrl in openmeteo client")
	}
	if c.fetcher == nil {
		panic("Missing fetcher in openmeteo client")
	}
	if c.logger == nil {
		c.logger = zap.NewNop().Sugar()
	}
	return c
}

// Forecast returns the raw forecast for the coordinates, or nil on failure.
func (c Client) Forecast(ctx context.Context, lat float64, long float64) *Response {
	req, err := url.Parse(c.baseUrl)
	if err != nil {
		c.logger.Errorw(errorLabel+": failed to parse baseUrl",
			"baseUrl", c.baseUrl, "error", err.Error())
		return nil
	}

	q := req.Query()
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(long, 'f', -1, 64))
	q.Set("current", strings.Join(currentFields, ","))
	q.Set("daily", strings.Join(dailyFields, ","))
	q.Set("temperature_unit", "fahrenheit")
	q.Set("timezone", "auto")
	req.RawQuery = q.Encode()

	var respObj Response
	if !c.fetcher.GetJSON(ctx, req.String(), nil, errorLabel, &respObj) {
		return nil
	}
	if respObj.Current == nil && respObj.Daily == nil {
		c.logger.Errorw(errorLabel+": response has no current or daily data",
			"lat", lat, "lon", long, "action", "Forecast")
		return nil
	}
	return &respObj
}
