package weather

import (
	"context"
	"encoding/json"
	"github.com/evanhutnik/weathercheck-service/internal/cache"
	"github.com/evanhutnik/weathercheck-service/internal/common"
	"github.com/evanhutnik/weathercheck-service/internal/config"
	"github.com/evanhutnik/weathercheck-service/internal/nominatim"
	om "github.com/evanhutnik/weathercheck-service/internal/openmeteo"
	t "github.com/evanhutnik/weathercheck-service/internal/types"
	"go.uber.org/zap"
	"strings"
	"time"
)

const (
	cacheKeyPrefix  = "weather_data_"
	cacheTTL        = 30 * time.Minute
	DefaultLocation = "Tampa, FL"
)

type ServiceOption func(*Service)

func CacheOption(store cache.Store) ServiceOption {
	return func(s *Service) {
		s.cache = store
	}
}

type Service struct {
	geo   *nominatim.Client
	om    *om.Client
	cache cache.Store

	Logger *zap.SugaredLogger
}

func New(cfg *config.Config, logger *zap.SugaredLogger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Service{Logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		panic("Missing cache store in weather service")
	}

	fetcher := common.NewFetcher(cfg.UserAgent, logger)

	s.geo = nominatim.New(
		nominatim.BaseUrlOption(cfg.GeocodingBaseUrl),
		nominatim.FetcherOption(fetcher),
		nominatim.LoggerOption(logger),
	)

	s.om = om.New(
		om.BaseUrlOption(cfg.ForecastBaseUrl),
		om.FetcherOption(fetcher),
		om.LoggerOption(logger),
	)

	return s
}

// CacheKey lowercases query and collapses whitespace runs into underscores.
// Queries differing only in case or spacing share a key.
func CacheKey(query string) string {
	return cacheKeyPrefix + strings.Join(strings.Fields(strings.ToLower(query)), "_")
}

// EffectiveLocation is the location Lookup queries for.
func EffectiveLocation(location string) string {
	if strings.TrimSpace(location) == "" {
		return DefaultLocation
	}
	return location
}

// Lookup is GetWeatherData with a blank location replaced by DefaultLocation.
func (s *Service) Lookup(ctx context.Context, location string) *t.Snapshot {
	return s.GetWeatherData(ctx, EffectiveLocation(location))
}

// GetWeatherData returns the snapshot for query from cache, or builds it from
// the providers on a miss. It returns nil when no data is available.
func (s *Service) GetWeatherData(ctx context.Context, query string) *t.Snapshot {
	key := CacheKey(query)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var data t.WeatherData
		err := json.Unmarshal(cached, &data)
		if err == nil {
			s.Logger.Debugw("cache hit", "key", key, "action", "GetWeatherData")
			return &t.Snapshot{WeatherData: data, FromCache: true}
		}
		s.Logger.Errorw("Error unmarshalling cached weather: "+err.Error(),
			"key", key, "action", "GetWeatherData")
	}

	data := s.fetch(ctx, query)
	if data == nil {
		return nil
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		s.Logger.Errorw("Error marshalling weather for cache: "+err.Error(),
			"key", key, "action", "GetWeatherData")
	} else {
		s.cache.Set(ctx, key, encoded, cacheTTL)
	}

	return &t.Snapshot{WeatherData: *data, FromCache: false}
}

func (s *Service) fetch(ctx context.Context, query string) *t.WeatherData {
	geo := s.geo.GeoCode(ctx, query)
	if geo == nil {
		return nil
	}

	forecast := s.om.Forecast(ctx, geo.Latitude, geo.Longitude)
	if forecast == nil {
		return nil
	}

	data := Assemble(forecast, geo)
	return &data
}
