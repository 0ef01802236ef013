package types

// GeoCode is the normalized first match returned by the geocoding provider.
type GeoCode struct {
	Latitude  float64
	Longitude float64
	Name      string
	Country   string
}

type Location struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Current struct {
	Temperature         *float64 `json:"temperature"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	Humidity            *float64 `json:"humidity"`
	WindSpeed           *float64 `json:"wind_speed"`
	WeatherCode         *int     `json:"weather_code"`
}

type Today struct {
	High                     *float64 `json:"high"`
	Low                      *float64 `json:"low"`
	PrecipitationProbability *float64 `json:"precipitation_probability"`
}

type DailyForecast struct {
	Date                     string   `json:"date"`
	High                     *float64 `json:"high"`
	Low                      *float64 `json:"low"`
	WeatherCode              *int     `json:"weather_code"`
	PrecipitationProbability *float64 `json:"precipitation_probability"`
}

// WeatherData is the cached form of a snapshot.
type WeatherData struct {
	Location         Location          `json:"location"`
	Current          Current           `json:"current"`
	Today            Today             `json:"today"`
	ExtendedForecast []DailyForecast   `json:"extended_forecast"`
	Units            map[string]string `json:"units"`
}

// Snapshot is what callers get back. FromCache is never written to the cache.
type Snapshot struct {
	WeatherData
	FromCache bool `json:"from_cache"`
}
