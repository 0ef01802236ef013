package weather

import (
	om "github.com/evanhutnik/weathercheck-service/internal/openmeteo"
	t "github.com/evanhutnik/weathercheck-service/internal/types"
)

// Assemble maps a raw forecast and its geocode into the cached snapshot form.
// Missing fields come through as nil.
func Assemble(forecast *om.Response, geo *t.GeoCode) t.WeatherData {
	data := t.WeatherData{
		Location: t.Location{
			Name:    geo.Name,
			Country: geo.Country,
		},
		ExtendedForecast: []t.DailyForecast{},
		Units:            forecast.DailyUnits,
	}

	if cur := forecast.Current; cur != nil {
		data.Current = t.Current{
			Temperature:         cur.Temperature,
			ApparentTemperature: cur.ApparentTemperature,
			Humidity:            cur.RelativeHumidity,
			WindSpeed:           cur.WindSpeed,
			WeatherCode:         cur.WeatherCode,
		}
	}

	if daily := forecast.Daily; daily != nil {
		data.Today = t.Today{
			High:                     at(daily.TemperatureMax, 0),
			Low:                      at(daily.TemperatureMin, 0),
			PrecipitationProbability: at(daily.PrecipitationProbabilityMax, 0),
		}
		data.ExtendedForecast = extendedForecast(daily)
	}

	return data
}

func extendedForecast(daily *om.Daily) []t.DailyForecast {
	days := make([]t.DailyForecast, 0, len(daily.Time))
	for i, date := range daily.Time {
		days = append(days, t.DailyForecast{
			Date:                     date,
			High:                     at(daily.TemperatureMax, i),
			Low:                      at(daily.TemperatureMin, i),
			WeatherCode:              at(daily.WeatherCode, i),
			PrecipitationProbability: at(daily.PrecipitationProbabilityMax, i),
		})
	}
	return days
}

func at[T any](values []*T, i int) *T {
	if i < len(values) {
		return values[i]
	}
	return nil
}
