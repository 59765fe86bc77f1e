package models

import (
	"math"

	"github.com/shenikar/mealmatch_system/internal/apperrors"
)

// earthRadiusKm - радиус Земли в километрах (сферическая модель)
const earthRadiusKm = 6371.0

// GeoPoint представляет географическую координату (WGS 84)
type GeoPoint struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// NewGeoPoint создает точку, проверяя допустимость координат
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return GeoPoint{}, apperrors.Newf(apperrors.KindInvalidCoordinate,
			"coordinate (%f, %f) is out of range", lat, lon)
	}
	return GeoPoint{Lat: lat, Lon: lon}, nil
}

// DistanceKm возвращает расстояние по дуге большого круга между двумя точками
// (формула гаверсинусов)
func DistanceKm(a, b GeoPoint) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// RoundKm округляет расстояние до 0.1 км для выдачи клиенту.
// Полная точность сохраняется только для ранжирования.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
