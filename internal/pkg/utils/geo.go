package utils

// ValidateCoordinates reports whether lat/lng form a valid WGS84 point.
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
