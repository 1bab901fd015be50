package parameter

// Satellite Row Layout (world units)
const (
	// SatelliteBaseMargin is the left margin when no counter is on screen
	SatelliteBaseMargin = 8

	// SatelliteCounterMarginBase and SatelliteCounterMarginFactor reserve room for a visible counter:
	// round(base + (log10(value)+1) * factor)
	SatelliteCounterMarginBase   = 32
	SatelliteCounterMarginFactor = 5

	// SatelliteOriginY is the top of the first row
	SatelliteOriginY = 8

	// SatelliteScale is the uniform scale applied to every laid out satellite
	SatelliteScale = 0.6

	// SatelliteGap is the horizontal spacing after each scaled satellite
	SatelliteGap = 6

	// SatelliteWrapRatio is the fraction of viewport width past which a row wraps
	SatelliteWrapRatio = 0.85

	// SatelliteRowStep is the vertical advance per wrapped row
	SatelliteRowStep = 12
)
