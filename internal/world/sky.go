package world

// Day/night cycle lengths in simulation frames.
const (
	DayLength      = 3600
	NightLength    = 2400
	DayCycleLength = DayLength + NightLength

	twilight = 0.1 // Fraction of the night spent fading at each end
)

// RGB is a background colour.
type RGB struct {
	R, G, B uint8
}

var (
	SkyBlue  = RGB{135, 206, 235}
	NightSky = RGB{25, 25, 50}
	CaveDark = RGB{40, 40, 40}
)

// cyclePosition maps any simulation time, including negative ones, into
// [0, DayCycleLength).
func cyclePosition(t int) int {
	c := t % DayCycleLength
	if c < 0 {
		c += DayCycleLength
	}
	return c
}

// IsNight reports whether simulation time t falls in the night part of the
// cycle.
func IsNight(t int) bool {
	return cyclePosition(t) >= DayLength
}

// SkyColor returns the surface sky colour at time t. The first and last tenth
// of the night fade between day and night colours.
func SkyColor(t int) RGB {
	c := cyclePosition(t)
	if c < DayLength {
		return SkyBlue
	}

	progress := float64(c-DayLength) / NightLength
	switch {
	case progress < twilight:
		return lerpRGB(SkyBlue, NightSky, progress/twilight)
	case progress > 1-twilight:
		return lerpRGB(NightSky, SkyBlue, (progress-(1-twilight))/twilight)
	default:
		return NightSky
	}
}

// BackgroundColor returns the clear colour for a level at time t. The
// underground is always dark.
func BackgroundColor(level Level, t int) RGB {
	if level == LevelUnderground {
		return CaveDark
	}
	return SkyColor(t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
