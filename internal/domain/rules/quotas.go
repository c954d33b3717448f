package rules

import "time"

const (
	StandardLifetimeCap = 3
	ElevatedWindowCap   = 15

	InterestWindow = time.Hour
)

func WindowStart(now time.Time, window time.Duration) time.Time {
	if window <= 0 {
		window = InterestWindow
	}
	return now.Add(-window)
}
