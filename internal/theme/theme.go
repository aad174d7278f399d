// Package theme suggests light or dark mode from when the user actually
// opens the app.
package theme

type Suggestion string

const (
	Light Suggestion = "light"
	Dark  Suggestion = "dark"
)

// Day runs [6, 18) local; everything else counts as night.
const (
	dayStartHour = 6
	dayEndHour   = 18
)

// threshold: one bucket has to lead by this many samples before we suggest.
const threshold = 2

// Recommend buckets hour-of-day samples into day and night and suggests a
// theme once one bucket leads by the threshold. Out-of-range samples are
// ignored. The second return is false when usage is too balanced (or too
// sparse) to call.
func Recommend(samples []int) (Suggestion, bool) {
	var day, night int
	for _, h := range samples {
		switch {
		case h < 0 || h > 23:
		case h >= dayStartHour && h < dayEndHour:
			day++
		default:
			night++
		}
	}
	switch {
	case night >= day+threshold:
		return Dark, true
	case day >= night+threshold:
		return Light, true
	default:
		return "", false
	}
}
