package weather

import "time"

// Season is the calendar season derived from the month.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// SeasonForMonth maps a calendar month to its season: Mar-May spring,
// Jun-Aug summer, Sep-Nov fall, the rest winter.
func SeasonForMonth(month time.Month) Season {
	switch {
	case month >= time.March && month <= time.May:
		return SeasonSpring
	case month >= time.June && month <= time.August:
		return SeasonSummer
	case month >= time.September && month <= time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// SeasonAt returns the season for the given instant.
func SeasonAt(t time.Time) Season {
	return SeasonForMonth(t.Month())
}

// seasonBase holds the fallback base temperature and condition per season.
var seasonBase = map[Season]struct {
	Temperature float64
	Condition   Condition
}{
	SeasonSpring: {Temperature: 65, Condition: ConditionMild},
	SeasonSummer: {Temperature: 80, Condition: ConditionSunny},
	SeasonFall:   {Temperature: 55, Condition: ConditionCool},
	SeasonWinter: {Temperature: 35, Condition: ConditionCold},
}

// SeasonBase returns the fallback base temperature and condition for s.
func SeasonBase(s Season) (float64, Condition) {
	base := seasonBase[s]
	return base.Temperature, base.Condition
}

// TimeOfDayDelta returns the fallback temperature adjustment for the hour
// bucket: morning −5, afternoon +5, evening −2, night −8.
func TimeOfDayDelta(hour int) float64 {
	switch {
	case hour >= 5 && hour < 12:
		return -5
	case hour >= 12 && hour < 17:
		return 5
	case hour >= 17 && hour < 22:
		return -2
	default:
		return -8
	}
}
