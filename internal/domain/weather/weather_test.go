package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonForMonth(t *testing.T) {
	tests := []struct {
		month time.Month
		want  Season
	}{
		{time.January, SeasonWinter},
		{time.February, SeasonWinter},
		{time.March, SeasonSpring},
		{time.May, SeasonSpring},
		{time.June, SeasonSummer},
		{time.August, SeasonSummer},
		{time.September, SeasonFall},
		{time.November, SeasonFall},
		{time.December, SeasonWinter},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeasonForMonth(tt.month), "month %s", tt.month)
	}
}

func TestSeasonBase(t *testing.T) {
	temp, condition := SeasonBase(SeasonSummer)
	assert.Equal(t, 80.0, temp)
	assert.Equal(t, ConditionSunny, condition)

	temp, condition = SeasonBase(SeasonWinter)
	assert.Equal(t, 35.0, temp)
	assert.Equal(t, ConditionCold, condition)
}

func TestTimeOfDayDelta(t *testing.T) {
	assert.Equal(t, -8.0, TimeOfDayDelta(0))  // night
	assert.Equal(t, -8.0, TimeOfDayDelta(4))  // night
	assert.Equal(t, -5.0, TimeOfDayDelta(5))  // morning
	assert.Equal(t, -5.0, TimeOfDayDelta(11)) // morning
	assert.Equal(t, 5.0, TimeOfDayDelta(12))  // afternoon
	assert.Equal(t, 5.0, TimeOfDayDelta(16))  // afternoon
	assert.Equal(t, -2.0, TimeOfDayDelta(17)) // evening
	assert.Equal(t, -2.0, TimeOfDayDelta(21)) // evening
	assert.Equal(t, -8.0, TimeOfDayDelta(22)) // night again
}

func TestConditionForCode(t *testing.T) {
	assert.Equal(t, ConditionClear, ConditionForCode(800))
	assert.Equal(t, ConditionPartlyCloudy, ConditionForCode(801))
	assert.Equal(t, ConditionLightRain, ConditionForCode(500))
	assert.Equal(t, ConditionHeavyRain, ConditionForCode(507))
	assert.Equal(t, ConditionThunderstorm, ConditionForCode(200))
	assert.Equal(t, ConditionSnow, ConditionForCode(600))
	assert.Equal(t, ConditionUnknown, ConditionForCode(999))
}

func TestRainAndClearSkyCodes(t *testing.T) {
	assert.True(t, IsRainCode(500))
	assert.True(t, IsRainCode(233))
	assert.False(t, IsRainCode(800))
	assert.False(t, IsRainCode(600)) // snow is not rain

	assert.True(t, IsClearSkyCode(800))
	assert.True(t, IsClearSkyCode(801))
	assert.False(t, IsClearSkyCode(802))
}
