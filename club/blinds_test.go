package club

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlindStructure(t *testing.T) {
	levels, err := ParseBlindStructure("25/50, 50/100, 100/200")
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, BlindLevel{SmallBlind: 25, BigBlind: 50}, levels[0])
	assert.Equal(t, BlindLevel{SmallBlind: 100, BigBlind: 200}, levels[2])
}

func TestParseBlindStructureWithAntes(t *testing.T) {
	levels, err := ParseBlindStructure("100/200/25, 200/400/50")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, BlindLevel{SmallBlind: 100, BigBlind: 200, Ante: 25}, levels[0])
	assert.Equal(t, 50, levels[1].Ante)
}

func TestParseBlindStructureToleratesSpacing(t *testing.T) {
	levels, err := ParseBlindStructure("  25 / 50 ,50/100,  ")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, 25, levels[0].SmallBlind)
}

func TestParseBlindStructureErrors(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"25",
		"25/50/75/100",
		"abc/def",
		"25/-50",
	}
	for _, c := range cases {
		_, err := ParseBlindStructure(c)
		assert.Error(t, err, "input %q", c)
	}
}

func TestNormalizeLevelTimesFansOutSingleTime(t *testing.T) {
	got := NormalizeLevelTimes("20 min", "25/50, 50/100, 100/200")
	assert.Equal(t, "20 min, 20 min, 20 min", got)
}

func TestNormalizeLevelTimesPassesThroughMultiple(t *testing.T) {
	got := NormalizeLevelTimes("20 min, 30 min", "25/50, 50/100, 100/200")
	assert.Equal(t, "20 min, 30 min", got)
}

func TestNormalizeLevelTimesEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizeLevelTimes("", "25/50, 50/100"))
	assert.Equal(t, "", NormalizeLevelTimes("   ", "25/50, 50/100"))
}

func TestNormalizeLevelTimesSingleLevelStructure(t *testing.T) {
	assert.Equal(t, "20 min", NormalizeLevelTimes("20 min", "25/50"))
}
