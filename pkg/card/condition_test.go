package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKnownCodes(t *testing.T) {
	tests := []struct {
		code int
		want Condition
	}{
		{0, Clear}, {1, Clear},
		{2, Cloudy}, {3, Cloudy}, {45, Cloudy},
		{51, Rain}, {61, Rain}, {65, Rain}, {80, Rain}, {82, Rain},
		{71, Snow}, {77, Snow}, {85, Snow}, {86, Snow},
		{95, Storm}, {96, Storm}, {99, Storm},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.code), "code %d", tt.code)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	valid := map[Condition]bool{Clear: true, Cloudy: true, Rain: true, Snow: true, Storm: true}
	for code := -50; code <= 150; code++ {
		assert.True(t, valid[Classify(code)], "code %d", code)
	}
}

func TestClassifyDefaultsToCloudy(t *testing.T) {
	for _, code := range []int{-1, 4, 42, 100, 1000} {
		assert.Equal(t, Cloudy, Classify(code), "code %d", code)
	}
}

func TestConditionString(t *testing.T) {
	tests := map[Condition]string{
		Clear:  "clear",
		Cloudy: "cloudy",
		Rain:   "rain",
		Snow:   "snow",
		Storm:  "storm",
	}
	for c, want := range tests {
		assert.Equal(t, want, c.String())
	}
	assert.Equal(t, "cloudy", Condition(99).String())
}
