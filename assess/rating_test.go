package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatePoints(t *testing.T) {
	tests := []struct {
		n    int
		want Rating
	}{
		{1000, Ballpark},
		{101, Ballpark},
		{100, Nice},
		{39, Nice},
		{38, Exceptional},
		{26, Exceptional},
		{25, Optimal},
		{24, Unexpected},
		{3, Unexpected},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RatePoints(tt.n), "RatePoints(%d)", tt.n)
	}
}

func TestRatingStrings(t *testing.T) {
	for r := Unexpected; r <= Ballpark; r++ {
		assert.NotContains(t, r.String(), "Rating(")
		assert.NotEmpty(t, r.Message())
	}
	assert.Equal(t, "Rating(42)", Rating(42).String())
}
