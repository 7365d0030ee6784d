package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_ClosesAtZero(t *testing.T) {
	s := Schedule(100000, 12, 12)
	require.Len(t, s, 12)

	principal := decimal.Zero
	for i, in := range s {
		assert.Equal(t, i+1, in.Number)
		assert.True(t, in.EMI.Equal(in.Interest.Add(in.Principal)), "row %d", in.Number)
		principal = principal.Add(in.Principal)
	}
	assert.True(t, s[len(s)-1].Balance.IsZero())
	assert.True(t, principal.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, "8884.88", s[0].EMI.StringFixed(2))
	assert.Equal(t, "1000.00", s[0].Interest.StringFixed(2))
}

func TestSchedule_ZeroRate(t *testing.T) {
	s := Schedule(1000, 3, 0)
	require.Len(t, s, 3)
	assert.Equal(t, "333.33", s[0].EMI.StringFixed(2))
	assert.Equal(t, "333.34", s[2].EMI.StringFixed(2))
	assert.True(t, TotalPayable(s).Equal(decimal.NewFromInt(1000)))
}

func TestSchedule_InvalidInput(t *testing.T) {
	assert.Nil(t, Schedule(0, 12, 12))
	assert.Nil(t, Schedule(1000, 0, 12))
}
