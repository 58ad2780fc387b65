package financing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateWithInterest(t *testing.T) {
	res, err := Simulate(Request{Price: 12000, DownPayment: 2000, AnnualRate: 12, Months: 12})
	require.NoError(t, err)

	assert.Equal(t, 10000.0, res.Principal)
	assert.Equal(t, 888.49, res.MonthlyPayment)
	require.Len(t, res.Schedule, 12)

	last := res.Schedule[len(res.Schedule)-1]
	assert.Equal(t, 0.0, last.Balance)
	assert.InDelta(t, res.MonthlyPayment, last.Payment, 0.05)
	assert.InDelta(t, res.Principal+res.TotalInterest, res.TotalPaid, 0.01)
	assert.InDelta(t, 661.85, res.TotalInterest, 0.1)

	// Interest shrinks as the balance is paid down.
	assert.Greater(t, res.Schedule[0].Interest, last.Interest)
}

func TestSimulateWithoutInterest(t *testing.T) {
	res, err := Simulate(Request{Price: 1000, Months: 3})
	require.NoError(t, err)

	assert.Equal(t, 333.33, res.MonthlyPayment)
	assert.Equal(t, 0.0, res.TotalInterest)
	assert.Equal(t, 1000.0, res.TotalPaid)
	assert.Equal(t, []float64{333.33, 333.33, 333.34}, []float64{
		res.Schedule[0].Payment, res.Schedule[1].Payment, res.Schedule[2].Payment,
	})
	assert.Equal(t, 0.0, res.Schedule[2].Balance)
}

func TestSimulateSmallPrincipalNeverOverpays(t *testing.T) {
	for _, req := range []Request{
		{Price: 1, Months: 120},
		{Price: 5, AnnualRate: 1, Months: 120},
		{Price: 2, AnnualRate: 30, Months: 97},
	} {
		res, err := Simulate(req)
		require.NoError(t, err)
		require.Len(t, res.Schedule, req.Months)

		for _, inst := range res.Schedule {
			assert.GreaterOrEqual(t, inst.Balance, 0.0, "row %d of %+v", inst.Number, req)
			assert.GreaterOrEqual(t, inst.Payment, 0.0, "row %d of %+v", inst.Number, req)
			assert.GreaterOrEqual(t, inst.Principal, 0.0, "row %d of %+v", inst.Number, req)
		}
		assert.Equal(t, 0.0, res.Schedule[req.Months-1].Balance)
		assert.InDelta(t, res.Principal+res.TotalInterest, res.TotalPaid, 0.01)
	}
}

func TestSimulateRejectsInvalidTerms(t *testing.T) {
	cases := map[string]Request{
		"zero price":        {Price: 0, Months: 12},
		"negative down":     {Price: 1000, DownPayment: -1, Months: 12},
		"down equals price": {Price: 1000, DownPayment: 1000, Months: 12},
		"no months":         {Price: 1000, Months: 0},
		"too many months":   {Price: 1000, Months: MaxMonths + 1},
		"negative rate":     {Price: 1000, Months: 12, AnnualRate: -2},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Simulate(req)
			assert.ErrorIs(t, err, ErrInvalidTerm)
		})
	}
}
