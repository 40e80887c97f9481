package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	slip := SalarySlip{
		Basic:           30000,
		HRA:             12000,
		Allowances:      5000,
		PF:              3600,
		Tax:             4500,
		OtherDeductions: 400,
		// Caller-supplied totals are discarded.
		TotalEarnings: 1,
		NetPay:        1,
	}

	slip.ComputeTotals()

	assert.Equal(t, 47000.0, slip.TotalEarnings)
	assert.Equal(t, 8500.0, slip.TotalDeductions)
	assert.Equal(t, 38500.0, slip.NetPay)
}

func TestComputeTotalsZeroComponents(t *testing.T) {
	var slip SalarySlip
	slip.ComputeTotals()

	assert.Zero(t, slip.TotalEarnings)
	assert.Zero(t, slip.TotalDeductions)
	assert.Zero(t, slip.NetPay)
}
