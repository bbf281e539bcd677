package documents

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContract(t *testing.T) {
	in := `
propertyAddress: 12 Elm Street
landlordName: A. Smith
tenantName: J. Doe
leaseStart: 2025-01-01
leaseEnd: "2025-12-31"
monthlyRent: 1500
securityDeposit: "1500.50"
petsAllowed: true
utilities: [Water, Trash]
`
	data, err := LoadContract(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "A. Smith", data.LandlordName)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), data.LeaseStart)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), data.LeaseEnd)
	assert.True(t, data.MonthlyRent.Equal(decimal.NewFromInt(1500)))
	assert.True(t, data.SecurityDeposit.Equal(decimal.RequireFromString("1500.50")))
	assert.True(t, data.LateFee.IsZero())
	assert.Equal(t, []string{"Water", "Trash"}, data.Utilities)

	_, err = Contract(data)
	assert.NoError(t, err)
}

func TestLoadContractJSON(t *testing.T) {
	data, err := LoadContract(strings.NewReader(`{"tenantName": "J. Doe", "monthlyRent": "995.00"}`))
	require.NoError(t, err)
	assert.Equal(t, "J. Doe", data.TenantName)
	assert.Equal(t, "$995.00", FormatMoney(data.MonthlyRent))
}

func TestLoadContractErrors(t *testing.T) {
	_, err := LoadContract(strings.NewReader("leaseStart: next week\n"))
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = LoadContract(strings.NewReader("rent: 100\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rent")

	_, err = LoadContract(strings.NewReader("monthlyRent: lots\n"))
	require.Error(t, err)
}
