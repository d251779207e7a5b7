//go:build unit

package settlement_test

import (
	"math/big"
	"strings"
	"testing"

	"compute-market/internal/domain/settlement"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "lowercase address is checksummed", input: "0x52908400098527886e0f7030069857d2e4169ee7", want: "0x52908400098527886E0F7030069857D2E4169EE7"},
		{name: "surrounding whitespace trimmed", input: "  0xde709f2102306220921060314715629080e2fb77 ", want: "0xde709f2102306220921060314715629080e2fb77"},
		{name: "missing 0x prefix", input: "52908400098527886e0f7030069857d2e4169ee7", wantErr: true},
		{name: "too short", input: "0x1234", wantErr: true},
		{name: "non hex characters", input: "0x52908400098527886e0f7030069857d2e4169eZZ", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := settlement.NormalizeAddress(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, settlement.ErrInvalidWalletAddress)
				assert.False(t, settlement.ValidateWalletAddress(tc.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, settlement.SameAddress(strings.TrimSpace(tc.input), got))
		})
	}
}

func TestNormalizeTxHash(t *testing.T) {
	valid := "0x" + strings.Repeat("AB", 32)

	got, err := settlement.NormalizeTxHash(valid)
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("ab", 32), got)

	for _, bad := range []string{
		"",
		strings.Repeat("ab", 32),
		"0x" + strings.Repeat("ab", 31),
		"0x" + strings.Repeat("ab", 33),
		"0x" + strings.Repeat("zz", 32),
	} {
		assert.False(t, settlement.ValidateTxHash(bad), bad)
	}
}

func TestTotalCost(t *testing.T) {
	cost := settlement.TotalCost(decimal.RequireFromString("0.75"), 24)
	assert.True(t, decimal.RequireFromString("18").Equal(cost), cost.String())
}

func TestBaseUnits(t *testing.T) {
	t.Run("converts to six decimals", func(t *testing.T) {
		got := settlement.ToBaseUnits(decimal.RequireFromString("12.345678"), settlement.USDCDecimals)
		assert.Equal(t, big.NewInt(12345678), got)
	})

	t.Run("truncates excess precision", func(t *testing.T) {
		got := settlement.ToBaseUnits(decimal.RequireFromString("1.0000009"), settlement.USDCDecimals)
		assert.Equal(t, big.NewInt(1000000), got)
	})

	t.Run("round trip", func(t *testing.T) {
		back := settlement.FromBaseUnits(big.NewInt(2500000), settlement.USDCDecimals)
		assert.Equal(t, "2.5", back.String())
	})

	t.Run("nil is zero", func(t *testing.T) {
		assert.True(t, settlement.FromBaseUnits(nil, 6).IsZero())
	})
}
