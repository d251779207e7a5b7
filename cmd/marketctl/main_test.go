//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"compute-market/internal/domain/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const demandJSON = `{
	"id": "7f1c1d9c-2f4e-4c55-8a43-2a4b6c1e9d01",
	"walletAddress": "0xde709f2102306220921060314715629080e2fb77",
	"cpuCores": 8,
	"gpuCount": 1,
	"gpuType": "RTX 4090",
	"ramGB": 32,
	"storageGB": 500,
	"maxPricePerHour": 2.5,
	"duration": 10
}`

const supplyJSON = `[
	{
		"id": "11111111-1111-4111-8111-111111111111",
		"walletAddress": "0x52908400098527886E0F7030069857D2E4169EE7",
		"cpuCores": 16, "gpuCount": 2, "gpuType": "RTX 4090",
		"ramGB": 64, "storageGB": 1000, "pricePerHour": "2.00"
	},
	{
		"id": "22222222-2222-4222-8222-222222222222",
		"walletAddress": "0x52908400098527886E0F7030069857D2E4169EE7",
		"cpuCores": 8, "gpuCount": 1, "gpuType": "RTX 4090",
		"ramGB": 32, "storageGB": 500, "pricePerHour": 1.5
	},
	{
		"id": "33333333-3333-4333-8333-333333333333",
		"walletAddress": "0x52908400098527886E0F7030069857D2E4169EE7",
		"cpuCores": 4, "gpuCount": 0,
		"ramGB": 16, "storageGB": 100, "pricePerHour": 0.5,
		"available": true
	}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.App{
		Name:     "marketctl",
		Writer:   &out,
		Commands: []*cli.Command{matchCmd, selectCmd},
	}
	err := app.Run(append([]string{"marketctl"}, args...))
	return out.String(), err
}

func TestLoadDemand(t *testing.T) {
	t.Run("defaults status to active", func(t *testing.T) {
		demand, err := loadDemand(writeFile(t, "demand.json", demandJSON))
		require.NoError(t, err)
		assert.Equal(t, market.DemandActive, demand.Status)
		assert.Equal(t, 10, demand.DurationHours)
		assert.Equal(t, "2.5", demand.MaxPricePerHour.String())
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := loadDemand(writeFile(t, "demand.json", `{"cpuCores": 1, "status": "paused"}`))
		assert.ErrorIs(t, err, market.ErrInvalidDemandStatus)
	})

	t.Run("reports a missing file", func(t *testing.T) {
		_, err := loadDemand(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestLoadSupplies(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		pool, err := loadSupplies(writeFile(t, "supply.json", supplyJSON))
		require.NoError(t, err)
		require.Len(t, pool, 3)
		assert.True(t, pool[0].Available, "missing availability means available")
		assert.Equal(t, "RTX 4090", pool[1].GPUType)
	})

	t.Run("single object", func(t *testing.T) {
		pool, err := loadSupplies(writeFile(t, "supply.json", `{"cpuCores": 2, "available": false, "pricePerHour": 1}`))
		require.NoError(t, err)
		require.Len(t, pool, 1)
		assert.False(t, pool[0].Available)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := loadSupplies(writeFile(t, "supply.json", `[{"cpuCores": "many"}]`))
		assert.Error(t, err)
	})
}

func TestMatchCommand(t *testing.T) {
	demand := writeFile(t, "demand.json", demandJSON)
	supply := writeFile(t, "supply.json", supplyJSON)

	t.Run("lists compatible offers only", func(t *testing.T) {
		out, err := runApp(t, "match", "--demand", demand, "--supply", supply)
		require.NoError(t, err)
		assert.Contains(t, out, "11111111-1111-4111-8111-111111111111")
		assert.Contains(t, out, "22222222-2222-4222-8222-222222222222")
		assert.NotContains(t, out, "33333333-3333-4333-8333-333333333333")
	})

	t.Run("respects the limit", func(t *testing.T) {
		// Both offers clamp to 100, so pool order decides.
		out, err := runApp(t, "match", "-d", demand, "-s", supply, "-n", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Compatibility score: 100/100")
		assert.Contains(t, out, "11111111-1111-4111-8111-111111111111")
		assert.NotContains(t, out, "22222222-2222-4222-8222-222222222222")
	})

	t.Run("all shows rejected offers", func(t *testing.T) {
		out, err := runApp(t, "match", "--all", "-d", demand, "-s", supply)
		require.NoError(t, err)
		assert.Contains(t, out, "33333333-3333-4333-8333-333333333333")
		assert.Contains(t, out, "false")
	})

	t.Run("requires both inputs", func(t *testing.T) {
		_, err := runApp(t, "match", "--demand", demand)
		assert.Error(t, err)
	})
}

func TestSelectCommand(t *testing.T) {
	demand := writeFile(t, "demand.json", demandJSON)

	t.Run("picks the cheapest survivor", func(t *testing.T) {
		out, err := runApp(t, "select", "-d", demand, "-s", writeFile(t, "supply.json", supplyJSON))
		require.NoError(t, err)
		assert.Contains(t, out, "22222222-2222-4222-8222-222222222222")
		assert.Contains(t, out, "15.000000")
	})

	t.Run("reports when nothing fits", func(t *testing.T) {
		out, err := runApp(t, "select", "-d", demand, "-s", writeFile(t, "supply.json", `[]`))
		require.NoError(t, err)
		assert.Contains(t, out, "no offer satisfies the request")
	})
}
