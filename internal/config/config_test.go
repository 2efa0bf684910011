package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myfi.yaml")

	cfg := Default("Smith family")
	cfg.Paychecks = []PaycheckConfig{{
		Source: "IFA", Hours: "16.00", Rate: "7.25", Weekday: "TH", Start: "2015-01-01",
	}}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Smith family", got.Household.Name)
	assert.Equal(t, "01-01", got.Fiscal.YearStart)
	require.Len(t, got.Paychecks, 1)
	assert.Equal(t, "TH", got.Paychecks[0].Weekday)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestPayRates(t *testing.T) {
	rates, err := Default("x").Rates.PayRates()
	require.NoError(t, err)
	assert.Equal(t, "0.062", rates.FICA.String())
	assert.Equal(t, "0.0145", rates.Medicare.String())

	bad := RatesConfig{Federal: "ten percent"}
	_, err = bad.PayRates()
	require.Error(t, err)

	negative := RatesConfig{Federal: "-0.1", FICA: "0.062", Medicare: "0.0145", Tithe: "0.1"}
	_, err = negative.PayRates()
	require.Error(t, err)
}

func TestSweepConfig(t *testing.T) {
	cfg, err := Default("x").Budget.SweepConfig()
	require.NoError(t, err)
	assert.Equal(t, "1000", cfg.EmergencyTarget.String())

	bad := BudgetConfig{EmergencyTarget: "lots"}
	_, err = bad.SweepConfig()
	require.Error(t, err)
}
