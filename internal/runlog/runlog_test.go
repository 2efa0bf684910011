package runlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run-log.csv")

	first := []Entry{
		{Date: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), Source: "paycheck", Note: "gross pay: 16 hours @ $7.25", Transactions: 2},
	}
	require.NoError(t, Append(path, first))

	second := []Entry{
		{Date: time.Date(2015, 1, 2, 0, 0, 0, 0, time.UTC), Source: "sweep", Err: "insufficient cash"},
	}
	require.NoError(t, Append(path, second))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2, "second append must not repeat the header")

	assert.Equal(t, "paycheck", entries[0].Source)
	assert.Equal(t, 2, entries[0].Transactions)
	assert.Equal(t, "2015-01-02", entries[1].Date.Format("2006-01-02"))
	assert.Equal(t, "insufficient cash", entries[1].Err)
}

func TestRead_Missing(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadRow(t *testing.T) {
	_, err := UnmarshalEntry([]string{"2015-01-01", "x"})
	require.Error(t, err)

	_, err = UnmarshalEntry([]string{"not-a-date", "x", "", "0", ""})
	require.Error(t, err)
}
