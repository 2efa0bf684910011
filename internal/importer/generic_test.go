package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `posted,fitid,type,checkno,amount,name
2015-01-02,20150102-1,credit,,100.00,paycheck
2015-01-15,20150115-1,debit,101,-4.47,ridley's
`

func TestGenericParser_Parse(t *testing.T) {
	p := &GenericParser{}

	entries, err := p.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "20150102-1", entries[0].FitID)
	assert.True(t, entries[0].Amount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, 0, entries[0].CheckNo)

	assert.Equal(t, 101, entries[1].CheckNo)
	assert.True(t, entries[1].Amount.IsNegative())
	assert.Equal(t, "2015-01-15", entries[1].Posted.Format("2006-01-02"))
}

func TestGenericParser_BadAmount(t *testing.T) {
	p := &GenericParser{}

	_, err := p.Parse(strings.NewReader("posted,fitid,type,checkno,amount,name\n2015-01-02,x,credit,,oops,store\n"))
	require.Error(t, err)
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()
	assert.NotNil(t, reg.Get("generic"))
	assert.NotNil(t, reg.Get("GENERIC"), "format lookup is case-insensitive")
	assert.Nil(t, reg.Get("unknown"))

	assert.Panics(t, func() { reg.Register(&GenericParser{}) })
}
