package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorace/domain/core"
)

func sampleTable() *Table {
	return &Table{Records: []Record{
		{RT: 244, Modality: "x"},
		{RT: 249, Modality: "x"},
		{RT: 245, Modality: "y"},
		{RT: 246, Modality: "y"},
		{RT: 234, Modality: "z"},
		{RT: 238, Modality: "z"},
		{RT: 240, Modality: "z"},
	}}
}

func TestTable_Modalities(t *testing.T) {
	assert.Equal(t, []string{"x", "y", "z"}, sampleTable().Modalities())
}

func TestTable_RTs(t *testing.T) {
	rts, err := sampleTable().RTs("z")
	require.NoError(t, err)
	assert.Equal(t, []float64{234, 238, 240}, rts)

	_, err = sampleTable().RTs("tactile")
	assert.True(t, core.IsDataNotFound(err))
}

func TestTable_Split(t *testing.T) {
	samples, names, err := sampleTable().Split(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, names)
	require.Len(t, samples, 3)
	assert.Equal(t, []float64{244, 249}, samples[0])

	samples, names, err = sampleTable().Split([]string{"z", "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "x"}, names)
	assert.Equal(t, []float64{234, 238, 240}, samples[0])

	_, _, err = sampleTable().Split([]string{"x", "missing"})
	assert.True(t, core.IsDataNotFound(err))
}

func TestTable_SplitEmpty(t *testing.T) {
	empty := &Table{}
	_, _, err := empty.Split(nil)
	assert.True(t, core.IsInvalidArgument(err))
}
