package cell

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collectiontour/internal/seq"
)

func TestCell_MixedSequence(t *testing.T) {
	row := seq.Of[Cell](Int(3), Float(3.3), Text("three"))

	require.Equal(t, 3, row.Len())
	assert.Equal(t, KindInt, row.At(0).Kind())
	assert.Equal(t, KindFloat, row.At(1).Kind())
	assert.Equal(t, KindText, row.At(2).Kind())
	assert.Equal(t, `[Int(3), Float(3.3), Text("three")]`, row.String())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		in   Cell
		want string
	}{
		{Int(3), "integer 3"},
		{Float(3.3), "float 3.3"},
		{Text("three"), `text "three"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.in.Kind()), func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.in))
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal([]Cell{Int(3), Float(3.3), Text("three")})
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"kind":"int","value":3},{"kind":"float","value":3.3},{"kind":"text","value":"three"}]`,
		string(data))
}
