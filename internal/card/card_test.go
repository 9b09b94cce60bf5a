package card

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValidity(t *testing.T) {
	t.Run("zero value is hidden", func(t *testing.T) {
		var c Card
		assert.False(t, c.IsValid())
		assert.Equal(t, -1, c.Color())
		assert.Equal(t, -1, c.Rank())
		assert.Equal(t, "XX", c.String())
		assert.Equal(t, Hidden(), c)
	})

	t.Run("negative indices are invalid", func(t *testing.T) {
		assert.False(t, New(-1, 2).IsValid())
		assert.False(t, New(0, -1).IsValid())
	})

	t.Run("valid card exposes its identity", func(t *testing.T) {
		c := New(3, 4)
		assert.True(t, c.IsValid())
		assert.Equal(t, 3, c.Color())
		assert.Equal(t, 4, c.Rank())
		assert.Equal(t, "W5", c.String())
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Card
		wantErr bool
	}{
		{in: "R1", want: New(0, 0)},
		{in: "b5", want: New(4, 4)},
		{in: " G3 ", want: New(2, 2)},
		{in: "Z1", wantErr: true},
		{in: "R0", wantErr: true},
		{in: "R10", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in, DefaultSymbols)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSymbols(t *testing.T) {
	assert.Equal(t, byte('R'), DefaultSymbols.ColorChar(0))
	assert.Equal(t, byte('B'), DefaultSymbols.ColorChar(4))
	assert.Equal(t, byte('X'), DefaultSymbols.ColorChar(5))
	assert.Equal(t, byte('1'), DefaultSymbols.RankChar(0))
	assert.Equal(t, byte('X'), DefaultSymbols.RankChar(-1))

	custom := ColorSymbols("RYGWBM")
	assert.Equal(t, "M2", New(5, 1).Format(custom))
}

func TestMarshalJSON(t *testing.T) {
	out, err := json.Marshal(New(1, 2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"Y","rank":2}`, string(out))

	out, err = json.Marshal(Hidden())
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":null,"rank":null}`, string(out))
}
