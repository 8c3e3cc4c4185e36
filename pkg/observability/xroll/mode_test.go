package xroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeAppend},
		{in: "append", want: ModeAppend},
		{in: " Shift ", want: ModeShift},
		{in: "SHIFT", want: ModeShift},
		{in: "rotate", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMode)
				assert.ErrorIs(t, err, ErrConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_Text(t *testing.T) {
	text, err := ModeShift.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "shift", string(text))

	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("shift")))
	assert.Equal(t, ModeShift, m)

	require.Error(t, m.UnmarshalText([]byte("bogus")))
	assert.Equal(t, ModeShift, m, "解析失败不修改原值")

	_, err = Mode(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Equal(t, "mode(9)", Mode(9).String())
}

func TestRollType_String(t *testing.T) {
	assert.Equal(t, "today", RollToday.String())
	assert.Equal(t, "yesterday", RollYesterday.String())
	assert.Equal(t, "roll_type(5)", RollType(5).String())
}
