package fdisk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewColWidth(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want ColWidth
	}{
		{"half terminal", 0.5, Percentage(50)},
		{"zero", 0, Percentage(0)},
		{"rounds fraction up", 0.255, Percentage(26)},
		{"just below one", 0.999, Percentage(100)},
		{"one is absolute", 1.0, Length(1)},
		{"absolute rounds up", 12.3, Length(13)},
		{"wide column", 25, Length(25)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewColWidth(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNewColWidth_NegativeFails(t *testing.T) {
	for _, in := range []float64{-0.1, -1, -100} {
		_, err := NewColWidth(in)
		require.ErrorIs(t, err, ErrConversion)
	}
}

func TestColWidth_Accessors(t *testing.T) {
	p := Percentage(42)
	require.True(t, p.IsPercentage())
	require.Equal(t, uint(42), p.Value())
	require.Equal(t, "42%", p.String())

	l := Length(7)
	require.False(t, l.IsPercentage())
	require.Equal(t, uint(7), l.Value())
	require.Equal(t, "7ch", l.String())
}
