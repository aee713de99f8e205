package dbg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_FirstCallWins(t *testing.T) {
	reset()

	var applied []uint32
	apply := func(m uint32) { applied = append(applied, m) }

	got := Init(0xffff, apply)
	require.Equal(t, uint32(0xffff), got)

	// Second init is a no-op, not an error.
	got = Init(0x0001, apply)
	require.Equal(t, uint32(0xffff), got)

	m, ok := Mask()
	require.True(t, ok)
	require.Equal(t, uint32(0xffff), m)
	require.Equal(t, []uint32{0xffff}, applied)
}

func TestInit_DefaultThenFull(t *testing.T) {
	reset()

	Init(0x0004, nil)
	Init(0xffff, nil)

	m, ok := Mask()
	require.True(t, ok)
	require.Equal(t, uint32(0x0004), m)
}

func TestMask_UnsetBeforeInit(t *testing.T) {
	reset()

	_, ok := Mask()
	require.False(t, ok)
}
