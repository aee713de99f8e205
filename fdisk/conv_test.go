package fdisk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLabelKind(t *testing.T) {
	tests := []struct {
		in   string
		want LabelKind
	}{
		{"dos", LabelDOS},
		{"mbr", LabelDOS},
		{"gpt", LabelGPT},
		{"bsd", LabelBSD},
		{"sgi", LabelSGI},
		{"sun", LabelSun},
	}
	for _, tc := range tests {
		got, err := ParseLabelKind(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := ParseLabelKind("atari")
	require.ErrorIs(t, err, ErrConversion)
}

func TestLabelKindFromNative_ExactMatchOnly(t *testing.T) {
	for _, k := range []LabelKind{LabelDOS, LabelSun, LabelSGI, LabelBSD, LabelGPT} {
		got, err := labelKindFromNative(int(k))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	// Combined bits or stray values never silently default.
	_, err := labelKindFromNative(int(LabelDOS) | int(LabelGPT))
	require.ErrorIs(t, err, ErrConversion)
	_, err = labelKindFromNative(0)
	require.ErrorIs(t, err, ErrConversion)
}

func TestAskKindFromNative(t *testing.T) {
	for _, k := range []AskKind{
		AskNone, AskNumber, AskOffset, AskWarn, AskWarnX,
		AskInfo, AskYesNo, AskString, AskMenu,
	} {
		got, err := askKindFromNative(int(k))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	_, err := askKindFromNative(1000)
	require.ErrorIs(t, err, ErrConversion)
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "forward", Forward.String())
	require.Equal(t, "backward", Backward.String())
}

func TestCString_RejectsEmbeddedNUL(t *testing.T) {
	p, err := cString("sda\x00evil")
	require.Nil(t, p)
	require.ErrorIs(t, err, ErrCString)

	p, err = cString("plain")
	require.NoError(t, err)
	require.NotNil(t, p)
	freeCString(p)
}

func TestNativeError_UnwrapsToErrno(t *testing.T) {
	err := nativeErr("fdisk_add_partition", -12) // -ENOMEM
	require.Contains(t, err.Error(), "fdisk_add_partition")
	require.Contains(t, err.Error(), "rc=-12")
	require.True(t, IsOutOfMemory(err))

	err = nativeErr("fdisk_write_disklabel", -5) // -EIO
	require.True(t, IsIoError(err))

	// Undocumented positive codes map to ErrUnexpected.
	err = nativeErr("fdisk_next_label", 3)
	require.ErrorIs(t, err, ErrUnexpected)
}
