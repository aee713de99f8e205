package fdisk

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPartTypeBuilder_NoSelectorFails(t *testing.T) {
	_, err := NewPartTypeBuilder().Build()
	require.ErrorIs(t, err, ErrRequired)

	// A name alone does not count as a selector.
	_, err = NewPartTypeBuilder().Name("Linux").Build()
	require.ErrorIs(t, err, ErrRequired)
}

func TestPartTypeBuilder_MultipleSelectorsFail(t *testing.T) {
	g := uuid.MustParse("0fc63daf-8483-4772-8e79-3d69d8477de4")

	_, err := NewPartTypeBuilder().Code(0x83).GUID(g).Build()
	require.ErrorIs(t, err, ErrMutuallyExclusive)

	_, err = NewPartTypeBuilder().Code(0x83).Unknown(0x42, "mystery").Build()
	require.ErrorIs(t, err, ErrMutuallyExclusive)

	_, err = NewPartTypeBuilder().GUID(g).Unknown(0x42, "mystery").Build()
	require.ErrorIs(t, err, ErrMutuallyExclusive)
}

func TestPartTypeBuilder_BadGUIDStringFails(t *testing.T) {
	_, err := NewPartTypeBuilder().GUIDString("not-a-guid").Build()
	require.ErrorIs(t, err, ErrConversion)
}

func TestPartTypeBuilder_Code(t *testing.T) {
	pt, err := NewPartTypeBuilder().Code(0x83).Build()
	require.NoError(t, err)
	defer pt.Close()

	code, err := pt.Code()
	require.NoError(t, err)
	require.Equal(t, uint(0x83), code)
}

func TestPartTypeBuilder_GUID(t *testing.T) {
	g := uuid.MustParse("0fc63daf-8483-4772-8e79-3d69d8477de4")
	pt, err := NewPartTypeBuilder().GUID(g).Name("Linux filesystem").Build()
	require.NoError(t, err)
	defer pt.Close()

	s, err := pt.TypeString()
	require.NoError(t, err)
	require.True(t, strings.EqualFold(g.String(), s))

	name, err := pt.Name()
	require.NoError(t, err)
	require.Equal(t, "Linux filesystem", name)
}

func TestPartTypeBuilder_Unknown(t *testing.T) {
	pt, err := NewPartTypeBuilder().Unknown(0x42, "mystery").Build()
	require.NoError(t, err)
	defer pt.Close()

	require.True(t, pt.IsUnknown())
	code, err := pt.Code()
	require.NoError(t, err)
	require.Equal(t, uint(0x42), code)
}

func TestPartType_CloseIdempotent(t *testing.T) {
	pt, err := NewPartTypeBuilder().Code(0x07).Build()
	require.NoError(t, err)
	pt.Close()
	pt.Close()

	_, err = pt.Code()
	require.ErrorIs(t, err, ErrClosed)
}

func TestPartTypeBuilder_EmbeddedNULFails(t *testing.T) {
	_, err := NewPartTypeBuilder().Unknown(1, "bad\x00name").Build()
	require.ErrorIs(t, err, ErrCString)
}
