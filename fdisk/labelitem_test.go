package fdisk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The label-specific item enums of the native library all start right
// after the generic range (8 entries reserved), so every family shares
// the same raw integers. These tables pin the pre-offset constants.
const nativeItemBase = 8

var headerItemFamilies = []struct {
	kind  LabelKind
	items []HeaderItem
}{
	{LabelBSD, []HeaderItem{
		HeaderItemBSDType, HeaderItemBSDDisk, HeaderItemBSDPackname,
		HeaderItemBSDFlags, HeaderItemBSDSecSize, HeaderItemBSDNTracks,
		HeaderItemBSDSecPerCyl, HeaderItemBSDCylinders, HeaderItemBSDRPM,
		HeaderItemBSDInterleave, HeaderItemBSDTrackSkew,
		HeaderItemBSDCylinderSkew, HeaderItemBSDHeadSwitch,
		HeaderItemBSDTrkSeek,
	}},
	{LabelGPT, []HeaderItem{
		HeaderItemGPTID, HeaderItemGPTFirstLBA, HeaderItemGPTLastLBA,
		HeaderItemGPTAltLBA, HeaderItemGPTEntriesLBA,
		HeaderItemGPTEntriesAlloc,
	}},
	{LabelSGI, []HeaderItem{
		HeaderItemSGIPCylCount, HeaderItemSGISpareCyl,
		HeaderItemSGIILFact, HeaderItemSGIBootfile,
	}},
	{LabelSun, []HeaderItem{
		HeaderItemSunLabelID, HeaderItemSunVTOC, HeaderItemSunRPM,
		HeaderItemSunACyl, HeaderItemSunPCyl, HeaderItemSunAPC,
		HeaderItemSunInterleave,
	}},
}

func TestHeaderItem_NativeRoundTrip(t *testing.T) {
	// Generic items map onto themselves.
	for _, h := range []HeaderItem{
		HeaderItemID, HeaderItemFirstLBA, HeaderItemLastLBA, HeaderItemAltLBA,
	} {
		require.Equal(t, int(h), nativeValue(h))
	}

	// Every family variant loses exactly its family offset.
	for _, fam := range headerItemFamilies {
		for i, h := range fam.items {
			require.Equal(t, nativeItemBase+i, nativeValue(h),
				"family %s item %d", fam.kind, i)
		}
	}
}

func TestHeaderItemFromNative_RoundTrip(t *testing.T) {
	for _, fam := range headerItemFamilies {
		for _, h := range fam.items {
			got, err := headerItemFromNative(fam.kind, nativeValue(h))
			require.NoError(t, err)
			require.Equal(t, h, got)
		}
	}
}

func TestHeaderItemFromNative_GenericIgnoresKind(t *testing.T) {
	for _, kind := range []LabelKind{LabelDOS, LabelGPT, LabelBSD, LabelSGI, LabelSun} {
		got, err := headerItemFromNative(kind, int(HeaderItemLastLBA))
		require.NoError(t, err)
		require.Equal(t, HeaderItemLastLBA, got)
	}
}

func TestHeaderItemFromNative_Unknown(t *testing.T) {
	// DOS has no label-specific items.
	_, err := headerItemFromNative(LabelDOS, nativeItemBase)
	require.ErrorIs(t, err, ErrConversion)

	// Beyond the family range.
	_, err = headerItemFromNative(LabelSGI, nativeItemBase+10)
	require.ErrorIs(t, err, ErrConversion)

	// Generic hole between the known items and the reserved end.
	_, err = headerItemFromNative(LabelGPT, 6)
	require.ErrorIs(t, err, ErrConversion)
}

func TestHeaderItemFamilies_NonOverlappingOffsets(t *testing.T) {
	seen := map[HeaderItem]bool{}
	for _, fam := range headerItemFamilies {
		for _, h := range fam.items {
			require.False(t, seen[h], "duplicate discriminant %d", int(h))
			seen[h] = true
		}
	}
}
