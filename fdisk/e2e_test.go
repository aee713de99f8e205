package fdisk

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newImage creates a sparse file-backed disk image.
func newImage(t *testing.T, size int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disk.img")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(size))
	require.NoError(t, f.Close())
	return path
}

func openRW(t *testing.T, path string) *Context {
	t.Helper()
	cxt, err := NewContextBuilder().Assign(path).ReadWrite().Build()
	require.NoError(t, err)
	return cxt
}

func TestEndToEnd_GPTCreateAddWrite(t *testing.T) {
	img := newImage(t, 50<<20)

	cxt := openRW(t, img)
	require.False(t, cxt.IsReadOnly())
	require.False(t, cxt.HasDialogs(), "dialogs must be suppressed by default")

	require.NoError(t, cxt.CreateLabel(LabelGPT))
	require.True(t, cxt.HasLabel())

	// No number, start or size: everything follows the defaults and the
	// partition takes all free space.
	pa, err := NewPartitionBuilder().Build(cxt)
	require.NoError(t, err)
	partno, err := cxt.AddPartition(pa)
	require.NoError(t, err)
	require.Equal(t, uint(0), partno)

	require.NoError(t, cxt.Write())
	cxt.Close()
	require.True(t, cxt.Closed())

	// Reopen and verify what landed on disk.
	re, err := NewContextBuilder().Assign(img).Build()
	require.NoError(t, err)
	defer re.Close()

	require.True(t, re.HasLabel())
	require.True(t, re.IsLabelKind(LabelGPT))

	lb, err := re.Label()
	require.NoError(t, err)
	name, err := lb.Name()
	require.NoError(t, err)
	require.Equal(t, "gpt", name)
	kind, err := lb.Kind()
	require.NoError(t, err)
	require.Equal(t, LabelGPT, kind)

	tb, err := re.Partitions()
	require.NoError(t, err)
	n, err := tb.Len()
	require.NoError(t, err)
	require.Equal(t, 1, n)

	p, err := tb.Get(0)
	require.NoError(t, err)
	require.True(t, p.IsUsed())
	num, ok := p.Number()
	require.True(t, ok)
	require.Equal(t, uint(0), num)
	_, ok = p.Size()
	require.True(t, ok)
}

func TestContext_DeviceMetadata(t *testing.T) {
	img := newImage(t, 50<<20)
	cxt := openRW(t, img)
	defer cxt.Close()

	ssz, err := cxt.SectorSize()
	require.NoError(t, err)
	require.Equal(t, uint64(512), ssz)

	nsec, err := cxt.SectorCount()
	require.NoError(t, err)
	require.Equal(t, uint64(50<<20/512), nsec)

	bytes, err := cxt.SizeInBytes()
	require.NoError(t, err)
	require.Equal(t, uint64(50<<20), bytes)

	phys, err := cxt.PhysicalSectorSize()
	require.NoError(t, err)
	require.NotZero(t, phys)

	require.Equal(t, img, cxt.DeviceName())
}

func TestContext_ClosedOperationsFail(t *testing.T) {
	img := newImage(t, 10<<20)
	cxt := openRW(t, img)
	cxt.Close()
	cxt.Close() // idempotent

	_, err := cxt.SectorCount()
	require.ErrorIs(t, err, ErrClosed)
	require.Error(t, cxt.CreateLabel(LabelGPT))
	_, err = cxt.Partitions()
	require.ErrorIs(t, err, ErrClosed)
	_, err = NewPartitionBuilder().Build(cxt)
	require.ErrorIs(t, err, ErrClosed)
}

func TestContext_BorrowsDieWithContext(t *testing.T) {
	img := newImage(t, 20<<20)
	cxt := openRW(t, img)
	require.NoError(t, cxt.CreateLabel(LabelGPT))

	lb, err := cxt.Label()
	require.NoError(t, err)

	pa, err := NewPartitionBuilder().Build(cxt)
	require.NoError(t, err)
	_, err = cxt.AddPartition(pa)
	require.NoError(t, err)

	got, err := cxt.GetPartition(0)
	require.NoError(t, err)

	cxt.Close()

	// Every borrow fails once the owner is gone; the arena already
	// released the native memory exactly once.
	_, err = lb.Name()
	require.ErrorIs(t, err, ErrClosed)
	_, ok := got.Number()
	require.False(t, ok)
}

func TestLabels_IterationMatchesCount(t *testing.T) {
	img := newImage(t, 10<<20)
	cxt := openRW(t, img)
	defer cxt.Close()

	want, err := cxt.LabelCount()
	require.NoError(t, err)
	require.Positive(t, want)

	it, err := cxt.Labels()
	require.NoError(t, err)

	seen := 0
	for {
		lb, err := it.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		name, err := lb.Name()
		require.NoError(t, err)
		require.NotEmpty(t, name)
		seen++
	}
	require.Equal(t, want, seen)
}

func TestIter_DirectionAndReset(t *testing.T) {
	it, err := NewIter(Forward)
	require.NoError(t, err)
	defer it.Free()
	require.Equal(t, Forward, it.Direction())

	it.ResetBackward()
	require.Equal(t, Backward, it.Direction())

	it.Reset() // preserves direction
	require.Equal(t, Backward, it.Direction())

	it.ResetForward()
	require.Equal(t, Forward, it.Direction())

	it.Free() // idempotent
}

func TestTable_IterateForwardAndBackward(t *testing.T) {
	img := newImage(t, 50<<20)
	cxt := openRW(t, img)
	defer cxt.Close()

	require.NoError(t, cxt.CreateLabel(LabelGPT))
	for i := 0; i < 3; i++ {
		pa, err := NewPartitionBuilder().SizeInSectors(2048).Build(cxt)
		require.NoError(t, err)
		_, err = cxt.AddPartition(pa)
		require.NoError(t, err)
	}

	tb, err := cxt.Partitions()
	require.NoError(t, err)

	collect := func(dir Direction) []uint {
		pi, err := tb.Iterate(dir)
		require.NoError(t, err)
		defer pi.Free()

		var nums []uint
		for {
			p, err := pi.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			n, ok := p.Number()
			require.True(t, ok)
			nums = append(nums, n)
		}
		return nums
	}

	fwd := collect(Forward)
	bwd := collect(Backward)
	require.Equal(t, []uint{0, 1, 2}, fwd)
	require.Equal(t, []uint{2, 1, 0}, bwd)
}

func TestPartitionBuilder_ExplicitFields(t *testing.T) {
	img := newImage(t, 50<<20)
	cxt := openRW(t, img)
	defer cxt.Close()

	require.NoError(t, cxt.CreateLabel(LabelGPT))

	pt, err := NewPartTypeBuilder().
		GUIDString("0fc63daf-8483-4772-8e79-3d69d8477de4").
		Build()
	require.NoError(t, err)
	defer pt.Close()

	pa, err := NewPartitionBuilder().
		Type(pt).
		Name("data").
		Number(3).
		StartSector(4096).
		SizeInSectors(8192).
		Build(cxt)
	require.NoError(t, err)

	partno, err := cxt.AddPartition(pa)
	require.NoError(t, err)
	require.Equal(t, uint(3), partno)

	got, err := cxt.GetPartition(3)
	require.NoError(t, err)
	require.Equal(t, "data", got.Name())
	start, ok := got.Start()
	require.True(t, ok)
	require.Equal(t, uint64(4096), start)
	size, ok := got.Size()
	require.True(t, ok)
	require.Equal(t, uint64(8192), size)
}

func TestHeaderItems_GPT(t *testing.T) {
	img := newImage(t, 50<<20)
	cxt := openRW(t, img)
	defer cxt.Close()

	require.NoError(t, cxt.CreateLabel(LabelGPT))

	v, ok, err := cxt.HeaderItem(HeaderItemGPTFirstLBA)
	require.NoError(t, err)
	require.True(t, ok)
	n, isNum := v.Num()
	require.True(t, isNum)
	require.Positive(t, n)

	// A BSD item is not supported by a GPT label.
	_, ok, err = cxt.HeaderItem(HeaderItemBSDRPM)
	require.NoError(t, err)
	require.False(t, ok)

	id, err := cxt.DiskLabelID()
	require.NoError(t, err)
	require.NotEmpty(t, id)
}

func TestFields_GPTLabel(t *testing.T) {
	img := newImage(t, 20<<20)
	cxt := openRW(t, img)
	defer cxt.Close()

	require.NoError(t, cxt.CreateLabel(LabelGPT))
	lb, err := cxt.Label()
	require.NoError(t, err)

	fl, ok, err := lb.Field(FieldStart)
	require.NoError(t, err)
	require.True(t, ok)

	id, err := fl.ID()
	require.NoError(t, err)
	require.Equal(t, FieldStart, id)
	require.True(t, fl.IsNumber())

	name, err := fl.Name()
	require.NoError(t, err)
	require.NotEmpty(t, name)

	_, err = fl.Width()
	require.NoError(t, err)

	byName, ok, err := lb.FieldByName(name)
	require.NoError(t, err)
	require.True(t, ok)
	gotID, err := byName.ID()
	require.NoError(t, err)
	require.Equal(t, FieldStart, gotID)
}

func TestPartitionToString(t *testing.T) {
	img := newImage(t, 50<<20)
	cxt := openRW(t, img)
	defer cxt.Close()

	require.NoError(t, cxt.CreateLabel(LabelGPT))
	pa, err := NewPartitionBuilder().Build(cxt)
	require.NoError(t, err)
	_, err = cxt.AddPartition(pa)
	require.NoError(t, err)

	got, err := cxt.GetPartition(0)
	require.NoError(t, err)

	s, err := cxt.PartitionToString(got, FieldStart)
	require.NoError(t, err)
	require.NotEmpty(t, s)
}

func TestScript_ComposeWriteReadApply(t *testing.T) {
	img := newImage(t, 50<<20)
	cxt := openRW(t, img)

	require.NoError(t, cxt.CreateLabel(LabelGPT))
	pa, err := NewPartitionBuilder().Build(cxt)
	require.NoError(t, err)
	_, err = cxt.AddPartition(pa)
	require.NoError(t, err)

	s, err := cxt.NewScript()
	require.NoError(t, err)
	require.NoError(t, s.Compose())

	label, ok, err := s.Header("label")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "gpt", label)

	lines, err := s.LineCount()
	require.NoError(t, err)
	require.Equal(t, 1, lines)

	path := filepath.Join(t.TempDir(), "layout.sfdisk")
	require.NoError(t, s.WriteFile(path))
	cxt.Close()

	// Apply the dumped layout to a fresh image.
	img2 := newImage(t, 50<<20)
	cxt2 := openRW(t, img2)
	defer cxt2.Close()

	s2, err := cxt2.NewScriptFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cxt2.ApplyScript(s2))
	require.NoError(t, cxt2.Write())

	require.True(t, cxt2.IsLabelKind(LabelGPT))
	tb, err := cxt2.Partitions()
	require.NoError(t, err)
	n, err := tb.Len()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestFreespaces_EmptyLabel(t *testing.T) {
	img := newImage(t, 50<<20)
	cxt := openRW(t, img)
	defer cxt.Close()

	require.NoError(t, cxt.CreateLabel(LabelGPT))

	fs, err := cxt.Freespaces()
	require.NoError(t, err)
	require.False(t, fs.IsEmpty())

	free, err := fs.Get(0)
	require.NoError(t, err)
	require.True(t, free.IsFreespace())
}

func TestDialogDrivenOpsFailWhenSuppressed(t *testing.T) {
	img := newImage(t, 20<<20)
	cxt := openRW(t, img)
	defer cxt.Close()

	// Wrong label kind reported before the dialog check.
	require.NoError(t, cxt.CreateLabel(LabelGPT))
	err := cxt.BSDEditLabel()
	require.ErrorIs(t, err, ErrConfig)

	require.NoError(t, cxt.CreateLabel(LabelSun))
	err = cxt.SunSetRotationSpeed()
	require.ErrorIs(t, err, ErrDialogsDisabled)
}
