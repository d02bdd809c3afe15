package well

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wellsketch/pkg/errors"
)

func sampleStrings(t *testing.T) []Tubular {
	t.Helper()
	return []Tubular{
		mustTubular(t, "conductor", 7.25, 8, 0, 250, WithUnitWeight(58)),
		mustTubular(t, "surface", 6.25, 6.75, 0, 2000, WithUnitWeight(47)),
		mustTubular(t, "intermediate", 5.5, 5.75, 0, 3750, WithUnitWeight(39)),
		mustTubular(t, "production", 4.75, 5, 0, 5200, WithUnitWeight(39)),
		mustTubular(t, "liner", 3.75, 4, 4800, 6500, WithUnitWeight(27)),
	}
}

func TestAddTubularDuplicate(t *testing.T) {
	w := New("Test Well 001")
	surface := mustTubular(t, "surface", 6.25, 6.75, 0, 2000)
	require.NoError(t, w.AddTubular(surface))

	dup := mustTubular(t, "surface", 7.25, 8, 0, 3000)
	err := w.AddTubular(dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeDuplicateName))

	assert.Equal(t, 1, w.Len())
	assert.Equal(t, 6.75, w.LargestOuterDiameter())
	assert.Equal(t, 2000.0, w.DeepestDepth())
}

func TestAddTubularRejectsInvalidLiteral(t *testing.T) {
	w := New("w")
	err := w.AddTubular(Tubular{Name: "bad", InnerDiameter: 5, OuterDiameter: 4, Bottom: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidGeometry))
	assert.Equal(t, 0, w.Len())
}

func TestExtremaOrderIndependent(t *testing.T) {
	strs := sampleStrings(t)
	perms := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
	}

	var want [3]float64
	for i, perm := range perms {
		w := New("perm")
		for _, idx := range perm {
			require.NoError(t, w.AddTubular(strs[idx]))
		}
		got := [3]float64{w.LargestOuterDiameter(), w.DeepestDepth(), w.MinimumWallThickness()}
		if i == 0 {
			want = got
			continue
		}
		assert.Equal(t, want, got, "permutation %v", perm)
	}

	assert.Equal(t, 8.0, want[0])
	assert.Equal(t, 6500.0, want[1])
	assert.InDelta(t, 0.25, want[2], 1e-12)
}

func TestEmptyWellExtrema(t *testing.T) {
	w := New("empty")
	assert.Zero(t, w.LargestOuterDiameter())
	assert.Zero(t, w.DeepestDepth())
	assert.Zero(t, w.MinimumWallThickness())
	assert.Empty(t, w.Tubulars())
}

func TestTubingSlot(t *testing.T) {
	w := New("w")
	require.NoError(t, w.AddTubular(mustTubular(t, "production", 4.75, 5, 0, 5200)))

	first, err := NewTubing("tubing", 2.992, 3.5, 0, 4900)
	require.NoError(t, err)
	require.NoError(t, w.AddTubular(first))

	second, err := NewTubing("tubing-2", 2.441, 2.875, 0, 5000)
	require.NoError(t, err)
	require.NoError(t, w.AddTubular(second))

	got, ok := w.Tubing()
	require.True(t, ok)
	assert.Equal(t, "tubing-2", got.Name)

	// tubing never moves the extrema or the casing count
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, 5200.0, w.DeepestDepth())
	assert.InDelta(t, 0.25, w.MinimumWallThickness(), 1e-12)

	_, ok = w.Tubular("tubing-2")
	assert.True(t, ok)
}

func TestTubingNameClash(t *testing.T) {
	w := New("w")
	require.NoError(t, w.AddTubular(mustTubular(t, "production", 4.75, 5, 0, 5200)))

	clash, err := NewTubing("production", 2.992, 3.5, 0, 4900)
	require.NoError(t, err)
	assert.True(t, errors.Is(w.AddTubular(clash), errors.ErrCodeDuplicateName))

	tubing, err := NewTubing("tubing", 2.992, 3.5, 0, 4900)
	require.NoError(t, err)
	require.NoError(t, w.AddTubular(tubing))
	assert.True(t, errors.Is(w.AddTubular(mustTubular(t, "tubing", 6.25, 6.75, 0, 100)), errors.ErrCodeDuplicateName))
	assert.Equal(t, 1, w.Len())
}

func TestAddCementIDs(t *testing.T) {
	strs := sampleStrings(t)
	w := New("w")
	for _, s := range strs {
		require.NoError(t, w.AddTubular(s))
	}

	pairs := [][2]int{{0, 1}, {2, 1}, {2, 3}}
	for i, p := range pairs {
		c, err := NewCement(float64(i*100), 2000, strs[p[0]], strs[p[1]])
		require.NoError(t, err)
		id, err := w.AddCement(c)
		require.NoError(t, err)
		assert.Equal(t, i, id)
	}

	cements := w.Cements()
	require.Len(t, cements, 3)
	for i, c := range cements {
		assert.Equal(t, i, c.ID)
	}

	cements[0].Top = 99999
	assert.Equal(t, 0.0, w.Cements()[0].Top)
}

func TestAddPacker(t *testing.T) {
	w := New("w")
	prod := mustTubular(t, "production", 4.75, 5, 0, 5200)
	tubing, err := NewTubing("tubing", 2.992, 3.5, 0, 4900)
	require.NoError(t, err)

	p, err := NewPacker(4800, tubing, prod, PackerTubing)
	require.NoError(t, err)
	require.NoError(t, w.AddPacker(p))

	assert.Error(t, w.AddPacker(Packer{Kind: PackerTubing, Height: 75, InnerSeal: 5, OuterSeal: 4}))
	assert.Len(t, w.Packers(), 1)
}

func TestResolve(t *testing.T) {
	w := New("w")
	for _, s := range sampleStrings(t) {
		require.NoError(t, w.AddTubular(s))
	}

	tests := []struct {
		name   string
		target float64
		match  Match
		want   string
		code   errors.Code
	}{
		{"exact outer", 6.75, MatchOuterDiameter, "surface", ""},
		{"exact inner", 7.25, MatchInnerDiameter, "conductor", ""},
		{"within tolerance", 6.7599, MatchOuterDiameter, "surface", ""},
		{"within tolerance below", 4.7401, MatchInnerDiameter, "production", ""},
		{"just outside tolerance", 6.7601, MatchOuterDiameter, "", errors.ErrCodeUnresolvedBoundary},
		{"no match", 3.5, MatchInnerDiameter, "", errors.ErrCodeUnresolvedBoundary},
		{"outer is not inner", 6.75, MatchInnerDiameter, "", errors.ErrCodeUnresolvedBoundary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := w.Resolve(tt.target, tt.match)
			if tt.code != "" {
				require.Error(t, err)
				assert.Equal(t, tt.code, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestResolveAmbiguous(t *testing.T) {
	w := New("w")
	require.NoError(t, w.AddTubular(mustTubular(t, "upper", 6.25, 6.75, 0, 2000)))
	require.NoError(t, w.AddTubular(mustTubular(t, "lower", 6.255, 6.755, 2000, 4000)))

	_, err := w.Resolve(6.75, MatchOuterDiameter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeAmbiguousResolution))
	assert.Contains(t, err.Error(), "upper")
	assert.Contains(t, err.Error(), "lower")
}

func TestResolveIgnoresTubing(t *testing.T) {
	w := New("w")
	require.NoError(t, w.AddTubular(mustTubular(t, "production", 4.75, 5, 0, 5200)))
	tubing, err := NewTubing("tubing", 2.992, 3.5, 0, 4900)
	require.NoError(t, err)
	require.NoError(t, w.AddTubular(tubing))

	_, err = w.Resolve(3.5, MatchOuterDiameter)
	assert.True(t, errors.Is(err, errors.ErrCodeUnresolvedBoundary))
}

func TestWellReferences(t *testing.T) {
	w := New("Test Well 001", WithKOP(5000))
	kop, ok := w.KOP()
	assert.True(t, ok)
	assert.Equal(t, 5000.0, kop)
	_, ok = w.Mudline()
	assert.False(t, ok)
}
