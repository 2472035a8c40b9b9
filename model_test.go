package smallvec

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/smallvec/resource"
	"github.com/hupe1980/smallvec/testutil"
)

const (
	opPushBack = iota
	opPopBack
	opInsert
	opInsertSlice
	opErase
	opEraseRange
	opSet
	opAssign
	opClear
	opReserve
)

// opWeights biases the random walk towards growth so vectors regularly
// cross the inline threshold in both directions.
var opWeights = []int{
	opPushBack:    30,
	opPopBack:     15,
	opInsert:      12,
	opInsertSlice: 6,
	opErase:       12,
	opEraseRange:  5,
	opSet:         10,
	opAssign:      3,
	opClear:       1,
	opReserve:     2,
}

// runModel applies random operations to v and to a plain slice and checks
// after every step that both agree and that the storage invariants hold.
func runModel[A Inline[string]](t *testing.T, rng *testutil.RNG, v *Vector[string, A], steps int) {
	t.Helper()

	var model []string
	n := v.InlineCap()

	for step := range steps {
		op := rng.Choose(opWeights)
		before := len(model)
		switch op {
		case opPushBack:
			x := rng.Strings(1)[0]
			require.NoError(t, v.PushBack(x))
			model = append(model, x)
		case opPopBack:
			got, err := v.PopBack()
			if len(model) == 0 {
				require.ErrorIs(t, err, ErrEmptyContainer)
				break
			}
			require.NoError(t, err)
			require.Equal(t, model[len(model)-1], got)
			model = model[:len(model)-1]
		case opInsert:
			pos := rng.Intn(len(model) + 1)
			x := rng.Strings(1)[0]
			require.NoError(t, v.Insert(pos, x))
			model = slices.Insert(model, pos, x)
		case opInsertSlice:
			pos := rng.Intn(len(model) + 1)
			xs := rng.Strings(rng.Intn(2 * n))
			require.NoError(t, v.InsertSlice(pos, xs...))
			model = slices.Insert(model, pos, xs...)
		case opErase:
			if len(model) == 0 {
				require.ErrorIs(t, v.Erase(0), ErrOutOfRange)
				break
			}
			pos := rng.Intn(len(model))
			require.NoError(t, v.Erase(pos))
			model = slices.Delete(model, pos, pos+1)
		case opEraseRange:
			first := rng.Intn(len(model) + 1)
			last := first + rng.Intn(len(model)-first+1)
			require.NoError(t, v.EraseRange(first, last))
			model = slices.Delete(model, first, last)
		case opSet:
			if len(model) == 0 {
				break
			}
			pos := rng.Intn(len(model))
			x := rng.Strings(1)[0]
			require.NoError(t, v.Set(pos, x))
			model[pos] = x
		case opAssign:
			xs := rng.Strings(rng.Intn(3 * n))
			require.NoError(t, v.Assign(xs...))
			model = slices.Clone(xs)
		case opClear:
			v.Clear()
			model = model[:0]
		case opReserve:
			require.NoError(t, v.Reserve(len(model)+rng.Intn(4*n)))
		}

		// Removals that took effect must move small vectors back inline.
		removed := len(model) < before || op == opClear

		require.Equal(t, len(model), v.Len(), "step %d op %d seed %d", step, op, rng.Seed())
		require.True(t, slices.Equal(model, v.Data()), "step %d op %d seed %d", step, op, rng.Seed())
		require.NoError(t, v.CheckInvariants())
		if v.Len() > n {
			require.True(t, v.OnHeap())
		}
		if removed && v.Len() <= n {
			require.False(t, v.OnHeap(), "step %d op %d: %d elements must be inline", step, op, v.Len())
		}
	}
}

func TestVector_Model(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1337} {
		rng := testutil.NewRNG(seed)

		runModel(t, rng, New[string, [1]string](), 2000)
		runModel(t, rng, New[string, [4]string](), 2000)
		runModel(t, rng, New[string, [16]string](), 2000)
	}
}

func TestVector_ModelWithBudget(t *testing.T) {
	rc := resource.NewController(resource.Config{})
	rng := testutil.NewRNG(7)

	v := New[string, [4]string](WithMemoryAcquirer(rc), WithIteratorChecks(true))
	runModel(t, rng, v, 3000)

	v.Clear()
	require.Zero(t, rc.MemoryUsage())
	require.Positive(t, rc.PeakMemoryUsage())
}
