package storages

import (
	"errors"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/chrono/chronovm"
	"github.com/reusee/chrono/modes"
	"github.com/reusee/dscope"
)

func testStore(t *testing.T) *Store {
	store, err := Open(t.Context(), filepath.Join(t.TempDir(), "chrono.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestSaveAndLookup(t *testing.T) {
	store := testStore(t)
	ctx := t.Context()

	raw := []int{0, 3, 5, 4, 3, 0}
	key := Key{
		Program: chronovm.MustProgram(raw...),
		Target:  raw,
	}

	_, ok, err := store.LookupSolution(ctx, key)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("should not exist")
	}

	if err := store.SaveSolution(ctx, Solution{
		Key: key,
		A:   big.NewInt(117440),
	}); err != nil {
		t.Fatal(err)
	}
	a, ok, err := store.LookupSolution(ctx, key)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("should exist")
	}
	if a.Int64() != 117440 {
		t.Fatalf("got %v", a)
	}

	// nil registers and zero registers are the same key
	a, ok, err = store.LookupSolution(ctx, Key{
		Program: key.Program,
		B:       big.NewInt(0),
		C:       big.NewInt(0),
		Target:  raw,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok || a.Int64() != 117440 {
		t.Fatalf("got %v %v", a, ok)
	}

	// different registers
	_, ok, err = store.LookupSolution(ctx, Key{
		Program: key.Program,
		B:       big.NewInt(1),
		Target:  raw,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("should not exist")
	}
}

func TestSaveUpsert(t *testing.T) {
	store := testStore(t)
	ctx := t.Context()

	key := Key{
		Program: chronovm.MustProgram(0, 3, 5, 4, 3, 0),
		Target:  []int{3, 0},
	}
	huge, _ := new(big.Int).SetString("190384615275535190384615275535", 10)
	for _, a := range []*big.Int{big.NewInt(1), huge} {
		if err := store.SaveSolution(ctx, Solution{
			Key: key,
			A:   a,
		}); err != nil {
			t.Fatal(err)
		}
	}

	n, err := store.CountSolutions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("got %v", n)
	}
	a, ok, err := store.LookupSolution(ctx, key)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || a.Cmp(huge) != 0 {
		t.Fatalf("got %v %v", a, ok)
	}
}

func TestListSolutions(t *testing.T) {
	store := testStore(t)
	ctx := t.Context()

	program := chronovm.MustProgram(0, 3, 5, 4, 3, 0)
	for i, target := range [][]int{{0}, {3, 0}, {5, 1, 0}} {
		if err := store.SaveSolution(ctx, Solution{
			Key: Key{
				Program: program,
				B:       big.NewInt(int64(i)),
				Target:  target,
			},
			A: big.NewInt(int64(i * 10)),
		}); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.SaveSolution(ctx, Solution{
		Key: Key{
			Program: chronovm.MustProgram(0, 1, 5, 4, 3, 0),
			Target:  []int{0},
		},
		A: big.NewInt(1),
	}); err != nil {
		t.Fatal(err)
	}

	solutions, err := store.ListSolutions(ctx, program)
	if err != nil {
		t.Fatal(err)
	}
	if len(solutions) != 3 {
		t.Fatalf("got %v", len(solutions))
	}
	seen := make(map[string]bool)
	for _, solution := range solutions {
		if solution.B.Int64()*10 != solution.A.Int64() {
			t.Fatalf("got %+v", solution)
		}
		if solution.C.Sign() != 0 {
			t.Fatalf("got %v", solution.C)
		}
		seen[joinInts(solution.Target)] = true
	}
	if !seen["0"] || !seen["3,0"] || !seen["5,1,0"] {
		t.Fatalf("got %v", seen)
	}
}

func TestSaveNilA(t *testing.T) {
	store := testStore(t)
	err := store.SaveSolution(t.Context(), Solution{
		Key: Key{
			Program: chronovm.MustProgram(0, 3),
		},
	})
	if err == nil {
		t.Fatal("should error")
	}
}

func TestWithTxRollback(t *testing.T) {
	store := testStore(t)
	ctx := t.Context()

	errFoo := errors.New("foo")
	err := store.WithTx(ctx, func(tx Tx) error {
		_, err := tx.Exec(ctx, `
			insert into solutions (id, program, b, c, target, a, created_at)
			values ('x', '0,3', '0', '0', '0', '1', 0)
			`)
		if err != nil {
			return err
		}
		return errFoo
	})
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}

	n, err := store.CountSolutions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestOpenStoreDisabled(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		openStore OpenStore,
	) {
		_, err := openStore(t.Context())
		if !errors.Is(err, ErrStoreDisabled) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestOpenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chrono.db")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() chronoconfigs.DBPath {
			return chronoconfigs.DBPath(path)
		},
	).Call(func(
		openStore OpenStore,
	) {
		store, err := openStore(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		defer store.Close()
		n, err := store.CountSolutions(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Fatalf("got %v", n)
		}
	})
}
