package cmds

import (
	"math/big"
	"slices"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVar.int")
	b := Var[string]("TestVar.string")
	GlobalExecutor.MustExecute([]string{
		"TestVar.int", "42",
		"TestVar.string", "bar",
	})
	if *a != 42 {
		t.Fatalf("got %v", *a)
	}
	if *b != "bar" {
		t.Fatalf("got %v", *b)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar.int.",
	})
	if *a != 0 {
		t.Fatalf("got %v", *a)
	}
}

func TestBigIntVar(t *testing.T) {
	a := Var[*big.Int]("TestBigIntVar")
	if *a != nil {
		t.Fatal("should be nil")
	}
	GlobalExecutor.MustExecute([]string{
		"TestBigIntVar", "164541160582845",
	})
	if *a == nil || (*a).String() != "164541160582845" {
		t.Fatalf("got %v", *a)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*foo {
		t.Fatal("should be true")
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal("should be false")
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if !slices.Equal(*list, []string{"a", "b"}) {
		t.Fatalf("got %v", *list)
	}
	GlobalExecutor.MustExecute([]string{
		"TestCollect.",
		"TestCollect", "c",
	})
	if !slices.Equal(*list, []string{"c"}) {
		t.Fatalf("got %v", *list)
	}
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatalf("got %v", *v)
	}
}
