package configs

import (
	"fmt"
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	if str := First[string](loader, "str"); str != "bar" {
		t.Fatalf("got %v", str)
	}
	if list := First[[]int](loader, "list"); fmt.Sprintf("%v", list) != "[1 2 3]" {
		t.Fatalf("got %v", list)
	}
	if str := First[string](loader, "not"); str != "" {
		t.Fatalf("got %v", str)
	}
}

func TestFirstOr(t *testing.T) {
	loader := NewLoader([]string{"test2.cue"}, testSchema)
	if str := FirstOr(loader, "str", "baz"); str != "foo" {
		t.Fatalf("got %v", str)
	}
	if n := FirstOr(loader, "list", 0); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestFirstPanicsOnMismatch(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	First[int](loader, "str")
}
