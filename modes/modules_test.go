package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModules(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
		t2 *testing.T,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if t2 != nil {
			t.Fatal()
		}
	})

	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		t2 *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if t2 != t {
			t.Fatal()
		}
	})
}
