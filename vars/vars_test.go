package vars

import (
	"math/big"
	"testing"
)

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 3, 4); n != 3 {
		t.Fatalf("got %d", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %q", s)
	}
}

func TestFirstNonNil(t *testing.T) {
	a := big.NewInt(42)
	if got := FirstNonNil(nil, a, big.NewInt(1)); got != a {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonNil[big.Int](nil, nil); got != nil {
		t.Fatalf("got %v", got)
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "Y", "yes", "1", "on"} {
		if !StrToBool(str) {
			t.Fatalf("%s", str)
		}
	}
	for _, str := range []string{"false", "n", "", "foo"} {
		if StrToBool(str) {
			t.Fatalf("%s", str)
		}
	}
}
