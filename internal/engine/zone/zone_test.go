package zone

import (
	"math"
	"testing"
)

func TestConstants(t *testing.T) {
	if math.Abs(PlateHalfWidth-0.7083333333) > 1e-9 {
		t.Fatalf("unexpected plate half width %v", PlateHalfWidth)
	}
	if math.Abs(BallRadius-0.1225) > 1e-12 {
		t.Fatalf("unexpected ball radius %v", BallRadius)
	}
	if HalfZoneWidth != PlateHalfWidth+BallRadius {
		t.Fatalf("half zone width must be plate half width plus ball radius")
	}
}

func TestIsStrikeInsideZone(t *testing.T) {
	top, bottom := 3.5, 1.5
	for _, px := range []float64{-0.83, -0.5, 0, 0.5, 0.83} {
		for _, pz := range []float64{bottom - BallRadius + 0.001, 2.5, top + BallRadius - 0.001} {
			if !IsStrike(px, pz, top, bottom) {
				t.Fatalf("expected strike at px=%v pz=%v", px, pz)
			}
		}
	}
}

func TestIsStrikeEdgesAreExclusive(t *testing.T) {
	top, bottom := 3.5, 1.5
	if WithinWidth(HalfZoneWidth) || WithinWidth(-HalfZoneWidth) {
		t.Fatal("pitch exactly on the widened edge is not within width")
	}
	if WithinHeight(top+BallRadius, top, bottom) {
		t.Fatal("pitch exactly on the widened top is not within height")
	}
	if WithinHeight(bottom-BallRadius, top, bottom) {
		t.Fatal("pitch exactly on the widened bottom is not within height")
	}
}

func TestIsStrikeOutsideWidth(t *testing.T) {
	if IsStrike(1.0, 2.5, 3.5, 1.5) {
		t.Fatal("expected ball outside width")
	}
	if IsStrike(-0.9, 2.5, 3.5, 1.5) {
		t.Fatal("expected ball outside width on the other side")
	}
}

func TestXMiss(t *testing.T) {
	if got := XMiss(0.4); got != 0 {
		t.Fatalf("expected zero miss inside width, got %v", got)
	}
	if got := XMiss(-1.0); math.Abs(got-(1.0-HalfZoneWidth)) > 1e-12 {
		t.Fatalf("unexpected x miss %v", got)
	}
}

func TestYMiss(t *testing.T) {
	top, bottom := 3.5, 1.5
	cases := []struct {
		name string
		pz   float64
		want float64
	}{
		{"inside", 2.0, 0},
		{"high", 4.0, 4.0 - top - BallRadius},
		{"low", 1.0, bottom - BallRadius - 1.0},
	}
	for _, tc := range cases {
		if got := YMiss(tc.pz, top, bottom); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
		if got := YMiss(tc.pz, top, bottom); got < 0 {
			t.Fatalf("%s: miss must not be negative, got %v", tc.name, got)
		}
	}
}
