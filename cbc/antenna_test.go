package cbc

import (
	"math"
	"testing"

	"github.com/johnveitch/lalsuite/internal/testutil"
)

func TestAntennaOverhead(t *testing.T) {
	// Source directly overhead with aligned polarization couples fully
	// into plus and not at all into cross.
	if fp := FPlus(0, 0, 0); fp != 1 {
		t.Fatalf("FPlus(0,0,0) = %v, want 1", fp)
	}
	if fc := FCross(0, 0, 0); fc != 0 {
		t.Fatalf("FCross(0,0,0) = %v, want 0", fc)
	}

	// Rotating the polarization by pi/4 swaps the couplings.
	testutil.RequireNearlyEqual(t, FPlus(0, 0, math.Pi/4), 0, 1e-15)
	testutil.RequireNearlyEqual(t, FCross(0, 0, math.Pi/4), 1, 1e-15)
}

func TestAntennaOverheadIdentity(t *testing.T) {
	// At theta = 0 the responses reduce to cos/sin of 2(phi+psi).
	for _, phi := range []float64{0, 0.4, 1.3, 2.9} {
		for _, psi := range []float64{0, 0.7, 1.9} {
			fp := FPlus(0, phi, psi)
			fc := FCross(0, phi, psi)
			testutil.RequireNearlyEqual(t, fp*fp+fc*fc, 1, 1e-12)
		}
	}
}

func TestAntennaBounded(t *testing.T) {
	for _, theta := range []float64{0, 0.5, math.Pi / 2, 2.2, math.Pi} {
		for _, phi := range []float64{0, 0.8, 1.6, 2.4} {
			for _, psi := range []float64{0, 0.6, 1.2} {
				if f := math.Abs(FPlus(theta, phi, psi)); f > 1+1e-12 {
					t.Fatalf("FPlus(%g,%g,%g) = %v out of range", theta, phi, psi, f)
				}
				if f := math.Abs(FCross(theta, phi, psi)); f > 1+1e-12 {
					t.Fatalf("FCross(%g,%g,%g) = %v out of range", theta, phi, psi, f)
				}
			}
		}
	}
}
