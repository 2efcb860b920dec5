package dragonbones

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPrepTexForRot(t *testing.T) {
	p := &Prop{
		TexPos: mgl64.Vec2{5, 0},
		TexRot: 90,
	}

	PrepTexForRot(p)
	if !approxVec(p.TexPos, mgl64.Vec2{0, -5}) {
		t.Errorf("TexPos = %v, want (0, -5)", p.TexPos)
	}
	if !approx(p.TexRot, 90) {
		t.Errorf("TexRot changed to %g, want 90 untouched", p.TexRot)
	}

	// The helper is not idempotent while TexRot stays set.
	PrepTexForRot(p)
	if !approxVec(p.TexPos, mgl64.Vec2{-5, 0}) {
		t.Errorf("second rotation TexPos = %v, want (-5, 0)", p.TexPos)
	}
}

func TestPrepTexForRotZeroRotation(t *testing.T) {
	p := &Prop{TexPos: mgl64.Vec2{3, 4}}

	PrepTexForRot(p)
	if !approxVec(p.TexPos, mgl64.Vec2{3, 4}) {
		t.Errorf("TexPos = %v, want (3, 4) unchanged", p.TexPos)
	}
}
