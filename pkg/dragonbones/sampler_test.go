package dragonbones

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func approxVec(a, b mgl64.Vec2) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y())
}

func TestFrameIdx(t *testing.T) {
	frames := []Keyframe{
		{Duration: 10},
		{Duration: 5},
		{Duration: 1},
	}

	tests := []struct {
		name       string
		frame      int
		speed      int
		wantIdx    int
		wantOffset int
	}{
		{"first frame start", 0, 1, 0, 0},
		{"inside first", 9, 1, 0, 9},
		{"second start", 10, 1, 1, 0},
		{"inside second", 12, 1, 1, 2},
		{"last", 15, 1, 2, 0},
		{"past end", 16, 1, -1, -1},
		{"speed stretches", 19, 2, 0, 19},
		{"speed second key", 20, 2, 1, 0},
		{"speed past end", 32, 2, -1, -1},
		{"zero speed collapses", 0, 0, -1, -1},
	}

	for _, test := range tests {
		idx, offset := frameIdx(frames, test.frame, test.speed)
		if idx != test.wantIdx || offset != test.wantOffset {
			t.Errorf("%s: frameIdx(frame=%d, speed=%d) = (%d, %d), want (%d, %d)",
				test.name, test.frame, test.speed, idx, offset, test.wantIdx, test.wantOffset)
		}
	}
}

func TestTween(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		span   int
		offset int
		want   float64
	}{
		{"start", 0, 100, 10, 0, 0},
		{"midpoint", 0, 100, 10, 5, 50},
		{"end clamp", 0, 100, 10, 10, 100},
		{"past end clamp", 0, 100, 10, 99, 100},
		{"negative offset clamp", 0, 100, 10, -3, 0},
		{"zero span", 7, 42, 0, 0, 42},
		{"descending", 100, 0, 4, 1, 75},
	}

	for _, test := range tests {
		got := tween(test.a, test.b, test.span, test.offset)
		if !approx(got, test.want) {
			t.Errorf("%s: tween(%g, %g, %d, %d) = %g, want %g",
				test.name, test.a, test.b, test.span, test.offset, got, test.want)
		}
	}
}

func TestRotateVec(t *testing.T) {
	got := rotateVec(mgl64.Vec2{10, 0}, 90)
	if !approxVec(got, mgl64.Vec2{0, 10}) {
		t.Errorf("rotateVec((10,0), 90) = %v, want (0, 10)", got)
	}

	got = rotateVec(mgl64.Vec2{5, 0}, -90)
	if !approxVec(got, mgl64.Vec2{0, -5}) {
		t.Errorf("rotateVec((5,0), -90) = %v, want (0, -5)", got)
	}
}

func TestSampleRotate(t *testing.T) {
	track := []Keyframe{
		{Rotate: 0, Duration: 10},
		{Rotate: 90, Duration: 1},
	}

	if got := sampleRotate(track, 5, 1); !approx(got, 45) {
		t.Errorf("midpoint sample = %g, want 45", got)
	}

	// Past the end of the track the last key's value holds.
	if got := sampleRotate(track, 1000, 1); !approx(got, 90) {
		t.Errorf("terminal sample = %g, want 90", got)
	}

	// A single-key track always returns its only value.
	single := []Keyframe{{Rotate: 30, Duration: 1}}
	if got := sampleRotate(single, 0, 1); !approx(got, 30) {
		t.Errorf("single-key sample = %g, want 30", got)
	}

	// Zero speed collapses every key; the terminal branch returns the
	// last value.
	if got := sampleRotate(track, 0, 0); !approx(got, 90) {
		t.Errorf("zero-speed sample = %g, want 90", got)
	}
}

func TestSampleScale(t *testing.T) {
	track := []Keyframe{
		{X: 1, Y: 1, Duration: 4},
		{X: 3, Y: 5, Duration: 1},
	}

	if got := sampleScale(track, 2, 1); !approxVec(got, mgl64.Vec2{2, 3}) {
		t.Errorf("midpoint sample = %v, want (2, 3)", got)
	}

	if got := sampleScale(track, 100, 1); !approxVec(got, mgl64.Vec2{3, 5}) {
		t.Errorf("terminal sample = %v, want (3, 5)", got)
	}
}

func TestSampleTranslatePreRotated(t *testing.T) {
	// A parent at 90 degrees pre-rotates the track by -90: (5,0) lands at
	// (0,-5).
	track := []Keyframe{{X: 5, Y: 0, Duration: 1}}
	got := sampleTranslate(track, 0, 1, -90)
	if !approxVec(got, mgl64.Vec2{0, -5}) {
		t.Errorf("pre-rotated sample = %v, want (0, -5)", got)
	}

	// Both endpoints rotate before the tween.
	two := []Keyframe{
		{X: 0, Y: 0, Duration: 10},
		{X: 100, Y: 0, Duration: 1},
	}
	got = sampleTranslate(two, 5, 1, -90)
	if !approxVec(got, mgl64.Vec2{0, -50}) {
		t.Errorf("pre-rotated midpoint = %v, want (0, -50)", got)
	}
}

func TestSampleTranslateSpeedScaling(t *testing.T) {
	track := []Keyframe{
		{X: 0, Y: 0, Duration: 10},
		{X: 100, Y: 0, Duration: 1},
	}

	atSpeed1 := sampleTranslate(track, 5, 1, 0)
	atSpeed2 := sampleTranslate(track, 10, 2, 0)
	if !approxVec(atSpeed1, atSpeed2) {
		t.Errorf("speed scaling mismatch: speed 1 frame 5 = %v, speed 2 frame 10 = %v", atSpeed1, atSpeed2)
	}
	if !approxVec(atSpeed1, mgl64.Vec2{50, 0}) {
		t.Errorf("midpoint = %v, want (50, 0)", atSpeed1)
	}
}

func TestSampleMesh(t *testing.T) {
	base := []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	// A single key adds its offsets verbatim.
	single := []MeshFrame{{Vertices: []float64{0.5, 0.5, 0, 0, 0, 0, 0, 0}, Duration: 1}}
	got := sampleMesh(single, 0, 1, base)
	want := []mgl64.Vec2{{0.5, 0.5}, {1, 0}, {0, 1}, {1, 1}}
	for i := range want {
		if !approxVec(got[i], want[i]) {
			t.Errorf("vert %d = %v, want %v", i, got[i], want[i])
		}
	}

	// An empty active key leaves the base mesh unchanged.
	empty := []MeshFrame{{Vertices: nil, Duration: 1}}
	got = sampleMesh(empty, 0, 1, base)
	for i := range base {
		if got[i] != base[i] {
			t.Errorf("empty key vert %d = %v, want base %v", i, got[i], base[i])
		}
	}

	// A shorter second key contributes zero for its missing entries.
	short := []MeshFrame{
		{Vertices: []float64{10, 10, 10, 10, 10, 10, 10, 10}, Duration: 2},
		{Vertices: []float64{10, 10}, Duration: 1},
	}
	got = sampleMesh(short, 1, 1, base)
	if !approxVec(got[0], mgl64.Vec2{10, 10}) {
		t.Errorf("short-key vert 0 = %v, want (10, 10)", got[0])
	}
	// Offsets for missing entries tween toward zero: halfway from 10 to 0.
	if !approxVec(got[1], mgl64.Vec2{1 + 5, 0 + 5}) {
		t.Errorf("short-key vert 1 = %v, want (6, 5)", got[1])
	}

	// Fewer key pairs than base verts: the tail passes through.
	partial := []MeshFrame{{Vertices: []float64{1, 2}, Duration: 1}}
	got = sampleMesh(partial, 0, 1, base)
	if !approxVec(got[0], mgl64.Vec2{1, 2}) {
		t.Errorf("partial vert 0 = %v, want (1, 2)", got[0])
	}
	for i := 1; i < len(base); i++ {
		if got[i] != base[i] {
			t.Errorf("partial tail vert %d = %v, want base %v", i, got[i], base[i])
		}
	}

	// Past the end the last key holds.
	got = sampleMesh(single, 1000, 1, base)
	if !approxVec(got[0], mgl64.Vec2{0.5, 0.5}) {
		t.Errorf("terminal vert 0 = %v, want (0.5, 0.5)", got[0])
	}
}
