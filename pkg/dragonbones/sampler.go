package dragonbones

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// frameIdx walks a keyframe track and returns the index of the key active
// at the given frame plus the offset into it, with every key's duration
// stretched by speed. (-1, -1) marks a frame past the end of the track.
func frameIdx(frames []Keyframe, frame, speed int) (int, int) {
	time := 0
	for i := range frames {
		d := frames[i].Duration * speed
		if frame < time+d {
			return i, frame - time
		}
		time += d
	}
	return -1, -1
}

// meshFrameIdx is frameIdx over an FFD track.
func meshFrameIdx(frames []MeshFrame, frame, speed int) (int, int) {
	time := 0
	for i := range frames {
		d := frames[i].Duration * speed
		if frame < time+d {
			return i, frame - time
		}
		time += d
	}
	return -1, -1
}

// tween linearly interpolates from a to b over an integer span, clamping
// out-of-range offsets to the endpoints.
func tween(a, b float64, span, offset int) float64 {
	if span <= 0 || offset >= span {
		return b
	}
	if offset <= 0 {
		return a
	}
	return a + (b-a)*float64(offset)/float64(span)
}

// rotateVec rotates v by deg degrees counterclockwise.
func rotateVec(v mgl64.Vec2, deg float64) mgl64.Vec2 {
	theta := deg * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)
	return mgl64.Vec2{
		v.X()*cos - v.Y()*sin,
		v.X()*sin + v.Y()*cos,
	}
}

// sampleRotate samples a rotate track at the given frame. Past the end of
// the track, or on a single-key track, the last key's value holds.
func sampleRotate(frames []Keyframe, frame, speed int) float64 {
	last := len(frames) - 1
	i, offset := frameIdx(frames, frame, speed)
	if i == -1 || len(frames) == 1 {
		return frames[last].Rotate
	}
	j := i + 1
	if j > last {
		j = last
	}
	return tween(frames[i].Rotate, frames[j].Rotate, frames[i].Duration*speed, offset)
}

// sampleScale samples a scale track at the given frame.
func sampleScale(frames []Keyframe, frame, speed int) mgl64.Vec2 {
	last := len(frames) - 1
	i, offset := frameIdx(frames, frame, speed)
	if i == -1 || len(frames) == 1 {
		return mgl64.Vec2{frames[last].X, frames[last].Y}
	}
	j := i + 1
	if j > last {
		j = last
	}
	span := frames[i].Duration * speed
	return mgl64.Vec2{
		tween(frames[i].X, frames[j].X, span, offset),
		tween(frames[i].Y, frames[j].Y, span, offset),
	}
}

// sampleTranslate samples a translate track at the given frame with both
// endpoints rotated by rot degrees first. The evaluator passes the negated
// world rotation of the parent so the delta lands in the parent's frame.
func sampleTranslate(frames []Keyframe, frame, speed int, rot float64) mgl64.Vec2 {
	last := len(frames) - 1
	i, offset := frameIdx(frames, frame, speed)
	if i == -1 || len(frames) == 1 {
		return rotateVec(mgl64.Vec2{frames[last].X, frames[last].Y}, rot)
	}
	j := i + 1
	if j > last {
		j = last
	}
	a := rotateVec(mgl64.Vec2{frames[i].X, frames[i].Y}, rot)
	b := rotateVec(mgl64.Vec2{frames[j].X, frames[j].Y}, rot)
	span := frames[i].Duration * speed
	return mgl64.Vec2{
		tween(a.X(), b.X(), span, offset),
		tween(a.Y(), b.Y(), span, offset),
	}
}

// sampleMesh samples an FFD track at the given frame and returns the
// deformed vertex list: the base mesh plus the tweened per-vertex offsets
// of the two active keys. A next-key array shorter than the active key's
// contributes zero for its missing entries, and vertices past the active
// key's data pass through from the base unchanged. An empty active key returns the
// base mesh as-is.
func sampleMesh(frames []MeshFrame, frame, speed int, base []mgl64.Vec2) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(base))

	last := len(frames) - 1
	i, offset := meshFrameIdx(frames, frame, speed)
	if i == -1 {
		// Past the end: the last key holds.
		i = last
		offset = frames[last].Duration * speed
	}

	a := frames[i]
	if len(a.Vertices) == 0 {
		copy(out, base)
		return out
	}

	j := i + 1
	if j > last {
		j = last
	}
	b := frames[j]
	span := a.Duration * speed

	pairs := len(a.Vertices) / 2
	for v := range base {
		if v >= pairs {
			out[v] = base[v]
			continue
		}
		ax, ay := a.Vertices[2*v], a.Vertices[2*v+1]
		var bx, by float64
		if 2*v+1 < len(b.Vertices) {
			bx, by = b.Vertices[2*v], b.Vertices[2*v+1]
		}
		out[v] = base[v].Add(mgl64.Vec2{
			tween(ax, bx, span, offset),
			tween(ay, by, span, offset),
		})
	}
	return out
}
