package dragonbones

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Animate evaluates one frame of one animation and returns the posed props
// in bone-track order. frame is the logical frame number and speed is an
// integer multiplier stretching every keyframe's duration; speed 1 plays
// the document's own timing.
//
// Animate is a pure function of its arguments: it never mutates the
// document or atlas, and repeated calls with the same inputs produce
// identical output. The indices of the returned slice respect the bone
// hierarchy: a prop's parent always precedes it.
func Animate(doc *Document, atlas *Atlas, animIdx, frame, speed int) []Prop {
	return AnimateInto(doc, atlas, animIdx, frame, speed, nil)
}

// AnimateInto is Animate with a reusable output buffer. The buffer is
// truncated and refilled; the returned slice shares its backing array.
// Passing nil allocates a fresh buffer.
func AnimateInto(doc *Document, atlas *Atlas, animIdx, frame, speed int, out []Prop) []Prop {
	arm := &doc.Armature[0]
	if animIdx < 0 || animIdx >= len(arm.Animation) {
		panic(fmt.Sprintf("dragonbones: animation index %d out of range [0, %d)", animIdx, len(arm.Animation)))
	}
	if frame < 0 {
		panic(fmt.Sprintf("dragonbones: negative frame %d", frame))
	}
	if speed < 0 {
		panic(fmt.Sprintf("dragonbones: negative speed %d", speed))
	}

	anim := &arm.Animation[animIdx]
	out = out[:0]
	propIdx := make(map[string]int, len(anim.Bone))

	for ti := range anim.Bone {
		tl := &anim.Bone[ti]
		bi := arm.boneIndexOf(tl.Name)
		if bi == -1 {
			// A track naming no bone emits no prop.
			continue
		}
		bone := &arm.Bone[bi]

		p := Prop{
			Name:       bone.Name,
			ParentName: bone.Parent,
			Pos:        mgl64.Vec2{bone.Transform.X, bone.Transform.Y},
			Scale:      mgl64.Vec2{bone.Transform.ScX, bone.Transform.ScY},
			Rot:        bone.Transform.Rot,
		}
		bindDisplay(&p, arm, atlas)

		// Compose onto the parent's world pose. The bone list is
		// topologically ordered and the track order mirrors it, so the
		// parent prop is already built.
		parentRot := 0.0
		if p.ParentName != "" {
			if pi, ok := propIdx[p.ParentName]; ok {
				parent := &out[pi]
				p.Pos = parent.Pos.Add(rotateVec(p.Pos, parent.Rot))
				p.Scale = mgl64.Vec2{parent.Scale.X() * p.Scale.X(), parent.Scale.Y() * p.Scale.Y()}
				p.Rot = parent.Rot + p.Rot
				parentRot = parent.Rot
			}
		}

		// Animated deltas ride on top of the composed pose. The translate
		// track is sampled in the parent's frame.
		if len(tl.TranslateFrame) > 0 {
			p.Pos = p.Pos.Add(sampleTranslate(tl.TranslateFrame, frame, speed, -parentRot))
		}
		if len(tl.ScaleFrame) > 0 {
			s := sampleScale(tl.ScaleFrame, frame, speed)
			p.Scale = mgl64.Vec2{p.Scale.X() * s.X(), p.Scale.Y() * s.Y()}
		}
		if len(tl.RotateFrame) > 0 {
			p.Rot += sampleRotate(tl.RotateFrame, frame, speed)
		}

		propIdx[p.Name] = len(out)
		out = append(out, p)
	}

	// FFD pass: rewrite the vertex buffers of deformed slots on top of the
	// base meshes bound above.
	for fi := range anim.FFD {
		ffd := &anim.FFD[fi]
		if len(ffd.Frame) == 0 {
			continue
		}
		pi, ok := propIdx[ffd.Name]
		if !ok {
			continue
		}
		p := &out[pi]
		p.Verts = sampleMesh(ffd.Frame, frame, speed, p.Verts)
	}

	return out
}
