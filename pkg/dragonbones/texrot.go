package dragonbones

// PrepTexForRot rotates the prop's texture anchor by the negated texture
// rotation, in place, so a renderer can add TexRot to the bone rotation at
// draw time. Calling it twice rotates twice; reset TexRot after use if the
// prop is drawn again.
func PrepTexForRot(p *Prop) {
	p.TexPos = rotateVec(p.TexPos, -p.TexRot)
}
