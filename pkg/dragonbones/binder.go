package dragonbones

import "github.com/go-gl/mathgl/mgl64"

// bindDisplay resolves the geometry attached to one bone and fills the
// texture and mesh fields of its prop: the bone's first visible slot, the
// skin-slot bound to it, the first display, and the display's sub-texture.
//
// A bone with no visible slot gets a zero placeholder sub-texture and a
// zero-sized quad. A nil atlas zeroes every texture field and quads
// collapse to zero size; mesh geometry is kept since it lives in the
// skeleton document.
func bindDisplay(p *Prop, arm *Armature, atlas *Atlas) {
	var display *Display
	var slot *Slot

	si := arm.slotAttachedTo(p.Name)
	if si != -1 {
		slot = &arm.Slot[si]
		skin := &arm.Skin[0]
		if ki := skin.slotIndexOf(slot.Name); ki != -1 && len(skin.Slot[ki].Display) > 0 {
			display = &skin.Slot[ki].Display[0]
		}
	}

	var tex SubTexture
	if display != nil && atlas != nil {
		p.TexPos = mgl64.Vec2{display.Transform.X, display.Transform.Y}
		p.TexRot = display.Transform.Rot
		p.TexIdx = atlas.subTexIndexOf(display.Name)
		if p.TexIdx != -1 {
			tex = atlas.SubTexture[p.TexIdx]
		}
	}
	p.TexSize = mgl64.Vec2{tex.Width, tex.Height}

	if display != nil && len(display.Vertices) > 0 {
		bindMesh(p, display)
	} else {
		bindQuad(p, tex.Width, tex.Height)
	}

	// A quad is still emitted as a two-triangle mesh.
	p.IsMesh = true

	if slot != nil && tex.Name != "" {
		p.Z = slot.Z
	}
}

// bindMesh unpacks the display's flat vertex, UV, and triangle arrays into
// the prop.
func bindMesh(p *Prop, display *Display) {
	n := len(display.Vertices) / 2
	p.Verts = make([]mgl64.Vec2, n)
	for i := 0; i < n; i++ {
		p.Verts[i] = mgl64.Vec2{display.Vertices[2*i], display.Vertices[2*i+1]}
	}

	m := len(display.UVs) / 2
	p.UVs = make([]mgl64.Vec2, m)
	for i := 0; i < m; i++ {
		p.UVs[i] = mgl64.Vec2{display.UVs[2*i], display.UVs[2*i+1]}
	}

	t := len(display.Triangles) / 3
	p.Tris = make([][3]int, t)
	for i := 0; i < t; i++ {
		p.Tris[i] = [3]int{
			display.Triangles[3*i],
			display.Triangles[3*i+1],
			display.Triangles[3*i+2],
		}
	}
}

// bindQuad synthesizes a centered two-triangle quad of the given size.
func bindQuad(p *Prop, w, h float64) {
	p.Verts = []mgl64.Vec2{
		{-w / 2, -h / 2},
		{w / 2, -h / 2},
		{-w / 2, h / 2},
		{w / 2, h / 2},
	}
	p.UVs = []mgl64.Vec2{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
	}
	p.Tris = [][3]int{
		{0, 1, 2},
		{1, 2, 3},
	}
}
