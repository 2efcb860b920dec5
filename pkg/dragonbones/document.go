package dragonbones

import (
	"encoding/json"

	"github.com/go-gl/mathgl/mgl64"
)

// missingValue is the placeholder that Keyframe.UnmarshalJSON stores in
// keyframe value fields absent from the export. The normalizer rewrites
// it to the identity value of the track kind before evaluation.
const missingValue = 9999.0

// Document is the typed form of a DragonBones skeleton JSON export.
// It is read-only after Load returns.
type Document struct {
	// FrameRate is the authored playback rate in frames per second.
	FrameRate int `json:"frameRate"`

	// Armature is the list of skeletons in the document. Only the first
	// armature is evaluated.
	Armature []Armature `json:"armature"`
}

// Armature is one skeleton: its bone hierarchy, the slots attached to the
// bones, the skins binding geometry to slots, and the animations defined
// over them.
type Armature struct {
	Name      string      `json:"name"`
	Bone      []Bone      `json:"bone"`
	Slot      []Slot      `json:"slot"`
	Skin      []Skin      `json:"skin"`
	Animation []Animation `json:"animation"`

	// Lookup tables built once by the loader. The bone list is
	// topologically ordered, so parents always resolve before children.
	boneIndex map[string]int
	// boneSlot maps a bone name to the first visible slot attached to it.
	boneSlot map[string]int
}

// Bone is a named node in the hierarchy with a local rest transform.
// An empty Parent marks the root.
type Bone struct {
	Name      string    `json:"name"`
	Parent    string    `json:"parent"`
	Transform Transform `json:"transform"`
}

// Transform is a local 2D pose: translation, rotation in degrees, and
// per-axis scale.
type Transform struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Rot float64 `json:"skX"`
	ScX float64 `json:"scX"`
	ScY float64 `json:"scY"`
}

// UnmarshalJSON decodes a transform, defaulting the scale axes to 1.
func (t *Transform) UnmarshalJSON(data []byte) error {
	type transform Transform
	tmp := transform{ScX: 1, ScY: 1}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*t = Transform(tmp)
	return nil
}

// Slot is an attachment point parented to a bone. A DisplayIndex of -1
// hides the slot; hidden slots are skipped during bone lookups but stay
// in the list.
type Slot struct {
	Name         string `json:"name"`
	Parent       string `json:"parent"`
	Z            int    `json:"z"`
	DisplayIndex int    `json:"displayIndex"`
}

// Skin binds geometry to slots. Only the first skin of an armature is
// evaluated.
type Skin struct {
	Name string     `json:"name"`
	Slot []SkinSlot `json:"slot"`

	slotIndex map[string]int
}

// SkinSlot is the geometry bound to one slot, keyed by the slot name.
// Only the first display is used.
type SkinSlot struct {
	Name    string    `json:"name"`
	Display []Display `json:"display"`
}

// Display carries a sub-texture name, the texture anchor relative to the
// bone, and optional mesh geometry. A display with a non-empty Vertices
// list is a mesh; otherwise it is a quad sized from its sub-texture.
type Display struct {
	Name      string    `json:"name"`
	Transform Transform `json:"transform"`

	// Vertices is a flat list of x,y pairs.
	Vertices []float64 `json:"vertices"`
	// UVs is a flat list of u,v pairs, parallel to Vertices.
	UVs []float64 `json:"uvs"`
	// Triangles is a flat list of index triples into the vertex list.
	Triangles []int `json:"triangles"`
	// Edges is carried through from the export but unused at runtime.
	Edges []int `json:"edges"`
}

// Animation is one clip: per-bone keyframe tracks plus per-slot mesh
// deformation tracks.
type Animation struct {
	Name     string         `json:"name"`
	Duration int            `json:"duration"`
	Bone     []BoneTimeline `json:"bone"`
	FFD      []FFDTimeline  `json:"ffd"`
}

// BoneTimeline holds the translate, scale, and rotate keyframe tracks of
// one bone. Any track may be empty.
type BoneTimeline struct {
	Name           string     `json:"name"`
	TranslateFrame []Keyframe `json:"translateFrame"`
	ScaleFrame     []Keyframe `json:"scaleFrame"`
	RotateFrame    []Keyframe `json:"rotateFrame"`
}

// Keyframe is a single key of a translate, scale, or rotate track.
// Duration is the key's length in frames. TweenEasing is parsed but the
// sampler only implements linear interpolation.
type Keyframe struct {
	TweenEasing float64 `json:"tweenEasing"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Rotate      float64 `json:"rotate"`
	Duration    int     `json:"duration"`
}

// UnmarshalJSON decodes a keyframe, marking absent value fields with the
// missing-value placeholder so the normalizer can fill the track's
// identity value.
func (k *Keyframe) UnmarshalJSON(data []byte) error {
	type keyframe Keyframe
	tmp := keyframe{X: missingValue, Y: missingValue, Rotate: missingValue}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*k = Keyframe(tmp)
	return nil
}

// FFDTimeline is the free-form deformation track of one slot's mesh.
type FFDTimeline struct {
	Name  string      `json:"name"`
	Frame []MeshFrame `json:"frame"`
}

// MeshFrame is one key of an FFD track: a flat list of x,y vertex offsets
// added on top of the slot's base mesh. An empty list leaves the base
// mesh unchanged.
type MeshFrame struct {
	Vertices []float64 `json:"vertices"`
	Duration int       `json:"duration"`
}

// Atlas is the typed form of a DragonBones texture atlas JSON export.
type Atlas struct {
	Name       string       `json:"name"`
	ImagePath  string       `json:"imagePath"`
	SubTexture []SubTexture `json:"SubTexture"`

	subTexIndex map[string]int
}

// SubTexture is a named rectangle within the atlas page image.
type SubTexture struct {
	Name        string  `json:"name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	FrameWidth  float64 `json:"frameWidth"`
	FrameHeight float64 `json:"frameHeight"`
}

// Prop is the evaluator's per-bone output for a single frame: the world
// pose of the bone plus the renderable geometry attached to it. Props are
// created fresh on every Animate call and owned by the caller.
type Prop struct {
	Name       string
	ParentName string

	// TexIdx is the index of the sub-texture in the atlas, or -1 when the
	// display name resolves to no atlas entry.
	TexIdx int

	// Pos, Scale, and Rot are the world pose composed down the parent
	// chain. Rot is in degrees.
	Pos   mgl64.Vec2
	Scale mgl64.Vec2
	Rot   float64

	// TexSize is the sub-texture extent; TexPos is the texture anchor
	// offset relative to the bone; TexRot is the anchor rotation in
	// degrees.
	TexSize mgl64.Vec2
	TexPos  mgl64.Vec2
	TexRot  float64

	// IsMesh is always true: quads are emitted as two-triangle meshes.
	IsMesh bool

	// Verts and UVs are parallel lists; Tris indexes into Verts.
	Verts []mgl64.Vec2
	UVs   []mgl64.Vec2
	Tris  [][3]int

	// Z is the render order taken from the displaying slot.
	Z int
}
