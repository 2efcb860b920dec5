package exporters

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/kverran/dragonbones-go/pkg/dragonbones"
)

// GltfExportFormat defines the output format for glTF export.
type GltfExportFormat int

const (
	// GltfExportFormatGlTF exports a .gltf json file with an external .bin.
	GltfExportFormatGlTF GltfExportFormat = 0
	// GltfExportFormatGlb exports one binary .glb file.
	GltfExportFormatGlb GltfExportFormat = 1
)

const materialRoughness = 0.9

// GltfWriter exports evaluated frames to glTF: one node per prop, its mesh
// built from the prop's vertex, UV, and triangle buffers, and its world
// pose expressed as node TRS. Render order becomes the node's z
// translation so a 3D viewer stacks the parts the way a 2D renderer would.
type GltfWriter struct {
	doc          *gltf.Document
	exportFormat GltfExportFormat
	materialIdx  uint32
}

// NewGltfWriter creates a new GltfWriter.
func NewGltfWriter(exportFormat GltfExportFormat) *GltfWriter {
	w := &GltfWriter{exportFormat: exportFormat}
	w.ClearExportData()
	return w
}

// AddFrameData adds every prop of one evaluated frame to the scene.
func (w *GltfWriter) AddFrameData(props []dragonbones.Prop) {
	for i := range props {
		w.addProp(&props[i])
	}
}

// addProp builds the mesh and node for a single prop.
func (w *GltfWriter) addProp(p *dragonbones.Prop) {
	if len(p.Verts) == 0 || len(p.Tris) == 0 {
		return
	}

	positions := make([][3]float32, len(p.Verts))
	for i, v := range p.Verts {
		positions[i] = [3]float32{float32(v.X()), float32(v.Y()), 0}
	}

	uvs := make([][2]float32, len(p.Verts))
	for i := range p.Verts {
		if i < len(p.UVs) {
			uvs[i] = [2]float32{float32(p.UVs[i].X()), float32(p.UVs[i].Y())}
		}
	}

	indices := make([]uint32, 0, len(p.Tris)*3)
	for _, t := range p.Tris {
		indices = append(indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}

	posAccessor := modeler.WritePosition(w.doc, positions)
	uvAccessor := modeler.WriteTextureCoord(w.doc, uvs)
	indicesAccessor := modeler.WriteIndices(w.doc, indices)

	mesh := &gltf.Mesh{
		Name: p.Name,
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{
				gltf.POSITION:   posAccessor,
				gltf.TEXCOORD_0: uvAccessor,
			},
			Indices:  gltf.Index(indicesAccessor),
			Material: gltf.Index(w.materialIdx),
			Mode:     gltf.PrimitiveTriangles,
		}},
	}
	meshIdx := uint32(len(w.doc.Meshes))
	w.doc.Meshes = append(w.doc.Meshes, mesh)

	// World pose as TRS about the z axis.
	half := p.Rot * math.Pi / 180 / 2
	node := &gltf.Node{
		Name:        p.Name,
		Mesh:        gltf.Index(meshIdx),
		Translation: [3]float32{float32(p.Pos.X()), float32(p.Pos.Y()), float32(p.Z)},
		Rotation:    [4]float32{0, 0, float32(math.Sin(half)), float32(math.Cos(half))},
		Scale:       [3]float32{float32(p.Scale.X()), float32(p.Scale.Y()), 1},
	}

	nodeIdx := uint32(len(w.doc.Nodes))
	w.doc.Nodes = append(w.doc.Nodes, node)
	w.doc.Scenes[0].Nodes = append(w.doc.Scenes[0].Nodes, nodeIdx)
}

// Document returns the glTF document under construction.
func (w *GltfWriter) Document() *gltf.Document {
	return w.doc
}

// WriteAssetToFile writes the glTF document to a file.
func (w *GltfWriter) WriteAssetToFile(fileName string) error {
	dir := filepath.Dir(fileName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if w.exportFormat == GltfExportFormatGlb {
		return gltf.SaveBinary(w.doc, fileName)
	}
	return gltf.Save(w.doc, fileName)
}

// ClearExportData resets the writer to an empty scene for reuse.
func (w *GltfWriter) ClearExportData() {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "dragonbones-go"
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Name: "Scene"})
	doc.Scene = gltf.Index(0)

	mat := &gltf.Material{
		Name: "Flat",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0.0),
			RoughnessFactor: gltf.Float(materialRoughness),
		},
		DoubleSided: true,
	}
	doc.Materials = append(doc.Materials, mat)

	w.doc = doc
	w.materialIdx = 0
}
