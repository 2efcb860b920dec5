package exporters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kverran/dragonbones-go/pkg/dragonbones"
)

func testProps() []dragonbones.Prop {
	return []dragonbones.Prop{
		{
			Name:   "root",
			TexIdx: 0,
			Pos:    mgl64.Vec2{1, 2},
			Scale:  mgl64.Vec2{1, 1},
			Rot:    45,
			IsMesh: true,
			Verts:  []mgl64.Vec2{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}},
			UVs:    []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			Tris:   [][3]int{{0, 1, 2}, {1, 2, 3}},
			Z:      1,
		},
		{
			Name:       "arm",
			ParentName: "root",
			TexIdx:     1,
			Pos:        mgl64.Vec2{3, 4},
			Scale:      mgl64.Vec2{2, 2},
			IsMesh:     true,
			Verts:      []mgl64.Vec2{{-2, -2}, {2, -2}, {-2, 2}, {2, 2}},
			UVs:        []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			Tris:       [][3]int{{0, 1, 2}, {1, 2, 3}},
			Z:          2,
		},
	}
}

func TestPoseWriter(t *testing.T) {
	w := NewPoseWriter()
	w.AddFrameData(7, testProps())

	export := w.GetExport()
	if !strings.Contains(export, "# Frame 7") {
		t.Error("export missing frame header")
	}
	if !strings.Contains(export, "root,,0,1,2,1,1,45,1,4") {
		t.Errorf("export missing root line:\n%s", export)
	}
	if !strings.Contains(export, "arm,root,1,3,4,2,2,0,2,4") {
		t.Errorf("export missing arm line:\n%s", export)
	}
}

func TestPoseWriterWriteAssetToFile(t *testing.T) {
	w := NewPoseWriter()
	w.AddFrameData(0, testProps())

	path := filepath.Join(t.TempDir(), "poses", "frame0.txt")
	if err := w.WriteAssetToFile(path); err != nil {
		t.Fatalf("WriteAssetToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if !strings.HasPrefix(string(data), ExportHeaderTitle) {
		t.Error("export file missing header")
	}
}

func TestPoseWriterClear(t *testing.T) {
	w := NewPoseWriter()
	w.AddFrameData(0, testProps())
	w.ClearExportData()

	if w.GetExportByteCount() != 0 {
		t.Errorf("byte count after clear = %d, want 0", w.GetExportByteCount())
	}
}
