package exporters

import (
	"fmt"

	"github.com/kverran/dragonbones-go/pkg/dragonbones"
)

// PoseWriter exports evaluated frames to a text format: one header line
// per frame followed by one comma-separated line per prop.
type PoseWriter struct {
	TextAssetWriter
}

// NewPoseWriter creates a new PoseWriter.
func NewPoseWriter() *PoseWriter {
	w := &PoseWriter{}
	w.AppendLine(ExportHeaderTitle + "Pose")
	w.AppendLine("# Format: name,parent,texIdx,posX,posY,scaleX,scaleY,rot,z,vertCount")
	return w
}

// AddFrameData appends one evaluated frame to the export buffer.
func (w *PoseWriter) AddFrameData(frame int, props []dragonbones.Prop) {
	w.AppendLine(fmt.Sprintf("# Frame %d", frame))
	for i := range props {
		w.createPropString(&props[i])
	}
}

// createPropString appends the line for a single prop.
func (w *PoseWriter) createPropString(p *dragonbones.Prop) {
	w.AppendString(p.Name)
	w.AppendString(",")

	w.AppendString(p.ParentName)
	w.AppendString(",")

	w.AppendString(fmt.Sprintf("%d", p.TexIdx))
	w.AppendString(",")

	w.AppendString(fmt.Sprintf("%g", p.Pos.X()))
	w.AppendString(",")

	w.AppendString(fmt.Sprintf("%g", p.Pos.Y()))
	w.AppendString(",")

	w.AppendString(fmt.Sprintf("%g", p.Scale.X()))
	w.AppendString(",")

	w.AppendString(fmt.Sprintf("%g", p.Scale.Y()))
	w.AppendString(",")

	w.AppendString(fmt.Sprintf("%g", p.Rot))
	w.AppendString(",")

	w.AppendString(fmt.Sprintf("%d", p.Z))
	w.AppendString(",")

	w.AppendLine(fmt.Sprintf("%d", len(p.Verts)))
}
