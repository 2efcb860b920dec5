// Package dragonbones evaluates DragonBones 2D skeletal animations on the
// CPU. Load parses a skeleton and atlas export into an immutable document;
// Animate poses one frame of one animation and returns a flat list of
// props carrying world transforms, sub-texture metadata, render order, and
// mesh geometry for a renderer to draw.
//
// The package performs no rendering and owns no GPU state. Evaluation is
// single-threaded and deterministic; a loaded document may be shared by
// concurrent Animate calls as long as each call owns its output buffer.
package dragonbones
