package dragonbones

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kverran/dragonbones-go/pkg/archive"
	"github.com/kverran/dragonbones-go/pkg/infrastructure/logger"
)

const (
	// SkeletonSuffix is the filename suffix of the skeleton JSON inside an
	// export bundle.
	SkeletonSuffix = "_ske.json"

	// AtlasSuffix is the filename suffix of the texture atlas JSON inside
	// an export bundle.
	AtlasSuffix = "_tex.json"
)

var (
	// ErrNoArmature is returned when the skeleton document contains no
	// armatures.
	ErrNoArmature = errors.New("document has no armature")

	// ErrNoSkin is returned when the evaluated armature contains no skin.
	ErrNoSkin = errors.New("armature has no skin")

	// ErrSkeletonNotFound is returned when a bundle holds no skeleton JSON.
	ErrSkeletonNotFound = errors.New("no skeleton json in bundle")
)

// Load parses a skeleton JSON document and an optional atlas JSON document
// into their typed, normalized forms. atlasJSON may be nil, in which case
// every prop the evaluator emits carries zeroed texture fields and quads
// collapse to zero size.
//
// The returned document and atlas are read-only; Animate never mutates
// them, so they may be shared across goroutines.
func Load(skelJSON, atlasJSON []byte) (*Document, *Atlas, error) {
	doc := &Document{}
	if err := json.Unmarshal(skelJSON, doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse skeleton json: %w", err)
	}

	if len(doc.Armature) == 0 {
		return nil, nil, ErrNoArmature
	}
	if len(doc.Armature[0].Skin) == 0 {
		return nil, nil, ErrNoSkin
	}

	normalize(doc)
	buildDocumentIndexes(doc)

	var atlas *Atlas
	if len(atlasJSON) > 0 {
		atlas = &Atlas{}
		if err := json.Unmarshal(atlasJSON, atlas); err != nil {
			return nil, nil, fmt.Errorf("failed to parse atlas json: %w", err)
		}
		buildAtlasIndex(atlas)
	}

	return doc, atlas, nil
}

// LoadArchive opens a zipped export bundle and loads the first *_ske.json
// and *_tex.json it contains. A bundle without an atlas JSON loads with a
// nil atlas.
func LoadArchive(path string) (*Document, *Atlas, error) {
	return LoadArchiveWithLogger(path, logger.NewNullLogger())
}

// LoadArchiveWithLogger is LoadArchive with bundle-layer logging routed to
// the given logger.
func LoadArchiveWithLogger(path string, log logger.Logger) (*Document, *Atlas, error) {
	bundle := archive.GetArchive(path, log)
	if err := bundle.Initialize(); err != nil {
		return nil, nil, fmt.Errorf("failed to open bundle %s: %w", path, err)
	}

	skelFile := bundle.GetFirstBySuffix(SkeletonSuffix)
	if skelFile == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrSkeletonNotFound, path)
	}

	var atlasJSON []byte
	if atlasFile := bundle.GetFirstBySuffix(AtlasSuffix); atlasFile != nil {
		atlasJSON = atlasFile.GetBytes()
	} else {
		log.LogWarning("LoadArchive: Bundle has no atlas json: " + path)
	}

	return Load(skelFile.GetBytes(), atlasJSON)
}

// normalize rewrites the missing-value placeholders that decoding left in
// absent keyframe fields with the identity value of each track kind. The rotate
// identity of 1 rather than 0 is kept for compatibility with existing
// exports.
func normalize(doc *Document) {
	for ai := range doc.Armature {
		arm := &doc.Armature[ai]
		for ni := range arm.Animation {
			anim := &arm.Animation[ni]
			for ti := range anim.Bone {
				tl := &anim.Bone[ti]
				fillMissing(tl.TranslateFrame, 0)
				fillMissing(tl.ScaleFrame, 1)
				for ki := range tl.RotateFrame {
					if tl.RotateFrame[ki].Rotate == missingValue {
						tl.RotateFrame[ki].Rotate = 1
					}
				}
			}
		}
	}
}

// fillMissing replaces placeholder x/y values in a track with the given
// identity value.
func fillMissing(frames []Keyframe, identity float64) {
	for i := range frames {
		if frames[i].X == missingValue {
			frames[i].X = identity
		}
		if frames[i].Y == missingValue {
			frames[i].Y = identity
		}
	}
}

// buildDocumentIndexes precomputes the name lookup tables of every
// armature. Lookups keep the miss-returns-minus-one contract of the
// linear-scan originals.
func buildDocumentIndexes(doc *Document) {
	for ai := range doc.Armature {
		arm := &doc.Armature[ai]

		arm.boneIndex = make(map[string]int, len(arm.Bone))
		for i := range arm.Bone {
			if _, ok := arm.boneIndex[arm.Bone[i].Name]; !ok {
				arm.boneIndex[arm.Bone[i].Name] = i
			}
		}

		// First visible slot per bone. Hidden slots never match, so a bone
		// whose only slots are hidden stays unmapped.
		arm.boneSlot = make(map[string]int, len(arm.Slot))
		for i := range arm.Slot {
			if arm.Slot[i].DisplayIndex == -1 {
				continue
			}
			if _, ok := arm.boneSlot[arm.Slot[i].Parent]; !ok {
				arm.boneSlot[arm.Slot[i].Parent] = i
			}
		}

		for si := range arm.Skin {
			skin := &arm.Skin[si]
			skin.slotIndex = make(map[string]int, len(skin.Slot))
			for i := range skin.Slot {
				if _, ok := skin.slotIndex[skin.Slot[i].Name]; !ok {
					skin.slotIndex[skin.Slot[i].Name] = i
				}
			}
		}
	}
}

// buildAtlasIndex precomputes the sub-texture name lookup table.
func buildAtlasIndex(atlas *Atlas) {
	atlas.subTexIndex = make(map[string]int, len(atlas.SubTexture))
	for i := range atlas.SubTexture {
		if _, ok := atlas.subTexIndex[atlas.SubTexture[i].Name]; !ok {
			atlas.subTexIndex[atlas.SubTexture[i].Name] = i
		}
	}
}
