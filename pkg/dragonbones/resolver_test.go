package dragonbones

import "testing"

func TestResolverLookups(t *testing.T) {
	doc, atlas := mustLoad(t, texturedPair, texturedAtlas)
	arm := &doc.Armature[0]

	if got := arm.boneIndexOf("arm"); got != 1 {
		t.Errorf("boneIndexOf(arm) = %d, want 1", got)
	}
	if got := arm.boneIndexOf("missing"); got != -1 {
		t.Errorf("boneIndexOf(missing) = %d, want -1", got)
	}

	if got := arm.slotAttachedTo("root"); got != 0 {
		t.Errorf("slotAttachedTo(root) = %d, want 0", got)
	}
	if got := arm.slotAttachedTo("nobody"); got != -1 {
		t.Errorf("slotAttachedTo(nobody) = %d, want -1", got)
	}

	skin := &arm.Skin[0]
	if got := skin.slotIndexOf("armSlot"); got != 1 {
		t.Errorf("slotIndexOf(armSlot) = %d, want 1", got)
	}
	if got := skin.slotIndexOf("missing"); got != -1 {
		t.Errorf("slotIndexOf(missing) = %d, want -1", got)
	}

	if got := atlas.subTexIndexOf("arm"); got != 1 {
		t.Errorf("subTexIndexOf(arm) = %d, want 1", got)
	}
	if got := atlas.subTexIndexOf("missing"); got != -1 {
		t.Errorf("subTexIndexOf(missing) = %d, want -1", got)
	}
}

func TestHiddenSlotNeverMatches(t *testing.T) {
	doc, _ := mustLoad(t, hiddenSlot, hiddenSlotAtlas)
	arm := &doc.Armature[0]

	// The only slot attached to the bone is hidden, so the lookup misses
	// even though its parent matches.
	if got := arm.slotAttachedTo("hand"); got != -1 {
		t.Errorf("slotAttachedTo(hand) = %d, want -1", got)
	}
}
