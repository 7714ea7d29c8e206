package scene

import (
	"testing"

	"github.com/yezhang/drawkit"
)

func TestArenaInsertGet(t *testing.T) {
	var a arena
	b := newRuntimeBlock(NewBaseFigure(drawkit.NewRect(0, 0, 10, 10)))
	id := a.insert(b)
	if id.IsNil() {
		t.Fatal("insert returned the nil handle")
	}
	if got := a.get(id); got != b {
		t.Errorf("get() = %v, want the inserted block", got)
	}
	if a.len() != 1 {
		t.Errorf("len() = %d, want 1", a.len())
	}
}

func TestArenaNilHandle(t *testing.T) {
	var a arena
	var zero BlockID
	if !zero.IsNil() {
		t.Error("zero BlockID should be nil")
	}
	if got := a.get(zero); got != nil {
		t.Errorf("get(zero) = %v, want nil", got)
	}
	if a.remove(zero) {
		t.Error("remove(zero) should report false")
	}
}

func TestArenaStaleHandle(t *testing.T) {
	var a arena
	id := a.insert(newRuntimeBlock(NewBaseFigure(drawkit.NewRect(0, 0, 1, 1))))
	if !a.remove(id) {
		t.Fatal("remove of a live handle should report true")
	}
	if got := a.get(id); got != nil {
		t.Errorf("get after remove = %v, want nil", got)
	}
	if a.remove(id) {
		t.Error("double remove should report false")
	}
	if a.len() != 0 {
		t.Errorf("len() = %d, want 0", a.len())
	}
}

func TestArenaSlotReuseInvalidatesOldHandle(t *testing.T) {
	var a arena
	old := a.insert(newRuntimeBlock(NewBaseFigure(drawkit.NewRect(0, 0, 1, 1))))
	a.remove(old)

	fresh := newRuntimeBlock(NewBaseFigure(drawkit.NewRect(5, 5, 1, 1)))
	reused := a.insert(fresh)

	if reused.index != old.index {
		t.Fatalf("expected slot reuse, got index %d vs %d", reused.index, old.index)
	}
	if reused.generation == old.generation {
		t.Error("reused slot must carry a new generation")
	}
	if got := a.get(old); got != nil {
		t.Errorf("stale handle resolved to %v after reuse, want nil", got)
	}
	if got := a.get(reused); got != fresh {
		t.Errorf("fresh handle resolved to %v, want the new block", got)
	}
}
