package ui

import (
	"testing"

	"github.com/surmesure/configurator/internal/config"
	"github.com/surmesure/configurator/internal/wizard"
)

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	// Snapshot before the modification, then apply it.
	before := wizard.New()
	h.Push(MakeSnapshot(before, "Ajouter caisson"))

	after := before
	after.Config = config.DefaultCuisine()

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}
	restored, ok := h.Undo(MakeSnapshot(after, "current"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Label != "Ajouter caisson" {
		t.Errorf("unexpected label %q", restored.Label)
	}
	if restored.State.Config.Family() != config.FamilyMeuble {
		t.Error("undo should restore the earlier configuration")
	}
	if !h.CanRedo() {
		t.Error("undo should make redo available")
	}
}

func TestRedoRestoresUndoneState(t *testing.T) {
	h := NewHistory()

	before := wizard.New()
	h.Push(MakeSnapshot(before, "step"))

	after := before
	after.CurrentStep = 3

	_, ok := h.Undo(MakeSnapshot(after, "current"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	redone, ok := h.Redo(MakeSnapshot(before, "restored"))
	if !ok {
		t.Fatal("redo should succeed")
	}
	if redone.State.CurrentStep != 3 {
		t.Errorf("redo should return the undone state, got step %d", redone.State.CurrentStep)
	}
	if !h.CanUndo() {
		t.Error("redo should make undo available again")
	}
}

func TestPushClearsRedoStack(t *testing.T) {
	h := NewHistory()
	st := wizard.New()

	h.Push(MakeSnapshot(st, "a"))
	if _, ok := h.Undo(MakeSnapshot(st, "current")); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("redo should be available")
	}

	h.Push(MakeSnapshot(st, "b"))
	if h.CanRedo() {
		t.Error("a new push should clear the redo stack")
	}
}

func TestUndoOnEmptyHistory(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(MakeSnapshot(wizard.New(), "current")); ok {
		t.Error("undo on empty history should report false")
	}
	if _, ok := h.Redo(MakeSnapshot(wizard.New(), "current")); ok {
		t.Error("redo on empty history should report false")
	}
}

func TestHistoryDepthLimit(t *testing.T) {
	h := NewHistory()
	st := wizard.New()
	for i := 0; i < defaultMaxDepth+10; i++ {
		h.Push(MakeSnapshot(st, "edit"))
	}
	if len(h.undoStack) != defaultMaxDepth {
		t.Errorf("undo stack should cap at %d, got %d", defaultMaxDepth, len(h.undoStack))
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	st := wizard.New()
	h.Push(MakeSnapshot(st, "a"))
	h.Undo(MakeSnapshot(st, "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("clear should empty both stacks")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	st := wizard.New()
	snap := MakeSnapshot(st, "avant")

	m := st.Config.(*config.MeubleConfig)
	m.Cabinets[0].Width = 9999

	sm := snap.State.Config.(*config.MeubleConfig)
	if sm.Cabinets[0].Width == 9999 {
		t.Error("snapshot should not share storage with the live state")
	}
}
