package story

import (
	"context"
	"reflect"
	"slices"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	p := &MemoryPersister{}
	s := Open(context.Background(), p)
	s.SetGradeMode(GradeHigh)
	s.SetStage(Stage4)
	s.SetPlayer(Character{Name: "Mina", Gender: Female})
	s.AdjustStat(Understanding, 35)
	s.AddInventoryItem(ToolAAC)
	s.AddInventoryItem(ToolHeadset)
	s.MarkToolUsed(ToolAAC)
	s.IncrementLog(LogWaiting)
	s.SetStressGauge(60)

	reopened := Open(context.Background(), p)
	if !reflect.DeepEqual(reopened.State(), s.State()) {
		t.Fatalf("cold start state = %+v; want %+v", reopened.State(), s.State())
	}
}

func TestDecodeFillsMissingFields(t *testing.T) {
	old := []byte(`{"currentStage":"stage-2","stats":{"trust":55},"inventory":["aac"]}`)
	s, err := Decode(old)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.CurrentStage != Stage2 {
		t.Errorf("stage = %q; want stage-2", s.CurrentStage)
	}
	if s.Stats.Trust != 55 || s.Stats.Patience != DefaultStatValue {
		t.Errorf("stats = %+v; want trust 55 and default patience", s.Stats)
	}
	if s.Hearts != 0 || s.GradeMode != GradeNone {
		t.Errorf("new fields not defaulted: hearts=%d grade=%q", s.Hearts, s.GradeMode)
	}
	if s.UsedTools == nil || s.EncyclopediaUnlocked == nil {
		t.Error("missing sets decoded as nil")
	}
	if s.NPC.Name != DefaultFemaleNPCName {
		t.Errorf("npc = %+v; want default partner", s.NPC)
	}
}

func TestDecodeRepairsInvariants(t *testing.T) {
	raw := []byte(`{"currentStage":"stage-9","stats":{"understanding":250,"trust":-4},"inventory":["aac","aac","timer"],"gradeMode":"mid"}`)
	s, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.CurrentStage != DefaultStage {
		t.Errorf("stage = %q; want %q", s.CurrentStage, DefaultStage)
	}
	if s.Stats.Understanding != StatMax || s.Stats.Trust != StatMin {
		t.Errorf("stats = %+v; want clamped", s.Stats)
	}
	if !slices.Equal(s.Inventory, []string{ToolAAC, ToolTimer}) {
		t.Errorf("inventory = %v; want deduplicated", s.Inventory)
	}
	if s.GradeMode != GradeNone {
		t.Errorf("grade = %q; want none", s.GradeMode)
	}
}

func TestOpenCorruptSnapshotStartsNewGame(t *testing.T) {
	p := &MemoryPersister{}
	if err := p.Save(context.Background(), []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	s := Open(context.Background(), p)
	if !reflect.DeepEqual(s.State(), DefaultState()) {
		t.Errorf("state = %+v; want defaults", s.State())
	}
}

func TestOpenWithoutSnapshot(t *testing.T) {
	s := Open(context.Background(), &MemoryPersister{})
	if !reflect.DeepEqual(s.State(), DefaultState()) {
		t.Errorf("state = %+v; want defaults", s.State())
	}
}
