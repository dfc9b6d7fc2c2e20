package story

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func newTestStore(t *testing.T) (*Store, *MemoryPersister) {
	t.Helper()
	p := &MemoryPersister{}
	return Open(context.Background(), p), p
}

func TestAdjustStatClamps(t *testing.T) {
	deltas := [][]int{
		{-30},
		{150},
		{-5, -5, -5, -5, -5},
		{50, 50, -200, 300},
		{0},
		{-1000, 7},
	}
	for _, key := range StatKeys {
		for _, seq := range deltas {
			s, _ := newTestStore(t)
			for _, d := range seq {
				s.AdjustStat(key, d)
				v, _ := s.State().Stats.Get(key)
				if v < StatMin || v > StatMax {
					t.Fatalf("%s after %v = %d; outside [%d,%d]", key, seq, v, StatMin, StatMax)
				}
			}
		}
	}
}

func TestTrustClampScenario(t *testing.T) {
	s, _ := newTestStore(t)
	want := Stats{Understanding: 20, Trust: 20, Communication: 20, Patience: 20}
	if got := s.State().Stats; got != want {
		t.Fatalf("initial stats = %+v; want %+v", got, want)
	}

	s.AdjustStat(Trust, -30)
	if got := s.State().Stats.Trust; got != 0 {
		t.Fatalf("trust after -30 = %d; want 0", got)
	}
	s.AdjustStat(Trust, 150)
	if got := s.State().Stats.Trust; got != 100 {
		t.Fatalf("trust after +150 = %d; want 100", got)
	}
}

func TestAdjustStatUnknownKeyIsNoop(t *testing.T) {
	s, p := newTestStore(t)
	before := s.State()
	s.AdjustStat("courage", 10)
	if s.State().Stats != before.Stats {
		t.Errorf("stats changed for unknown key: %+v", s.State().Stats)
	}
	if p.Saves() != 0 {
		t.Errorf("saves = %d; want 0", p.Saves())
	}
}

func TestAddInventoryItemIsIdempotent(t *testing.T) {
	s, p := newTestStore(t)

	s.AddInventoryItem(ToolAAC)
	st := s.State()
	if !slices.Equal(st.Inventory, []string{ToolAAC}) {
		t.Fatalf("inventory = %v; want [aac]", st.Inventory)
	}
	if !slices.Equal(st.EncyclopediaUnlocked, []string{ToolAAC}) {
		t.Fatalf("unlocked = %v; want [aac]", st.EncyclopediaUnlocked)
	}
	saves := p.Saves()

	s.AddInventoryItem(ToolAAC)
	st = s.State()
	if !slices.Equal(st.Inventory, []string{ToolAAC}) {
		t.Errorf("inventory after repeat = %v; want [aac]", st.Inventory)
	}
	if !slices.Equal(st.EncyclopediaUnlocked, []string{ToolAAC}) {
		t.Errorf("unlocked after repeat = %v; want [aac]", st.EncyclopediaUnlocked)
	}
	if p.Saves() != saves {
		t.Errorf("repeat add persisted again: %d saves; want %d", p.Saves(), saves)
	}
}

func TestAddInventoryItemUnknownTool(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddInventoryItem("lightsaber")
	if len(s.State().Inventory) != 0 {
		t.Errorf("inventory = %v; want empty", s.State().Inventory)
	}
}

func TestMarkToolUsedIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	s.MarkToolUsed(ToolHeadset)
	first := s.State()
	s.MarkToolUsed(ToolHeadset)
	s.MarkToolUsed(ToolHeadset)
	if !slices.Equal(s.State().UsedTools, first.UsedTools) {
		t.Errorf("used tools = %v; want %v", s.State().UsedTools, first.UsedTools)
	}
	if !slices.Equal(first.UsedTools, []string{ToolHeadset}) {
		t.Errorf("used tools = %v; want [headset]", first.UsedTools)
	}
}

func TestIncrementLog(t *testing.T) {
	s, _ := newTestStore(t)
	s.IncrementLog(LogToolAttempts)
	s.IncrementLog(LogToolAttempts)
	s.IncrementLog(LogToolAccuracy)
	s.IncrementLog(LogWaiting)
	s.IncrementLog("bogus")

	want := Logs{WaitingCount: 1, ToolAccuracy: 1, ToolAttempts: 2}
	if got := s.State().Logs; got != want {
		t.Errorf("logs = %+v; want %+v", got, want)
	}
}

func TestSetStageIgnoresUnknown(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetStage(Stage3)
	s.SetStage("stage-99")
	if got := s.State().CurrentStage; got != Stage3 {
		t.Errorf("stage = %q; want %q", got, Stage3)
	}
}

func TestSetGradeModeOnce(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetGradeMode(GradeLow)
	s.SetGradeMode(GradeHigh)
	if got := s.State().GradeMode; got != GradeLow {
		t.Errorf("grade = %q; want %q", got, GradeLow)
	}
}

func TestSetNPCDefaultsNameByGender(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetNPC(Character{Name: "  ", Gender: Male})
	if got := s.State().NPC; got.Name != DefaultMaleNPCName || got.Gender != Male {
		t.Errorf("npc = %+v; want default male partner", got)
	}
	s.SetPlayer(Character{Name: " Jin ", Gender: Female})
	if got := s.State().Player; got.Name != "Jin" || got.Gender != Female {
		t.Errorf("player = %+v", got)
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	s, p := newTestStore(t)
	s.AddInventoryItem(ToolTimer)
	s.AdjustStat(Patience, 30)

	if s.Reset(nil) {
		t.Fatal("reset without confirmer succeeded")
	}
	declined := ConfirmFunc(func(string) bool { return false })
	if s.Reset(declined) {
		t.Fatal("declined reset succeeded")
	}
	if !s.State().HasTool(ToolTimer) || s.State().Stats.Patience != 50 {
		t.Fatalf("state changed by declined reset: %+v", s.State())
	}

	var asked string
	accepted := ConfirmFunc(func(prompt string) bool {
		asked = prompt
		return true
	})
	if !s.Reset(accepted) {
		t.Fatal("confirmed reset did not run")
	}
	if asked != ResetPrompt {
		t.Errorf("prompt = %q; want %q", asked, ResetPrompt)
	}
	if len(s.State().Inventory) != 0 || s.State().Stats.Patience != DefaultStatValue {
		t.Errorf("state after reset = %+v", s.State())
	}
	data, _ := p.Load(context.Background())
	if data != nil {
		t.Errorf("snapshot still stored after reset: %s", data)
	}
}

func TestStateReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddInventoryItem(ToolAAC)
	st := s.State()
	st.Inventory[0] = "tampered"
	if s.State().Inventory[0] != ToolAAC {
		t.Error("mutating a snapshot leaked into the store")
	}
}

type failingPersister struct{}

func (failingPersister) Load(context.Context) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingPersister) Save(context.Context, []byte) error   { return errors.New("disk gone") }
func (failingPersister) Clear(context.Context) error          { return errors.New("disk gone") }

func TestStoreSurvivesPersisterFailures(t *testing.T) {
	s := Open(context.Background(), failingPersister{})
	s.AdjustStat(Trust, 5)
	s.AddInventoryItem(ToolPECS)
	if s.State().Stats.Trust != 25 || !s.State().HasTool(ToolPECS) {
		t.Errorf("mutations lost after save failure: %+v", s.State())
	}
}
