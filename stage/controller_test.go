package stage

import (
	"context"
	"slices"
	"testing"

	"hidden_piece/minigame"
	"hidden_piece/story"
)

type recorder struct {
	requests []story.StageID
}

func (r *recorder) RequestStage(id story.StageID) bool {
	r.requests = append(r.requests, id)
	return true
}

func newTestController(t *testing.T, script *Script) (*Controller, *story.Store, *recorder, *minigame.HandlerSlot) {
	t.Helper()
	store := story.Open(context.Background(), &story.MemoryPersister{})
	rec := &recorder{}
	slot := &minigame.HandlerSlot{}
	return NewController(script, store, rec, slot), store, rec, slot
}

// toSequencePuzzle walks stage 1 along the calm path up to the AAC puzzle.
func toSequencePuzzle(t *testing.T, c *Controller) {
	t.Helper()
	moves := []func() bool{
		func() bool { return c.Choose(2) },
		c.Advance,
		c.Advance,
		func() bool { return c.Choose(2) },
		c.Advance,
		c.Advance,
	}
	for i, m := range moves {
		if !m() {
			t.Fatalf("move %d rejected at step %d", i, c.Step())
		}
	}
	if c.Step() != 40 || c.Game() == nil {
		t.Fatalf("step = %d game = %v; want AAC puzzle at step 40", c.Step(), c.Game())
	}
}

func TestMountAppliesEntryEffects(t *testing.T) {
	c, store, _, _ := newTestController(t, stage1)
	st := store.State()
	if !st.HasTool(story.ToolAAC) {
		t.Errorf("inventory = %v; want aac granted on mount", st.Inventory)
	}
	if c.Step() != 0 || c.Scene().PlayerPose != "thinking" {
		t.Errorf("step=%d pose=%q; want step 0 effects applied", c.Step(), c.Scene().PlayerPose)
	}
	v := c.View(Names{Player: "Ana", NPC: "Min"})
	if len(v.Choices) != 3 || v.CanAdvance {
		t.Errorf("view = %+v; want three choices and no advance", v)
	}
	if v.Speaker != "Ana" {
		t.Errorf("speaker = %q; want player name", v.Speaker)
	}
}

func TestChooseCountsOncePerStep(t *testing.T) {
	c, store, _, _ := newTestController(t, stage1)
	if !c.Choose(0) {
		t.Fatal("first choice rejected")
	}
	if got := store.State().Stats.Trust; got != 15 {
		t.Errorf("trust = %d; want 15", got)
	}
	if c.Choose(0) {
		t.Error("choice accepted on an advance-only step")
	}
	if c.Choose(7) {
		t.Error("out of range choice accepted")
	}
	if got := store.State().Stats.Trust; got != 15 {
		t.Errorf("trust after rejected picks = %d; want 15", got)
	}
}

func TestAdvanceRejectedOnChoiceAndMinigameSteps(t *testing.T) {
	c, _, _, _ := newTestController(t, stage1)
	if c.Advance() {
		t.Fatal("advance accepted on a choice step")
	}
	toSequencePuzzle(t, c)
	if c.Advance() {
		t.Fatal("advance accepted while a minigame is on screen")
	}
}

func TestMinigameDoubleCompletion(t *testing.T) {
	c, store, _, _ := newTestController(t, stage1)
	toSequencePuzzle(t, c)
	before := store.State()

	cb := c.OnComplete()
	cb()
	cb()

	after := store.State()
	if c.Step() != 50 {
		t.Errorf("step = %d; want 50", c.Step())
	}
	if got := after.Stats.Communication - before.Stats.Communication; got != 20 {
		t.Errorf("communication delta = %d; want 20", got)
	}
	if got := after.Stats.Trust - before.Stats.Trust; got != 10 {
		t.Errorf("trust delta = %d; want 10", got)
	}
	if after.Logs.ToolAccuracy != 1 {
		t.Errorf("tool accuracy = %d; want 1", after.Logs.ToolAccuracy)
	}
	if c.CompleteMinigame() {
		t.Error("completion accepted on a dialogue step")
	}
}

func TestMinigameSolvedByInput(t *testing.T) {
	c, _, _, _ := newTestController(t, stage1)
	toSequencePuzzle(t, c)
	for i, card := range []string{"me", "name", "hello"} {
		if !c.MinigameInput(minigame.Input{Action: minigame.ActionPlace, Target: card, Value: i}) {
			t.Fatalf("card %q rejected", card)
		}
	}
	if c.Step() != 50 || c.Game() != nil {
		t.Errorf("step=%d game=%v; want puzzle closed and step 50", c.Step(), c.Game())
	}
}

func TestReplayedMinigamePaysOnce(t *testing.T) {
	c, store, rec, slot := newTestController(t, stage1)
	toSequencePuzzle(t, c)
	if !c.CompleteMinigame() {
		t.Fatal("first completion rejected")
	}
	c.Close()

	// Remount on the same store, as returning from the encyclopedia does.
	again := NewController(stage1, store, rec, slot)
	toSequencePuzzle(t, again)
	before := store.State()
	for i, card := range []string{"me", "name", "hello"} {
		again.MinigameInput(minigame.Input{Action: minigame.ActionPlace, Target: card, Value: i})
	}
	after := store.State()
	if again.Step() != 50 {
		t.Fatalf("step = %d; want the replay to move on to 50", again.Step())
	}
	if after.Stats != before.Stats {
		t.Errorf("stats %+v -> %+v; want no reward on replay", before.Stats, after.Stats)
	}
	if after.Logs.ToolAccuracy != 1 {
		t.Errorf("tool accuracy = %d; want 1", after.Logs.ToolAccuracy)
	}
}

func TestToolSlotFollowsMinigame(t *testing.T) {
	c, store, _, slot := newTestController(t, stage1)
	if slot.Bound() {
		t.Fatal("slot bound before any minigame")
	}
	if slot.Invoke(story.ToolAAC) {
		t.Fatal("stray tool click accepted")
	}
	toSequencePuzzle(t, c)
	if !slot.Bound() {
		t.Fatal("slot not bound during the puzzle")
	}
	if slot.Invoke(story.ToolHeadset) {
		t.Fatal("wrong tool solved the puzzle")
	}
	if !slot.Invoke(story.ToolAAC) {
		t.Fatal("matching tool rejected")
	}
	if c.Step() != 50 || slot.Bound() {
		t.Errorf("step=%d bound=%v; want step 50 and slot released", c.Step(), slot.Bound())
	}
	if !store.State().ToolUsed(story.ToolAAC) {
		t.Error("aac not marked used")
	}
}

func TestStrayCompletionAfterTerminal(t *testing.T) {
	c, store, rec, _ := newTestController(t, stage1)
	toSequencePuzzle(t, c)
	cb := c.OnComplete()
	cb()
	for !c.Done() {
		if !c.Advance() {
			t.Fatalf("advance rejected at step %d", c.Step())
		}
	}
	if !slices.Equal(rec.requests, []story.StageID{story.Stage2}) {
		t.Fatalf("requests = %v; want [stage-2]", rec.requests)
	}
	snapshot := store.State()

	cb()
	c.CompleteMinigame()
	c.Advance()
	c.Choose(0)

	if got := store.State(); got.Stats != snapshot.Stats || got.Logs != snapshot.Logs {
		t.Errorf("state changed after terminal: %+v -> %+v", snapshot, got)
	}
	if len(rec.requests) != 1 {
		t.Errorf("requests = %v; want exactly one", rec.requests)
	}
}

func TestCloseInvalidatesStage(t *testing.T) {
	c, store, rec, slot := newTestController(t, stage1)
	toSequencePuzzle(t, c)
	cb := c.OnComplete()
	c.Close()
	if slot.Bound() {
		t.Error("slot still bound after close")
	}
	before := store.State().Stats
	cb()
	if c.Choose(0) || c.Advance() || c.UseTool(story.ToolAAC) {
		t.Error("input accepted after close")
	}
	if store.State().Stats != before || len(rec.requests) != 0 {
		t.Error("closed stage still changed state")
	}
}

func TestLateReleaseKeepsNewBinding(t *testing.T) {
	tapFirst := &Script{
		Stage: story.StageLow1,
		Steps: map[StepID]Step{
			0: {Text: "tap", Minigame: &MinigameStep{Spec: minigame.Spec{Kind: minigame.KindTap, Tool: story.ToolHeadset}, Next: 1}},
			1: {Text: "done", Transition: story.StageLow2},
		},
	}
	old, _, _, slot := newTestController(t, stage1)
	toSequencePuzzle(t, old)
	store := story.Open(context.Background(), &story.MemoryPersister{})
	next := NewController(tapFirst, store, &recorder{}, slot)
	old.Close()
	if !slot.Bound() {
		t.Fatal("closing the old stage released the new stage's handler")
	}
	if !slot.Invoke(story.ToolHeadset) || next.Step() != 1 {
		t.Errorf("step = %d; want new stage to receive the tool", next.Step())
	}
}

func TestNamesRender(t *testing.T) {
	n := Names{Player: "Ana", NPC: "Min"}
	if got := n.Render("{player} meets {npc}"); got != "Ana meets Min" {
		t.Errorf("Render = %q", got)
	}
}
