package transition

import (
	"context"
	"testing"
	"time"

	"hidden_piece/story"
)

type fakeTimer struct {
	d        time.Duration
	f        func()
	canceled bool
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) func() {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return func() { t.canceled = true }
}

// fire runs a timer even if it was canceled, the way a real timer can still
// race its Stop.
func (s *fakeScheduler) fire(i int) { s.timers[i].f() }

func newStore(t *testing.T) *story.Store {
	t.Helper()
	return story.Open(context.Background(), &story.MemoryPersister{})
}

func TestNonExemptRequestWaitsForCommit(t *testing.T) {
	store := newStore(t)
	var committed []story.StageID
	c := New(store, Options{OnCommit: func(id story.StageID) { committed = append(committed, id) }})

	if !c.RequestStage(story.Stage1) {
		t.Fatal("request rejected")
	}
	if id, ok := c.Pending(); !ok || id != story.Stage1 {
		t.Fatalf("Pending = %q, %v; want stage-1", id, ok)
	}
	if got := store.State().CurrentStage; got != story.StageModeSelect {
		t.Fatalf("stage = %s before commit; want unchanged", got)
	}
	if !c.Commit() {
		t.Fatal("commit rejected")
	}
	if got := store.State().CurrentStage; got != story.Stage1 {
		t.Errorf("stage = %s; want stage-1", got)
	}
	if _, ok := c.Pending(); ok {
		t.Error("pending not cleared after commit")
	}
	if len(committed) != 1 || committed[0] != story.Stage1 {
		t.Errorf("OnCommit calls = %v", committed)
	}
	if c.Commit() {
		t.Error("second commit accepted")
	}
}

func TestExemptRequestCommitsImmediately(t *testing.T) {
	store := newStore(t)
	c := New(store, Options{})
	if !c.RequestStage(story.StageEncyclopedia) {
		t.Fatal("request rejected")
	}
	if got := store.State().CurrentStage; got != story.StageEncyclopedia {
		t.Errorf("stage = %s; want encyclopedia", got)
	}
	if _, ok := c.Pending(); ok || c.Shown() != 0 {
		t.Errorf("pending=%v shown=%d; want no interstitial", ok, c.Shown())
	}
}

func TestOneInterstitialPerRequest(t *testing.T) {
	store := newStore(t)
	c := New(store, Options{})
	route := []story.StageID{
		story.StagePrologue, story.Stage1, story.Stage2, story.StageEncyclopedia,
		story.Stage3, story.Stage4, story.Stage5, story.Stage6, story.StageEnding,
	}
	want := 0
	for _, id := range route {
		c.RequestStage(id)
		if !Exempt(id) {
			want++
			c.Commit()
		}
		if got := store.State().CurrentStage; got != id {
			t.Fatalf("stage = %s after committing %s", got, id)
		}
	}
	if c.Shown() != want {
		t.Errorf("shown = %d; want %d", c.Shown(), want)
	}
}

func TestSecondRequestWhilePendingRejected(t *testing.T) {
	store := newStore(t)
	c := New(store, Options{})
	c.RequestStage(story.Stage2)
	if c.RequestStage(story.Stage3) {
		t.Fatal("second request accepted")
	}
	if c.RequestStage(story.StageEncyclopedia) {
		t.Fatal("exempt request accepted while pending")
	}
	c.Commit()
	if got := store.State().CurrentStage; got != story.Stage2 {
		t.Errorf("stage = %s; want stage-2", got)
	}
}

func TestUnknownStageRejected(t *testing.T) {
	c := New(newStore(t), Options{})
	if c.RequestStage("stage-99") {
		t.Fatal("unknown stage accepted")
	}
	if c.Shown() != 0 {
		t.Error("interstitial shown for an unknown stage")
	}
}

func TestTimerModeCommits(t *testing.T) {
	store := newStore(t)
	sched := &fakeScheduler{}
	c := New(store, Options{Mode: ModeTimer, Delay: time.Second, Scheduler: sched})
	c.RequestStage(story.Stage1)
	if len(sched.timers) != 1 || sched.timers[0].d != time.Second {
		t.Fatalf("timers = %+v; want one 1s timer", sched.timers)
	}
	sched.fire(0)
	if got := store.State().CurrentStage; got != story.Stage1 {
		t.Fatalf("stage = %s; want stage-1 after timer", got)
	}
	sched.fire(0)
	if c.Shown() != 1 {
		t.Errorf("shown = %d; want 1", c.Shown())
	}
}

func TestDelayDefaults(t *testing.T) {
	if got := New(newStore(t), Options{}).Delay(); got != DefaultDelay {
		t.Errorf("delay = %s; want %s", got, DefaultDelay)
	}
	if got := New(newStore(t), Options{Delay: 4 * time.Second}).Delay(); got != 4*time.Second {
		t.Errorf("delay = %s; want 4s", got)
	}
}

func TestTimerAfterTapIsNoop(t *testing.T) {
	store := newStore(t)
	sched := &fakeScheduler{}
	commits := 0
	c := New(store, Options{Mode: ModeTimer, Scheduler: sched, OnCommit: func(story.StageID) { commits++ }})
	c.RequestStage(story.Stage1)
	c.Commit()
	if !sched.timers[0].canceled {
		t.Error("timer not canceled by tap")
	}
	c.RequestStage(story.Stage2)
	sched.fire(0)
	if _, ok := c.Pending(); !ok {
		t.Fatal("stale timer committed the next request")
	}
	if commits != 1 {
		t.Errorf("commits = %d; want 1", commits)
	}
}

func TestCloseCancelsTimer(t *testing.T) {
	store := newStore(t)
	sched := &fakeScheduler{}
	c := New(store, Options{Mode: ModeTimer, Scheduler: sched})
	c.RequestStage(story.Stage1)
	c.Close()
	if !sched.timers[0].canceled {
		t.Error("timer not canceled on close")
	}
	sched.fire(0)
	if got := store.State().CurrentStage; got != story.StageModeSelect {
		t.Errorf("stage = %s; want unchanged after close", got)
	}
	if c.RequestStage(story.Stage2) || c.Commit() {
		t.Error("closed coordinator accepted input")
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"tap", "timer"} {
		if _, err := ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q): %v", s, err)
		}
	}
	if _, err := ParseMode("swipe"); err == nil {
		t.Error("ParseMode(swipe) succeeded")
	}
}
