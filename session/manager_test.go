package session

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"hidden_piece/minigame"
	"hidden_piece/story"
	"hidden_piece/transition"
)

type manualScheduler struct {
	pending []func()
}

func (s *manualScheduler) AfterFunc(_ time.Duration, f func()) func() {
	s.pending = append(s.pending, f)
	return func() {}
}

func (s *manualScheduler) fireAll() {
	fs := s.pending
	s.pending = nil
	for _, f := range fs {
		f()
	}
}

func newTestManager(t *testing.T, opts Options) (*Manager, *story.MemoryPersister) {
	t.Helper()
	p := &story.MemoryPersister{}
	m := NewManager(context.Background(), p, opts)
	t.Cleanup(m.Close)
	return m, p
}

func currentStage(m *Manager) story.StageID {
	return m.Snapshot().State.CurrentStage
}

// startHighTrack plays mode select and the prologue and dismisses the stage 1 card.
func startHighTrack(t *testing.T, m *Manager) {
	t.Helper()
	if err := m.SelectMode(story.GradeHigh, story.Character{}); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if got := currentStage(m); got != story.StagePrologue {
		t.Fatalf("stage = %s; want prologue without interstitial", got)
	}
	if err := m.Setup(story.Character{Name: "Ana", Gender: story.Female}, story.Character{Gender: story.Male}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if snap := m.Snapshot(); snap.Pending != story.Stage1 || snap.State.CurrentStage != story.StagePrologue {
		t.Fatalf("pending=%q stage=%s; want stage-1 behind the interstitial", snap.Pending, snap.State.CurrentStage)
	}
	if !m.CommitTransition() {
		t.Fatal("commit rejected")
	}
}

func TestHighTrackStart(t *testing.T) {
	m, _ := newTestManager(t, Options{})
	startHighTrack(t, m)

	snap := m.Snapshot()
	if snap.State.CurrentStage != story.Stage1 || snap.Stage == nil || snap.Stage.Step != 0 {
		t.Fatalf("snapshot = %+v; want stage 1 mounted at step 0", snap)
	}
	if snap.Names.NPC != story.DefaultMaleNPCName || snap.Names.Player != "Ana" {
		t.Errorf("names = %+v", snap.Names)
	}
	if !snap.State.HasTool(story.ToolAAC) {
		t.Error("stage 1 entry grant missing")
	}
	if snap.Interstitials != 1 {
		t.Errorf("interstitials = %d; want 1", snap.Interstitials)
	}
}

func TestActionsGatedByScreen(t *testing.T) {
	m, _ := newTestManager(t, Options{})
	if err := m.Setup(story.Character{}, story.Character{}); !errors.Is(err, ErrWrongStage) {
		t.Errorf("setup on mode select: err = %v", err)
	}
	if err := m.SelectMode("middle_grade", story.Character{}); !errors.Is(err, ErrBadMode) {
		t.Errorf("bad mode: err = %v", err)
	}
	if m.Advance() || m.Choose(0) {
		t.Error("dialogue input accepted without a mounted stage")
	}
	if err := m.SaveJournal("x"); !errors.Is(err, ErrWrongStage) {
		t.Errorf("journal outside ending: err = %v", err)
	}
	if _, err := m.Download(&bytes.Buffer{}); !errors.Is(err, ErrNothingToSave) {
		t.Errorf("download outside ending: err = %v", err)
	}
}

func TestInputBlockedWhileInterstitialShows(t *testing.T) {
	m, _ := newTestManager(t, Options{})
	startHighTrack(t, m)
	m.Choose(2)
	for i := 0; i < 2; i++ {
		m.Advance()
	}
	// Drive stage 1 to its end.
	m.Choose(2)
	m.Advance()
	m.Advance()
	m.MinigameInput(minigame.Input{Action: minigame.ActionPlace, Target: "me", Value: 0})
	m.MinigameInput(minigame.Input{Action: minigame.ActionPlace, Target: "name", Value: 1})
	m.MinigameInput(minigame.Input{Action: minigame.ActionPlace, Target: "hello", Value: 2})
	m.Advance()
	if !m.Advance() {
		t.Fatal("terminal advance rejected")
	}
	snap := m.Snapshot()
	if snap.Pending != story.Stage2 || snap.State.CurrentStage != story.Stage1 {
		t.Fatalf("pending=%q stage=%s; want stage-2 pending", snap.Pending, snap.State.CurrentStage)
	}
	if m.Advance() || m.Choose(0) {
		t.Fatal("stage input accepted behind the interstitial")
	}
	m.CommitTransition()
	if snap := m.Snapshot(); snap.State.CurrentStage != story.Stage2 || snap.Stage.Stage != story.Stage2 {
		t.Fatalf("stage = %s; want stage-2 mounted", snap.State.CurrentStage)
	}
}

func TestToolClickReachesMinigame(t *testing.T) {
	m, _ := newTestManager(t, Options{})
	startHighTrack(t, m)
	for _, move := range []func() bool{
		func() bool { return m.Choose(2) }, m.Advance, m.Advance,
		func() bool { return m.Choose(2) }, m.Advance, m.Advance,
	} {
		if !move() {
			t.Fatal("move rejected")
		}
	}
	if m.ClickTool(story.ToolHeadset) {
		t.Fatal("unowned tool accepted")
	}
	if !m.ClickTool(story.ToolAAC) {
		t.Fatal("aac click rejected at the AAC puzzle")
	}
	snap := m.Snapshot()
	if snap.Stage.Step != 50 {
		t.Errorf("step = %d; want 50 after the tool solved the puzzle", snap.Stage.Step)
	}
	if snap.State.Logs.ToolAttempts != 1 || snap.State.Logs.ToolAccuracy != 1 {
		t.Errorf("logs = %+v; want one accurate attempt", snap.State.Logs)
	}
	if m.ClickTool(story.ToolAAC) {
		t.Error("used tool accepted again")
	}
}

func TestTimerModeCommitsUnderLock(t *testing.T) {
	sched := &manualScheduler{}
	m, _ := newTestManager(t, Options{TransitionMode: transition.ModeTimer, Scheduler: sched})
	m.SelectMode(story.GradeHigh, story.Character{})
	m.Setup(story.Character{}, story.Character{})
	if got := currentStage(m); got != story.StagePrologue {
		t.Fatalf("stage = %s before timer", got)
	}
	sched.fireAll()
	if got := currentStage(m); got != story.Stage1 {
		t.Fatalf("stage = %s; want stage-1 after timer", got)
	}
	if m.Snapshot().Stage == nil {
		t.Fatal("stage 1 not mounted by the timer commit")
	}
}

func TestEncyclopediaReturnsToStage(t *testing.T) {
	m, _ := newTestManager(t, Options{})
	startHighTrack(t, m)
	if err := m.OpenEncyclopedia(); err != nil {
		t.Fatal(err)
	}
	snap := m.Snapshot()
	if snap.State.CurrentStage != story.StageEncyclopedia || snap.Stage != nil {
		t.Fatalf("stage = %s; want encyclopedia with no stage mounted", snap.State.CurrentStage)
	}
	if err := m.CloseEncyclopedia(); err != nil {
		t.Fatal(err)
	}
	if snap := m.Snapshot(); snap.Pending != story.Stage1 {
		t.Fatalf("pending = %q; want return to stage-1", snap.Pending)
	}
	m.CommitTransition()
	if snap := m.Snapshot(); snap.Stage == nil || snap.Stage.Stage != story.Stage1 || snap.Stage.Step != 0 {
		t.Fatal("stage 1 not remounted at step 0")
	}
}

func TestEncyclopediaReplayEarnsNothing(t *testing.T) {
	m, _ := newTestManager(t, Options{})
	startHighTrack(t, m)
	toAACPuzzle := func() {
		t.Helper()
		for _, move := range []func() bool{
			func() bool { return m.Choose(2) }, m.Advance, m.Advance,
			func() bool { return m.Choose(2) }, m.Advance, m.Advance,
		} {
			if !move() {
				t.Fatal("move rejected")
			}
		}
	}
	solve := func() {
		for i, card := range []string{"me", "name", "hello"} {
			m.MinigameInput(minigame.Input{Action: minigame.ActionPlace, Target: card, Value: i})
		}
	}

	toAACPuzzle()
	solve()
	first := m.Snapshot().State

	m.OpenEncyclopedia()
	m.CloseEncyclopedia()
	m.CommitTransition()
	toAACPuzzle()
	before := m.Snapshot().State
	solve()
	after := m.Snapshot().State

	if after.Stats != before.Stats {
		t.Errorf("stats %+v -> %+v; want no reward on replay", before.Stats, after.Stats)
	}
	if after.Logs != first.Logs {
		t.Errorf("logs = %+v; want %+v", after.Logs, first.Logs)
	}
}

func TestEncyclopediaExitToEnding(t *testing.T) {
	m, _ := newTestManager(t, Options{})
	startHighTrack(t, m)
	m.mu.Lock()
	for _, id := range []string{story.ToolAAC, story.ToolHeadset, story.ToolTimer, story.ToolSquishy, story.ToolPECS} {
		m.store.AddInventoryItem(id)
		m.store.MarkToolUsed(id)
	}
	m.mu.Unlock()

	m.OpenEncyclopedia()
	m.CloseEncyclopedia()
	if snap := m.Snapshot(); snap.Pending != story.StageEnding {
		t.Fatalf("pending = %q; want ending", snap.Pending)
	}
}

func TestResetNeedsConfirmation(t *testing.T) {
	m, p := newTestManager(t, Options{})
	startHighTrack(t, m)
	if m.Reset(false) {
		t.Fatal("reset without confirmation")
	}
	if got := currentStage(m); got != story.Stage1 {
		t.Fatalf("stage = %s after declined reset", got)
	}
	if !m.Reset(true) {
		t.Fatal("confirmed reset rejected")
	}
	snap := m.Snapshot()
	if snap.State.CurrentStage != story.StageModeSelect || snap.Stage != nil || snap.Interstitials != 0 {
		t.Errorf("snapshot after reset = %+v", snap)
	}
	if data, _ := p.Load(context.Background()); data != nil {
		t.Error("snapshot not cleared")
	}
}

func TestRestoreMountsSavedStage(t *testing.T) {
	p := &story.MemoryPersister{}
	first := NewManager(context.Background(), p, Options{})
	startHighTrack(t, first)
	first.Close()

	second := NewManager(context.Background(), p, Options{})
	defer second.Close()
	snap := second.Snapshot()
	if snap.State.CurrentStage != story.Stage1 || snap.Stage == nil {
		t.Fatalf("restored snapshot = %+v; want stage 1 mounted", snap)
	}
}

// reachStage commits id directly, the way a restored save would land there.
func reachStage(t *testing.T, m *Manager, id story.StageID) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.SetStage(id)
	m.mount(id)
}

func TestEndingJournalChatAndReport(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	m, _ := newTestManager(t, Options{Now: func() time.Time { return now }})
	reachStage(t, m, story.StageEnding)

	if err := m.SaveJournal("I learned to wait."); err != nil {
		t.Fatal(err)
	}
	msg, err := m.Chat(context.Background(), "Why do loud sounds hurt?")
	if err != nil {
		t.Fatal(err)
	}
	if msg.Text == "" {
		t.Fatal("empty reply")
	}
	snap := m.Snapshot()
	if len(snap.Chat) != 3 || snap.Journal != "I learned to wait." || snap.Report == nil {
		t.Fatalf("chat=%d journal=%q report=%v", len(snap.Chat), snap.Journal, snap.Report)
	}
	if snap.Report.Grade != "C" || snap.Report.PrismScore != 20 {
		t.Errorf("report = %+v", snap.Report)
	}

	var buf bytes.Buffer
	name, err := m.Download(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if name != "prism_report.pdf" || !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("download = %q, %d bytes", name, buf.Len())
	}
}

func TestLowTrackCertificate(t *testing.T) {
	m, _ := newTestManager(t, Options{})
	if err := m.SelectMode(story.GradeLow, story.Character{Name: "Bo", Gender: story.Male}); err != nil {
		t.Fatal(err)
	}
	snap := m.Snapshot()
	if snap.State.CurrentStage != story.StageLowIntro || snap.State.NPC.Name != "Bo" || snap.State.Player.Name != story.DefaultPlayerName {
		t.Fatalf("state after low mode = %+v", snap.State)
	}
	if err := m.StartLowTrack(); err != nil {
		t.Fatal(err)
	}
	m.CommitTransition()
	if snap := m.Snapshot(); snap.Stage == nil || snap.Stage.Stage != story.StageLow1 {
		t.Fatal("low stage 1 not mounted")
	}

	reachStage(t, m, story.StageLowEnding)
	if _, err := m.Download(&bytes.Buffer{}); !errors.Is(err, ErrNothingToSave) {
		t.Fatalf("download before sticker: err = %v", err)
	}
	if err := m.ChooseSticker("angry"); !errors.Is(err, ErrUnknownSticker) {
		t.Fatalf("bad sticker: err = %v", err)
	}
	if err := m.ChooseSticker("happy"); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	name, err := m.Download(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if name != "sprout_agent_certificate.pdf" || buf.Len() == 0 {
		t.Errorf("download = %q, %d bytes", name, buf.Len())
	}
}
