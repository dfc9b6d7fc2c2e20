// Package transition owns every stage change. Non-exempt destinations go through
// an interstitial card and are only written to the game state when it is dismissed.
package transition

import (
	"fmt"
	"log"
	"slices"
	"time"

	"hidden_piece/story"
)

// Mode selects how the interstitial is dismissed.
type Mode string

const (
	ModeTap   Mode = "tap"
	ModeTimer Mode = "timer"
)

// ParseMode accepts "tap" or "timer".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTap, ModeTimer:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown transition mode %q", s)
}

// DefaultDelay is how long the timer mode keeps the interstitial on screen.
const DefaultDelay = 2500 * time.Millisecond

var exempt = []story.StageID{
	story.StageModeSelect,
	story.StagePrologue,
	story.StageEncyclopedia,
	story.StageLowIntro,
}

// Exempt reports whether id is committed without an interstitial.
func Exempt(id story.StageID) bool {
	return slices.Contains(exempt, id)
}

// Scheduler runs f once after d. The returned cancel prevents a pending run.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, f func()) func()

func (s SchedulerFunc) AfterFunc(d time.Duration, f func()) func() { return s(d, f) }

// Clock schedules on real timers.
var Clock Scheduler = SchedulerFunc(func(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
})

// Committer is the stage setter of the game state store.
type Committer interface {
	SetStage(id story.StageID)
}

// Options configures a Coordinator.
type Options struct {
	Mode      Mode
	Delay     time.Duration
	Scheduler Scheduler
	// OnCommit runs after the new stage is written.
	OnCommit func(id story.StageID)
}

// Coordinator holds at most one pending stage change. It is not safe for
// concurrent use; a timer callback must reach it through the caller's lock,
// which is what Scheduler implementations are for.
type Coordinator struct {
	store    Committer
	mode     Mode
	delay    time.Duration
	sched    Scheduler
	onCommit func(story.StageID)

	pending story.StageID
	cancel  func()
	gen     uint64
	shown   int
	closed  bool
}

// New returns an idle coordinator writing into store.
func New(store Committer, opts Options) *Coordinator {
	c := &Coordinator{
		store:    store,
		mode:     opts.Mode,
		delay:    opts.Delay,
		sched:    opts.Scheduler,
		onCommit: opts.OnCommit,
	}
	if c.mode == "" {
		c.mode = ModeTap
	}
	if c.delay <= 0 {
		c.delay = DefaultDelay
	}
	if c.sched == nil {
		c.sched = Clock
	}
	return c
}

// RequestStage asks for a stage change. Exempt destinations commit at once;
// others wait behind the interstitial. A request made while another is pending is
// rejected.
func (c *Coordinator) RequestStage(id story.StageID) bool {
	if c.closed {
		return false
	}
	if !id.Valid() {
		log.Printf("transition: ignoring request for unknown stage %q", id)
		return false
	}
	if c.pending != "" {
		log.Printf("transition: request for %s rejected, %s is still pending", id, c.pending)
		return false
	}
	if Exempt(id) {
		c.commit(id)
		return true
	}
	c.pending = id
	c.shown++
	c.gen++
	if c.mode == ModeTimer {
		gen := c.gen
		c.cancel = c.sched.AfterFunc(c.delay, func() { c.expire(gen) })
	}
	return true
}

// Commit dismisses the interstitial and writes the pending stage.
func (c *Coordinator) Commit() bool {
	if c.closed || c.pending == "" {
		return false
	}
	c.commit(c.pending)
	return true
}

func (c *Coordinator) expire(gen uint64) {
	if c.closed || gen != c.gen || c.pending == "" {
		return
	}
	c.commit(c.pending)
}

func (c *Coordinator) commit(id story.StageID) {
	c.stopTimer()
	c.pending = ""
	c.store.SetStage(id)
	if c.onCommit != nil {
		c.onCommit(id)
	}
}

func (c *Coordinator) stopTimer() {
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Pending returns the destination behind the interstitial, if any.
func (c *Coordinator) Pending() (story.StageID, bool) {
	return c.pending, c.pending != ""
}

// Shown counts the interstitials displayed so far.
func (c *Coordinator) Shown() int { return c.shown }

// Mode returns the dismissal mode.
func (c *Coordinator) Mode() Mode { return c.mode }

// Delay is how long the timer mode waits before committing.
func (c *Coordinator) Delay() time.Duration { return c.delay }

// Close cancels any pending timer and drops the pending request.
func (c *Coordinator) Close() {
	c.closed = true
	c.pending = ""
	c.stopTimer()
}
