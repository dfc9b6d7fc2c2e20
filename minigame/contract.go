// Package minigame defines how a minigame reports success back to the stage that
// spawned it, and how side-panel tool clicks reach the minigame on screen.
package minigame

// Kind names a minigame implementation.
type Kind string

const (
	KindSequence Kind = "sequence"
	KindVolume   Kind = "volume"
	KindDial     Kind = "dial"
	KindBreath   Kind = "breath"
	KindMosaic   Kind = "mosaic"
	KindScratch  Kind = "scratch"
	KindWire     Kind = "wire"
	KindTap      Kind = "tap"
)

// Input is one player gesture routed into a minigame.
type Input struct {
	Action string
	Target string
	To     string
	Value  int
	X, Y   int
}

// Game is the capability set every minigame exposes.
type Game interface {
	Kind() Kind
	// Solved reports whether the win condition was reached.
	Solved() bool
	// Handle applies a gesture and reports whether it changed anything.
	Handle(in Input) bool
	// ReceiveTool is the external activation channel. The game decides whether id
	// is the tool it is waiting for; anything else is ignored.
	ReceiveTool(id string) bool
}

// Completion guards the onComplete callback so it runs at most once.
type Completion struct {
	fired bool
	fn    func()
}

// NewCompletion wraps fn. A nil fn is allowed.
func NewCompletion(fn func()) *Completion {
	return &Completion{fn: fn}
}

// Fire runs the callback on the first call and reports whether it ran.
func (c *Completion) Fire() bool {
	if c == nil || c.fired {
		return false
	}
	c.fired = true
	if c.fn != nil {
		c.fn()
	}
	return true
}

// Fired reports whether the callback already ran.
func (c *Completion) Fired() bool {
	return c != nil && c.fired
}

// HandlerSlot holds at most one tool handler. Stages bind a handler while a
// minigame step is active and release it on teardown.
type HandlerSlot struct {
	handler func(id string) bool
	gen     uint64
}

// Bind installs h, replacing any earlier handler. The returned release only
// clears the slot if h is still the bound handler.
func (s *HandlerSlot) Bind(h func(id string) bool) (release func()) {
	s.gen++
	s.handler = h
	gen := s.gen
	return func() {
		if s.gen == gen {
			s.handler = nil
		}
	}
}

// Invoke passes id to the bound handler. It is a no-op when nothing is bound.
func (s *HandlerSlot) Invoke(id string) bool {
	if s.handler == nil {
		return false
	}
	return s.handler(id)
}

// Bound reports whether a handler is installed.
func (s *HandlerSlot) Bound() bool {
	return s.handler != nil
}

// Clear drops any bound handler.
func (s *HandlerSlot) Clear() {
	s.gen++
	s.handler = nil
}

// base carries the state shared by every puzzle: the one-shot completion and the
// tool that solves the puzzle when clicked in the side panel.
type base struct {
	kind   Kind
	tool   string
	solved bool
	done   *Completion
}

func newBase(kind Kind, tool string, onComplete func()) base {
	return base{kind: kind, tool: tool, done: NewCompletion(onComplete)}
}

func (b *base) Kind() Kind   { return b.kind }
func (b *base) Solved() bool { return b.solved }

func (b *base) ReceiveTool(id string) bool {
	if b.solved || b.tool == "" || id != b.tool {
		return false
	}
	return b.win()
}

func (b *base) win() bool {
	if b.solved {
		return false
	}
	b.solved = true
	return b.done.Fire()
}

// New builds the minigame of the given kind with its stock configuration.
// tool may be empty when the puzzle has no side-panel shortcut.
func New(kind Kind, tool string, onComplete func()) (Game, bool) {
	switch kind {
	case KindSequence:
		return NewSequence(tool, []string{"me", "name", "hello"}, onComplete), true
	case KindVolume:
		return NewVolume(tool, onComplete), true
	case KindDial:
		return NewDial(tool, onComplete), true
	case KindBreath:
		return NewBreath(tool, breathSqueezes, onComplete), true
	case KindMosaic:
		return NewMosaic(tool, onComplete), true
	case KindScratch:
		return NewScratch(tool, onComplete), true
	case KindWire:
		return NewWire(tool, onComplete), true
	case KindTap:
		return NewTap(tool, onComplete), true
	}
	return nil, false
}

// Spec describes a minigame to spawn. Answer overrides the stock answer of a
// sequence puzzle and Count the number of squeezes of a breath game.
type Spec struct {
	Kind   Kind
	Tool   string
	Answer []string
	Count  int
}

// Build spawns the minigame described by spec.
func Build(spec Spec, onComplete func()) (Game, bool) {
	switch {
	case spec.Kind == KindSequence && len(spec.Answer) > 0:
		return NewSequence(spec.Tool, spec.Answer, onComplete), true
	case spec.Kind == KindBreath && spec.Count > 0:
		return NewBreath(spec.Tool, spec.Count, onComplete), true
	}
	return New(spec.Kind, spec.Tool, onComplete)
}

// Known reports whether kind has an implementation.
func Known(kind Kind) bool {
	switch kind {
	case KindSequence, KindVolume, KindDial, KindBreath, KindMosaic, KindScratch, KindWire, KindTap:
		return true
	}
	return false
}
