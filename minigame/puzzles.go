package minigame

import (
	"fmt"
	"slices"
	"strings"
)

const (
	ActionPlace   = "place"
	ActionClear   = "clear"
	ActionSet     = "set"
	ActionWind    = "wind"
	ActionRelease = "release"
	ActionSqueeze = "squeeze"
	ActionRotate  = "rotate"
	ActionDrop    = "drop"
	ActionScrub   = "scrub"
	ActionClick   = "click"
	ActionConnect = "connect"
	ActionTap     = "tap"
)

// Sequence asks the player to lay word cards into slots in the right order.
type Sequence struct {
	base
	answer []string
	slots  []string
}

// NewSequence builds a card puzzle solved when the slots read answer.
func NewSequence(tool string, answer []string, onComplete func()) *Sequence {
	return &Sequence{
		base:   newBase(KindSequence, tool, onComplete),
		answer: slices.Clone(answer),
		slots:  make([]string, len(answer)),
	}
}

// Slots returns the cards currently placed.
func (g *Sequence) Slots() []string { return slices.Clone(g.slots) }

func (g *Sequence) Handle(in Input) bool {
	if g.solved || in.Value < 0 || in.Value >= len(g.slots) {
		return false
	}
	switch in.Action {
	case ActionPlace:
		if in.Target == "" {
			return false
		}
		if i := slices.Index(g.slots, in.Target); i >= 0 {
			g.slots[i] = ""
		}
		g.slots[in.Value] = in.Target
		if slices.Equal(g.slots, g.answer) {
			g.win()
		}
		return true
	case ActionClear:
		if g.slots[in.Value] == "" {
			return false
		}
		g.slots[in.Value] = ""
		return true
	}
	return false
}

const volumeTarget = 5

// Volume is the headset dial: turn the noise down until it is almost silent.
type Volume struct {
	base
	level int
}

// NewVolume starts at full volume.
func NewVolume(tool string, onComplete func()) *Volume {
	return &Volume{base: newBase(KindVolume, tool, onComplete), level: 100}
}

// Level returns the current volume.
func (g *Volume) Level() int { return g.level }

func (g *Volume) Handle(in Input) bool {
	if g.solved || in.Action != ActionSet {
		return false
	}
	g.level = min(100, max(0, in.Value))
	if g.level <= volumeTarget {
		g.win()
	}
	return true
}

const (
	dialTarget    = 300
	dialTolerance = 10
)

// Dial is the visual timer: wind it to five minutes and let go.
type Dial struct {
	base
	angle int
}

// NewDial starts unwound.
func NewDial(tool string, onComplete func()) *Dial {
	return &Dial{base: newBase(KindDial, tool, onComplete)}
}

// Angle returns the wound angle in degrees.
func (g *Dial) Angle() int { return g.angle }

func (g *Dial) Handle(in Input) bool {
	if g.solved {
		return false
	}
	switch in.Action {
	case ActionWind:
		g.angle = min(360, max(0, in.Value))
		return true
	case ActionRelease:
		if g.angle >= dialTarget-dialTolerance {
			g.win()
		} else {
			g.angle = 0
		}
		return true
	}
	return false
}

const breathSqueezes = 5

// Breath is the squishy toy: squeeze along with the breathing rhythm.
type Breath struct {
	base
	count  int
	target int
}

// NewBreath needs target squeezes to finish.
func NewBreath(tool string, target int, onComplete func()) *Breath {
	return &Breath{base: newBase(KindBreath, tool, onComplete), target: max(1, target)}
}

// Count returns how many squeezes were made.
func (g *Breath) Count() int { return g.count }

// Target is the number of squeezes that wins.
func (g *Breath) Target() int { return g.target }

func (g *Breath) Handle(in Input) bool {
	if g.solved || in.Action != ActionSqueeze {
		return false
	}
	g.count++
	if g.count >= g.target {
		g.win()
	}
	return true
}

const (
	mosaicSlot     = 7
	mosaicRotation = 180
)

// Mosaic asks for the missing tile to be rotated and dropped into the gap.
type Mosaic struct {
	base
	rotation int
}

// NewMosaic starts with an unrotated tile.
func NewMosaic(tool string, onComplete func()) *Mosaic {
	return &Mosaic{base: newBase(KindMosaic, tool, onComplete)}
}

// Rotation returns the tile rotation in degrees.
func (g *Mosaic) Rotation() int { return g.rotation }

func (g *Mosaic) Handle(in Input) bool {
	if g.solved {
		return false
	}
	switch in.Action {
	case ActionRotate:
		g.rotation = (g.rotation + 90) % 360
		return true
	case ActionDrop:
		if in.Value == mosaicSlot && g.rotation == mosaicRotation {
			g.win()
			return true
		}
		return false
	}
	return false
}

const (
	scratchReveal = 50
	scratchRadius = 30
	ribbonX       = 220
	ribbonY       = 140
)

// Scratch hides the ribbon under fog; rub enough away, then click the ribbon.
type Scratch struct {
	base
	cleared int
}

// NewScratch starts fully fogged.
func NewScratch(tool string, onComplete func()) *Scratch {
	return &Scratch{base: newBase(KindScratch, tool, onComplete)}
}

// Cleared returns the cleared percentage.
func (g *Scratch) Cleared() int { return g.cleared }

func (g *Scratch) Handle(in Input) bool {
	if g.solved {
		return false
	}
	switch in.Action {
	case ActionScrub:
		if in.Value <= 0 {
			return false
		}
		g.cleared = min(100, g.cleared+min(100, in.Value))
		return true
	case ActionClick:
		if g.cleared < scratchReveal || abs(in.X-ribbonX) >= scratchRadius || abs(in.Y-ribbonY) >= scratchRadius {
			return false
		}
		g.win()
		return true
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var wireAnswer = map[string]string{"l-red": "r-red", "l-blue": "r-blue"}

// Wire asks for each left port to be joined to its matching right port.
type Wire struct {
	base
	connections map[string]string
}

// NewWire starts with nothing connected.
func NewWire(tool string, onComplete func()) *Wire {
	return &Wire{base: newBase(KindWire, tool, onComplete), connections: map[string]string{}}
}

// Connected returns how many correct wires are in place.
func (g *Wire) Connected() int { return len(g.connections) }

func (g *Wire) Handle(in Input) bool {
	if g.solved || in.Action != ActionConnect {
		return false
	}
	want, ok := wireAnswer[in.Target]
	if !ok || want != in.To {
		return false
	}
	if _, done := g.connections[in.Target]; done {
		return false
	}
	g.connections[in.Target] = in.To
	if len(g.connections) == len(wireAnswer) {
		g.win()
	}
	return true
}

// Tap is solved by a single tap.
type Tap struct {
	base
}

// NewTap builds a one-tap game.
func NewTap(tool string, onComplete func()) *Tap {
	return &Tap{base: newBase(KindTap, tool, onComplete)}
}

func (g *Tap) Handle(in Input) bool {
	if g.solved || in.Action != ActionTap {
		return false
	}
	return g.win()
}

// Progress describes how far along g is, for display.
func Progress(g Game) string {
	switch g := g.(type) {
	case *Sequence:
		return strings.Join(g.Slots(), " | ")
	case *Volume:
		return fmt.Sprintf("volume %d", g.Level())
	case *Dial:
		return fmt.Sprintf("%d°", g.Angle())
	case *Breath:
		return fmt.Sprintf("%d/%d", g.Count(), g.Target())
	case *Mosaic:
		return fmt.Sprintf("%d°", g.Rotation())
	case *Scratch:
		return fmt.Sprintf("%d%%", g.Cleared())
	case *Wire:
		return fmt.Sprintf("%d/%d", g.Connected(), len(wireAnswer))
	}
	return ""
}
