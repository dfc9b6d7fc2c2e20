package minigame

import "testing"

func TestPuzzlesCompleteExactlyOnce(t *testing.T) {
	tests := []struct {
		name  string
		build func(func()) Game
		moves []Input
	}{
		{
			name:  "sequence",
			build: func(f func()) Game { return NewSequence("", []string{"me", "name", "hello"}, f) },
			moves: []Input{
				{Action: ActionPlace, Target: "you", Value: 0},
				{Action: ActionPlace, Target: "name", Value: 1},
				{Action: ActionPlace, Target: "hello", Value: 2},
				{Action: ActionPlace, Target: "me", Value: 0},
			},
		},
		{
			name:  "volume",
			build: func(f func()) Game { return NewVolume("", f) },
			moves: []Input{{Action: ActionSet, Value: 40}, {Action: ActionSet, Value: 5}},
		},
		{
			name:  "dial",
			build: func(f func()) Game { return NewDial("", f) },
			moves: []Input{
				{Action: ActionWind, Value: 120},
				{Action: ActionRelease},
				{Action: ActionWind, Value: 295},
				{Action: ActionRelease},
			},
		},
		{
			name:  "breath",
			build: func(f func()) Game { return NewBreath("", breathSqueezes, f) },
			moves: []Input{
				{Action: ActionSqueeze}, {Action: ActionSqueeze}, {Action: ActionSqueeze},
				{Action: ActionSqueeze}, {Action: ActionSqueeze},
			},
		},
		{
			name:  "mosaic",
			build: func(f func()) Game { return NewMosaic("", f) },
			moves: []Input{
				{Action: ActionRotate},
				{Action: ActionDrop, Value: 7},
				{Action: ActionRotate},
				{Action: ActionDrop, Value: 3},
				{Action: ActionDrop, Value: 7},
			},
		},
		{
			name:  "scratch",
			build: func(f func()) Game { return NewScratch("", f) },
			moves: []Input{
				{Action: ActionClick, X: 220, Y: 140},
				{Action: ActionScrub, Value: 30},
				{Action: ActionScrub, Value: 25},
				{Action: ActionClick, X: 10, Y: 10},
				{Action: ActionClick, X: 230, Y: 150},
			},
		},
		{
			name:  "wire",
			build: func(f func()) Game { return NewWire("", f) },
			moves: []Input{
				{Action: ActionConnect, Target: "l-red", To: "r-blue"},
				{Action: ActionConnect, Target: "l-red", To: "r-red"},
				{Action: ActionConnect, Target: "l-blue", To: "r-blue"},
			},
		},
		{
			name:  "tap",
			build: func(f func()) Game { return NewTap("", f) },
			moves: []Input{{Action: ActionTap}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			g := tt.build(func() { calls++ })
			for i, in := range tt.moves {
				g.Handle(in)
				last := i == len(tt.moves)-1
				if g.Solved() != last {
					t.Fatalf("after move %d (%+v) solved = %v; want %v", i, in, g.Solved(), last)
				}
			}
			for _, in := range tt.moves {
				if g.Handle(in) {
					t.Fatalf("move %+v accepted after solve", in)
				}
			}
			if calls != 1 {
				t.Errorf("onComplete called %d times; want 1", calls)
			}
		})
	}
}

func TestSequenceMovesCardBetweenSlots(t *testing.T) {
	g := NewSequence("", []string{"i", "can"}, nil)
	g.Handle(Input{Action: ActionPlace, Target: "can", Value: 0})
	g.Handle(Input{Action: ActionPlace, Target: "can", Value: 1})
	if s := g.Slots(); s[0] != "" || s[1] != "can" {
		t.Fatalf("slots = %v; want card moved to slot 1", s)
	}
	if !g.Handle(Input{Action: ActionClear, Value: 1}) {
		t.Fatal("clear of a filled slot rejected")
	}
	if g.Handle(Input{Action: ActionPlace, Target: "i", Value: 5}) {
		t.Fatal("out of range slot accepted")
	}
}

func TestDialReleaseTooEarlyResets(t *testing.T) {
	g := NewDial("", nil)
	g.Handle(Input{Action: ActionWind, Value: 200})
	g.Handle(Input{Action: ActionRelease})
	if g.Angle() != 0 || g.Solved() {
		t.Errorf("angle=%d solved=%v; want reset and unsolved", g.Angle(), g.Solved())
	}
}

func TestBuildBreathCount(t *testing.T) {
	calls := 0
	g, ok := Build(Spec{Kind: KindBreath, Count: 3}, func() { calls++ })
	if !ok {
		t.Fatal("breath not built")
	}
	for range 3 {
		g.Handle(Input{Action: ActionSqueeze})
	}
	if !g.Solved() || calls != 1 {
		t.Errorf("solved=%v calls=%d; want solved after 3 squeezes", g.Solved(), calls)
	}
}

func TestProgress(t *testing.T) {
	seq := NewSequence("", []string{"i", "can"}, nil)
	seq.Handle(Input{Action: ActionPlace, Target: "i", Value: 0})
	breath := NewBreath("", 3, nil)
	breath.Handle(Input{Action: ActionSqueeze})
	tests := []struct {
		game Game
		want string
	}{
		{seq, "i | "},
		{NewVolume("", nil), "volume 100"},
		{breath, "1/3"},
		{NewWire("", nil), "0/2"},
		{NewTap("", nil), ""},
	}
	for _, tt := range tests {
		if got := Progress(tt.game); got != tt.want {
			t.Errorf("Progress(%s) = %q; want %q", tt.game.Kind(), got, tt.want)
		}
	}
}

func TestScratchHugeScrubStaysInRange(t *testing.T) {
	g := NewScratch("", nil)
	const huge = int(^uint(0) >> 1)
	if !g.Handle(Input{Action: ActionScrub, Value: 50}) || !g.Handle(Input{Action: ActionScrub, Value: huge}) {
		t.Fatal("scrub rejected")
	}
	if g.Cleared() != 100 {
		t.Errorf("cleared = %d; want 100", g.Cleared())
	}
}
