package minigame

import "testing"

func TestCompletionFiresOnce(t *testing.T) {
	calls := 0
	c := NewCompletion(func() { calls++ })
	if !c.Fire() {
		t.Fatal("first Fire reported false")
	}
	if c.Fire() {
		t.Fatal("second Fire reported true")
	}
	if calls != 1 {
		t.Errorf("calls = %d; want 1", calls)
	}
	if !c.Fired() {
		t.Error("Fired() = false after firing")
	}

	var nilC *Completion
	if nilC.Fire() || nilC.Fired() {
		t.Error("nil completion should be inert")
	}
}

func TestHandlerSlot(t *testing.T) {
	var slot HandlerSlot
	if slot.Invoke("aac") {
		t.Fatal("invoke with nothing bound reported true")
	}

	var got []string
	release := slot.Bind(func(id string) bool {
		got = append(got, id)
		return id == "aac"
	})
	if !slot.Invoke("aac") || slot.Invoke("timer") {
		t.Fatal("handler result not propagated")
	}
	if len(got) != 2 {
		t.Fatalf("handler saw %v; want two ids", got)
	}

	release()
	if slot.Bound() || slot.Invoke("aac") {
		t.Fatal("slot still bound after release")
	}
}

func TestHandlerSlotStaleRelease(t *testing.T) {
	var slot HandlerSlot
	releaseOld := slot.Bind(func(string) bool { return false })
	slot.Bind(func(string) bool { return true })

	releaseOld()
	if !slot.Invoke("x") {
		t.Fatal("stale release cleared the newer handler")
	}
	slot.Clear()
	if slot.Bound() {
		t.Fatal("Clear left a handler bound")
	}
}

func TestBuildUnknownKind(t *testing.T) {
	if _, ok := Build(Spec{Kind: "pinball"}, nil); ok {
		t.Fatal("unknown kind built")
	}
	if Known("pinball") {
		t.Fatal("unknown kind reported known")
	}
}

func TestReceiveToolOnlyMatchingTool(t *testing.T) {
	calls := 0
	g, ok := New(KindVolume, "headset", func() { calls++ })
	if !ok {
		t.Fatal("volume not built")
	}
	if g.ReceiveTool("aac") {
		t.Fatal("wrong tool accepted")
	}
	if !g.ReceiveTool("headset") {
		t.Fatal("matching tool rejected")
	}
	if g.ReceiveTool("headset") {
		t.Fatal("tool accepted after solve")
	}
	if calls != 1 || !g.Solved() {
		t.Errorf("calls=%d solved=%v; want 1 true", calls, g.Solved())
	}
}

func TestReceiveToolWithoutShortcut(t *testing.T) {
	g, _ := New(KindScratch, "", nil)
	if g.ReceiveTool("") || g.ReceiveTool("ribbon") {
		t.Fatal("puzzle without a tool shortcut accepted a tool")
	}
}
