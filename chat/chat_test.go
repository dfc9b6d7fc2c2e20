package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"hidden_piece/story"
)

type fakeGenerator struct {
	reply string
	err   error
	reqs  []Request
}

func (f *fakeGenerator) Reply(_ context.Context, req Request) (string, error) {
	f.reqs = append(f.reqs, req)
	return f.reply, f.err
}

func testState() story.GameState {
	s := story.DefaultState()
	s.NPC.Name = "Min"
	return s
}

func TestNewGreets(t *testing.T) {
	c := New(nil, testState())
	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].Role != RoleModel || !strings.Contains(msgs[0].Text, "Min") {
		t.Fatalf("messages = %+v; want a greeting naming the npc", msgs)
	}
}

func TestSendPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
		want string
	}{
		{name: "no key", gen: nil, want: NoKeyReply},
		{name: "api error", gen: &fakeGenerator{err: errors.New("quota")}, want: ErrorReply},
		{name: "empty reply", gen: &fakeGenerator{reply: "  "}, want: EmptyReply},
		{name: "reply", gen: &fakeGenerator{reply: "Everyone sees the world a bit differently."}, want: "Everyone sees the world a bit differently."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.gen, testState())
			msg, err := c.Send(context.Background(), "Why does Min cover their ears?")
			if err != nil {
				t.Fatalf("send: %v", err)
			}
			if msg.Text != tt.want || msg.Role != RoleModel {
				t.Errorf("reply = %+v; want %q", msg, tt.want)
			}
			if n := len(c.Messages()); n != 3 {
				t.Errorf("messages = %d; want greeting, question, reply", n)
			}
			if c.Busy() {
				t.Error("still busy after reply")
			}
		})
	}
}

func TestSendHistoryAndJournal(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	c := New(gen, testState())
	c.SetJournal("  Min likes quiet rooms.  ")
	if _, err := c.Send(context.Background(), "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Send(context.Background(), "second"); err != nil {
		t.Fatal(err)
	}
	if len(gen.reqs) != 2 {
		t.Fatalf("requests = %d", len(gen.reqs))
	}
	if len(gen.reqs[0].History) != 0 {
		t.Errorf("first history = %+v; want greeting left out", gen.reqs[0].History)
	}
	second := gen.reqs[1]
	if len(second.History) != 2 || second.History[0].Text != "first" || second.History[1].Role != RoleModel {
		t.Errorf("second history = %+v", second.History)
	}
	if second.Message != "second" {
		t.Errorf("message = %q", second.Message)
	}
	if !strings.Contains(second.System, "Min likes quiet rooms.") {
		t.Error("journal missing from system prompt")
	}
	if c.Journal() != "Min likes quiet rooms." {
		t.Errorf("journal = %q", c.Journal())
	}
}

func TestSendRejectsBlank(t *testing.T) {
	c := New(nil, testState())
	if _, err := c.Send(context.Background(), "   "); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v; want ErrEmpty", err)
	}
	if n := len(c.Messages()); n != 1 {
		t.Errorf("messages = %d; want only the greeting", n)
	}
}

type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingGenerator) Reply(context.Context, Request) (string, error) {
	close(b.started)
	<-b.release
	return "done", nil
}

func TestSendWhileBusy(t *testing.T) {
	gen := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	c := New(gen, testState())
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Send(context.Background(), "first")
	}()
	<-gen.started
	if _, err := c.Send(context.Background(), "second"); !errors.Is(err, ErrBusy) {
		t.Errorf("err = %v; want ErrBusy", err)
	}
	close(gen.release)
	<-done
}

func TestSystemPromptByTrack(t *testing.T) {
	s := testState()
	s.GradeMode = story.GradeLow
	if !strings.Contains(SystemPrompt(s), "7-8 years old") {
		t.Error("low track prompt missing")
	}
	s.GradeMode = story.GradeHigh
	if !strings.Contains(SystemPrompt(s), "10-11 years old") {
		t.Error("high track prompt missing")
	}
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello "), genai.Text("there")}},
	}}}
	got, err := responseText(resp)
	if err != nil || got != "Hello there" {
		t.Fatalf("responseText = %q, %v", got, err)
	}
	if _, err := responseText(&genai.GenerateContentResponse{}); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestToContents(t *testing.T) {
	got := toContents([]Message{{Role: RoleUser, Text: "hi"}, {Role: RoleModel, Text: "hello"}})
	if len(got) != 2 || got[0].Role != "user" || got[1].Role != "model" {
		t.Fatalf("contents = %+v", got)
	}
}
