package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"hidden_piece/chat"
	"hidden_piece/minigame"
	"hidden_piece/session"
	"hidden_piece/stage"
	"hidden_piece/story"
	"hidden_piece/transition"
)

func render(t *testing.T, snap session.Snapshot) string {
	t.Helper()
	return renderIn(t, snap, language.English)
}

func renderIn(t *testing.T, snap session.Snapshot, tag language.Tag) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Index("Hidden Piece", snap, tag).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestGetStressStatus(t *testing.T) {
	tests := []struct {
		stress int
		want   string
	}{
		{0, "Calm"},
		{19, "Calm"},
		{20, "Uneasy"},
		{50, "Upset"},
		{80, "Overwhelmed"},
		{100, "Overwhelmed"},
	}
	for _, tt := range tests {
		if got := GetStressStatus(tt.stress).Description; got != tt.want {
			t.Errorf("GetStressStatus(%d) = %q, want %q", tt.stress, got, tt.want)
		}
	}
}

func TestVignetteStyle(t *testing.T) {
	if got := VignetteStyle("", 90); got != "" {
		t.Fatalf("no vignette should render nothing, got %q", got)
	}
	if got := VignetteStyle("red", 50); !strings.Contains(got, "rgba(220,38,38,0.40)") {
		t.Fatalf("red vignette = %q", got)
	}
}

func TestIndexModeSelect(t *testing.T) {
	out := render(t, session.Snapshot{State: story.DefaultState()})
	for _, want := range []string{`action="/mode"`, string(story.GradeHigh), string(story.GradeLow), `action="/reset"`} {
		if !strings.Contains(out, want) {
			t.Errorf("mode select missing %q", want)
		}
	}
}

func TestIndexInterstitial(t *testing.T) {
	snap := session.Snapshot{
		State:          story.DefaultState(),
		Pending:        story.Stage1,
		TransitionMode: transition.ModeTimer,
		Stage:          &stage.View{Stage: story.Stage1, Text: "should not show"},
	}
	out := render(t, snap)
	if !strings.Contains(out, `action="/transition/commit"`) {
		t.Fatal("interstitial has no commit form")
	}
	if !strings.Contains(out, `http-equiv="refresh"`) {
		t.Fatal("timer mode should refresh the page")
	}
	if strings.Contains(out, "should not show") {
		t.Fatal("stage rendered behind the interstitial")
	}
}

func TestRefreshFollowsTransitionDelay(t *testing.T) {
	snap := session.Snapshot{
		State:           story.DefaultState(),
		Pending:         story.Stage2,
		TransitionMode:  transition.ModeTimer,
		TransitionDelay: 3500 * time.Millisecond,
	}
	if out := render(t, snap); !strings.Contains(out, `http-equiv="refresh" content="4"`) {
		t.Fatal("refresh does not follow the configured delay")
	}
	snap.TransitionMode = transition.ModeTap
	if out := render(t, snap); strings.Contains(out, `http-equiv="refresh"`) {
		t.Fatal("tap mode should wait for the player")
	}
}

func TestResetButtonDoesNotConfirmItself(t *testing.T) {
	out := render(t, session.Snapshot{State: story.DefaultState()})
	if strings.Contains(out, `name="confirm"`) {
		t.Fatal("panel reset form answers the confirmation itself")
	}

	var buf bytes.Buffer
	if err := ResetConfirm("Hidden Piece", language.English).Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	for _, want := range []string{story.ResetPrompt, `name="confirm" value="yes"`, `name="confirm" value="no"`} {
		if !strings.Contains(page, want) {
			t.Errorf("confirmation page missing %q", want)
		}
	}
}

func TestScreensFollowLanguage(t *testing.T) {
	out := renderIn(t, session.Snapshot{State: story.DefaultState()}, language.Korean)
	for _, want := range []string{"1-2학년: 새싹 요원", "친구 이름", `lang="ko"`, "English"} {
		if !strings.Contains(out, want) {
			t.Errorf("korean mode select missing %q", want)
		}
	}
	if strings.Contains(out, "Grades 1-2") {
		t.Error("english label leaked into the korean page")
	}
}

func TestIndexStageEscapesText(t *testing.T) {
	state := story.DefaultState()
	state.CurrentStage = story.Stage1
	state.Inventory = []string{story.ToolAAC}
	snap := session.Snapshot{
		State: state,
		Stage: &stage.View{
			Stage:    story.Stage1,
			Speaker:  "<b>Seungju</b>",
			Text:     "Hi & welcome",
			Choices:  []string{"Wave", "Smile"},
			Minigame: minigame.KindSequence,
		},
		Progress: "me |  | ",
	}
	out := render(t, snap)
	if strings.Contains(out, "<b>Seungju</b>") {
		t.Fatal("speaker was not escaped")
	}
	for _, want := range []string{"&lt;b&gt;Seungju&lt;/b&gt;", "Hi &amp; welcome", `name="choice" value="1"`, `value="place"`, `name="tool" value="aac"`} {
		if !strings.Contains(out, want) {
			t.Errorf("stage missing %q", want)
		}
	}
}

func TestIndexEndingWithoutKey(t *testing.T) {
	state := story.DefaultState()
	state.CurrentStage = story.StageEnding
	snap := session.Snapshot{
		State: state,
		Chat:  []chat.Message{{ID: "m1", Role: chat.RoleModel, Text: "Congratulations!"}},
	}
	out := render(t, snap)
	for _, want := range []string{"GEMINI_API_KEY", `id="msg-m1"`, `action="/journal"`, `href="/download"`} {
		if !strings.Contains(out, want) {
			t.Errorf("ending missing %q", want)
		}
	}
}

func TestIndexLowEndingDownloadNeedsSticker(t *testing.T) {
	state := story.DefaultState()
	state.CurrentStage = story.StageLowEnding
	state.GradeMode = story.GradeLow
	if out := render(t, session.Snapshot{State: state}); strings.Contains(out, `href="/download"`) {
		t.Fatal("certificate offered before a sticker was chosen")
	}
	if out := render(t, session.Snapshot{State: state, Sticker: "happy"}); !strings.Contains(out, `href="/download"`) {
		t.Fatal("certificate not offered after choosing a sticker")
	}
}
