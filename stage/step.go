// Package stage runs the scripted scenes of the game. A scene is a table of steps;
// the Controller walks that table in response to player input.
package stage

import (
	"strings"

	"hidden_piece/minigame"
	"hidden_piece/story"
)

// StepID addresses a step inside one script. Every script starts at 0.
type StepID int

// Speakers resolved at render time.
const (
	SpeakerPlayer   = "{player}"
	SpeakerNPC      = "{npc}"
	SpeakerSystem   = "System"
	SpeakerNarrator = "Narrator"
)

// Step is one node of a stage's state machine. Exactly one of Next, Choices,
// Minigame or Transition decides what follows it.
type Step struct {
	Speaker string
	Text    string
	Effects []Effect

	Next       StepID
	Choices    []Choice
	Minigame   *MinigameStep
	Transition story.StageID
}

// Choice is one answer the player can pick.
type Choice struct {
	Label   string
	Effects []Effect
	Next    StepID
}

// MinigameStep spawns a minigame and waits for its completion signal.
type MinigameStep struct {
	Spec       minigame.Spec
	OnComplete []Effect
	Next       StepID
}

type rule int

const (
	ruleAdvance rule = iota
	ruleChoice
	ruleMinigame
	ruleTerminal
)

func (s Step) rule() rule {
	switch {
	case s.Transition != "":
		return ruleTerminal
	case s.Minigame != nil:
		return ruleMinigame
	case len(s.Choices) > 0:
		return ruleChoice
	}
	return ruleAdvance
}

// Script is the full definition of one stage.
type Script struct {
	Stage    story.StageID
	Title    string
	Subtitle string
	// OnEnter runs once when the stage mounts, before step 0.
	OnEnter []Effect
	Initial Scene
	Steps   map[StepID]Step
}

// Scene is the ephemeral presentation state of a stage.
type Scene struct {
	PlayerPose    string
	NPCEmotion    string
	NPCMood       string
	Vignette      string
	StressVisible bool
}

// Names fills the speaker and text placeholders.
type Names struct {
	Player string
	NPC    string
}

func (n Names) replacer() *strings.Replacer {
	return strings.NewReplacer("{player}", n.Player, "{npc}", n.NPC)
}

// Render substitutes the character names into s.
func (n Names) Render(s string) string {
	return n.replacer().Replace(s)
}
