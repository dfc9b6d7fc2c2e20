package stage

import "hidden_piece/story"

// Mutator is the slice of the game state store that scripts may touch.
type Mutator interface {
	AdjustStat(key story.StatKey, delta int)
	AddInventoryItem(id string)
	MarkToolUsed(id string)
	IncrementLog(name story.LogName)
	SetStressGauge(v int)
	AddHeart()
	ToolUsed(id string) bool
}

type effectKind int

const (
	effectStat effectKind = iota
	effectGrant
	effectUse
	effectLog
	effectStress
	effectHeart
	effectPose
	effectEmotion
	effectMood
	effectVignette
	effectStressOverlay
)

// Effect is one side effect applied when a step is entered, a choice is picked,
// or a minigame completes.
type Effect struct {
	kind  effectKind
	stat  story.StatKey
	tool  string
	log   story.LogName
	value int
	text  string
	flag  bool
}

// Stat adds delta to a competency stat.
func Stat(key story.StatKey, delta int) Effect {
	return Effect{kind: effectStat, stat: key, value: delta}
}

// Grant puts a tool in the inventory and unlocks its encyclopedia entry.
func Grant(tool string) Effect { return Effect{kind: effectGrant, tool: tool} }

// UseTool marks a tool as applied.
func UseTool(tool string) Effect { return Effect{kind: effectUse, tool: tool} }

// Log bumps a report counter.
func Log(name story.LogName) Effect { return Effect{kind: effectLog, log: name} }

// Stress sets the partner's distress meter.
func Stress(v int) Effect { return Effect{kind: effectStress, value: v} }

// Heart awards a low track heart.
func Heart() Effect { return Effect{kind: effectHeart} }

// Pose changes the player sprite.
func Pose(p string) Effect { return Effect{kind: effectPose, text: p} }

// Emotion changes the partner's face.
func Emotion(e string) Effect { return Effect{kind: effectEmotion, text: e} }

// Mood changes the partner's body animation.
func Mood(m string) Effect { return Effect{kind: effectMood, text: m} }

// Vignette sets the screen tint; an empty name clears it.
func Vignette(v string) Effect { return Effect{kind: effectVignette, text: v} }

// ShowStress shows or hides the stress meter overlay.
func ShowStress(visible bool) Effect { return Effect{kind: effectStressOverlay, flag: visible} }

func apply(effects []Effect, m Mutator, scene *Scene) {
	for _, e := range effects {
		switch e.kind {
		case effectStat:
			m.AdjustStat(e.stat, e.value)
		case effectGrant:
			m.AddInventoryItem(e.tool)
		case effectUse:
			m.MarkToolUsed(e.tool)
		case effectLog:
			m.IncrementLog(e.log)
		case effectStress:
			m.SetStressGauge(e.value)
		case effectHeart:
			m.AddHeart()
		case effectPose:
			scene.PlayerPose = e.text
		case effectEmotion:
			scene.NPCEmotion = e.text
		case effectMood:
			scene.NPCMood = e.text
		case effectVignette:
			scene.Vignette = e.text
		case effectStressOverlay:
			scene.StressVisible = e.flag
		}
	}
}

// rewarding reports whether an effect pays out to the store rather than only
// changing the scene or the toolbox.
func (e Effect) rewarding() bool {
	switch e.kind {
	case effectStat, effectLog, effectHeart:
		return true
	}
	return false
}

// withoutRewards drops the payouts from effects.
func withoutRewards(effects []Effect) []Effect {
	var out []Effect
	for _, e := range effects {
		if !e.rewarding() {
			out = append(out, e)
		}
	}
	return out
}

// tools lists every tool id an effect list refers to.
func tools(effects []Effect) []string {
	var out []string
	for _, e := range effects {
		if e.kind == effectGrant || e.kind == effectUse {
			out = append(out, e.tool)
		}
	}
	return out
}
