package stage

import (
	"hidden_piece/minigame"
	"hidden_piece/story"
)

// Low track scenes are short: one prompt, one tap game that earns a heart, and a
// cheer before moving on.

var lowStage1 = &Script{
	Stage:    story.StageLow1,
	Title:    "Forest 1",
	Subtitle: "Let's play",
	Initial:  Scene{PlayerPose: "talk", NPCMood: "calm"},
	Steps: map[StepID]Step{
		0: {Speaker: SpeakerNarrator, Text: "{npc} is playing alone with blocks.", Next: 1},
		1: {
			Speaker: SpeakerSystem,
			Text:    `Tap the speech bubble to say "Let's play!"`,
			Minigame: &MinigameStep{
				Spec:       minigame.Spec{Kind: minigame.KindTap},
				OnComplete: []Effect{Heart(), Stat(story.Communication, 10)},
				Next:       2,
			},
		},
		2: {
			Speaker:    SpeakerNPC,
			Text:       `"Play! Together!" Well done!`,
			Effects:    []Effect{Emotion("happy")},
			Transition: story.StageLow2,
		},
	},
}

var lowStage2 = &Script{
	Stage:    story.StageLow2,
	Title:    "Forest 2",
	Subtitle: "Noisy construction",
	OnEnter:  []Effect{Grant(story.ToolHeadset)},
	Initial:  Scene{PlayerPose: "talk", NPCMood: "calm"},
	Steps: map[StepID]Step{
		0: {
			Speaker: SpeakerNarrator,
			Text:    "Bang! Bang! The construction next door is very loud.",
			Effects: []Effect{Emotion("pain"), ShowStress(true), Stress(60)},
			Next:    1,
		},
		1: {
			Speaker: SpeakerSystem,
			Text:    "Tap the headphones to give them to {npc}.",
			Minigame: &MinigameStep{
				Spec:       minigame.Spec{Kind: minigame.KindTap, Tool: story.ToolHeadset},
				OnComplete: []Effect{Heart(), UseTool(story.ToolHeadset), Stat(story.Understanding, 10)},
				Next:       2,
			},
		},
		2: {
			Speaker:    SpeakerNPC,
			Text:       `"Quiet now." Well done!`,
			Effects:    []Effect{Emotion("happy"), ShowStress(false), Stress(0)},
			Transition: story.StageLow3,
		},
	},
}

var lowStage3 = &Script{
	Stage:    story.StageLow3,
	Title:    "Forest 3",
	Subtitle: "Waiting our turn",
	OnEnter:  []Effect{Grant(story.ToolTimer)},
	Initial:  Scene{PlayerPose: "talk", NPCMood: "calm"},
	Steps: map[StepID]Step{
		0: {Speaker: SpeakerNarrator, Text: "{npc} wants the swing right now, but a friend is on it.", Effects: []Effect{Emotion("anxious")}, Next: 1},
		1: {
			Speaker: SpeakerSystem,
			Text:    "Press the clock three times to wait together.",
			Minigame: &MinigameStep{
				Spec:       minigame.Spec{Kind: minigame.KindBreath, Count: 3},
				OnComplete: []Effect{Heart(), Log(story.LogWaiting), UseTool(story.ToolTimer), Stat(story.Patience, 10)},
				Next:       2,
			},
		},
		2: {
			Speaker:    SpeakerNPC,
			Text:       `"My turn!" Well done!`,
			Effects:    []Effect{Emotion("happy")},
			Transition: story.StageLow4,
		},
	},
}

var lowStage4 = &Script{
	Stage:    story.StageLow4,
	Title:    "Forest 4",
	Subtitle: "Feeling upset",
	OnEnter:  []Effect{Grant(story.ToolPECS), Grant(story.ToolSquishy)},
	Initial:  Scene{PlayerPose: "talk", NPCMood: "calm"},
	Steps: map[StepID]Step{
		0: {
			Speaker: SpeakerNarrator,
			Text:    "{npc}'s tower fell down. {npc} looks upset.",
			Effects: []Effect{Emotion("pain"), ShowStress(true), Stress(50)},
			Next:    1,
		},
		1: {
			Speaker: SpeakerSystem,
			Text:    "Which picture card shows how to feel better? Pick the squishy card.",
			Minigame: &MinigameStep{
				Spec:       minigame.Spec{Kind: minigame.KindSequence, Answer: []string{story.ToolSquishy}},
				OnComplete: []Effect{UseTool(story.ToolPECS), Stat(story.Communication, 10)},
				Next:       2,
			},
		},
		2: {
			Speaker: SpeakerSystem,
			Text:    "Tap the squishy toy three times.",
			Minigame: &MinigameStep{
				Spec:       minigame.Spec{Kind: minigame.KindBreath, Count: 3},
				OnComplete: []Effect{Heart(), UseTool(story.ToolSquishy), Stat(story.Trust, 10)},
				Next:       3,
			},
		},
		3: {
			Speaker:    SpeakerNPC,
			Text:       `"Better." Well done!`,
			Effects:    []Effect{Emotion("happy"), ShowStress(false), Stress(0)},
			Transition: story.StageLowEnding,
		},
	},
}
