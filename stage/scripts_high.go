package stage

import (
	"hidden_piece/minigame"
	"hidden_piece/story"
)

var stage1 = &Script{
	Stage:    story.Stage1,
	Title:    "Stage 1",
	Subtitle: "Echoes in the classroom",
	OnEnter:  []Effect{Grant(story.ToolAAC)},
	Initial:  Scene{PlayerPose: "talk", NPCMood: "rocking"},
	Steps: map[StepID]Step{
		0: {
			Speaker: SpeakerPlayer,
			Text:    "({npc} is rocking back and forth, staring into space. You want to talk to your new deskmate. What do you do?)",
			Effects: []Effect{Pose("thinking")},
			Choices: []Choice{
				{Label: "Tap {npc} on the shoulder", Effects: []Effect{Stat(story.Trust, -5)}, Next: 1},
				{Label: "Wave from in front of the desk", Next: 1},
				{Label: "Sit quietly beside {npc} and wait", Effects: []Effect{Stat(story.Patience, 10)}, Next: 1},
			},
		},
		1: {Speaker: SpeakerPlayer, Text: `"Hi! What's your name?"`, Effects: []Effect{Pose("talk")}, Next: 2},
		2: {
			Speaker: SpeakerNPC,
			Text:    `(without meeting your eyes) "What's your name. What's your name."`,
			Effects: []Effect{Mood("shaking"), Emotion("anxious")},
			Next:    3,
		},
		3: {
			Speaker: SpeakerPlayer,
			Text:    "(Why is {npc} repeating me? Is this a joke?)",
			Effects: []Effect{Pose("surprised")},
			Choices: []Choice{
				{Label: `"Hey! Stop copying me!"`, Next: 10},
				{Label: `"WHAT. IS. YOUR. NAME!"`, Next: 20},
				{Label: "(Stay still for now)", Next: 30},
			},
		},
		10: {
			Speaker: SpeakerNPC,
			Text:    `"Stop copying! Stop it! Stop it!" (the voice gets higher)`,
			Effects: []Effect{Vignette("red"), ShowStress(true), Stress(40), Mood("stressed"), Emotion("pain"), Stat(story.Trust, -10)},
			Next:    40,
		},
		20: {
			Speaker: SpeakerNPC,
			Text:    `(screaming) "Beep sound! Beep sound!"`,
			Effects: []Effect{Vignette("red"), ShowStress(true), Stress(60), Mood("stressed"), Emotion("pain"), Stat(story.Trust, -20)},
			Next:    21,
		},
		21: {
			Speaker: SpeakerSystem,
			Text:    "A loud voice can feel like physical pain to {npc}. Try another way to talk.",
			Next:    40,
		},
		30: {
			Speaker: SpeakerSystem,
			Text:    "Repeating words is called echolalia. It can be {npc}'s way of saying 'I heard you, but I don't know how to answer.'",
			Effects: []Effect{Stat(story.Patience, 10)},
			Next:    31,
		},
		31: {
			Speaker: SpeakerPlayer,
			Text:    "(Maybe {npc} needs another way to answer. The AAC tablet might help.)",
			Next:    40,
		},
		40: {
			Speaker: SpeakerSystem,
			Text:    "Open the AAC tablet from the toolbox and arrange the word cards so {npc} can introduce themself.",
			Effects: []Effect{Vignette(""), ShowStress(false), Stress(0), Pose("thinking")},
			Minigame: &MinigameStep{
				Spec: minigame.Spec{Kind: minigame.KindSequence, Tool: story.ToolAAC, Answer: []string{"me", "name", "hello"}},
				OnComplete: []Effect{
					Log(story.LogToolAccuracy), UseTool(story.ToolAAC),
					Stat(story.Communication, 20), Stat(story.Trust, 10),
				},
				Next: 50,
			},
		},
		50: {
			Speaker: SpeakerNPC,
			Text:    `(pressing the tablet) "Me. {npc}. Hello."`,
			Effects: []Effect{Mood("calm"), Emotion("happy"), Pose("happy")},
			Next:    51,
		},
		51: {
			Speaker:    SpeakerSystem,
			Text:       "Badge earned: Echo Translator. The first piece of {npc}'s world has been found.",
			Transition: story.Stage2,
		},
	},
}

var stage2 = &Script{
	Stage:    story.Stage2,
	Title:    "Stage 2",
	Subtitle: "Too loud",
	OnEnter:  []Effect{Grant(story.ToolHeadset)},
	Initial:  Scene{PlayerPose: "talk", NPCMood: "calm"},
	Steps: map[StepID]Step{
		0: {
			Speaker: SpeakerPlayer,
			Text:    "(Music class. {npc} is covering their ears and looking at the floor.)",
			Choices: []Choice{
				{Label: "Watch what {npc} is reacting to", Effects: []Effect{Stat(story.Understanding, 5)}, Next: 1},
				{Label: "Notice how loud the room is", Effects: []Effect{Stat(story.Understanding, 10)}, Next: 1},
			},
		},
		1: {
			Speaker: SpeakerNarrator,
			Text:    "CRASH! Someone hits the cymbals.",
			Effects: []Effect{Vignette("red"), ShowStress(true), Stress(70), Emotion("pain"), Mood("stressed")},
			Next:    2,
		},
		2: {Speaker: SpeakerNPC, Text: `"Aaah! Too loud! Too loud!" (hitting their ears)`, Next: 3},
		3: {
			Speaker: SpeakerPlayer,
			Text:    "(Everyone is staring. What should I do?)",
			Effects: []Effect{Pose("surprised")},
			Choices: []Choice{
				{Label: `"Calm down! Stop shouting!"`, Next: 10},
				{Label: "(Wait until it passes)", Next: 20},
				{Label: "(Think about what {npc} hears right now)", Next: 30},
			},
		},
		10: {
			Speaker: SpeakerNPC,
			Text:    "(curls up and screams even louder)",
			Effects: []Effect{Stat(story.Trust, -15), Stress(80)},
			Next:    40,
		},
		20: {
			Speaker: SpeakerSystem,
			Text:    "Waiting helps, but the noise is still there. {npc} needs the sound to go away.",
			Effects: []Effect{Stat(story.Patience, 5)},
			Next:    40,
		},
		30: {
			Speaker: SpeakerSystem,
			Text:    "Sensory overload: ordinary sounds can hit {npc} many times louder than they hit you.",
			Effects: []Effect{Stat(story.Understanding, 10), Stat(story.Patience, 10)},
			Next:    40,
		},
		40: {
			Speaker: SpeakerSystem,
			Text:    "Give {npc} the noise-cancelling headset from the toolbox, then turn the noise all the way down.",
			Effects: []Effect{Pose("thinking")},
			Minigame: &MinigameStep{
				Spec: minigame.Spec{Kind: minigame.KindVolume, Tool: story.ToolHeadset},
				OnComplete: []Effect{
					Log(story.LogToolAccuracy), UseTool(story.ToolHeadset),
					Stat(story.Understanding, 20), Stat(story.Trust, 20),
				},
				Next: 50,
			},
		},
		50: {
			Speaker: SpeakerNPC,
			Text:    "(breathing slows down) ...",
			Effects: []Effect{Vignette(""), ShowStress(false), Stress(0), Mood("calm"), Emotion("default")},
			Next:    51,
		},
		51: {Speaker: SpeakerNPC, Text: `"Quiet. Good."`, Effects: []Effect{Emotion("happy")}, Next: 52},
		52: {Speaker: SpeakerPlayer, Text: "(So it wasn't a tantrum. It really hurt.)", Effects: []Effect{Pose("happy")}, Next: 53},
		53: {
			Speaker:    SpeakerSystem,
			Text:       "Badge earned: Sound Guardian. Another piece of {npc}'s world has been found.",
			Transition: story.Stage3,
		},
	},
}

var stage3 = &Script{
	Stage:    story.Stage3,
	Title:    "Stage 3",
	Subtitle: "The changed schedule",
	OnEnter:  []Effect{Grant(story.ToolTimer)},
	Initial:  Scene{PlayerPose: "talk", NPCMood: "calm"},
	Steps: map[StepID]Step{
		0: {
			Speaker: SpeakerNarrator,
			Text:    "Announcement: PE is cancelled today because of rain. We will watch a video instead.",
			Effects: []Effect{Emotion("anxious")},
			Next:    1,
		},
		1: {
			Speaker: SpeakerNPC,
			Text:    `"Thursday is PE. Thursday is PE. Thursday is PE."`,
			Effects: []Effect{ShowStress(true), Stress(50), Mood("shaking")},
			Choices: []Choice{
				{Label: `"It's cancelled, get over it."`, Effects: []Effect{Stat(story.Trust, -10)}, Next: 10},
				{Label: `"The plan changed. That's scary, right?"`, Effects: []Effect{Stat(story.Trust, 10)}, Next: 20},
			},
		},
		10: {
			Speaker: SpeakerNPC,
			Text:    "(rocking harder) \"No! Thursday is PE!\"",
			Effects: []Effect{Stress(75), Vignette("red"), Emotion("pain")},
			Next:    12,
		},
		12: {
			Speaker: SpeakerSystem,
			Text:    "Unexpected change feels like the ground falling away. {npc} needs to see when things will happen.",
			Next:    30,
		},
		20: {Speaker: SpeakerNPC, Text: `"...Scary."`, Effects: []Effect{Emotion("default")}, Next: 21},
		21: {Speaker: SpeakerPlayer, Text: `"Let's look at what happens next together."`, Effects: []Effect{Pose("happy")}, Next: 22},
		22: {
			Speaker: SpeakerSystem,
			Text:    "Showing time visually makes waiting predictable.",
			Effects: []Effect{Stat(story.Understanding, 5)},
			Next:    30,
		},
		30: {
			Speaker: SpeakerSystem,
			Text:    "Use the visual timer: wind it to five minutes and let go so {npc} can see how long until the video.",
			Effects: []Effect{Pose("thinking")},
			Minigame: &MinigameStep{
				Spec: minigame.Spec{Kind: minigame.KindDial, Tool: story.ToolTimer},
				OnComplete: []Effect{
					Log(story.LogToolAccuracy), UseTool(story.ToolTimer),
					Stat(story.Communication, 20), Stat(story.Patience, 20),
				},
				Next: 40,
			},
		},
		40: {
			Speaker: SpeakerNPC,
			Text:    `(watching the red disc shrink) "Five minutes. Then video."`,
			Effects: []Effect{Vignette(""), Stress(30), Emotion("default")},
			Next:    41,
		},
		41: {
			Speaker: SpeakerSystem,
			Text:    "{npc} is still tense. A squishy toy can help breathe through it.",
			Effects: []Effect{Grant(story.ToolSquishy)},
			Next:    42,
		},
		42: {
			Speaker: SpeakerSystem,
			Text:    "Hand over the squishy toy and squeeze along with the breathing rhythm.",
			Minigame: &MinigameStep{
				Spec:       minigame.Spec{Kind: minigame.KindBreath, Tool: story.ToolSquishy},
				OnComplete: []Effect{UseTool(story.ToolSquishy), Stat(story.Patience, 10), Stat(story.Trust, 10)},
				Next:       50,
			},
		},
		50: {
			Speaker: SpeakerNPC,
			Text:    "(squeeze... release...) \"Okay.\"",
			Effects: []Effect{ShowStress(false), Stress(0), Mood("calm"), Emotion("happy")},
			Next:    51,
		},
		51: {Speaker: SpeakerPlayer, Text: "(Knowing what comes next made all the difference.)", Effects: []Effect{Pose("happy")}, Next: 52},
		52: {
			Speaker:    SpeakerSystem,
			Text:       "Badge earned: Time Keeper. Another piece of {npc}'s world has been found.",
			Transition: story.Stage4,
		},
	},
}

var stage4 = &Script{
	Stage:    story.Stage4,
	Title:    "Stage 4",
	Subtitle: "Words without voice",
	OnEnter:  []Effect{Grant(story.ToolPECS)},
	Initial:  Scene{PlayerPose: "talk", NPCMood: "calm"},
	Steps: map[StepID]Step{
		0: {Speaker: SpeakerNarrator, Text: "Lunch time. {npc} is standing in front of the tray, not moving.", Next: 1},
		1: {Speaker: SpeakerNPC, Text: "(pulls your sleeve and points at the water cup, then at you)", Effects: []Effect{Emotion("anxious")}, Next: 2},
		2: {Speaker: SpeakerPlayer, Text: "(Is {npc} asking for something?)", Effects: []Effect{Pose("thinking")}, Next: 3},
		3: {Speaker: SpeakerNPC, Text: `"...Uh. Uh."`, Effects: []Effect{ShowStress(true), Stress(40)}, Next: 4},
		4: {
			Speaker: SpeakerPlayer,
			Text:    "(How should I respond?)",
			Choices: []Choice{
				{Label: `"Use your words! Say it!"`, Effects: []Effect{Stat(story.Trust, -10)}, Next: 10},
				{Label: "Point at the cup and ask \"Water?\"", Effects: []Effect{Stat(story.Trust, 10), Stat(story.Communication, 10)}, Next: 20},
				{Label: "(Notice the gesture is a way of talking)", Effects: []Effect{Stat(story.Understanding, 15), Stat(story.Trust, 10)}, Next: 30},
			},
		},
		10: {
			Speaker: SpeakerNPC,
			Text:    "(drops their hand and looks away)",
			Effects: []Effect{Stress(60), Emotion("pain")},
			Next:    40,
		},
		20: {Speaker: SpeakerNPC, Text: "(nods quickly)", Effects: []Effect{Emotion("happy")}, Next: 40},
		30: {
			Speaker: SpeakerSystem,
			Text:    "Pointing and pulling a sleeve are communication too. Picture cards can give those gestures more words.",
			Next:    40,
		},
		40: {
			Speaker: SpeakerSystem,
			Text:    "Help {npc} build a sentence: put the cards in order.",
			Effects: []Effect{Pose("thinking")},
			Minigame: &MinigameStep{
				Spec:       minigame.Spec{Kind: minigame.KindSequence, Answer: []string{"i", "can"}},
				OnComplete: []Effect{Stat(story.Communication, 10)},
				Next:       41,
			},
		},
		41: {Speaker: SpeakerNPC, Text: `"I... can..."`, Effects: []Effect{Emotion("default")}, Next: 42},
		42: {
			Speaker: SpeakerSystem,
			Text:    "Use the PECS cards from the toolbox, then turn the missing picture tile the right way up and drop it into the gap.",
			Minigame: &MinigameStep{
				Spec: minigame.Spec{Kind: minigame.KindMosaic, Tool: story.ToolPECS},
				OnComplete: []Effect{
					Log(story.LogToolAccuracy), UseTool(story.ToolPECS),
					Stat(story.Understanding, 20), Stat(story.Trust, 20),
				},
				Next: 50,
			},
		},
		50: {
			Speaker: SpeakerNPC,
			Text:    `(holding up the card) "I can... water, please."`,
			Effects: []Effect{ShowStress(false), Stress(0), Mood("calm"), Emotion("happy")},
			Next:    51,
		},
		51: {Speaker: SpeakerPlayer, Text: `"Here you go!"`, Effects: []Effect{Pose("happy")}, Next: 52},
		52: {
			Speaker:    SpeakerSystem,
			Text:       "Badge earned: Picture Talker. Another piece of {npc}'s world has been found.",
			Transition: story.Stage5,
		},
	},
}

var stage5 = &Script{
	Stage:    story.Stage5,
	Title:    "Stage 5",
	Subtitle: "The lost ribbon",
	OnEnter:  []Effect{Grant(story.ToolMap), Grant(story.ToolRibbon)},
	Initial:  Scene{PlayerPose: "talk", NPCMood: "calm"},
	Steps: map[StepID]Step{
		0: {Speaker: SpeakerNarrator, Text: "Field trip. {npc} has stopped in the middle of the crowd.", Next: 1},
		1: {
			Speaker: SpeakerNPC,
			Text:    `"Where. Where. Where."`,
			Effects: []Effect{ShowStress(true), Stress(60), Mood("shaking"), Emotion("anxious")},
			Next:    2,
		},
		2: {
			Speaker: SpeakerPlayer,
			Text:    "({npc} is frozen. What now?)",
			Effects: []Effect{Pose("surprised")},
			Choices: []Choice{
				{Label: `"Hurry, we're going to be late!"`, Effects: []Effect{Stat(story.Trust, -10)}, Next: 10},
				{Label: "(Wait beside {npc} without rushing)", Effects: []Effect{Log(story.LogWaiting)}, Next: 20},
			},
		},
		10: {Speaker: SpeakerNPC, Text: "(covers their face and crouches down)", Effects: []Effect{Stress(85), Vignette("red"), Emotion("pain")}, Next: 11},
		11: {
			Speaker: SpeakerSystem,
			Text:    "Rushing makes the unknown scarier. Let's slow down and show {npc} the way.",
			Next:    20,
		},
		20: {
			Speaker: SpeakerNPC,
			Text:    "(looks at you for a moment)",
			Effects: []Effect{Stat(story.Trust, 10), Stat(story.Understanding, 10), Vignette(""), Emotion("default")},
			Next:    30,
		},
		30: {
			Speaker: SpeakerSystem,
			Text:    "The map is fogged over. Rub the fog away and find {npc}'s ribbon marker.",
			Effects: []Effect{Pose("thinking")},
			Minigame: &MinigameStep{
				Spec: minigame.Spec{Kind: minigame.KindScratch},
				Next: 40,
			},
		},
		40: {Speaker: SpeakerPlayer, Text: `"Look, we're here. And the bus is there."`, Effects: []Effect{Pose("talk")}, Next: 41},
		41: {Speaker: SpeakerNPC, Text: `"Here. Then there."`, Effects: []Effect{Mood("calm"), Emotion("happy")}, Next: 42},
		42: {
			Speaker: SpeakerSystem,
			Text:    "Badge earned: Path Finder. {npc} ties the ribbon on the map so they can always find the way.",
			Effects: []Effect{
				Log(story.LogToolAccuracy), UseTool(story.ToolRibbon), UseTool(story.ToolMap),
				Stat(story.Understanding, 20), Stat(story.Communication, 20),
				ShowStress(false), Stress(0),
			},
			Transition: story.Stage6,
		},
	},
}

var stage6 = &Script{
	Stage:    story.Stage6,
	Title:    "Stage 6",
	Subtitle: "The Prism Lab",
	Initial:  Scene{PlayerPose: "talk", NPCMood: "calm", NPCEmotion: "happy"},
	Steps: map[StepID]Step{
		0: {Speaker: SpeakerNarrator, Text: "The hidden pieces you collected light up like a prism.", Next: 1},
		1: {Speaker: SpeakerNPC, Text: `"{player}. Friend."`, Next: 2},
		2: {
			Speaker: SpeakerPlayer,
			Text:    "(Every piece was a different way of seeing the world.)",
			Effects: []Effect{Pose("happy")},
			Next:    3,
		},
		3: {
			Speaker:    SpeakerSystem,
			Text:       "Your journey is complete. Let's look at the report.",
			Transition: story.StageEnding,
		},
	},
}
