package story

import "slices"

// StageID identifies one scripted scene in the fixed stage graph.
type StageID string

const (
	StageModeSelect   StageID = "mode_select"
	StagePrologue     StageID = "prologue"
	Stage1            StageID = "stage-1"
	Stage2            StageID = "stage-2"
	Stage3            StageID = "stage-3"
	Stage4            StageID = "stage-4"
	Stage5            StageID = "stage-5"
	Stage6            StageID = "stage-6"
	StageEnding       StageID = "ending"
	StageEncyclopedia StageID = "encyclopedia"
	StageLowIntro     StageID = "low_intro"
	StageLow1         StageID = "low_stage1"
	StageLow2         StageID = "low_stage2"
	StageLow3         StageID = "low_stage3"
	StageLow4         StageID = "low_stage4"
	StageLowEnding    StageID = "low_ending"
)

// DefaultStage is where a new game starts and where unknown stage ids land.
const DefaultStage = StageModeSelect

var knownStages = []StageID{
	StageModeSelect, StagePrologue,
	Stage1, Stage2, Stage3, Stage4, Stage5, Stage6,
	StageEnding, StageEncyclopedia,
	StageLowIntro, StageLow1, StageLow2, StageLow3, StageLow4, StageLowEnding,
}

// Stages returns every stage id in graph order.
func Stages() []StageID {
	return slices.Clone(knownStages)
}

// Valid reports whether id is part of the stage graph.
func (id StageID) Valid() bool {
	return slices.Contains(knownStages, id)
}

// GradeMode selects which of the two stage tracks is played.
type GradeMode string

const (
	GradeNone GradeMode = ""
	GradeLow  GradeMode = "low_grade"
	GradeHigh GradeMode = "high_grade"
)

// Gender is the sprite set used for a character.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Character is the identity of the player or the partner NPC.
type Character struct {
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
}

// StatKey names one of the four competency counters.
type StatKey string

const (
	Understanding StatKey = "understanding"
	Trust         StatKey = "trust"
	Communication StatKey = "communication"
	Patience      StatKey = "patience"
)

// StatKeys lists the counters in display order.
var StatKeys = []StatKey{Understanding, Trust, Communication, Patience}

const (
	StatMin = 0
	StatMax = 100
)

// Stats tracks the player's competencies, each within [StatMin, StatMax].
type Stats struct {
	Understanding int `json:"understanding"`
	Trust         int `json:"trust"`
	Communication int `json:"communication"`
	Patience      int `json:"patience"`
}

// Get returns the value for key and whether key is recognized.
func (s Stats) Get(key StatKey) (int, bool) {
	switch key {
	case Understanding:
		return s.Understanding, true
	case Trust:
		return s.Trust, true
	case Communication:
		return s.Communication, true
	case Patience:
		return s.Patience, true
	}
	return 0, false
}

func (s *Stats) field(key StatKey) *int {
	switch key {
	case Understanding:
		return &s.Understanding
	case Trust:
		return &s.Trust
	case Communication:
		return &s.Communication
	case Patience:
		return &s.Patience
	}
	return nil
}

// Total is the sum of all four stats.
func (s Stats) Total() int {
	return s.Understanding + s.Trust + s.Communication + s.Patience
}

func clamp(v int) int {
	return min(StatMax, max(StatMin, v))
}

// LogName names one of the end-of-game report counters.
type LogName string

const (
	LogWaiting      LogName = "waiting_count"
	LogToolAccuracy LogName = "tool_accuracy"
	LogToolAttempts LogName = "tool_attempts"
)

// Logs holds counters used only by the end-of-game report.
type Logs struct {
	WaitingCount int `json:"waiting_count"`
	ToolAccuracy int `json:"tool_accuracy"`
	ToolAttempts int `json:"tool_attempts"`
}

// GameState represents the entire persisted progress of one playthrough.
type GameState struct {
	CurrentStage         StageID   `json:"currentStage"`
	GradeMode            GradeMode `json:"gradeMode,omitempty"`
	Player               Character `json:"player"`
	NPC                  Character `json:"npc"`
	Stats                Stats     `json:"stats"`
	Inventory            []string  `json:"inventory"`
	UsedTools            []string  `json:"usedTools"`
	Logs                 Logs      `json:"logs"`
	StressGauge          int       `json:"stressGauge"`
	EncyclopediaUnlocked []string  `json:"encyclopediaUnlocked"`
	Hearts               int       `json:"hearts"`
}

const (
	DefaultPlayerName     = "나"
	DefaultFemaleNPCName  = "승주"
	DefaultMaleNPCName    = "성민"
	DefaultStatValue      = 20
	usedToolsForEndingMin = 5
)

// DefaultNPCName is the partner's name used when none is entered.
func DefaultNPCName(g Gender) string {
	if g == Male {
		return DefaultMaleNPCName
	}
	return DefaultFemaleNPCName
}

// DefaultState returns the state of a brand-new game.
func DefaultState() GameState {
	return GameState{
		CurrentStage: DefaultStage,
		Player:       Character{Name: DefaultPlayerName, Gender: Male},
		NPC:          Character{Name: DefaultFemaleNPCName, Gender: Female},
		Stats: Stats{
			Understanding: DefaultStatValue,
			Trust:         DefaultStatValue,
			Communication: DefaultStatValue,
			Patience:      DefaultStatValue,
		},
		Inventory:            []string{},
		UsedTools:            []string{},
		EncyclopediaUnlocked: []string{},
	}
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	out := s
	out.Inventory = slices.Clone(s.Inventory)
	out.UsedTools = slices.Clone(s.UsedTools)
	out.EncyclopediaUnlocked = slices.Clone(s.EncyclopediaUnlocked)
	return out
}

// HasTool reports whether the player owns the tool.
func (s GameState) HasTool(id string) bool {
	return slices.Contains(s.Inventory, id)
}

// ToolUsed reports whether the tool was already applied in a minigame.
func (s GameState) ToolUsed(id string) bool {
	return slices.Contains(s.UsedTools, id)
}

// Unlocked reports whether the tool's encyclopedia entry is revealed.
func (s GameState) Unlocked(id string) bool {
	return slices.Contains(s.EncyclopediaUnlocked, id)
}

// ReadyForEnding reports whether enough tools were used to skip straight to the ending.
func (s GameState) ReadyForEnding() bool {
	return len(s.UsedTools) >= usedToolsForEndingMin
}

// normalize repairs a decoded snapshot so every invariant holds again.
func (s *GameState) normalize() {
	if !s.CurrentStage.Valid() {
		s.CurrentStage = DefaultStage
	}
	switch s.GradeMode {
	case GradeNone, GradeLow, GradeHigh:
	default:
		s.GradeMode = GradeNone
	}
	for _, key := range StatKeys {
		p := s.Stats.field(key)
		*p = clamp(*p)
	}
	s.Inventory = dedupe(s.Inventory)
	s.UsedTools = dedupe(s.UsedTools)
	s.EncyclopediaUnlocked = dedupe(s.EncyclopediaUnlocked)
	s.Player = normalizeCharacter(s.Player, DefaultPlayerName, Male)
	s.NPC = normalizeCharacter(s.NPC, DefaultNPCName(s.NPC.Gender), Female)
	if s.Hearts < 0 {
		s.Hearts = 0
	}
}

func normalizeCharacter(c Character, name string, gender Gender) Character {
	if c.Gender != Male && c.Gender != Female {
		c.Gender = gender
	}
	if c.Name == "" {
		c.Name = name
	}
	return c
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
