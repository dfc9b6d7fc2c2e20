package story

import (
	"context"
	"log"
	"strings"
)

// ResetPrompt is the question asked before progress is wiped.
const ResetPrompt = "All progress will be reset. Continue?"

// Confirmer answers a blocking yes/no prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Store owns the single GameState of a device. Every mutation is total: malformed
// input is ignored, and the snapshot is persisted right after each change.
// Store is not safe for concurrent use; callers serialize access.
type Store struct {
	state   GameState
	persist Persister
}

// Open restores the saved snapshot, or starts a new game when nothing usable is saved.
func Open(ctx context.Context, p Persister) *Store {
	s := &Store{state: DefaultState(), persist: p}
	if p == nil {
		return s
	}
	data, err := p.Load(ctx)
	if err != nil {
		log.Printf("story: load snapshot: %v; starting a new game", err)
		return s
	}
	if len(data) == 0 {
		return s
	}
	state, err := Decode(data)
	if err != nil {
		log.Printf("story: %v; starting a new game", err)
		return s
	}
	s.state = state
	return s
}

// State returns a copy of the current snapshot.
func (s *Store) State() GameState {
	return s.state.Clone()
}

func (s *Store) save() {
	if s.persist == nil {
		return
	}
	data, err := Encode(s.state)
	if err != nil {
		log.Printf("story: %v", err)
		return
	}
	if err := s.persist.Save(context.Background(), data); err != nil {
		log.Printf("story: save snapshot: %v", err)
	}
}

// SetStage overwrites the current stage. Unknown ids are ignored.
func (s *Store) SetStage(id StageID) {
	if !id.Valid() || s.state.CurrentStage == id {
		return
	}
	s.state.CurrentStage = id
	s.save()
}

// AdjustStat adds delta to a stat and clamps the result to [StatMin, StatMax].
func (s *Store) AdjustStat(key StatKey, delta int) {
	p := s.state.Stats.field(key)
	if p == nil {
		return
	}
	next := clamp(*p + delta)
	if next == *p {
		return
	}
	*p = next
	s.save()
}

// AddInventoryItem grants a tool and unlocks its encyclopedia entry.
func (s *Store) AddInventoryItem(id string) {
	if !KnownTool(id) || s.state.HasTool(id) {
		return
	}
	s.state.Inventory = append(s.state.Inventory, id)
	if !s.state.Unlocked(id) {
		s.state.EncyclopediaUnlocked = append(s.state.EncyclopediaUnlocked, id)
	}
	s.save()
}

// MarkToolUsed records that a tool was applied in a minigame.
func (s *Store) MarkToolUsed(id string) {
	if !KnownTool(id) || s.state.ToolUsed(id) {
		return
	}
	s.state.UsedTools = append(s.state.UsedTools, id)
	s.save()
}

// ToolUsed reports whether a tool has already been applied in a minigame.
func (s *Store) ToolUsed(id string) bool { return s.state.ToolUsed(id) }

// IncrementLog bumps a report counter.
func (s *Store) IncrementLog(name LogName) {
	switch name {
	case LogWaiting:
		s.state.Logs.WaitingCount++
	case LogToolAccuracy:
		s.state.Logs.ToolAccuracy++
	case LogToolAttempts:
		s.state.Logs.ToolAttempts++
	default:
		return
	}
	s.save()
}

// SetStressGauge sets the NPC distress meter. Display code clamps it.
func (s *Store) SetStressGauge(v int) {
	if s.state.StressGauge == v {
		return
	}
	s.state.StressGauge = v
	s.save()
}

// AddHeart awards one heart on the low track.
func (s *Store) AddHeart() {
	s.state.Hearts++
	s.save()
}

// SetPlayer records the player's identity from the setup screen.
func (s *Store) SetPlayer(c Character) {
	c.Name = strings.TrimSpace(c.Name)
	s.state.Player = normalizeCharacter(c, DefaultPlayerName, s.state.Player.Gender)
	s.save()
}

// SetNPC records the partner's identity from the setup screen.
func (s *Store) SetNPC(c Character) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Gender != Male && c.Gender != Female {
		c.Gender = s.state.NPC.Gender
	}
	s.state.NPC = normalizeCharacter(c, DefaultNPCName(c.Gender), c.Gender)
	s.save()
}

// SetGradeMode picks the stage track. It can only be chosen once per playthrough.
func (s *Store) SetGradeMode(m GradeMode) {
	if s.state.GradeMode != GradeNone {
		return
	}
	if m != GradeLow && m != GradeHigh {
		return
	}
	s.state.GradeMode = m
	s.save()
}

// Reset wipes all progress once c confirms. A nil confirmer or a declined prompt
// leaves everything untouched. It reports whether the reset happened.
func (s *Store) Reset(c Confirmer) bool {
	if c == nil || !c.Confirm(ResetPrompt) {
		return false
	}
	if s.persist != nil {
		if err := s.persist.Clear(context.Background()); err != nil {
			log.Printf("story: clear snapshot: %v", err)
		}
	}
	s.state = DefaultState()
	return true
}
