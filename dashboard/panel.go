// Package dashboard builds the side panel: the four stats, the current stage and
// the toolbox whose clicks are routed to the minigame on screen.
package dashboard

import (
	"hidden_piece/i18n"
	"hidden_piece/minigame"
	"hidden_piece/story"
)

// Stat is one bar of the stat chart.
type Stat struct {
	Key   story.StatKey
	Label string
	Value int
}

// ToolTile is one toolbox entry.
type ToolTile struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Used  bool
}

// Panel is the side panel view model.
type Panel struct {
	Stage      story.StageID
	StageLabel string
	Stats      []Stat
	Stress     int
	Tools      []ToolTile
	Hearts     int
	Grade      story.GradeMode
}

// Build reads the side panel from state.
func Build(state story.GameState, loc i18n.Localizer) Panel {
	p := Panel{
		Stage:      state.CurrentStage,
		StageLabel: i18n.StageName(loc, state.CurrentStage),
		Stress:     min(100, max(0, state.StressGauge)),
		Hearts:     state.Hearts,
		Grade:      state.GradeMode,
	}
	for _, key := range story.StatKeys {
		v, _ := state.Stats.Get(key)
		p.Stats = append(p.Stats, Stat{Key: key, Label: i18n.T(loc, "stat."+string(key)), Value: v})
	}
	for _, id := range state.Inventory {
		t, ok := story.LookupTool(id)
		if !ok {
			continue
		}
		p.Tools = append(p.Tools, ToolTile{
			ID:    id,
			Name:  i18n.ToolName(loc, id),
			Icon:  t.Icon,
			Color: t.Color,
			Used:  state.ToolUsed(id),
		})
	}
	return p
}

// Source is the part of the game state store the router needs.
type Source interface {
	State() story.GameState
	IncrementLog(name story.LogName)
}

// Router forwards toolbox clicks to whichever minigame holds the slot.
type Router struct {
	store Source
	slot  *minigame.HandlerSlot
}

// NewRouter returns a router reading from store and invoking slot.
func NewRouter(store Source, slot *minigame.HandlerSlot) *Router {
	return &Router{store: store, slot: slot}
}

// Click handles a click on a toolbox tile. Tools that are not owned or already
// used are ignored; any other click counts as an attempt whether or not a
// minigame takes it. It reports whether a minigame accepted the tool.
func (r *Router) Click(id string) bool {
	st := r.store.State()
	if !st.HasTool(id) || st.ToolUsed(id) {
		return false
	}
	r.store.IncrementLog(story.LogToolAttempts)
	return r.slot.Invoke(id)
}
