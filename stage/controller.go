package stage

import (
	"log"

	"hidden_piece/minigame"
	"hidden_piece/story"
)

// Requester receives the controller's single stage-change request.
type Requester interface {
	RequestStage(id story.StageID) bool
}

// Controller drives one mounted stage. It is created fresh on mount, enters step 0
// immediately, and stops accepting input once it has requested a stage change or
// has been closed. Controller is not safe for concurrent use.
type Controller struct {
	script   *Script
	store    Mutator
	requests Requester
	slot     *minigame.HandlerSlot

	step     StepID
	scene    Scene
	resolved bool
	done     bool
	closed   bool

	game    minigame.Game
	entry   uint64
	release func()
}

// NewController mounts script. The stage's entry effects and the effects of step 0
// are applied before it returns.
func NewController(script *Script, store Mutator, requests Requester, slot *minigame.HandlerSlot) *Controller {
	c := &Controller{
		script:   script,
		store:    store,
		requests: requests,
		slot:     slot,
		scene:    script.Initial,
	}
	apply(script.OnEnter, store, &c.scene)
	c.enter(0)
	return c
}

// Stage returns the id of the mounted stage.
func (c *Controller) Stage() story.StageID { return c.script.Stage }

// Step returns the current step pointer.
func (c *Controller) Step() StepID { return c.step }

// Scene returns the current presentation state.
func (c *Controller) Scene() Scene { return c.scene }

// Done reports whether the stage has requested its transition.
func (c *Controller) Done() bool { return c.done }

// Game returns the minigame on screen, or nil.
func (c *Controller) Game() minigame.Game { return c.game }

func (c *Controller) accepting() bool {
	return !c.closed && !c.done && !c.resolved
}

func (c *Controller) current() (Step, bool) {
	s, ok := c.script.Steps[c.step]
	return s, ok
}

func (c *Controller) enter(id StepID) {
	c.teardownGame()
	step, ok := c.script.Steps[id]
	if !ok {
		log.Printf("stage %s: step %d does not exist", c.script.Stage, id)
		c.done = true
		return
	}
	c.step = id
	c.resolved = false
	c.entry++
	apply(step.Effects, c.store, &c.scene)
	if step.Minigame != nil {
		c.spawn(step.Minigame)
	}
}

func (c *Controller) spawn(ms *MinigameStep) {
	game, ok := minigame.Build(ms.Spec, c.OnComplete())
	if !ok {
		log.Printf("stage %s: unknown minigame %q", c.script.Stage, ms.Spec.Kind)
		return
	}
	c.game = game
	if c.slot != nil {
		c.release = c.slot.Bind(c.UseTool)
	}
}

func (c *Controller) teardownGame() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
	c.game = nil
}

// OnComplete returns the completion callback for the step currently on screen.
// The callback is a no-op once that step has been left or the stage is done.
func (c *Controller) OnComplete() func() {
	entry := c.entry
	return func() { c.finishMinigame(entry) }
}

func (c *Controller) finishMinigame(entry uint64) bool {
	if entry != c.entry || !c.accepting() {
		return false
	}
	step, ok := c.current()
	if !ok || step.Minigame == nil {
		return false
	}
	c.resolved = true
	effects := step.Minigame.OnComplete
	if c.claimed(step.Minigame) {
		effects = withoutRewards(effects)
	}
	apply(effects, c.store, &c.scene)
	c.enter(step.Minigame.Next)
	return true
}

// claimed reports whether the tool a minigame pays out for was already used, so
// a replay after remounting the stage earns nothing.
func (c *Controller) claimed(ms *MinigameStep) bool {
	ids := []string{ms.Spec.Tool}
	for _, e := range ms.OnComplete {
		if e.kind == effectUse {
			ids = append(ids, e.tool)
		}
	}
	for _, id := range ids {
		if id != "" && c.store.ToolUsed(id) {
			return true
		}
	}
	return false
}

// CompleteMinigame reports success of the minigame on screen.
func (c *Controller) CompleteMinigame() bool {
	return c.finishMinigame(c.entry)
}

// Advance continues past a plain dialogue line, or issues the stage-change request
// on a terminal step.
func (c *Controller) Advance() bool {
	if !c.accepting() {
		return false
	}
	step, ok := c.current()
	if !ok {
		return false
	}
	switch step.rule() {
	case ruleAdvance:
		c.resolved = true
		c.enter(step.Next)
		return true
	case ruleTerminal:
		c.resolved = true
		c.done = true
		c.teardownGame()
		if c.requests != nil {
			c.requests.RequestStage(step.Transition)
		}
		return true
	}
	return false
}

// Choose picks the i-th choice of the current step. Only the first pick of an
// entered step counts.
func (c *Controller) Choose(i int) bool {
	if !c.accepting() {
		return false
	}
	step, ok := c.current()
	if !ok || step.rule() != ruleChoice || i < 0 || i >= len(step.Choices) {
		return false
	}
	c.resolved = true
	choice := step.Choices[i]
	apply(choice.Effects, c.store, &c.scene)
	c.enter(choice.Next)
	return true
}

// MinigameInput routes a gesture into the minigame on screen.
func (c *Controller) MinigameInput(in minigame.Input) bool {
	if !c.accepting() || c.game == nil {
		return false
	}
	return c.game.Handle(in)
}

// UseTool passes a side-panel tool click to the minigame on screen.
func (c *Controller) UseTool(id string) bool {
	if !c.accepting() || c.game == nil {
		return false
	}
	return c.game.ReceiveTool(id)
}

// Close tears the stage down. Every later event is ignored.
func (c *Controller) Close() {
	c.closed = true
	c.teardownGame()
}

// View is what the presentation layer needs to draw the current step.
type View struct {
	Stage      story.StageID
	Title      string
	Subtitle   string
	Step       StepID
	Speaker    string
	Text       string
	Choices    []string
	CanAdvance bool
	Minigame   minigame.Kind
	Scene      Scene
	Done       bool
}

// View renders the current step with the character names filled in.
func (c *Controller) View(n Names) View {
	v := View{
		Stage:    c.script.Stage,
		Title:    c.script.Title,
		Subtitle: c.script.Subtitle,
		Step:     c.step,
		Scene:    c.scene,
		Done:     c.done,
	}
	step, ok := c.current()
	if !ok {
		return v
	}
	v.Speaker = n.Render(step.Speaker)
	v.Text = n.Render(step.Text)
	if c.done || c.closed {
		return v
	}
	switch step.rule() {
	case ruleChoice:
		for _, ch := range step.Choices {
			v.Choices = append(v.Choices, n.Render(ch.Label))
		}
	case ruleAdvance, ruleTerminal:
		v.CanAdvance = true
	}
	if c.game != nil {
		v.Minigame = c.game.Kind()
	}
	return v
}
