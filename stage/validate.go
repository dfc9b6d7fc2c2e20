package stage

import (
	"errors"
	"fmt"
	"slices"

	"hidden_piece/minigame"
	"hidden_piece/story"
)

// Validate checks that a script is a well-formed state machine: step 0 exists, each
// step has one transition rule whose successors exist, every step is reachable,
// every step can still reach a terminal step, and every tool, minigame and target
// stage it names is known.
func Validate(s *Script) error {
	if s == nil {
		return errors.New("nil script")
	}
	if !s.Stage.Valid() {
		return fmt.Errorf("script stage %q is not in the stage graph", s.Stage)
	}
	if _, ok := s.Steps[0]; !ok {
		return fmt.Errorf("%s: missing initial step 0", s.Stage)
	}
	var errs []error
	for _, id := range toolsOf(s.OnEnter) {
		errs = append(errs, fmt.Errorf("%s: on-enter effect names unknown tool %q", s.Stage, id))
	}

	ids := sortedIDs(s)
	for _, id := range ids {
		step := s.Steps[id]
		if err := validateStep(s, id, step); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	reachable := walk(s, []StepID{0}, successors)
	for _, id := range ids {
		if !reachable[id] {
			errs = append(errs, fmt.Errorf("%s: step %d is unreachable", s.Stage, id))
		}
	}

	var terminals []StepID
	for _, id := range ids {
		if s.Steps[id].rule() == ruleTerminal {
			terminals = append(terminals, id)
		}
	}
	if len(terminals) == 0 {
		errs = append(errs, fmt.Errorf("%s: no terminal step", s.Stage))
	}
	finishing := walk(s, terminals, predecessors(s))
	for _, id := range ids {
		if reachable[id] && !finishing[id] {
			errs = append(errs, fmt.Errorf("%s: step %d can never reach a stage transition", s.Stage, id))
		}
	}
	return errors.Join(errs...)
}

func validateStep(s *Script, id StepID, step Step) error {
	var errs []error
	rules := 0
	if len(step.Choices) > 0 {
		rules++
	}
	if step.Minigame != nil {
		rules++
	}
	if step.Transition != "" {
		rules++
	}
	if rules > 1 {
		errs = append(errs, fmt.Errorf("%s: step %d has more than one transition rule", s.Stage, id))
	}
	if step.Text == "" {
		errs = append(errs, fmt.Errorf("%s: step %d has no text", s.Stage, id))
	}
	for _, next := range successors(s, id) {
		if _, ok := s.Steps[next]; !ok {
			errs = append(errs, fmt.Errorf("%s: step %d points at missing step %d", s.Stage, id, next))
		}
	}
	if step.Transition != "" && !step.Transition.Valid() {
		errs = append(errs, fmt.Errorf("%s: step %d transitions to unknown stage %q", s.Stage, id, step.Transition))
	}
	effects := slices.Clone(step.Effects)
	for _, ch := range step.Choices {
		if ch.Label == "" {
			errs = append(errs, fmt.Errorf("%s: step %d has an unlabeled choice", s.Stage, id))
		}
		effects = append(effects, ch.Effects...)
	}
	if mg := step.Minigame; mg != nil {
		if !minigame.Known(mg.Spec.Kind) {
			errs = append(errs, fmt.Errorf("%s: step %d uses unknown minigame %q", s.Stage, id, mg.Spec.Kind))
		}
		if mg.Spec.Tool != "" && !story.KnownTool(mg.Spec.Tool) {
			errs = append(errs, fmt.Errorf("%s: step %d minigame waits for unknown tool %q", s.Stage, id, mg.Spec.Tool))
		}
		effects = append(effects, mg.OnComplete...)
	}
	for _, tool := range toolsOf(effects) {
		errs = append(errs, fmt.Errorf("%s: step %d names unknown tool %q", s.Stage, id, tool))
	}
	return errors.Join(errs...)
}

func toolsOf(effects []Effect) []string {
	var unknown []string
	for _, id := range tools(effects) {
		if !story.KnownTool(id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}

func successors(s *Script, id StepID) []StepID {
	step := s.Steps[id]
	switch step.rule() {
	case ruleAdvance:
		return []StepID{step.Next}
	case ruleChoice:
		out := make([]StepID, 0, len(step.Choices))
		for _, ch := range step.Choices {
			out = append(out, ch.Next)
		}
		return out
	case ruleMinigame:
		return []StepID{step.Minigame.Next}
	}
	return nil
}

func predecessors(s *Script) func(*Script, StepID) []StepID {
	back := map[StepID][]StepID{}
	for id := range s.Steps {
		for _, next := range successors(s, id) {
			back[next] = append(back[next], id)
		}
	}
	return func(_ *Script, id StepID) []StepID { return back[id] }
}

func walk(s *Script, from []StepID, next func(*Script, StepID) []StepID) map[StepID]bool {
	seen := map[StepID]bool{}
	queue := slices.Clone(from)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		if _, ok := s.Steps[id]; !ok {
			continue
		}
		seen[id] = true
		queue = append(queue, next(s, id)...)
	}
	return seen
}

func sortedIDs(s *Script) []StepID {
	ids := make([]StepID, 0, len(s.Steps))
	for id := range s.Steps {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
