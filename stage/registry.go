package stage

import (
	"errors"

	"hidden_piece/story"
)

var scripts = map[story.StageID]*Script{
	story.Stage1:    stage1,
	story.Stage2:    stage2,
	story.Stage3:    stage3,
	story.Stage4:    stage4,
	story.Stage5:    stage5,
	story.Stage6:    stage6,
	story.StageLow1: lowStage1,
	story.StageLow2: lowStage2,
	story.StageLow3: lowStage3,
	story.StageLow4: lowStage4,
}

// Lookup returns the script for a scripted stage. Screens such as the prologue,
// the encyclopedia and the endings have no script.
func Lookup(id story.StageID) (*Script, bool) {
	s, ok := scripts[id]
	return s, ok
}

// All returns every script in stage graph order.
func All() []*Script {
	var out []*Script
	for _, id := range story.Stages() {
		if s, ok := scripts[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// ValidateAll validates every registered script.
func ValidateAll() error {
	var errs []error
	for _, s := range All() {
		errs = append(errs, Validate(s))
	}
	return errors.Join(errs...)
}
