package templates

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"hidden_piece/dashboard"
	"hidden_piece/i18n"
	"hidden_piece/minigame"
	"hidden_piece/report"
	"hidden_piece/session"
	"hidden_piece/story"
	"hidden_piece/transition"
)

// StressStatus describes the partner's distress level and its corresponding color.
type StressStatus struct {
	Description string
	Color       string
}

// GetStressStatus returns a StressStatus for a stress gauge value.
func GetStressStatus(stress int) StressStatus {
	switch {
	case stress >= 80:
		return StressStatus{"Overwhelmed", "#f92672"} // Pink/Red
	case stress >= 50:
		return StressStatus{"Upset", "#fd971f"} // Orange
	case stress >= 20:
		return StressStatus{"Uneasy", "#e6db74"} // Yellow
	default:
		return StressStatus{"Calm", "#a6e22e"} // Lime Green
	}
}

// FormatList joins labels for display.
func FormatList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return strings.Join(items, ", ")
}

// VignetteStyle generates a CSS style for the screen tint of a scene. Stress
// deepens the tint.
func VignetteStyle(vignette string, stress int) string {
	if vignette == "" {
		return ""
	}
	stress = min(100, max(0, stress))
	opacity := 0.2 + float64(stress)/250.0 // Scale opacity from 0.2 to 0.6
	spread := stress / 2
	blur := 40 + stress/2

	color := "0,0,0"
	if vignette == "red" {
		color = "220,38,38"
	}

	return fmt.Sprintf(`
		<style>
			#stage-container::before {
				content: '';
				position: absolute;
				top: 0;
				left: 0;
				right: 0;
				bottom: 0;
				box-shadow: inset 0 0 %dpx %dpx rgba(%s,%.2f);
				transition: box-shadow 0.5s ease-in-out;
				pointer-events: none;
				border-radius: 8px;
			}
		</style>
	`, blur, spread, color, opacity)
}

// refreshAfter is the meta refresh delay of a timer-mode interstitial, or empty
// when the page should not refresh by itself.
func refreshAfter(snap session.Snapshot) string {
	if snap.Pending == "" || snap.TransitionMode != transition.ModeTimer {
		return ""
	}
	return strconv.Itoa(max(1, int(math.Ceil(snap.TransitionDelay.Seconds()))))
}

// stressLine labels the stress meter, e.g. "Stress: Upset (60)".
func stressLine(p dashboard.Panel, loc i18n.Localizer) string {
	status := GetStressStatus(p.Stress)
	level := i18n.T(loc, "stress."+strings.ToLower(status.Description))
	return i18n.T(loc, "ui.stress_line", i18n.T(loc, "ui.stress"), level, p.Stress)
}

var genders = []story.Gender{story.Female, story.Male}

// setupName pre-fills the name field unless the name is the placeholder default.
func setupName(name string) string {
	if name == story.DefaultPlayerName {
		return ""
	}
	return name
}

// label translates key, or returns fallback when no translation exists.
func label(loc i18n.Localizer, key, fallback string) string {
	if s := i18n.T(loc, key); s != key {
		return s
	}
	return fallback
}

func badgeNames(badges []report.Badge, loc i18n.Localizer) []string {
	names := make([]string, 0, len(badges))
	for _, b := range badges {
		names = append(names, b.Emoji+" "+label(loc, "badge."+b.ID, b.Name))
	}
	return names
}

func stickerLabel(s report.Sticker, loc i18n.Localizer) string {
	return s.Emoji + " " + label(loc, "sticker."+s.ID, s.Label)
}

// gesture is one minigame form: the action it posts and the fields it asks for.
type gesture struct {
	action string
	fields []string
}

var gestures = map[minigame.Kind][]gesture{
	minigame.KindSequence: {{minigame.ActionPlace, []string{"target", "value"}}, {minigame.ActionClear, []string{"value"}}},
	minigame.KindVolume:   {{minigame.ActionSet, []string{"value"}}},
	minigame.KindDial:     {{minigame.ActionWind, []string{"value"}}, {minigame.ActionRelease, nil}},
	minigame.KindBreath:   {{minigame.ActionSqueeze, nil}},
	minigame.KindMosaic:   {{minigame.ActionRotate, nil}, {minigame.ActionDrop, []string{"value"}}},
	minigame.KindScratch:  {{minigame.ActionScrub, []string{"value"}}, {minigame.ActionClick, []string{"x", "y"}}},
	minigame.KindWire:     {{minigame.ActionConnect, []string{"target", "to"}}},
	minigame.KindTap:      {{minigame.ActionTap, nil}},
}

type langOption struct {
	Code    string
	Name    string
	Current bool
}

// languages lists the language switcher entries, each named in its own language.
func languages(current language.Tag) []langOption {
	var out []langOption
	for _, tag := range i18n.Supported() {
		out = append(out, langOption{
			Code:    tag.String(),
			Name:    display.Self.Name(tag),
			Current: tag == current,
		})
	}
	return out
}
