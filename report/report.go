// Package report scores a finished playthrough and exports it as PDF.
package report

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"hidden_piece/story"
)

// Badge is an award for a tool that was put to use.
type Badge struct {
	ID    string
	Emoji string
	Name  string
}

var badges = []struct {
	badge Badge
	tools []string
}{
	{Badge{"communication", "🏅", "Badge of Communication"}, []string{story.ToolAAC}},
	{Badge{"care", "🛡️", "Shield of Care"}, []string{story.ToolHeadset}},
	{Badge{"promise", "⏰", "Clock of Promise"}, []string{story.ToolTimer}},
	{Badge{"cooperation", "💡", "Bulb of Cooperation"}, []string{story.ToolPECS}},
	{Badge{"prism", "🌈", "Prism Team"}, []string{story.ToolRibbon, story.ToolMap}},
}

// Report is the end-of-game summary of the high track.
type Report struct {
	Serial     string
	IssuedAt   time.Time
	Player     string
	NPC        string
	Stats      story.Stats
	PrismScore int
	Grade      string
	Accuracy   int
	Waiting    int
	ToolsUsed  int
	Badges     []Badge
	Journal    string
}

// Build scores state.
func Build(state story.GameState, journal string, now time.Time) Report {
	return Report{
		Serial:     uuid.NewString(),
		IssuedAt:   now,
		Player:     state.Player.Name,
		NPC:        state.NPC.Name,
		Stats:      state.Stats,
		PrismScore: PrismScore(state.Stats),
		Grade:      Grade(PrismScore(state.Stats)),
		Accuracy:   Accuracy(state.Logs),
		Waiting:    state.Logs.WaitingCount,
		ToolsUsed:  len(state.UsedTools),
		Badges:     Badges(state.UsedTools),
		Journal:    journal,
	}
}

// PrismScore is the rounded mean of the four stats.
func PrismScore(s story.Stats) int {
	return int(math.Round(float64(s.Total()) / float64(len(story.StatKeys))))
}

// Grade maps a prism score onto S, A, B or C.
func Grade(score int) string {
	switch {
	case score >= 80:
		return "S"
	case score >= 60:
		return "A"
	case score >= 40:
		return "B"
	}
	return "C"
}

// Accuracy is the share of tool clicks that solved a puzzle, in percent. With no
// clicks at all it is 100.
func Accuracy(l story.Logs) int {
	if l.ToolAttempts <= 0 {
		return 100
	}
	pct := int(math.Round(float64(l.ToolAccuracy) / float64(l.ToolAttempts) * 100))
	return min(100, max(0, pct))
}

// Badges lists the badges earned by the used tools.
func Badges(used []string) []Badge {
	var out []Badge
	for _, b := range badges {
		if slices.ContainsFunc(b.tools, func(id string) bool { return slices.Contains(used, id) }) {
			out = append(out, b.badge)
		}
	}
	return out
}

// Sticker is the feeling chosen on the low track certificate.
type Sticker struct {
	ID    string
	Emoji string
	Label string
}

var stickers = []Sticker{
	{"happy", "😊", "Happy"},
	{"proud", "😎", "Proud"},
	{"calm", "😌", "Calm"},
	{"surprised", "😲", "Amazed"},
}

// Stickers returns the selectable stickers.
func Stickers() []Sticker {
	return slices.Clone(stickers)
}

// LookupSticker finds a sticker by id.
func LookupSticker(id string) (Sticker, bool) {
	i := slices.IndexFunc(stickers, func(s Sticker) bool { return s.ID == id })
	if i < 0 {
		return Sticker{}, false
	}
	return stickers[i], true
}

// Certificate is the low track completion award.
type Certificate struct {
	Serial   string
	IssuedAt time.Time
	Player   string
	NPC      string
	Hearts   int
	Sticker  Sticker
}

// NewCertificate issues a certificate with the chosen sticker.
func NewCertificate(state story.GameState, stickerID string, now time.Time) (Certificate, error) {
	s, ok := LookupSticker(stickerID)
	if !ok {
		return Certificate{}, fmt.Errorf("unknown sticker %q", stickerID)
	}
	return Certificate{
		Serial:   uuid.NewString(),
		IssuedAt: now,
		Player:   state.Player.Name,
		NPC:      state.NPC.Name,
		Hearts:   state.Hearts,
		Sticker:  s,
	}, nil
}
