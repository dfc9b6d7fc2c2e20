// Package session owns the single game of a device and serializes every player
// event, timer callback and chat reply against it.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"hidden_piece/chat"
	"hidden_piece/dashboard"
	"hidden_piece/minigame"
	"hidden_piece/report"
	"hidden_piece/stage"
	"hidden_piece/story"
	"hidden_piece/transition"
)

var (
	ErrWrongStage     = errors.New("action not available on this screen")
	ErrBadMode        = errors.New("unknown grade mode")
	ErrNothingToSave  = errors.New("nothing to download yet")
	ErrUnknownSticker = errors.New("unknown sticker")
)

// Options configures a Manager.
type Options struct {
	TransitionMode  transition.Mode
	TransitionDelay time.Duration
	// Scheduler runs interstitial timers. Defaults to real timers.
	Scheduler transition.Scheduler
	// Chat generates researcher replies; nil shows the missing-key placeholder.
	Chat   chat.Generator
	Report report.Writer
	Now    func() time.Time
}

// Manager is the event loop of one device.
type Manager struct {
	mu sync.Mutex

	opts   Options
	store  *story.Store
	slot   *minigame.HandlerSlot
	router *dashboard.Router
	coord  *transition.Coordinator
	ctrl   *stage.Controller

	returnTo story.StageID
	conv     *chat.Conversation
	sticker  string
}

// NewManager restores the saved game from p and mounts its stage.
func NewManager(ctx context.Context, p story.Persister, opts Options) *Manager {
	if opts.Scheduler == nil {
		opts.Scheduler = transition.Clock
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := &Manager{
		opts:  opts,
		store: story.Open(ctx, p),
		slot:  &minigame.HandlerSlot{},
	}
	m.router = dashboard.NewRouter(m.store, m.slot)
	m.coord = m.newCoordinator()
	m.mount(m.store.State().CurrentStage)
	return m
}

func (m *Manager) newCoordinator() *transition.Coordinator {
	return transition.New(m.store, transition.Options{
		Mode:      m.opts.TransitionMode,
		Delay:     m.opts.TransitionDelay,
		Scheduler: lockedScheduler{m: m, inner: m.opts.Scheduler},
		OnCommit:  m.mount,
	})
}

// lockedScheduler runs timer callbacks inside the manager's lock.
type lockedScheduler struct {
	m     *Manager
	inner transition.Scheduler
}

func (s lockedScheduler) AfterFunc(d time.Duration, f func()) func() {
	return s.inner.AfterFunc(d, func() {
		s.m.mu.Lock()
		defer s.m.mu.Unlock()
		f()
	})
}

// mount tears down the current stage and starts the scripted stage id, if any.
// Callers hold mu.
func (m *Manager) mount(id story.StageID) {
	if m.ctrl != nil {
		m.ctrl.Close()
		m.ctrl = nil
	}
	m.slot.Clear()
	script, ok := stage.Lookup(id)
	if !ok {
		return
	}
	m.ctrl = stage.NewController(script, m.store, m.coord, m.slot)
}

func (m *Manager) at(ids ...story.StageID) error {
	cur := m.store.State().CurrentStage
	for _, id := range ids {
		if cur == id {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrWrongStage, cur)
}

// SelectMode picks the grade track. The low track also takes the partner's
// identity, since it has no prologue.
func (m *Manager) SelectMode(mode story.GradeMode, npc story.Character) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.at(story.StageModeSelect); err != nil {
		return err
	}
	switch mode {
	case story.GradeHigh:
		m.store.SetGradeMode(mode)
		m.coord.RequestStage(story.StagePrologue)
	case story.GradeLow:
		m.store.SetPlayer(story.Character{Name: story.DefaultPlayerName, Gender: story.Male})
		m.store.SetNPC(npc)
		m.store.SetGradeMode(mode)
		m.coord.RequestStage(story.StageLowIntro)
	default:
		return fmt.Errorf("%w: %q", ErrBadMode, mode)
	}
	return nil
}

// Setup records both characters on the prologue and starts stage 1.
func (m *Manager) Setup(player, npc story.Character) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.at(story.StagePrologue); err != nil {
		return err
	}
	m.store.SetPlayer(player)
	m.store.SetNPC(npc)
	m.coord.RequestStage(story.Stage1)
	return nil
}

// StartLowTrack leaves the low track intro.
func (m *Manager) StartLowTrack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.at(story.StageLowIntro); err != nil {
		return err
	}
	m.coord.RequestStage(story.StageLow1)
	return nil
}

func (m *Manager) withStage(f func(c *stage.Controller) bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctrl == nil {
		return false
	}
	if _, pending := m.coord.Pending(); pending {
		return false
	}
	return f(m.ctrl)
}

// Advance continues the dialogue on screen.
func (m *Manager) Advance() bool {
	return m.withStage((*stage.Controller).Advance)
}

// Choose picks a dialogue choice.
func (m *Manager) Choose(i int) bool {
	return m.withStage(func(c *stage.Controller) bool { return c.Choose(i) })
}

// MinigameInput routes a gesture to the minigame on screen.
func (m *Manager) MinigameInput(in minigame.Input) bool {
	return m.withStage(func(c *stage.Controller) bool { return c.MinigameInput(in) })
}

// ClickTool handles a toolbox click from the side panel.
func (m *Manager) ClickTool(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.router.Click(id)
}

// CommitTransition dismisses the interstitial.
func (m *Manager) CommitTransition() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.coord.Commit()
}

// OpenEncyclopedia shows the tool encyclopedia and remembers where to return.
func (m *Manager) OpenEncyclopedia() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.store.State().CurrentStage
	if cur == story.StageEncyclopedia {
		return nil
	}
	if _, pending := m.coord.Pending(); pending {
		return fmt.Errorf("%w: transition pending", ErrWrongStage)
	}
	m.returnTo = cur
	m.coord.RequestStage(story.StageEncyclopedia)
	return nil
}

// CloseEncyclopedia leaves the encyclopedia: to the ending once enough tools have
// been used, otherwise back to where it was opened.
func (m *Manager) CloseEncyclopedia() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.at(story.StageEncyclopedia); err != nil {
		return err
	}
	m.coord.RequestStage(m.encyclopediaExit())
	return nil
}

func (m *Manager) encyclopediaExit() story.StageID {
	if m.store.State().ReadyForEnding() {
		return story.StageEnding
	}
	if m.returnTo == "" || m.returnTo == story.StageEncyclopedia {
		return story.DefaultStage
	}
	return m.returnTo
}

// Reset wipes the game when confirmed.
func (m *Manager) Reset(confirmed bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.store.Reset(story.ConfirmFunc(func(string) bool { return confirmed })) {
		return false
	}
	m.coord.Close()
	m.coord = m.newCoordinator()
	m.returnTo = ""
	m.conv = nil
	m.sticker = ""
	m.mount(m.store.State().CurrentStage)
	log.Println("session: game reset")
	return true
}

func (m *Manager) conversation() *chat.Conversation {
	if m.conv == nil {
		m.conv = chat.New(m.opts.Chat, m.store.State())
	}
	return m.conv
}

// SaveJournal stores the reflection journal on the ending screen.
func (m *Manager) SaveJournal(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.at(story.StageEnding); err != nil {
		return err
	}
	m.conversation().SetJournal(text)
	return nil
}

// Chat sends a message to the researcher. The reply is generated outside the
// event loop so the rest of the game stays responsive.
func (m *Manager) Chat(ctx context.Context, text string) (chat.Message, error) {
	m.mu.Lock()
	if err := m.at(story.StageEnding); err != nil {
		m.mu.Unlock()
		return chat.Message{}, err
	}
	conv := m.conversation()
	m.mu.Unlock()
	return conv.Send(ctx, text)
}

// ChooseSticker picks the feeling shown on the low track certificate.
func (m *Manager) ChooseSticker(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.at(story.StageLowEnding); err != nil {
		return err
	}
	if _, ok := report.LookupSticker(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSticker, id)
	}
	m.sticker = id
	return nil
}

// Download writes the mission report or the certificate and returns its file name.
func (m *Manager) Download(out io.Writer) (string, error) {
	m.mu.Lock()
	state := m.store.State()
	var journal string
	if m.conv != nil {
		journal = m.conv.Journal()
	}
	sticker := m.sticker
	m.mu.Unlock()

	now := m.opts.Now()
	switch state.CurrentStage {
	case story.StageEnding:
		if err := m.opts.Report.WriteReport(out, report.Build(state, journal, now)); err != nil {
			return "", err
		}
		return "prism_report.pdf", nil
	case story.StageLowEnding:
		if sticker == "" {
			return "", ErrNothingToSave
		}
		c, err := report.NewCertificate(state, sticker, now)
		if err != nil {
			return "", err
		}
		if err := m.opts.Report.WriteCertificate(out, c); err != nil {
			return "", err
		}
		return "sprout_agent_certificate.pdf", nil
	}
	return "", ErrNothingToSave
}

// Snapshot is a consistent read of everything a screen shows.
type Snapshot struct {
	State           story.GameState
	Names           stage.Names
	Stage           *stage.View
	Progress        string
	Pending         story.StageID
	TransitionMode  transition.Mode
	TransitionDelay time.Duration
	Interstitials   int
	Chat            []chat.Message
	ChatBusy        bool
	ChatEnabled     bool
	Journal         string
	Sticker         string
	Report          *report.Report
}

// Snapshot reads the current screen.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	state := m.store.State()
	s := Snapshot{
		State:           state,
		Names:           stage.Names{Player: state.Player.Name, NPC: state.NPC.Name},
		TransitionMode:  m.coord.Mode(),
		TransitionDelay: m.coord.Delay(),
		Interstitials:   m.coord.Shown(),
		ChatEnabled:     m.opts.Chat != nil,
		Sticker:         m.sticker,
	}
	s.Pending, _ = m.coord.Pending()
	if m.ctrl != nil {
		v := m.ctrl.View(s.Names)
		s.Stage = &v
		if g := m.ctrl.Game(); g != nil {
			s.Progress = minigame.Progress(g)
		}
	}
	if m.conv != nil {
		s.Chat = m.conv.Messages()
		s.ChatBusy = m.conv.Busy()
		s.Journal = m.conv.Journal()
	}
	if state.CurrentStage == story.StageEnding {
		if s.Chat == nil {
			s.Chat = m.conversation().Messages()
		}
		r := report.Build(state, s.Journal, m.opts.Now())
		s.Report = &r
	}
	return s
}

// Close stops pending timers and the mounted stage.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coord.Close()
	if m.ctrl != nil {
		m.ctrl.Close()
		m.ctrl = nil
	}
}
