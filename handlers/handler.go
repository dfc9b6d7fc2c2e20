// Package handlers exposes the game over HTTP. Every action is a form POST that
// redirects back to the page.
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"hidden_piece/chat"
	"hidden_piece/i18n"
	"hidden_piece/minigame"
	"hidden_piece/session"
	"hidden_piece/story"
	"hidden_piece/templates"
)

const pageTitle = "Hidden Piece"

type Handler struct {
	Manager *session.Manager
	// Lang is used when the request carries no language preference.
	Lang language.Tag
}

// Register adds the game routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /mode", h.SelectMode)
	mux.HandleFunc("POST /setup", h.Setup)
	mux.HandleFunc("POST /low/start", h.StartLowTrack)
	mux.HandleFunc("POST /advance", h.Advance)
	mux.HandleFunc("POST /choice", h.Choose)
	mux.HandleFunc("POST /minigame", h.Minigame)
	mux.HandleFunc("POST /tool", h.Tool)
	mux.HandleFunc("POST /transition/commit", h.CommitTransition)
	mux.HandleFunc("POST /encyclopedia/open", h.OpenEncyclopedia)
	mux.HandleFunc("POST /encyclopedia/close", h.CloseEncyclopedia)
	mux.HandleFunc("POST /reset", h.Reset)
	mux.HandleFunc("POST /journal", h.Journal)
	mux.HandleFunc("POST /chat", h.Chat)
	mux.HandleFunc("POST /sticker", h.Sticker)
	mux.HandleFunc("GET /download", h.Download)
}

// displayLanguage picks the display language and remembers an explicit choice.
func (h *Handler) displayLanguage(w http.ResponseWriter, r *http.Request) language.Tag {
	fallback := h.Lang
	if fallback == language.Und {
		fallback = i18n.Default()
	}
	tag, persist := i18n.ResolveTag(r, fallback)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return tag
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	tag := h.displayLanguage(w, r)
	snap := h.Manager.Snapshot()
	if err := templates.Index(pageTitle, snap, tag).Render(r.Context(), w); err != nil {
		log.Printf("render %s: %v", snap.State.CurrentStage, err)
	}
}

func back(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// fail maps a session error to a response.
func fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrWrongStage):
		status = http.StatusConflict
	case errors.Is(err, session.ErrBadMode), errors.Is(err, session.ErrUnknownSticker), errors.Is(err, chat.ErrEmpty):
		status = http.StatusBadRequest
	case errors.Is(err, chat.ErrBusy):
		status = http.StatusTooManyRequests
	case errors.Is(err, session.ErrNothingToSave):
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}

func respond(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		fail(w, err)
		return
	}
	back(w, r)
}

func character(r *http.Request, prefix string) story.Character {
	return story.Character{
		Name:   strings.TrimSpace(r.FormValue(prefix + "_name")),
		Gender: story.Gender(r.FormValue(prefix + "_gender")),
	}
}

func (h *Handler) SelectMode(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.Manager.SelectMode(story.GradeMode(r.FormValue("mode")), character(r, "npc")))
}

func (h *Handler) Setup(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.Manager.Setup(character(r, "player"), character(r, "npc")))
}

func (h *Handler) StartLowTrack(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.Manager.StartLowTrack())
}

// Stage actions that do not apply right now are ignored; the page simply
// reloads in its current state.

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	h.Manager.Advance()
	back(w, r)
}

func (h *Handler) Choose(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(r.FormValue("choice"))
	if err != nil {
		http.Error(w, "invalid choice", http.StatusBadRequest)
		return
	}
	h.Manager.Choose(i)
	back(w, r)
}

// formInt reads an optional integer field.
func formInt(r *http.Request, key string) (int, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func (h *Handler) Minigame(w http.ResponseWriter, r *http.Request) {
	in := minigame.Input{
		Action: r.FormValue("action"),
		Target: strings.TrimSpace(r.FormValue("target")),
		To:     strings.TrimSpace(r.FormValue("to")),
	}
	var err error
	for key, dst := range map[string]*int{"value": &in.Value, "x": &in.X, "y": &in.Y} {
		if *dst, err = formInt(r, key); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	h.Manager.MinigameInput(in)
	back(w, r)
}

func (h *Handler) Tool(w http.ResponseWriter, r *http.Request) {
	h.Manager.ClickTool(r.FormValue("tool"))
	back(w, r)
}

func (h *Handler) CommitTransition(w http.ResponseWriter, r *http.Request) {
	h.Manager.CommitTransition()
	back(w, r)
}

func (h *Handler) OpenEncyclopedia(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.Manager.OpenEncyclopedia())
}

func (h *Handler) CloseEncyclopedia(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.Manager.CloseEncyclopedia())
}

// Reset asks for confirmation first. Only an answer of yes from the
// confirmation page wipes the game.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	switch r.FormValue("confirm") {
	case "":
		if err := templates.ResetConfirm(pageTitle, h.displayLanguage(w, r)).Render(r.Context(), w); err != nil {
			log.Printf("render reset confirmation: %v", err)
		}
		return
	case "yes":
		h.Manager.Reset(true)
	}
	back(w, r)
}

func (h *Handler) Journal(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.Manager.SaveJournal(r.FormValue("journal")))
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	_, err := h.Manager.Chat(r.Context(), r.FormValue("message"))
	respond(w, r, err)
}

func (h *Handler) Sticker(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.Manager.ChooseSticker(r.FormValue("sticker")))
}

// Download sends the report or certificate PDF for the current ending.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	name, err := h.Manager.Download(&buf)
	if err != nil {
		fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("download %s: %v", name, err)
	}
}
