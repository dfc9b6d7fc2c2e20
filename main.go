package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"hidden_piece/chat"
	"hidden_piece/config"
	"hidden_piece/handlers"
	"hidden_piece/report"
	"hidden_piece/session"
	"hidden_piece/storage"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if at, ok, err := db.UpdatedAt(ctx); err != nil {
		log.Printf("Could not read save time: %v", err)
	} else if ok {
		log.Printf("Resuming game saved at %s", at.Format(time.RFC3339))
	}

	opts := session.Options{
		TransitionMode:  cfg.Mode(),
		TransitionDelay: cfg.TransitionDelay,
		Report:          report.Writer{FontFile: cfg.PDFFont},
	}
	if cfg.ChatEnabled() {
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			log.Fatal(err)
		}
		defer client.Close()
		opts.Chat = chat.NewGemini(client, cfg.Model)
	} else {
		log.Println("GEMINI_API_KEY not set; the researcher chat is disabled")
	}

	manager := session.NewManager(ctx, db, opts)
	defer manager.Close()

	h := &handlers.Handler{Manager: manager, Lang: cfg.Language()}
	mux := http.NewServeMux()
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		fs := http.FileServer(http.Dir(cfg.StaticDir))
		mux.Handle("/static/", http.StripPrefix("/static/", fs))
	}
	h.Register(mux)

	log.Printf("Listening on http://%s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}
