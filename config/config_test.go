package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"hidden_piece/transition"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "0.0.0.0:9779" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.Mode() != transition.ModeTap {
		t.Errorf("mode = %q; want tap", cfg.Mode())
	}
	if cfg.TransitionDelay != 2500*time.Millisecond {
		t.Errorf("delay = %s", cfg.TransitionDelay)
	}
	if cfg.Language() != language.Korean {
		t.Errorf("language = %s; want ko", cfg.Language())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HIDDEN_PIECE_TRANSITION_MODE", "timer")
	t.Setenv("HIDDEN_PIECE_TRANSITION_DELAY", "4s")
	t.Setenv("HIDDEN_PIECE_LANG", "en")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode() != transition.ModeTimer || cfg.TransitionDelay != 4*time.Second {
		t.Errorf("mode=%q delay=%s", cfg.Mode(), cfg.TransitionDelay)
	}
	if cfg.Language() != language.English || !cfg.ChatEnabled() {
		t.Errorf("language=%s chat=%v", cfg.Language(), cfg.ChatEnabled())
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{name: "mode", key: "HIDDEN_PIECE_TRANSITION_MODE", value: "swipe", want: "HIDDEN_PIECE_TRANSITION_MODE"},
		{name: "delay", key: "HIDDEN_PIECE_TRANSITION_DELAY", value: "soon", want: "parse env:"},
		{name: "negative delay", key: "HIDDEN_PIECE_TRANSITION_DELAY", value: "-1s", want: "must be positive"},
		{name: "language", key: "HIDDEN_PIECE_LANG", value: "!!", want: "unsupported language"},
		{name: "font", key: "HIDDEN_PIECE_PDF_FONT", value: "/nonexistent/font.ttf", want: "HIDDEN_PIECE_PDF_FONT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("HIDDEN_PIECE_MODEL=gemini-test\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HIDDEN_PIECE_MODEL", "")
	os.Unsetenv("HIDDEN_PIECE_MODEL")
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Model != "gemini-test" {
		t.Errorf("model = %q; want value from file", cfg.Model)
	}
}
