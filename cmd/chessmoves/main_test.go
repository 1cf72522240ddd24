package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hailam/chessmoves/internal/config"
	"github.com/hailam/chessmoves/internal/storage"
)

func TestRunSquare(t *testing.T) {
	*squareFlag = "e2"
	defer func() { *squareFlag = "" }()

	cfg := &config.Config{LogLevel: zerolog.Disabled, Workers: 2}
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := strings.Fields(out.String())
	want := []string{"e2e3", "e2e4"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestRunSide(t *testing.T) {
	*sideFlag = "black"
	*fenFlag = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	defer func() {
		*sideFlag = "white"
		*fenFlag = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	}()

	cfg := &config.Config{LogLevel: zerolog.Disabled, Workers: 1}
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := len(strings.Fields(out.String())); n != 5 {
		t.Errorf("black king has %d moves, want 5", n)
	}
}

func TestRunWithStore(t *testing.T) {
	*saveFlag = "kings"
	*fenFlag = "4k3/8/8/8/8/8/8/4K3"
	defer func() {
		*saveFlag = ""
		*fenFlag = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	}()

	cfg := &config.Config{DBPath: t.TempDir(), LogLevel: zerolog.Disabled, Workers: 1, Cache: true}
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	*saveFlag = ""
	*listFlag = true
	defer func() { *listFlag = false }()
	out.Reset()
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run -list: %v", err)
	}
	if strings.TrimSpace(out.String()) != "kings" {
		t.Errorf("list output = %q, want kings", out.String())
	}
}

func TestRunBadSide(t *testing.T) {
	*sideFlag = "green"
	defer func() { *sideFlag = "white" }()

	cfg := &config.Config{LogLevel: zerolog.Disabled, Workers: 1}
	if err := run(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid side")
	}
}

func TestRunWithLockedCache(t *testing.T) {
	dir := t.TempDir()
	held, err := storage.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer held.Close()

	*squareFlag = "g1"
	defer func() { *squareFlag = "" }()

	cfg := &config.Config{DBPath: dir, LogLevel: zerolog.Disabled, Workers: 1, Cache: true}
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run with locked database: %v", err)
	}

	got := strings.Join(strings.Fields(out.String()), " ")
	if got != "g1f3 g1h3" {
		t.Errorf("output = %q, want \"g1f3 g1h3\"", got)
	}
}
