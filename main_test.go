package main

import (
	"testing"

	"github.com/atomicstack/linepick/internal/app"
	"github.com/atomicstack/linepick/internal/config"
)

func TestHasArguments(t *testing.T) {
	if hasArguments([]string{"linepick"}) {
		t.Fatalf("expected program name alone to count as no arguments")
	}
	if hasArguments(nil) {
		t.Fatalf("expected empty argv to count as no arguments")
	}
	if !hasArguments([]string{"linepick", "files"}) {
		t.Fatalf("expected positional argument to satisfy the precondition")
	}
}

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Height:    12,
			Algorithm: "rank",
			Prompt:    "files",
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "/home/me/.config/linepick/config.toml",
		Flags: map[string]string{
			"height": "12",
			"algo":   "rank",
			"prompt": "files",
		},
		Args: []string{"files"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["height"] != "12" {
		t.Fatalf("expected height 12, got %v", flagsValue["height"])
	}
	if flagsValue["algo"] != "rank" {
		t.Fatalf("expected algo rank, got %v", flagsValue["algo"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["configFile"] != cfg.File {
		t.Fatalf("expected config file %q, got %v", cfg.File, payload["configFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
