package main

import (
	"testing"
	"time"

	"ocr-scroll/config"
)

func TestRootCmdFlagsRegistered(t *testing.T) {
	opts := &cliOptions{}
	cmd := newRootCmd(opts)
	for _, name := range []string{
		"output-dir", "poll-interval-ms", "lang", "psm",
		"diff", "page-advance", "clipboard", "file-logging",
	} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	opts := &cliOptions{}
	cmd := newRootCmd(opts)
	if err := cmd.Flags().Parse([]string{
		"--output-dir", "/tmp/out",
		"--poll-interval-ms", "250",
		"--lang", "deu",
		"--diff", "perceptual",
		"--page-advance",
	}); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}

	cfg := &config.Config{
		PollInterval: 500 * time.Millisecond,
		Language:     "eng",
		DiffMode:     config.DiffModeExact,
	}
	applyFlagOverrides(cmd, opts, cfg)

	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Errorf("PollInterval = %v", cfg.PollInterval)
	}
	if cfg.Language != "deu" {
		t.Errorf("Language = %q", cfg.Language)
	}
	if cfg.DiffMode != config.DiffModePerceptual {
		t.Errorf("DiffMode = %q", cfg.DiffMode)
	}
	if !cfg.PageAdvance {
		t.Error("PageAdvance should be set")
	}
}

func TestApplyFlagOverridesLeavesUnsetFlags(t *testing.T) {
	opts := &cliOptions{}
	cmd := newRootCmd(opts)
	if err := cmd.Flags().Parse(nil); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}

	cfg := &config.Config{
		OutputDir:    "/configured",
		PollInterval: 500 * time.Millisecond,
		Language:     "eng",
		DiffMode:     config.DiffModeExact,
	}
	applyFlagOverrides(cmd, opts, cfg)

	if cfg.OutputDir != "/configured" {
		t.Errorf("OutputDir = %q, want untouched", cfg.OutputDir)
	}
	if cfg.Language != "eng" {
		t.Errorf("Language = %q, want untouched", cfg.Language)
	}
}
