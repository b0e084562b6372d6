package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSimulateIdleBirdFalls(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rt := cfg.Runtime(800, 600, 1)

	res := simulate(cfg, rt, time.Minute, false, testLogger())

	if !res.GameOver {
		t.Fatal("idle bird should hit the floor")
	}
	if res.Score != 0 {
		t.Errorf("score = %d, expected 0", res.Score)
	}
	if res.Spawned != 0 {
		t.Errorf("no pipe should spawn before the bird lands, got %d", res.Spawned)
	}
	if res.Elapsed >= time.Second {
		t.Errorf("bird should land within a second, took %s", res.Elapsed)
	}
}

func TestSimulateAutopilotScores(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rt := cfg.Runtime(800, 600, 1)

	res := simulate(cfg, rt, 10*time.Second, true, testLogger())

	if res.Score < 1 {
		t.Errorf("autopilot should clear at least one pipe, score %d", res.Score)
	}
	if res.Spawned < res.Score {
		t.Errorf("score %d exceeds pipes spawned %d", res.Score, res.Spawned)
	}
}

func TestSimulateStopsAtLimit(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	rt := cfg.Runtime(800, 600, 1)

	res := simulate(cfg, rt, time.Second, false, testLogger())

	if res.GameOver {
		t.Fatal("a hovering bird should survive one second")
	}
	if res.Ticks != 60 {
		t.Errorf("ticks = %d, expected 60", res.Ticks)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rt := cfg.Runtime(800, 600, 42)

	a := simulate(cfg, rt, 30*time.Second, true, testLogger())
	b := simulate(cfg, rt, 30*time.Second, true, testLogger())
	if a != b {
		t.Errorf("same seed gave different results:\n%+v\n%+v", a, b)
	}
}

func TestConfigCheck(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("pipes:\n  gap_size: 180\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	configCheckCmd.SetOut(&out)
	if err := runConfigCheck(configCheckCmd, []string{good}); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	if !strings.Contains(out.String(), "ok") {
		t.Errorf("output = %q", out.String())
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pipes:\n  gap_min: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := runConfigCheck(configCheckCmd, []string{bad}); err == nil {
		t.Error("invalid config accepted")
	}
}

func TestConfigDumpDefaults(t *testing.T) {
	var out bytes.Buffer
	configDumpCmd.SetOut(&out)
	if err := runConfigDump(configDumpCmd, nil); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if _, err := config.Parse(out.Bytes()); err != nil {
		t.Errorf("dumped YAML does not parse: %v", err)
	}
}

func TestShellsListsTerminal(t *testing.T) {
	var out bytes.Buffer
	shellsCmd.SetOut(&out)
	runShells(shellsCmd, nil)
	if !strings.Contains(out.String(), "tui") {
		t.Errorf("shells output should list tui:\n%s", out.String())
	}
}

func TestRuntimeConfigFPSOverride(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	flagFPS = 0
	if rt := runtimeConfig(cfg, 80, 24); rt.TickRate != 60 {
		t.Errorf("TickRate = %d, expected config default 60", rt.TickRate)
	}

	flagFPS = 30
	t.Cleanup(func() { flagFPS = 0 })
	if rt := runtimeConfig(cfg, 80, 24); rt.TickRate != 30 {
		t.Errorf("TickRate = %d, expected --fps 30", rt.TickRate)
	}
}

func TestLoadGameConfigNamesBrokenSource(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	path := filepath.Join(home, ".arcade", "configs", "flappy.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("pipes:\n  speed: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := loadGameConfig(testLogger())
	if err == nil {
		t.Fatal("broken user config should stop the command")
	}
	if !strings.Contains(err.Error(), "user config") {
		t.Errorf("error should name the config source: %v", err)
	}
}
