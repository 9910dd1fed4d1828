package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestDefaultSnakeValidates(t *testing.T) {
	if err := DefaultSnake().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultSnakeMatchesEngineDefaults(t *testing.T) {
	got := DefaultSnake().Engine()
	want := snake.DefaultConfig()
	if got != want {
		t.Errorf("Engine() = %+v, want %+v", got, want)
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	var cfg Snake
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnake()) {
		t.Errorf("embedded yaml = %+v, want %+v", cfg, DefaultSnake())
	}
}

func TestEngineConversion(t *testing.T) {
	cfg := DefaultSnake()
	cfg.Speed.InitialMS = 200
	cfg.Speed.DecrementMS = 25

	e := cfg.Engine()
	if e.InitialInterval != 200*time.Millisecond {
		t.Errorf("InitialInterval = %v", e.InitialInterval)
	}
	if e.SpeedDecrement != 25*time.Millisecond {
		t.Errorf("SpeedDecrement = %v", e.SpeedDecrement)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCustomPathMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	writeFile(t, path, "board:\n  size: 30\nscoring:\n  threshold: 100\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Board.Size != 30 {
		t.Errorf("board size = %d, want 30", cfg.Board.Size)
	}
	if cfg.Scoring.Threshold != 100 {
		t.Errorf("threshold = %d, want 100", cfg.Scoring.Threshold)
	}
	if cfg.Scoring.FoodReward != 10 || cfg.Speed.InitialMS != 150 {
		t.Errorf("unset fields lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "bad.yaml")
	writeFile(t, malformed, "board: [not, a, map\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"malformed", malformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	userPath := filepath.Join(home, ".snake", "configs", "snake.yaml")
	localPath := filepath.Join(work, "configs", "snake.yaml")
	writeFile(t, userPath, "board:\n  size: 24\n")
	writeFile(t, localPath, "board:\n  size: 16\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Size != 24 {
		t.Errorf("user config not preferred: size = %d", cfg.Board.Size)
	}

	if err := os.Remove(userPath); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Board.Size != 16 {
		t.Errorf("local config not used: size = %d", cfg.Board.Size)
	}

	// A malformed local file falls through to the embedded default.
	writeFile(t, localPath, "board: [\n")
	cfg, _ = Load("")
	if !reflect.DeepEqual(cfg, DefaultSnake()) {
		t.Errorf("expected embedded default, got %+v", cfg)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := DefaultSnake()
	cfg.Board.Size = 1
	cfg.Scoring.FoodReward = 0
	cfg.Speed.InitialMS = 10

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error does not wrap ErrInvalidConfig: %v", err)
	}
	if !errors.Is(err, snake.ErrInvalidConfig) {
		t.Errorf("error does not wrap snake.ErrInvalidConfig: %v", err)
	}

	msg := err.Error()
	for _, want := range []string{"board size", "food reward", "initial interval"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePreset(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantInitial   int
		wantMin       int
		wantDecrement int
	}{
		{DifficultyEasy, 210, 70, 10},
		{DifficultyNormal, 150, 50, 10},
		{DifficultyHard, 105, 35, 10},
		{DifficultyFixed, 150, 50, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultSnake()
			ApplyPreset(&cfg, tt.preset)

			if cfg.Speed.InitialMS != tt.wantInitial {
				t.Errorf("initial = %d, want %d", cfg.Speed.InitialMS, tt.wantInitial)
			}
			if cfg.Speed.MinMS != tt.wantMin {
				t.Errorf("min = %d, want %d", cfg.Speed.MinMS, tt.wantMin)
			}
			if cfg.Speed.DecrementMS != tt.wantDecrement {
				t.Errorf("decrement = %d, want %d", cfg.Speed.DecrementMS, tt.wantDecrement)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestLoadWithPresetValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	writeFile(t, path, "board:\n  size: 0\n")

	if _, err := LoadWithPreset(path, DifficultyNormal); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
