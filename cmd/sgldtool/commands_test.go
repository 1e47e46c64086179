package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/levels"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeLevel(t *testing.T, l *levels.Level) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.sgld")
	if err := l.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestInfo(t *testing.T) {
	path := writeLevel(t, levels.New([]levels.Platform{
		{Pos: common.V(1, 2), Size: common.V(3, 4), Friction: 0.5},
	}, common.V(7, 8)))

	out, err := run(t, "info", path)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"player start: (7, 8)", "platforms: 1", "0: pos=(1, 2) size=(3, 4) friction=0.5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoBundled(t *testing.T) {
	out, err := run(t, "info", "demo")
	if err != nil {
		t.Fatalf("info demo: %v", err)
	}
	if !strings.Contains(out, "platforms: 4") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		level   *levels.Level
		wantErr bool
		want    string
	}{
		{
			name: "clean",
			level: levels.New([]levels.Platform{
				levels.NewPlatform(common.V(0, 0), common.V(10, 10)),
				levels.NewPlatform(common.V(10, 0), common.V(10, 10)),
			}, common.V(50, 50)),
			want: "ok",
		},
		{
			name: "overlap",
			level: levels.New([]levels.Platform{
				levels.NewPlatform(common.V(0, 0), common.V(10, 10)),
				levels.NewPlatform(common.V(5, 5), common.V(10, 10)),
			}, common.V(50, 50)),
			wantErr: true,
			want:    "overlap",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "check", writeLevel(t, tt.level))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out, tt.want) {
				t.Fatalf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestCheckRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.sgld")
	if err := os.WriteFile(path, []byte("nope, not a level"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := run(t, "check", path); err == nil {
		t.Fatalf("expected error for a malformed file")
	}
}

func TestGen(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen.sgld")
	script := filepath.Join("..", "..", "levelscript", "testdata", "staircase.tengo")

	stdout, err := run(t, "gen", script, out, "--count", "3")
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	if !strings.Contains(stdout, "wrote 3 platforms") {
		t.Fatalf("output:\n%s", stdout)
	}

	level, err := levels.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if level.Len() != 3 {
		t.Fatalf("len = %d, want 3", level.Len())
	}
	if got := level.PlayerStart(); got != common.V(16, 250) {
		t.Fatalf("player start = %v", got)
	}
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "demo" {
		t.Fatalf("output = %q", out)
	}
}
