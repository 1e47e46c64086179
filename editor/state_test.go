package editor

import (
	"strings"
	"testing"

	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/config"
	"github.com/milk9111/speedgame/levels"
)

func TestNext(t *testing.T) {
	menu := NewMenu(config.Default().Menu)
	editing := NewEditing(nil)
	failure := Failure{Message: "boom"}

	tests := []struct {
		name  string
		from  State
		event Event
		want  string
	}{
		{name: "menu_open", from: menu, event: OpenLevel{}, want: "Editing"},
		{name: "menu_quit", from: menu, event: Quit{}, want: "Quitting"},
		{name: "editing_quit", from: editing, event: Quit{}, want: "Quitting"},
		{name: "failure_quit", from: failure, event: Quit{}, want: "Quitting"},
		{name: "quitting_quit", from: Quitting{}, event: Quit{}, want: "Quitting"},
		{name: "failure_recovers", from: failure, event: BackToMenu{}, want: "Menu"},
		{name: "editing_open", from: editing, event: OpenLevel{}, want: "Failure"},
		{name: "menu_back", from: menu, event: BackToMenu{}, want: "Failure"},
		{name: "editing_back", from: editing, event: BackToMenu{}, want: "Failure"},
		{name: "quitting_open", from: Quitting{}, event: OpenLevel{}, want: "Failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.from, tt.event)
			if got.String() != tt.want {
				t.Fatalf("Next(%s, %s) = %s, want %s", tt.from, tt.event, got, tt.want)
			}
		})
	}
}

func TestNextNoneKeepsState(t *testing.T) {
	for _, s := range []State{NewMenu(config.Default().Menu), NewEditing(nil), Quitting{}, Failure{Message: "x"}} {
		if got := Next(s, None{}); got != s {
			t.Fatalf("Next(%s, None) = %v, want the same value", s, got)
		}
	}
}

func TestNextBadTransitionMessage(t *testing.T) {
	got, ok := Next(NewEditing(nil), OpenLevel{}).(Failure)
	if !ok {
		t.Fatalf("expected Failure")
	}
	if got.Message != "bad transition: Editing + OpenLevel" {
		t.Fatalf("message = %q", got.Message)
	}
}

func TestNextOpenLevelWrapsLevel(t *testing.T) {
	level := twoPlatformLevel()
	e, ok := Next(NewMenu(config.Default().Menu), OpenLevel{Level: level}).(*Editing)
	if !ok {
		t.Fatalf("expected Editing")
	}
	if e.Context().Level() != level {
		t.Fatalf("editing does not wrap the opened level")
	}
	if e.Tool().Kind() != ToolSelector {
		t.Fatalf("tool = %s, want Selector", e.Tool())
	}
	if len(e.Context().Selection()) != 0 {
		t.Fatalf("selection = %v, want empty", e.Context().Selection())
	}
}

func TestMenuUpdate(t *testing.T) {
	cfg := config.Default().Menu
	tests := []struct {
		name string
		in   Input
		want string
	}{
		{name: "quit_button", in: leftPress(common.V(150, 150)), want: "Quit"},
		{name: "quit_corner", in: leftPress(common.V(100, 200)), want: "Quit"},
		{name: "open_button", in: leftPress(common.V(300, 120)), want: "OpenLevel"},
		{name: "miss", in: leftPress(common.V(10, 10)), want: "None"},
		{name: "hover_only", in: Input{Screen: common.V(150, 150)}, want: "None"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := NewMenu(cfg).Update(nil, tt.in)
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if ev.String() != tt.want {
				t.Fatalf("event = %s, want %s", ev, tt.want)
			}
			if open, ok := ev.(OpenLevel); ok && (open.Level == nil || open.Level.Len() != 0) {
				t.Fatalf("open should carry a new empty level")
			}
		})
	}
}

func TestFailureRecoversThroughTick(t *testing.T) {
	c, _ := newEditingController(t, levels.New(nil, common.Vec2{}), Env{})

	c.Dispatch(BackToMenu{})
	if _, ok := c.State().(Failure); !ok {
		t.Fatalf("state = %s, want Failure", c.State())
	}

	c.Tick(Input{})
	if _, ok := c.State().(*Menu); !ok {
		t.Fatalf("state = %s, want Menu", c.State())
	}
	msg, isErr := c.Status()
	if !isErr || !strings.Contains(msg, "bad transition: Editing + BackToMenu") {
		t.Fatalf("status = %q (error=%v)", msg, isErr)
	}
}

func TestQuittingIsTerminal(t *testing.T) {
	c, err := NewController(config.Default(), Env{})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	c.Tick(leftPress(common.V(150, 150)))
	if !c.Done() {
		t.Fatalf("state = %s, want Quitting", c.State())
	}
	c.Tick(leftPress(common.V(300, 120)))
	if !c.Done() {
		t.Fatalf("left Quitting on %s", c.State())
	}
}
