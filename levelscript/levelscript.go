// Package levelscript generates platforms from tengo scripts.
//
// A script sees the globals `count` (int) and `seed` (int) and is expected to
// declare a global `platforms` holding an array of maps with the keys x, y, w,
// h and optionally friction. It may also declare `player_start` as a two
// element array.
package levelscript

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/levels"
)

const runTimeout = 5 * time.Second

// Params are the values exposed to the script as globals.
type Params struct {
	Count int
	Seed  int
}

// Result holds what a script produced.
type Result struct {
	Platforms      []levels.Platform
	PlayerStart    common.Vec2
	HasPlayerStart bool
}

// Level builds a level from the result.
func (r Result) Level() *levels.Level {
	return levels.New(r.Platforms, r.PlayerStart)
}

func RunFile(path string, params Params) (Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("levelscript: read %s: %w", path, err)
	}
	return Run(src, params)
}

func Run(src []byte, params Params) (Result, error) {
	script := tengo.NewScript(src)
	_ = script.Add("count", params.Count)
	_ = script.Add("seed", params.Seed)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("levelscript: run: %w", err)
	}

	var res Result
	raw := compiled.Get("platforms").Array()
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return Result{}, fmt.Errorf("levelscript: platform %d is %T, want map", i, item)
		}
		p, err := platformFromMap(m)
		if err != nil {
			return Result{}, fmt.Errorf("levelscript: platform %d: %w", i, err)
		}
		res.Platforms = append(res.Platforms, p)
	}

	if start := compiled.Get("player_start"); !start.IsUndefined() {
		pair := start.Array()
		if len(pair) != 2 {
			return Result{}, fmt.Errorf("levelscript: player_start must have 2 elements, got %d", len(pair))
		}
		x, okX := toFloat32(pair[0])
		y, okY := toFloat32(pair[1])
		if !okX || !okY {
			return Result{}, fmt.Errorf("levelscript: player_start must be numeric")
		}
		res.PlayerStart = common.V(x, y)
		res.HasPlayerStart = true
	}
	return res, nil
}

func platformFromMap(m map[string]interface{}) (levels.Platform, error) {
	var vals [4]float32
	for i, key := range []string{"x", "y", "w", "h"} {
		v, ok := toFloat32(m[key])
		if !ok {
			return levels.Platform{}, fmt.Errorf("missing or non-numeric %q", key)
		}
		vals[i] = v
	}
	if vals[2] < 0 || vals[3] < 0 {
		return levels.Platform{}, fmt.Errorf("negative size %vx%v", vals[2], vals[3])
	}
	p := levels.NewPlatform(common.V(vals[0], vals[1]), common.V(vals[2], vals[3]))
	if f, ok := m["friction"]; ok {
		v, ok := toFloat32(f)
		if !ok {
			return levels.Platform{}, fmt.Errorf("non-numeric friction")
		}
		p.Friction = v
	}
	return p, nil
}

func toFloat32(v interface{}) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case int64:
		return float32(n), true
	case int:
		return float32(n), true
	default:
		return 0, false
	}
}
