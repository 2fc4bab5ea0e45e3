package engine

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Controller is the part of a camera a script may drive.
type Controller interface {
	SetTarget(x, y float64)
	Zoom(factor float64)
	Pan(length, angle float64)
	Tilt(angle float64)
}

// Poser exposes the current pose to scripts. Optional.
type Poser interface {
	PoseValues() (x, y, scale, angle float64)
}

// ComputeScriptHash creates a cache key for a script body.
func ComputeScriptHash(name, src string) string {
	data := map[string]interface{}{
		"name":   name,
		"script": src,
	}
	jsonData, _ := json.Marshal(data)
	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%x", hash)
}

// Script is a compiled camera script.
type Script struct {
	Name string
	Hash string
	prog *starlark.Program
}

var builtinNames = map[string]bool{
	"pi": true, "pan": true, "zoom": true, "tilt": true, "set_target": true, "pose": true,
}

// Compile parses and resolves src. Unknown names fail here rather than when
// the script runs.
func Compile(name, src string) (*Script, error) {
	_, prog, err := starlark.SourceProgram(name, src, func(n string) bool { return builtinNames[n] })
	if err != nil {
		return nil, err
	}
	return &Script{Name: name, Hash: ComputeScriptHash(name, src), prog: prog}, nil
}

// Run executes the script against cam and returns its globals converted to
// native Go values.
func (s *Script) Run(cam Controller) (map[string]interface{}, error) {
	thread := &starlark.Thread{Name: s.Name, Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) }}

	globals, err := s.prog.Init(thread, Builtins(cam))
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{})
	for k, v := range globals {
		out[k] = FromStarlarkValue(v)
	}
	return out, nil
}

// ExecuteScript compiles and runs src in one step. Scripts see the builtins
// pan, zoom, tilt, set_target and pose, plus the constant pi.
func ExecuteScript(name, src string, cam Controller) (map[string]interface{}, error) {
	s, err := Compile(name, src)
	if err != nil {
		return nil, err
	}
	return s.Run(cam)
}

// Builtins returns the predeclared names bound to cam.
func Builtins(cam Controller) starlark.StringDict {
	return starlark.StringDict{
		"pi": starlark.Float(math.Pi),
		"pan": starlark.NewBuiltin("pan", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var length, angle starlark.Value = starlark.Float(0), starlark.Float(0)
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "length", &length, "angle?", &angle); err != nil {
				return nil, err
			}
			l, err := toFloat(b.Name(), length)
			if err != nil {
				return nil, err
			}
			a, err := toFloat(b.Name(), angle)
			if err != nil {
				return nil, err
			}
			cam.Pan(l, a)
			return starlark.None, nil
		}),
		"zoom": unaryBuiltin("zoom", "factor", cam.Zoom),
		"tilt": unaryBuiltin("tilt", "angle", cam.Tilt),
		"set_target": starlark.NewBuiltin("set_target", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var xv, yv starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &xv, "y", &yv); err != nil {
				return nil, err
			}
			x, err := toFloat(b.Name(), xv)
			if err != nil {
				return nil, err
			}
			y, err := toFloat(b.Name(), yv)
			if err != nil {
				return nil, err
			}
			cam.SetTarget(x, y)
			return starlark.None, nil
		}),
		"pose": starlark.NewBuiltin("pose", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			p, ok := cam.(Poser)
			if !ok {
				return nil, fmt.Errorf("%s: camera does not expose its pose", b.Name())
			}
			x, y, scale, angle := p.PoseValues()
			return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
				"x":     starlark.Float(x),
				"y":     starlark.Float(y),
				"scale": starlark.Float(scale),
				"angle": starlark.Float(angle),
			}), nil
		}),
	}
}

func unaryBuiltin(name, param string, fn func(float64)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var v starlark.Value
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, param, &v); err != nil {
			return nil, err
		}
		f, err := toFloat(b.Name(), v)
		if err != nil {
			return nil, err
		}
		fn(f)
		return starlark.None, nil
	})
}

func toFloat(fn string, v starlark.Value) (float64, error) {
	f, ok := starlark.AsFloat(v)
	if !ok {
		return 0, fmt.Errorf("%s: want number, got %s", fn, v.Type())
	}
	return f, nil
}

func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	case *starlark.List:
		out := make([]interface{}, 0, val.Len())
		for i := 0; i < val.Len(); i++ {
			out = append(out, FromStarlarkValue(val.Index(i)))
		}
		return out
	case *starlark.Dict:
		out := make(map[string]interface{}, val.Len())
		for _, item := range val.Items() {
			k, ok := starlark.AsString(item[0])
			if !ok {
				k = item[0].String()
			}
			out[k] = FromStarlarkValue(item[1])
		}
		return out
	}
	return nil
}
