package main

import (
	"fmt"
	"log"
	"os"

	"glidecam/camera"
	"glidecam/engine"
)

// ScriptRunner runs camera scripts from disk. Compiled programs are cached
// by content hash so unchanged files are not reparsed.
type ScriptRunner struct {
	Paths []string
	cache map[string]*engine.Script // Key = path
}

func NewScriptRunner(paths []string) *ScriptRunner {
	return &ScriptRunner{
		Paths: paths,
		cache: make(map[string]*engine.Script),
	}
}

// scriptCamera exposes the pose to scripts.
type scriptCamera struct {
	*camera.Camera
}

func (c scriptCamera) PoseValues() (float64, float64, float64, float64) {
	return c.X, c.Y, c.Scale, c.Angle
}

func (sr *ScriptRunner) load(path string) (*engine.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src := string(data)
	hash := engine.ComputeScriptHash(path, src)
	if cached, ok := sr.cache[path]; ok && cached.Hash == hash {
		log.Printf("[%s] Cache hit - reusing compiled script", path)
		return cached, nil
	}
	s, err := engine.Compile(path, src)
	if err != nil {
		return nil, err
	}
	sr.cache[path] = s
	return s, nil
}

// RunAll executes every script in order against cam and stops at the first
// failure.
func (sr *ScriptRunner) RunAll(cam *camera.Camera) error {
	for _, path := range sr.Paths {
		s, err := sr.load(path)
		if err != nil {
			return fmt.Errorf("script %s: %w", path, err)
		}
		out, err := s.Run(scriptCamera{cam})
		if err != nil {
			return fmt.Errorf("script %s: %w", path, err)
		}
		log.Printf("[%s] Result: %v", path, out)
	}
	return nil
}
