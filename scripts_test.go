package main

import (
	"os"
	"path/filepath"
	"testing"

	"glidecam/camera"
)

func writeScript(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestScriptRunnerMovesTarget(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.star", "set_target(4, 2)\n")
	b := writeScript(t, dir, "b.star", "p = pose()\nzoom(2)\nstart_scale = p.scale\n")

	cam := camera.New(camera.WithScale(3))
	sr := NewScriptRunner([]string{a, b})
	if err := sr.RunAll(cam); err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	tg := cam.Target()
	if tg.X != 4 || tg.Y != 2 || tg.Scale != 6 {
		t.Errorf("unexpected target after scripts: %+v", tg)
	}
	if cam.X != 0 || cam.Scale != 3 {
		t.Errorf("scripts should only move the target, pose is %+v", cam.Pose())
	}
}

func TestScriptRunnerCachesCompiledScripts(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "tilt.star", "tilt(0.5)\n")

	cam := camera.New()
	sr := NewScriptRunner([]string{path})
	if err := sr.RunAll(cam); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := sr.cache[path]

	if err := sr.RunAll(cam); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if sr.cache[path] != first {
		t.Errorf("unchanged script should reuse the compiled program")
	}
	if cam.Target().Angle != 1.0 {
		t.Errorf("cached script should still run, angle %v", cam.Target().Angle)
	}

	writeScript(t, dir, "tilt.star", "tilt(-1)\n")
	if err := sr.RunAll(cam); err != nil {
		t.Fatalf("third run: %v", err)
	}
	if sr.cache[path] == first {
		t.Errorf("changed script should be recompiled")
	}
	if cam.Target().Angle != 0 {
		t.Errorf("Expected angle 0, got %v", cam.Target().Angle)
	}
}

func TestScriptRunnerReportsErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeScript(t, dir, "bad.star", "zoom(\n")

	sr := NewScriptRunner([]string{bad, filepath.Join(dir, "missing.star")})
	if err := sr.RunAll(camera.New()); err == nil {
		t.Errorf("Expected syntax error")
	}

	sr = NewScriptRunner([]string{filepath.Join(dir, "missing.star")})
	if err := sr.RunAll(camera.New()); err == nil {
		t.Errorf("Expected missing file error")
	}
}
