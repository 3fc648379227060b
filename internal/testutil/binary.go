package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// BuildBinary compiles the custom-picker command into a temporary directory.
func BuildBinary(t *testing.T) string {
	t.Helper()
	RequireTmux(t)
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "custom-picker")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// WaitForText polls the pane until it shows want. exitPath, when set, names a
// file the launcher writes the program's exit code to; a non-zero code fails
// the test early.
func WaitForText(t *testing.T, ctx context.Context, socket, target, exitPath, want string) string {
	t.Helper()
	loggedPaneMissing := false
	last := ""
	for {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for %q: %v\nlast capture:\n%s", want, ctx.Err(), last)
		case <-time.After(50 * time.Millisecond):
			if exitPath != "" {
				if data, err := os.ReadFile(exitPath); err == nil {
					code := strings.TrimSpace(string(data))
					if code != "" && code != "0" {
						t.Fatalf("custom-picker exited early with code %s", code)
					}
				}
			}
			out, err := CapturePane(t, socket, target)
			if err != nil {
				if errors.Is(err, ErrPaneUnavailable) {
					if !loggedPaneMissing {
						t.Logf("waiting for pane %s to become available", target)
						loggedPaneMissing = true
					}
					continue
				}
				t.Fatalf("capture-pane error: %v", err)
			}
			last = out
			if strings.Contains(out, want) {
				return out
			}
		}
	}
}

// WaitForExit polls exitPath until the launcher records an exit code.
func WaitForExit(t *testing.T, ctx context.Context, exitPath string) string {
	t.Helper()
	for {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for exit: %v", ctx.Err())
		case <-time.After(50 * time.Millisecond):
			if data, err := os.ReadFile(exitPath); err == nil {
				if code := strings.TrimSpace(string(data)); code != "" {
					return code
				}
			}
		}
	}
}

// SendKeys types keys into target using tmux key names.
func SendKeys(t *testing.T, socket, target string, keys ...string) {
	t.Helper()
	args := append([]string{"send-keys", "-t", target}, keys...)
	if err := tmuxCommand(socket, args...).Run(); err != nil {
		t.Fatalf("send-keys %v failed: %v", keys, err)
	}
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

// LauncherScript returns a shell script that runs bin with a fixed 80x24
// size, records its exit status in exitFile and then keeps the pane open.
// Paths are written into the script because a pane inherits the tmux
// server's environment, not the client's.
func LauncherScript(bin, logFile, exitFile, args string) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&b, "%s -width 80 -height 24 -log-file %s %s 2>/dev/null\n", shellQuote(bin), shellQuote(logFile), args)
	fmt.Fprintf(&b, "printf '%%s' $? > %s\n", shellQuote(exitFile))
	b.WriteString("sleep 300\n")
	return b.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
