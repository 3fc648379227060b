package testutil

import (
	"os/exec"
	"strings"
	"testing"
)

func TestLauncherScriptEmbedsPaths(t *testing.T) {
	script := LauncherScript("/tmp/bin dir/custom-picker", "/tmp/x/picker.log", "/tmp/x/exit-code", "-footer")
	for _, want := range []string{
		"'/tmp/bin dir/custom-picker' -width 80 -height 24 -log-file '/tmp/x/picker.log' -footer",
		"> '/tmp/x/exit-code'",
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("expected script to contain %q, got:\n%s", want, script)
		}
	}
	if strings.Contains(script, "$PICKER_") {
		t.Fatalf("expected no environment lookups in script, got:\n%s", script)
	}
}

func TestShellQuoteRoundTrips(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("skipping: sh not installed")
	}
	for _, value := range []string{"plain", "with space", "it's", "$HOME"} {
		out, err := exec.Command(sh, "-c", "printf '%s' "+shellQuote(value)).Output()
		if err != nil {
			t.Fatalf("sh failed for %q: %v", value, err)
		}
		if string(out) != value {
			t.Fatalf("expected %q, got %q", value, string(out))
		}
	}
}
