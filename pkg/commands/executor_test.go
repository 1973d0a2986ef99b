package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

// waitForFile polls until path exists with content, since spawned
// commands are never waited on.
func waitForFile(t *testing.T, path string) string {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(path)
		if err == nil && len(data) > 0 {
			return string(data)
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("%s was not written", path)
	return ""
}

func TestExecuteSpawns(t *testing.T) {
	res := NewExecutor("sh", zaptest.NewLogger(t)).Execute("true")
	if !res.Spawned || res.Err != nil {
		t.Fatalf("Execute() = %+v", res)
	}
}

func TestExecuteDoesNotWait(t *testing.T) {
	start := time.Now()
	res := NewExecutor("sh", zaptest.NewLogger(t)).Execute("sleep 5")
	elapsed := time.Since(start)

	if !res.Spawned || res.Err != nil {
		t.Fatalf("Execute() = %+v", res)
	}
	if elapsed > time.Second {
		t.Errorf("Execute() took %v, want it to return without waiting", elapsed)
	}
}

func TestExecuteRunsSubstitutionsInShell(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")

	res := NewExecutor("sh", zaptest.NewLogger(t)).Execute(`printf '%s' "$(printf abc)" > '` + out + `'`)
	if !res.Spawned {
		t.Fatalf("Execute() = %+v", res)
	}

	if got := waitForFile(t, out); got != "abc" {
		t.Errorf("output = %q, want %q", got, "abc")
	}
}

func TestExecuteDefaultsShell(t *testing.T) {
	e := NewExecutor("", nil)
	if e.shell != "sh" {
		t.Errorf("shell = %q, want sh", e.shell)
	}
}

func TestExecuteMissingShell(t *testing.T) {
	res := NewExecutor(filepath.Join(t.TempDir(), "no-such-shell"), zaptest.NewLogger(t)).Execute("true")
	if res.Spawned {
		t.Fatal("Spawned = true for a missing shell")
	}
	if !errors.Is(res.Err, ErrSpawnFailed) {
		t.Errorf("Err = %v, want ErrSpawnFailed", res.Err)
	}
}

func TestExecuteFailingCommandStillSpawns(t *testing.T) {
	res := NewExecutor("sh", zaptest.NewLogger(t)).Execute("exit 3")
	if !res.Spawned || res.Err != nil {
		t.Errorf("Execute() = %+v", res)
	}
}
