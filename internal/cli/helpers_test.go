package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/faizmokh/amigos/internal/files"
	"github.com/faizmokh/amigos/internal/logging"
	"github.com/faizmokh/amigos/internal/storage/markdown"
)

func newTestApp(t *testing.T) (*app, *files.Manager) {
	t.Helper()
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	log := logging.Discard()
	a := &app{log: log, store: markdown.NewStore(mgr, log)}
	t.Cleanup(func() { _ = a.close() })
	return a, mgr
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out, err := tryCommand(cmd, args...)
	if err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, out)
	}
	return out
}

func tryCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}
