// If you are AI: This file provides helper functions for starting and managing server processes in tests.

package itest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BuildBinary compiles the gsteditor command into dir and returns its path.
func BuildBinary(dir string) (string, error) {
	binPath := filepath.Join(dir, "gsteditor")
	out, err := exec.Command("go", "build", "-o", binPath, "../../cmd/gsteditor").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("build binary: %w: %s", err, out)
	}
	return binPath, nil
}

// FreePort returns a TCP port that was free a moment ago.
func FreePort() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("find free port: %w", err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port, nil
}

// StartServer starts "gsteditor serve" as a subprocess on a free port with its
// journal and documents under dir. Returns the process and the port it listens on.
func StartServer(ctx context.Context, binPath, dir string, extraArgs ...string) (*exec.Cmd, int, error) {
	port, err := FreePort()
	if err != nil {
		return nil, 0, err
	}

	configPath := filepath.Join(dir, "config.yaml")
	configContent := fmt.Sprintf("server:\n  http_port: %d\neditor:\n  documents_dir: %s\njournal:\n  path: %s\nlog:\n  level: debug\n",
		port, dir, filepath.Join(dir, "journal.db"))
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		return nil, 0, fmt.Errorf("write config: %w", err)
	}

	args := append([]string{"--config", configPath, "serve"}, extraArgs...)
	cmd := exec.CommandContext(ctx, binPath, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, 0, fmt.Errorf("start server: %w", err)
	}
	return cmd, port, nil
}

// WaitForHealth waits for the health endpoint to become available.
// Returns an error if the endpoint is not available within the timeout.
func WaitForHealth(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://127.0.0.1:%d/healthz", port)

	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("health endpoint not available after %v", timeout)
}
