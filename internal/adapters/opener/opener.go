package opener

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Opener shows a generated directory in the system file manager
type Opener struct {
	goos string
}

// NewOpener creates an opener for the running operating system
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// Open opens dir with the platform's default handler
func (o *Opener) Open(dir string) error {
	cmd, err := o.Command(dir)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", dir, err)
	}
	return nil
}

// Command returns the exec.Cmd that opens dir
func (o *Opener) Command(dir string) (*exec.Cmd, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", abs), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", abs), nil
	case "windows":
		return exec.Command("explorer", abs), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
