// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"os/exec"
	"runtime"
)

// A Viewer presents a saved figure to the user by handing its file to
// an external program.
type Viewer struct {
	Command string
	Args    []string // passed before the file name
}

// DefaultViewer returns the desktop's file opener for the current OS.
func DefaultViewer() Viewer {
	switch runtime.GOOS {
	case "darwin":
		return Viewer{Command: "open"}
	case "windows":
		return Viewer{Command: "rundll32", Args: []string{"url.dll,FileProtocolHandler"}}
	}
	return Viewer{Command: "xdg-open"}
}

// Show runs the viewer on path and waits for it to exit.
func (v Viewer) Show(path string) error {
	if v.Command == "" {
		return fmt.Errorf("no viewer configured to show %s", path)
	}
	args := append(append([]string(nil), v.Args...), path)
	out, err := exec.Command(v.Command, args...).CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("showing %s with %s: %w: %s", path, v.Command, err, out)
		}
		return fmt.Errorf("showing %s with %s: %w", path, v.Command, err)
	}
	return nil
}
