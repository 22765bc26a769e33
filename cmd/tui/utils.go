package main

import (
	"os/exec"
	"runtime"
)

// truncateLeft keeps the tail of a path so the file name stays visible.
func truncateLeft(s string, max int) string {
	if len(s) <= max || max < 4 {
		return s
	}
	return "..." + s[len(s)-max+3:]
}

// openFile opens the file with the default system application
func openFile(filePath string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", filePath)
	case "darwin":
		cmd = exec.Command("open", filePath)
	default: // linux, bsd, etc.
		cmd = exec.Command("xdg-open", filePath)
	}
	return cmd.Start()
}
