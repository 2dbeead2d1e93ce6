package main

import (
	"log"
	"os"
	"os/exec"
	"runtime"
)

// clearConsole wipes the terminal using the platform's own command.
func clearConsole() {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "cls")
	case "linux", "darwin", "freebsd", "netbsd", "openbsd":
		cmd = exec.Command("clear")
	default:
		log.Printf("Clear console command not supported on %s", runtime.GOOS)
		return
	}
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to clear console: %s", err)
	}
}
