package main

import (
	"fmt"
	"os"
	"os/exec"
)

type step struct {
	title string
	cmd   string
	args  []string
}

var steps = []step{
	{"go fmt", "go", []string{"fmt", "./..."}},
	{"go vet", "go", []string{"vet", "./..."}},
	{"golangci-lint", "golangci-lint", []string{"run", "./..."}},
	{"install staticcheck", "go", []string{"install", "honnef.co/go/tools/cmd/staticcheck@latest"}},
	{"staticcheck", "staticcheck", []string{"./..."}},
	{"install gofumpt", "go", []string{"install", "mvdan.cc/gofumpt@latest"}},
	{"gofumpt", "gofumpt", []string{"-l", "-w", "."}},
	// vnderr values are shared across goroutines; keep the race detector on.
	{"go test -race", "go", []string{"test", "-race", "./..."}},
}

func runCommand(cmd string, args []string) error {
	command := exec.Command(cmd, args...)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err := command.Run(); err != nil {
		return fmt.Errorf("error running %s %v: %w", cmd, args, err)
	}
	return nil
}

func main() {
	failed := 0
	for _, s := range steps {
		fmt.Printf("Running %s...\n", s.title)
		if err := runCommand(s.cmd, s.args); err != nil {
			fmt.Println(err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("%d check(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("All checks completed!")
}
