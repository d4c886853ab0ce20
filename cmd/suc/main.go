package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ImSingee/go-ex/ee"

	"github.com/aboe026/software-update-checker-sub000/internal/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		if !ee.Is(err, ee.Phantom) {
			l("Error: %v", err)
		}

		os.Exit(1)
	}
}

func l(msg string, args ...any) {
	s := msg
	if len(args) != 0 {
		s = fmt.Sprintf(msg, args...)
	}

	_, _ = os.Stderr.Write([]byte("suc - " + strings.TrimSpace(s) + "\n"))
}
