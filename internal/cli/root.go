package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

// Root restores a remembered session if one is still valid, then hands
// control to the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Invoicor (type 'help' for commands)")

	a.refreshSession(ctx)
	if a.userName != "" {
		printlnFn("Welcome back,", a.userName)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
