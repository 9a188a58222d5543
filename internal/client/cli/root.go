package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if m := a.Mode(); m != "" {
		return fmt.Sprintf("(%s)", m)
	}
	return ""
}

// Root runs the REPL until EOF or exit. The online watcher lives as long as
// the REPL does.
func (a *App) Root(ctx context.Context) {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.prompt, "Welcome to ProfileKeeper CLI (type 'help' for commands)")

	a.checkOnline(ctx)

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.prompt)
}
