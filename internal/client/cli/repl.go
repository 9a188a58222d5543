package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = `Available commands:
  ping                      check the server
  sample                    show the sample profile
  show <username>           show a profile by username
  id <user-id>              show a profile by user id
  search <prefix> [limit]   list usernames starting with prefix
  create                    create a profile
  edit <username>           change a profile
  delete <username>         delete a profile
  exit | quit               leave the program`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Ping(ctx context.Context) error
	Sample(ctx context.Context) error
	Show(ctx context.Context, username string) error
	ShowByID(ctx context.Context, id string) error
	Search(ctx context.Context, prefix string, limit int) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, username string) error
	Delete(ctx context.Context, username string) error
}

// readLine returns the next line without its line ending. ok is false once
// the input is exhausted.
func readLine(r *bufio.Reader) (line string, ok bool) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// runREPL starts a simple read–eval–print loop for the ProfileKeeper CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. The prompt, showing the current status from
// statusFn, goes to prompt. Unknown commands and missing arguments are
// reported back to the user. The loop exits on EOF, on context cancellation
// or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, prompt io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(prompt, "pk %s> ", statusFn())
		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "ping":
			_ = a.Ping(ctx)

		case "sample":
			_ = a.Sample(ctx)

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <username>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "id":
			if len(args) != 1 {
				printlnFn("Usage: id <user-id>")
				continue
			}
			_ = a.ShowByID(ctx, args[0])

		case "search":
			if len(args) < 1 || len(args) > 2 {
				printlnFn("Usage: search <prefix> [limit]")
				continue
			}
			limit := 0
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 1 {
					printlnFn("limit must be a positive number")
					continue
				}
				limit = n
			}
			_ = a.Search(ctx, args[0], limit)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <username>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <username>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
