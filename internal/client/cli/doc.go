// Package cli provides the interactive ProfileKeeper command-line client.
//
// It wires configuration, the gRPC API client and an interactive REPL that
// tracks whether the server is reachable. Typical flow: start a background
// connectivity watcher, then read and execute user commands until EOF or
// "exit".
//
// Key features:
//   - Show the sample profile and look up profiles by username or id
//   - Search usernames by prefix
//   - Create, edit and delete profiles
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Prompts are only printed when stdin is a terminal, so the client can also
// be driven by a script. See App, StartOnlineStatusWatcher and runREPL.
package cli
