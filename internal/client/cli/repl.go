package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, q string) error
	Filter(ctx context.Context, name string) error
	ToggleView(ctx context.Context) error
	Upload(ctx context.Context, paths []string) error
	Download(ctx context.Context, id string) error
	Share(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Theme(ctx context.Context, name string) error
}

const (
	helpLoggedOut = "Available commands: register, login, theme [name], exit"
	helpLoggedIn  = "Available commands: ls, search <q>, filter [category|?], view, upload <path...>, " +
		"download <id>, share <id>, delete <id>, theme [name], logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit". Errors from
// handlers are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gd %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "ls", "list":
			cmdErr = a.List(ctx)

		case "search":
			cmdErr = a.Search(ctx, strings.Join(args, " "))

		case "filter":
			cmdErr = a.Filter(ctx, strings.Join(args, " "))

		case "view":
			cmdErr = a.ToggleView(ctx)

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path...>")
				continue
			}
			cmdErr = a.Upload(ctx, args)

		case "download", "share", "delete":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "download":
				cmdErr = a.Download(ctx, args[0])
			case "share":
				cmdErr = a.Share(ctx, args[0])
			default:
				cmdErr = a.Delete(ctx, args[0])
			}

		case "theme":
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			cmdErr = a.Theme(ctx, name)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
