// boardctl runs a single-profile template board out of a local directory,
// the way the original ran out of one browser's storage: one session slot,
// one board, no server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/domain"
	"github.com/rowanvale/templateboard/internal/importer"
	core "github.com/rowanvale/templateboard/internal/service/impl"
	"github.com/rowanvale/templateboard/internal/state"
	"github.com/rowanvale/templateboard/internal/storage/filestore"
	"github.com/rowanvale/templateboard/internal/store"
	storeimpl "github.com/rowanvale/templateboard/internal/store/impl"
)

const usage = `usage: boardctl [flags] <command> [args]

commands:
  signup <username>   register and log in
  login <username>    log in
  logout              log out
  submit <url>        post a template link to the board
  list                print the board, newest first
  delete <id>         delete one of your own posts
`

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	home, _ := os.UserHomeDir()
	root := flag.String("data", filepath.Join(home, ".templateboard"), "directory holding the board")
	password := flag.String("password", "", "password for signup and login")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	kv, err := filestore.New(*root)
	if err != nil {
		zero.Fatal().Err(err).Str("root", *root).Msg("unable to open board directory")
	}

	boardStore := storeimpl.New(kv, store.DefaultKeys())
	imp := importer.New(&http.Client{}, importer.DefaultBaseURL)
	svc := core.New(&state.State{Store: boardStore}, imp, nil)
	ctx := context.Background()

	switch args[0] {
	case "signup":
		requireArg(args, "username")
		u, err := svc.CreateUser(ctx, args[1], *password)
		exitOn(err)
		exitOn(boardStore.SaveSession(ctx, domain.Session{Username: u.Username}))
		fmt.Printf("account created, logged in as %s\n", u.Username)

	case "login":
		requireArg(args, "username")
		u, authenticated, err := svc.AuthenticateUser(ctx, args[1], *password)
		exitOn(err)
		if !authenticated {
			fmt.Fprintln(os.Stderr, "invalid username or password")
			os.Exit(1)
		}
		exitOn(boardStore.SaveSession(ctx, domain.Session{Username: u.Username}))
		fmt.Printf("logged in as %s\n", u.Username)

	case "logout":
		exitOn(boardStore.ClearSession(ctx))
		fmt.Println("logged out")

	case "submit":
		requireArg(args, "url")
		session := requireSession(ctx, boardStore)
		post, err := svc.SubmitTemplate(ctx, args[1], session.Username)
		exitOn(err)
		fmt.Printf("posted %s (%s)\n", post.Name, post.ID)

	case "list":
		posts, err := svc.ListPosts(ctx)
		exitOn(err)
		if len(posts) == 0 {
			fmt.Println("no templates posted yet")
			return
		}
		for _, p := range posts {
			fmt.Printf("%s  %s  %d uses  by %s  [%s]\n", p.ID, p.Name, p.UsageCount, p.Author, p.Code)
		}

	case "delete":
		requireArg(args, "id")
		session := requireSession(ctx, boardStore)
		exitOn(svc.DeletePost(ctx, args[1], session.Username))
		fmt.Println("template deleted")

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func requireArg(args []string, name string) {
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "missing %s argument\n", name)
		os.Exit(2)
	}
}

func requireSession(ctx context.Context, s store.Store) domain.Session {
	session, err := s.Session(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "login first")
		os.Exit(1)
	}
	return session
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
