package main

import (
	"context"
	"encoding/gob"
	"log"
	"net/http"
	"os"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/config"
	"github.com/rowanvale/templateboard/internal/importer"
	"github.com/rowanvale/templateboard/internal/initialization"
	"github.com/rowanvale/templateboard/internal/queue"
	service "github.com/rowanvale/templateboard/internal/service/impl"
	"github.com/rowanvale/templateboard/internal/state"
	"github.com/rowanvale/templateboard/internal/store"
	storeimpl "github.com/rowanvale/templateboard/internal/store/impl"
	"github.com/rowanvale/templateboard/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		log.Fatal(err)
	}
	zero.Info().Msg("database connection established")

	if os.Getenv("SETUP") != "" {
		err = initialization.SetupDB(d, config.MigrationsFolder, config.DbUrl)
		if err != nil {
			log.Fatal(err)
		}
	}

	kv, err := initialization.OpenStorage(&config, d)
	if err != nil {
		zero.Fatal().Err(err).Str("backend", config.StorageBackend).Msg("unable to open storage backend")
		os.Exit(1)
	}

	boardStore := storeimpl.New(kv, store.Keys{
		Users:   config.UsersKey,
		Posts:   config.PostsKey,
		Session: config.SessionKey,
	})

	q, err := initialization.InitQueue(d)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to connect with backlite database")
		os.Exit(1)
	}

	imp := importer.New(&http.Client{}, config.TemplatesEndpoint)
	refreshQueue := queue.New(context.Background(), boardStore, imp, config.RefreshInterval, q)

	gob.Register(web.Session{})
	manager := scs.NewCookieManager(config.SessionSecret)

	state := state.State{
		Store:  boardStore,
		Config: config,
	}

	service := service.New(&state, imp, refreshQueue)

	handler := web.New(&config, service, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	if config.Debug {
		// Register logging middleware.
	}

	s := &http.Server{
		Addr:    config.Addr,
		Handler: router,
	}

	zero.Info().Str("addr", config.Addr).Msg("started server")
	err = s.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}
