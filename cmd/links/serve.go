package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/sudo-self/links/internal/api"
	"github.com/sudo-self/links/internal/config"
	"github.com/sudo-self/links/internal/db"
	"github.com/sudo-self/links/internal/handler"
	"github.com/sudo-self/links/internal/store"
	"github.com/sudo-self/links/internal/visitor"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			likeStore := store.NewLikeStore(database, cfg.DB.Driver)
			resolver := visitor.NewResolver(!cfg.InsecureCookies)

			router := handler.NewRouter(handler.Deps{
				Site: cfg.Site,
				API: api.Deps{
					Likes:   likeStore,
					Visitor: resolver,
					TopN:    cfg.Likes.TopN,
				},
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
