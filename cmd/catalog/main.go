// Command catalog browses the dealership inventory from a terminal. It
// fetches the public inventory once and runs the catalog pipeline locally.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jsabonet/milagre-car-site-sub000/client"
)

func init() {
	_ = godotenv.Load()
}

type globalOptions struct {
	apiURL  string
	timeout time.Duration
	json    bool
}

func (g *globalOptions) client(session *client.Session) *client.Client {
	return client.New(g.apiURL, session)
}

func main() {
	log.SetFlags(0)

	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Browse the Milagre Car inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api", envOr("MILAGRE_API_URL", "http://localhost:8081"), "API base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 20*time.Second, "Request timeout")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of a table")

	root.AddCommand(newBrowseCommand(opts), newFacetsCommand(opts), newMessagesCommand(opts))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := root.ExecuteContext(ctx); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
