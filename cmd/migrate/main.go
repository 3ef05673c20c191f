// Command migrate applies or rolls back the postgres schema for the game catalog.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/playstack/game-catalog-service/internal/config"
	"github.com/playstack/game-catalog-service/internal/db"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(out)
	down := fs.Int("down", 0, "roll back N migrations instead of applying them")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := config.LoadDotEnv(config.DotEnvPath()); err != nil {
		fmt.Fprintf(out, "failed to load .env: %v\n", err)
	}
	url := config.Load().Database.URL
	if url == "" {
		return db.ErrMissingDSN
	}

	if *down > 0 {
		if err := db.MigrateDown(url, *down); err != nil {
			return err
		}
		fmt.Fprintf(out, "rolled back %d migration(s)\n", *down)
		return nil
	}
	if err := db.MigrateUp(url); err != nil {
		return err
	}
	fmt.Fprintln(out, "database migrations applied")
	return nil
}
