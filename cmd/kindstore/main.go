package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/suparena/kindstore"
	"github.com/suparena/kindstore/config"
	"github.com/suparena/kindstore/entity"
	"github.com/suparena/kindstore/errors"
)

const usage = `usage: kindstore [-config file] [-version] <command> [args]

commands:
  create  <kind> <json>
  read    <kind> <id>
  update  <kind> <id> <json>
  delete  <kind> <id>
  reserve <kind>
  list    [-limit n] [-cursor c] <kind>
  version
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "kindstore:", err)
		if code := errors.Code(err); code == 404 {
			os.Exit(4)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("kindstore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "YAML configuration file")
	versionFlag := fs.Bool("version", false, "Show version information")
	vFlag := fs.Bool("v", false, "Show version information (short)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *versionFlag || *vFlag {
		fmt.Fprintln(stdout, kindstore.GetVersionInfo())
		return nil
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}
	cmd, rest := rest[0], rest[1:]
	if cmd == "version" {
		fmt.Fprintln(stdout, kindstore.GetVersionInfo())
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store, err := kindstore.Open(ctx, cfg, kindstore.WithLogger(logger))
	if err != nil {
		return err
	}
	return dispatch(ctx, store, cmd, rest, stdout)
}

func dispatch(ctx context.Context, store *kindstore.Store, cmd string, args []string, stdout io.Writer) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	switch cmd {
	case "create":
		if len(args) != 2 {
			return fmt.Errorf("create: want <kind> <json>")
		}
		data, err := parseEntity(args[1])
		if err != nil {
			return err
		}
		e, err := store.Create(ctx, args[0], data)
		if err != nil {
			return err
		}
		return enc.Encode(e)

	case "read":
		if len(args) != 2 {
			return fmt.Errorf("read: want <kind> <id>")
		}
		e, err := store.Read(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return enc.Encode(e)

	case "update":
		if len(args) != 3 {
			return fmt.Errorf("update: want <kind> <id> <json>")
		}
		data, err := parseEntity(args[2])
		if err != nil {
			return err
		}
		e, err := store.Update(ctx, args[0], args[1], data)
		if err != nil {
			return err
		}
		return enc.Encode(e)

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("delete: want <kind> <id>")
		}
		return store.Delete(ctx, args[0], args[1])

	case "reserve":
		if len(args) != 1 {
			return fmt.Errorf("reserve: want <kind>")
		}
		id, err := store.ReserveID(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, strconv.FormatInt(id, 10))
		return nil

	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		limit := fs.Int("limit", 0, "page size (0 uses the configured default)")
		cursor := fs.String("cursor", "", "cursor from a previous page")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return fmt.Errorf("list: want [-limit n] [-cursor c] <kind>")
		}
		entities, next, err := store.List(ctx, fs.Arg(0), *limit, *cursor)
		if err != nil {
			return err
		}
		return enc.Encode(struct {
			Entities []entity.Entity `json:"entities"`
			Next     string          `json:"next,omitempty"`
		}{entities, next})

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseEntity(raw string) (entity.Entity, error) {
	var e entity.Entity
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, errors.NewValidationError("json", err.Error())
	}
	return e, nil
}
