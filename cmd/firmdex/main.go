// Copyright 2026 Firmdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/firmdex/firmdex"
	"github.com/firmdex/firmdex/core"
	badgerstore "github.com/firmdex/firmdex/storage/badger"
)

func main() {
	app := &cli.App{
		Name:   "firmdex",
		Usage:  "Company directory search over a JSON dataset",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search companies in the dataset",
				ArgsUsage: "[free-text query]",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dataset",
						Aliases: []string{"d"},
						Usage:   "Path to JSON company dataset",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to BadgerDB history directory",
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "Comma-separated region codes or names (e.g. nsw,vic)",
					},
					&cli.StringSliceFlag{
						Name:  "service",
						Usage: "Desired service (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "size",
						Usage: "Team size category (repeatable)",
					},
					&cli.StringFlag{
						Name:  "industry",
						Usage: "Industry filter",
					},
					&cli.StringFlag{
						Name:  "abn",
						Usage: "Business number filter",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort key (relevance, name, rating)",
						Value: "relevance",
					},
					&cli.StringFlag{
						Name:  "order",
						Usage: "Sort order (asc, desc)",
						Value: "desc",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results to print",
						Value: 20,
					},
				},
			},
			{
				Name:      "suggest",
				Usage:     "Suggest search terms for partial input",
				ArgsUsage: "<partial input>",
				Action:    suggestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dataset",
						Aliases: []string{"d"},
						Usage:   "Path to JSON company dataset",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of suggestions",
						Value: 10,
					},
					&cli.BoolFlag{
						Name:  "locations",
						Usage: "Include location tokens in suggestions",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "Show or clear recorded searches",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to BadgerDB history directory",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of entries to print",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "Clear the history instead of listing it",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

func openDirectory(c *cli.Context, withHistory bool, extra ...firmdex.DirectoryOption) (*firmdex.Directory, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	dataset := c.String("dataset")
	if dataset == "" {
		dataset = cfg.Dataset
	}
	if dataset == "" {
		return nil, fmt.Errorf("no dataset: pass --dataset or set it in the config file")
	}

	companies, err := loadCompanies(dataset)
	if err != nil {
		return nil, err
	}

	opts := extra
	if withHistory {
		db := c.String("db")
		if db == "" {
			db = cfg.HistoryDB
		}
		if db != "" {
			opts = append(opts, firmdex.WithHistoryPath(db))
		}
		if cfg.HistoryCapacity > 0 {
			opts = append(opts, firmdex.WithHistoryCapacity(cfg.HistoryCapacity))
		}
	}
	if cfg.CacheSize > 0 {
		opts = append(opts, firmdex.WithCacheSize(cfg.CacheSize))
	}

	return firmdex.NewDirectory(companies, opts...)
}

func searchCommand(c *cli.Context) error {
	dir, err := openDirectory(c, true)
	if err != nil {
		return err
	}
	defer dir.Close()

	params := core.SearchParams{
		Query:     strings.Join(c.Args().Slice(), " "),
		Location:  c.String("location"),
		Services:  c.StringSlice("service"),
		Sizes:     c.StringSlice("size"),
		Industry:  c.String("industry"),
		ABN:       c.String("abn"),
		SortBy:    core.SortKey(c.String("sort")),
		SortOrder: core.SortOrder(c.String("order")),
	}

	results, err := dir.SearchScored(c.Context, params)
	if err != nil {
		return err
	}

	limit := c.Int("limit")
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	fmt.Printf("Found %d companies\n", len(results))
	for i, hit := range results {
		line := fmt.Sprintf("%d: %s", i+1, hit.Company.Name)
		if hit.Company.Industry != "" {
			line += " / " + hit.Company.Industry
		}
		if hit.Company.Rating > 0 {
			line += fmt.Sprintf(" (%.1f)", hit.Company.Rating)
		}
		if hit.Score > 0 {
			line += fmt.Sprintf(" [%.2f]", hit.Score)
		}
		fmt.Println(line)
	}
	return nil
}

func suggestCommand(c *cli.Context) error {
	input := strings.Join(c.Args().Slice(), " ")
	if input == "" {
		return fmt.Errorf("suggest requires a partial input argument")
	}

	var extra []firmdex.DirectoryOption
	if c.Bool("locations") {
		extra = append(extra, firmdex.WithLocationSuggestions())
	}

	dir, err := openDirectory(c, false, extra...)
	if err != nil {
		return err
	}
	defer dir.Close()

	for _, term := range dir.Suggest(input, c.Int("limit")) {
		fmt.Println(term)
	}
	return nil
}

func historyCommand(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	db := c.String("db")
	if db == "" {
		db = cfg.HistoryDB
	}
	if db == "" {
		return fmt.Errorf("no history database: pass --db or set it in the config file")
	}

	backend, err := badgerstore.OpenBackend(db, false)
	if err != nil {
		return err
	}
	defer backend.Close()

	var histOpts []badgerstore.HistoryOption
	if cfg.HistoryCapacity > 0 {
		histOpts = append(histOpts, badgerstore.WithCapacity(cfg.HistoryCapacity))
	}
	history, err := badgerstore.NewHistoryRepository(backend, histOpts...)
	if err != nil {
		return err
	}
	defer history.Close()

	if c.Bool("clear") {
		if err := history.Clear(c.Context); err != nil {
			return err
		}
		fmt.Println("history cleared")
		return nil
	}

	entries, err := history.ListSearches(c.Context, c.Int("limit"))
	if err != nil {
		return err
	}
	for i, entry := range entries {
		fmt.Printf("%d: %s %s\n", i+1, entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Params.CacheKey())
	}
	return nil
}
