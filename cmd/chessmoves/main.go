package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hailam/chessmoves/internal/analysis"
	"github.com/hailam/chessmoves/internal/board"
	"github.com/hailam/chessmoves/internal/config"
	"github.com/hailam/chessmoves/internal/storage"
)

var (
	configPath = flag.String("config", "", "path to a config file (yaml, toml or json)")
	fenFlag    = flag.String("fen", board.StartPlacement, "board as a FEN string or placement field")
	squareFlag = flag.String("square", "", "origin square, e.g. e2; empty lists every move for -side")
	sideFlag   = flag.String("side", "white", "team to list when -square is empty (white or black)")
	saveFlag   = flag.String("save", "", "store the board under this name")
	loadFlag   = flag.String("load", "", "load a stored board instead of -fen")
	listFlag   = flag.Bool("list", false, "list stored boards and exit")
	boardFlag  = flag.Bool("board", false, "print the board diagram")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
		log.Info().Str("path", profilePath).Msg("CPU profiling enabled")
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("chessmoves failed")
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	var store *storage.Storage
	if *saveFlag != "" || *loadFlag != "" || *listFlag {
		s, err := openStorage(cfg)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	// The move cache is best-effort: a locked or unreadable database only
	// disables it.
	cache := store
	if cfg.Cache && cache == nil {
		s, err := openStorage(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("move cache unavailable")
		} else {
			defer s.Close()
			cache = s
		}
	}

	if *listFlag {
		names, err := store.ListBoards()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	g, err := loadGrid(store)
	if err != nil {
		return err
	}

	if *saveFlag != "" {
		name, err := store.SaveBoard(*saveFlag, g)
		if err != nil {
			return err
		}
		log.Info().Str("name", name).Msg("board saved")
	}

	if *boardFlag {
		fmt.Fprint(out, g.String())
	}

	opts := []analysis.Option{
		analysis.WithWorkers(cfg.Workers),
		analysis.WithLogger(log.Logger),
	}
	if cfg.Cache && cache != nil {
		opts = append(opts, analysis.WithCache(cache, storage.CacheKey))
	}
	a := analysis.New(opts...)

	moves, err := generate(ctx, a, g)
	if err != nil {
		return err
	}

	board.SortMoves(moves)
	for _, m := range moves {
		fmt.Fprintln(out, m)
	}
	log.Debug().Int("moves", len(moves)).Msg("generation complete")
	return nil
}

func generate(ctx context.Context, a *analysis.Analyzer, g *board.Grid) ([]board.Move, error) {
	if *squareFlag != "" {
		origin, err := board.ParsePosition(*squareFlag)
		if err != nil {
			return nil, err
		}
		if g.IsEmpty(origin) {
			log.Warn().Str("square", origin.String()).Msg("no piece on square")
		}
		return a.Moves(ctx, g, origin)
	}

	side, ok := board.ParseColor(*sideFlag)
	if !ok {
		return nil, fmt.Errorf("invalid side %q", *sideFlag)
	}
	return a.Side(ctx, g, side)
}

func loadGrid(store *storage.Storage) (*board.Grid, error) {
	if *loadFlag != "" {
		return store.LoadBoard(*loadFlag)
	}
	return board.ParseFEN(*fenFlag)
}

func openStorage(cfg *config.Config) (*storage.Storage, error) {
	dir := cfg.DBPath
	if dir == "" {
		d, err := storage.GetDatabaseDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return storage.Open(dir)
}
