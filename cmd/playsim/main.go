package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/minigame-rewards/internal/playclient"
)

// job is one player session to simulate
type job struct {
	userID   uint64
	gameID   string
	scenario string
}

type options struct {
	baseURL     string
	userIDs     []uint64
	games       []string
	concurrency int
	speedup     float64
	doubleTab   bool
	seed        int64
	logLevel    string
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	usersFlag := flag.String("u", "1,2,3", "Comma-separated list of user IDs")
	gamesFlag := flag.String("games", "", "Comma-separated game ids (default: whole catalog)")
	concurrency := flag.Int("c", 5, "Number of concurrent players")
	speedup := flag.Float64("speedup", 600, "Game time compression; 600 plays a 60s game in 100ms")
	doubleTab := flag.Bool("double-tab", true, "Also play every game from two tabs of the same user at once")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for simulated scores")
	logLevel := flag.String("log", "warn", "Log level")
	flag.Parse()

	opts := options{
		baseURL:     *baseURL,
		userIDs:     parseUserIDs(*usersFlag),
		concurrency: *concurrency,
		speedup:     *speedup,
		doubleTab:   *doubleTab,
		seed:        *seed,
		logLevel:    *logLevel,
	}
	if *gamesFlag != "" {
		opts.games = strings.Split(*gamesFlag, ",")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintln(os.Stderr, "playsim:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	log, err := logger.NewZapLogger(logger.Options{
		Format: "console",
		Output: "stderr",
		Level:  core.ParseLogLevel(opts.logLevel),
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ids := idgen.NewULIDGenerator(tp)
	client := playclient.NewAPIClient(opts.baseURL, playclient.WithRequestIDs(uuid.NewString))

	games := opts.games
	durations := make(map[string]time.Duration)
	catalog, err := client.Games(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	for _, g := range catalog {
		durations[g.ID] = time.Duration(g.DurationSeconds) * time.Second
		if len(opts.games) == 0 {
			games = append(games, g.ID)
		}
	}

	jobs := buildJobs(opts.userIDs, games, opts.doubleTab)

	fmt.Printf("Simulating %d users on %d games: %v\n", len(opts.userIDs), len(games), games)
	fmt.Printf("Players: %d (concurrency %d, double-tab %v, seed %d)\n", len(jobs), opts.concurrency, opts.doubleTab, opts.seed)

	stats := NewStats()
	queue := make(chan job)
	var wg sync.WaitGroup
	start := tp.Now()

	for i := 0; i < opts.concurrency; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := range queue {
				game := playclient.NewSimulatedGame(j.gameID, tp, opts.seed+int64(worker)*7919+int64(j.userID))
				game.Speedup = opts.speedup

				ctrl := playclient.NewController(client, game, j.userID, playclient.ControllerOptions{
					Duration:      durations[j.gameID],
					ClientVersion: "playsim",
					TimeProvider:  tp,
					IDGenerator:   ids,
					Logger:        log,
				})

				began := tp.Now()
				outcome, err := ctrl.Play(ctx)
				ctrl.Close()

				stats.Add(PlayResult{
					UserID:   j.userID,
					GameID:   j.gameID,
					Scenario: j.scenario,
					Kind:     classify(outcome, err),
					Elapsed:  time.Duration(tp.Since(began)),
					Err:      err,
				})
			}
		}(i)
	}

	for _, j := range jobs {
		select {
		case queue <- j:
		case <-ctx.Done():
		}
	}
	close(queue)
	wg.Wait()

	stats.Print(os.Stdout, time.Duration(tp.Since(start)))
	if len(stats.DoubleCredits()) > 0 {
		return fmt.Errorf("double credit detected")
	}
	return nil
}

// buildJobs creates one player per (user, game); with doubleTab a second
// player for the same pair runs alongside the first
func buildJobs(userIDs []uint64, games []string, doubleTab bool) []job {
	var jobs []job
	for _, u := range userIDs {
		for _, g := range games {
			jobs = append(jobs, job{userID: u, gameID: g, scenario: "single"})
			if doubleTab {
				jobs = append(jobs, job{userID: u, gameID: g, scenario: "double-tab"})
			}
		}
	}
	return jobs
}

func parseUserIDs(raw string) []uint64 {
	var ids []uint64
	for _, s := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		ids = []uint64{1}
	}
	return ids
}
