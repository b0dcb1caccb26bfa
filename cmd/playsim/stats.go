package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/minigame-rewards/internal/playclient"
)

// Outcome kinds counted by the simulator
const (
	kindCredited    = "credited"
	kindNotEligible = "not eligible"
	kindLostRace    = "lost race"
	kindAbandoned   = "abandoned"
	kindFailed      = "failed"
)

// PlayResult is one simulated play
type PlayResult struct {
	UserID   uint64
	GameID   string
	Scenario string
	Kind     string
	Elapsed  time.Duration
	Err      error
}

// classify maps a controller answer to an outcome kind
func classify(outcome *playclient.Outcome, err error) string {
	var apiErr *playclient.APIError
	switch {
	case err == nil && outcome != nil && outcome.Credited:
		return kindCredited
	case errors.Is(err, playclient.ErrNotEligible):
		return kindNotEligible
	case errors.Is(err, playclient.ErrAbandoned):
		return kindAbandoned
	case errors.As(err, &apiErr) && apiErr.Status == 409:
		return kindLostRace
	default:
		return kindFailed
	}
}

// Stats aggregates play results
type Stats struct {
	mu        sync.Mutex
	results   []PlayResult
	kinds     map[string]int
	scenarios map[string]map[string]int
	errors    map[string]int
}

// NewStats creates an empty aggregate
func NewStats() *Stats {
	return &Stats{
		kinds:     make(map[string]int),
		scenarios: make(map[string]map[string]int),
		errors:    make(map[string]int),
	}
}

// Add records one result
func (s *Stats) Add(r PlayResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = append(s.results, r)
	s.kinds[r.Kind]++
	if s.scenarios[r.Scenario] == nil {
		s.scenarios[r.Scenario] = make(map[string]int)
	}
	s.scenarios[r.Scenario][r.Kind]++
	if r.Kind == kindFailed && r.Err != nil {
		s.errors[r.Err.Error()]++
	}
}

// Count returns how many results had kind
func (s *Stats) Count(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kinds[kind]
}

// DoubleCredits returns (user, game) pairs credited more than once
func (s *Stats) DoubleCredits() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	credited := make(map[string]int)
	for _, r := range s.results {
		if r.Kind == kindCredited {
			credited[fmt.Sprintf("user %d / %s", r.UserID, r.GameID)]++
		}
	}
	var dup []string
	for k, n := range credited {
		if n > 1 {
			dup = append(dup, k)
		}
	}
	sort.Strings(dup)
	return dup
}

// Percentile returns the p-th percentile of play latency
func (s *Stats) Percentile(p int) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.results) == 0 {
		return 0
	}
	times := make([]time.Duration, len(s.results))
	for i, r := range s.results {
		times[i] = r.Elapsed
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	idx := len(times) * p / 100
	if idx >= len(times) {
		idx = len(times) - 1
	}
	return times[idx]
}

// Print writes the report
func (s *Stats) Print(w io.Writer, total time.Duration) {
	s.mu.Lock()
	n := len(s.results)
	kinds := make(map[string]int, len(s.kinds))
	for k, v := range s.kinds {
		kinds[k] = v
	}
	s.mu.Unlock()

	fmt.Fprintln(w, "\n================= SIMULATION RESULTS =================")
	fmt.Fprintf(w, "Plays:               %d\n", n)
	for _, k := range []string{kindCredited, kindNotEligible, kindLostRace, kindAbandoned, kindFailed} {
		pct := 0.0
		if n > 0 {
			pct = float64(kinds[k]) / float64(n) * 100
		}
		fmt.Fprintf(w, "%-20s %d (%.1f%%)\n", k+":", kinds[k], pct)
	}
	fmt.Fprintf(w, "Total Time:          %.2f seconds\n", total.Seconds())

	fmt.Fprintln(w, "\n----------------- PLAY LATENCY -----------------")
	fmt.Fprintf(w, "P50:                 %v\n", s.Percentile(50))
	fmt.Fprintf(w, "P90:                 %v\n", s.Percentile(90))
	fmt.Fprintf(w, "P99:                 %v\n", s.Percentile(99))

	s.mu.Lock()
	names := make([]string, 0, len(s.scenarios))
	for name := range s.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "\n----------------- SCENARIOS -----------------")
	for _, name := range names {
		fmt.Fprintf(w, "%-15s: %v\n", name, s.scenarios[name])
	}
	if len(s.errors) > 0 {
		fmt.Fprintln(w, "\n----------------- ERRORS -----------------")
		for msg, count := range s.errors {
			fmt.Fprintf(w, "%-60s: %d\n", msg, count)
		}
	}
	s.mu.Unlock()

	fmt.Fprintln(w, "\n================= CONCLUSION =================")
	if dup := s.DoubleCredits(); len(dup) > 0 {
		fmt.Fprintf(w, "FAIL: %d user/game pairs were credited more than once: %v\n", len(dup), dup)
	} else {
		fmt.Fprintln(w, "OK: no user/game pair was credited more than once")
	}
	fmt.Fprintln(w, "======================================================")
}
