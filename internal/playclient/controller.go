package playclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/logger"
)

// State is a step of the play loop
type State string

const (
	StateIdle           State = "idle"
	StateCountdownCheck State = "countdown-check"
	StatePlaying        State = "playing"
	StateEnded          State = "ended"
)

// MessageTryAgain is shown when a result could not be recorded
const MessageTryAgain = "Something went wrong while saving your game. No reward was credited, please try again."

var (
	// ErrBusy is returned when a play is started while another is in progress
	ErrBusy = errors.New("a play is already in progress")
	// ErrNotEligible is returned when the game is still on cooldown
	ErrNotEligible = errors.New("mini-game is on cooldown")
	// ErrAbandoned is returned when the player left before the game ended; nothing was recorded
	ErrAbandoned = errors.New("play abandoned before the end")
	// ErrNotRecorded is returned when the server did not credit the play
	ErrNotRecorded = errors.New("result was not recorded")
)

// Backend is the part of the API the controller talks to
type Backend interface {
	CheckSession(ctx context.Context, userID uint64, gameID string) (*dto.SessionResponse, error)
	RecordResult(ctx context.Context, req dto.RecordResultRequest) (*dto.RecordResultResponse, error)
}

// Outcome is what the player is shown after a play
type Outcome struct {
	Credited       bool
	Message        string
	Score          Score
	Reward         dto.CurrencyAmounts
	NewBalance     dto.CurrencyAmounts
	NextAvailable  time.Time
	RewardAdjusted bool
}

// ControllerOptions configures a Controller
type ControllerOptions struct {
	// Duration is the length of one play
	Duration      time.Duration
	ClientVersion string
	TimeProvider  core.TimeProvider
	IDGenerator   core.IDGenerator
	Logger        core.Logger

	// OnState is called on every state transition
	OnState func(State)
	// OnTick is called with the seconds left while a cooldown is displayed
	OnTick func(remaining int64)
}

// Controller drives one mini-game for one player:
// idle -> countdown-check -> playing -> ended -> idle.
type Controller struct {
	backend Backend
	game    Game
	userID  uint64
	opts    ControllerOptions

	mu         sync.Mutex
	state      State
	countdown  *Countdown
	cancelPlay context.CancelFunc
}

// NewController creates a controller in the idle state
func NewController(backend Backend, game Game, userID uint64, opts ControllerOptions) *Controller {
	if opts.Duration <= 0 {
		opts.Duration = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNoopLogger()
	}
	return &Controller{
		backend: backend,
		game:    game,
		userID:  userID,
		opts:    opts,
		state:   StateIdle,
	}
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SecondsRemaining returns the displayed cooldown, 0 when the game can be played
func (c *Controller) SecondsRemaining() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.countdown == nil {
		return 0
	}
	return c.countdown.Remaining()
}

// Refresh asks the server for eligibility and starts a local countdown when
// the game is on cooldown. The countdown lives as long as ctx.
func (c *Controller) Refresh(ctx context.Context) (*dto.SessionResponse, error) {
	if !c.transition(StateIdle, StateCountdownCheck) {
		return nil, ErrBusy
	}
	defer c.setState(StateIdle)

	return c.check(ctx)
}

// Play runs one full turn. Cancelling ctx while playing discards the score and
// records nothing.
func (c *Controller) Play(ctx context.Context) (*Outcome, error) {
	if !c.transition(StateIdle, StateCountdownCheck) {
		return nil, ErrBusy
	}

	session, err := c.check(ctx)
	if err != nil {
		c.setState(StateIdle)
		return nil, err
	}
	if !session.CanPlay {
		c.setState(StateIdle)
		return nil, fmt.Errorf("%w: %ds remaining", ErrNotEligible, session.SecondsRemaining)
	}

	playCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancelPlay = cancel
	c.mu.Unlock()
	c.setState(StatePlaying)

	score, err := c.game.Play(playCtx, c.opts.Duration)

	c.mu.Lock()
	c.cancelPlay = nil
	c.mu.Unlock()
	cancel()

	if err != nil {
		c.setState(StateIdle)
		c.opts.Logger.Info("Play abandoned", map[string]any{
			"user_id": c.userID,
			"game_id": c.game.ID(),
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrAbandoned, err)
	}

	c.setState(StateEnded)
	outcome, err := c.record(ctx, score)
	c.setState(StateIdle)
	return outcome, err
}

// Abandon stops a running play without recording it
func (c *Controller) Abandon() {
	c.mu.Lock()
	cancel := c.cancelPlay
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Close abandons any play and stops the countdown
func (c *Controller) Close() {
	c.Abandon()
	c.stopCountdown()
}

func (c *Controller) check(ctx context.Context) (*dto.SessionResponse, error) {
	session, err := c.backend.CheckSession(ctx, c.userID, c.game.ID())
	if err != nil {
		return nil, err
	}
	if session.CanPlay {
		c.stopCountdown()
	} else {
		c.startCountdown(ctx, session.SecondsRemaining)
	}
	return session, nil
}

func (c *Controller) record(ctx context.Context, score Score) (*Outcome, error) {
	req := dto.RecordResultRequest{
		GameID:        c.game.ID(),
		UserID:        c.userID,
		Score:         &score.Points,
		Penalty:       score.Penalty,
		Duration:      score.Elapsed.Seconds(),
		ClientVersion: c.opts.ClientVersion,
	}
	if c.opts.IDGenerator != nil {
		req.AttemptID = c.opts.IDGenerator.NewID()
	}

	resp, err := c.backend.RecordResult(ctx, req)
	if err != nil {
		return c.recordFailed(ctx, score, err)
	}

	outcome := &Outcome{
		Credited:       resp.Success,
		Score:          score,
		Reward:         resp.Reward,
		NewBalance:     resp.NewBalance,
		NextAvailable:  resp.NextAvailable,
		RewardAdjusted: resp.RewardAdjusted,
		Message:        rewardMessage(resp.Reward),
	}
	if c.opts.TimeProvider != nil && !resp.NextAvailable.IsZero() {
		wait := resp.NextAvailable.Sub(c.opts.TimeProvider.Now())
		c.startCountdown(ctx, int64((wait+time.Second-1)/time.Second))
	}
	return outcome, nil
}

func (c *Controller) recordFailed(ctx context.Context, score Score, err error) (*Outcome, error) {
	outcome := &Outcome{Score: score, Message: MessageTryAgain}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.IsCooldown() {
		// another device recorded this game first
		outcome.Message = "This game was already played. Come back when the cooldown ends."
		outcome.NextAvailable = *apiErr.NextAvailable
		c.startCountdown(ctx, apiErr.SecondsRemaining)
	}

	c.opts.Logger.Warn("Recording result failed", map[string]any{
		"user_id": c.userID,
		"game_id": c.game.ID(),
		"score":   score.Points,
		"error":   err.Error(),
	})
	return outcome, fmt.Errorf("%w: %w", ErrNotRecorded, err)
}

func rewardMessage(r dto.CurrencyAmounts) string {
	if isZeroAmount(r.SC) && isZeroAmount(r.GC) {
		return "No coins this time. Try again after the cooldown!"
	}
	return fmt.Sprintf("You earned %s SC and %s GC!", r.SC, r.GC)
}

func isZeroAmount(a string) bool {
	return a == "" || a == "0" || a == "0.00"
}

func (c *Controller) startCountdown(ctx context.Context, seconds int64) {
	c.stopCountdown()
	if seconds <= 0 || c.opts.TimeProvider == nil {
		return
	}
	cd := StartCountdown(ctx, c.opts.TimeProvider, seconds, c.opts.OnTick)
	c.mu.Lock()
	c.countdown = cd
	c.mu.Unlock()
}

func (c *Controller) stopCountdown() {
	c.mu.Lock()
	cd := c.countdown
	c.countdown = nil
	c.mu.Unlock()
	if cd != nil {
		cd.Stop()
	}
}

func (c *Controller) transition(from, to State) bool {
	c.mu.Lock()
	if c.state != from {
		c.mu.Unlock()
		return false
	}
	c.state = to
	c.mu.Unlock()
	c.notify(to)
	return true
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
	c.notify(s)
}

func (c *Controller) notify(s State) {
	if c.opts.OnState != nil {
		c.opts.OnState(s)
	}
}
