package minigame

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/usecase"
)

// Stages of the recording pipeline, reported in RecordError
const (
	stageValidate = "validate"
	stageReplay   = "replay"
	stageLimit    = "rate_limit"
	stageLock     = "lock"
	stagePersist  = "persist"
)

// ResultRecorder credits a finished play and starts its cooldown in one database transaction.
// Unlike eligibility it never degrades: any storage failure aborts the recording.
type ResultRecorder struct {
	catalog      *entity.Catalog
	uow          persistence.UnitOfWork
	userLockRepo persistence.UserLockRepository
	limiter      coreport.RateLimiter
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *ResultValidator
	idempotency  *IdempotencyHandler
	settings     Settings
}

// NewResultRecorder creates a new ResultRecorder
func NewResultRecorder(
	catalog *entity.Catalog,
	uow persistence.UnitOfWork,
	userLockRepo persistence.UserLockRepository,
	limiter coreport.RateLimiter,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	validator *ResultValidator,
	idempotency *IdempotencyHandler,
	settings Settings,
) *ResultRecorder {
	return &ResultRecorder{
		catalog:      catalog,
		uow:          uow,
		userLockRepo: userLockRepo,
		limiter:      limiter,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    validator,
		idempotency:  idempotency,
		settings:     settings.withDefaults(),
	}
}

// Record validates the play, computes the reward server-side and persists
// result, balances, ledger entries and cooldown atomically.
func (r *ResultRecorder) Record(ctx context.Context, req usecase.RecordRequest) (*usecase.RecordOutcome, error) {
	game, err := r.catalog.Get(req.GameID)
	if err != nil {
		return nil, errs.NewRecordError(req.UserID, req.GameID, req.Score, stageValidate, err)
	}
	if err := r.validator.Validate(game, req); err != nil {
		return nil, errs.NewRecordError(req.UserID, req.GameID, req.Score, stageValidate, err)
	}

	if outcome, err := r.replay(ctx, req); err != nil || outcome != nil {
		return outcome, err
	}

	if r.limiter != nil && !r.limiter.Allow(limiterKey(req.UserID, req.GameID)) {
		r.logger.Warn("Result submission rate limited", map[string]any{
			"user_id": req.UserID,
			"game_id": req.GameID,
		})
		return nil, errs.NewRecordError(req.UserID, req.GameID, req.Score, stageLimit, errs.ErrRateLimited)
	}

	reward := entity.CalculateReward(game, req.Score, req.PenaltyUnits)
	adjusted := r.rewardAdjusted(req, reward)

	lockOwner, err := r.userLockRepo.AcquireLock(ctx, req.UserID, r.settings.LockTimeout)
	if err != nil {
		return nil, errs.NewRecordError(req.UserID, req.GameID, req.Score, stageLock, err)
	}
	defer func() {
		if err := r.userLockRepo.ReleaseLock(context.WithoutCancel(ctx), req.UserID, lockOwner); err != nil {
			r.logger.Error("Failed to release user lock", map[string]any{
				"user_id": req.UserID,
				"error":   err.Error(),
			})
		}
	}()

	var outcome *usecase.RecordOutcome
	for attempt := 1; ; attempt++ {
		outcome, err = r.recordOnce(ctx, game, req, reward, adjusted)
		if err == nil || !errs.IsTransientError(err) || attempt >= r.settings.MaxAttempts {
			break
		}

		backoff := r.settings.RetryBackoff << (attempt - 1)
		r.logger.Warn("Retrying result recording after conflict", map[string]any{
			"user_id": req.UserID,
			"game_id": req.GameID,
			"attempt": attempt,
			"backoff": backoff.String(),
			"error":   err.Error(),
		})

		select {
		case <-ctx.Done():
			return nil, errs.NewRecordError(req.UserID, req.GameID, req.Score, stagePersist, ctx.Err())
		case <-r.timeProvider.After(coreport.Duration(backoff)):
		}
	}

	if err != nil {
		// A duplicate attempt that lost the insert race is answered like any other replay.
		if errors.Is(err, errs.ErrConcurrentPlay) && req.AttemptID != "" {
			if outcome, replayErr := r.replay(ctx, req); replayErr == nil && outcome != nil {
				return outcome, nil
			}
		}
		recordErr := &errs.RecordError{
			UserID: req.UserID,
			GameID: req.GameID,
			Score:  req.Score,
			Stage:  stagePersist,
			Err:    err,
		}
		if errs.IsCooldownError(err) {
			r.logger.Info("Mini-game result rejected by cooldown", recordErr.LogFields())
		} else {
			r.logger.Error("Failed to record mini-game result", recordErr.LogFields())
		}
		return nil, recordErr
	}

	r.logger.Info("Mini-game result recorded", map[string]any{
		"user_id":         req.UserID,
		"game_id":         req.GameID,
		"result_id":       outcome.ResultID,
		"score":           req.Score,
		"sc_earned":       entity.AmountInCentsToString(reward.SC),
		"gc_earned":       entity.AmountInCentsToString(reward.GC),
		"reward_adjusted": adjusted,
	})

	return outcome, nil
}

// recordOnce runs one database transaction. Nothing is visible to other readers unless it commits.
func (r *ResultRecorder) recordOnce(
	ctx context.Context,
	game entity.GameConfig,
	req usecase.RecordRequest,
	reward entity.Reward,
	adjusted bool,
) (*usecase.RecordOutcome, error) {
	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := r.uow.Rollback(txCtx); rbErr != nil {
				r.logger.Error("Failed to rollback transaction", map[string]any{
					"user_id": req.UserID,
					"game_id": req.GameID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	userRepo := r.uow.GetUserRepository(txCtx)
	sessionRepo := r.uow.GetSessionRepository(txCtx)
	resultRepo := r.uow.GetResultRepository(txCtx)
	ledgerRepo := r.uow.GetTransactionRepository(txCtx)

	user, err := userRepo.GetByIDForUpdate(txCtx, req.UserID)
	if err != nil {
		return nil, err
	}

	isNew := false
	session, err := sessionRepo.GetForUpdate(txCtx, req.UserID, req.GameID)
	if errors.Is(err, errs.ErrSessionNotFound) {
		session, err = entity.NewMiniGameSession(req.UserID, req.GameID)
		isNew = true
	}
	if err != nil {
		return nil, err
	}

	// The clock is read after the row locks are held so two racing plays see a consistent order.
	now := r.timeProvider.Now()
	if !session.CanPlayAt(now) {
		return nil, errs.NewCooldownError(req.UserID, req.GameID, session.NextAvailable, session.SecondsRemaining(now))
	}

	result, err := entity.NewMiniGameResult(r.idGenerator.NewID(), req.UserID, req.GameID, req.Score, req.PenaltyUnits, reward, req.Duration, now)
	if err != nil {
		return nil, err
	}
	result.AttemptID = req.AttemptID
	result.Telemetry = map[string]any{
		"client_sc":       req.ClientSC,
		"client_gc":       req.ClientGC,
		"client_version":  req.ClientVersion,
		"reward_adjusted": adjusted,
		"duration_ms":     req.Duration.Milliseconds(),
	}
	if err := resultRepo.Create(txCtx, result); err != nil {
		return nil, err
	}

	entries, err := r.credit(user, game, req.Score, result.ID, reward)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		if err := userRepo.UpdateBalances(txCtx, user); err != nil {
			return nil, err
		}
	}

	session.RecordPlay(now, game.Cooldown(), req.Score, reward.SC)
	if isNew {
		err = sessionRepo.Create(txCtx, session)
	} else {
		err = sessionRepo.Update(txCtx, session)
	}
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if err := ledgerRepo.Create(txCtx, entry); err != nil {
			return nil, err
		}
	}

	if err := r.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	return &usecase.RecordOutcome{
		ResultID:       result.ID,
		Reward:         reward,
		NewBalance:     user.Balances(),
		Session:        session,
		RewardAdjusted: adjusted,
	}, nil
}

// credit applies the reward to the user and builds one ledger entry per nonzero currency
func (r *ResultRecorder) credit(
	user *entity.User,
	game entity.GameConfig,
	score int64,
	resultID string,
	reward entity.Reward,
) ([]*entity.Transaction, error) {
	amounts := reward.Balances()
	entries := make([]*entity.Transaction, 0, len(entity.Currencies))

	for _, currency := range entity.Currencies {
		amount := amounts.Get(currency)
		if amount == 0 {
			continue
		}

		previous, next, err := user.Credit(currency, amount, r.timeProvider)
		if err != nil {
			return nil, err
		}

		entry, err := entity.NewTransaction(
			r.idGenerator.NewID(),
			user.ID,
			entity.TypeMiniGameReward,
			currency,
			amount,
			previous,
			next,
			fmt.Sprintf("%s reward (score %d)", game.DisplayName, score),
			r.timeProvider,
		)
		if err != nil {
			return nil, err
		}
		entry.ResultID = resultID
		entries = append(entries, entry)
	}

	return entries, nil
}

// replay answers a repeated attempt with what was stored the first time
func (r *ResultRecorder) replay(ctx context.Context, req usecase.RecordRequest) (*usecase.RecordOutcome, error) {
	if req.AttemptID == "" || r.idempotency == nil {
		return nil, nil
	}

	found, err := r.idempotency.CheckIdempotency(ctx, req.AttemptID, req.UserID, req.GameID)
	if err != nil {
		return nil, errs.NewRecordError(req.UserID, req.GameID, req.Score, stageReplay, err)
	}
	if found == nil {
		return nil, nil
	}

	r.logger.Info("Replaying recorded mini-game result", map[string]any{
		"user_id":    req.UserID,
		"game_id":    req.GameID,
		"attempt_id": req.AttemptID,
		"result_id":  found.Result.ID,
	})

	return &usecase.RecordOutcome{
		ResultID:   found.Result.ID,
		Reward:     found.Result.Reward(),
		NewBalance: found.Balances,
		Session:    found.Session,
		Replayed:   true,
	}, nil
}

// rewardAdjusted compares the client's own reward computation with the server's
func (r *ResultRecorder) rewardAdjusted(req usecase.RecordRequest, reward entity.Reward) bool {
	if req.ClientSC == "" && req.ClientGC == "" {
		return false
	}

	adjusted := false
	if req.ClientSC != "" {
		sc, err := entity.ValidateAndConvertAmount(req.ClientSC)
		adjusted = adjusted || err != nil || sc != reward.SC
	}
	if req.ClientGC != "" {
		gc, err := entity.ValidateAndConvertAmount(req.ClientGC)
		adjusted = adjusted || err != nil || gc != reward.GC
	}

	if adjusted {
		r.logger.Warn("Client reward differs from server computation", map[string]any{
			"user_id":   req.UserID,
			"game_id":   req.GameID,
			"score":     req.Score,
			"client_sc": req.ClientSC,
			"client_gc": req.ClientGC,
			"server_sc": entity.AmountInCentsToString(reward.SC),
			"server_gc": entity.AmountInCentsToString(reward.GC),
		})
	}
	return adjusted
}

func limiterKey(userID uint64, gameID string) string {
	return fmt.Sprintf("%d:%s", userID, gameID)
}
