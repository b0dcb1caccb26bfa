package minigame

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/persistence"
)

type txKey struct{}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testCatalog(t *testing.T) *entity.Catalog {
	t.Helper()
	catalog, err := entity.NewCatalog(entity.DefaultGames())
	require.NoError(t, err)
	return catalog
}

// lenientLogger accepts any log call
func lenientLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

type recorderFixture struct {
	uow      *persistencemocks.MockUnitOfWork
	users    *persistencemocks.MockUserRepository
	sessions *persistencemocks.MockSessionRepository
	results  *persistencemocks.MockResultRepository
	ledger   *persistencemocks.MockTransactionRepository
	locks    *persistencemocks.MockUserLockRepository
	limiter  *coremocks.MockRateLimiter
	ids      *coremocks.MockIDGenerator
	clock    *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
	txCtx    context.Context
}

func newRecorderFixture(t *testing.T) *recorderFixture {
	f := &recorderFixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		users:    persistencemocks.NewMockUserRepository(t),
		sessions: persistencemocks.NewMockSessionRepository(t),
		results:  persistencemocks.NewMockResultRepository(t),
		ledger:   persistencemocks.NewMockTransactionRepository(t),
		locks:    persistencemocks.NewMockUserLockRepository(t),
		limiter:  coremocks.NewMockRateLimiter(t),
		ids:      coremocks.NewMockIDGenerator(t),
		clock:    coremocks.NewMockTimeProvider(t),
		logger:   lenientLogger(t),
		txCtx:    context.WithValue(context.Background(), txKey{}, "tx"),
	}

	var mu sync.Mutex
	seq := 0
	f.ids.EXPECT().NewID().RunAndReturn(func() string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return fmt.Sprintf("id-%02d", seq)
	}).Maybe()
	f.clock.EXPECT().Now().Return(fixedNow).Maybe()

	return f
}

func (f *recorderFixture) recorder(t *testing.T, settings Settings) *ResultRecorder {
	return NewResultRecorder(
		testCatalog(t),
		f.uow,
		f.locks,
		f.limiter,
		f.ids,
		f.clock,
		f.logger,
		NewResultValidator(),
		NewIdempotencyHandler(f.results, f.users, f.sessions),
		settings,
	)
}

// expectLock expects the user lock to be taken and released exactly once
func (f *recorderFixture) expectLock(userID uint64) {
	owner := fmt.Sprintf("lock-%d", userID)
	f.locks.EXPECT().AcquireLock(mock.Anything, userID, 5*time.Second).Return(owner, nil).Once()
	f.locks.EXPECT().ReleaseLock(mock.Anything, userID, owner).Return(nil).Once()
}

// expectTx wires the transactional repositories for n transactions
func (f *recorderFixture) expectTx(n int) {
	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Times(n)
	f.uow.EXPECT().GetUserRepository(f.txCtx).Return(f.users).Times(n)
	f.uow.EXPECT().GetSessionRepository(f.txCtx).Return(f.sessions).Times(n)
	f.uow.EXPECT().GetResultRepository(f.txCtx).Return(f.results).Times(n)
	f.uow.EXPECT().GetTransactionRepository(f.txCtx).Return(f.ledger).Times(n)
}

func (f *recorderFixture) expectImmediateBackoff() {
	f.clock.EXPECT().After(mock.Anything).RunAndReturn(func(coreport.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- fixedNow
		return ch
	})
}

func restoredUser(t *testing.T, id uint64, gc, sc int64) *entity.User {
	t.Helper()
	user, err := entity.RestoreUser(id, fmt.Sprintf("player%d", id), gc, sc, fixedNow, fixedNow, 0)
	require.NoError(t, err)
	return user
}
