package user

import (
	"context"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
)

// defaultUser is a demo player created on startup
type defaultUser struct {
	id       uint64
	username string
	gc       string
	sc       string
}

var defaultUsers = []defaultUser{
	{id: 1, username: "alice", gc: "1000.00", sc: "10.00"},
	{id: 2, username: "bob", gc: "2000.00", sc: "20.00"},
	{id: 3, username: "carol", gc: "3000.00", sc: "30.00"},
	{id: 4, username: "dave", gc: "4000.00", sc: "40.00"},
	{id: 5, username: "erin", gc: "5000.00", sc: "50.00"},
}

// CreateUser creates a new user with the given ID and starting balances
func (u *UserUseCase) CreateUser(ctx context.Context, id uint64, username, initialGC, initialSC string) (*entity.User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}

	if _, err := entity.ValidateAndConvertAmount(initialGC); err != nil {
		return nil, err
	}
	if _, err := entity.ValidateAndConvertAmount(initialSC); err != nil {
		return nil, err
	}

	exists, err := u.UserExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateUser
	}

	user, err := entity.NewUser(id, username, initialGC, initialSC, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":    id,
		"username":  username,
		"initialGC": initialGC,
		"initialSC": initialSC,
	})

	return user, nil
}

// CreateDefaultUsers creates the demo players with IDs 1 to 5 when they are missing
func (u *UserUseCase) CreateDefaultUsers(ctx context.Context) error {
	for _, du := range defaultUsers {
		exists, err := u.UserExists(ctx, du.id)
		if err != nil {
			return err
		}

		if exists {
			u.logger.Info("Default user already exists", map[string]any{
				"userId": du.id,
			})
			continue
		}

		if _, err := u.CreateUser(ctx, du.id, du.username, du.gc, du.sc); err != nil {
			return err
		}
	}

	u.logger.Info("Default users created or verified", nil)
	return nil
}
