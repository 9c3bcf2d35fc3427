package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, sessionID string, game entity.Game) error {
	args := that.Called(ctx, sessionID, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, sessionID string) (entity.Game, error) {
	args := that.Called(ctx, sessionID)
	return args.Get(0).(entity.Game), args.Error(1)
}

func newMockGameRepo(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockGameRepo {
	m := &mockGameRepo{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
