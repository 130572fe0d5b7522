package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
)

type mockController struct {
	mock.Mock
}

func (that *mockController) HandleClick(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func (that *mockController) State() entity.SelectionState {
	args := that.Called()
	return args.Get(0).(entity.SelectionState)
}

func (that *mockController) Reset() {
	that.Called()
}

type mockBoard struct {
	mock.Mock
}

func (that *mockBoard) Snapshot() *entity.BoardView {
	args := that.Called()
	return args.Get(0).(*entity.BoardView)
}

func (that *mockBoard) Reset() {
	that.Called()
}

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Append(ctx context.Context, sessionID string, record *entity.ValidationRecord) error {
	args := that.Called(ctx, sessionID, record)
	return args.Error(0)
}

func (that *mockResultRepo) List(ctx context.Context, sessionID string, limit int64) ([]*entity.ValidationRecord, error) {
	args := that.Called(ctx, sessionID, limit)
	return args.Get(0).([]*entity.ValidationRecord), args.Error(1)
}

func (that *mockResultRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	args := that.Called(ctx, sessionID)
	return args.Error(0)
}
