package queries

import (
	"context"

	"compute-market/internal/infra"
	"compute-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type MatchReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MatchView, error)
	List(ctx context.Context) ([]*MatchView, error)
}

type MatchQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MatchView, error)
	List(ctx context.Context) ([]*MatchView, error)
}

type matchQueriesImpl struct {
	readStore MatchReadStore
}

func NewMatchQueries(readStore MatchReadStore) MatchQueries {
	return &matchQueriesImpl{readStore: readStore}
}

func (q *matchQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MatchView, error) {
	m, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (q *matchQueriesImpl) List(ctx context.Context) ([]*MatchView, error) {
	return q.readStore.List(ctx)
}
