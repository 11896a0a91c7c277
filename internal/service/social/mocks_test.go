package social

import (
	"context"
	"sync"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

var _ followRepo = &followRepoMock{}

type followRepoMock struct {
	InsertFunc         func(ctx context.Context, e domain.FollowEdge) (bool, error)
	DeleteFunc         func(ctx context.Context, followerRef string, babyID string) (bool, error)
	ExistsFunc         func(ctx context.Context, followerRef string, babyID string) (bool, error)
	ListByFollowerFunc func(ctx context.Context, followerRef string) ([]domain.FollowEdge, error)

	calls struct {
		Insert []struct {
			E domain.FollowEdge
		}
		Delete []struct {
			FollowerRef string
			BabyID      string
		}
		Exists []struct {
			FollowerRef string
			BabyID      string
		}
		ListByFollower []struct {
			FollowerRef string
		}
	}
	lockInsert         sync.RWMutex
	lockDelete         sync.RWMutex
	lockExists         sync.RWMutex
	lockListByFollower sync.RWMutex
}

func (mock *followRepoMock) Insert(ctx context.Context, e domain.FollowEdge) (bool, error) {
	if mock.InsertFunc == nil {
		panic("followRepoMock.InsertFunc: method is nil but followRepo.Insert was just called")
	}
	callInfo := struct {
		E domain.FollowEdge
	}{E: e}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, e)
}

func (mock *followRepoMock) InsertCalls() []struct {
	E domain.FollowEdge
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *followRepoMock) Delete(ctx context.Context, followerRef string, babyID string) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("followRepoMock.DeleteFunc: method is nil but followRepo.Delete was just called")
	}
	callInfo := struct {
		FollowerRef string
		BabyID      string
	}{FollowerRef: followerRef, BabyID: babyID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, followerRef, babyID)
}

func (mock *followRepoMock) DeleteCalls() []struct {
	FollowerRef string
	BabyID      string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *followRepoMock) Exists(ctx context.Context, followerRef string, babyID string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("followRepoMock.ExistsFunc: method is nil but followRepo.Exists was just called")
	}
	callInfo := struct {
		FollowerRef string
		BabyID      string
	}{FollowerRef: followerRef, BabyID: babyID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, followerRef, babyID)
}

func (mock *followRepoMock) ExistsCalls() []struct {
	FollowerRef string
	BabyID      string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *followRepoMock) ListByFollower(ctx context.Context, followerRef string) ([]domain.FollowEdge, error) {
	if mock.ListByFollowerFunc == nil {
		panic("followRepoMock.ListByFollowerFunc: method is nil but followRepo.ListByFollower was just called")
	}
	callInfo := struct {
		FollowerRef string
	}{FollowerRef: followerRef}
	mock.lockListByFollower.Lock()
	mock.calls.ListByFollower = append(mock.calls.ListByFollower, callInfo)
	mock.lockListByFollower.Unlock()
	return mock.ListByFollowerFunc(ctx, followerRef)
}

func (mock *followRepoMock) ListByFollowerCalls() []struct {
	FollowerRef string
} {
	mock.lockListByFollower.RLock()
	calls := mock.calls.ListByFollower
	mock.lockListByFollower.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByBabyIDFunc  func(ctx context.Context, babyID string) (*domain.BabyProfile, error)
	GetByBabyIDsFunc func(ctx context.Context, babyIDs []string) ([]domain.BabyProfile, error)
	SearchFunc       func(ctx context.Context, keyword string, limit int) ([]domain.BabyProfile, error)

	calls struct {
		GetByBabyID []struct {
			BabyID string
		}
		GetByBabyIDs []struct {
			BabyIDs []string
		}
		Search []struct {
			Keyword string
			Limit   int
		}
	}
	lockGetByBabyID  sync.RWMutex
	lockGetByBabyIDs sync.RWMutex
	lockSearch       sync.RWMutex
}

func (mock *profileRepoMock) GetByBabyID(ctx context.Context, babyID string) (*domain.BabyProfile, error) {
	if mock.GetByBabyIDFunc == nil {
		panic("profileRepoMock.GetByBabyIDFunc: method is nil but profileRepo.GetByBabyID was just called")
	}
	callInfo := struct {
		BabyID string
	}{BabyID: babyID}
	mock.lockGetByBabyID.Lock()
	mock.calls.GetByBabyID = append(mock.calls.GetByBabyID, callInfo)
	mock.lockGetByBabyID.Unlock()
	return mock.GetByBabyIDFunc(ctx, babyID)
}

func (mock *profileRepoMock) GetByBabyIDCalls() []struct {
	BabyID string
} {
	mock.lockGetByBabyID.RLock()
	calls := mock.calls.GetByBabyID
	mock.lockGetByBabyID.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByBabyIDs(ctx context.Context, babyIDs []string) ([]domain.BabyProfile, error) {
	if mock.GetByBabyIDsFunc == nil {
		panic("profileRepoMock.GetByBabyIDsFunc: method is nil but profileRepo.GetByBabyIDs was just called")
	}
	callInfo := struct {
		BabyIDs []string
	}{BabyIDs: babyIDs}
	mock.lockGetByBabyIDs.Lock()
	mock.calls.GetByBabyIDs = append(mock.calls.GetByBabyIDs, callInfo)
	mock.lockGetByBabyIDs.Unlock()
	return mock.GetByBabyIDsFunc(ctx, babyIDs)
}

func (mock *profileRepoMock) GetByBabyIDsCalls() []struct {
	BabyIDs []string
} {
	mock.lockGetByBabyIDs.RLock()
	calls := mock.calls.GetByBabyIDs
	mock.lockGetByBabyIDs.RUnlock()
	return calls
}

func (mock *profileRepoMock) Search(ctx context.Context, keyword string, limit int) ([]domain.BabyProfile, error) {
	if mock.SearchFunc == nil {
		panic("profileRepoMock.SearchFunc: method is nil but profileRepo.Search was just called")
	}
	callInfo := struct {
		Keyword string
		Limit   int
	}{Keyword: keyword, Limit: limit}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, keyword, limit)
}

func (mock *profileRepoMock) SearchCalls() []struct {
	Keyword string
	Limit   int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Fn func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Fn func(ctx context.Context) error
	}{Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Fn func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
