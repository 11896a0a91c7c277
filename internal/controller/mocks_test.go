package controller

import (
	"context"
	"sync"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/media"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/service/baby"
	"github.com/heartmarshall/growthbox-backend/internal/service/record"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	ListFunc             func(ctx context.Context, sess *session.Session) domain.Result[[]domain.Record]
	ByDateFunc           func(ctx context.Context, sess *session.Session, date string) domain.Result[[]domain.Record]
	ByBabyFunc           func(ctx context.Context, sess *session.Session, babyID string) domain.Result[[]domain.Record]
	RecordDatesFunc      func(ctx context.Context, sess *session.Session) domain.Result[[]string]
	GetFunc              func(ctx context.Context, id string) domain.Result[domain.Record]
	SaveFunc             func(ctx context.Context, sess *session.Session, rec domain.Record) (domain.Record, bool)
	DeleteByIDFunc       func(ctx context.Context, sess *session.Session, id string) bool
	QueryBabyRecordsFunc func(ctx context.Context, babyID string, category string) record.QueryResponse

	calls struct {
		List []struct {
			Sess *session.Session
		}
		ByDate []struct {
			Sess *session.Session
			Date string
		}
		ByBaby []struct {
			Sess   *session.Session
			BabyID string
		}
		RecordDates []struct {
			Sess *session.Session
		}
		Get []struct {
			ID string
		}
		Save []struct {
			Sess *session.Session
			Rec  domain.Record
		}
		DeleteByID []struct {
			Sess *session.Session
			ID   string
		}
		QueryBabyRecords []struct {
			BabyID   string
			Category string
		}
	}
	lockList             sync.RWMutex
	lockByDate           sync.RWMutex
	lockByBaby           sync.RWMutex
	lockRecordDates      sync.RWMutex
	lockGet              sync.RWMutex
	lockSave             sync.RWMutex
	lockDeleteByID       sync.RWMutex
	lockQueryBabyRecords sync.RWMutex
}

func (mock *recordStoreMock) List(ctx context.Context, sess *session.Session) domain.Result[[]domain.Record] {
	if mock.ListFunc == nil {
		panic("recordStoreMock.ListFunc: method is nil but recordStore.List was just called")
	}
	callInfo := struct {
		Sess *session.Session
	}{Sess: sess}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, sess)
}

func (mock *recordStoreMock) ListCalls() []struct {
	Sess *session.Session
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recordStoreMock) ByDate(ctx context.Context, sess *session.Session, date string) domain.Result[[]domain.Record] {
	if mock.ByDateFunc == nil {
		panic("recordStoreMock.ByDateFunc: method is nil but recordStore.ByDate was just called")
	}
	callInfo := struct {
		Sess *session.Session
		Date string
	}{Sess: sess, Date: date}
	mock.lockByDate.Lock()
	mock.calls.ByDate = append(mock.calls.ByDate, callInfo)
	mock.lockByDate.Unlock()
	return mock.ByDateFunc(ctx, sess, date)
}

func (mock *recordStoreMock) ByDateCalls() []struct {
	Sess *session.Session
	Date string
} {
	mock.lockByDate.RLock()
	calls := mock.calls.ByDate
	mock.lockByDate.RUnlock()
	return calls
}

func (mock *recordStoreMock) ByBaby(ctx context.Context, sess *session.Session, babyID string) domain.Result[[]domain.Record] {
	if mock.ByBabyFunc == nil {
		panic("recordStoreMock.ByBabyFunc: method is nil but recordStore.ByBaby was just called")
	}
	callInfo := struct {
		Sess   *session.Session
		BabyID string
	}{Sess: sess, BabyID: babyID}
	mock.lockByBaby.Lock()
	mock.calls.ByBaby = append(mock.calls.ByBaby, callInfo)
	mock.lockByBaby.Unlock()
	return mock.ByBabyFunc(ctx, sess, babyID)
}

func (mock *recordStoreMock) ByBabyCalls() []struct {
	Sess   *session.Session
	BabyID string
} {
	mock.lockByBaby.RLock()
	calls := mock.calls.ByBaby
	mock.lockByBaby.RUnlock()
	return calls
}

func (mock *recordStoreMock) RecordDates(ctx context.Context, sess *session.Session) domain.Result[[]string] {
	if mock.RecordDatesFunc == nil {
		panic("recordStoreMock.RecordDatesFunc: method is nil but recordStore.RecordDates was just called")
	}
	callInfo := struct {
		Sess *session.Session
	}{Sess: sess}
	mock.lockRecordDates.Lock()
	mock.calls.RecordDates = append(mock.calls.RecordDates, callInfo)
	mock.lockRecordDates.Unlock()
	return mock.RecordDatesFunc(ctx, sess)
}

func (mock *recordStoreMock) RecordDatesCalls() []struct {
	Sess *session.Session
} {
	mock.lockRecordDates.RLock()
	calls := mock.calls.RecordDates
	mock.lockRecordDates.RUnlock()
	return calls
}

func (mock *recordStoreMock) Get(ctx context.Context, id string) domain.Result[domain.Record] {
	if mock.GetFunc == nil {
		panic("recordStoreMock.GetFunc: method is nil but recordStore.Get was just called")
	}
	callInfo := struct {
		ID string
	}{ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *recordStoreMock) GetCalls() []struct {
	ID string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *recordStoreMock) Save(ctx context.Context, sess *session.Session, rec domain.Record) (domain.Record, bool) {
	if mock.SaveFunc == nil {
		panic("recordStoreMock.SaveFunc: method is nil but recordStore.Save was just called")
	}
	callInfo := struct {
		Sess *session.Session
		Rec  domain.Record
	}{Sess: sess, Rec: rec}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, sess, rec)
}

func (mock *recordStoreMock) SaveCalls() []struct {
	Sess *session.Session
	Rec  domain.Record
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *recordStoreMock) DeleteByID(ctx context.Context, sess *session.Session, id string) bool {
	if mock.DeleteByIDFunc == nil {
		panic("recordStoreMock.DeleteByIDFunc: method is nil but recordStore.DeleteByID was just called")
	}
	callInfo := struct {
		Sess *session.Session
		ID   string
	}{Sess: sess, ID: id}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(ctx, sess, id)
}

func (mock *recordStoreMock) DeleteByIDCalls() []struct {
	Sess *session.Session
	ID   string
} {
	mock.lockDeleteByID.RLock()
	calls := mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}

func (mock *recordStoreMock) QueryBabyRecords(ctx context.Context, babyID string, category string) record.QueryResponse {
	if mock.QueryBabyRecordsFunc == nil {
		panic("recordStoreMock.QueryBabyRecordsFunc: method is nil but recordStore.QueryBabyRecords was just called")
	}
	callInfo := struct {
		BabyID   string
		Category string
	}{BabyID: babyID, Category: category}
	mock.lockQueryBabyRecords.Lock()
	mock.calls.QueryBabyRecords = append(mock.calls.QueryBabyRecords, callInfo)
	mock.lockQueryBabyRecords.Unlock()
	return mock.QueryBabyRecordsFunc(ctx, babyID, category)
}

func (mock *recordStoreMock) QueryBabyRecordsCalls() []struct {
	BabyID   string
	Category string
} {
	mock.lockQueryBabyRecords.RLock()
	calls := mock.calls.QueryBabyRecords
	mock.lockQueryBabyRecords.RUnlock()
	return calls
}

var _ statsCalculator = &statsCalculatorMock{}

type statsCalculatorMock struct {
	CalculateFunc func(ctx context.Context, sess *session.Session) domain.Statistics

	calls struct {
		Calculate []struct {
			Sess *session.Session
		}
	}
	lockCalculate sync.RWMutex
}

func (mock *statsCalculatorMock) Calculate(ctx context.Context, sess *session.Session) domain.Statistics {
	if mock.CalculateFunc == nil {
		panic("statsCalculatorMock.CalculateFunc: method is nil but statsCalculator.Calculate was just called")
	}
	callInfo := struct {
		Sess *session.Session
	}{Sess: sess}
	mock.lockCalculate.Lock()
	mock.calls.Calculate = append(mock.calls.Calculate, callInfo)
	mock.lockCalculate.Unlock()
	return mock.CalculateFunc(ctx, sess)
}

func (mock *statsCalculatorMock) CalculateCalls() []struct {
	Sess *session.Session
} {
	mock.lockCalculate.RLock()
	calls := mock.calls.Calculate
	mock.lockCalculate.RUnlock()
	return calls
}

var _ socialGraph = &socialGraphMock{}

type socialGraphMock struct {
	SearchFunc       func(ctx context.Context, sess *session.Session, keyword string) domain.Result[[]domain.SearchResult]
	FollowFunc       func(ctx context.Context, sess *session.Session, babyID string, babyName string) error
	UnfollowFunc     func(ctx context.Context, sess *session.Session, babyID string) (bool, error)
	IsFollowingFunc  func(ctx context.Context, sess *session.Session, babyID string) bool
	ListFollowedFunc func(ctx context.Context, sess *session.Session) domain.Result[[]domain.FollowedBaby]

	calls struct {
		Search []struct {
			Sess    *session.Session
			Keyword string
		}
		Follow []struct {
			Sess     *session.Session
			BabyID   string
			BabyName string
		}
		Unfollow []struct {
			Sess   *session.Session
			BabyID string
		}
		IsFollowing []struct {
			Sess   *session.Session
			BabyID string
		}
		ListFollowed []struct {
			Sess *session.Session
		}
	}
	lockSearch       sync.RWMutex
	lockFollow       sync.RWMutex
	lockUnfollow     sync.RWMutex
	lockIsFollowing  sync.RWMutex
	lockListFollowed sync.RWMutex
}

func (mock *socialGraphMock) Search(ctx context.Context, sess *session.Session, keyword string) domain.Result[[]domain.SearchResult] {
	if mock.SearchFunc == nil {
		panic("socialGraphMock.SearchFunc: method is nil but socialGraph.Search was just called")
	}
	callInfo := struct {
		Sess    *session.Session
		Keyword string
	}{Sess: sess, Keyword: keyword}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, sess, keyword)
}

func (mock *socialGraphMock) SearchCalls() []struct {
	Sess    *session.Session
	Keyword string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *socialGraphMock) Follow(ctx context.Context, sess *session.Session, babyID string, babyName string) error {
	if mock.FollowFunc == nil {
		panic("socialGraphMock.FollowFunc: method is nil but socialGraph.Follow was just called")
	}
	callInfo := struct {
		Sess     *session.Session
		BabyID   string
		BabyName string
	}{Sess: sess, BabyID: babyID, BabyName: babyName}
	mock.lockFollow.Lock()
	mock.calls.Follow = append(mock.calls.Follow, callInfo)
	mock.lockFollow.Unlock()
	return mock.FollowFunc(ctx, sess, babyID, babyName)
}

func (mock *socialGraphMock) FollowCalls() []struct {
	Sess     *session.Session
	BabyID   string
	BabyName string
} {
	mock.lockFollow.RLock()
	calls := mock.calls.Follow
	mock.lockFollow.RUnlock()
	return calls
}

func (mock *socialGraphMock) Unfollow(ctx context.Context, sess *session.Session, babyID string) (bool, error) {
	if mock.UnfollowFunc == nil {
		panic("socialGraphMock.UnfollowFunc: method is nil but socialGraph.Unfollow was just called")
	}
	callInfo := struct {
		Sess   *session.Session
		BabyID string
	}{Sess: sess, BabyID: babyID}
	mock.lockUnfollow.Lock()
	mock.calls.Unfollow = append(mock.calls.Unfollow, callInfo)
	mock.lockUnfollow.Unlock()
	return mock.UnfollowFunc(ctx, sess, babyID)
}

func (mock *socialGraphMock) UnfollowCalls() []struct {
	Sess   *session.Session
	BabyID string
} {
	mock.lockUnfollow.RLock()
	calls := mock.calls.Unfollow
	mock.lockUnfollow.RUnlock()
	return calls
}

func (mock *socialGraphMock) IsFollowing(ctx context.Context, sess *session.Session, babyID string) bool {
	if mock.IsFollowingFunc == nil {
		panic("socialGraphMock.IsFollowingFunc: method is nil but socialGraph.IsFollowing was just called")
	}
	callInfo := struct {
		Sess   *session.Session
		BabyID string
	}{Sess: sess, BabyID: babyID}
	mock.lockIsFollowing.Lock()
	mock.calls.IsFollowing = append(mock.calls.IsFollowing, callInfo)
	mock.lockIsFollowing.Unlock()
	return mock.IsFollowingFunc(ctx, sess, babyID)
}

func (mock *socialGraphMock) IsFollowingCalls() []struct {
	Sess   *session.Session
	BabyID string
} {
	mock.lockIsFollowing.RLock()
	calls := mock.calls.IsFollowing
	mock.lockIsFollowing.RUnlock()
	return calls
}

func (mock *socialGraphMock) ListFollowed(ctx context.Context, sess *session.Session) domain.Result[[]domain.FollowedBaby] {
	if mock.ListFollowedFunc == nil {
		panic("socialGraphMock.ListFollowedFunc: method is nil but socialGraph.ListFollowed was just called")
	}
	callInfo := struct {
		Sess *session.Session
	}{Sess: sess}
	mock.lockListFollowed.Lock()
	mock.calls.ListFollowed = append(mock.calls.ListFollowed, callInfo)
	mock.lockListFollowed.Unlock()
	return mock.ListFollowedFunc(ctx, sess)
}

func (mock *socialGraphMock) ListFollowedCalls() []struct {
	Sess *session.Session
} {
	mock.lockListFollowed.RLock()
	calls := mock.calls.ListFollowed
	mock.lockListFollowed.RUnlock()
	return calls
}

var _ babyProfiles = &babyProfilesMock{}

type babyProfilesMock struct {
	GetFunc  func(ctx context.Context, sess *session.Session) domain.Result[domain.BabyProfile]
	SaveFunc func(ctx context.Context, sess *session.Session, input baby.SaveInput) (*domain.BabyProfile, error)

	calls struct {
		Get []struct {
			Sess *session.Session
		}
		Save []struct {
			Sess  *session.Session
			Input baby.SaveInput
		}
	}
	lockGet  sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *babyProfilesMock) Get(ctx context.Context, sess *session.Session) domain.Result[domain.BabyProfile] {
	if mock.GetFunc == nil {
		panic("babyProfilesMock.GetFunc: method is nil but babyProfiles.Get was just called")
	}
	callInfo := struct {
		Sess *session.Session
	}{Sess: sess}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, sess)
}

func (mock *babyProfilesMock) GetCalls() []struct {
	Sess *session.Session
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *babyProfilesMock) Save(ctx context.Context, sess *session.Session, input baby.SaveInput) (*domain.BabyProfile, error) {
	if mock.SaveFunc == nil {
		panic("babyProfilesMock.SaveFunc: method is nil but babyProfiles.Save was just called")
	}
	callInfo := struct {
		Sess  *session.Session
		Input baby.SaveInput
	}{Sess: sess, Input: input}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, sess, input)
}

func (mock *babyProfilesMock) SaveCalls() []struct {
	Sess  *session.Session
	Input baby.SaveInput
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

var _ mediaStore = &mediaStoreMock{}

type mediaStoreMock struct {
	StoreFunc     func(ctx context.Context, kind media.Kind, ownerRef string, localRef string) string
	IsDurableFunc func(ref string) bool

	calls struct {
		Store []struct {
			Kind     media.Kind
			OwnerRef string
			LocalRef string
		}
		IsDurable []struct {
			Ref string
		}
	}
	lockStore     sync.RWMutex
	lockIsDurable sync.RWMutex
}

func (mock *mediaStoreMock) Store(ctx context.Context, kind media.Kind, ownerRef string, localRef string) string {
	if mock.StoreFunc == nil {
		panic("mediaStoreMock.StoreFunc: method is nil but mediaStore.Store was just called")
	}
	callInfo := struct {
		Kind     media.Kind
		OwnerRef string
		LocalRef string
	}{Kind: kind, OwnerRef: ownerRef, LocalRef: localRef}
	mock.lockStore.Lock()
	mock.calls.Store = append(mock.calls.Store, callInfo)
	mock.lockStore.Unlock()
	return mock.StoreFunc(ctx, kind, ownerRef, localRef)
}

func (mock *mediaStoreMock) StoreCalls() []struct {
	Kind     media.Kind
	OwnerRef string
	LocalRef string
} {
	mock.lockStore.RLock()
	calls := mock.calls.Store
	mock.lockStore.RUnlock()
	return calls
}

func (mock *mediaStoreMock) IsDurable(ref string) bool {
	if mock.IsDurableFunc == nil {
		panic("mediaStoreMock.IsDurableFunc: method is nil but mediaStore.IsDurable was just called")
	}
	callInfo := struct {
		Ref string
	}{Ref: ref}
	mock.lockIsDurable.Lock()
	mock.calls.IsDurable = append(mock.calls.IsDurable, callInfo)
	mock.lockIsDurable.Unlock()
	return mock.IsDurableFunc(ref)
}

func (mock *mediaStoreMock) IsDurableCalls() []struct {
	Ref string
} {
	mock.lockIsDurable.RLock()
	calls := mock.calls.IsDurable
	mock.lockIsDurable.RUnlock()
	return calls
}
