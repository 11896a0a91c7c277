package record

import (
	"context"
	"sync"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	ListFunc       func(ctx context.Context, scope domain.RecordScope) ([]domain.Record, error)
	ListByDateFunc func(ctx context.Context, scope domain.RecordScope, date string) ([]domain.Record, error)
	ListByBabyFunc func(ctx context.Context, babyRef string) ([]domain.Record, error)
	DatesFunc      func(ctx context.Context, scope domain.RecordScope) ([]string, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Record, error)
	ExistsFunc     func(ctx context.Context, id string, ownerRef string) (bool, error)
	InsertFunc     func(ctx context.Context, rec domain.Record) error
	UpdateFunc     func(ctx context.Context, rec domain.Record) error
	DeleteFunc     func(ctx context.Context, id string, ownerRef string) (bool, error)

	calls struct {
		List []struct {
			Scope domain.RecordScope
		}
		ListByDate []struct {
			Scope domain.RecordScope
			Date  string
		}
		ListByBaby []struct {
			BabyRef string
		}
		Dates []struct {
			Scope domain.RecordScope
		}
		GetByID []struct {
			ID string
		}
		Exists []struct {
			ID       string
			OwnerRef string
		}
		Insert []struct {
			Rec domain.Record
		}
		Update []struct {
			Rec domain.Record
		}
		Delete []struct {
			ID       string
			OwnerRef string
		}
	}
	lockList       sync.RWMutex
	lockListByDate sync.RWMutex
	lockListByBaby sync.RWMutex
	lockDates      sync.RWMutex
	lockGetByID    sync.RWMutex
	lockExists     sync.RWMutex
	lockInsert     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *recordRepoMock) List(ctx context.Context, scope domain.RecordScope) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	callInfo := struct {
		Scope domain.RecordScope
	}{Scope: scope}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope)
}

func (mock *recordRepoMock) ListCalls() []struct {
	Scope domain.RecordScope
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recordRepoMock) ListByDate(ctx context.Context, scope domain.RecordScope, date string) ([]domain.Record, error) {
	if mock.ListByDateFunc == nil {
		panic("recordRepoMock.ListByDateFunc: method is nil but recordRepo.ListByDate was just called")
	}
	callInfo := struct {
		Scope domain.RecordScope
		Date  string
	}{Scope: scope, Date: date}
	mock.lockListByDate.Lock()
	mock.calls.ListByDate = append(mock.calls.ListByDate, callInfo)
	mock.lockListByDate.Unlock()
	return mock.ListByDateFunc(ctx, scope, date)
}

func (mock *recordRepoMock) ListByDateCalls() []struct {
	Scope domain.RecordScope
	Date  string
} {
	mock.lockListByDate.RLock()
	calls := mock.calls.ListByDate
	mock.lockListByDate.RUnlock()
	return calls
}

func (mock *recordRepoMock) ListByBaby(ctx context.Context, babyRef string) ([]domain.Record, error) {
	if mock.ListByBabyFunc == nil {
		panic("recordRepoMock.ListByBabyFunc: method is nil but recordRepo.ListByBaby was just called")
	}
	callInfo := struct {
		BabyRef string
	}{BabyRef: babyRef}
	mock.lockListByBaby.Lock()
	mock.calls.ListByBaby = append(mock.calls.ListByBaby, callInfo)
	mock.lockListByBaby.Unlock()
	return mock.ListByBabyFunc(ctx, babyRef)
}

func (mock *recordRepoMock) ListByBabyCalls() []struct {
	BabyRef string
} {
	mock.lockListByBaby.RLock()
	calls := mock.calls.ListByBaby
	mock.lockListByBaby.RUnlock()
	return calls
}

func (mock *recordRepoMock) Dates(ctx context.Context, scope domain.RecordScope) ([]string, error) {
	if mock.DatesFunc == nil {
		panic("recordRepoMock.DatesFunc: method is nil but recordRepo.Dates was just called")
	}
	callInfo := struct {
		Scope domain.RecordScope
	}{Scope: scope}
	mock.lockDates.Lock()
	mock.calls.Dates = append(mock.calls.Dates, callInfo)
	mock.lockDates.Unlock()
	return mock.DatesFunc(ctx, scope)
}

func (mock *recordRepoMock) DatesCalls() []struct {
	Scope domain.RecordScope
} {
	mock.lockDates.RLock()
	calls := mock.calls.Dates
	mock.lockDates.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	if mock.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but recordRepo.GetByID was just called")
	}
	callInfo := struct {
		ID string
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *recordRepoMock) GetByIDCalls() []struct {
	ID string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *recordRepoMock) Exists(ctx context.Context, id string, ownerRef string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("recordRepoMock.ExistsFunc: method is nil but recordRepo.Exists was just called")
	}
	callInfo := struct {
		ID       string
		OwnerRef string
	}{ID: id, OwnerRef: ownerRef}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id, ownerRef)
}

func (mock *recordRepoMock) ExistsCalls() []struct {
	ID       string
	OwnerRef string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *recordRepoMock) Insert(ctx context.Context, rec domain.Record) error {
	if mock.InsertFunc == nil {
		panic("recordRepoMock.InsertFunc: method is nil but recordRepo.Insert was just called")
	}
	callInfo := struct {
		Rec domain.Record
	}{Rec: rec}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, rec)
}

func (mock *recordRepoMock) InsertCalls() []struct {
	Rec domain.Record
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *recordRepoMock) Update(ctx context.Context, rec domain.Record) error {
	if mock.UpdateFunc == nil {
		panic("recordRepoMock.UpdateFunc: method is nil but recordRepo.Update was just called")
	}
	callInfo := struct {
		Rec domain.Record
	}{Rec: rec}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rec)
}

func (mock *recordRepoMock) UpdateCalls() []struct {
	Rec domain.Record
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Delete(ctx context.Context, id string, ownerRef string) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but recordRepo.Delete was just called")
	}
	callInfo := struct {
		ID       string
		OwnerRef string
	}{ID: id, OwnerRef: ownerRef}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, ownerRef)
}

func (mock *recordRepoMock) DeleteCalls() []struct {
	ID       string
	OwnerRef string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ idGenerator = &idGeneratorMock{}

type idGeneratorMock struct {
	NewRecordIDFunc func(ctx context.Context) (string, error)

	calls struct {
		NewRecordID []struct{}
	}
	lockNewRecordID sync.RWMutex
}

func (mock *idGeneratorMock) NewRecordID(ctx context.Context) (string, error) {
	if mock.NewRecordIDFunc == nil {
		panic("idGeneratorMock.NewRecordIDFunc: method is nil but idGenerator.NewRecordID was just called")
	}
	callInfo := struct{}{}
	mock.lockNewRecordID.Lock()
	mock.calls.NewRecordID = append(mock.calls.NewRecordID, callInfo)
	mock.lockNewRecordID.Unlock()
	return mock.NewRecordIDFunc(ctx)
}

func (mock *idGeneratorMock) NewRecordIDCalls() []struct{} {
	mock.lockNewRecordID.RLock()
	calls := mock.calls.NewRecordID
	mock.lockNewRecordID.RUnlock()
	return calls
}
