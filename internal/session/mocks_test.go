package session

import (
	"context"
	"sync"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

var _ userRegistry = &userRegistryMock{}

type userRegistryMock struct {
	TouchFunc func(ctx context.Context, ref string) (domain.User, bool, error)

	calls struct {
		Touch []struct {
			Ref string
		}
	}
	lockTouch sync.RWMutex
}

func (mock *userRegistryMock) Touch(ctx context.Context, ref string) (domain.User, bool, error) {
	if mock.TouchFunc == nil {
		panic("userRegistryMock.TouchFunc: method is nil but userRegistry.Touch was just called")
	}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, struct{ Ref string }{Ref: ref})
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, ref)
}

func (mock *userRegistryMock) TouchCalls() []struct{ Ref string } {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

var _ profileLoader = &profileLoaderMock{}

type profileLoaderMock struct {
	GetByOwnerFunc func(ctx context.Context, ownerRef string) (*domain.BabyProfile, error)

	calls struct {
		GetByOwner []struct {
			OwnerRef string
		}
	}
	lockGetByOwner sync.RWMutex
}

func (mock *profileLoaderMock) GetByOwner(ctx context.Context, ownerRef string) (*domain.BabyProfile, error) {
	if mock.GetByOwnerFunc == nil {
		panic("profileLoaderMock.GetByOwnerFunc: method is nil but profileLoader.GetByOwner was just called")
	}
	mock.lockGetByOwner.Lock()
	mock.calls.GetByOwner = append(mock.calls.GetByOwner, struct{ OwnerRef string }{OwnerRef: ownerRef})
	mock.lockGetByOwner.Unlock()
	return mock.GetByOwnerFunc(ctx, ownerRef)
}

func (mock *profileLoaderMock) GetByOwnerCalls() []struct{ OwnerRef string } {
	mock.lockGetByOwner.RLock()
	calls := mock.calls.GetByOwner
	mock.lockGetByOwner.RUnlock()
	return calls
}
