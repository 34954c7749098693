package actions

import (
	"github.com/kevinlim605/TechShop/client/api"
	"github.com/kevinlim605/TechShop/client/localstorage"
	"github.com/kevinlim605/TechShop/client/reducers"
	"github.com/kevinlim605/TechShop/client/store"
)

// Actions holds the thunk layer: each method dispatches its REQUEST
// action, performs one HTTP call, then dispatches SUCCESS or FAILED.
// No retries, no de-duplication; concurrent calls race freely and the
// last store write wins.
type Actions struct {
	store   *store.Store[reducers.RootState]
	api     *api.Client
	storage *localstorage.Storage
}

func New(s *store.Store[reducers.RootState], client *api.Client, storage *localstorage.Storage) *Actions {
	return &Actions{store: s, api: client, storage: storage}
}

func (a *Actions) Store() *store.Store[reducers.RootState] {
	return a.store
}

func (a *Actions) dispatch(actionType string, payload any) {
	a.store.Dispatch(store.Action{Type: actionType, Payload: payload})
}

// token returns the bearer token from the auth slice, empty when
// logged out.
func (a *Actions) token() string {
	info := a.store.GetState().UserLogin.UserInfo
	if info == nil {
		return ""
	}
	return info.Token
}
