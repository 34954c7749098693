package actions

import (
	"github.com/kevinlim605/TechShop/client/actiontypes"
	"github.com/kevinlim605/TechShop/client/api"
	"github.com/kevinlim605/TechShop/client/localstorage"
)

// Login authenticates and caches the auth slice in local storage.
func (a *Actions) Login(email, password string) {
	a.dispatch(actiontypes.UserLoginRequest, nil)

	info, err := a.api.Login(email, password)
	if err != nil {
		a.dispatch(actiontypes.UserLoginFailed, err.Error())
		return
	}

	a.dispatch(actiontypes.UserLoginSuccess, info)
	_ = a.storage.SetItem(localstorage.KeyUserInfo, info)
}

// Logout clears the cached auth slice. The cart is kept.
func (a *Actions) Logout() {
	_ = a.storage.RemoveItem(localstorage.KeyUserInfo)
	a.dispatch(actiontypes.UserLogout, nil)
}

// Register creates an account and logs the new user straight in.
func (a *Actions) Register(name, email, password string) {
	a.dispatch(actiontypes.UserRegisterRequest, nil)

	info, err := a.api.Register(name, email, password)
	if err != nil {
		a.dispatch(actiontypes.UserRegisterFailed, err.Error())
		return
	}

	a.dispatch(actiontypes.UserRegisterSuccess, info)
	a.dispatch(actiontypes.UserLoginSuccess, info)
	_ = a.storage.SetItem(localstorage.KeyUserInfo, info)
}

// GetUserDetails loads a user document into the details slice. With
// "profile" as id it loads the caller's own profile.
func (a *Actions) GetUserDetails(id string) {
	a.dispatch(actiontypes.UserDetailsRequest, nil)

	var user api.UserInfo
	var err error
	if id == "profile" {
		user, err = a.api.GetProfile(a.token())
	} else {
		user, err = a.api.GetUser(a.token(), id)
	}
	if err != nil {
		a.dispatch(actiontypes.UserDetailsFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.UserDetailsSuccess, user)
}

// UpdateUserProfile saves profile changes and keeps the auth slice and
// its cached copy consistent with the response.
func (a *Actions) UpdateUserProfile(patch api.ProfilePatch) {
	a.dispatch(actiontypes.UserUpdateProfileRequest, nil)

	info, err := a.api.UpdateProfile(a.token(), patch)
	if err != nil {
		a.dispatch(actiontypes.UserUpdateProfileFailed, err.Error())
		return
	}

	a.dispatch(actiontypes.UserUpdateProfileSuccess, info)
	a.dispatch(actiontypes.UserLoginSuccess, info)
	_ = a.storage.SetItem(localstorage.KeyUserInfo, info)
}

func (a *Actions) ResetUserUpdateProfile() {
	a.dispatch(actiontypes.UserUpdateProfileReset, nil)
}

func (a *Actions) ListUsers() {
	a.dispatch(actiontypes.UserListRequest, nil)

	users, err := a.api.ListUsers(a.token())
	if err != nil {
		a.dispatch(actiontypes.UserListFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.UserListSuccess, users)
}

func (a *Actions) DeleteUser(id string) {
	a.dispatch(actiontypes.UserDeleteRequest, nil)

	if err := a.api.DeleteUser(a.token(), id); err != nil {
		a.dispatch(actiontypes.UserDeleteFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.UserDeleteSuccess, nil)
}

func (a *Actions) UpdateUser(id string, patch api.AdminUserPatch) {
	a.dispatch(actiontypes.UserUpdateRequest, nil)

	user, err := a.api.UpdateUser(a.token(), id, patch)
	if err != nil {
		a.dispatch(actiontypes.UserUpdateFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.UserUpdateSuccess, nil)
	a.dispatch(actiontypes.UserDetailsSuccess, user)
}

func (a *Actions) ResetUserUpdate() {
	a.dispatch(actiontypes.UserUpdateReset, nil)
}

func (a *Actions) ResetUserDetails() {
	a.dispatch(actiontypes.UserDetailsReset, nil)
}
