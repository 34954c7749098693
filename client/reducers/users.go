package reducers

import (
	"github.com/kevinlim605/TechShop/client/actiontypes"
	"github.com/kevinlim605/TechShop/client/api"
	"github.com/kevinlim605/TechShop/client/store"
)

type UserLoginState struct {
	Loading  bool
	UserInfo *api.UserInfo
	Error    string
}

func userLogin(state UserLoginState, action store.Action) UserLoginState {
	switch action.Type {
	case actiontypes.UserLoginRequest:
		return UserLoginState{Loading: true}
	case actiontypes.UserLoginSuccess:
		info, ok := action.Payload.(api.UserInfo)
		if !ok {
			return state
		}
		return UserLoginState{UserInfo: &info}
	case actiontypes.UserLoginFailed:
		message, _ := action.Payload.(string)
		return UserLoginState{Error: message}
	case actiontypes.UserLogout:
		return UserLoginState{}
	default:
		return state
	}
}

type UserRegisterState struct {
	Loading  bool
	UserInfo *api.UserInfo
	Error    string
}

func userRegister(state UserRegisterState, action store.Action) UserRegisterState {
	switch action.Type {
	case actiontypes.UserRegisterRequest:
		return UserRegisterState{Loading: true}
	case actiontypes.UserRegisterSuccess:
		info, ok := action.Payload.(api.UserInfo)
		if !ok {
			return state
		}
		return UserRegisterState{UserInfo: &info}
	case actiontypes.UserRegisterFailed:
		message, _ := action.Payload.(string)
		return UserRegisterState{Error: message}
	default:
		return state
	}
}

type UserDetailsState struct {
	Loading bool
	User    api.UserInfo
	Error   string
}

func userDetails(state UserDetailsState, action store.Action) UserDetailsState {
	switch action.Type {
	case actiontypes.UserDetailsRequest:
		state.Loading = true
		return state
	case actiontypes.UserDetailsSuccess:
		user, ok := action.Payload.(api.UserInfo)
		if !ok {
			return state
		}
		return UserDetailsState{User: user}
	case actiontypes.UserDetailsFailed:
		message, _ := action.Payload.(string)
		return UserDetailsState{Error: message}
	case actiontypes.UserDetailsReset, actiontypes.UserLogout:
		return UserDetailsState{}
	default:
		return state
	}
}

type UserUpdateProfileState struct {
	Loading  bool
	Success  bool
	UserInfo *api.UserInfo
	Error    string
}

func userUpdateProfile(state UserUpdateProfileState, action store.Action) UserUpdateProfileState {
	switch action.Type {
	case actiontypes.UserUpdateProfileRequest:
		return UserUpdateProfileState{Loading: true}
	case actiontypes.UserUpdateProfileSuccess:
		info, ok := action.Payload.(api.UserInfo)
		if !ok {
			return state
		}
		return UserUpdateProfileState{Success: true, UserInfo: &info}
	case actiontypes.UserUpdateProfileFailed:
		message, _ := action.Payload.(string)
		return UserUpdateProfileState{Error: message}
	case actiontypes.UserUpdateProfileReset, actiontypes.UserLogout:
		return UserUpdateProfileState{}
	default:
		return state
	}
}

type UserListState struct {
	Loading bool
	Users   []api.UserInfo
	Error   string
}

func userList(state UserListState, action store.Action) UserListState {
	switch action.Type {
	case actiontypes.UserListRequest:
		state.Loading = true
		return state
	case actiontypes.UserListSuccess:
		users, ok := action.Payload.([]api.UserInfo)
		if !ok {
			return state
		}
		return UserListState{Users: users}
	case actiontypes.UserListFailed:
		message, _ := action.Payload.(string)
		return UserListState{Error: message}
	case actiontypes.UserLogout:
		return UserListState{}
	default:
		return state
	}
}

func userDelete(state MutationState, action store.Action) MutationState {
	switch action.Type {
	case actiontypes.UserDeleteRequest:
		return MutationState{Loading: true}
	case actiontypes.UserDeleteSuccess:
		return MutationState{Success: true}
	case actiontypes.UserDeleteFailed:
		message, _ := action.Payload.(string)
		return MutationState{Error: message}
	default:
		return state
	}
}

func userUpdate(state MutationState, action store.Action) MutationState {
	switch action.Type {
	case actiontypes.UserUpdateRequest:
		return MutationState{Loading: true}
	case actiontypes.UserUpdateSuccess:
		return MutationState{Success: true}
	case actiontypes.UserUpdateFailed:
		message, _ := action.Payload.(string)
		return MutationState{Error: message}
	case actiontypes.UserUpdateReset:
		return MutationState{}
	default:
		return state
	}
}
