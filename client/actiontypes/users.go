package actiontypes

const (
	UserLoginRequest = "USER_LOGIN_REQUEST"
	UserLoginSuccess = "USER_LOGIN_SUCCESS"
	UserLoginFailed  = "USER_LOGIN_FAILED"
	UserLogout       = "USER_LOGOUT"

	UserRegisterRequest = "USER_REGISTER_REQUEST"
	UserRegisterSuccess = "USER_REGISTER_SUCCESS"
	UserRegisterFailed  = "USER_REGISTER_FAILED"

	UserDetailsRequest = "USER_DETAILS_REQUEST"
	UserDetailsSuccess = "USER_DETAILS_SUCCESS"
	UserDetailsFailed  = "USER_DETAILS_FAILED"
	UserDetailsReset   = "USER_DETAILS_RESET"

	UserUpdateProfileRequest = "USER_UPDATE_PROFILE_REQUEST"
	UserUpdateProfileSuccess = "USER_UPDATE_PROFILE_SUCCESS"
	UserUpdateProfileFailed  = "USER_UPDATE_PROFILE_FAILED"
	UserUpdateProfileReset   = "USER_UPDATE_PROFILE_RESET"

	UserListRequest = "USER_LIST_REQUEST"
	UserListSuccess = "USER_LIST_SUCCESS"
	UserListFailed  = "USER_LIST_FAILED"

	UserDeleteRequest = "USER_DELETE_REQUEST"
	UserDeleteSuccess = "USER_DELETE_SUCCESS"
	UserDeleteFailed  = "USER_DELETE_FAILED"

	UserUpdateRequest = "USER_UPDATE_REQUEST"
	UserUpdateSuccess = "USER_UPDATE_SUCCESS"
	UserUpdateFailed  = "USER_UPDATE_FAILED"
	UserUpdateReset   = "USER_UPDATE_RESET"
)
