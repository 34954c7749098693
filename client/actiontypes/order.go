package actiontypes

const (
	OrderCreateRequest = "ORDER_CREATE_REQUEST"
	OrderCreateSuccess = "ORDER_CREATE_SUCCESS"
	OrderCreateFailed  = "ORDER_CREATE_FAILED"
	OrderCreateReset   = "ORDER_CREATE_RESET"

	OrderDetailsRequest = "ORDER_DETAILS_REQUEST"
	OrderDetailsSuccess = "ORDER_DETAILS_SUCCESS"
	OrderDetailsFailed  = "ORDER_DETAILS_FAILED"

	OrderPayRequest = "ORDER_PAY_REQUEST"
	OrderPaySuccess = "ORDER_PAY_SUCCESS"
	OrderPayFailed  = "ORDER_PAY_FAILED"
	OrderPayReset   = "ORDER_PAY_RESET"

	OrderDeliverRequest = "ORDER_DELIVER_REQUEST"
	OrderDeliverSuccess = "ORDER_DELIVER_SUCCESS"
	OrderDeliverFailed  = "ORDER_DELIVER_FAILED"
	OrderDeliverReset   = "ORDER_DELIVER_RESET"

	OrderListMyRequest = "ORDER_LIST_MY_REQUEST"
	OrderListMySuccess = "ORDER_LIST_MY_SUCCESS"
	OrderListMyFailed  = "ORDER_LIST_MY_FAILED"

	OrderListRequest = "ORDER_LIST_REQUEST"
	OrderListSuccess = "ORDER_LIST_SUCCESS"
	OrderListFailed  = "ORDER_LIST_FAILED"
)
