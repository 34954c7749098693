package reducers

import (
	"github.com/kevinlim605/TechShop/client/actiontypes"
	"github.com/kevinlim605/TechShop/client/api"
	"github.com/kevinlim605/TechShop/client/store"
)

type OrderCreateState struct {
	Loading bool
	Success bool
	Order   api.Order
	Error   string
}

func orderCreate(state OrderCreateState, action store.Action) OrderCreateState {
	switch action.Type {
	case actiontypes.OrderCreateRequest:
		return OrderCreateState{Loading: true}
	case actiontypes.OrderCreateSuccess:
		order, ok := action.Payload.(api.Order)
		if !ok {
			return state
		}
		return OrderCreateState{Success: true, Order: order}
	case actiontypes.OrderCreateFailed:
		message, _ := action.Payload.(string)
		return OrderCreateState{Error: message}
	case actiontypes.OrderCreateReset:
		return OrderCreateState{}
	default:
		return state
	}
}

type OrderDetailsState struct {
	Loading bool
	Order   api.OrderDetail
	Error   string
}

func orderDetails(state OrderDetailsState, action store.Action) OrderDetailsState {
	switch action.Type {
	case actiontypes.OrderDetailsRequest:
		state.Loading = true
		return state
	case actiontypes.OrderDetailsSuccess:
		order, ok := action.Payload.(api.OrderDetail)
		if !ok {
			return state
		}
		return OrderDetailsState{Order: order}
	case actiontypes.OrderDetailsFailed:
		message, _ := action.Payload.(string)
		return OrderDetailsState{Error: message}
	default:
		return state
	}
}

func orderPay(state MutationState, action store.Action) MutationState {
	switch action.Type {
	case actiontypes.OrderPayRequest:
		return MutationState{Loading: true}
	case actiontypes.OrderPaySuccess:
		return MutationState{Success: true}
	case actiontypes.OrderPayFailed:
		message, _ := action.Payload.(string)
		return MutationState{Error: message}
	case actiontypes.OrderPayReset:
		return MutationState{}
	default:
		return state
	}
}

func orderDeliver(state MutationState, action store.Action) MutationState {
	switch action.Type {
	case actiontypes.OrderDeliverRequest:
		return MutationState{Loading: true}
	case actiontypes.OrderDeliverSuccess:
		return MutationState{Success: true}
	case actiontypes.OrderDeliverFailed:
		message, _ := action.Payload.(string)
		return MutationState{Error: message}
	case actiontypes.OrderDeliverReset:
		return MutationState{}
	default:
		return state
	}
}

type OrderListMyState struct {
	Loading bool
	Orders  []api.Order
	Error   string
}

func orderListMy(state OrderListMyState, action store.Action) OrderListMyState {
	switch action.Type {
	case actiontypes.OrderListMyRequest:
		state.Loading = true
		return state
	case actiontypes.OrderListMySuccess:
		orders, ok := action.Payload.([]api.Order)
		if !ok {
			return state
		}
		return OrderListMyState{Orders: orders}
	case actiontypes.OrderListMyFailed:
		message, _ := action.Payload.(string)
		return OrderListMyState{Error: message}
	case actiontypes.UserLogout:
		return OrderListMyState{}
	default:
		return state
	}
}

type OrderListState struct {
	Loading bool
	Orders  []api.Order
	Error   string
}

func orderList(state OrderListState, action store.Action) OrderListState {
	switch action.Type {
	case actiontypes.OrderListRequest:
		state.Loading = true
		return state
	case actiontypes.OrderListSuccess:
		orders, ok := action.Payload.([]api.Order)
		if !ok {
			return state
		}
		return OrderListState{Orders: orders}
	case actiontypes.OrderListFailed:
		message, _ := action.Payload.(string)
		return OrderListState{Error: message}
	default:
		return state
	}
}
