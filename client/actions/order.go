package actions

import (
	"github.com/kevinlim605/TechShop/client/actiontypes"
	"github.com/kevinlim605/TechShop/client/api"
)

func (a *Actions) CreateOrder(input api.OrderInput) {
	a.dispatch(actiontypes.OrderCreateRequest, nil)

	order, err := a.api.CreateOrder(a.token(), input)
	if err != nil {
		a.dispatch(actiontypes.OrderCreateFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.OrderCreateSuccess, order)
}

func (a *Actions) ResetOrderCreate() {
	a.dispatch(actiontypes.OrderCreateReset, nil)
}

func (a *Actions) GetOrderDetails(id string) {
	a.dispatch(actiontypes.OrderDetailsRequest, nil)

	order, err := a.api.GetOrder(a.token(), id)
	if err != nil {
		a.dispatch(actiontypes.OrderDetailsFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.OrderDetailsSuccess, order)
}

func (a *Actions) PayOrder(id string, payment api.PaymentPayload) {
	a.dispatch(actiontypes.OrderPayRequest, nil)

	if _, err := a.api.PayOrder(a.token(), id, payment); err != nil {
		a.dispatch(actiontypes.OrderPayFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.OrderPaySuccess, nil)
}

func (a *Actions) ResetOrderPay() {
	a.dispatch(actiontypes.OrderPayReset, nil)
}

func (a *Actions) DeliverOrder(id string) {
	a.dispatch(actiontypes.OrderDeliverRequest, nil)

	if _, err := a.api.DeliverOrder(a.token(), id); err != nil {
		a.dispatch(actiontypes.OrderDeliverFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.OrderDeliverSuccess, nil)
}

func (a *Actions) ResetOrderDeliver() {
	a.dispatch(actiontypes.OrderDeliverReset, nil)
}

func (a *Actions) ListMyOrders() {
	a.dispatch(actiontypes.OrderListMyRequest, nil)

	orders, err := a.api.MyOrders(a.token())
	if err != nil {
		a.dispatch(actiontypes.OrderListMyFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.OrderListMySuccess, orders)
}

func (a *Actions) ListOrders() {
	a.dispatch(actiontypes.OrderListRequest, nil)

	orders, err := a.api.ListOrders(a.token())
	if err != nil {
		a.dispatch(actiontypes.OrderListFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.OrderListSuccess, orders)
}
