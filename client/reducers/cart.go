package reducers

import (
	"github.com/kevinlim605/TechShop/client/actiontypes"
	"github.com/kevinlim605/TechShop/client/api"
	"github.com/kevinlim605/TechShop/client/store"
)

// CartState survives logout deliberately; only user-scoped slices are
// cleared then.
type CartState struct {
	CartItems       []api.CartItem
	ShippingAddress api.ShippingAddress
	PaymentMethod   string
}

func cart(state CartState, action store.Action) CartState {
	switch action.Type {
	case actiontypes.CartAddItem:
		item, ok := action.Payload.(api.CartItem)
		if !ok {
			return state
		}
		for i, existing := range state.CartItems {
			if existing.Product == item.Product {
				items := make([]api.CartItem, len(state.CartItems))
				copy(items, state.CartItems)
				items[i] = item
				state.CartItems = items
				return state
			}
		}
		state.CartItems = append(append([]api.CartItem{}, state.CartItems...), item)
		return state
	case actiontypes.CartRemoveItem:
		id, _ := action.Payload.(string)
		items := []api.CartItem{}
		for _, existing := range state.CartItems {
			if existing.Product != id {
				items = append(items, existing)
			}
		}
		state.CartItems = items
		return state
	case actiontypes.CartSaveShippingAddress:
		address, ok := action.Payload.(api.ShippingAddress)
		if !ok {
			return state
		}
		state.ShippingAddress = address
		return state
	case actiontypes.CartSavePaymentMethod:
		method, _ := action.Payload.(string)
		state.PaymentMethod = method
		return state
	default:
		return state
	}
}
