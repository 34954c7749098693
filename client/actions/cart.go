package actions

import (
	"github.com/kevinlim605/TechShop/client/actiontypes"
	"github.com/kevinlim605/TechShop/client/api"
	"github.com/kevinlim605/TechShop/client/localstorage"
)

// AddToCart fetches the product so the cart line carries a price
// snapshot, then persists the whole cart. Adding a product already in
// the cart replaces its line.
func (a *Actions) AddToCart(productID string, qty int) error {
	product, err := a.api.GetProduct(productID)
	if err != nil {
		return err
	}

	a.dispatch(actiontypes.CartAddItem, api.CartItem{
		Product:      product.ID,
		Name:         product.Name,
		Image:        product.Image,
		Price:        product.Price,
		CountInStock: product.CountInStock,
		Qty:          qty,
	})
	return a.persistCartItems()
}

func (a *Actions) RemoveFromCart(productID string) error {
	a.dispatch(actiontypes.CartRemoveItem, productID)
	return a.persistCartItems()
}

func (a *Actions) SaveShippingAddress(address api.ShippingAddress) error {
	a.dispatch(actiontypes.CartSaveShippingAddress, address)
	return a.storage.SetItem(localstorage.KeyShippingAddress, address)
}

func (a *Actions) SavePaymentMethod(method string) error {
	a.dispatch(actiontypes.CartSavePaymentMethod, method)
	return a.storage.SetItem(localstorage.KeyPaymentMethod, method)
}

// persistCartItems writes the cart slice as the reducer left it, so
// the stored copy always matches the store.
func (a *Actions) persistCartItems() error {
	items := a.store.GetState().Cart.CartItems
	return a.storage.SetItem(localstorage.KeyCartItems, items)
}
