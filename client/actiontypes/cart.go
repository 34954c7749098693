package actiontypes

const (
	CartAddItem             = "CART_ADD_ITEM"
	CartRemoveItem          = "CART_REMOVE_ITEM"
	CartSaveShippingAddress = "CART_SAVE_SHIPPING_ADDRESS"
	CartSavePaymentMethod   = "CART_SAVE_PAYMENT_METHOD"
)
