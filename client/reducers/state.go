package reducers

import (
	"github.com/kevinlim605/TechShop/client/api"
	"github.com/kevinlim605/TechShop/client/localstorage"
	"github.com/kevinlim605/TechShop/client/store"
)

// RootState is the full client state tree. Each slice is owned by
// exactly one reducer below.
type RootState struct {
	ProductList         ProductListState
	ProductDetails      ProductDetailsState
	ProductTop          ProductTopState
	ProductCreate       ProductCreateState
	ProductUpdate       ProductUpdateState
	ProductDelete       MutationState
	ProductCreateReview MutationState

	Cart CartState

	UserLogin         UserLoginState
	UserRegister      UserRegisterState
	UserDetails       UserDetailsState
	UserUpdateProfile UserUpdateProfileState
	UserList          UserListState
	UserDelete        MutationState
	UserUpdate        MutationState

	OrderCreate  OrderCreateState
	OrderDetails OrderDetailsState
	OrderPay     MutationState
	OrderDeliver MutationState
	OrderListMy  OrderListMyState
	OrderList    OrderListState
}

// MutationState is the shape shared by fire-and-forget operations that
// only need loading/success/error flags.
type MutationState struct {
	Loading bool
	Success bool
	Error   string
}

// Root folds an action through every slice reducer.
func Root(state RootState, action store.Action) RootState {
	state.ProductList = productList(state.ProductList, action)
	state.ProductDetails = productDetails(state.ProductDetails, action)
	state.ProductTop = productTop(state.ProductTop, action)
	state.ProductCreate = productCreate(state.ProductCreate, action)
	state.ProductUpdate = productUpdate(state.ProductUpdate, action)
	state.ProductDelete = productDelete(state.ProductDelete, action)
	state.ProductCreateReview = productCreateReview(state.ProductCreateReview, action)

	state.Cart = cart(state.Cart, action)

	state.UserLogin = userLogin(state.UserLogin, action)
	state.UserRegister = userRegister(state.UserRegister, action)
	state.UserDetails = userDetails(state.UserDetails, action)
	state.UserUpdateProfile = userUpdateProfile(state.UserUpdateProfile, action)
	state.UserList = userList(state.UserList, action)
	state.UserDelete = userDelete(state.UserDelete, action)
	state.UserUpdate = userUpdate(state.UserUpdate, action)

	state.OrderCreate = orderCreate(state.OrderCreate, action)
	state.OrderDetails = orderDetails(state.OrderDetails, action)
	state.OrderPay = orderPay(state.OrderPay, action)
	state.OrderDeliver = orderDeliver(state.OrderDeliver, action)
	state.OrderListMy = orderListMy(state.OrderListMy, action)
	state.OrderList = orderList(state.OrderList, action)

	return state
}

// InitialState rebuilds the persisted slices from local storage so the
// app restores them without a network round trip.
func InitialState(storage *localstorage.Storage) RootState {
	state := RootState{}

	var cartItems []api.CartItem
	if storage.GetItem(localstorage.KeyCartItems, &cartItems) {
		state.Cart.CartItems = cartItems
	}
	var shipping api.ShippingAddress
	if storage.GetItem(localstorage.KeyShippingAddress, &shipping) {
		state.Cart.ShippingAddress = shipping
	}
	var paymentMethod string
	if storage.GetItem(localstorage.KeyPaymentMethod, &paymentMethod) {
		state.Cart.PaymentMethod = paymentMethod
	}
	var userInfo api.UserInfo
	if storage.GetItem(localstorage.KeyUserInfo, &userInfo) {
		state.UserLogin.UserInfo = &userInfo
	}

	return state
}
