package reducers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinlim605/TechShop/client/actiontypes"
	"github.com/kevinlim605/TechShop/client/api"
	"github.com/kevinlim605/TechShop/client/localstorage"
	"github.com/kevinlim605/TechShop/client/store"
)

func action(actionType string, payload any) store.Action {
	return store.Action{Type: actionType, Payload: payload}
}

func TestProductListTriplet(t *testing.T) {
	state := RootState{}

	state = Root(state, action(actiontypes.ProductListRequest, nil))
	assert.True(t, state.ProductList.Loading)

	page := api.ProductPage{
		Products: []api.Product{{ID: "p1", Name: "Airpods"}},
		Page:     1,
		Pages:    3,
	}
	state = Root(state, action(actiontypes.ProductListSuccess, page))
	assert.False(t, state.ProductList.Loading)
	assert.Equal(t, page.Products, state.ProductList.Products)
	assert.Equal(t, 3, state.ProductList.Pages)

	state = Root(state, action(actiontypes.ProductListFailed, "boom"))
	assert.Equal(t, "boom", state.ProductList.Error)
	assert.Empty(t, state.ProductList.Products)
}

func TestProductListRequestKeepsPreviousData(t *testing.T) {
	state := RootState{}
	state = Root(state, action(actiontypes.ProductListSuccess, api.ProductPage{
		Products: []api.Product{{ID: "p1"}},
		Page:     1,
		Pages:    1,
	}))

	state = Root(state, action(actiontypes.ProductListRequest, nil))
	assert.True(t, state.ProductList.Loading)
	assert.Len(t, state.ProductList.Products, 1, "stale page should stay visible while reloading")
}

func TestMutationRequestResetsStaleError(t *testing.T) {
	state := RootState{}
	state = Root(state, action(actiontypes.ProductDeleteFailed, "nope"))
	require.Equal(t, "nope", state.ProductDelete.Error)

	state = Root(state, action(actiontypes.ProductDeleteRequest, nil))
	assert.True(t, state.ProductDelete.Loading)
	assert.Empty(t, state.ProductDelete.Error)
}

func TestClearProductDetails(t *testing.T) {
	state := RootState{}
	state = Root(state, action(actiontypes.ProductDetailsSuccess, api.Product{ID: "p1"}))
	require.Equal(t, "p1", state.ProductDetails.Product.ID)

	state = Root(state, action(actiontypes.ClearProductDetails, nil))
	assert.Equal(t, ProductDetailsState{}, state.ProductDetails)
}

func TestUnknownActionLeavesStateUntouched(t *testing.T) {
	state := RootState{}
	state = Root(state, action(actiontypes.UserLoginSuccess, api.UserInfo{ID: "u1", Token: "t"}))

	after := Root(state, action("SOMETHING_ELSE", 42))
	assert.Equal(t, state, after)
}

func TestWrongPayloadTypeIsIgnored(t *testing.T) {
	state := RootState{}
	state = Root(state, action(actiontypes.ProductDetailsSuccess, "not a product"))
	assert.Equal(t, ProductDetailsState{}, state.ProductDetails)
}

func TestLogoutClearsUserSlicesButKeepsCart(t *testing.T) {
	state := RootState{}
	state = Root(state, action(actiontypes.CartAddItem, api.CartItem{Product: "p1", Qty: 2}))
	state = Root(state, action(actiontypes.UserLoginSuccess, api.UserInfo{ID: "u1", Token: "t"}))
	state = Root(state, action(actiontypes.UserDetailsSuccess, api.UserInfo{ID: "u1"}))
	state = Root(state, action(actiontypes.UserListSuccess, []api.UserInfo{{ID: "u1"}}))
	state = Root(state, action(actiontypes.OrderListMySuccess, []api.Order{{ID: "o1"}}))

	state = Root(state, action(actiontypes.UserLogout, nil))

	assert.Nil(t, state.UserLogin.UserInfo)
	assert.Equal(t, UserDetailsState{}, state.UserDetails)
	assert.Equal(t, UserUpdateProfileState{}, state.UserUpdateProfile)
	assert.Empty(t, state.UserList.Users)
	assert.Empty(t, state.OrderListMy.Orders)

	assert.Len(t, state.Cart.CartItems, 1)
}

func TestCartAddReplacesSameProductLine(t *testing.T) {
	state := RootState{}
	state = Root(state, action(actiontypes.CartAddItem, api.CartItem{Product: "p1", Qty: 1}))
	state = Root(state, action(actiontypes.CartAddItem, api.CartItem{Product: "p2", Qty: 1}))
	state = Root(state, action(actiontypes.CartAddItem, api.CartItem{Product: "p1", Qty: 5}))

	require.Len(t, state.Cart.CartItems, 2)
	assert.Equal(t, 5, state.Cart.CartItems[0].Qty)
	assert.Equal(t, "p2", state.Cart.CartItems[1].Product)
}

func TestCartRemoveItem(t *testing.T) {
	state := RootState{}
	state = Root(state, action(actiontypes.CartAddItem, api.CartItem{Product: "p1", Qty: 1}))
	state = Root(state, action(actiontypes.CartAddItem, api.CartItem{Product: "p2", Qty: 1}))

	state = Root(state, action(actiontypes.CartRemoveItem, "p1"))
	require.Len(t, state.Cart.CartItems, 1)
	assert.Equal(t, "p2", state.Cart.CartItems[0].Product)

	state = Root(state, action(actiontypes.CartRemoveItem, "missing"))
	assert.Len(t, state.Cart.CartItems, 1)
}

func TestCartSaveShippingAndPayment(t *testing.T) {
	state := RootState{}
	address := api.ShippingAddress{Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "USA"}

	state = Root(state, action(actiontypes.CartSaveShippingAddress, address))
	state = Root(state, action(actiontypes.CartSavePaymentMethod, "PayPal"))

	assert.Equal(t, address, state.Cart.ShippingAddress)
	assert.Equal(t, "PayPal", state.Cart.PaymentMethod)
}

func TestOrderPayResetClearsSuccess(t *testing.T) {
	state := RootState{}
	state = Root(state, action(actiontypes.OrderPaySuccess, nil))
	require.True(t, state.OrderPay.Success)

	state = Root(state, action(actiontypes.OrderPayReset, nil))
	assert.Equal(t, MutationState{}, state.OrderPay)
}

func TestInitialStateRestoresPersistedSlices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	storage, err := localstorage.Open(path)
	require.NoError(t, err)

	items := []api.CartItem{{Product: "p1", Name: "Airpods", Qty: 2}}
	address := api.ShippingAddress{Address: "1 Main St", City: "Springfield"}
	info := api.UserInfo{ID: "u1", Name: "John", Token: "tok"}
	require.NoError(t, storage.SetItem(localstorage.KeyCartItems, items))
	require.NoError(t, storage.SetItem(localstorage.KeyShippingAddress, address))
	require.NoError(t, storage.SetItem(localstorage.KeyPaymentMethod, "PayPal"))
	require.NoError(t, storage.SetItem(localstorage.KeyUserInfo, info))

	reopened, err := localstorage.Open(path)
	require.NoError(t, err)

	state := InitialState(reopened)
	assert.Equal(t, items, state.Cart.CartItems)
	assert.Equal(t, address, state.Cart.ShippingAddress)
	assert.Equal(t, "PayPal", state.Cart.PaymentMethod)
	require.NotNil(t, state.UserLogin.UserInfo)
	assert.Equal(t, "tok", state.UserLogin.UserInfo.Token)
}

func TestInitialStateEmptyStorage(t *testing.T) {
	storage, err := localstorage.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	state := InitialState(storage)
	assert.Empty(t, state.Cart.CartItems)
	assert.Nil(t, state.UserLogin.UserInfo)
}
