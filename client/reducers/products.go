package reducers

import (
	"github.com/kevinlim605/TechShop/client/actiontypes"
	"github.com/kevinlim605/TechShop/client/api"
	"github.com/kevinlim605/TechShop/client/store"
)

type ProductListState struct {
	Loading  bool
	Products []api.Product
	Page     int
	Pages    int
	Error    string
}

func productList(state ProductListState, action store.Action) ProductListState {
	switch action.Type {
	case actiontypes.ProductListRequest:
		state.Loading = true
		return state
	case actiontypes.ProductListSuccess:
		page, ok := action.Payload.(api.ProductPage)
		if !ok {
			return state
		}
		return ProductListState{Products: page.Products, Page: page.Page, Pages: page.Pages}
	case actiontypes.ProductListFailed:
		message, _ := action.Payload.(string)
		return ProductListState{Error: message}
	default:
		return state
	}
}

type ProductDetailsState struct {
	Loading bool
	Product api.Product
	Error   string
}

func productDetails(state ProductDetailsState, action store.Action) ProductDetailsState {
	switch action.Type {
	case actiontypes.ProductDetailsRequest:
		state.Loading = true
		return state
	case actiontypes.ProductDetailsSuccess:
		product, ok := action.Payload.(api.Product)
		if !ok {
			return state
		}
		return ProductDetailsState{Product: product}
	case actiontypes.ProductDetailsFailed:
		message, _ := action.Payload.(string)
		return ProductDetailsState{Error: message}
	case actiontypes.ClearProductDetails:
		return ProductDetailsState{}
	default:
		return state
	}
}

type ProductTopState struct {
	Loading  bool
	Products []api.Product
	Error    string
}

func productTop(state ProductTopState, action store.Action) ProductTopState {
	switch action.Type {
	case actiontypes.ProductTopRequest:
		state.Loading = true
		return state
	case actiontypes.ProductTopSuccess:
		products, ok := action.Payload.([]api.Product)
		if !ok {
			return state
		}
		return ProductTopState{Products: products}
	case actiontypes.ProductTopFailed:
		message, _ := action.Payload.(string)
		return ProductTopState{Error: message}
	default:
		return state
	}
}

type ProductCreateState struct {
	Loading bool
	Success bool
	Product api.Product
	Error   string
}

func productCreate(state ProductCreateState, action store.Action) ProductCreateState {
	switch action.Type {
	case actiontypes.ProductCreateRequest:
		return ProductCreateState{Loading: true}
	case actiontypes.ProductCreateSuccess:
		product, ok := action.Payload.(api.Product)
		if !ok {
			return state
		}
		return ProductCreateState{Success: true, Product: product}
	case actiontypes.ProductCreateFailed:
		message, _ := action.Payload.(string)
		return ProductCreateState{Error: message}
	case actiontypes.ProductCreateReset:
		return ProductCreateState{}
	default:
		return state
	}
}

type ProductUpdateState struct {
	Loading bool
	Success bool
	Product api.Product
	Error   string
}

func productUpdate(state ProductUpdateState, action store.Action) ProductUpdateState {
	switch action.Type {
	case actiontypes.ProductUpdateRequest:
		return ProductUpdateState{Loading: true}
	case actiontypes.ProductUpdateSuccess:
		product, ok := action.Payload.(api.Product)
		if !ok {
			return state
		}
		return ProductUpdateState{Success: true, Product: product}
	case actiontypes.ProductUpdateFailed:
		message, _ := action.Payload.(string)
		return ProductUpdateState{Error: message}
	case actiontypes.ProductUpdateReset:
		return ProductUpdateState{}
	default:
		return state
	}
}

func productDelete(state MutationState, action store.Action) MutationState {
	switch action.Type {
	case actiontypes.ProductDeleteRequest:
		return MutationState{Loading: true}
	case actiontypes.ProductDeleteSuccess:
		return MutationState{Success: true}
	case actiontypes.ProductDeleteFailed:
		message, _ := action.Payload.(string)
		return MutationState{Error: message}
	default:
		return state
	}
}

func productCreateReview(state MutationState, action store.Action) MutationState {
	switch action.Type {
	case actiontypes.ProductCreateReviewRequest:
		return MutationState{Loading: true}
	case actiontypes.ProductCreateReviewSuccess:
		return MutationState{Success: true}
	case actiontypes.ProductCreateReviewFailed:
		message, _ := action.Payload.(string)
		return MutationState{Error: message}
	case actiontypes.ProductCreateReviewReset:
		return MutationState{}
	default:
		return state
	}
}
