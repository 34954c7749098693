package actions

import (
	"github.com/kevinlim605/TechShop/client/actiontypes"
	"github.com/kevinlim605/TechShop/client/api"
)

func (a *Actions) ListProducts(keyword string, page int) {
	a.dispatch(actiontypes.ProductListRequest, nil)

	result, err := a.api.ListProducts(keyword, page)
	if err != nil {
		a.dispatch(actiontypes.ProductListFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.ProductListSuccess, result)
}

func (a *Actions) ListTopProducts() {
	a.dispatch(actiontypes.ProductTopRequest, nil)

	products, err := a.api.TopProducts()
	if err != nil {
		a.dispatch(actiontypes.ProductTopFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.ProductTopSuccess, products)
}

func (a *Actions) GetProductDetails(id string) {
	a.dispatch(actiontypes.ProductDetailsRequest, nil)

	product, err := a.api.GetProduct(id)
	if err != nil {
		a.dispatch(actiontypes.ProductDetailsFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.ProductDetailsSuccess, product)
}

func (a *Actions) ClearProductDetails() {
	a.dispatch(actiontypes.ClearProductDetails, nil)
}

// CreateProduct asks the server for a fresh placeholder document the
// admin then edits through UpdateProduct.
func (a *Actions) CreateProduct() {
	a.dispatch(actiontypes.ProductCreateRequest, nil)

	product, err := a.api.CreateProduct(a.token())
	if err != nil {
		a.dispatch(actiontypes.ProductCreateFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.ProductCreateSuccess, product)
}

func (a *Actions) ResetProductCreate() {
	a.dispatch(actiontypes.ProductCreateReset, nil)
}

func (a *Actions) UpdateProduct(id string, input api.ProductInput) {
	a.dispatch(actiontypes.ProductUpdateRequest, nil)

	product, err := a.api.UpdateProduct(a.token(), id, input)
	if err != nil {
		a.dispatch(actiontypes.ProductUpdateFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.ProductUpdateSuccess, product)
}

func (a *Actions) ResetProductUpdate() {
	a.dispatch(actiontypes.ProductUpdateReset, nil)
}

func (a *Actions) DeleteProduct(id string) {
	a.dispatch(actiontypes.ProductDeleteRequest, nil)

	if err := a.api.DeleteProduct(a.token(), id); err != nil {
		a.dispatch(actiontypes.ProductDeleteFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.ProductDeleteSuccess, nil)
}

func (a *Actions) CreateProductReview(id string, rating float64, comment string) {
	a.dispatch(actiontypes.ProductCreateReviewRequest, nil)

	if err := a.api.CreateReview(a.token(), id, rating, comment); err != nil {
		a.dispatch(actiontypes.ProductCreateReviewFailed, err.Error())
		return
	}
	a.dispatch(actiontypes.ProductCreateReviewSuccess, nil)
}

func (a *Actions) ResetProductCreateReview() {
	a.dispatch(actiontypes.ProductCreateReviewReset, nil)
}
