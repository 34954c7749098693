package actiontypes

const (
	ProductListRequest = "PRODUCT_LIST_REQUEST"
	ProductListSuccess = "PRODUCT_LIST_SUCCESS"
	ProductListFailed  = "PRODUCT_LIST_FAILED"

	ProductDetailsRequest = "PRODUCT_DETAILS_REQUEST"
	ProductDetailsSuccess = "PRODUCT_DETAILS_SUCCESS"
	ProductDetailsFailed  = "PRODUCT_DETAILS_FAILED"
	ClearProductDetails   = "CLEAR_PRODUCT_DETAILS"

	ProductTopRequest = "PRODUCT_TOP_REQUEST"
	ProductTopSuccess = "PRODUCT_TOP_SUCCESS"
	ProductTopFailed  = "PRODUCT_TOP_FAILED"

	ProductCreateRequest = "PRODUCT_CREATE_REQUEST"
	ProductCreateSuccess = "PRODUCT_CREATE_SUCCESS"
	ProductCreateFailed  = "PRODUCT_CREATE_FAILED"
	ProductCreateReset   = "PRODUCT_CREATE_RESET"

	ProductUpdateRequest = "PRODUCT_UPDATE_REQUEST"
	ProductUpdateSuccess = "PRODUCT_UPDATE_SUCCESS"
	ProductUpdateFailed  = "PRODUCT_UPDATE_FAILED"
	ProductUpdateReset   = "PRODUCT_UPDATE_RESET"

	ProductDeleteRequest = "PRODUCT_DELETE_REQUEST"
	ProductDeleteSuccess = "PRODUCT_DELETE_SUCCESS"
	ProductDeleteFailed  = "PRODUCT_DELETE_FAILED"

	ProductCreateReviewRequest = "PRODUCT_CREATE_REVIEW_REQUEST"
	ProductCreateReviewSuccess = "PRODUCT_CREATE_REVIEW_SUCCESS"
	ProductCreateReviewFailed  = "PRODUCT_CREATE_REVIEW_FAILED"
	ProductCreateReviewReset   = "PRODUCT_CREATE_REVIEW_RESET"
)
