package marketplace

// Upstream endpoint paths, relative to the configured base URL. This is
// the single table of URLs the gateway knows about.
const (
	pathCurrentUser = "/api/current-user"

	pathProducts      = "/api/get-product"
	pathProductDetail = "/api/product-details"

	pathOrders      = "/api/order-list"
	pathPlaceOrder  = "/api/place-order"
	pathCancelOrder = "/api/cancel-order"
	pathOrderStatus = "/api/update-order-status"

	pathCartItems      = "/api/view-cart"
	pathAddToCart      = "/api/addtocart"
	pathUpdateCartItem = "/api/update-cart-product"
	pathDeleteCartItem = "/api/delete-cart-product"

	pathRatings   = "/api/get-ratings"
	pathAddRating = "/api/add-rating"

	pathTestimonials       = "/api/testimonials"
	pathApproveTestimonial = "/api/approve-testimonial"

	pathPortfolios = "/api/portfolios"
	pathBanners    = "/api/get-banners"

	pathPendingProducts = "/api/admin/pending-products"
	pathApproveProduct  = "/api/admin/approve-product"
	pathRejectProduct   = "/api/admin/reject-product"
	pathDisableProduct  = "/api/admin/disable-product"
)
