package router

import (
	"github.com/gin-gonic/gin"

	"webstore_reports/internal/interfaces/http/handler"
)

func RegisterRoutes(r *gin.Engine, reportHandler *handler.ReportHandler) {
	api := r.Group("/api/reports")
	{
		api.GET("/customers", reportHandler.AllCustomers)
		api.GET("/orders", reportHandler.OrdersWithItemCount)
		api.GET("/products", reportHandler.ProductsByPriceDesc)
		api.GET("/pending-orders", reportHandler.PendingOrdersWithTotal)
		api.GET("/order-counts", reportHandler.OrderCountPerCustomer)
		api.GET("/top-customers", reportHandler.TopCustomersByValue)
		api.GET("/recent-orders", reportHandler.RecentOrders)
		api.GET("/product-sales", reportHandler.TotalSoldPerProduct)
		api.GET("/discounted-orders", reportHandler.DiscountedOrders)
		api.GET("/featured-stock", reportHandler.FeaturedCategoryStock)
	}
}
