package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"webstore_reports/internal/application/reports"
	"webstore_reports/internal/domain/webstore"
)

// ReportHandler exposes each report as a read-only endpoint. Rows are
// computed over the snapshot held by the service; the handler only maps
// parameters in and errors out.
type ReportHandler struct {
	svc *reports.Service
}

func NewReportHandler(svc *reports.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) AllCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rows": h.svc.AllCustomers()})
}

func (h *ReportHandler) OrdersWithItemCount(c *gin.Context) {
	rows, err := h.svc.OrdersWithItemCount()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *ReportHandler) ProductsByPriceDesc(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rows": h.svc.ProductsByPriceDesc()})
}

func (h *ReportHandler) PendingOrdersWithTotal(c *gin.Context) {
	rows, err := h.svc.PendingOrdersWithTotal()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *ReportHandler) OrderCountPerCustomer(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rows": h.svc.OrderCountPerCustomer()})
}

func (h *ReportHandler) TopCustomersByValue(c *gin.Context) {
	rows, err := h.svc.Top3CustomersByValue()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// RecentOrders accepts an optional now=RFC3339 query parameter as the
// reference instant; absent, the server clock is used.
func (h *ReportHandler) RecentOrders(c *gin.Context) {
	now := time.Now().UTC()
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "now must be RFC3339"})
			return
		}
		now = parsed
	}

	rows, err := h.svc.RecentOrders(now)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *ReportHandler) TotalSoldPerProduct(c *gin.Context) {
	rows, err := h.svc.TotalSoldPerProduct()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *ReportHandler) DiscountedOrders(c *gin.Context) {
	rows, err := h.svc.DiscountedOrders()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *ReportHandler) FeaturedCategoryStock(c *gin.Context) {
	rows, err := h.svc.FeaturedCategoryStock()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// writeError distinguishes corrupt data from everything else. A dangling
// foreign key means the dataset itself is bad, not the request.
func writeError(c *gin.Context, err error) {
	var refErr *webstore.ReferentialIntegrityError
	if errors.As(err, &refErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
