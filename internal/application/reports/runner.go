package reports

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"webstore_reports/pkg/logger"
)

// Report names, in presentation order.
const (
	NameAllCustomers          = "all_customers"
	NameOrdersWithItemCount   = "orders_with_item_count"
	NameProductsByPriceDesc   = "products_by_price_desc"
	NamePendingOrdersTotal    = "pending_orders_with_total"
	NameOrderCountPerCustomer = "order_count_per_customer"
	NameTopCustomersByValue   = "top_customers_by_value"
	NameRecentOrders          = "recent_orders"
	NameTotalSoldPerProduct   = "total_sold_per_product"
	NameDiscountedOrders      = "discounted_orders"
	NameFeaturedCategoryStock = "featured_category_stock"
)

// AllReportNames returns the presentation order of the ten reports.
func AllReportNames() []string {
	return []string{
		NameAllCustomers,
		NameOrdersWithItemCount,
		NameProductsByPriceDesc,
		NamePendingOrdersTotal,
		NameOrderCountPerCustomer,
		NameTopCustomersByValue,
		NameRecentOrders,
		NameTotalSoldPerProduct,
		NameDiscountedOrders,
		NameFeaturedCategoryStock,
	}
}

// Result is the outcome of one report evaluation. Rows holds the report's
// typed row slice; on error Rows is nil and no partial rows are kept.
type Result struct {
	RunID    string
	Name     string
	Rows     interface{}
	Err      error
	Duration time.Duration
}

// Runner evaluates all reports over one snapshot with a bounded number of
// workers. Reports are independent and the snapshot is read-only, so no
// coordination beyond the job/result channels is needed.
type Runner struct {
	svc     *Service
	log     logger.Logger
	workers int
}

func NewRunner(svc *Service, log logger.Logger, workers int) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{svc: svc, log: log, workers: workers}
}

type reportJob struct {
	name string
	run  func() (interface{}, error)
}

func (r *Runner) jobs(now time.Time) []reportJob {
	svc := r.svc
	return []reportJob{
		{NameAllCustomers, func() (interface{}, error) { return svc.AllCustomers(), nil }},
		{NameOrdersWithItemCount, func() (interface{}, error) { return svc.OrdersWithItemCount() }},
		{NameProductsByPriceDesc, func() (interface{}, error) { return svc.ProductsByPriceDesc(), nil }},
		{NamePendingOrdersTotal, func() (interface{}, error) { return svc.PendingOrdersWithTotal() }},
		{NameOrderCountPerCustomer, func() (interface{}, error) { return svc.OrderCountPerCustomer(), nil }},
		{NameTopCustomersByValue, func() (interface{}, error) { return svc.Top3CustomersByValue() }},
		{NameRecentOrders, func() (interface{}, error) { return svc.RecentOrders(now) }},
		{NameTotalSoldPerProduct, func() (interface{}, error) { return svc.TotalSoldPerProduct() }},
		{NameDiscountedOrders, func() (interface{}, error) { return svc.DiscountedOrders() }},
		{NameFeaturedCategoryStock, func() (interface{}, error) { return svc.FeaturedCategoryStock() }},
	}
}

// RunAll evaluates every report and returns the results in presentation
// order, regardless of which worker finished first. Each run gets a uuid
// shared by all its results.
func (r *Runner) RunAll(ctx context.Context, now time.Time) []Result {
	runID := uuid.NewString()
	jobs := r.jobs(now)

	jobCh := make(chan int, len(jobs))
	results := make([]Result, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				select {
				case <-ctx.Done():
					results[idx] = Result{RunID: runID, Name: jobs[idx].name, Err: ctx.Err()}
					continue
				default:
				}

				start := time.Now()
				rows, err := jobs[idx].run()
				elapsed := time.Since(start)
				if err != nil {
					rows = nil
					r.log.Error("report failed",
						logger.String("run_id", runID),
						logger.String("report", jobs[idx].name),
						logger.Error(err),
					)
				} else {
					r.log.Debug("report done",
						logger.String("run_id", runID),
						logger.String("report", jobs[idx].name),
						logger.String("duration", elapsed.String()),
					)
				}
				results[idx] = Result{
					RunID:    runID,
					Name:     jobs[idx].name,
					Rows:     rows,
					Err:      err,
					Duration: elapsed,
				}
			}
		}()
	}

	for i := range jobs {
		jobCh <- i
	}
	close(jobCh)
	wg.Wait()

	return results
}
