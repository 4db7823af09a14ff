// Package export turns finished report results into Avro records and
// publishes them to Kafka for downstream consumers.
package export

import (
	"context"
	"fmt"
	"time"

	"webstore_reports/internal/application/reports"
)

// Encoder abstracts the Avro codec so the service can be tested without one.
type Encoder interface {
	EncodeNative(native interface{}) ([]byte, error)
}

// Publisher abstracts the Kafka producer.
type Publisher interface {
	PublishReport(ctx context.Context, payload []byte) error
}

type Service struct {
	encoder   Encoder
	publisher Publisher
}

func NewService(encoder Encoder, publisher Publisher) *Service {
	return &Service{encoder: encoder, publisher: publisher}
}

// ExportResults publishes one record per successful report result and
// returns the number published. Failed reports are skipped; they produced no
// rows to export. A publish failure stops the export and reports how many
// records made it out.
func (s *Service) ExportResults(ctx context.Context, results []reports.Result, generatedAt time.Time) (int, error) {
	count := 0
	for _, res := range results {
		if res.Err != nil {
			continue
		}

		native, err := resultToNative(res, generatedAt)
		if err != nil {
			return count, fmt.Errorf("map report %s: %w", res.Name, err)
		}

		payload, err := s.encoder.EncodeNative(native)
		if err != nil {
			return count, fmt.Errorf("encode report %s: %w", res.Name, err)
		}

		if err := s.publisher.PublishReport(ctx, payload); err != nil {
			return count, fmt.Errorf("publish report %s: %w", res.Name, err)
		}
		count++
	}
	return count, nil
}

func resultToNative(res reports.Result, generatedAt time.Time) (map[string]interface{}, error) {
	rows, err := rowsToNative(res.Rows)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"run_id":       res.RunID,
		"report":       res.Name,
		"generated_at": generatedAt.UTC().Format(time.RFC3339),
		"rows":         rows,
	}, nil
}

func rowsToNative(rows interface{}) ([]interface{}, error) {
	switch typed := rows.(type) {
	case []reports.CustomerRow:
		out := make([]interface{}, 0, len(typed))
		for _, r := range typed {
			out = append(out, row(
				field("customer_name", unionString(r.FullName)),
				field("email", unionString(r.Email)),
			))
		}
		return out, nil
	case []reports.OrderItemCountRow:
		out := make([]interface{}, 0, len(typed))
		for _, r := range typed {
			out = append(out, row(
				field("customer_name", unionString(r.CustomerName)),
				field("order_id", unionLong(r.OrderID)),
				field("status", unionString(r.Status)),
				field("item_count", unionLong(r.ItemCount)),
			))
		}
		return out, nil
	case []reports.ProductPriceRow:
		out := make([]interface{}, 0, len(typed))
		for _, r := range typed {
			out = append(out, row(
				field("product_name", unionString(r.Name)),
				field("price", unionString(r.Price.String())),
			))
		}
		return out, nil
	case []reports.PendingOrderRow:
		out := make([]interface{}, 0, len(typed))
		for _, r := range typed {
			out = append(out, row(
				field("customer_name", unionString(r.CustomerName)),
				field("order_id", unionLong(r.OrderID)),
				field("order_date", unionString(r.OrderDate.UTC().Format(time.RFC3339))),
				field("total", unionString(r.Total.String())),
			))
		}
		return out, nil
	case []reports.CustomerOrderCountRow:
		out := make([]interface{}, 0, len(typed))
		for _, r := range typed {
			out = append(out, row(
				field("customer_name", unionString(r.FullName)),
				field("order_count", unionLong(r.OrderCount)),
			))
		}
		return out, nil
	case []reports.CustomerValueRow:
		out := make([]interface{}, 0, len(typed))
		for _, r := range typed {
			out = append(out, row(
				field("customer_name", unionString(r.FullName)),
				field("total", unionString(r.TotalValue.String())),
			))
		}
		return out, nil
	case []reports.RecentOrderRow:
		out := make([]interface{}, 0, len(typed))
		for _, r := range typed {
			out = append(out, row(
				field("order_id", unionLong(r.OrderID)),
				field("order_date", unionString(r.OrderDate.UTC().Format(time.RFC3339))),
				field("customer_name", unionString(r.CustomerName)),
			))
		}
		return out, nil
	case []reports.ProductSalesRow:
		out := make([]interface{}, 0, len(typed))
		for _, r := range typed {
			out = append(out, row(
				field("product_name", unionString(r.ProductName)),
				field("total_sold", unionLong(r.TotalSold)),
			))
		}
		return out, nil
	case []reports.DiscountedOrderRow:
		out := make([]interface{}, 0, len(typed))
		for _, r := range typed {
			out = append(out, row(
				field("order_id", unionLong(r.OrderID)),
				field("customer_name", unionString(r.CustomerName)),
				field("discounted_products", unionStringArray(r.DiscountedProducts)),
			))
		}
		return out, nil
	case []reports.StockRow:
		out := make([]interface{}, 0, len(typed))
		for _, r := range typed {
			out = append(out, row(
				field("product_name", unionString(r.ProductName)),
				field("store_name", unionString(r.StoreName)),
				field("max_stock", unionLong(r.MaxStock)),
			))
		}
		return out, nil
	case nil:
		return []interface{}{}, nil
	default:
		return nil, fmt.Errorf("unknown row type %T", rows)
	}
}

/* ========== goavro native helpers ========== */

// Every ReportRow field is a nullable union; absent fields stay null, present
// ones are wrapped as {"type": value} the way goavro expects.

type nativeField struct {
	name  string
	value interface{}
}

func field(name string, value interface{}) nativeField {
	return nativeField{name: name, value: value}
}

func row(fields ...nativeField) map[string]interface{} {
	m := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		m[f.name] = f.value
	}
	return m
}

func unionString(v string) map[string]interface{} {
	return map[string]interface{}{"string": v}
}

func unionLong(v int) map[string]interface{} {
	return map[string]interface{}{"long": int64(v)}
}

func unionStringArray(v []string) map[string]interface{} {
	items := make([]interface{}, 0, len(v))
	for _, s := range v {
		items = append(items, s)
	}
	return map[string]interface{}{"array": items}
}
