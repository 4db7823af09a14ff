package avro

// ReportResultSchema is the Avro schema for exported report results. One
// record per report per run; a single nullable-union row record covers every
// report's row shape, monetary values travel as fixed-precision strings so
// no consumer ever sees a binary float.
const ReportResultSchema = `{
	"type": "record",
	"name": "ReportResult",
	"namespace": "com.webstore.reports",
	"fields": [
		{"name": "run_id", "type": "string"},
		{"name": "report", "type": "string"},
		{"name": "generated_at", "type": "string"},
		{"name": "rows", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "ReportRow",
				"fields": [
					{"name": "customer_name", "type": ["null", "string"], "default": null},
					{"name": "email", "type": ["null", "string"], "default": null},
					{"name": "order_id", "type": ["null", "long"], "default": null},
					{"name": "status", "type": ["null", "string"], "default": null},
					{"name": "order_date", "type": ["null", "string"], "default": null},
					{"name": "item_count", "type": ["null", "long"], "default": null},
					{"name": "order_count", "type": ["null", "long"], "default": null},
					{"name": "product_name", "type": ["null", "string"], "default": null},
					{"name": "store_name", "type": ["null", "string"], "default": null},
					{"name": "price", "type": ["null", "string"], "default": null},
					{"name": "total", "type": ["null", "string"], "default": null},
					{"name": "total_sold", "type": ["null", "long"], "default": null},
					{"name": "max_stock", "type": ["null", "long"], "default": null},
					{"name": "discounted_products", "type": ["null", {"type": "array", "items": "string"}], "default": null}
				]
			}
		}}
	]
}`
