package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	productQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grocery_product_queries_total",
		Help: "Catalog list requests served.",
	})

	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grocery_orders_created_total",
		Help: "Orders accepted by the data service.",
	})

	orderLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grocery_order_lookups_total",
		Help: "Order tracking reads served.",
	})
)
