// Package backend is the data service behind the bot: a PostgREST-style
// HTTP API over the products and orders tables.
package backend

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
	"github.com/yourusername/grocery-order-bot/pkg/logger"
)

// Datastore is what the HTTP layer needs from persistence.
type Datastore interface {
	ListProducts(ctx context.Context, q ProductQuery) ([]entity.Product, error)
	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	OrderByNo(ctx context.Context, orderNo int64) (entity.Order, error)
	AdvanceStatus(ctx context.Context, orderNo int64, status string) (entity.Order, error)
}

type Handler struct {
	store  Datastore
	apiKey string
}

func NewHandler(store Datastore, apiKey string) *Handler {
	return &Handler{store: store, apiKey: apiKey}
}

// Register mounts the API routes on the router.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/", h.requireAPIKey)
	api.GET("/products", h.listProducts)
	api.GET("/orders", h.getOrders)
	api.POST("/orders", h.createOrder)
	api.PATCH("/orders", h.updateOrder)
}

// requireAPIKey accepts either the PostgREST apikey header or a bearer
// token. An empty configured key disables the check.
func (h *Handler) requireAPIKey(c *gin.Context) {
	if h.apiKey == "" {
		return
	}
	if c.GetHeader("apikey") == h.apiKey {
		return
	}
	if strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ") == h.apiKey {
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or missing api key"})
}

// ilikeValue strips the PostgREST "ilike.%...%" wrapping, leaving the
// needle itself.
func ilikeValue(raw string) string {
	raw = strings.TrimPrefix(raw, "ilike.")
	return strings.Trim(raw, "%")
}

func (h *Handler) listProducts(c *gin.Context) {
	q := ProductQuery{
		NameLike:     ilikeValue(c.Query("name")),
		CategoryLike: ilikeValue(c.Query("category")),
	}
	if raw := strings.TrimPrefix(c.Query("price"), "lte."); raw != c.Query("price") {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "bad price filter: " + c.Query("price")})
			return
		}
		q.PriceMax = price
	}

	products, err := h.store.ListProducts(c.Request.Context(), q)
	if err != nil {
		logger.ErrorLogger.Printf("list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not list products"})
		return
	}
	productQueries.Inc()
	c.JSON(http.StatusOK, products)
}

// orderNoParam parses the PostgREST "order_no=eq.N" filter.
func orderNoParam(c *gin.Context) (int64, bool) {
	raw := strings.TrimPrefix(c.Query("order_no"), "eq.")
	orderNo, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return orderNo, true
}

func (h *Handler) getOrders(c *gin.Context) {
	orderNo, ok := orderNoParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "order_no=eq.<number> filter required"})
		return
	}

	order, err := h.store.OrderByNo(c.Request.Context(), orderNo)
	if errors.Is(err, ErrOrderNotFound) {
		c.JSON(http.StatusOK, []entity.Order{})
		return
	}
	if err != nil {
		logger.ErrorLogger.Printf("get order %d: %v", orderNo, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not read order"})
		return
	}
	orderLookups.Inc()
	c.JSON(http.StatusOK, []entity.Order{order})
}

func (h *Handler) createOrder(c *gin.Context) {
	var order entity.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bad order payload: " + err.Error()})
		return
	}
	if len(order.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "order has no items"})
		return
	}
	if order.Total <= 0 {
		order.Total = entity.CartTotal(order.Items)
	}

	created, err := h.store.CreateOrder(c.Request.Context(), order)
	if err != nil {
		logger.ErrorLogger.Printf("create order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not create order"})
		return
	}
	ordersCreated.Inc()

	if wantsRepresentation(c) {
		c.JSON(http.StatusCreated, []entity.Order{created})
		return
	}
	c.Status(http.StatusCreated)
}

func wantsRepresentation(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Prefer"), "return=representation")
}

type statusPatch struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateOrder(c *gin.Context) {
	orderNo, ok := orderNoParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "order_no=eq.<number> filter required"})
		return
	}
	var patch statusPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bad status payload: " + err.Error()})
		return
	}

	updated, err := h.store.AdvanceStatus(c.Request.Context(), orderNo, patch.Status)
	if errors.Is(err, ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
		return
	}
	if errors.Is(err, ErrInvalidTransition) {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		logger.ErrorLogger.Printf("update order %d: %v", orderNo, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not update order"})
		return
	}

	if wantsRepresentation(c) {
		c.JSON(http.StatusOK, []entity.Order{updated})
		return
	}
	c.Status(http.StatusNoContent)
}
