package backend

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

var (
	// ErrOrderNotFound reports a lookup for an order number that does not
	// exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidTransition reports a status change that would move an
	// order backwards or to an unknown status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ProductQuery narrows a product listing. Zero values mean no constraint.
type ProductQuery struct {
	NameLike     string
	CategoryLike string
	PriceMax     float64
}

// Store is the Postgres persistence layer of the data service.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// OpenDB connects to Postgres, retrying while the database comes up.
func OpenDB(dsn string, attempts int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	for i := 0; i < attempts; i++ {
		if err = db.Ping(); err == nil {
			return db, nil
		}
		time.Sleep(time.Second)
	}
	db.Close()
	return nil, fmt.Errorf("ping db after %d attempts: %w", attempts, err)
}

func (s *Store) ListProducts(ctx context.Context, q ProductQuery) ([]entity.Product, error) {
	query := "SELECT id, name, category, price, image_url FROM products"
	var conds []string
	var args []interface{}

	if q.NameLike != "" {
		args = append(args, "%"+q.NameLike+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if q.CategoryLike != "" {
		args = append(args, "%"+q.CategoryLike+"%")
		conds = append(conds, fmt.Sprintf("category ILIKE $%d", len(args)))
	}
	if q.PriceMax > 0 {
		args = append(args, q.PriceMax)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// InsertProducts bulk-loads catalog rows, used by seeding.
func (s *Store) InsertProducts(ctx context.Context, products []entity.Product) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO products (name, category, price, image_url) VALUES ($1, $2, $3, $4)")
	if err != nil {
		return 0, fmt.Errorf("prepare seed insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p.Name, p.Category, p.Price, p.ImageURL); err != nil {
			return 0, fmt.Errorf("insert product %q: %w", p.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return len(products), nil
}

func (s *Store) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return entity.Order{}, fmt.Errorf("encode order items: %w", err)
	}

	order.ID = uuid.NewString()
	if entity.StatusIndex(order.Status) < 0 {
		order.Status = entity.StatusOrderReceived
	}

	err = s.db.QueryRowContext(ctx,
		`INSERT INTO orders (id, user_id, items, total, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING order_no, created_at`,
		order.ID, order.UserID, items, order.Total, order.Status,
	).Scan(&order.OrderNo, &order.CreatedAt)
	if err != nil {
		return entity.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

func (s *Store) OrderByNo(ctx context.Context, orderNo int64) (entity.Order, error) {
	var order entity.Order
	var items []byte

	err := s.db.QueryRowContext(ctx,
		`SELECT id, order_no, user_id, items, total, status, created_at
		 FROM orders WHERE order_no = $1`, orderNo,
	).Scan(&order.ID, &order.OrderNo, &order.UserID, &items, &order.Total, &order.Status, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return entity.Order{}, fmt.Errorf("select order: %w", err)
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return entity.Order{}, fmt.Errorf("decode order items: %w", err)
	}
	return order, nil
}

// AdvanceStatus moves an order forward along its lifecycle. Moving
// backwards or to an unknown status is rejected.
func (s *Store) AdvanceStatus(ctx context.Context, orderNo int64, status string) (entity.Order, error) {
	next := entity.StatusIndex(status)
	if next < 0 {
		return entity.Order{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	order, err := s.OrderByNo(ctx, orderNo)
	if err != nil {
		return entity.Order{}, err
	}
	if next < entity.StatusIndex(order.Status) {
		return entity.Order{}, fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, order.Status, status)
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE order_no = $2", status, orderNo)
	if err != nil {
		return entity.Order{}, fmt.Errorf("update order status: %w", err)
	}
	order.Status = status
	return order, nil
}
