package store

import (
	"context"
	"errors"
	"fmt"

	berrors "github.com/andrerobles/backoffice/internal/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgCategoryStore implements CategoryStore using PostgreSQL.
type PgCategoryStore struct {
	db *pgxpool.Pool
}

func NewPgCategoryStore(db *pgxpool.Pool) *PgCategoryStore {
	return &PgCategoryStore{db: db}
}

func (s *PgCategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`, id)
	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, berrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}
	return &c, nil
}

func (s *PgCategoryStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Category, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = ANY($1) ORDER BY created_at`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find categories by IDs: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

func (s *PgCategoryStore) FindAll(ctx context.Context) ([]Category, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to find all categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

func (s *PgCategoryStore) Create(ctx context.Context, name string) (*Category, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name, created_at`, name)
	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &c, nil
}

func (s *PgCategoryStore) Update(ctx context.Context, category *Category) (*Category, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE categories SET name = $2 WHERE id = $1 RETURNING id, name, created_at`,
		category.ID, category.Name)
	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, berrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &c, nil
}

func (s *PgCategoryStore) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete category by ID: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanCategories(rows pgx.Rows) ([]Category, error) {
	list := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category rows: %w", err)
	}
	return list, nil
}

// PgProductStore implements ProductStore using PostgreSQL.
type PgProductStore struct {
	db *pgxpool.Pool
}

func NewPgProductStore(db *pgxpool.Pool) *PgProductStore {
	return &PgProductStore{db: db}
}

const productColumns = `id, name, description, price, category_ids, image_url, created_at`

func (s *PgProductStore) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, berrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return p, nil
}

func (s *PgProductStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ANY($1) ORDER BY created_at`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find products by IDs: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (s *PgProductStore) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (s *PgProductStore) Create(ctx context.Context, product *Product) (*Product, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, category_ids, image_url)
		 VALUES ($1, $2, $3, $4, $5) RETURNING `+productColumns,
		product.Name, product.Description, product.Price, product.CategoryIDs, product.ImageURL)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return p, nil
}

func (s *PgProductStore) Update(ctx context.Context, product *Product) (*Product, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE products SET name = $2, description = $3, price = $4, category_ids = $5, image_url = $6
		 WHERE id = $1 RETURNING `+productColumns,
		product.ID, product.Name, product.Description, product.Price, product.CategoryIDs, product.ImageURL)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, berrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return p, nil
}

func (s *PgProductStore) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete product by ID: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryIDs, &p.ImageURL, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	list := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		list = append(list, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return list, nil
}

// PgOrderStore implements OrderStore using PostgreSQL.
type PgOrderStore struct {
	db *pgxpool.Pool
}

func NewPgOrderStore(db *pgxpool.Pool) *PgOrderStore {
	return &PgOrderStore{db: db}
}

const orderColumns = `id, date, product_ids, total, created_at`

func (s *PgOrderStore) FindByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, berrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}
	return o, nil
}

func (s *PgOrderStore) FindAll(ctx context.Context) ([]Order, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to find all orders: %w", err)
	}
	defer rows.Close()
	list := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		list = append(list, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order rows: %w", err)
	}
	return list, nil
}

func (s *PgOrderStore) Create(ctx context.Context, order *Order) (*Order, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO orders (date, product_ids, total) VALUES ($1, $2, $3) RETURNING `+orderColumns,
		order.Date, order.ProductIDs, order.Total)
	o, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return o, nil
}

func (s *PgOrderStore) Update(ctx context.Context, order *Order) (*Order, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE orders SET date = $2, product_ids = $3, total = $4 WHERE id = $1 RETURNING `+orderColumns,
		order.ID, order.Date, order.ProductIDs, order.Total)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, berrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return o, nil
}

func (s *PgOrderStore) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete order by ID: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	if err := row.Scan(&o.ID, &o.Date, &o.ProductIDs, &o.Total, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}
