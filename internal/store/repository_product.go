package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

// productRepository is the SQL implementation of [ProductRepository] over
// the "products" table. Uniqueness of product_id is enforced by its primary
// key, so two concurrent inserts of the same id cannot both succeed.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores product and returns the stored row.
//
// Error handling:
//   - unique violation on product_id → [ErrDuplicateProductID].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *productRepository) Insert(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if product.Source == "" {
		product.Source = models.SourceRegistration
	}

	query, args, err := insertProductQuery(r.db.Dialect(), product)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stored, err := scanProduct(r.db.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Warn().Str("func", "*productRepository.Insert").Str("product_id", product.ProductID).Msg("product id already in catalog")
			return models.Product{}, ErrDuplicateProductID
		}
		log.Err(err).Str("func", "*productRepository.Insert").Msg("error inserting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return stored, nil
}

// ListByRegistrant returns the products registered by one principal.
func (r *productRepository) ListByRegistrant(ctx context.Context, registrantID int64) ([]models.Product, error) {
	return r.list(ctx, &registrantID, "*productRepository.ListByRegistrant")
}

// ListAll returns the whole catalog joined with registrant usernames.
func (r *productRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	return r.list(ctx, nil, "*productRepository.ListAll")
}

// list never turns a failed read into an empty slice: callers must be able
// to tell "no products" from "could not read".
func (r *productRepository) list(ctx context.Context, registrantID *int64, funcName string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := listProductsQuery(r.db.Dialect(), registrantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows, true)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning product")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating products")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// Exists reports whether the catalog has a row for productID.
func (r *productRepository) Exists(ctx context.Context, productID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := productExistsQuery(r.db.Dialect(), productID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*productRepository.Exists").Msg("error counting products")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func scanProduct(row rowScanner, joined bool) (models.Product, error) {
	var (
		p            models.Product
		registrantID sql.NullInt64
		source       string
		createdAt    dbTime
	)

	dest := []any{&p.ProductID, &p.Name, &p.Manufacturer, &p.TxRef, &registrantID, &source, &createdAt}
	if joined {
		dest = append(dest, &p.RegistrantUsername)
	}
	if err := row.Scan(dest...); err != nil {
		return models.Product{}, err
	}

	if registrantID.Valid {
		id := registrantID.Int64
		p.RegistrantID = &id
	}
	p.Source = models.ProductSource(source)
	p.CreatedAt = createdAt.Time

	return p, nil
}
