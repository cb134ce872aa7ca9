package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	principalsTable      = "principals"
	productsTable        = "products"
	inconsistenciesTable = "inconsistencies"
	revokedSessionsTable = "revoked_sessions"
)

var (
	principalColumns = []string{"id", "username", "password_hash", "role", "active", "created_at"}

	productColumns = []string{"product_id", "name", "manufacturer", "tx_ref", "registrant_id", "source", "created_at"}

	// joined listing: products aliased p, principals aliased pr
	productJoinedColumns = []string{
		"p.product_id", "p.name", "p.manufacturer", "p.tx_ref", "p.registrant_id", "p.source", "p.created_at",
		"COALESCE(pr.username, '')",
	}

	inconsistencyColumns = []string{"id", "product_id", "tx_ref", "registrant_id", "reason", "detected_at", "resolved_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func insertPrincipalQuery(d Dialect, p models.Principal) (string, []any, error) {
	return statementBuilder(d).
		Insert(principalsTable).
		Columns("username", "password_hash", "role", "active").
		Values(p.Username, p.PasswordHash, string(p.Role), p.Active).
		Suffix(returning(principalColumns)).
		ToSql()
}

func selectPrincipalQuery(d Dialect, where sq.Eq) (string, []any, error) {
	return statementBuilder(d).
		Select(principalColumns...).
		From(principalsTable).
		Where(where).
		ToSql()
}

func listPrincipalsQuery(d Dialect) (string, []any, error) {
	return statementBuilder(d).
		Select(principalColumns...).
		From(principalsTable).
		OrderBy("id").
		ToSql()
}

// toggleActiveQuery flips the flag inside the UPDATE itself so concurrent
// toggles serialize on the row lock instead of racing on a read.
func toggleActiveQuery(d Dialect, id int64) (string, []any, error) {
	return statementBuilder(d).
		Update(principalsTable).
		Set("active", sq.Expr("NOT active")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(principalColumns)).
		ToSql()
}

func insertProductQuery(d Dialect, p models.Product) (string, []any, error) {
	return statementBuilder(d).
		Insert(productsTable).
		Columns("product_id", "name", "manufacturer", "tx_ref", "registrant_id", "source").
		Values(p.ProductID, p.Name, p.Manufacturer, p.TxRef, p.RegistrantID, string(p.Source)).
		Suffix(returning(productColumns)).
		ToSql()
}

// listProductsQuery lists catalog rows joined with the registrant username.
// A nil registrantID lists the whole catalog.
func listProductsQuery(d Dialect, registrantID *int64) (string, []any, error) {
	query := statementBuilder(d).
		Select(productJoinedColumns...).
		From(productsTable+" p").
		LeftJoin(principalsTable+" pr ON pr.id = p.registrant_id").
		OrderBy("p.created_at", "p.product_id")

	if registrantID != nil {
		query = query.Where(sq.Eq{"p.registrant_id": *registrantID})
	}

	return query.ToSql()
}

func productExistsQuery(d Dialect, productID string) (string, []any, error) {
	return statementBuilder(d).
		Select("COUNT(*)").
		From(productsTable).
		Where(sq.Eq{"product_id": productID}).
		ToSql()
}

func insertInconsistencyQuery(d Dialect, i models.Inconsistency) (string, []any, error) {
	return statementBuilder(d).
		Insert(inconsistenciesTable).
		Columns("product_id", "tx_ref", "registrant_id", "reason", "detected_at").
		Values(i.ProductID, i.TxRef, i.RegistrantID, i.Reason, i.DetectedAt.UTC()).
		Suffix(returning(inconsistencyColumns)).
		ToSql()
}

func listInconsistenciesQuery(d Dialect, onlyOpen bool) (string, []any, error) {
	query := statementBuilder(d).
		Select(inconsistencyColumns...).
		From(inconsistenciesTable).
		OrderBy("id")

	if onlyOpen {
		query = query.Where(sq.Eq{"resolved_at": nil})
	}

	return query.ToSql()
}

func resolveInconsistenciesQuery(d Dialect, productID string, resolvedAt time.Time) (string, []any, error) {
	return statementBuilder(d).
		Update(inconsistenciesTable).
		Set("resolved_at", resolvedAt.UTC()).
		Where(sq.Eq{"product_id": productID, "resolved_at": nil}).
		ToSql()
}

func revokeSessionQuery(d Dialect, sessionID string, expiresAt time.Time) (string, []any, error) {
	return statementBuilder(d).
		Insert(revokedSessionsTable).
		Columns("session_id", "expires_at").
		Values(sessionID, expiresAt.UTC()).
		Suffix("ON CONFLICT (session_id) DO NOTHING").
		ToSql()
}

func sessionRevokedQuery(d Dialect, sessionID string) (string, []any, error) {
	return statementBuilder(d).
		Select("COUNT(*)").
		From(revokedSessionsTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func purgeSessionsQuery(d Dialect, now time.Time) (string, []any, error) {
	return statementBuilder(d).
		Delete(revokedSessionsTable).
		Where(sq.Lt{"expires_at": now.UTC()}).
		ToSql()
}
