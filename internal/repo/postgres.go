package repo

import (
	"context"
	"database/sql"

	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// postgresRepo implements every store interface of the service layer on
// one connection pool. Calls join the transaction carried by ctx, if any.
type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// forUpdate locks selected rows when running inside a transaction.
func forUpdate(ctx context.Context, q sq.SelectBuilder) sq.SelectBuilder {
	if trm.ExtractTx(ctx) != nil {
		return q.Suffix("FOR UPDATE")
	}
	return q
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, trm.Conn(ctx, r.db), dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, trm.Conn(ctx, r.db), dest, query, args...)
}

// affected reports whether an UPDATE or DELETE matched any row.
func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
