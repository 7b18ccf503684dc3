package sqlite

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Querier is implemented by *sqlx.DB and *sqlx.Tx.
type Querier interface {
	sqlx.ExtContext
}

type txCtxKey struct{}

// QuerierFromCtx returns the transaction stored in ctx by RunInTx, or db.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// builder emits "?" placeholders, which is what the sqlite driver binds.
func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
