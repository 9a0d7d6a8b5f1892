package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Session binds a gorm session to ctx and, when tx is set, routes every
// statement through that *sql.Tx so repositories join the service's
// transaction.
func Session(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	session := db.WithContext(ctx)
	if tx != nil {
		session.Statement.ConnPool = tx
	}
	return session
}
