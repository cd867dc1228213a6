package sqlitedriver

import (
	"database/sql"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

const DriverName = "sqlite3_venuemap"

var connectionPragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
}

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			for _, pragma := range connectionPragmas {
				if _, err := conn.Exec(pragma, nil); err != nil {
					return fmt.Errorf("failed to apply %q: %w", pragma, err)
				}
			}
			return nil
		},
	})
}
