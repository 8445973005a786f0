package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

const (
	dbPingTimeout  = 3 * time.Second
	dbConnectWait  = 20 * time.Second
	dbFirstBackoff = 250 * time.Millisecond
	dbMaxBackoff   = 4 * time.Second
)

// openDatabase opens the Postgres handle and waits for the instance to accept
// pings, backing off between attempts. The directory cannot serve anything
// without its database, so a dead instance inside the wait window is fatal to
// startup.
func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	deadline := time.Now().Add(dbConnectWait)
	backoff := dbFirstBackoff

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
		err = db.PingContext(pingCtx)
		cancel()

		if err == nil {
			return db, nil
		}
		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("database not ready, retrying")
		time.Sleep(backoff)
		if backoff *= 2; backoff > dbMaxBackoff {
			backoff = dbMaxBackoff
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("ping database: %w", err)
}
