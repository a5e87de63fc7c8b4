package database

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors returned by the stores so handlers never have to know
// about pgx error types.
var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already taken")
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	username      text NOT NULL UNIQUE,
	password_hash text NOT NULL
);

CREATE TABLE IF NOT EXISTS basics (
	id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	logo         text,
	hero_image   text,
	navbar       jsonb NOT NULL DEFAULT '[]',
	count_title1 text,
	count_value1 text,
	count_title2 text,
	count_value2 text,
	count_title3 text,
	count_value3 text,
	count_title4 text,
	count_value4 text,
	headline     text,
	description  text
);
`

// Connect sets up the database connection pool and makes sure the tables
// exist. Any failure here is fatal: the process cannot run without a
// reachable database.
func Connect(databaseURL string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("Database ping failed: %v\n", err)
	}

	if _, err := pool.Exec(context.Background(), schema); err != nil {
		log.Fatalf("Failed to create tables: %v\n", err)
	}

	log.Println("Successfully connected to the database")
	return pool
}
