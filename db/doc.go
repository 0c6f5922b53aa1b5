// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open selects the driver from the configured type:

	conn, err := db.Open(db.TypeSQLite, "file:awards.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite (modernc.org/sqlite) runs on a single connection with foreign keys
enabled. PostgreSQL uses github.com/lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - contests: voting window and reveal time
  - categories: per contest, ordered by sort_order
  - nominees: per category
  - voters: opaque link codes per contest
  - votes: one row per (voter, category), append-only
  - users, admin_profiles: admin sign-in

# Relationships

	contest 1──* category 1──* nominee
	contest 1──* voter 1──* vote
	category 1──* vote *──1 nominee
	user 1──0..1 admin_profile

Foreign keys do not cascade; deletes run child-first.

# Indexes

  - voters.code (unique)
  - votes.(voter_id, category_id) (unique)
  - votes.(contest_id, category_id)
  - categories.contest_id, nominees.category_id, voters.contest_id
*/
package db
