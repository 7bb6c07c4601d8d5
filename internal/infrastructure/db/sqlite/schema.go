package sqlite

// schemaDDL bootstraps the three tables. The UNIQUE(user_id, store_id)
// constraint is the storage-level guarantee behind the one-rating-per-pair
// invariant: concurrent creates that both pass the service's existence check
// cannot both insert.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS Users (
    user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    address       TEXT,
    role          TEXT NOT NULL DEFAULT 'Normal User'
                  CHECK (role IN ('Normal User', 'Store Owner', 'System Administrator')),
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS Stores (
    store_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL,
    address    TEXT,
    owner_id   INTEGER REFERENCES Users(user_id),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS Ratings (
    rating_id    INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id      INTEGER NOT NULL REFERENCES Users(user_id),
    store_id     INTEGER NOT NULL REFERENCES Stores(store_id),
    rating_value INTEGER NOT NULL CHECK (rating_value BETWEEN 1 AND 5),
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (user_id, store_id)
);

CREATE INDEX IF NOT EXISTS idx_ratings_store ON Ratings(store_id);
CREATE INDEX IF NOT EXISTS idx_stores_owner  ON Stores(owner_id);
`
