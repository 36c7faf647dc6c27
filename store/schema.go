package store

// schemaSQL is the DDL for all tables, including the FTS5 index that
// powers document search.
const schemaSQL = `
-- Document registry with hash-based change detection and derived
-- analysis fields (overview, key points, highlights, insights).
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    path TEXT NOT NULL UNIQUE,
    filename TEXT NOT NULL,
    format TEXT NOT NULL,
    category TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    status TEXT DEFAULT 'pending',
    raw_text TEXT,
    overview TEXT,
    key_points JSON,
    highlights JSON,
    insights JSON,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Full-text search via FTS5
CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts5(
    title,
    raw_text,
    content='documents',
    content_rowid='id',
    tokenize='porter unicode61'
);

-- FTS triggers to keep index in sync
CREATE TRIGGER IF NOT EXISTS documents_ai AFTER INSERT ON documents BEGIN
    INSERT INTO documents_fts(rowid, title, raw_text) VALUES (new.id, new.title, new.raw_text);
END;
CREATE TRIGGER IF NOT EXISTS documents_ad AFTER DELETE ON documents BEGIN
    INSERT INTO documents_fts(documents_fts, rowid, title, raw_text) VALUES ('delete', old.id, old.title, old.raw_text);
END;
CREATE TRIGGER IF NOT EXISTS documents_au AFTER UPDATE ON documents BEGIN
    INSERT INTO documents_fts(documents_fts, rowid, title, raw_text) VALUES ('delete', old.id, old.title, old.raw_text);
    INSERT INTO documents_fts(rowid, title, raw_text) VALUES (new.id, new.title, new.raw_text);
END;
`
