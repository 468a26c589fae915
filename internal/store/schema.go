package store

const schema = `
CREATE TABLE IF NOT EXISTS observations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    entity TEXT NOT NULL,
    year INTEGER,
    value REAL
);

CREATE INDEX IF NOT EXISTS idx_observations_entity ON observations(entity);
CREATE INDEX IF NOT EXISTS idx_observations_year ON observations(year);
`
