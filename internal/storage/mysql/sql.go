package mysql

// Single-statement schema init so it can run through a plain Exec at
// boot; the composite index backs the leaderboard GROUP BY.
const createRatingsSQL = `
CREATE TABLE IF NOT EXISTS ratings (
  id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  session_id  VARCHAR(64)  NOT NULL,
  animal_name VARCHAR(255) NOT NULL,
  rating      VARCHAR(16)  NOT NULL,
  PRIMARY KEY (id),
  INDEX idx_ratings_animal_rating (animal_name, rating)
)
`

// COALESCE keeps the DB clock authoritative when the caller has no
// timestamp (mirrors the append-only file backend).
const insertRatingSQL = `
INSERT INTO ratings (created_at, session_id, animal_name, rating)
VALUES (COALESCE(?, CURRENT_TIMESTAMP), ?, ?, ?)
`

// Counts are recomputed on demand; name is the secondary sort key so
// equal counts come back in a stable order.
const leaderboardSQL = `
SELECT animal_name, COUNT(*) AS n
FROM ratings
WHERE rating = ?
GROUP BY animal_name
ORDER BY n DESC, animal_name ASC
LIMIT ?
`
