package store

// migration pairs a tracked version name with its SQL.
type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "001_create_games.sql",
		sql: `
			CREATE TABLE IF NOT EXISTS games (
				game_id SERIAL PRIMARY KEY,
				game_date DATE NOT NULL,
				home_team VARCHAR(50) NOT NULL,
				away_team VARCHAR(50) NOT NULL,
				home_score INT,
				away_score INT,
				arena VARCHAR(100),
				external_id VARCHAR(20),
				seat_section VARCHAR(20),
				seat_row VARCHAR(10),
				seat_number VARCHAR(10),
				attended_with VARCHAR(200),
				notes TEXT,
				attendance INT,
				duration VARCHAR(20),
				officials VARCHAR(200),
				playoff_info VARCHAR(50),
				overtime_info VARCHAR(10),
				season VARCHAR(10),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (game_date, home_team, away_team)
			)
		`,
	},
	{
		version: "002_create_quarter_scores.sql",
		sql: `
			CREATE TABLE IF NOT EXISTS quarter_scores (
				id SERIAL PRIMARY KEY,
				game_id INT NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
				team VARCHAR(5) NOT NULL,
				period VARCHAR(5) NOT NULL,
				points INT,
				UNIQUE (game_id, team, period)
			)
		`,
	},
	{
		version: "003_create_team_lines.sql",
		sql: `
			CREATE TABLE IF NOT EXISTS team_lines (
				id SERIAL PRIMARY KEY,
				game_id INT NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
				team VARCHAR(5) NOT NULL,
				efg_pct VARCHAR(10),
				tov_pct VARCHAR(10),
				orb_pct VARCHAR(10),
				ft_rate VARCHAR(10),
				totals JSONB,
				UNIQUE (game_id, team)
			)
		`,
	},
	{
		version: "004_create_player_lines.sql",
		sql: `
			CREATE TABLE IF NOT EXISTS player_lines (
				id SERIAL PRIMARY KEY,
				game_id INT NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
				player VARCHAR(100) NOT NULL,
				team VARCHAR(5) NOT NULL,
				role VARCHAR(10),
				stats JSONB,
				UNIQUE (game_id, player, team)
			)
		`,
	},
	{
		version: "005_create_inactive_players.sql",
		sql: `
			CREATE TABLE IF NOT EXISTS inactive_players (
				id SERIAL PRIMARY KEY,
				game_id INT NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
				player VARCHAR(100) NOT NULL,
				team VARCHAR(5) NOT NULL,
				reason VARCHAR(20) NOT NULL DEFAULT 'Inactive',
				UNIQUE (game_id, player, team)
			)
		`,
	},
	{
		version: "006_create_photos.sql",
		sql: `
			CREATE TABLE IF NOT EXISTS photos (
				id SERIAL PRIMARY KEY,
				game_id INT NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
				file_path VARCHAR(500) NOT NULL,
				caption TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		version: "007_create_game_indexes.sql",
		sql: `
			CREATE INDEX IF NOT EXISTS idx_games_game_date ON games (game_date);
			CREATE INDEX IF NOT EXISTS idx_player_lines_game ON player_lines (game_id);
			CREATE INDEX IF NOT EXISTS idx_photos_game ON photos (game_id)
		`,
	},
}
