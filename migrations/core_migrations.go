package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_06_10_000000_create_core_tables",
			Up: func(db *gorm.DB) error {
				// Create players table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						skill_points INT NOT NULL DEFAULT 1000,
						skill_tier VARCHAR(20) NOT NULL DEFAULT 'average',
						matches_played INT NOT NULL DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_players_deleted_at ON players(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_players_skill_points ON players(skill_points);
				`).Error; err != nil {
					return err
				}

				// Create events table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS events (
						id BIGSERIAL PRIMARY KEY,
						organizer_id BIGINT NOT NULL,
						name VARCHAR(150) NOT NULL,
						location VARCHAR(150),
						event_date TIMESTAMP NULL,
						players_per_team INT NOT NULL,
						total_matches_planned INT DEFAULT 0,
						status VARCHAR(20) NOT NULL DEFAULT 'active',
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_events_deleted_at ON events(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_events_status ON events(status);
				`).Error; err != nil {
					return err
				}

				// Create teams table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id BIGSERIAL PRIMARY KEY,
						event_id BIGINT NOT NULL,
						name VARCHAR(100) NOT NULL,
						color VARCHAR(7),
						is_waiting_pool BOOLEAN NOT NULL DEFAULT FALSE,
						status VARCHAR(20) NOT NULL DEFAULT 'active',
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_teams_deleted_at ON teams(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_teams_event_id ON teams(event_id);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_event_waiting_pool
						ON teams(event_id) WHERE is_waiting_pool AND deleted_at IS NULL;
				`).Error; err != nil {
					return err
				}

				// Create enrollments table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS enrollments (
						id BIGSERIAL PRIMARY KEY,
						event_id BIGINT NOT NULL,
						player_id BIGINT NOT NULL,
						current_team_id BIGINT NULL,
						matches_played INT NOT NULL DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE,
						FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE,
						FOREIGN KEY (current_team_id) REFERENCES teams(id)
					);
					CREATE INDEX IF NOT EXISTS idx_enrollments_deleted_at ON enrollments(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_enrollments_current_team_id ON enrollments(current_team_id);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_enrollments_event_player
						ON enrollments(event_id, player_id);
				`).Error; err != nil {
					return err
				}

				// Create matches table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						event_id BIGINT NOT NULL,
						team_a_id BIGINT NOT NULL,
						team_b_id BIGINT NOT NULL,
						team_a_score INT NOT NULL DEFAULT 0,
						team_b_score INT NOT NULL DEFAULT 0,
						status VARCHAR(20) NOT NULL DEFAULT 'awaiting_start',
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE,
						FOREIGN KEY (team_a_id) REFERENCES teams(id),
						FOREIGN KEY (team_b_id) REFERENCES teams(id)
					);
					CREATE INDEX IF NOT EXISTS idx_matches_deleted_at ON matches(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_matches_event_id ON matches(event_id);
					CREATE INDEX IF NOT EXISTS idx_matches_status ON matches(status);
				`).Error; err != nil {
					return err
				}

				// Create performance_participations table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS performance_participations (
						id BIGSERIAL PRIMARY KEY,
						match_id BIGINT NOT NULL,
						player_id BIGINT NOT NULL,
						team_id BIGINT NOT NULL,
						goals INT NOT NULL DEFAULT 0,
						assists INT NOT NULL DEFAULT 0,
						saves INT NOT NULL DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE,
						FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE,
						FOREIGN KEY (team_id) REFERENCES teams(id)
					);
					CREATE INDEX IF NOT EXISTS idx_participations_deleted_at ON performance_participations(deleted_at);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_participations_match_player
						ON performance_participations(match_id, player_id);
				`).Error; err != nil {
					return err
				}

				// Create points_history table (append-only, no updated_at)
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS points_history (
						id BIGSERIAL PRIMARY KEY,
						player_id BIGINT NOT NULL,
						match_id BIGINT NULL,
						action VARCHAR(20) NOT NULL,
						points_before INT NOT NULL,
						points_after INT NOT NULL,
						delta INT NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE,
						FOREIGN KEY (match_id) REFERENCES matches(id)
					);
					CREATE INDEX IF NOT EXISTS idx_points_history_player_id ON points_history(player_id);
					CREATE INDEX IF NOT EXISTS idx_points_history_match_id ON points_history(match_id);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				// Drop tables in reverse order (because of foreign keys)
				for _, table := range []string{
					"points_history",
					"performance_participations",
					"matches",
					"enrollments",
					"teams",
					"events",
					"players",
				} {
					if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE").Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
