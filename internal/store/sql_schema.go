package store

var schema = []string{
	`CREATE TABLE IF NOT EXISTS umpire (
		id   BIGINT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS team (
		id           BIGINT PRIMARY KEY,
		name         TEXT NOT NULL,
		abbreviation TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS player (
		id   BIGINT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS game (
		id                 BIGINT PRIMARY KEY,
		game_date          TEXT NOT NULL,
		game_type          TEXT NOT NULL,
		home_team          TEXT NOT NULL,
		away_team          TEXT NOT NULL,
		home_team_id       BIGINT NOT NULL,
		away_team_id       BIGINT NOT NULL,
		umpire_id          BIGINT NOT NULL,
		umpire_name        TEXT NOT NULL,
		correct_calls      INTEGER,
		incorrect_calls    INTEGER,
		total_calls        INTEGER,
		calls_benefit_home INTEGER,
		calls_benefit_away INTEGER,
		correct_call_rate  DOUBLE PRECISION
	)`,
	`CREATE INDEX IF NOT EXISTS idx_game_date ON game(game_date)`,
	`CREATE TABLE IF NOT EXISTS pitch (
		id                   TEXT PRIMARY KEY,
		game_id              BIGINT NOT NULL,
		game_date            TEXT NOT NULL,
		play_description     TEXT NOT NULL,
		inning               INTEGER NOT NULL,
		inning_half          TEXT NOT NULL,
		outs                 INTEGER NOT NULL,
		bat_side             TEXT NOT NULL,
		batter_id            BIGINT NOT NULL,
		pitcher_id           BIGINT NOT NULL,
		catcher_id           BIGINT,
		balls                INTEGER NOT NULL,
		strikes              INTEGER NOT NULL,
		code                 TEXT NOT NULL,
		px                   DOUBLE PRECISION,
		pz                   DOUBLE PRECISION,
		sz_top               DOUBLE PRECISION NOT NULL,
		sz_bottom            DOUBLE PRECISION NOT NULL,
		datetime_start       BIGINT,
		datetime_end         BIGINT,
		correct_call         BOOLEAN NOT NULL,
		x_miss               DOUBLE PRECISION,
		y_miss               DOUBLE PRECISION,
		total_miss           DOUBLE PRECISION,
		total_miss_in        DOUBLE PRECISION,
		home_away_benefit    TEXT NOT NULL,
		player_type_benefit  TEXT NOT NULL,
		blown_walk           BOOLEAN NOT NULL,
		blown_strikeout      BOOLEAN NOT NULL,
		possible_bad_data    BOOLEAN NOT NULL,
		umpire_id            BIGINT NOT NULL,
		umpire_name          TEXT NOT NULL,
		home_team            TEXT NOT NULL,
		away_team            TEXT NOT NULL,
		home_team_id         BIGINT NOT NULL,
		away_team_id         BIGINT NOT NULL,
		team_benefit         TEXT,
		team_benefit_id      BIGINT,
		team_hurt            TEXT,
		team_hurt_id         BIGINT,
		home_media_id        TEXT,
		away_media_id        TEXT,
		timestamp_start_home TEXT,
		timestamp_start_away TEXT,
		start_seconds_home   INTEGER,
		start_seconds_away   INTEGER,
		timestamp_end_home   TEXT,
		timestamp_end_away   TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pitch_game_id ON pitch(game_id)`,
	`CREATE INDEX IF NOT EXISTS idx_pitch_game_date ON pitch(game_date)`,
	`CREATE TABLE IF NOT EXISTS ejection (
		id                   TEXT PRIMARY KEY,
		game_id              BIGINT NOT NULL,
		game_date            TEXT NOT NULL,
		description          TEXT NOT NULL,
		player_id            BIGINT NOT NULL,
		umpire_id            BIGINT NOT NULL,
		umpire_name          TEXT NOT NULL,
		ejecting_umpire_id   BIGINT NOT NULL,
		home_team            TEXT NOT NULL,
		away_team            TEXT NOT NULL,
		home_team_id         BIGINT NOT NULL,
		away_team_id         BIGINT NOT NULL,
		timestamp_start_home TEXT,
		timestamp_start_away TEXT,
		start_seconds_home   INTEGER,
		start_seconds_away   INTEGER,
		home_media_id        TEXT,
		away_media_id        TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ejection_game_date ON ejection(game_date)`,
}

var (
	umpireColumns = []string{"id", "name"}
	teamColumns   = []string{"id", "name", "abbreviation"}
	playerColumns = []string{"id", "name"}
	gameColumns   = []string{
		"id", "game_date", "game_type", "home_team", "away_team", "home_team_id", "away_team_id",
		"umpire_id", "umpire_name", "correct_calls", "incorrect_calls", "total_calls",
		"calls_benefit_home", "calls_benefit_away", "correct_call_rate",
	}
	pitchColumns = []string{
		"id", "game_id", "game_date", "play_description", "inning", "inning_half", "outs", "bat_side",
		"batter_id", "pitcher_id", "catcher_id", "balls", "strikes", "code", "px", "pz", "sz_top", "sz_bottom",
		"datetime_start", "datetime_end", "correct_call", "x_miss", "y_miss", "total_miss", "total_miss_in",
		"home_away_benefit", "player_type_benefit", "blown_walk", "blown_strikeout", "possible_bad_data",
		"umpire_id", "umpire_name", "home_team", "away_team", "home_team_id", "away_team_id",
		"team_benefit", "team_benefit_id", "team_hurt", "team_hurt_id", "home_media_id", "away_media_id",
		"timestamp_start_home", "timestamp_start_away", "start_seconds_home", "start_seconds_away",
		"timestamp_end_home", "timestamp_end_away",
	}
	ejectionColumns = []string{
		"id", "game_id", "game_date", "description", "player_id", "umpire_id", "umpire_name",
		"ejecting_umpire_id", "home_team", "away_team", "home_team_id", "away_team_id",
		"timestamp_start_home", "timestamp_start_away", "start_seconds_home", "start_seconds_away",
		"home_media_id", "away_media_id",
	}
)
