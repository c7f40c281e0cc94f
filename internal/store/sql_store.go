package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/ejections"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/players"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/teams"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/umpires"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// SQLStore persists audit output through database/sql. Upserts run in one transaction per call.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// NewSQLStore wraps an open database and creates the schema if needed.
func NewSQLStore(ctx context.Context, db *sql.DB, driver string) (*SQLStore, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}
	s := &SQLStore{db: db, driver: driver}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLStore) UpsertUmpires(ctx context.Context, in ...umpires.Umpire) error {
	return upsertAll(ctx, s, "umpire", umpireColumns, in, func(u umpires.Umpire) []any {
		return []any{u.ID, u.Name}
	})
}

func (s *SQLStore) UpsertTeams(ctx context.Context, in ...teams.Team) error {
	return upsertAll(ctx, s, "team", teamColumns, in, func(t teams.Team) []any {
		return []any{t.ID, t.Name, t.Abbreviation}
	})
}

func (s *SQLStore) UpsertPlayers(ctx context.Context, in ...players.Player) error {
	return upsertAll(ctx, s, "player", playerColumns, in, func(p players.Player) []any {
		return []any{p.ID, p.Name}
	})
}

func (s *SQLStore) UpsertScorecard(ctx context.Context, card games.Scorecard) error {
	return upsertAll(ctx, s, "game", gameColumns, []games.Scorecard{card}, scorecardArgs)
}

func (s *SQLStore) UpsertPitches(ctx context.Context, in ...pitches.Graded) error {
	return upsertAll(ctx, s, "pitch", pitchColumns, in, pitchArgs)
}

func (s *SQLStore) UpsertEjections(ctx context.Context, in ...ejections.Ejection) error {
	return upsertAll(ctx, s, "ejection", ejectionColumns, in, ejectionArgs)
}

func (s *SQLStore) CullPitches(ctx context.Context, gameID int, keep []string) (int, error) {
	query := "DELETE FROM pitch WHERE game_id = ?"
	args := []any{gameID}
	if len(keep) > 0 {
		query += " AND id NOT IN (" + placeholders(len(keep)) + ")"
		for _, id := range keep {
			args = append(args, id)
		}
	}
	res, err := s.db.ExecContext(ctx, s.rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to cull pitches for game %d: %w", gameID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *SQLStore) Scorecards(ctx context.Context, r Range) ([]games.Scorecard, error) {
	where, args := rangeClause(r, nil, nil)
	query := "SELECT " + strings.Join(gameColumns, ", ") + " FROM game" + where + " ORDER BY game_date, id"
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scorecards: %w", err)
	}
	defer rows.Close()

	out := make([]games.Scorecard, 0)
	for rows.Next() {
		var c games.Scorecard
		if err := rows.Scan(scorecardDest(&c)...); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLStore) Scorecard(ctx context.Context, gameID int) (games.Scorecard, error) {
	query := "SELECT " + strings.Join(gameColumns, ", ") + " FROM game WHERE id = ?"
	var c games.Scorecard
	err := s.db.QueryRowContext(ctx, s.rebind(query), gameID).Scan(scorecardDest(&c)...)
	if errors.Is(err, sql.ErrNoRows) {
		return games.Scorecard{}, ErrNotFound
	}
	if err != nil {
		return games.Scorecard{}, fmt.Errorf("failed to query scorecard %d: %w", gameID, err)
	}
	return c, nil
}

func (s *SQLStore) Pitches(ctx context.Context, f PitchFilter) ([]pitches.Graded, error) {
	var conds []string
	var args []any
	if f.GameID != 0 {
		conds = append(conds, "game_id = ?")
		args = append(args, f.GameID)
	}
	if f.IncorrectOnly {
		conds = append(conds, "correct_call = ?")
		args = append(args, false)
	}
	if f.BlownStrikeouts {
		conds = append(conds, "blown_strikeout = ?")
		args = append(args, true)
	}
	if f.BlownWalks {
		conds = append(conds, "blown_walk = ?")
		args = append(args, true)
	}
	where, args := rangeClause(f.Range, conds, args)

	query := "SELECT " + strings.Join(pitchColumns, ", ") + " FROM pitch" + where +
		" ORDER BY game_id, datetime_start, id"
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pitches: %w", err)
	}
	defer rows.Close()

	out := make([]pitches.Graded, 0)
	for rows.Next() {
		var p pitches.Graded
		if err := rows.Scan(pitchDest(&p)...); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLStore) Ejections(ctx context.Context, r Range) ([]ejections.Ejection, error) {
	where, args := rangeClause(r, nil, nil)
	query := "SELECT " + strings.Join(ejectionColumns, ", ") + " FROM ejection" + where + " ORDER BY game_date, id"
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ejections: %w", err)
	}
	defer rows.Close()

	out := make([]ejections.Ejection, 0)
	for rows.Next() {
		var e ejections.Ejection
		if err := rows.Scan(ejectionDest(&e)...); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLStore) Players(ctx context.Context) ([]players.Player, error) {
	query := "SELECT " + strings.Join(playerColumns, ", ") + " FROM player ORDER BY id"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	out := make([]players.Player, 0)
	for rows.Next() {
		var p players.Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func upsertAll[T any](ctx context.Context, s *SQLStore, table string, cols []string, rows []T, args func(T) []any) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, s.rebind(upsertSQL(table, cols)))
	if err != nil {
		return fmt.Errorf("failed to prepare %s upsert: %w", table, err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, args(row)...); err != nil {
			return fmt.Errorf("failed to upsert %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// upsertSQL builds an insert that overwrites every non-key column on id conflict.
func upsertSQL(table string, cols []string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(placeholders(len(cols)))
	b.WriteString(") ON CONFLICT (id) DO UPDATE SET ")
	first := true
	for _, c := range cols {
		if c == "id" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(c)
		b.WriteString(" = excluded.")
		b.WriteString(c)
	}
	return b.String()
}

func rangeClause(r Range, conds []string, args []any) (string, []any) {
	if r.From != "" {
		conds = append(conds, "game_date >= ?")
		args = append(args, r.From)
	}
	if r.To != "" {
		conds = append(conds, "game_date <= ?")
		args = append(args, r.To)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *SQLStore) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
