// Package trace persists simulation steps for offline inspection.
package trace

import (
	"database/sql"
	"errors"
	"fmt"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/bietkhonhungvandi212/pagesim/internal/sim"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
)

// SQLiteTracer is a hook that writes every simulation step to a SQLite database.
type SQLiteTracer struct {
	*sql.DB
	stepStatement *sql.Stmt
	runStatement  *sql.Stmt

	path      string
	stepsToDB []stepRow
	batchSize int
	err       error
}

type stepRow struct {
	runID string
	step  sim.Step
}

// NewSQLiteTracer creates a tracer writing to path. An empty path picks a
// unique file name.
func NewSQLiteTracer(path string) *SQLiteTracer {
	if path == "" {
		path = "pagesim_trace_" + xid.New().String() + ".sqlite3"
	}
	t := &SQLiteTracer{
		path:      path,
		batchSize: 10000,
	}

	atexit.Register(func() { _ = t.Flush() })

	return t
}

// Path returns the database file name.
func (t *SQLiteTracer) Path() string {
	return t.path
}

// Init opens the database and creates the tables.
func (t *SQLiteTracer) Init() error {
	db, err := sql.Open("sqlite3", t.path)
	if err != nil {
		return fmt.Errorf("[trace] open %s: %w", t.path, err)
	}
	t.DB = db

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id   TEXT PRIMARY KEY,
			policy   TEXT NOT NULL,
			capacity INTEGER NOT NULL,
			accesses INTEGER NOT NULL,
			faults   INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS steps (
			run_id   TEXT NOT NULL,
			step     INTEGER NOT NULL,
			page     INTEGER NOT NULL,
			fault    INTEGER NOT NULL,
			victim   INTEGER,
			frame    INTEGER NOT NULL,
			snapshot TEXT NOT NULL,
			PRIMARY KEY (run_id, step)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := t.Exec(stmt); err != nil {
			return fmt.Errorf("[trace] create table: %w", err)
		}
	}

	t.stepStatement, err = t.Prepare(
		`INSERT INTO steps (run_id, step, page, fault, victim, frame, snapshot) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("[trace] prepare steps: %w", err)
	}
	t.runStatement, err = t.Prepare(
		`INSERT INTO runs (run_id, policy, capacity, accesses, faults) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("[trace] prepare runs: %w", err)
	}
	return nil
}

// Func buffers access steps and records the run summary when it finishes.
func (t *SQLiteTracer) Func(ctx sim.HookCtx) {
	if t.DB == nil || t.err != nil {
		return
	}

	switch ctx.Pos {
	case sim.HookPosAccess:
		step, ok := ctx.Item.(sim.Step)
		if !ok {
			return
		}
		t.stepsToDB = append(t.stepsToDB, stepRow{runID: runIDOf(ctx.Domain), step: step})
		if len(t.stepsToDB) >= t.batchSize {
			t.err = t.Flush()
		}
	case sim.HookPosFinished:
		result, ok := ctx.Item.(*sim.Result)
		if !ok {
			return
		}
		if err := t.Flush(); err != nil {
			t.err = err
			return
		}
		_, err := t.runStatement.Exec(
			result.RunID,
			result.Policy.String(),
			result.Capacity,
			result.Accesses(),
			result.Faults(),
		)
		if err != nil {
			t.err = fmt.Errorf("[trace] insert run %s: %w", result.RunID, err)
		}
	}
}

// Flush writes all the buffered steps to the database.
func (t *SQLiteTracer) Flush() error {
	if len(t.stepsToDB) == 0 || t.DB == nil {
		return nil
	}

	tx, err := t.Begin()
	if err != nil {
		return fmt.Errorf("[trace] begin: %w", err)
	}
	stmt := tx.Stmt(t.stepStatement)
	for _, row := range t.stepsToDB {
		var victim any
		if row.step.Evicted {
			victim = int64(row.step.Victim)
		}
		_, err := stmt.Exec(
			row.runID,
			int64(row.step.Index),
			int64(row.step.PageID),
			row.step.Fault,
			victim,
			row.step.FrameIdx,
			page.Join(row.step.Snapshot),
		)
		if err != nil {
			return errors.Join(fmt.Errorf("[trace] insert step %d: %w", row.step.Index, err), tx.Rollback())
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("[trace] commit: %w", err)
	}

	t.stepsToDB = nil
	return nil
}

// Err returns the first write failure seen by Func.
func (t *SQLiteTracer) Err() error {
	return t.err
}

// Close flushes and closes the database.
func (t *SQLiteTracer) Close() error {
	if t.DB == nil {
		return nil
	}
	err := errors.Join(t.err, t.Flush())
	if e := t.DB.Close(); e != nil {
		err = errors.Join(err, fmt.Errorf("[trace] close: %w", e))
	}
	t.DB = nil
	return err
}

func runIDOf(domain sim.Hookable) string {
	if d, ok := domain.(interface{ ID() string }); ok {
		return d.ID()
	}
	return ""
}
