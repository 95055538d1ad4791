package sqlstorage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go_todo_api/config"
	"go_todo_api/model"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Storage keeps the tasks table. Every method runs in its own serializable
// transaction.
type Storage struct {
	db *sqlx.DB
}

func New(cfg *config.Config) (*Storage, error) {
	var createTableQuery string

	switch cfg.DBDriver {
	case config.DriverSQLite:
		createTableQuery = createTableSQLite

		if err := ensureDir(cfg.DBFile); err != nil {
			return nil, fmt.Errorf("ensureDir: %w", err)
		}
	case config.DriverPgx, config.DriverPostgres:
		createTableQuery = createTablePostgres
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}

	db, err := sqlx.Connect(cfg.DBDriver, cfg.DBFile)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Connect: %w", err)
	}

	// sqlite allows a single writer; one connection keeps transactions from
	// failing with SQLITE_BUSY.
	if cfg.DBDriver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	s := &Storage{db: db}

	err = s.tryCreateTable(createTableQuery)
	if err != nil {
		db.Close()

		return nil, fmt.Errorf("tryCreateTable: %w", err)
	}

	return s, nil
}

func ensureDir(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	dir := filepath.Dir(dbFile)
	if dir == "." {
		return nil
	}

	return os.MkdirAll(dir, 0755)
}

func (s *Storage) tryCreateTable(query string) error {
	_, err := s.db.Exec(query)
	if err != nil {
		return fmt.Errorf("table create: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (s *Storage) InsertTask(ctx context.Context, title string) (model.Task, error) {
	task := model.Task{Title: title}

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, tx.Rebind(insertTaskQuery), title).Scan(&task.ID)
		if err != nil {
			return fmt.Errorf("insertTask failed: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.Task{}, err
	}

	return task, nil
}

func (s *Storage) GetTasks(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.SelectContext(ctx, &tasks, getTasksQuery)
		if err != nil {
			return fmt.Errorf("selectTasks failed: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetTaskById returns an error wrapping sql.ErrNoRows when no task has the id.
func (s *Storage) GetTaskById(ctx context.Context, id int64) (model.Task, error) {
	var task model.Task

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &task, tx.Rebind(getTaskByIdQuery), id)
		if err != nil {
			return fmt.Errorf("selectTask failed: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.Task{}, err
	}

	return task, nil
}

// UpdateTask changes title and completed of the task with task.ID. A missing
// id is not an error.
func (s *Storage) UpdateTask(ctx context.Context, task model.Task) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, tx.Rebind(updateTaskQuery), task.Title, task.Completed, task.ID)
		if err != nil {
			return fmt.Errorf("updateTask failed: %w", err)
		}

		return nil
	})
}

// DeleteTask is a no-op for a missing id.
func (s *Storage) DeleteTask(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, tx.Rebind(deleteTaskQuery), id)
		if err != nil {
			return fmt.Errorf("deleteTask failed: %w", err)
		}

		return nil
	})
}
