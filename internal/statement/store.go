package statement

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"
)

const schema = `
CREATE TABLE IF NOT EXISTS statements (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	rtn            TEXT NOT NULL,
	number         TEXT NOT NULL,
	accttype       TEXT NOT NULL,
	start_date     TEXT NOT NULL,
	end_date       TEXT NOT NULL,
	balance        TEXT NOT NULL,
	avail_balance  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	statement_id  INTEGER NOT NULL REFERENCES statements(id),
	posted        TEXT NOT NULL,
	fitid         TEXT NOT NULL,
	trntype       TEXT NOT NULL,
	checkno       INTEGER NOT NULL,
	amount        TEXT NOT NULL,
	name          TEXT NOT NULL,
	memo          TEXT NOT NULL,
	UNIQUE (statement_id, fitid)
);
`

const dateFormat = "2006-01-02"

// Store persists statements in a SQLite archive.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the statement archive at path, with
// foreign keys and WAL mode enabled.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path))
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the archive.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes a statement and its entries in one database transaction and
// returns the statement row id.
func (s *Store) Save(st Statement) (int64, error) {
	var id int64
	err := s.transact(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO statements (rtn, number, accttype, start_date, end_date, balance, avail_balance)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			st.RTN, st.Number, st.AcctType,
			st.Start.Format(dateFormat), st.End.Format(dateFormat),
			st.Balance.StringFixed(2), st.Available.StringFixed(2))
		if err != nil {
			return fmt.Errorf("inserting statement: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}

		for _, e := range st.Entries {
			_, err := tx.Exec(
				`INSERT INTO entries (statement_id, posted, fitid, trntype, checkno, amount, name, memo)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				id, e.Posted.Format(dateFormat), e.FitID, e.TrnType,
				e.CheckNo, e.Amount.StringFixed(2), e.Name, e.Memo)
			if err != nil {
				return fmt.Errorf("inserting entry %s: %w", e.FitID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Get loads a statement and its entries by row id.
func (s *Store) Get(id int64) (Statement, error) {
	row := s.db.QueryRow(
		`SELECT id, rtn, number, accttype, start_date, end_date, balance, avail_balance
		 FROM statements WHERE id = ?`, id)

	st, err := scanStatement(row)
	if err != nil {
		return Statement{}, fmt.Errorf("loading statement %d: %w", id, err)
	}

	rows, err := s.db.Query(
		`SELECT id, posted, fitid, trntype, checkno, amount, name, memo
		 FROM entries WHERE statement_id = ? ORDER BY fitid`, id)
	if err != nil {
		return Statement{}, fmt.Errorf("loading entries for statement %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e              Entry
			posted, amount string
		)
		if err := rows.Scan(&e.ID, &posted, &e.FitID, &e.TrnType, &e.CheckNo, &amount, &e.Name, &e.Memo); err != nil {
			return Statement{}, fmt.Errorf("scanning entry: %w", err)
		}
		if e.Posted, err = time.Parse(dateFormat, posted); err != nil {
			return Statement{}, fmt.Errorf("parsing posted date %q: %w", posted, err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return Statement{}, fmt.Errorf("parsing amount %q: %w", amount, err)
		}
		st.Entries = append(st.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return Statement{}, err
	}
	return st, nil
}

func scanStatement(row *sql.Row) (Statement, error) {
	var (
		st                             Statement
		start, end, balance, available string
	)
	if err := row.Scan(&st.ID, &st.RTN, &st.Number, &st.AcctType, &start, &end, &balance, &available); err != nil {
		return Statement{}, err
	}

	var err error
	if st.Start, err = time.Parse(dateFormat, start); err != nil {
		return Statement{}, fmt.Errorf("parsing start date %q: %w", start, err)
	}
	if st.End, err = time.Parse(dateFormat, end); err != nil {
		return Statement{}, fmt.Errorf("parsing end date %q: %w", end, err)
	}
	if st.Balance, err = decimal.NewFromString(balance); err != nil {
		return Statement{}, fmt.Errorf("parsing balance %q: %w", balance, err)
	}
	if st.Available, err = decimal.NewFromString(available); err != nil {
		return Statement{}, fmt.Errorf("parsing available balance %q: %w", available, err)
	}
	return st, nil
}

func (s *Store) transact(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%v (rollback failed: %w)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
