package storages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reusee/chrono/chronovm"
	_ "modernc.org/sqlite"
)

const schema = `
create table if not exists solutions (
	id text primary key,
	program text not null,
	b text not null,
	c text not null,
	target text not null,
	a text not null,
	created_at integer not null
);
create unique index if not exists solutions_key on solutions (program, b, c, target);
`

// Key identifies a reconstruction problem. Register A is not part of it.
type Key struct {
	Program chronovm.Program
	B       *big.Int
	C       *big.Int
	Target  []int
}

func (k Key) columns() (program, b, c, target string) {
	program = k.Program.String()
	b = intText(k.B)
	c = intText(k.C)
	target = joinInts(k.Target)
	return
}

type Solution struct {
	Key
	A *big.Int
}

type Store struct {
	db *sql.DB
}

func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite allows one writer
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{
		db: db,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) WithTx(ctx context.Context, fn func(Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	wrapped := &sqlTx{
		tx: tx,
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
		if err != nil {
			err = errors.Join(err, ignoreDone(tx.Rollback()))
			return
		}
		err = tx.Commit()
	}()
	return fn(wrapped)
}

func ignoreDone(err error) error {
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

func (s *Store) SaveSolution(ctx context.Context, solution Solution) error {
	if solution.A == nil {
		return fmt.Errorf("save solution: nil A")
	}
	program, b, c, target := solution.columns()
	return s.WithTx(ctx, func(tx Tx) error {
		_, err := tx.Exec(ctx, `
			insert into solutions (id, program, b, c, target, a, created_at)
			values (?, ?, ?, ?, ?, ?, ?)
			on conflict (program, b, c, target) do update set a = excluded.a
			`,
			uuid.NewString(),
			program, b, c, target,
			solution.A.String(),
			time.Now().Unix(),
		)
		return err
	})
}

func (s *Store) LookupSolution(ctx context.Context, key Key) (a *big.Int, ok bool, err error) {
	program, b, c, target := key.columns()
	err = s.WithTx(ctx, func(tx Tx) error {
		row, err := tx.QueryRow(ctx, `
			select a from solutions
			where program = ? and b = ? and c = ? and target = ?
			`,
			program, b, c, target,
		)
		if err != nil {
			return err
		}
		var text string
		if err := row.Scan(&text); errors.Is(err, sql.ErrNoRows) {
			return nil
		} else if err != nil {
			return err
		}
		value, valid := new(big.Int).SetString(text, 10)
		if !valid {
			return fmt.Errorf("bad stored value: %q", text)
		}
		a = value
		ok = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return
}

// ListSolutions returns stored solutions of program, ordered by creation.
func (s *Store) ListSolutions(ctx context.Context, program chronovm.Program) (ret []Solution, err error) {
	err = s.WithTx(ctx, func(tx Tx) error {
		rows, err := tx.Query(ctx, `
			select b, c, target, a from solutions
			where program = ?
			order by created_at, id
			`,
			program.String(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var b, c, target, a string
			if err := rows.Scan(&b, &c, &target, &a); err != nil {
				return err
			}
			solution, err := parseSolution(program, b, c, target, a)
			if err != nil {
				return err
			}
			ret = append(ret, solution)
		}
		return rows.Err()
	})
	return
}

func parseSolution(program chronovm.Program, b, c, target, a string) (ret Solution, err error) {
	ret.Program = program
	for _, pair := range []struct {
		text string
		dst  **big.Int
	}{
		{b, &ret.B},
		{c, &ret.C},
		{a, &ret.A},
	} {
		value, ok := new(big.Int).SetString(pair.text, 10)
		if !ok {
			return ret, fmt.Errorf("bad stored value: %q", pair.text)
		}
		*pair.dst = value
	}
	if target != "" {
		for field := range strings.SplitSeq(target, ",") {
			digit, err := strconv.Atoi(field)
			if err != nil {
				return ret, fmt.Errorf("bad stored target: %w", err)
			}
			ret.Target = append(ret.Target, digit)
		}
	}
	return ret, nil
}

func (s *Store) CountSolutions(ctx context.Context) (n int, err error) {
	err = s.WithTx(ctx, func(tx Tx) error {
		row, err := tx.QueryRow(ctx, `select count(*) from solutions`)
		if err != nil {
			return err
		}
		return row.Scan(&n)
	})
	return
}

func intText(i *big.Int) string {
	if i == nil {
		return "0"
	}
	return i.String()
}

func joinInts(ints []int) string {
	var b strings.Builder
	for i, n := range ints {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
