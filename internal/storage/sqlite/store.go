// Package sqlite persists the address book in a single SQLite database
// using the pure-Go modernc driver. The schema is managed by goose.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/event"
	"github.com/faizmokh/amigos/internal/logging"
	"github.com/faizmokh/amigos/internal/person"
	"github.com/faizmokh/amigos/internal/storage/sqlite/migrations"
)

// Store keeps the address book in a SQLite database.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

// Open connects to the database file at path and migrates it to the latest schema.
func Open(ctx context.Context, path string, log logging.Logger) (*Store, error) {
	if log == nil {
		log = logging.Discard()
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Store{db: db, log: log.With("storage", "sqlite")}, nil
}

// RunMigrations applies every embedded migration that has not run yet.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads every friend and event in stored order.
func (s *Store) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	persons, err := s.loadPersons(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.loadEvents(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Debug(ctx, "loaded address book", "persons", len(persons), "events", len(events))
	return addressbook.New(persons, events), nil
}

// Save replaces the stored contents with book in a single transaction.
func (s *Store) Save(ctx context.Context, book *addressbook.AddressBook) error {
	persons := book.Persons()
	events := book.Events()

	err := withTx(ctx, s.db, func(ctx context.Context, tx dbtx) error {
		for _, table := range []string{"event_friends", "events", "person_logs", "person_tags", "persons"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		for i, p := range persons {
			if err := insertPerson(ctx, tx, i, p); err != nil {
				return err
			}
		}
		for i, e := range events {
			if err := insertEvent(ctx, tx, i, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save address book: %w", err)
	}

	s.log.Debug(ctx, "saved address book", "persons", len(persons), "events", len(events))
	return nil
}

func insertPerson(ctx context.Context, tx dbtx, position int, p person.Person) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO persons (position, name, phone, email, address, description) VALUES (?, ?, ?, ?, ?, ?)`,
		position, p.Name, p.Phone, p.Email, p.Address, p.Description)
	if err != nil {
		return fmt.Errorf("insert friend %q: %w", p.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, tag := range p.Tags {
		if _, err := tx.ExecContext(ctx, `INSERT INTO person_tags (person_id, tag) VALUES (?, ?)`, id, tag); err != nil {
			return fmt.Errorf("insert tag %q: %w", tag, err)
		}
	}
	for i, l := range p.Logs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO person_logs (person_id, position, title, description) VALUES (?, ?, ?, ?)`,
			id, i, l.Title, l.Description); err != nil {
			return fmt.Errorf("insert log %q: %w", l.Title, err)
		}
	}
	return nil
}

func insertEvent(ctx context.Context, tx dbtx, position int, e event.Event) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO events (id, position, name, at_unix, done) VALUES (?, ?, ?, ?, ?)`,
		e.ID.String(), position, e.Name, e.At.Time().Unix(), e.Done); err != nil {
		return fmt.Errorf("insert event %q: %w", e.Name, err)
	}
	for i, name := range e.Friends {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO event_friends (event_id, position, name) VALUES (?, ?, ?)`,
			e.ID.String(), i, name); err != nil {
			return fmt.Errorf("insert event friend %q: %w", name, err)
		}
	}
	return nil
}

func (s *Store) loadPersons(ctx context.Context) ([]person.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, phone, email, address, description FROM persons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query friends: %w", err)
	}
	defer rows.Close()

	var (
		ids     []int64
		persons []person.Person
	)
	for rows.Next() {
		var (
			id int64
			p  person.Person
		)
		if err := rows.Scan(&id, &p.Name, &p.Phone, &p.Email, &p.Address, &p.Description); err != nil {
			return nil, err
		}
		ids = append(ids, id)
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tags, err := s.loadTags(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.loadLogs(ctx)
	if err != nil {
		return nil, err
	}

	for i, id := range ids {
		persons[i] = persons[i].WithTags(tags[id]).WithLogs(logs[id])
	}
	return persons, nil
}

func (s *Store) loadTags(ctx context.Context) (map[int64][]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT person_id, tag FROM person_tags`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]string)
	for rows.Next() {
		var (
			id  int64
			tag string
		)
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, err
		}
		out[id] = append(out[id], tag)
	}
	return out, rows.Err()
}

func (s *Store) loadLogs(ctx context.Context) (map[int64][]person.Log, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT person_id, title, description FROM person_logs ORDER BY person_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]person.Log)
	for rows.Next() {
		var (
			id int64
			l  person.Log
		)
		if err := rows.Scan(&id, &l.Title, &l.Description); err != nil {
			return nil, err
		}
		out[id] = append(out[id], l)
	}
	return out, rows.Err()
}

func (s *Store) loadEvents(ctx context.Context) ([]event.Event, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, at_unix, done FROM events ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var (
			rawID string
			at    int64
			e     event.Event
		)
		if err := rows.Scan(&rawID, &e.Name, &at, &e.Done); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("event %q id: %w", e.Name, err)
		}
		e.ID = id
		e.At = event.FromTime(time.Unix(at, 0))
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	friends, err := s.loadEventFriends(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		events[i].Friends = friends[events[i].ID.String()]
	}
	return events, nil
}

func (s *Store) loadEventFriends(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT event_id, name FROM event_friends ORDER BY event_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query event friends: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = append(out[id], name)
	}
	return out, rows.Err()
}
