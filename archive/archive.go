// Package archive persists fetched listing pages and replays them through the
// same Stream engine the remote listings use.
//
// Every archived element keeps its raw JSON and its absolute position in the
// remote listing. Appending the same window twice overwrites the previous
// payloads.
package archive

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/Alp4ka/s2pager"
	"github.com/Alp4ka/s2pager/parser"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

var ErrUnknownDriver = errors.New("unknown archive driver")

// Config selects the database of the archive.
type Config struct {
	// Driver - one of DriverSQLite, DriverMySQL, DriverPostgres.
	Driver string
	// DSN - driver specific data source name.
	DSN string
	// Debug - log every statement.
	Debug bool
}

// Record is one archived listing element.
type Record struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Listing   string    `gorm:"size:255;not null;uniqueIndex:idx_archive_listing_position,priority:1"`
	Position  int       `gorm:"not null;uniqueIndex:idx_archive_listing_position,priority:2"`
	Payload   string    `gorm:"type:text;not null"`
	FetchedAt time.Time `gorm:"not null"`
}

func (Record) TableName() string {
	return "archive_records"
}

// Store is a GORM backed archive.
type Store struct {
	db        *gorm.DB
	pageLimit int
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithPageLimit sets the page ceiling of replay streams.
func WithPageLimit(limit int) Option {
	return func(s *Store) {
		s.pageLimit = limit
	}
}

// New wraps an opened database.
func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		db:        db,
		pageLimit: s2pager.DefaultPageLimit,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open connects to the database described by cfg.
func Open(cfg Config, opts ...Option) (*Store, error) {
	dialector, err := dialectorOf(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("cannot open %s archive: %w", cfg.Driver, err)
	}

	return New(db, opts...), nil
}

func dialectorOf(cfg Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	case DriverMySQL:
		return mysql.Open(cfg.DSN), nil
	case DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnknownDriver, cfg.Driver)
	}
}

// DB returns the underlying database.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// PageLimit returns the page ceiling of replay streams.
func (s *Store) PageLimit() int {
	return s.pageLimit
}

// Migrate creates or updates the archive schema.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("cannot migrate archive: %w", err)
	}

	return nil
}

// Append stores the elements of one page. window is the part of the listing
// the page was taken from; its start is the position of the first element.
func (s *Store) Append(ctx context.Context, listing string, nodes []parser.Parser, window s2pager.Cursor) error {
	if len(nodes) == 0 {
		return nil
	}

	fetchedAt := s.now().UTC()
	records := make([]Record, 0, len(nodes))
	for i, node := range nodes {
		records = append(records, Record{
			Listing:   listing,
			Position:  window.Start() + i,
			Payload:   node.Raw(),
			FetchedAt: fetchedAt,
		})
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "listing"}, {Name: "position"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "fetched_at"}),
		}).
		Create(&records).Error
	if err != nil {
		return fmt.Errorf("cannot archive page of '%s' at offset %d: %w", listing, window.Start(), err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("listing", listing).
		Int("offset", window.Start()).
		Int("count", len(records)).
		Msg("page archived")

	return nil
}

// Count returns the number of archived elements of the listing.
func (s *Store) Count(ctx context.Context, listing string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Record{}).Where("listing = ?", listing).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("cannot count archived elements of '%s': %w", listing, err)
	}

	return count, nil
}

// Listings returns the names of every archived listing.
func (s *Store) Listings(ctx context.Context) ([]string, error) {
	var listings []string
	err := s.db.WithContext(ctx).Model(&Record{}).Distinct("listing").Order("listing ASC").Pluck("listing", &listings).Error
	if err != nil {
		return nil, fmt.Errorf("cannot list archived listings: %w", err)
	}

	return listings, nil
}

// Fetcher returns a page fetcher over the archived listing. Without orderings
// the listing is replayed in the order it was served.
func (s *Store) Fetcher(listing string, orderings ...OrderBy) s2pager.Fetcher[parser.Parser] {
	sort := Orderings(orderings)
	if len(sort) == 0 {
		sort = DefaultOrderings
	}
	if !sort.Has("position") {
		sort = append(slices.Clone(sort), OrderBy{Column: "position", Direction: DirectionASC})
	}

	return s2pager.FetcherFunc[parser.Parser](func(ctx context.Context, window s2pager.Cursor) ([]parser.Parser, error) {
		return s.fetch(ctx, listing, window, sort)
	})
}

// Stream replays the archived listing from c.
func (s *Store) Stream(listing string, c s2pager.Cursor, orderings ...OrderBy) *s2pager.Stream[parser.Parser] {
	return s2pager.NewStream(s.Fetcher(listing, orderings...), c, s2pager.WithExactPages(s.pageLimit))
}

func (s *Store) fetch(ctx context.Context, listing string, window s2pager.Cursor, sort Orderings) ([]parser.Parser, error) {
	if !window.CanProgress() {
		return nil, nil
	}

	pager := NewPager(window, s.pageLimit).WithSubstitutedSort(sort...)

	db, err := pager.Paginate(s.db.WithContext(ctx).Model(&Record{}).Where("listing = ?", listing))
	if err != nil {
		return nil, err
	}

	var records []Record
	if err = db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("cannot load archived page of '%s' at offset %d: %w", listing, window.Start(), err)
	}

	nodes := make([]parser.Parser, 0, len(records))
	for _, record := range records {
		node, err := parser.ParseString(record.Payload)
		if err != nil {
			return nil, fmt.Errorf("archived element %d of '%s': %w", record.Position, listing, err)
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// Sink drains stream into the archive page by page and returns the number of
// archived elements. Pages archived before an error stay archived.
func Sink(ctx context.Context, store *Store, listing string, stream *s2pager.Stream[parser.Parser]) (int, error) {
	var archived int
	err := stream.ForEach(ctx, func(page s2pager.Page[parser.Parser]) error {
		if err := store.Append(ctx, listing, page.Items, page.Window); err != nil {
			return err
		}

		archived += page.Len()
		return nil
	})

	return archived, err
}
