package archive

import (
	"fmt"
	"slices"

	"gorm.io/gorm"

	"github.com/Alp4ka/s2pager"
)

// Pager translates a stream window into LIMIT/OFFSET over archived records.
type Pager struct {
	limit  int
	offset int
	sort   Orderings
}

// NewPager returns a pager for window. The limit follows the same rules as
// the remote API: min(window size, maxLimit), maxLimit for unbounded windows.
func NewPager(window s2pager.Cursor, maxLimit int) *Pager {
	return new(Pager).
		WithLimit(s2pager.PageLimit(window, maxLimit)).
		WithOffset(window.Start())
}

// WithUnlimited allows returning all records without a limit.
func (p *Pager) WithUnlimited() *Pager {
	if p == nil {
		p = new(Pager)
	}

	p.limit = s2pager.NoPageLimit

	return p
}

// WithLimit sets the maximum number of returned records.
func (p *Pager) WithLimit(limit int) *Pager {
	if p == nil {
		p = new(Pager)
	}

	if limit == s2pager.NoPageLimit {
		return p.WithUnlimited()
	}
	p.limit = max(limit, 0)

	return p
}

// WithOffset sets the number of skipped records.
func (p *Pager) WithOffset(offset int) *Pager {
	if p == nil {
		p = new(Pager)
	}

	p.offset = max(offset, 0)

	return p
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (p *Pager) WithSubstitutedSort(orderBy ...OrderBy) *Pager {
	if p == nil {
		p = new(Pager)
	}

	p.sort = nil

	return p.WithSort(orderBy...)
}

// WithSort appends sort orderings. A column ordered on again moves to the end
// with the new direction.
func (p *Pager) WithSort(orderBy ...OrderBy) *Pager {
	if p == nil {
		p = new(Pager)
	}

	for _, o := range orderBy {
		idx := slices.IndexFunc(p.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})
		if idx != -1 {
			p.sort = slices.Delete(p.sort, idx, idx+1)
		}

		p.sort = append(p.sort, o)
	}

	return p
}

// Paginate applies ordering, offset and limit to the dataset.
func (p *Pager) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = p.sort.Apply(db)
	db = db.Offset(p.offset)
	if p.limit != s2pager.NoPageLimit {
		db = db.Limit(p.limit)
	}

	return db, nil
}

// GetSort returns orderings that will be applied to the dataset.
func (p *Pager) GetSort() Orderings {
	if p == nil {
		return nil
	}

	return p.sort
}

// GetLimit returns the limit, s2pager.NoPageLimit when unlimited.
func (p *Pager) GetLimit() int {
	if p == nil {
		return 0
	}

	return p.limit
}

// GetOffset returns the number of skipped records.
func (p *Pager) GetOffset() int {
	if p == nil {
		return 0
	}

	return p.offset
}

// IsUnlimited returns true if the pager returns every remaining record.
func (p *Pager) IsUnlimited() bool {
	return p != nil && p.limit == s2pager.NoPageLimit
}

func (p *Pager) validate() error {
	if p == nil {
		return fmt.Errorf("pager is nil")
	}

	return p.sort.validate()
}
