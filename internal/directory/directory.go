// Package directory is an in-memory member list that answers after a
// simulated network delay. It backs the table view.
package directory

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"fitconnect/internal/logger"
	"fitconnect/internal/table"
)

var ErrMemberNotFound = errors.New("member not found")

// Relative latencies of each call against a full fetch.
const (
	fetchWeight  = 15
	pageWeight   = 10
	searchWeight = 8
	writeWeight  = 5
	weightScale  = 15
)

type Page struct {
	Data  []Member `json:"data"`
	Total int      `json:"total"`
}

type AddMemberRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Role       string `json:"role" binding:"required"`
	Status     Status `json:"status" binding:"required,oneof=Active Inactive Pending"`
	Age        int    `json:"age" binding:"min=0,max=150"`
	Salary     int    `json:"salary" binding:"min=0"`
	Department string `json:"department" binding:"required"`
}

type Directory struct {
	mu      sync.RWMutex
	members []Member
	delay   time.Duration
}

// New seeds size generated members. delay is the latency of a full fetch;
// other calls wait proportionally less.
func New(size int, delay time.Duration) *Directory {
	return &Directory{members: Generate(size), delay: delay}
}

func (d *Directory) wait(ctx context.Context, weight int) error {
	pause := d.delay * time.Duration(weight) / weightScale
	if pause <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(pause)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (d *Directory) snapshot() []Member {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.members)
}

func (d *Directory) Fetch(ctx context.Context) ([]Member, error) {
	if err := d.wait(ctx, fetchWeight); err != nil {
		return nil, err
	}
	return d.snapshot(), nil
}

// FetchPage slices the unsorted list. Pages are 1-indexed.
func (d *Directory) FetchPage(ctx context.Context, page, pageSize int) (*Page, error) {
	if err := d.wait(ctx, pageWeight); err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, table.ErrInvalidPage
	}
	if pageSize < 1 {
		return nil, table.ErrInvalidPageSize
	}

	members := d.snapshot()
	start := min((page-1)*pageSize, len(members))
	end := min(start+pageSize, len(members))

	return &Page{Data: members[start:end], Total: len(members)}, nil
}

// Search matches query against every field, case-insensitively.
func (d *Directory) Search(ctx context.Context, query string) ([]Member, error) {
	if err := d.wait(ctx, searchWeight); err != nil {
		return nil, err
	}
	return table.Filter(d.snapshot(), strings.TrimSpace(query)), nil
}

// Add appends a member with the next free ID.
func (d *Directory) Add(ctx context.Context, req AddMemberRequest) (*Member, error) {
	if err := d.wait(ctx, writeWeight); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	next := 1
	for _, m := range d.members {
		if m.ID >= next {
			next = m.ID + 1
		}
	}

	m := Member{
		ID:         next,
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Role:       req.Role,
		Status:     req.Status,
		Age:        req.Age,
		Salary:     req.Salary,
		Department: req.Department,
	}
	d.members = append(d.members, m)

	logger.Debug("directory member added", "member_id", m.ID)
	return &m, nil
}

func (d *Directory) Delete(ctx context.Context, id int) error {
	if err := d.wait(ctx, writeWeight); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i := slices.IndexFunc(d.members, func(m Member) bool { return m.ID == id })
	if i < 0 {
		return ErrMemberNotFound
	}
	d.members = slices.Delete(d.members, i, i+1)
	return nil
}

// Reset replaces the list with count freshly generated members.
func (d *Directory) Reset(count int) {
	d.mu.Lock()
	d.members = Generate(count)
	d.mu.Unlock()

	logger.Info("directory reset", "count", count)
}

func (d *Directory) Clear() {
	d.mu.Lock()
	d.members = []Member{}
	d.mu.Unlock()

	logger.Info("directory cleared")
}

// View fetches the list and runs the table pipeline over it.
func (d *Directory) View(ctx context.Context, state table.State) (*table.View[Member], error) {
	members, err := d.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	v := table.Derive(members, state)
	return &v, nil
}
