package numerator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

type mockQuerier struct {
	mu           sync.Mutex
	currentValue int64
	failWith     error
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return &mockRow{err: m.failWith}
	}

	m.currentValue++
	return &mockRow{val: m.currentValue}
}

func TestGetNextNumber(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("PO")
	period := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	num, err := svc.GetNextNumber(ctx, cfg, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "PO-2026-00001" {
		t.Errorf("expected PO-2026-00001, got %s", num)
	}

	num, err = svc.GetNextNumber(ctx, cfg, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "PO-2026-00002" {
		t.Errorf("expected PO-2026-00002, got %s", num)
	}
}

func TestGetNextNumber_QuerierError(t *testing.T) {
	q := &mockQuerier{failWith: fmt.Errorf("connection refused")}
	svc := New(q)

	_, err := svc.GetNextNumber(context.Background(), DefaultConfig("SO"), time.Now())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		formatted string
		want      int64
	}{
		{"PO-2026-00042", 42},
		{"SO-2026-00001", 1},
		{"garbage", -1},
	}

	for _, tt := range tests {
		if got := ParseNumber(tt.formatted); got != tt.want {
			t.Errorf("ParseNumber(%q) = %d, want %d", tt.formatted, got, tt.want)
		}
	}
}
