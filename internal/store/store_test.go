package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiredocs/constants"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "audit.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	entries := []Entry{
		{ID: "a", Kind: "resume", FilePath: "a.pdf", ProcessedAt: base, Status: constants.RunStatusParsedOK},
		{ID: "b", Kind: "payslip", FilePath: "b.pdf", ProcessedAt: base.Add(time.Minute), Status: constants.RunStatusFailed,
			Error: "OCR engine not available", RequiresOCR: true},
		{ID: "c", Kind: "resume", FilePath: "c.pdf", ProcessedAt: base.Add(2 * time.Minute), Status: constants.RunStatusParsedOK},
	}
	for _, e := range entries {
		require.NoError(t, s.Append(ctx, e))
	}

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].ID)
	assert.Equal(t, "b", recent[1].ID)
	assert.Equal(t, constants.RunStatusFailed, recent[1].Status)
	assert.True(t, recent[1].RequiresOCR)
	assert.Equal(t, "OCR engine not available", recent[1].Error)
}

func TestCountByKind(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, kind := range []string{"resume", "resume", "certificate"} {
		require.NoError(t, s.Append(ctx, Entry{
			ID: string(rune('a' + i)), Kind: kind, FilePath: "x.pdf",
			ProcessedAt: time.Now(), Status: constants.RunStatusParsedOK,
		}))
	}

	counts, err := s.CountByKind(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["resume"])
	assert.Equal(t, 1, counts["certificate"])
}

func TestAppend_DefaultsStatusToRunning(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, Entry{
		ID: "r", Kind: "resume", FilePath: "a.pdf", ProcessedAt: time.Now(),
	}))
	recent, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, constants.RunStatusRunning, recent[0].Status)
}

func TestAppend_DuplicateIDRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	e := Entry{ID: "dup", Kind: "resume", FilePath: "a.pdf", ProcessedAt: time.Now(), Status: constants.RunStatusParsedOK}
	require.NoError(t, s.Append(ctx, e))
	assert.Error(t, s.Append(ctx, e))
}
