package lesson

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbooker/internal/config"
)

// fakePager serves scripted pages of the lesson table. The extractor's row
// script decodes into *[]pageRow and its next script into *bool, which is
// enough to tell the two apart.
type fakePager struct {
	pages   [][]pageRow
	current int

	// alwaysAdvance simulates a "next" control whose disabled state is
	// misreported and keeps the walk going forever.
	alwaysAdvance bool
}

func (f *fakePager) RunInPage(_ context.Context, _ string, out any) error {
	switch v := out.(type) {
	case *[]pageRow:
		if f.current < len(f.pages) {
			*v = f.pages[f.current]
		}
	case *bool:
		if f.alwaysAdvance {
			*v = true
			return nil
		}
		if f.current+1 < len(f.pages) {
			f.current++
			*v = true
		}
	}
	return nil
}

func newTestExtractor(pager PageScripter, maxPages int) *Extractor {
	e := NewExtractor(pager, ExtractorConfig{
		RowSelector:  "table.Grid tr[data-gxrow]",
		NextSelector: "[id$='GRIDPAGINGBAR_NEXT']",
		Columns:      config.ColumnConfig{Level: 0, Number: 1, Description: 2, Grade: 3, Status: 4, Date: 5, Location: 6},
		MaxPages:     maxPages,
		SettleDelay:  time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.sleep = func(time.Duration) {}
	return e
}

func makeRows(start, count int) []pageRow {
	rows := make([]pageRow, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, pageRow{
			RowID:       "0001",
			Level:       "A1",
			Number:      start + i,
			Description: "Clase",
			Status:      "Pendiente",
		})
	}
	return rows
}

func TestExtractor_ExtractAll(t *testing.T) {
	t.Run("walks every page and flattens rows in page order", func(t *testing.T) {
		pager := &fakePager{pages: [][]pageRow{
			makeRows(1, 10),
			makeRows(11, 10),
			makeRows(21, 4),
		}}
		extractor := newTestExtractor(pager, 26)

		rows, err := extractor.ExtractAll(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 24)
		assert.Equal(t, 1, rows[0].Number)
		assert.Equal(t, 24, rows[23].Number)
	})

	t.Run("classifies extracted rows", func(t *testing.T) {
		pager := &fakePager{pages: [][]pageRow{{
			{RowID: "0003", Level: "A1", Number: 7, Description: "Preparación Examen Final", Status: "Tomada"},
			{RowID: "0004", Level: "xx", Number: 8, Description: "", Status: "???"},
		}}}
		extractor := newTestExtractor(pager, 26)

		rows, err := extractor.ExtractAll(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, LevelA1, rows[0].Level)
		assert.Equal(t, KindExamPrep, rows[0].Kind)
		assert.Equal(t, StatusCompleted, rows[0].Status)
		assert.Equal(t, "0003", rows[0].RemoteRowID)

		// Unknown level and label stay visible instead of being coerced.
		assert.Equal(t, Level("xx"), rows[1].Level)
		assert.Equal(t, KindUnknown, rows[1].Kind)
		assert.Equal(t, StatusPending, rows[1].Status)
	})

	t.Run("empty first page aborts the sync", func(t *testing.T) {
		pager := &fakePager{pages: [][]pageRow{{}}}
		extractor := newTestExtractor(pager, 26)

		_, err := extractor.ExtractAll(context.Background())
		require.ErrorIs(t, err, ErrEmptyExtraction)
	})

	t.Run("page ceiling halts a runaway pagination walk", func(t *testing.T) {
		pager := &fakePager{
			pages:         [][]pageRow{makeRows(1, 5)},
			alwaysAdvance: true,
		}
		extractor := newTestExtractor(pager, 3)

		rows, err := extractor.ExtractAll(context.Background())
		require.NoError(t, err)
		// Three reads of the same stuck page, then a hard stop.
		assert.Len(t, rows, 15)
	})
}
