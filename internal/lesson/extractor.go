package lesson

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"smartbooker/internal/config"
)

// ErrEmptyExtraction means the first page of the lesson table produced zero
// rows. That usually means the remote markup changed underneath us, so the
// sync pass must abort instead of silently emptying the ledger.
var ErrEmptyExtraction = errors.New("extraction returned zero rows on the first page")

// PageScripter is the single capability the extractor needs from a session:
// evaluate a script inside the platform's page and decode the result.
type PageScripter interface {
	RunInPage(ctx context.Context, script string, out any) error
}

// RawRow is one normalized row of the remote lesson table.
type RawRow struct {
	Level       Level
	Number      int
	Kind        Kind
	Description string
	Status      Status
	StatusLabel string
	Grade       string
	Date        string
	Location    string
	RemoteRowID string
}

// ExtractorConfig bounds the pagination walk and locates the table in the
// remote markup.
type ExtractorConfig struct {
	RowSelector  string
	NextSelector string
	Columns      config.ColumnConfig
	MaxPages     int
	SettleDelay  time.Duration
}

// Extractor pulls the full, paginated lesson table into a flat sequence of
// classified rows. Output order is page-then-row order, NOT lesson number
// order: the ledger must index by number, never by position.
type Extractor struct {
	page   PageScripter
	cfg    ExtractorConfig
	logger *slog.Logger
	sleep  func(time.Duration)
}

func NewExtractor(page PageScripter, cfg ExtractorConfig, logger *slog.Logger) *Extractor {
	return &Extractor{
		page:   page,
		cfg:    cfg,
		logger: logger,
		sleep:  time.Sleep,
	}
}

// pageRow mirrors the object shape produced by the in-page row script.
type pageRow struct {
	RowID       string `json:"rowId"`
	Level       string `json:"level"`
	Number      int    `json:"number"`
	Description string `json:"description"`
	Grade       string `json:"grade"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

// ExtractAll walks every page of the lesson table up to the configured page
// ceiling. The ceiling is a hard stop against a "next" control whose
// disabled state is misreported.
func (e *Extractor) ExtractAll(ctx context.Context) ([]RawRow, error) {
	var all []RawRow

	for pageNum := 1; ; pageNum++ {
		var rows []pageRow
		if err := e.page.RunInPage(ctx, e.rowsScript(), &rows); err != nil {
			return nil, fmt.Errorf("read lesson table page %d: %w", pageNum, err)
		}
		if pageNum == 1 && len(rows) == 0 {
			return nil, ErrEmptyExtraction
		}
		e.logger.Debug("extracted page", "page", pageNum, "rows", len(rows))

		for i := range rows {
			all = append(all, e.classify(rows[i]))
		}

		if pageNum >= e.cfg.MaxPages {
			e.logger.Warn("page ceiling reached, halting pagination walk",
				"page", pageNum, "max_pages", e.cfg.MaxPages)
			break
		}

		var advanced bool
		if err := e.page.RunInPage(ctx, e.nextScript(), &advanced); err != nil {
			return nil, fmt.Errorf("advance lesson table past page %d: %w", pageNum, err)
		}
		if !advanced {
			break
		}
		// Give the grid time to re-render before reading the next page.
		e.sleep(e.cfg.SettleDelay)
	}

	return all, nil
}

// classify turns a raw page row into a RawRow with canonical kind/status.
func (e *Extractor) classify(row pageRow) RawRow {
	level, ok := ParseLevel(row.Level)
	if !ok {
		// Carry the raw value; the ledger keys by (level, number) and an
		// unknown level must stay visible rather than be coerced.
		level = Level(row.Level)
	}
	return RawRow{
		Level:       level,
		Number:      row.Number,
		Kind:        KindFromDescription(row.Description),
		Description: row.Description,
		Status:      StatusFromLabel(row.Status),
		StatusLabel: row.Status,
		Grade:       row.Grade,
		Date:        row.Date,
		Location:    row.Location,
		RemoteRowID: row.RowID,
	}
}

func (e *Extractor) rowsScript() string {
	cols := e.cfg.Columns
	return fmt.Sprintf(`(() => {
		const rows = Array.from(document.querySelectorAll(%q));
		return rows.map((r) => {
			const cells = Array.from(r.querySelectorAll('td')).map((c) => c.innerText.trim());
			return {
				rowId: r.getAttribute('data-gxrow') || '',
				level: cells[%d] || '',
				number: parseInt(cells[%d], 10) || 0,
				description: cells[%d] || '',
				grade: cells[%d] || '',
				status: cells[%d] || '',
				date: cells[%d] || '',
				location: cells[%d] || '',
			};
		});
	})()`, e.cfg.RowSelector,
		cols.Level, cols.Number, cols.Description, cols.Grade, cols.Status, cols.Date, cols.Location)
}

func (e *Extractor) nextScript() string {
	return fmt.Sprintf(`(() => {
		const next = document.querySelector(%q);
		if (!next || next.disabled || next.classList.contains('disabled')) return false;
		next.click();
		return true;
	})()`, e.cfg.NextSelector)
}
