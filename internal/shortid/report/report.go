// Package report renders the summary of a reconciliation pass.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

// maxListedIDs caps how many short ids of one block are printed.
const maxListedIDs = 8

// Render writes the totals per status, every block that did not complete and
// every observation file that was skipped.
func Render(w io.Writer, summary *model.Summary) error {
	elapsed := summary.Finished.Sub(summary.Started).Round(time.Millisecond)
	if _, err := fmt.Fprintf(w, "reconciled %s blocks in %s\n\n",
		humanize.Comma(int64(summary.Total())), elapsed); err != nil {
		return err
	}

	if err := renderTotals(w, summary); err != nil {
		return fmt.Errorf("render totals: %w", err)
	}

	anomalies := lo.Filter(summary.Outcomes(), func(o model.Outcome, _ int) bool {
		return o.Status != model.StatusComplete
	})
	if len(anomalies) > 0 {
		if err := renderAnomalies(w, anomalies); err != nil {
			return fmt.Errorf("render anomalies: %w", err)
		}
	}

	if skipped := summary.SkippedRecords(); len(skipped) > 0 {
		if err := renderSkippedRecords(w, skipped); err != nil {
			return fmt.Errorf("render skipped records: %w", err)
		}
	}
	return nil
}

func renderTotals(w io.Writer, summary *model.Summary) error {
	rows := make([][]string, 0, len(model.Statuses)+1)
	for _, status := range model.Statuses {
		rows = append(rows, []string{string(status), humanize.Comma(int64(summary.Count(status)))})
	}
	rows = append(rows, []string{"skipped files", humanize.Comma(int64(len(summary.SkippedRecords())))})

	return renderTable(w, []string{"Status", "Blocks"}, rows)
}

func renderAnomalies(w io.Writer, outcomes []model.Outcome) error {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, []string{
			o.BlockHash.String(),
			string(o.Status),
			strconv.Itoa(o.ExpectedCount),
			strconv.Itoa(o.ResolvedCount),
			anomalyDetail(o.Err),
		})
	}
	return renderTable(w, []string{"Block", "Status", "Expected", "Resolved", "Detail"}, rows)
}

func renderSkippedRecords(w io.Writer, records []*model.RecordError) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Path, fmt.Sprint(r.Kind), fmt.Sprint(r.Err)})
	}
	return renderTable(w, []string{"File", "Reason", "Error"}, rows)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// anomalyDetail lists the identifiers behind an anomaly.
func anomalyDetail(err error) string {
	var (
		incomplete *model.IncompleteError
		ambiguous  *model.AmbiguousError
		conflict   *model.KeyConflictError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &incomplete):
		return "unmatched " + formatIDs(incomplete.Unmatched)
	case errors.As(err, &ambiguous):
		detail := "colliding " + formatIDs(ambiguous.CollidingIDs())
		if len(ambiguous.Unmatched) > 0 {
			detail += ", unmatched " + formatIDs(ambiguous.Unmatched)
		}
		return detail
	case errors.As(err, &conflict):
		return fmt.Sprintf("%s has %s, expected %s", conflict.Source, conflict.Got, conflict.Want)
	default:
		return err.Error()
	}
}

func formatIDs(ids []uint64) string {
	shown := ids
	if len(shown) > maxListedIDs {
		shown = shown[:maxListedIDs]
	}
	parts := make([]string, 0, len(shown)+1)
	for _, id := range shown {
		parts = append(parts, strconv.FormatUint(id, 10))
	}
	if rest := len(ids) - len(shown); rest > 0 {
		parts = append(parts, fmt.Sprintf("and %s more", humanize.Comma(int64(rest))))
	}
	return strings.Join(parts, " ")
}
