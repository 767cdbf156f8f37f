package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func refName(r *model.Ref) string {
	if r == nil {
		return "-"
	}
	if r.Name != "" {
		return r.Name
	}
	return r.ID.String()
}

func dateLabel(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(time.DateOnly)
}

func price(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// footer reports how much of a paged result was shown.
func footer(w io.Writer, shown, total int, opts model.ListOptions) {
	if total > shown {
		fmt.Fprintf(w, "\n(%d of %d shown, page %d)\n", shown, total, opts.Page)
	}
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}
