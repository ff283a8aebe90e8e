package pipeline

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Summary renders the end-of-batch table of per-file results with totals.
func Summary(results []*FileResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "In", "Out", "Saved", "Assets"})

	var inTotal, outTotal int64
	for _, r := range results {
		tw.AppendRow(table.Row{
			r.File,
			FormatBytes(r.InBytes),
			FormatBytes(r.OutBytes),
			formatSaved(r.InBytes, r.OutBytes),
			fmt.Sprintf("%d recoded, %d skipped", r.Recoded, r.Skipped),
		})
		inTotal += r.InBytes
		outTotal += r.OutBytes
	}
	tw.AppendFooter(table.Row{
		"Total",
		FormatBytes(inTotal),
		FormatBytes(outTotal),
		formatSaved(inTotal, outTotal),
		"",
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	return tw.Render()
}

func formatSaved(in, out int64) string {
	if in <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", float64(in-out)*100/float64(in))
}

// FormatBytes returns a human-readable size (B, KiB, MiB, ...).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
