package commands

import (
	"fmt"
	"text/tabwriter"
)

func printListing(l listing) {
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	for _, d := range l.Folders {
		fmt.Fprintf(tw, "d\t%s\t%s/\t\t\n", d.ID, d.Name)
	}
	for _, f := range l.Files {
		fmt.Fprintf(tw, "-\t%s\t%s\t%s\t%s\n", f.ID, f.Name, humanSize(f.Size), f.PublicURL)
	}
	_ = tw.Flush()
	if len(l.Folders) == 0 && len(l.Files) == 0 {
		fmt.Fprintln(Out, "(empty)")
	}
}

func printShares(list []share) {
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\n", s.SharedWithEmail, s.Role)
	}
	_ = tw.Flush()
	if len(list) == 0 {
		fmt.Fprintln(Out, "(not shared)")
	}
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
