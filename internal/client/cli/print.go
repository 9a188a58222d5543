package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/profilekeeper/internal/profile"
)

func displayName(p *profile.Profile) string {
	return strings.TrimSpace(p.FirstName() + " " + p.LastName())
}

// printProfile writes a profile card. Empty account fields are skipped.
func printProfile(w io.Writer, p *profile.Profile) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "@%s\t%s\n", p.Username(), displayName(p))
	if p.UserID() != "" {
		fmt.Fprintf(tw, "  user id:\t%s\n", p.UserID())
	}
	if p.Email() != "" {
		fmt.Fprintf(tw, "  email:\t%s\n", p.Email())
	}
	fmt.Fprintf(tw, "  picture:\t%s\n", p.PictureOrDefault())
	if p.Bio() != "" {
		fmt.Fprintf(tw, "  bio:\t%s\n", p.Bio())
	}

	_ = tw.Flush()
}

// printProfiles writes one row per profile.
func printProfiles(w io.Writer, ps []*profile.Profile) {
	if len(ps) == 0 {
		fmt.Fprintln(w, "No profiles found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tNAME\tUSER ID")
	for _, p := range ps {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Username(), displayName(p), p.UserID())
	}
	_ = tw.Flush()
}
