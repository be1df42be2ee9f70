package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Checks the content document",
	Long: `The validate command loads the content document, reports field issues and
exits non-zero when there are any. Social links whose icon key has no glyph
are listed as notes: they are left out of the page but are not an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := content.Load(appConfig.Content)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, note := range unknownIcons(doc, icons.Default()) {
			fmt.Fprintln(out, noteStyle.Render(note))
		}

		issues := content.Validate(doc)
		if len(issues) == 0 {
			fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("%s is valid", appConfig.Content)))
			return nil
		}
		for _, issue := range issues {
			fmt.Fprintln(out, warnStyle.Render(issue.String()))
		}
		return issues.Err()
	},
}

// unknownIcons describes every social link the page will drop because its
// icon key is not registered.
func unknownIcons(doc *content.Document, reg *icons.Registry) []string {
	var notes []string
	check := func(path string, links []content.SocialLink) {
		for i, link := range links {
			if _, ok := reg.Resolve(link.IconKey); ok {
				continue
			}
			notes = append(notes, fmt.Sprintf("%s[%d].iconKey %q has no icon, the link is hidden", path, i, link.IconKey))
		}
	}
	if doc.Home != nil {
		check("home.socials", doc.Home.Socials)
	}
	if doc.Contact != nil {
		check("contact.socials", doc.Contact.Socials)
	}
	if len(notes) == 0 {
		return nil
	}

	keys := reg.Keys()
	known := make([]string, 0, len(keys))
	for _, k := range keys {
		known = append(known, string(k))
	}
	return append(notes, "known icon keys: "+strings.Join(known, ", "))
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
