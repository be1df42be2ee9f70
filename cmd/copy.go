package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/clipboard"
	"github.com/Zachkp/portfolio/internal/content"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	noteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var copyCmd = &cobra.Command{
	Use:       "copy <email|phone>",
	Short:     "Copies a contact detail to the terminal clipboard",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"email", "phone"},
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(appConfig, log)
		if err != nil {
			return err
		}
		label, value, err := contactValue(doc, args[0])
		if err != nil {
			return err
		}

		copier := clipboard.NewCopier(clipboard.NewOSC52Writer(os.Stdout), log)
		n := copier.Copy(cmd.Context(), value, label)
		fmt.Fprintln(cmd.ErrOrStderr(), renderNotification(n))
		if !n.OK() {
			return fmt.Errorf("copy %s failed", strings.ToLower(label))
		}
		return nil
	},
}

func contactValue(doc *content.Document, field string) (label, value string, err error) {
	if doc.Contact == nil {
		return "", "", fmt.Errorf("content document has no contact section")
	}
	switch field {
	case "email":
		label, value = "Email", doc.Contact.Email
	case "phone":
		label, value = "Phone", doc.Contact.Phone
	default:
		return "", "", fmt.Errorf("unknown contact field %q", field)
	}
	if value == "" {
		return "", "", fmt.Errorf("contact %s is not set", field)
	}
	return label, value, nil
}

func renderNotification(n clipboard.Notification) string {
	if n.OK() {
		return okStyle.Render("✓ " + n.Message)
	}
	return failStyle.Render("✗ " + n.Message)
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
