package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jchery25/expense-tracker-next/internal/model"
	"github.com/jchery25/expense-tracker-next/internal/tui/themes"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense categories",
		Long:  `Display the fixed set of expense categories available in the entry form.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			theme := themes.GetTheme(viper.GetString("ui.theme"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
			fmt.Fprintf(w, "%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Icon"))
			fmt.Fprintf(w, "%s\t%s\n",
				strings.Repeat("-", 16),
				strings.Repeat("-", 4))

			for _, c := range model.Categories {
				fmt.Fprintf(w, "%s\t%s\n", c, themes.GetCategoryIcon(c))
			}

			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to write categories: %w", err)
			}
			return nil
		},
	}
}
