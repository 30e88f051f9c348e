package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jchery25/expense-tracker-next/internal/common"
	"github.com/jchery25/expense-tracker-next/internal/tui"
	"github.com/jchery25/expense-tracker-next/internal/tui/themes"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Record expenses interactively",
		Long:  `Open the expense entry form. Each valid submission is added to the session ledger; quit to see a summary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme := themes.GetTheme(viper.GetString("ui.theme"))

			expenses, err := tui.Run(cmd.Context(), tui.Config{Theme: theme})
			if err != nil {
				return err
			}

			common.LogInfo("session finished", common.Fields{"expenses": len(expenses)})

			if len(expenses) == 0 {
				fmt.Println(theme.Help.Render("No expenses recorded."))
				return nil
			}

			// Session summary
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Date"),
				headerStyle.Render("Description"),
				headerStyle.Render("Category"),
				headerStyle.Render("Amount"))

			var total float64
			for _, e := range expenses {
				total += e.Amount
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t$%.2f\n",
					e.ID, e.Date, e.Description, e.Category, e.Amount)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to write summary: %w", err)
			}

			fmt.Printf("\n%s\n", theme.StatusSuccess.Render(
				fmt.Sprintf("Recorded %d expense(s), $%.2f total", len(expenses), total)))
			return nil
		},
	}
}
