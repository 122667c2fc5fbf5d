package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"boTester/internal/cli/commands"
	"boTester/internal/cli/ui"
	"boTester/internal/monitoring"
)

// Command builds the gridcheck command tree.
func (c *CLI) Command() *cobra.Command {
	var (
		table  string
		path   string
		accept bool
	)

	root := &cobra.Command{
		Use:   "gridcheck",
		Short: "Drive back-office grids from the command line",
		Long: `gridcheck - Run one grid operation (count, filter, read, edit, delete) against a live back office.

Each command launches the configured browser, opens the grid page and, when a journal
database is configured, records every grid action under a new run.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Name() != "runs" && cmd.Name() != "show" {
				ui.PrintBanner(c.out, c.cfg.Browser.Driver, monitoring.URL(c.cfg.BackOffice.URL, path))
			}
		},
	}
	root.SetOut(c.out)
	root.PersistentFlags().StringVarP(&table, "table", "t", monitoring.DisabledProducts, "grid key")
	root.PersistentFlags().StringVar(&path, "path", c.cfg.BackOffice.MonitoringPath, "page path relative to the back-office url")

	gridCmd := func(use, short string, args cobra.PositionalArgs, fn func(context.Context, *commands.GridHandler, []string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.checkTable(table, path); err != nil {
					return err
				}
				line := strings.TrimSpace(cmd.Name() + " " + table + " " + strings.Join(args, " "))
				return c.runGrid(cmd.Context(), line, path, func(ctx context.Context, h *commands.GridHandler) error {
					return fn(ctx, h, args)
				})
			},
		}
	}

	root.AddCommand(
		gridCmd("count", "Count the elements of a grid", cobra.NoArgs,
			func(ctx context.Context, h *commands.GridHandler, _ []string) error {
				return h.Count(ctx, table)
			}),
		gridCmd("reset", "Reset the grid filters and count the elements", cobra.NoArgs,
			func(ctx context.Context, h *commands.GridHandler, _ []string) error {
				return h.Reset(ctx, table)
			}),
		gridCmd("filter <input|select> <column> <value>", "Filter a grid column", cobra.ExactArgs(3),
			func(ctx context.Context, h *commands.GridHandler, args []string) error {
				return h.Filter(ctx, table, args[0], args[1], args[2])
			}),
		gridCmd("cell <row> <column>", "Print the text of a cell", cobra.ExactArgs(2),
			func(ctx context.Context, h *commands.GridHandler, args []string) error {
				return h.Cell(ctx, table, args[0], args[1])
			}),
		gridCmd("edit <row>", "Open the edit page of a row", cobra.ExactArgs(1),
			func(ctx context.Context, h *commands.GridHandler, args []string) error {
				return h.Edit(ctx, table, args[0])
			}),
		gridCmd("view-category <row>", "Open a category of the empty categories grid", cobra.ExactArgs(1),
			func(ctx context.Context, h *commands.GridHandler, args []string) error {
				return h.ViewCategory(ctx, args[0])
			}),
		gridCmd("edit-category <row>", "Open the edit page of an empty category", cobra.ExactArgs(1),
			func(ctx context.Context, h *commands.GridHandler, args []string) error {
				return h.EditCategory(ctx, args[0])
			}),
	)

	deleteCmd := gridCmd("delete <row>", "Delete a row and print the success message", cobra.ExactArgs(1),
		func(ctx context.Context, h *commands.GridHandler, args []string) error {
			return h.Delete(ctx, table, args[0], accept)
		})
	deleteCategoryCmd := gridCmd("delete-category <row> <mode>", "Delete an empty category with a deletion mode (0, 1 or 2)", cobra.ExactArgs(2),
		func(ctx context.Context, h *commands.GridHandler, args []string) error {
			return h.DeleteCategory(ctx, table, args[0], args[1], accept)
		})
	for _, cmd := range []*cobra.Command{deleteCmd, deleteCategoryCmd} {
		cmd.Flags().BoolVar(&accept, "accept", true, "accept the confirmation dialog")
		root.AddCommand(cmd)
	}

	root.AddCommand(c.countsCommand(&path), c.runsCommand(), c.loginCommand(&path))
	return root
}

func (c *CLI) countsCommand(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Reset and count every grid of the monitoring page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.isMonitoringPath(*path) {
				return fmt.Errorf("%w, got --path %q", ErrNotMonitoringPage, *path)
			}
			return c.runGrid(cmd.Context(), "counts", *path, func(ctx context.Context, h *commands.GridHandler) error {
				return h.Counts(ctx)
			})
		},
	}
}

func (c *CLI) runsCommand() *cobra.Command {
	var limit int
	runs := &cobra.Command{
		Use:   "runs",
		Short: "List journal runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.runsHandler()
			if err != nil {
				return err
			}
			return h.List(limit)
		},
	}
	runs.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs")

	runs.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show the actions of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.runsHandler()
			if err != nil {
				return err
			}
			return h.Show(args[0])
		},
	})
	return runs
}

func (c *CLI) loginCommand(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Open the back office in a visible browser to sign in by hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Browser.UserDataDir == "" {
				return fmt.Errorf("login needs PW_USER_DATA_DIR to keep the session")
			}
			bc := c.cfg.Browser
			bc.Headless = false
			h := commands.NewBrowserHandler(c.newBrowser(bc, c.log.Logger), c.readLine, c.out)
			return h.Login(cmd.Context(), monitoring.URL(c.cfg.BackOffice.URL, *path))
		},
	}
}
