// file: cmd/catalog.go
// version: 1.0.0
// guid: e4a81c5f-2b6d-4d39-9f70-1a8c3e5b7d26

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/jdfalk/isbn-catalog/internal/catalog"
	"github.com/jdfalk/isbn-catalog/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the catalog tables",
		Long:  `Create the books and authors tables. Safe to run on an existing catalog.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Catalog ready: %s\n", config.AppConfig.DatabasePath)
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [isbn]",
		Short: "Look up an ISBN and add the book to the catalog",
		Long: `Look up an ISBN with the configured metadata providers and add the book.
When no ISBN is given it is read from standard input.

Exits non-zero only when the catalog could not be written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				line, err := promptISBN(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				raw = line
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, svc, err := openCatalog(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stopSpinner := spinner(cmd.ErrOrStderr(), "Looking up "+catalog.NormalizeISBN(raw))
			out := svc.Reconcile(ctx, raw)
			stopSpinner()

			printOutcome(cmd.OutOrStdout(), out)
			if out.State == catalog.StateStorageError {
				return ErrReported
			}
			return nil
		},
	}
	return cmd
}

func promptISBN(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "ISBN: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read ISBN: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func printOutcome(w io.Writer, out catalog.Outcome) {
	fmt.Fprintf(w, "[%s] %s\n", strings.ToUpper(string(out.Category())), out.Message())
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <isbn>",
		Short: "Print a catalogued book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, svc, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			book, err := svc.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if book == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] The book with ISBN %s is not in the catalog.\n",
					strings.ToUpper(string(catalog.CategoryInfo)), catalog.NormalizeISBN(args[0]))
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ISBN:\t%s\n", book.ISBN)
			fmt.Fprintf(tw, "Title:\t%s\n", book.Title)
			fmt.Fprintf(tw, "Author:\t%s\n", book.AuthorDisplay)
			fmt.Fprintf(tw, "Publisher:\t%s\n", book.Publisher)
			fmt.Fprintf(tw, "Published:\t%s\n", book.PublishedDate)
			fmt.Fprintf(tw, "Pages:\t%s\n", pageCount(book.PageCount))
			fmt.Fprintf(tw, "Description:\t%s\n", book.Description)
			fmt.Fprintf(tw, "Added:\t%s\n", book.CreatedAt.Format("2006-01-02 15:04:05"))
			return tw.Flush()
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print book and author counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			books, err := store.CountBooks(cmd.Context())
			if err != nil {
				return err
			}
			authors, err := store.CountAuthors(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog: %s\nBooks:   %d\nAuthors: %d\n",
				config.AppConfig.DatabasePath, books, authors)
			return nil
		},
	}
}
