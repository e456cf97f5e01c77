package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"clothiq/internal/domain"
)

func productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products [category...]",
		Short: "List products for the home feed or the given categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				products []domain.Product
				err      error
			)
			if len(args) == 0 {
				products, err = wire.Browse.Home(ctx)
				if err != nil {
					return fmt.Errorf("failed to load products: %w", err)
				}
			}
			for _, c := range args {
				ps, err := wire.Browse.ProductsByCategory(ctx, domain.Category(c))
				if err != nil {
					return fmt.Errorf("failed to load products: %w", err)
				}
				products = append(products, ps...)
			}
			return writeProducts(cmd.OutOrStdout(), products)
		},
	}
}

func productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product and related products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || !domain.ProductID(n).Valid() {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			ctx := cmd.Context()
			p, err := wire.Browse.Product(ctx, domain.ProductID(n))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n\n", p.Title, strings.ToUpper(p.Category.String()))
			fmt.Fprintf(out, "$%s  %.0f%% off  %.1f / 5  stock %d\n\n",
				domain.FormatAmount(p.Price), p.DiscountPercentage, p.Rating, p.Stock)
			fmt.Fprintf(out, "Product Description\n%s\n", p.Description)

			related := wire.Browse.Related(ctx, p)
			if len(related) == 0 {
				return nil
			}
			fmt.Fprintln(out, "\nRelated Products")
			return writeProducts(out, related)
		},
	}
}

func writeProducts(w io.Writer, products []domain.Product) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tDISCOUNT\tRATING\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t$%s\t-%.0f%%\t%.1f\t%d\n",
			p.ID, p.Title, domain.FormatAmount(p.Price), p.DiscountPercentage, p.Rating, p.Stock)
	}
	return tw.Flush()
}
