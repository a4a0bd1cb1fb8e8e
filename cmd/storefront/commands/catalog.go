package commands

import (
	"github.com/spf13/cobra"

	"github.com/example/storefront/internal/adapter/terminal"
	"github.com/example/storefront/internal/domain"
)

func catalogCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the catalog or one product",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := terminal.NewView(cmd.OutOrStdout())
			if id != "" {
				p, err := shop.ProductItem(cmd.Context(), id)
				if err != nil {
					return err
				}
				printProduct(v, p)
				return nil
			}
			items, err := shop.Products(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range items {
				v.Printf("%s  %s  %s\n", p.ID, p.Title, v.Price(p))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "print a single product")
	return cmd
}

func printProduct(v *terminal.View, p *domain.Product) {
	v.Printf("%s [%s]\n", p.Title, p.Category)
	if p.Description != "" {
		v.Println(p.Description)
	}
	v.Printf("%s\n%s\n", v.Price(p), p.Image)
}
