package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MikeMC777/cafezinho/internal/cart"
	"github.com/MikeMC777/cafezinho/internal/checkout"
	ord "github.com/MikeMC777/cafezinho/internal/order"
	"github.com/MikeMC777/cafezinho/internal/user"
)

// app is everything a command needs; main builds it from config.
type app struct {
	catalog catalog
	cart    *cart.Store
	users   *user.Session
	orders  ord.Backend
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the cafezinho menu, fill a cart and place orders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.productsCmd(),
		a.categoriesCmd(),
		a.addCmd(),
		a.removeCmd(),
		a.cartCmd(),
		a.clearCmd(),
		a.checkoutCmd(),
		a.ordersCmd(),
		a.orderCmd(),
		a.whoamiCmd(),
		a.logoutCmd(),
	)
	return root
}

func (a *app) productsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.catalog.ListProducts(cmd.Context(), category)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no products")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE")
			for _, p := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, checkout.Currency(p.UnitPrice()))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list products of this category")
	return cmd
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List menu categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := a.catalog.Categories(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range cats {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.catalog.FetchProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.cart.Add(cmd.Context(), *p)
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%d items, %s)\n",
				p.Title, a.cart.TotalItems(), checkout.Currency(a.cart.TotalPrice()))
			return nil
		},
	}
}

func (a *app) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove one unit of a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cart.Remove(cmd.Context(), args[0])
			return printCart(cmd.OutOrStdout(), a.cart)
		},
	}
}

func (a *app) cartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCart(cmd.OutOrStdout(), a.cart)
		},
	}
}

func (a *app) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.cart.Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "cart is empty")
			return nil
		},
	}
}

func (a *app) checkoutCmd() *cobra.Command {
	var req checkout.Request
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order with the cart contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := a.cart.Entries()
			c := &checkout.Checkout{Cart: a.cart, Users: a.users, Orders: a.orders}
			o, err := c.Place(cmd.Context(), req)
			if err != nil {
				var ve *ord.ValidationError
				if errors.As(err, &ve) {
					for _, v := range ve.Violations {
						fmt.Fprintln(cmd.ErrOrStderr(), "-", v)
					}
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), checkout.Receipt(o, entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.CustomerName, "name", "", "customer name (required on first order)")
	cmd.Flags().StringVar(&req.CustomerPhone, "phone", "", "customer phone")
	cmd.Flags().StringVar(&req.Address, "address", "", "delivery address")
	return cmd
}

func (a *app) ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List the orders of the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uid := a.users.CurrentUserID(cmd.Context())
			if uid == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no user yet: place an order first")
				return nil
			}
			list, err := a.orders.GetUserOrders(cmd.Context(), uid)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no orders")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tID\tSTATUS\tTOTAL\tCREATED")
			for _, o := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.OrderNumber, o.ID, o.Status,
					checkout.Currency(o.TotalAmount), o.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func (a *app) orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.orders.GetOrderByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pedido %s (%s)\n", o.OrderNumber, o.Status)
			fmt.Fprintf(out, "Cliente: %s\n", o.CustomerName)
			if o.Notes != "" {
				fmt.Fprintln(out, o.Notes)
			}
			for _, it := range o.Items {
				fmt.Fprintf(out, " %dx %s - %s\n", it.Quantity, it.ProductID, checkout.Currency(it.Price))
			}
			fmt.Fprintf(out, "Valor total: %s\n", checkout.Currency(o.TotalAmount))
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u := a.users.Load(cmd.Context())
			if u == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no user")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s <%s>\n", u.ID, u.Name, u.Email)
			return nil
		},
	}
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.users.Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func printCart(out io.Writer, c *cart.Store) error {
	entries := c.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(out, "cart is empty")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tQTY\tPRICE\tSUBTOTAL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", e.ProductID, e.Title, e.Quantity,
			checkout.Currency(e.Price), checkout.Currency(e.Subtotal()))
	}
	fmt.Fprintf(w, "\t\t%d\t\t%s\n", c.TotalItems(), checkout.Currency(c.TotalPrice()))
	return w.Flush()
}
