package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
)

// listFlags are shared by every list subcommand.
type listFlags struct {
	query    string
	page     int
	pageSize int
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Search text")
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", model.DefaultPageSize, "Items per page")
}

func (f *listFlags) options() model.ListOptions {
	return model.ListOptions{Query: f.query, Page: f.page, PageSize: f.pageSize}.Normalize()
}

// confirmDelete asks before deleting unless yes is set.
func (a *app) confirmDelete(name string, yes bool) bool {
	if yes {
		return true
	}
	answer, err := prompt(bufio.NewReader(a.in), a.out, fmt.Sprintf("Delete %s? [y/N] ", name))
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	ok := answer == "y" || answer == "yes"
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
	}
	return ok
}

// deleteCommand builds the shared "delete" subcommand: look the record up, confirm, delete.
func (a *app) deleteCommand(use string, args cobra.PositionalArgs, lookup func(ctx context.Context, args []string) (string, error), del func(ctx context.Context, args []string) error) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   use,
		Short: "Delete a record",
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSignedIn(); err != nil {
				return err
			}
			name, err := lookup(cmd.Context(), args)
			if err != nil {
				return describe(err)
			}
			if !a.confirmDelete(name, yes) {
				return nil
			}
			if err := del(cmd.Context(), args); err != nil {
				return describe(err)
			}
			fmt.Fprintln(a.out, "Deleted successfully")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (a *app) newAttributesCmd() *cobra.Command {
	types := make([]string, 0, len(model.AttributeTypes))
	for _, t := range model.AttributeTypes {
		types = append(types, string(t))
	}
	cmd := &cobra.Command{
		Use:   "attributes",
		Short: "Reference data: " + strings.Join(types, ", "),
	}

	var lf listFlags
	list := &cobra.Command{
		Use:       "list TYPE",
		Short:     "List one attribute collection",
		Args:      cobra.ExactArgs(1),
		ValidArgs: types,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSignedIn(); err != nil {
				return err
			}
			t, err := attributeType(args[0])
			if err != nil {
				return err
			}
			opts := lf.options()
			res, err := a.attributes.List(cmd.Context(), a.session, t, model.AttributeFilter{ListOptions: opts})
			if err != nil {
				return describe(err)
			}
			if a.flagJSON {
				return writeJSON(a.out, res.Items)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(a.out, "No items")
				return nil
			}
			tw := newTable(a.out)
			fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tCREATED\tUPDATED")
			for _, it := range res.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.ID, it.Name, activeLabel(it.IsActive), dateLabel(it.CreatedAt), dateLabel(it.UpdatedAt))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			footer(a.out, len(res.Items), res.Total, opts)
			return nil
		},
	}
	lf.bind(list)

	get := &cobra.Command{
		Use:   "get TYPE ID",
		Short: "Show one attribute",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSignedIn(); err != nil {
				return err
			}
			t, err := attributeType(args[0])
			if err != nil {
				return err
			}
			it, err := a.attributes.Get(cmd.Context(), a.session, t, model.ID(args[1]))
			if err != nil {
				return describe(err)
			}
			return writeJSON(a.out, it)
		},
	}

	del := a.deleteCommand("delete TYPE ID", cobra.ExactArgs(2),
		func(ctx context.Context, args []string) (string, error) {
			t, err := attributeType(args[0])
			if err != nil {
				return "", err
			}
			it, err := a.attributes.Get(ctx, a.session, t, model.ID(args[1]))
			return it.Name, err
		},
		func(ctx context.Context, args []string) error {
			t, _ := model.ParseAttributeType(args[0])
			return a.attributes.Delete(ctx, a.session, t, model.ID(args[1]))
		})

	cmd.AddCommand(list, get, del)
	return cmd
}

func attributeType(s string) (model.AttributeType, error) {
	t, ok := model.ParseAttributeType(s)
	if !ok {
		return "", fmt.Errorf("unknown attribute type %q", s)
	}
	return t, nil
}

func (a *app) newSuppliersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "suppliers", Short: "Suppliers"}

	var (
		lf           listFlags
		supplierType string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List suppliers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSignedIn(); err != nil {
				return err
			}
			f := model.SupplierFilter{ListOptions: lf.options()}
			if supplierType != "" {
				t, ok := model.ParseSupplierType(supplierType)
				if !ok {
					return fmt.Errorf("unknown supplier type %q", supplierType)
				}
				f.Type = t
			}
			res, err := a.suppliers.List(cmd.Context(), a.session, f)
			if err != nil {
				return describe(err)
			}
			if a.flagJSON {
				return writeJSON(a.out, res.Items)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(a.out, "No items")
				return nil
			}
			tw := newTable(a.out)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCONTACT\tPHONE\tSTATUS")
			for _, s := range res.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.SupplierType, dash(s.ContactPerson), dash(s.Phone), activeLabel(s.IsActive))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			footer(a.out, len(res.Items), res.Total, f.ListOptions)
			return nil
		},
	}
	lf.bind(list)
	list.Flags().StringVar(&supplierType, "type", "", "Supplier type (wholesaler, factory)")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSignedIn(); err != nil {
				return err
			}
			s, err := a.suppliers.Get(cmd.Context(), a.session, model.ID(args[0]))
			if err != nil {
				return describe(err)
			}
			return writeJSON(a.out, s)
		},
	}

	del := a.deleteCommand("delete ID", cobra.ExactArgs(1),
		func(ctx context.Context, args []string) (string, error) {
			s, err := a.suppliers.Get(ctx, a.session, model.ID(args[0]))
			return s.Name, err
		},
		func(ctx context.Context, args []string) error {
			return a.suppliers.Delete(ctx, a.session, model.ID(args[0]))
		})

	cmd.AddCommand(list, get, del)
	return cmd
}

func (a *app) newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Products and their variations"}

	var (
		lf        listFlags
		category  string
		brand     string
		ownership string
		active    string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSignedIn(); err != nil {
				return err
			}
			f, err := productFilter(lf.options(), category, brand, ownership, active)
			if err != nil {
				return err
			}
			res, err := a.products.List(cmd.Context(), a.session, f)
			if err != nil {
				return describe(err)
			}
			if a.flagJSON {
				return writeJSON(a.out, res.Items)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(a.out, "No items")
				return nil
			}
			tw := newTable(a.out)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tBRAND\tPRICE\tSTOCK\tSTATUS")
			for _, p := range res.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, refName(p.Category), refName(p.Brand), price(p.SellingPrice), p.TotalStock(), activeLabel(p.IsActive))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			footer(a.out, len(res.Items), res.Total, f.ListOptions)
			return nil
		},
	}
	lf.bind(list)
	list.Flags().StringVar(&category, "category", "", "Category id")
	list.Flags().StringVar(&brand, "brand", "", "Brand id")
	list.Flags().StringVar(&ownership, "ownership", "", "Ownership status (Yes, No)")
	list.Flags().StringVar(&active, "active", "", "Only active (true) or inactive (false) products")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one product with its variations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSignedIn(); err != nil {
				return err
			}
			p, err := a.products.Get(cmd.Context(), a.session, model.ID(args[0]))
			if err != nil {
				return describe(err)
			}
			return writeJSON(a.out, p)
		},
	}

	del := a.deleteCommand("delete ID", cobra.ExactArgs(1),
		func(ctx context.Context, args []string) (string, error) {
			p, err := a.products.Get(ctx, a.session, model.ID(args[0]))
			return p.Name, err
		},
		func(ctx context.Context, args []string) error {
			return a.products.Delete(ctx, a.session, model.ID(args[0]))
		})

	cmd.AddCommand(list, get, del)
	return cmd
}

func productFilter(opts model.ListOptions, category, brand, ownership, active string) (model.ProductFilter, error) {
	f := model.ProductFilter{ListOptions: opts, Category: model.ID(category), Brand: model.ID(brand)}
	if ownership != "" {
		s, ok := model.ParseOwnershipStatus(ownership)
		if !ok {
			return f, fmt.Errorf("unknown ownership status %q", ownership)
		}
		f.OwnershipStatus = s
	}
	switch strings.ToLower(strings.TrimSpace(active)) {
	case "":
	case "true", "yes", "1":
		v := true
		f.IsActive = &v
	case "false", "no", "0":
		v := false
		f.IsActive = &v
	default:
		return f, fmt.Errorf("invalid --active value %q", active)
	}
	return f, nil
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
