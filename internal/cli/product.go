package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
)

// ListProducts prints the products matching query, preceded by the stock
// figures.
func (a *App) ListProducts(ctx context.Context, query string) error {
	sum, err := a.inventory.Summary(ctx)
	if err != nil {
		a.logger.Error(ctx, "computing inventory summary", "error", err)
		return err
	}
	list, err := a.inventory.List(ctx, query)
	if err != nil {
		a.logger.Error(ctx, "listing products", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Inventory: %d products, %.2f total value, %d low on stock, %d categories\n",
		sum.TotalProducts, sum.TotalValue, sum.LowStockCount, sum.Categories)

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSKU\tCATEGORY\tPRICE\tSTOCK\tMIN")
	for _, p := range list {
		marker := ""
		if p.LowStock() {
			marker = " !"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%d%s\t%d\n",
			p.ID, p.Name, p.SKU, p.Category, p.Price, p.StockQuantity, marker, p.MinStockLevel)
	}
	return w.Flush()
}

// LowStock prints only the products at or below their minimum stock level.
func (a *App) LowStock(ctx context.Context) error {
	list, err := a.inventory.LowStock(ctx)
	if err != nil {
		a.logger.Error(ctx, "listing low stock", "error", err)
		return err
	}
	if len(list) == 0 {
		printlnFn("No products are low on stock.")
		return nil
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSKU\tSTOCK\tMIN")
	for _, p := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", p.ID, p.Name, p.SKU, p.StockQuantity, p.MinStockLevel)
	}
	return w.Flush()
}

func (a *App) promptProduct(base models.Product) (*models.Product, error) {
	var err error
	p := base
	if p.Name, err = GetDefaultedText(a.reader, "Name", base.Name, os.Stdout); err != nil {
		return nil, err
	}
	if p.SKU, err = GetDefaultedText(a.reader, "SKU", base.SKU, os.Stdout); err != nil {
		return nil, err
	}
	if p.Category, err = GetDefaultedText(a.reader, "Category", base.Category, os.Stdout); err != nil {
		return nil, err
	}
	if p.Description, err = GetDefaultedText(a.reader, "Description", base.Description, os.Stdout); err != nil {
		return nil, err
	}
	price, err := GetDefaultedText(a.reader, "Price", strconv.FormatFloat(base.Price, 'f', -1, 64), os.Stdout)
	if err != nil {
		return nil, err
	}
	if p.Price, err = strconv.ParseFloat(price, 64); err != nil {
		return nil, err
	}
	stock, err := GetDefaultedText(a.reader, "Stock quantity", strconv.Itoa(base.StockQuantity), os.Stdout)
	if err != nil {
		return nil, err
	}
	if p.StockQuantity, err = strconv.Atoi(stock); err != nil {
		return nil, err
	}
	min, err := GetDefaultedText(a.reader, "Minimum stock level (0 for default)", strconv.Itoa(base.MinStockLevel), os.Stdout)
	if err != nil {
		return nil, err
	}
	if p.MinStockLevel, err = strconv.Atoi(min); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *App) AddProduct(ctx context.Context) error {
	p, err := a.promptProduct(models.Product{})
	if err != nil {
		return err
	}
	created, err := a.inventory.Create(ctx, p)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			printlnFn("Not saved:", err.Error())
			return err
		}
		a.logger.Error(ctx, "creating product", "error", err)
		return err
	}
	printlnFn("Product saved with id", created.ID)
	return nil
}

func (a *App) EditProduct(ctx context.Context) error {
	id, err := GetInt(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}
	current, err := a.inventory.Get(ctx, int64(id))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No product with id", id)
			return err
		}
		a.logger.Error(ctx, "loading product", "error", err)
		return err
	}

	edited, err := a.promptProduct(*current)
	if err != nil {
		return err
	}
	if err := a.inventory.Update(ctx, current.ID, edited); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			printlnFn("Not saved:", err.Error())
			return err
		}
		a.logger.Error(ctx, "updating product", "error", err)
		return err
	}
	printlnFn("Product updated.")
	return nil
}

func (a *App) DeleteProduct(ctx context.Context) error {
	id, err := GetInt(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}
	ok, err := GetYesNo(a.reader, "Delete this product?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled.")
		return nil
	}
	if err := a.inventory.Delete(ctx, int64(id)); err != nil {
		a.logger.Error(ctx, "deleting product", "error", err)
		return err
	}
	printlnFn("Product deleted.")
	return nil
}
