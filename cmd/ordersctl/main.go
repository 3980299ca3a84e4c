// Command ordersctl prints an order overview and exports orders to xlsx
// straight from the database.
//
//	ordersctl summary
//	ordersctl export -o orders.xlsx -status pending -from 2024-11-01
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"snackshop/cmd"
	"snackshop/internal/adapters/out/spreadsheet"
	"snackshop/internal/core/application/usecases/queries"
	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/user"

	"github.com/labstack/gommon/log"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// operator is the actor of CLI exports; the CLI runs with database access.
var operator = access.Staff{Role: user.RoleAdmin}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "summary":
		err = summary(ctx, queries.NewStatusSummaryQueryHandler(gormDB), os.Stdout)
	case "export":
		err = export(ctx, queries.NewExportOrdersQueryHandler(gormDB), os.Args[2:])
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "usage: ordersctl summary | export -o FILE [-status S] [-payment P] [-from YYYY-MM-DD] [-to YYYY-MM-DD]")
}

type summaryReader interface {
	Handle(ctx context.Context) ([]queries.StatusSummaryRow, error)
}

func summary(ctx context.Context, h summaryReader, w io.Writer) error {
	rows, err := h.Handle(ctx)
	if err != nil {
		return err
	}
	return renderSummary(w, rows)
}

func renderSummary(w io.Writer, rows []queries.StatusSummaryRow) error {
	p := message.NewPrinter(language.Korean)

	table := tablewriter.NewWriter(w)
	table.Header("Status", "Orders", "Unpaid", "Total", "Net profit")

	var orders, unpaid, total, profit int64
	for _, r := range rows {
		if err := table.Append(
			r.Status,
			p.Sprintf("%d", r.Orders),
			p.Sprintf("%d", r.Unpaid),
			p.Sprintf("%d", r.TotalAmount),
			p.Sprintf("%d", r.NetProfit),
		); err != nil {
			return err
		}
		orders += r.Orders
		unpaid += r.Unpaid
		total += r.TotalAmount
		profit += r.NetProfit
	}
	table.Footer("Total", p.Sprintf("%d", orders), p.Sprintf("%d", unpaid), p.Sprintf("%d", total), p.Sprintf("%d", profit))

	return table.Render()
}

type exportReader interface {
	Handle(ctx context.Context, actor access.Actor, filter queries.OrderFilter) ([]queries.OrderView, error)
}

func export(ctx context.Context, h exportReader, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "", "output .xlsx file")
	status := fs.String("status", "", "order status")
	payment := fs.String("payment", "", "payment status")
	search := fs.String("search", "", "name, phone or order number")
	trashed := fs.Bool("trashed", false, "export the trash instead")
	from := fs.String("from", "", "created on or after (YYYY-MM-DD)")
	to := fs.String("to", "", "created on or before (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("-o is required")
	}

	fromDate, err := parseDate(*from)
	if err != nil {
		return err
	}
	toDate, err := parseDate(*to)
	if err != nil {
		return err
	}
	if toDate != nil {
		end := toDate.AddDate(0, 0, 1)
		toDate = &end
	}

	filter, err := queries.NewOrderFilter(*status, *payment, *search, *trashed, fromDate, toDate)
	if err != nil {
		return err
	}

	orders, err := h.Handle(ctx, operator, filter)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err = spreadsheet.WriteOrders(f, orders); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	fmt.Printf("%d orders written to %s\n", len(orders), *out)
	return nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("bad date %q: %w", s, err)
	}
	return &t, nil
}
