package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/connection"

	"github.com/spf13/cobra"
)

type payslipFlags struct {
	employeeID string
	salaryID   string
	month      int
	year       int
	outDir     string
}

func newPayslipCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payslip",
		Short: "Payslip utilities",
	}

	var f payslipFlags
	render := &cobra.Command{
		Use:   "render",
		Short: "Render a stored salary record to a PDF file",
		Example: "  payrollctl payslip render --employee <uuid> --month 3 --year 2024\n" +
			"  payrollctl payslip render --salary <uuid> --out ./payslips",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}

			gormDB, err := connection.ConnectGORMWithRetry(state.cfg.DB, 1)
			if err != nil {
				return err
			}
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			payslips := payroll.NewPayslipService(
				payroll.NewRepository(gormDB),
				employee.NewPayrollResolver(employee.NewRepository(gormDB)),
				payroll.NewPDFRenderer(),
				state.logger,
			)

			path, err := renderPayslip(cmd.Context(), payslips, f)
			if err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", path)
			return nil
		},
	}
	render.Flags().StringVar(&f.employeeID, "employee", "", "employee id")
	render.Flags().StringVar(&f.salaryID, "salary", "", "salary record id (instead of --employee/--month/--year)")
	render.Flags().IntVar(&f.month, "month", 0, "period month (1-12)")
	render.Flags().IntVar(&f.year, "year", 0, "period year")
	render.Flags().StringVar(&f.outDir, "out", ".", "output directory")

	cmd.AddCommand(render)
	return cmd
}

func (f payslipFlags) validate() error {
	if f.salaryID != "" {
		if f.employeeID != "" {
			return errors.New("use either --salary or --employee, not both")
		}
		return nil
	}
	if f.employeeID == "" || f.month == 0 || f.year == 0 {
		return errors.New("--employee, --month and --year are required when --salary is not set")
	}
	return nil
}

func renderPayslip(ctx context.Context, payslips payroll.PayslipService, f payslipFlags) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		slip payroll.Payslip
		err  error
	)
	if f.salaryID != "" {
		slip, err = payslips.GenerateByID(ctx, f.salaryID)
	} else {
		slip, err = payslips.Generate(ctx, f.employeeID, f.month, f.year)
	}
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(f.outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(f.outDir, slip.Filename)
	if err := os.WriteFile(path, slip.Content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
