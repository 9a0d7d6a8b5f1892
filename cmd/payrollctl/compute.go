package main

import (
	"errors"

	"go-payroll/internal/payroll"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newComputeCmd() *cobra.Command {
	var basic, allowances, deductions, tax string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Print the gross/tax/net breakdown for one month without touching the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseAmount("basic", basic)
			if err != nil {
				return err
			}
			a, err := parseAmount("allowances", allowances)
			if err != nil {
				return err
			}
			d, err := parseAmount("deductions", deductions)
			if err != nil {
				return err
			}

			taxPercent := payroll.TaxPercentFor(b)
			if tax != "" {
				if taxPercent, err = parseAmount("tax", tax); err != nil {
					return err
				}
				if taxPercent.GreaterThan(decimal.NewFromInt(100)) {
					return errors.New("--tax must be between 0 and 100")
				}
			}

			out := payroll.ComputeSalary(b, a, d, taxPercent)
			cmd.Printf("Basic Salary       %s\n", payroll.FormatMoney(b))
			cmd.Printf("Allowances         %s\n", payroll.FormatMoney(a))
			cmd.Printf("Gross Salary       %s\n", payroll.FormatMoney(out.Gross))
			cmd.Printf("Tax (%s%%)          %s\n", taxPercent.String(), payroll.FormatMoney(out.TaxAmount))
			cmd.Printf("Deductions         %s\n", payroll.FormatMoney(d))
			cmd.Printf("Net Pay            %s\n", payroll.FormatMoney(out.Net))
			return nil
		},
	}

	cmd.Flags().StringVar(&basic, "basic", "", "monthly basic salary")
	cmd.Flags().StringVar(&allowances, "allowances", "0", "monthly allowances")
	cmd.Flags().StringVar(&deductions, "deductions", "0", "monthly deductions")
	cmd.Flags().StringVar(&tax, "tax", "", "tax percent, derived from the bracket table when omitted")
	_ = cmd.MarkFlagRequired("basic")
	return cmd
}

func parseAmount(name, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, errors.New("--" + name + " must be a number")
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("--" + name + " must not be negative")
	}
	return d, nil
}
