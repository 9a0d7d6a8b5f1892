package payroll_test

import (
	"testing"

	"go-payroll/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func TestCanView(t *testing.T) {
	tests := []struct {
		name   string
		actor  payroll.Actor
		target string
		want   bool
	}{
		{name: "admin sees anyone", actor: payroll.Actor{Role: payroll.RoleAdmin}, target: "emp-2", want: true},
		{name: "employee sees self", actor: payroll.Actor{Role: payroll.RoleEmployee, EmployeeID: "emp-1"}, target: "emp-1", want: true},
		{name: "employee blocked from others", actor: payroll.Actor{Role: payroll.RoleEmployee, EmployeeID: "emp-1"}, target: "emp-2", want: false},
		{name: "no profile never matches", actor: payroll.Actor{Role: payroll.RoleEmployee}, target: "", want: false},
		{name: "unknown role", actor: payroll.Actor{Role: "AUDITOR", EmployeeID: "emp-1"}, target: "emp-2", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payroll.CanView(tt.actor, tt.target))
		})
	}
}
