package insight

import "time"

type Kind string

const (
	KindSalaryInsight Kind = "salary_insight"
	KindTaxAdvice     Kind = "tax_advice"
	KindPayrollReport Kind = "payroll_report"
	KindAnswer        Kind = "answer"
)

type InsightResponse struct {
	Kind        Kind      `json:"kind"`
	Subject     string    `json:"subject"`
	Content     string    `json:"content"`
	Generated   bool      `json:"generated"`
	GeneratedAt time.Time `json:"generated_at"`
}

type QuestionRequest struct {
	Question string `json:"question" binding:"required,max=2000"`
}
