package employee

const hireDateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"max=30"`
	Designation  string `json:"designation" binding:"max=100"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	HireDate     string `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateEmployeeRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"max=30"`
	Designation  string `json:"designation" binding:"max=100"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	HireDate     string `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID           string                      `json:"id"`
	EmployeeCode string                      `json:"employee_code"`
	FirstName    string                      `json:"first_name"`
	LastName     string                      `json:"last_name"`
	FullName     string                      `json:"full_name"`
	Email        string                      `json:"email"`
	Phone        string                      `json:"phone,omitempty"`
	Designation  string                      `json:"designation,omitempty"`
	HireDate     string                      `json:"hire_date,omitempty"`
	DepartmentID string                      `json:"department_id,omitempty"`
	Department   *EmployeeDepartmentResponse `json:"department,omitempty"`
}
