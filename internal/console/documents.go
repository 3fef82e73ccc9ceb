package console

import "github.com/billed-app/billed-client/internal/dom"

// LoginDocument builds the login page: both forms with their email and
// password inputs.
func LoginDocument() *dom.Document {
	document := dom.NewDocument()

	employee := document.AddForm("form-employee")
	employee.AddInput("employee-email-input")
	employee.AddInput("employee-password-input")

	admin := document.AddForm("form-admin")
	admin.AddInput("admin-email-input")
	admin.AddInput("admin-password-input")

	return document
}

// NewBillDocument builds the new-bill page: the form with its labeled fields
// and the receipt file input.
func NewBillDocument() *dom.Document {
	document := dom.NewDocument()

	form := document.AddForm("form-new-bill")
	form.AddInput("expense-type")
	form.AddInput("expense-name")
	form.AddInput("datepicker")
	form.AddInput("amount")
	form.AddInput("vat")
	form.AddInput("pct")
	form.AddInput("commentary")
	form.AddInput("file")

	return document
}
