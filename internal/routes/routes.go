// Package routes holds the route paths the containers navigate to. The route
// table itself (which view renders at which path) belongs to the host.
package routes

const (
	Login     = "/"
	Bills     = "#employee/bills"
	NewBill   = "#employee/bill/new"
	Dashboard = "#admin/dashboard"
)
