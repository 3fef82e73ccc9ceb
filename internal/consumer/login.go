// Package consumer holds the page containers: each binds to the forms of one
// page and turns their events into store writes, remote calls and navigation.
package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/billed-app/billed-client/internal/dom"
	"github.com/billed-app/billed-client/internal/model"
	"github.com/billed-app/billed-client/internal/nav"
	"github.com/billed-app/billed-client/internal/routes"
	"github.com/billed-app/billed-client/internal/service"
	"github.com/billed-app/billed-client/internal/storage"
)

const (
	formEmployeeID = "form-employee"
	formAdminID    = "form-admin"

	employeeEmailID    = "employee-email-input"
	employeePasswordID = "employee-password-input"
	adminEmailID       = "admin-email-input"
	adminPasswordID    = "admin-password-input"
)

const remoteTimeout = 10 * time.Second

// Login owns the login page: it intercepts both form submissions, commits the
// session locally before the remote outcome is known, runs the
// login-with-provisioning-fallback chain and navigates on its success.
type Login struct {
	document   *dom.Document
	store      storage.Store
	onNavigate nav.OnNavigate
	history    *nav.History
	session    *service.Session

	// previousLocation mirrors history for this instance, seeded with the
	// route the page was entered from.
	previousLocation string
}

// NewLogin binds a Login container to the employee and admin forms of
// document. A missing form is logged and skipped; the other form stays
// usable.
func NewLogin(document *dom.Document, store storage.Store, onNavigate nav.OnNavigate, previousLocation string,
	history *nav.History, session *service.Session) *Login {
	l := &Login{
		document:         document,
		store:            store,
		onNavigate:       onNavigate,
		history:          history,
		session:          session,
		previousLocation: previousLocation,
	}

	if form := document.Form(formEmployeeID); form != nil {
		form.OnSubmit(l.HandleSubmitEmployee)
	} else {
		logrus.Error("employee form not found")
	}

	if form := document.Form(formAdminID); form != nil {
		form.OnSubmit(l.HandleSubmitAdmin)
	} else {
		logrus.Error("admin form not found")
	}

	return l
}

// PreviousLocation returns the route recorded by the last successful login
// handled by this instance.
func (l *Login) PreviousLocation() string {
	return l.previousLocation
}

// HandleSubmitEmployee handles the employee form.
func (l *Login) HandleSubmitEmployee(ev *dom.SubmitEvent) {
	l.handleSubmit(ev, model.RoleEmployee, routes.Bills, employeeEmailID, employeePasswordID)
}

// HandleSubmitAdmin handles the admin form. Identical to the employee path up
// to role and target route.
func (l *Login) HandleSubmitAdmin(ev *dom.SubmitEvent) {
	l.handleSubmit(ev, model.RoleAdmin, routes.Dashboard, adminEmailID, adminPasswordID)
}

func (l *Login) handleSubmit(ev *dom.SubmitEvent, role model.Role, route, emailID, passwordID string) {
	ev.PreventDefault()

	// Inputs are read from the submitted form's subtree only, so several
	// forms can coexist on the page.
	emailInput := ev.Form.Input(emailID)
	passwordInput := ev.Form.Input(passwordID)
	if emailInput == nil || passwordInput == nil {
		logrus.Errorf("%s email or password input not found", role)
		return
	}

	user := model.User{
		Type:     role,
		Email:    emailInput.Value(),
		Password: passwordInput.Value(),
		Status:   model.StatusConnected,
	}

	// The session is committed locally before any remote call: the UI treats
	// the user as logged in now, the remote chain reconciles afterwards.
	raw, err := json.Marshal(&user)
	if err != nil {
		logrus.Errorf("login error: %v", err)
		return
	}
	if err = l.store.Set(storage.KeyUser, string(raw)); err != nil {
		logrus.Errorf("login error: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
	defer cancel()
	if err = l.session.Establish(ctx, &user); err != nil {
		logrus.Errorf("login error: %v", err)
		return
	}

	l.onNavigate(route)
	l.previousLocation = route
	l.history.SetPrevious(route)
	l.document.Body.BackgroundColor = "#fff"

	logrus.Infof("%s %s logged in", role, user.Email)
}
