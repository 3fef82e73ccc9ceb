// Package console is the terminal front standing in for the rendered pages:
// it builds the page documents, prompts for the form values and fires the
// same events a browser would.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/billed-app/billed-client/internal/consumer"
	"github.com/billed-app/billed-client/internal/dom"
	"github.com/billed-app/billed-client/internal/nav"
	"github.com/billed-app/billed-client/internal/remote"
	"github.com/billed-app/billed-client/internal/routes"
	"github.com/billed-app/billed-client/internal/service"
	"github.com/billed-app/billed-client/internal/storage"
)

// Console drives the login and new-bill flows over a terminal.
type Console struct {
	stdin   io.Reader
	in      *bufio.Reader
	out     io.Writer
	store   storage.Store
	client  remote.Client
	history *nav.History

	current string
}

// New builds a console front. client may be nil, in which case logins fail
// until an API address is configured.
func New(stdin io.Reader, out io.Writer, store storage.Store, client remote.Client, history *nav.History) *Console {
	return &Console{
		stdin:   stdin,
		in:      bufio.NewReader(stdin),
		out:     out,
		store:   store,
		client:  client,
		history: history,
		current: routes.Login,
	}
}

// Run walks one login and, for employees, one optional bill submission.
func (c *Console) Run(ctx context.Context) error {
	if err := c.login(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.current == routes.Bills {
		ok, err := c.confirm("Submit a new bill? [y/N]: ")
		if err != nil {
			return err
		}
		if ok {
			c.navigate(routes.NewBill)
			if err = c.newBill(); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(c.out, "done, current view: %s\n", c.current)
	return nil
}

func (c *Console) login() error {
	document := LoginDocument()
	document.SetAlert(c.alert)
	session := service.NewSession(c.client, c.store)
	consumer.NewLogin(document, c.store, c.navigate, c.history.Previous(), c.history, session)

	role, err := c.prompt("Login as [employee/admin]: ")
	if err != nil {
		return err
	}
	formID := "form-employee"
	emailID, passwordID := "employee-email-input", "employee-password-input"
	if strings.EqualFold(strings.TrimSpace(role), "admin") {
		formID = "form-admin"
		emailID, passwordID = "admin-email-input", "admin-password-input"
	}

	email, err := c.prompt("Email: ")
	if err != nil {
		return err
	}
	password, err := c.promptPassword("Password: ")
	if err != nil {
		return err
	}

	form := document.Form(formID)
	form.Input(emailID).SetValue(strings.TrimSpace(email))
	form.Input(passwordID).SetValue(password)
	form.Submit()

	if c.current == routes.Login {
		fmt.Fprintln(c.out, "login failed, see the log for details")
	}
	return nil
}

func (c *Console) newBill() error {
	document := NewBillDocument()
	document.SetAlert(c.alert)
	bills := service.NewBills(c.client)
	consumer.NewSubmission(document, c.store, c.navigate, bills)

	form := document.Form("form-new-bill")

	receiptPath, err := c.prompt("Receipt file (jpg, jpeg or png): ")
	if err != nil {
		return err
	}
	receiptPath = strings.TrimSpace(receiptPath)
	content, err := os.ReadFile(receiptPath)
	if err != nil {
		return fmt.Errorf("console, read receipt error: %v", err)
	}

	fileInput := form.Input("file")
	fileInput.SetFiles(dom.File{
		Name:     filepath.Base(receiptPath),
		MIMEType: mime.TypeByExtension(filepath.Ext(receiptPath)),
		Content:  content,
	})
	fileInput.Change()
	if fileInput.Value() == "" {
		// Rejected by the allow-list; the record would have no attachment.
		return nil
	}

	fields := []struct {
		id, label string
	}{
		{"expense-type", "Expense type: "},
		{"expense-name", "Expense name: "},
		{"datepicker", "Date (yyyy-mm-dd): "},
		{"amount", "Amount: "},
		{"vat", "VAT: "},
		{"pct", "Pct (default 20): "},
		{"commentary", "Commentary: "},
	}
	for _, field := range fields {
		value, err := c.prompt(field.label)
		if err != nil {
			return err
		}
		form.Input(field.id).SetValue(strings.TrimSpace(value))
	}

	form.Submit()
	return nil
}

func (c *Console) navigate(path string) {
	c.current = path
	fmt.Fprintf(c.out, "-> %s\n", path)
}

func (c *Console) alert(msg string) {
	fmt.Fprintf(c.out, "! %s\n", msg)
	fmt.Fprint(c.out, "press enter to continue")
	_, _ = c.in.ReadString('\n')
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("console, read error: %v", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptPassword reads without echo when stdin is a terminal.
func (c *Console) promptPassword(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if f, ok := c.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(c.out)
		if err != nil {
			return "", fmt.Errorf("console, read password error: %v", err)
		}
		return string(raw), nil
	}
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("console, read password error: %v", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) confirm(label string) (bool, error) {
	answer, err := c.prompt(label)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
