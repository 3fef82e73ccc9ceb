package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/billed-app/billed-client/internal/dom"
	"github.com/billed-app/billed-client/internal/model"
	"github.com/billed-app/billed-client/internal/nav"
	"github.com/billed-app/billed-client/internal/routes"
	"github.com/billed-app/billed-client/internal/service"
	"github.com/billed-app/billed-client/internal/storage"
)

const (
	formNewBillID = "form-new-bill"

	fileInputID   = "file"
	expenseTypeID = "expense-type"
	expenseNameID = "expense-name"
	datePickerID  = "datepicker"
	amountInputID = "amount"
	vatInputID    = "vat"
	pctInputID    = "pct"
	commentaryID  = "commentary"
)

const defaultPct = 20

// Receipts must be images; anything else is rejected before it reaches the
// remote API.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// Submission owns the new-bill page: it validates the attached receipt when
// the file input changes, uploads it, and on form submission sends the
// assembled bill and navigates to the listing.
//
// The receipt upload and the form submission build the same record across two
// steps: the upload fixes billID, fileURL and fileName, the submission fills
// in the rest.
type Submission struct {
	document   *dom.Document
	store      storage.Store
	onNavigate nav.OnNavigate
	bills      *service.Bills

	billID   string
	fileURL  string
	fileName string
}

// NewSubmission binds a Submission container to the new-bill form and its
// file input. A missing form or input is logged and skipped.
func NewSubmission(document *dom.Document, store storage.Store, onNavigate nav.OnNavigate, bills *service.Bills) *Submission {
	s := &Submission{
		document:   document,
		store:      store,
		onNavigate: onNavigate,
		bills:      bills,
	}

	form := document.Form(formNewBillID)
	if form == nil {
		logrus.Error("new bill form not found")
		return s
	}
	form.OnSubmit(s.HandleSubmit)

	if input := form.Input(fileInputID); input != nil {
		input.OnChange(s.HandleChangeFile)
	} else {
		logrus.Error("file input not found")
	}

	return s
}

// HandleChangeFile validates the selected receipt's extension against the
// allow-list. A rejected file is detached from the input and the user is
// alerted; an accepted one is uploaded and its record key and location are
// kept for HandleSubmit. Upload failures are logged only.
func (s *Submission) HandleChangeFile(ev *dom.ChangeEvent) {
	files := ev.Input.Files()
	if len(files) == 0 {
		logrus.Error("no file selected")
		return
	}
	file := files[0]

	ext := strings.ToLower(filepath.Ext(file.Name))
	if _, ok := allowedExtensions[ext]; !ok {
		ev.Input.SetValue("")
		s.document.Alert("Only jpg, jpeg and png files are allowed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
	defer cancel()
	receipt, err := s.bills.UploadReceipt(ctx, s.ownerEmail(), file.Name, bytes.NewReader(file.Content))
	if err != nil {
		logrus.Errorf("create file error: %v", err)
		return
	}

	s.billID = receipt.Key
	s.fileURL = receipt.FileURL
	s.fileName = receipt.FileName
}

// HandleSubmit assembles the bill from the form's fields and the captured
// receipt metadata, sends it, and navigates to the bills listing regardless
// of the remote outcome.
func (s *Submission) HandleSubmit(ev *dom.SubmitEvent) {
	ev.PreventDefault()

	bill := model.Bill{
		Email:      s.ownerEmail(),
		Type:       inputValue(ev.Form, expenseTypeID),
		Name:       inputValue(ev.Form, expenseNameID),
		Amount:     parseInt(inputValue(ev.Form, amountInputID), 0),
		Date:       inputValue(ev.Form, datePickerID),
		VAT:        inputValue(ev.Form, vatInputID),
		Pct:        parseInt(inputValue(ev.Form, pctInputID), defaultPct),
		Commentary: inputValue(ev.Form, commentaryID),
		FileURL:    s.fileURL,
		FileName:   s.fileName,
		Status:     model.BillPending,
	}

	ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
	defer cancel()
	if err := s.bills.Update(ctx, s.billID, bill); err != nil {
		logrus.Errorf("update bill error: %v", err)
	}

	s.onNavigate(routes.Bills)
}

func (s *Submission) ownerEmail() string {
	raw, err := s.store.Get(storage.KeyUser)
	if err != nil {
		logrus.Errorf("read user error: %v", err)
		return ""
	}
	var user model.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		logrus.Errorf("read user error: %v", err)
		return ""
	}
	return user.Email
}

func inputValue(form *dom.Form, testID string) string {
	input := form.Input(testID)
	if input == nil {
		logrus.Errorf("input %s not found", testID)
		return ""
	}
	return input.Value()
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
