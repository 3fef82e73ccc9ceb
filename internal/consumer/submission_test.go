package consumer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/billed-app/billed-client/internal/dom"
	"github.com/billed-app/billed-client/internal/model"
	"github.com/billed-app/billed-client/internal/remote"
	"github.com/billed-app/billed-client/internal/remote/mocks"
	"github.com/billed-app/billed-client/internal/routes"
	"github.com/billed-app/billed-client/internal/service"
	"github.com/billed-app/billed-client/internal/storage"
)

func newBillDocument(t *testing.T) *dom.Document {
	t.Helper()
	document := dom.NewDocument()

	form := document.AddForm(formNewBillID)
	for _, id := range []string{expenseTypeID, expenseNameID, datePickerID, amountInputID, vatInputID, pctInputID, commentaryID, fileInputID} {
		form.AddInput(id)
	}

	return document
}

func connectedStore(t *testing.T, email string) *storage.Memory {
	t.Helper()
	store := storage.NewMemory()
	require.NoError(t, store.Set(storage.KeyUser, `{"type":"Employee","email":"`+email+`","status":"connected"}`))
	return store
}

func TestSubmission_AcceptsJpgReceipt(t *testing.T) {
	document := newBillDocument(t)
	store := connectedStore(t, "john@billed.test")

	billsAPI := mocks.NewBills(t)
	billsAPI.On("CreateWithReceipt", mock.Anything, "john@billed.test", "test.jpg", mock.Anything).
		Return(remote.Receipt{Key: "key-1", FileURL: "https://localhost/storage/test.jpg", FileName: "test.jpg"}, nil).Once()

	client := mocks.NewClient(t)
	client.On("Bills").Return(billsAPI).Once()

	NewSubmission(document, store, func(string) {}, service.NewBills(client))

	fileInput := document.Form(formNewBillID).Input(fileInputID)
	fileInput.SetFiles(dom.File{Name: "test.jpg", MIMEType: "image/jpg", Content: []byte("img")})
	fileInput.Change()

	// The file stays attached.
	require.Equal(t, "test.jpg", fileInput.Value())
	require.Len(t, fileInput.Files(), 1)
}

func TestSubmission_RejectsPdfReceipt(t *testing.T) {
	document := newBillDocument(t)
	store := connectedStore(t, "john@billed.test")

	var alerts []string
	document.SetAlert(func(msg string) { alerts = append(alerts, msg) })

	// Zero expectations: any remote call would fail the test.
	client := mocks.NewClient(t)

	NewSubmission(document, store, func(string) {}, service.NewBills(client))

	fileInput := document.Form(formNewBillID).Input(fileInputID)
	fileInput.SetFiles(dom.File{Name: "test.pdf", MIMEType: "application/pdf", Content: []byte("doc")})
	fileInput.Change()

	require.Equal(t, "", fileInput.Value())
	require.Empty(t, fileInput.Files())
	require.Len(t, alerts, 1)
}

func TestSubmission_SubmitAssemblesBillAndNavigates(t *testing.T) {
	document := newBillDocument(t)
	store := connectedStore(t, "john@billed.test")

	var navigated []string

	billsAPI := mocks.NewBills(t)
	billsAPI.On("CreateWithReceipt", mock.Anything, "john@billed.test", "test.jpg", mock.Anything).
		Return(remote.Receipt{Key: "key-1", FileURL: "https://localhost/storage/test.jpg", FileName: "test.jpg"}, nil).Once()
	billsAPI.On("Update", mock.Anything, "key-1", model.Bill{
		Email:      "john@billed.test",
		Type:       "Transports",
		Name:       "flight to berlin",
		Amount:     348,
		Date:       "2024-04-02",
		VAT:        "70",
		Pct:        20,
		Commentary: "quarterly review",
		FileURL:    "https://localhost/storage/test.jpg",
		FileName:   "test.jpg",
		Status:     model.BillPending,
	}).Return(nil).Once()

	client := mocks.NewClient(t)
	client.On("Bills").Return(billsAPI).Twice()

	NewSubmission(document, store, func(path string) { navigated = append(navigated, path) }, service.NewBills(client))

	form := document.Form(formNewBillID)
	fileInput := form.Input(fileInputID)
	fileInput.SetFiles(dom.File{Name: "test.jpg", MIMEType: "image/jpg", Content: []byte("img")})
	fileInput.Change()

	form.Input(expenseTypeID).SetValue("Transports")
	form.Input(expenseNameID).SetValue("flight to berlin")
	form.Input(datePickerID).SetValue("2024-04-02")
	form.Input(amountInputID).SetValue("348")
	form.Input(vatInputID).SetValue("70")
	form.Input(pctInputID).SetValue("") // falls back to 20
	form.Input(commentaryID).SetValue("quarterly review")
	form.Submit()

	require.Equal(t, []string{routes.Bills}, navigated)
}

func TestSubmission_SubmitNavigatesEvenWhenRemoteFails(t *testing.T) {
	document := newBillDocument(t)
	store := connectedStore(t, "john@billed.test")

	var navigated []string

	billsAPI := mocks.NewBills(t)
	billsAPI.On("Update", mock.Anything, "", mock.Anything).Return(errors.New("backend down")).Once()

	client := mocks.NewClient(t)
	client.On("Bills").Return(billsAPI).Once()

	NewSubmission(document, store, func(path string) { navigated = append(navigated, path) }, service.NewBills(client))

	document.Form(formNewBillID).Submit()

	require.Equal(t, []string{routes.Bills}, navigated)
}

func TestSubmission_UploadFailureIsNonFatal(t *testing.T) {
	document := newBillDocument(t)
	store := connectedStore(t, "john@billed.test")

	billsAPI := mocks.NewBills(t)
	billsAPI.On("CreateWithReceipt", mock.Anything, "john@billed.test", "test.png", mock.Anything).
		Return(remote.Receipt{}, errors.New("backend down")).Once()

	client := mocks.NewClient(t)
	client.On("Bills").Return(billsAPI).Once()

	s := NewSubmission(document, store, func(string) {}, service.NewBills(client))

	fileInput := document.Form(formNewBillID).Input(fileInputID)
	fileInput.SetFiles(dom.File{Name: "test.png", MIMEType: "image/png", Content: []byte("img")})
	fileInput.Change()

	// No attachment metadata was captured; the record stays incomplete.
	require.Empty(t, s.billID)
	require.Empty(t, s.fileURL)
	require.Empty(t, s.fileName)
}

func TestSubmission_MissingForm_NonFatal(t *testing.T) {
	document := dom.NewDocument()
	store := connectedStore(t, "john@billed.test")

	require.NotPanics(t, func() {
		NewSubmission(document, store, func(string) {}, service.NewBills(nil))
	})
}
