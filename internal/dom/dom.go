// Package dom is the document surface the containers are constructed with: a
// registry of forms looked up by test id, labeled inputs scoped to their form,
// and synchronous submit/change event dispatch. The host fills it in for real
// pages; tests fill it in for fixtures.
package dom

// File is one selected file on a file input.
type File struct {
	Name     string
	MIMEType string
	Content  []byte
}

// SubmitEvent is delivered to submit listeners of the form it originated from.
type SubmitEvent struct {
	Form *Form

	defaultPrevented bool
}

// PreventDefault suppresses the default form action.
func (e *SubmitEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *SubmitEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// ChangeEvent is delivered to change listeners of the input that changed.
type ChangeEvent struct {
	Input *Input
}

// Input is a labeled form field. File inputs additionally carry selected files.
type Input struct {
	value    string
	files    []File
	onChange []func(*ChangeEvent)
}

// Value returns the current field value.
func (in *Input) Value() string {
	return in.value
}

// SetValue replaces the field value. Clearing it drops any selected files, the
// way resetting a file input detaches its file.
func (in *Input) SetValue(v string) {
	in.value = v
	if v == "" {
		in.files = nil
	}
}

// SetFiles attaches files to the input and mirrors the first name into the
// value.
func (in *Input) SetFiles(files ...File) {
	in.files = files
	if len(files) > 0 {
		in.value = files[0].Name
	}
}

// Files returns the selected files, nil for non-file inputs.
func (in *Input) Files() []File {
	return in.files
}

// OnChange registers a change listener. Listeners are appended, never
// de-duplicated: registering twice delivers twice.
func (in *Input) OnChange(fn func(*ChangeEvent)) {
	in.onChange = append(in.onChange, fn)
}

// Change dispatches a change event to every registered listener, in
// registration order, on the caller's goroutine.
func (in *Input) Change() {
	ev := &ChangeEvent{Input: in}
	for _, fn := range in.onChange {
		fn(ev)
	}
}

// Form groups inputs under one test id and owns its submit listeners.
type Form struct {
	inputs   map[string]*Input
	onSubmit []func(*SubmitEvent)
}

// AddInput creates and registers an input scoped to this form.
func (f *Form) AddInput(testID string) *Input {
	in := &Input{}
	f.inputs[testID] = in
	return in
}

// Input looks an input up within this form's subtree only. Returns nil when
// the form has no such input.
func (f *Form) Input(testID string) *Input {
	return f.inputs[testID]
}

// OnSubmit registers a submit listener. Listeners are appended, never
// de-duplicated: registering twice delivers twice.
func (f *Form) OnSubmit(fn func(*SubmitEvent)) {
	f.onSubmit = append(f.onSubmit, fn)
}

// Submit dispatches a submit event to every registered listener, in
// registration order, on the caller's goroutine. Any store write a listener
// makes is therefore visible before Submit returns.
func (f *Form) Submit() *SubmitEvent {
	ev := &SubmitEvent{Form: f}
	for _, fn := range f.onSubmit {
		fn(ev)
	}
	return ev
}

// Body is the page body; containers reset its background when leaving the
// login-error state.
type Body struct {
	BackgroundColor string
}

// Document is the page the containers bind to.
type Document struct {
	Body *Body

	forms map[string]*Form
	alert func(string)
}

// NewDocument returns an empty document with a default alert that discards
// messages.
func NewDocument() *Document {
	return &Document{
		Body:  &Body{},
		forms: make(map[string]*Form),
		alert: func(string) {},
	}
}

// AddForm creates and registers a form under testID.
func (d *Document) AddForm(testID string) *Form {
	f := &Form{inputs: make(map[string]*Input)}
	d.forms[testID] = f
	return f
}

// Form looks a form up by test id. Returns nil when the page has no such form.
func (d *Document) Form(testID string) *Form {
	return d.forms[testID]
}

// SetAlert installs the host's blocking-alert hook.
func (d *Document) SetAlert(fn func(msg string)) {
	if fn != nil {
		d.alert = fn
	}
}

// Alert signals the user through the host's alert hook.
func (d *Document) Alert(msg string) {
	d.alert(msg)
}
