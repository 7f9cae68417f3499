package view

import "github.com/shelter-admin/service-shelter-web/internal/notify"

// Nav entries, in menu order.
var Nav = []NavItem{
	{Key: "dashboard", Label: "Dashboard", Href: "/"},
	{Key: "animals", Label: "Animals", Href: "/animals"},
	{Key: "adopters", Label: "Adopters", Href: "/adopters"},
	{Key: "donors", Label: "Donors", Href: "/donors"},
	{Key: "employees", Label: "Employees", Href: "/employees"},
	{Key: "shelters", Label: "Shelters", Href: "/shelters"},
	{Key: "reports", Label: "Reports", Href: "/reports"},
}

// NavItem is one menu link.
type NavItem struct {
	Key   string
	Label string
	Href  string
}

// Page is the data every page template receives.
//
// Form holds the values of a create form that was rejected, so the inputs
// keep what the user typed. FadeMS is how long a transient notice stays on
// screen; zero leaves the stylesheet default.
type Page struct {
	Title   string
	Active  string
	Path    string
	Nav     []NavItem
	Notice  *notify.Notice
	Dialog  *Dialog
	Region  Region
	Reports []ReportSection
	Form    map[string]string
	FadeMS  int64
}

// Value is the submitted value of form field key, or "".
func (p Page) Value(key string) string {
	return p.Form[key]
}

// NewPage fills the layout fields shared by every page.
func NewPage(title, active, path string) Page {
	return Page{Title: title, Active: active, Path: path, Nav: Nav}
}

// Prompt is the single input of a prompt dialog.
type Prompt struct {
	Name  string
	Label string
	Value string
}

// Dialog is a modal rendered open. Without a Prompt it is a yes/no confirm.
// Submitting posts Hidden, action=Op and confirm=yes to Action; dismissing
// posts action=cancel, which makes no backend call.
type Dialog struct {
	Title       string
	Message     string
	Action      string
	Op          string
	Hidden      map[string]string
	Prompt      *Prompt
	SubmitLabel string
}

// ConfirmDialog asks a yes/no question before a row action.
func ConfirmDialog(action, op, message string, hidden map[string]string) *Dialog {
	return &Dialog{
		Title:       "Please confirm",
		Message:     message,
		Action:      action,
		Op:          op,
		Hidden:      hidden,
		SubmitLabel: "OK",
	}
}

// PromptDialog asks for one value before a row action.
func PromptDialog(action, op, message string, hidden map[string]string, p Prompt) *Dialog {
	return &Dialog{
		Title:       "Update",
		Message:     message,
		Action:      action,
		Op:          op,
		Hidden:      hidden,
		Prompt:      &p,
		SubmitLabel: "OK",
	}
}

// ReportSection is one titled report on the reports page.
type ReportSection struct {
	Title  string
	Region Region
}
