package handler

import (
	"net/http"

	"github.com/google/uuid"

	"charity-care-portal/internal/delivery/form"
)

// readSubmission decodes the body or renders page with a bad request notice.
func (rd *Renderer) readSubmission(w http.ResponseWriter, r *http.Request, page *Page) (*form.Submission, bool) {
	sub, err := form.ReadSubmission(r)
	if err != nil {
		rd.Fail(w, r, *page, err)
		return nil, false
	}
	page.FormID = sub.FormID
	return sub, true
}

// newFormID names a fresh form instance for the submit lock and staged state.
func newFormID() string {
	return uuid.NewString()
}

// formIDFromQuery lets GET requests resume an existing form instance.
func formIDFromQuery(r *http.Request) string {
	if id := r.URL.Query().Get(form.FormIDField); id != "" {
		return id
	}
	if id := r.Header.Get(form.FormIDHeader); id != "" {
		return id
	}
	return newFormID()
}
