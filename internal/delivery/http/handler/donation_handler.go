package handler

import (
	"net/http"
	"strconv"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/usecase"
)

type DonationHandler struct {
	renderer        *Renderer
	donationUsecase usecase.DonationUsecase
}

func NewDonationHandler(renderer *Renderer, donationUsecase usecase.DonationUsecase) *DonationHandler {
	return &DonationHandler{
		renderer:        renderer,
		donationUsecase: donationUsecase,
	}
}

// Overview renders the donations page with a fresh or resumed donation form.
func (h *DonationHandler) Overview(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "donations", TitleKey: "Donations", FormID: formIDFromQuery(r)}

	overview, err := h.donationUsecase.Overview(r.Context())
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}
	draft, err := h.donationUsecase.Draft(r.Context(), page.FormID)
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = map[string]interface{}{
		"overview":        overview,
		"draft":           draft,
		"payment_methods": form.PaymentMethods,
	}
	h.renderer.Page(w, r, http.StatusOK, page)
}

// SelectQuickAmount sets the draft amount to one of the preset amounts.
func (h *DonationHandler) SelectQuickAmount(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "donation_draft", TitleKey: "Donations"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	amount, err := strconv.ParseInt(sub.Values.Get("amount"), 10, 64)
	if err != nil {
		h.renderer.Fail(w, r, page, form.ErrUnknownQuickAmount)
		return
	}

	draft, err := h.donationUsecase.SelectQuickAmount(r.Context(), sub.FormID, amount)
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = draft
	h.renderer.Page(w, r, http.StatusOK, page)
}

// EditAmount records a typed amount and clears the quick selection.
func (h *DonationHandler) EditAmount(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "donation_draft", TitleKey: "Donations"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	draft, err := h.donationUsecase.EditAmount(r.Context(), sub.FormID, sub.Values.Get("amount"))
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = draft
	h.renderer.Page(w, r, http.StatusOK, page)
}

// Donate handles the donation form
// @Summary Donate
// @Tags Donations
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 303 {object} response.RedirectBody
// @Failure 409 {object} dto.View
// @Failure 422 {object} dto.View
// @Router /donations [post]
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "donations", TitleKey: "Donations"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	if _, err := h.donationUsecase.Donate(r.Context(), sub.FormID, sub.Values); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	h.renderer.Redirect(w, "/donations")
}
