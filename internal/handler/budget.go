package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/tripweaver/backend/internal/domain"
)

type createCategoryRequest struct {
	Name          string          `json:"name"`
	PlannedAmount decimal.Decimal `json:"planned_amount"`
	Color         *string         `json:"color"`
}

type updateCategoryRequest struct {
	Name          *string          `json:"name"`
	PlannedAmount *decimal.Decimal `json:"planned_amount"`
	Color         *string          `json:"color"`
}

type categoryResponse struct {
	ID            uuid.UUID       `json:"id"`
	TripID        uuid.UUID       `json:"trip_id"`
	Name          string          `json:"name"`
	PlannedAmount decimal.Decimal `json:"planned_amount"`
	Color         *string         `json:"color"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type createExpenseRequest struct {
	CategoryID   *uuid.UUID          `json:"category_id"`
	Amount       decimal.Decimal     `json:"amount"`
	CurrencyCode *string             `json:"currency_code"`
	SpentOn      *openapi_types.Date `json:"spent_on"`
	Description  *string             `json:"description"`
}

type expenseResponse struct {
	ID           uuid.UUID           `json:"id"`
	TripID       uuid.UUID           `json:"trip_id"`
	CategoryID   *uuid.UUID          `json:"category_id"`
	CategoryName *string             `json:"category_name"`
	Amount       decimal.Decimal     `json:"amount"`
	CurrencyCode *string             `json:"currency_code"`
	SpentOn      *openapi_types.Date `json:"spent_on"`
	Description  *string             `json:"description"`
	CreatedAt    time.Time           `json:"created_at"`
}

type budgetTotalsResponse struct {
	PlannedTotal   decimal.Decimal `json:"planned_total"`
	ActualTotal    decimal.Decimal `json:"actual_total"`
	RemainingTotal decimal.Decimal `json:"remaining_total"`
}

type categorySummaryResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	PlannedAmount   decimal.Decimal `json:"planned_amount"`
	ActualAmount    decimal.Decimal `json:"actual_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

type budgetSummaryResponse struct {
	TripID     uuid.UUID                 `json:"trip_id"`
	Totals     budgetTotalsResponse      `json:"totals"`
	ByCategory []categorySummaryResponse `json:"by_category"`
}

// CreateBudgetCategory handles POST /trips/{tripID}/budget/categories.
func (s *Server) CreateBudgetCategory(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	var req createCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.budget.CreateCategory(r.Context(), domain.BudgetCategory{
		TripID:        tripID,
		Name:          req.Name,
		PlannedAmount: req.PlannedAmount,
		Color:         req.Color,
	})
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, categoryToResponse(created))
}

// ListBudgetCategories handles GET /trips/{tripID}/budget/categories.
func (s *Server) ListBudgetCategories(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	cats, err := s.budget.ListCategories(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = categoryToResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateBudgetCategory handles PATCH /trips/{tripID}/budget/categories/{categoryID}.
// Only the fields present in the body are changed.
func (s *Server) UpdateBudgetCategory(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}
	catID, ok := pathUUID(r, "categoryID")
	if !ok {
		writeNotFound(w, "category not found")
		return
	}

	var req updateCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := s.budget.UpdateCategory(r.Context(), tripID, catID, domain.BudgetCategoryPatch{
		Name:          req.Name,
		PlannedAmount: req.PlannedAmount,
		Color:         req.Color,
	})
	if err != nil {
		writeError(w, err, budgetNotFoundMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, categoryToResponse(updated))
}

// DeleteBudgetCategory handles DELETE /trips/{tripID}/budget/categories/{categoryID}.
// Expenses of the category remain and become uncategorized.
func (s *Server) DeleteBudgetCategory(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}
	catID, ok := pathUUID(r, "categoryID")
	if !ok {
		writeNotFound(w, "category not found")
		return
	}

	if err := s.budget.DeleteCategory(r.Context(), tripID, catID); err != nil {
		writeError(w, err, budgetNotFoundMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Category deleted"})
}

// CreateBudgetExpense handles POST /trips/{tripID}/budget/expenses.
func (s *Server) CreateBudgetExpense(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	var req createExpenseRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.budget.CreateExpense(r.Context(), domain.BudgetExpense{
		TripID:       tripID,
		CategoryID:   req.CategoryID,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		SpentOn:      fromDate(req.SpentOn),
		Description:  req.Description,
	})
	if err != nil {
		writeError(w, err, budgetNotFoundMessage(err))
		return
	}

	writeJSON(w, http.StatusCreated, expenseToResponse(created))
}

// ListBudgetExpenses handles GET /trips/{tripID}/budget/expenses.
// Each expense carries its denormalized category_name for display.
func (s *Server) ListBudgetExpenses(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	exps, err := s.budget.ListExpenses(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	resp := make([]expenseResponse, len(exps))
	for i, e := range exps {
		resp[i] = expenseToResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteBudgetExpense handles DELETE /trips/{tripID}/budget/expenses/{expenseID}.
func (s *Server) DeleteBudgetExpense(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}
	expID, ok := pathUUID(r, "expenseID")
	if !ok {
		writeNotFound(w, "expense not found")
		return
	}

	if err := s.budget.DeleteExpense(r.Context(), tripID, expID); err != nil {
		writeError(w, err, expenseNotFoundMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Expense deleted"})
}

// GetBudgetSummary handles GET /trips/{tripID}/budget/summary.
func (s *Server) GetBudgetSummary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	summary, err := s.budget.Summary(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	byCategory := make([]categorySummaryResponse, len(summary.ByCategory))
	for i, c := range summary.ByCategory {
		byCategory[i] = categorySummaryResponse{
			ID:              c.ID,
			Name:            c.Name,
			PlannedAmount:   c.PlannedAmount,
			ActualAmount:    c.ActualAmount,
			RemainingAmount: c.RemainingAmount,
		}
	}

	writeJSON(w, http.StatusOK, budgetSummaryResponse{
		TripID: summary.TripID,
		Totals: budgetTotalsResponse{
			PlannedTotal:   summary.Totals.PlannedTotal,
			ActualTotal:    summary.Totals.ActualTotal,
			RemainingTotal: summary.Totals.RemainingTotal,
		},
		ByCategory: byCategory,
	})
}

// budgetNotFoundMessage picks the 404 message for budget writes: the missing
// record may be the trip or the category. The service wraps the lookup that
// failed into the error text.
func budgetNotFoundMessage(err error) string {
	if strings.Contains(err.Error(), "BudgetCategoryRepo") {
		return "category not found"
	}
	return "trip not found"
}

// expenseNotFoundMessage distinguishes a missing trip from a missing expense.
func expenseNotFoundMessage(err error) string {
	if strings.Contains(err.Error(), "BudgetExpenseRepo") {
		return "expense not found"
	}
	return "trip not found"
}

func categoryToResponse(c domain.BudgetCategory) categoryResponse {
	return categoryResponse{
		ID:            c.ID,
		TripID:        c.TripID,
		Name:          c.Name,
		PlannedAmount: c.PlannedAmount,
		Color:         c.Color,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func expenseToResponse(e domain.BudgetExpense) expenseResponse {
	return expenseResponse{
		ID:           e.ID,
		TripID:       e.TripID,
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		Amount:       e.Amount,
		CurrencyCode: e.CurrencyCode,
		SpentOn:      toDate(e.SpentOn),
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
	}
}
