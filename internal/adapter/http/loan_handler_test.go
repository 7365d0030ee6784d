package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	mw "inclusionnet/internal/adapter/middleware"
	domain "inclusionnet/internal/domain/loan"
	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/uow"
	"inclusionnet/internal/domain/user"
	"inclusionnet/internal/testutil/loanmock"
	"inclusionnet/internal/testutil/profilemock"
	"inclusionnet/internal/testutil/uowmock"
	uc "inclusionnet/internal/usecase/loan"
	"inclusionnet/internal/usecase/matching"
)

var (
	borrowerActor = user.Actor{ID: 10, Role: user.RoleBorrower}
	lenderActor   = user.Actor{ID: 20, Role: user.RoleLender}
	adminActor    = user.Actor{ID: 1, Role: user.RoleAdmin}
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// newCtx builds a context for a direct handler call. params alternate name, value.
func newCtx(e *echo.Echo, method, target string, body any, a user.Actor, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var req *stdhttp.Request
	if body != nil {
		req = httptest.NewRequest(method, target, mustJSON(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	mw.SetActor(c, a)
	return c, rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad json: %v (%s)", err, rec.Body.String())
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("bad data: %v (%s)", err, rec.Body.String())
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json: %v (%s)", err, rec.Body.String())
	}
	return out
}

func newLoanHandler(repo *loanmock.Repo, lenders *profilemock.LenderRepo) *LoanHandler {
	if lenders == nil {
		lenders = &profilemock.LenderRepo{}
	}
	loans := uc.NewUsecase(repo, &profilemock.BorrowerRepo{}, uowmock.Passthrough(uow.Repos{Loans: repo}))
	return NewLoanHandler(loans, matching.NewUsecase(repo, lenders))
}

func TestCreateLoan_Success(t *testing.T) {
	e := newEchoWithValidator()
	repo := &loanmock.Repo{CreateFn: func(_ context.Context, a *domain.Application) error { a.ID = 9; return nil }}
	h := newLoanHandler(repo, nil)

	c, rec := newCtx(e, stdhttp.MethodPost, "/api/loans", map[string]any{
		"loanAmount": 150000, "loanTenureMonths": 24, "loanPurpose": "working capital",
	}, borrowerActor)
	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	var got uc.LoanDTO
	decodeData(t, rec, &got)
	if got.ID != 9 || got.BorrowerID != 10 || got.LoanAmount != 150000 || got.Status != domain.StatusPending {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestCreateLoan_ValidationAndConflicts(t *testing.T) {
	e := newEchoWithValidator()
	tests := []struct {
		name   string
		body   map[string]any
		repo   *loanmock.Repo
		actor  user.Actor
		status int
		field  string
	}{
		{"zero amount", map[string]any{"loanAmount": 0, "loanTenureMonths": 12, "loanPurpose": "x"}, &loanmock.Repo{}, borrowerActor, stdhttp.StatusBadRequest, "loanAmount"},
		{"three decimals", map[string]any{"loanAmount": 10.555, "loanTenureMonths": 12, "loanPurpose": "x"}, &loanmock.Repo{}, borrowerActor, stdhttp.StatusBadRequest, "loanAmount"},
		{"missing purpose", map[string]any{"loanAmount": 100, "loanTenureMonths": 12}, &loanmock.Repo{}, borrowerActor, stdhttp.StatusBadRequest, "loanPurpose"},
		{"open application", map[string]any{"loanAmount": 100, "loanTenureMonths": 12, "loanPurpose": "x"}, &loanmock.Repo{
			GetOpenByBorrowerFn: func(context.Context, uint64) (*domain.Application, error) {
				return &domain.Application{ID: 1, Status: domain.StatusPending}, nil
			},
		}, borrowerActor, stdhttp.StatusConflict, ""},
		{"lender forbidden", map[string]any{"loanAmount": 100, "loanTenureMonths": 12, "loanPurpose": "x"}, &loanmock.Repo{}, lenderActor, stdhttp.StatusForbidden, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newCtx(e, stdhttp.MethodPost, "/api/loans", tt.body, tt.actor)
			if err := newLoanHandler(tt.repo, nil).CreateLoan(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
			if tt.field != "" {
				if er := decodeError(t, rec); len(er.Details) == 0 || er.Details[0].Field != tt.field {
					t.Fatalf("details = %+v, want field %s", er.Details, tt.field)
				}
			}
		})
	}
}

func TestGetLoan(t *testing.T) {
	e := newEchoWithValidator()
	repo := &loanmock.Repo{GetByIDFn: func(_ context.Context, id uint64) (*domain.Application, error) {
		if id == 7 {
			return &domain.Application{ID: 7, BorrowerID: 10, LoanAmount: 1000, LoanTenureMonths: 6, Status: domain.StatusPending}, nil
		}
		return nil, domain.ErrNotFound
	}}
	h := newLoanHandler(repo, nil)

	tests := []struct {
		id     string
		actor  user.Actor
		status int
	}{
		{"7", borrowerActor, stdhttp.StatusOK},
		{"7", lenderActor, stdhttp.StatusOK},
		{"7", user.Actor{ID: 11, Role: user.RoleBorrower}, stdhttp.StatusForbidden},
		{"8", adminActor, stdhttp.StatusNotFound},
		{"abc", adminActor, stdhttp.StatusBadRequest},
		{"0", adminActor, stdhttp.StatusBadRequest},
	}
	for _, tt := range tests {
		c, rec := newCtx(e, stdhttp.MethodGet, "/api/loans/"+tt.id, nil, tt.actor, "id", tt.id)
		if err := h.GetLoan(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != tt.status {
			t.Fatalf("GET %s as %s: status = %d, want %d", tt.id, tt.actor.Role, rec.Code, tt.status)
		}
	}
}

func TestUpdateStatus_TerminalIsConflict(t *testing.T) {
	e := newEchoWithValidator()
	repo := &loanmock.Repo{GetByIDFn: func(context.Context, uint64) (*domain.Application, error) {
		return &domain.Application{ID: 7, Status: domain.StatusRejected}, nil
	}}
	c, rec := newCtx(e, stdhttp.MethodPatch, "/api/admin/loans/7/status", map[string]any{"status": "APPROVED"}, adminActor, "id", "7")
	if err := newLoanHandler(repo, nil).UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409 (%s)", rec.Code, rec.Body.String())
	}
}

func TestMatchingLenders_Envelope(t *testing.T) {
	e := newEchoWithValidator()
	repo := &loanmock.Repo{GetByIDFn: func(context.Context, uint64) (*domain.Application, error) {
		return &domain.Application{ID: 7, BorrowerID: 10, LoanAmount: 1000}, nil
	}}
	var gotTake int
	lenders := &profilemock.LenderRepo{ListMatchingFn: func(_ context.Context, f profile.LenderMatch) ([]profile.LenderProfile, error) {
		gotTake = f.Page.Take
		return []profile.LenderProfile{
			{ID: 3, AvailableFunds: 5000, InterestRate: 2},
			{ID: 4, AvailableFunds: 1000, InterestRate: 20},
		}, nil
	}}

	c, rec := newCtx(e, stdhttp.MethodGet, "/api/loans/7/matching-lenders?take=1&maxInterestRate=24", nil, borrowerActor, "id", "7")
	if err := newLoanHandler(repo, lenders).MatchingLenders(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}
	var page struct {
		Items      []matching.LenderMatchDTO `json:"items"`
		NextCursor *uint64                   `json:"nextCursor"`
	}
	decodeData(t, rec, &page)
	if gotTake != 1 || len(page.Items) != 1 || page.NextCursor == nil || *page.NextCursor != 3 {
		t.Fatalf("unexpected page %+v (take %d)", page, gotTake)
	}
	if page.Items[0].MatchProbability != matching.ProbabilityHigh {
		t.Fatalf("probability = %s", page.Items[0].MatchProbability)
	}

	c, rec = newCtx(e, stdhttp.MethodGet, "/api/loans/7/matching-lenders?cursorId=-1", nil, borrowerActor, "id", "7")
	_ = newLoanHandler(repo, lenders).MatchingLenders(c)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("bad cursor status = %d", rec.Code)
	}
}
