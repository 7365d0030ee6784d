package http

import (
	"errors"
	"strings"
	"testing"

	"inclusionnet/internal/usecase/auth"
	"inclusionnet/internal/usecase/eligibility"
	"inclusionnet/internal/usecase/profile"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func strPtr(s string) *string { return &s }

func TestDec2Validation(t *testing.T) {
	type P struct {
		Rate float64 `json:"rate" validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{1.29, 2.00, 0.9, 150000.55} {
		if err := cv.Validate(P{Rate: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Rate: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "rate", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestRiskValidation(t *testing.T) {
	cv := NewValidator()
	for _, rc := range []string{"Low", "medium", "HIGH"} {
		if err := cv.Validate(profile.BorrowerInput{MonthlyIncome: 50000, RiskCategory: strPtr(rc)}); err != nil {
			t.Fatalf("risk %q should pass: %v", rc, err)
		}
	}
	if err := cv.Validate(profile.BorrowerInput{MonthlyIncome: 50000}); err != nil {
		t.Fatalf("absent risk should pass: %v", err)
	}
	err := cv.Validate(profile.BorrowerInput{MonthlyIncome: 50000, RiskCategory: strPtr("Extreme")})
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "riskCategory", "Low, Medium, High") {
		t.Fatalf("expected risk message, got %+v", fe)
	}
}

func TestRegisterInputMapping(t *testing.T) {
	err := NewValidator().Validate(auth.RegisterInput{Name: "A", Email: "nope", Password: "short", Role: "ADMIN"})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fe := ToFieldErrors(err)
	for _, want := range []struct{ field, msg string }{
		{"name", "length must be at least 2"},
		{"email", "valid email"},
		{"password", "length must be at least 8"},
		{"role", "one of BORROWER LENDER"},
	} {
		if !containsFieldMsg(fe, want.field, want.msg) {
			t.Fatalf("missing %q for %s: %+v", want.msg, want.field, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string  `json:"name" validate:"required"`
		Min  int     `json:"min" validate:"gte=10"`
		Max  int     `json:"max" validate:"lte=5"`
		Pos  float64 `json:"pos" validate:"gt=0"`
	}
	fe := ToFieldErrors(NewValidator().Validate(P{Min: 9, Max: 6}))

	if !containsFieldMsg(fe, "name", "is required") {
		t.Fatalf("missing 'is required' for name: %+v", fe)
	}
	if !containsFieldMsg(fe, "min", "greater than or equal to 10") {
		t.Fatalf("missing gte message: %+v", fe)
	}
	if !containsFieldMsg(fe, "max", "less than or equal to 5") {
		t.Fatalf("missing lte message: %+v", fe)
	}
	if !containsFieldMsg(fe, "pos", "greater than 0") {
		t.Fatalf("missing gt message: %+v", fe)
	}
}

func TestEligibilityInputBounds(t *testing.T) {
	v := NewValidator()
	zero := 0.0
	if err := v.Validate(eligibility.Input{MonthlyIncome: 50000, TenureMonths: 12, AnnualInterestRate: &zero}); err != nil {
		t.Fatalf("explicit zero rate rejected: %v", err)
	}

	negative := -1.0
	fe := ToFieldErrors(v.Validate(eligibility.Input{
		MonthlyIncome: 1e20, ExistingEMI: 1e20, TenureMonths: 12, AnnualInterestRate: &negative,
	}))
	if !containsFieldMsg(fe, "monthlyIncome", "less than or equal to") {
		t.Fatalf("missing income bound: %+v", fe)
	}
	if !containsFieldMsg(fe, "existingEMI", "less than or equal to") {
		t.Fatalf("missing existing emi bound: %+v", fe)
	}
	if !containsFieldMsg(fe, "annualInterestRate", "greater than or equal to 0") {
		t.Fatalf("missing rate bound: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}
