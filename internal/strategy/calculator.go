package strategy

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/bobmcallan/investiq/internal/models"
)

// ErrInvalidRequest wraps request validation failures.
var ErrInvalidRequest = errors.New("invalid strategy request")

// Request is the calculator input.
type Request struct {
	RiskTolerance models.RiskTolerance `json:"risk_tolerance" validate:"required,oneof=low medium high"`
	Amount        decimal.Decimal      `json:"amount" validate:"gt=0,lte=1000000000"`
	Years         int                  `json:"years" validate:"gte=1,lte=100"`
}

var (
	hundred  = decimal.NewFromInt(100)
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Validate decimals by their float value so numeric tags apply.
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			fl, _ := d.Float64()
			return fl
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate checks the request fields.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

// Calculate validates req and prices its strategy. Each breakdown amount is
// amount x percentage / 100 rounded to cents.
func Calculate(req Request) (*models.StrategyPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s, err := Lookup(req.RiskTolerance)
	if err != nil {
		return nil, err
	}

	breakdown := make([]models.AllocationAmount, 0, len(s.Allocation))
	for _, a := range s.Allocation {
		breakdown = append(breakdown, models.AllocationAmount{
			Asset:      a.Asset,
			Percentage: a.Percentage,
			Amount:     req.Amount.Mul(decimal.NewFromInt(int64(a.Percentage))).Div(hundred).Round(2),
		})
	}

	return &models.StrategyPlan{
		RiskTolerance: req.RiskTolerance,
		Strategy:      s,
		Amount:        req.Amount,
		Years:         req.Years,
		Breakdown:     breakdown,
		Projection: models.Projection{
			Low:  compound(req.Amount, s.MinReturnPct, req.Years),
			High: compound(req.Amount, s.MaxReturnPct, req.Years),
		},
		Disclaimer: models.DefaultDisclaimer,
	}, nil
}

// compound grows amount at pct percent a year for years, rounded to cents.
func compound(amount decimal.Decimal, pct, years int) decimal.Decimal {
	rate := decimal.NewFromInt(1).Add(decimal.NewFromInt(int64(pct)).Div(hundred))
	return amount.Mul(rate.Pow(decimal.NewFromInt(int64(years)))).Round(2)
}
