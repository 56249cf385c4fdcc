package serializers

import (
	"strings"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

const (
	FieldPosition  = "position"
	FieldCompany   = "company"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
)

// ExperienceRequest is the decoded body of an experience create or update.
type ExperienceRequest struct {
	Position  Optional[string]
	Company   Optional[string]
	StartDate Optional[string]
	EndDate   Optional[string]

	errs *domain.ValidationError
}

func DecodeExperience(body []byte) (*ExperienceRequest, error) {
	fields, err := decodeFields(body)
	if err != nil {
		return nil, err
	}
	verr := domain.NewValidationError()
	return &ExperienceRequest{
		Position:  field[string](fields, FieldPosition, verr, MsgNotString),
		Company:   field[string](fields, FieldCompany, verr, MsgNotString),
		StartDate: field[string](fields, FieldStartDate, verr, MsgDateFormat),
		EndDate:   field[string](fields, FieldEndDate, verr, MsgDateFormat),
		errs:      verr,
	}, nil
}

// Apply mirrors ProjectRequest.Apply. An empty or null end_date marks the entry ongoing.
func (r *ExperienceRequest) Apply(e *domain.Experience, partial bool) error {
	verr := r.errs
	if verr == nil {
		verr = domain.NewValidationError()
	}

	if requireField(r.Position, FieldPosition, partial, verr) {
		e.Position = strings.TrimSpace(r.Position.Value)
	}
	if requireField(r.Company, FieldCompany, partial, verr) {
		e.Company = strings.TrimSpace(r.Company.Value)
	}
	if requireField(r.StartDate, FieldStartDate, partial, verr) {
		if d, err := domain.ParseDate(r.StartDate.Value); err != nil {
			verr.Add(FieldStartDate, MsgDateFormat)
		} else {
			e.StartDate = d
		}
	}
	if r.EndDate.Set && !verr.Has(FieldEndDate) {
		switch {
		case !r.EndDate.Present() || r.EndDate.Value == "":
			e.EndDate = nil
		default:
			d, err := domain.ParseDate(r.EndDate.Value)
			if err != nil {
				verr.Add(FieldEndDate, MsgDateFormat)
				break
			}
			e.EndDate = &d
		}
	}

	// Date ordering is meaningless when either date failed to parse.
	if verr.Has(FieldStartDate) || verr.Has(FieldEndDate) {
		snapshot := *e
		snapshot.EndDate = nil
		if err := check(&snapshot, verr); err != nil {
			return err
		}
		return verr.OrNil()
	}
	if err := check(e, verr); err != nil {
		return err
	}
	return verr.OrNil()
}
