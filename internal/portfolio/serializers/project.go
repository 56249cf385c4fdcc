package serializers

import (
	"strings"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

// Writable project fields. id and created_at are read-only and ignored on input.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLink        = "link"
)

// ProjectRequest is the decoded body of a project create or update.
type ProjectRequest struct {
	Title       Optional[string]
	Description Optional[string]
	Link        Optional[string]

	errs *domain.ValidationError
}

// DecodeProject reads a project payload. Type errors are kept and reported by Apply.
func DecodeProject(body []byte) (*ProjectRequest, error) {
	fields, err := decodeFields(body)
	if err != nil {
		return nil, err
	}
	verr := domain.NewValidationError()
	return &ProjectRequest{
		Title:       field[string](fields, FieldTitle, verr, MsgNotString),
		Description: field[string](fields, FieldDescription, verr, MsgNotString),
		Link:        field[string](fields, FieldLink, verr, MsgNotString),
		errs:        verr,
	}, nil
}

// Apply writes the request onto p and validates the result. With partial set, absent
// fields keep their current value; otherwise every required field must be present.
// Text fields are trimmed, so a value of only spaces counts as blank.
// The returned error is a *domain.ValidationError when the payload is rejected.
func (r *ProjectRequest) Apply(p *domain.Project, partial bool) error {
	verr := r.errs
	if verr == nil {
		verr = domain.NewValidationError()
	}

	if requireField(r.Title, FieldTitle, partial, verr) {
		p.Title = strings.TrimSpace(r.Title.Value)
	}
	if requireField(r.Description, FieldDescription, partial, verr) {
		p.Description = strings.TrimSpace(r.Description.Value)
	}
	if r.Link.Set && !verr.Has(FieldLink) {
		p.Link = nil
		if link := strings.TrimSpace(r.Link.Value); r.Link.Present() && link != "" {
			p.Link = &link
		}
	}

	if err := check(p, verr); err != nil {
		return err
	}
	return verr.OrNil()
}
