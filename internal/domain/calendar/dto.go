package calendar

import (
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

type CreateOverrideRequest struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (r *CreateOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, []string{StatusOff, StatusWorking}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either 'off' or 'working'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListOverridesRequest struct {
	From string
	To   string
}

func (r *ListOverridesRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OverrideResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Note   string `json:"note"`
}
