package controller

import (
	"errors"
	"fmt"

	"minshuku/config"
	"minshuku/domain"
)

// report turns err into a notice on n and tells whether the record involved is gone.
func report(n Notifier, action string, err error) (missing bool) {
	var (
		ve *domain.ValidationError
		ue *domain.UniquenessError
	)
	switch {
	case errors.As(err, &ve):
		n.Notify(Notice{Severity: SeverityWarning, Title: "Validation", Message: ve.First()})
	case errors.As(err, &ue):
		n.Notify(Notice{Severity: SeverityWarning, Title: "Validation", Message: ue.Error()})
	case errors.Is(err, domain.ErrNotFound):
		n.Notify(Notice{Severity: SeverityError, Title: "Error", Message: err.Error()})
		return true
	default:
		config.GetLogrusInstance().WithError(err).WithField("action", action).Error("storage failure")
		n.Notify(Notice{Severity: SeverityError, Title: "Error", Message: fmt.Sprintf("%s: %v", action, err)})
	}
	return false
}

func saved(n Notifier) {
	n.Notify(Notice{Severity: SeverityInfo, Title: "Saved", Message: "Changes saved"})
}
