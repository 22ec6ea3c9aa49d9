package validation

import (
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// Validator applies an ordered rule list to tasks.
type Validator struct {
	rules []Rule
}

// New creates a Validator over the given rules.
func New(rules ...Rule) *Validator {
	return &Validator{rules: rules}
}

// NewTaskValidator creates a Validator with the standard task rules. A nil
// clock defaults to time.Now.
func NewTaskValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return New(TaskRules(now)...)
}

// NewTitleValidator creates a Validator that only checks the title.
func NewTitleValidator() *Validator {
	return New(TitleRules()...)
}

// Validate runs every rule against t. It returns nil when the task is valid
// and domain.ValidationErrors listing every violation otherwise.
func (v *Validator) Validate(t *domain.Task) error {
	var errs domain.ValidationErrors
	for _, r := range v.rules {
		errs = append(errs, r.Check(t)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
