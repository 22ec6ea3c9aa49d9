// Package validation implements the rule set applied to inbound task payloads
// before they are allowed to mutate the store.
//
// A rule is a predicate over one field paired with the message reported when
// the predicate fails. The Validator runs every rule and aggregates the
// violations instead of stopping at the first failure.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// Rule checks one aspect of a task and reports zero or more violations.
type Rule interface {
	Check(t *domain.Task) []domain.FieldError
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(t *domain.Task) []domain.FieldError

// Check implements Rule.
func (f RuleFunc) Check(t *domain.Task) []domain.FieldError {
	return f(t)
}

// shared validator instance; it caches struct metadata and is safe for
// concurrent use.
var validate = validator.New()

// Predicate builds a rule from an arbitrary predicate. valid returns true
// when the task satisfies the rule.
func Predicate(field, message string, valid func(t *domain.Task) bool) Rule {
	return RuleFunc(func(t *domain.Task) []domain.FieldError {
		if valid(t) {
			return nil
		}
		return []domain.FieldError{{Field: field, Message: message}}
	})
}

// Field builds a rule that checks a single field value against a
// go-playground validator tag such as "gt=0" or "max=100".
func Field(field, tag, message string, value func(t *domain.Task) any) Rule {
	return RuleFunc(func(t *domain.Task) []domain.FieldError {
		if err := validate.Var(value(t), tag); err != nil {
			return []domain.FieldError{{Field: field, Message: message}}
		}
		return nil
	})
}

// Each builds a rule that applies tag to every element returned by values.
// Violations are reported per element as field[index].
func Each(field, tag, message string, values func(t *domain.Task) []string) Rule {
	return RuleFunc(func(t *domain.Task) []domain.FieldError {
		var errs []domain.FieldError
		for i, v := range values(t) {
			if err := validate.Var(v, tag); err != nil {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s[%d]", field, i),
					Message: message,
				})
			}
		}
		return errs
	})
}

// Length limits for task fields.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxTagLength         = 30
	MinPriority          = 1
	MaxPriority          = 5
)

// TitleRules returns the rules that apply to a task title. They are shared
// by full task validation and the title-only patch.
func TitleRules() []Rule {
	return []Rule{
		Predicate("title", "Please provide the title of the task.", func(t *domain.Task) bool {
			return strings.TrimSpace(t.Title) != ""
		}),
		Field("title", fmt.Sprintf("max=%d", MaxTitleLength),
			fmt.Sprintf("Title must be a maximum of %d characters.", MaxTitleLength),
			func(t *domain.Task) any { return t.Title }),
	}
}

// TaskRules returns the full rule set for a task payload. now supplies the
// reference instant for the deadline rule.
func TaskRules(now func() time.Time) []Rule {
	rules := []Rule{
		Field("id", "required", "ID is required.",
			func(t *domain.Task) any { return t.ID }),
		Field("id", "gt=0", "ID must be greater than 0.",
			func(t *domain.Task) any { return t.ID }),
	}
	rules = append(rules, TitleRules()...)
	rules = append(rules,
		Field("description", fmt.Sprintf("max=%d", MaxDescriptionLength),
			fmt.Sprintf("Description must not exceed %d characters.", MaxDescriptionLength),
			func(t *domain.Task) any { return t.Description }),
		Predicate("deadline", "Deadline must be today or a future date.", func(t *domain.Task) bool {
			return !t.Deadline.Before(domain.StartOfDay(now()))
		}),
		Field("isCompleted", "boolean", "This value must be either true or false.",
			func(t *domain.Task) any { return t.IsCompleted }),
		Field("priority", fmt.Sprintf("gte=%d,lte=%d", MinPriority, MaxPriority),
			fmt.Sprintf("Please prioritize the task with a number from %d to %d.", MinPriority, MaxPriority),
			func(t *domain.Task) any { return t.Priority }),
		Each("tags", fmt.Sprintf("max=%d", MaxTagLength),
			fmt.Sprintf("Each tag must not exceed %d characters.", MaxTagLength),
			func(t *domain.Task) []string { return t.Tags }),
	)
	return rules
}
