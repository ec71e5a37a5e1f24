package wellness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

// Wildcard is the form value that means "no constraint"
const Wildcard = "All"

// Constraint is an optional equality predicate. The zero value matches everything.
type Constraint[T comparable] struct {
	value T
	set   bool
}

// Any returns a constraint that matches every value
func Any[T comparable]() Constraint[T] {
	return Constraint[T]{}
}

// Only returns a constraint that matches v and nothing else
func Only[T comparable](v T) Constraint[T] {
	return Constraint[T]{value: v, set: true}
}

// IsAny reports whether the constraint is a wildcard
func (c Constraint[T]) IsAny() bool {
	return !c.set
}

// Value returns the required value, or false for a wildcard
func (c Constraint[T]) Value() (T, bool) {
	return c.value, c.set
}

// Allows reports whether v satisfies the constraint
func (c Constraint[T]) Allows(v T) bool {
	return !c.set || c.value == v
}

func (c Constraint[T]) String() string {
	if !c.set {
		return Wildcard
	}
	return fmt.Sprint(c.value)
}

// FilterSpec selects a cohort by equality on gender, department and semester
type FilterSpec struct {
	Gender     Constraint[enums.Gender]
	Department Constraint[string]
	Semester   Constraint[int]
}

// Filter returns the students that satisfy every constraint in spec, in input order.
// The input slice and its records are left untouched.
func Filter(students []models.Student, spec FilterSpec) []models.Student {
	cohort := make([]models.Student, 0, len(students))
	for _, s := range students {
		if !spec.Gender.Allows(s.Gender) {
			continue
		}
		if !spec.Department.Allows(s.Department) {
			continue
		}
		if !spec.Semester.Allows(s.Semester) {
			continue
		}
		cohort = append(cohort, s)
	}
	return cohort
}

// ParseFilterSpec builds a FilterSpec from form text.
// An empty value or "All" (any case) is a wildcard. The semester is normalized to a number.
func ParseFilterSpec(gender, department, semester string) (FilterSpec, error) {
	spec := FilterSpec{}

	if g := strings.TrimSpace(gender); !isWildcard(g) {
		if !enums.Gender(g).IsValid() {
			return FilterSpec{}, fmt.Errorf("%w: unknown gender %q", apperrors.ErrInvalidFilter, gender)
		}
		spec.Gender = Only(enums.Gender(g))
	}

	if d := strings.TrimSpace(department); !isWildcard(d) {
		spec.Department = Only(d)
	}

	if s := strings.TrimSpace(semester); !isWildcard(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return FilterSpec{}, fmt.Errorf("%w: semester %q is not a number", apperrors.ErrInvalidFilter, semester)
		}
		spec.Semester = Only(n)
	}

	return spec, nil
}

func isWildcard(v string) bool {
	return v == "" || strings.EqualFold(v, Wildcard)
}
