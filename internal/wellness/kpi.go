package wellness

import (
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/app/models/enums"
)

// Summary holds the KPI counts shown in the dashboard header
type Summary struct {
	Healthy  int `json:"healthy"`
	Moderate int `json:"moderate"`
	Critical int `json:"critical"`
}

// Total returns the number of classified students
func (s Summary) Total() int {
	return s.Healthy + s.Moderate + s.Critical
}

// Summarize counts students per risk level. Every student lands in exactly one level.
func Summarize(students []models.Student) Summary {
	var sum Summary
	for _, s := range students {
		switch ClassifyStudent(s) {
		case enums.RiskCritical:
			sum.Critical++
		case enums.RiskModerate:
			sum.Moderate++
		default:
			sum.Healthy++
		}
	}
	return sum
}

// CriticalStudents returns the students classified Critical, in input order
func CriticalStudents(students []models.Student) []models.Student {
	return ByRisk(students, enums.RiskCritical)
}

// ByRisk returns the students classified at the given level, in input order
func ByRisk(students []models.Student, level enums.RiskLevel) []models.Student {
	out := make([]models.Student, 0)
	for _, s := range students {
		if ClassifyStudent(s) == level {
			out = append(out, s)
		}
	}
	return out
}

// Options lists the distinct filterable values present in a student collection, in first-seen order
type Options struct {
	Genders     []enums.Gender `json:"genders"`
	Departments []string       `json:"departments"`
	Semesters   []int          `json:"semesters"`
}

// FilterOptions collects the values a cohort filter can choose from.
// The wildcard is not included.
func FilterOptions(students []models.Student) Options {
	opts := Options{
		Genders:     []enums.Gender{},
		Departments: []string{},
		Semesters:   []int{},
	}
	seenGender := map[enums.Gender]bool{}
	seenDept := map[string]bool{}
	seenSem := map[int]bool{}

	for _, s := range students {
		if !seenGender[s.Gender] {
			seenGender[s.Gender] = true
			opts.Genders = append(opts.Genders, s.Gender)
		}
		if s.HasDepartment() && !seenDept[s.Department] {
			seenDept[s.Department] = true
			opts.Departments = append(opts.Departments, s.Department)
		}
		if !seenSem[s.Semester] {
			seenSem[s.Semester] = true
			opts.Semesters = append(opts.Semesters, s.Semester)
		}
	}
	return opts
}
