package query

import (
	"iter"
	"slices"
	"time"

	"github.com/expertsoft/university-analyzer/internal/domain/university"
	"github.com/expertsoft/university-analyzer/pkg/timeutil"
)

// Shared test fixtures and sequence helpers.

// evalDate is the fixed evaluation date used by all age-dependent tests.
var evalDate = timeutil.Date(2026, 6, 1)

func newStudent(id int, surname string, birthday time.Time, marks ...university.SubjectMark) *university.Student {
	return &university.Student{
		ID:       university.StudentID(id),
		Surname:  surname,
		Birthday: birthday,
		Marks:    marks,
	}
}

func mark(subjectID, teacherID, value int) university.SubjectMark {
	return university.SubjectMark{
		SubjectID: university.SubjectID(subjectID),
		TeacherID: university.TeacherID(teacherID),
		Mark:      university.Mark(value),
	}
}

// bornYearsAgo returns a birthday exactly n full years before evalDate.
func bornYearsAgo(n int) time.Time {
	return evalDate.AddDate(-n, 0, 0)
}

func studentsSeq(students ...*university.Student) iter.Seq[*university.Student] {
	return slices.Values(students)
}

func teachersSeq(teachers ...*university.Teacher) iter.Seq[*university.Teacher] {
	return slices.Values(teachers)
}

func departmentsSeq(departments ...*university.Department) iter.Seq[*university.Department] {
	return slices.Values(departments)
}

// countingSeq wraps a sequence and counts how many times iteration starts,
// to verify single-traversal semantics.
func countingSeq[T any](seq iter.Seq[T], starts *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		*starts++
		seq(yield)
	}
}
