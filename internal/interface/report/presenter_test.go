package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/expertsoft/university-analyzer/internal/domain/shared"
	"github.com/expertsoft/university-analyzer/internal/domain/university"
)

func TestPresenter_OptionalFormatting(t *testing.T) {
	p := NewPresenter()

	assert.Equal(t, "5", p.OptionalMark(shared.Some(university.Mark(5))))
	assert.Equal(t, Absent, p.OptionalMark(shared.None[university.Mark]()))
	assert.Equal(t, "7.33", p.OptionalAverage(shared.Some(22.0/3.0)))
	assert.Equal(t, Absent, p.OptionalAverage(shared.None[float64]()))
}

func TestPresenter_Student(t *testing.T) {
	p := NewPresenter()

	s := &university.Student{
		ID:      7,
		Surname: "Ivanov",
		Marks: []university.SubjectMark{
			{SubjectID: 1, TeacherID: 1, Mark: 8},
			{SubjectID: 2, TeacherID: 1, Mark: 9},
		},
	}
	assert.Equal(t, "Ivanov (id=7, avg=8.50)", p.Student(s))
	assert.Equal(t, Absent, p.Student(nil))
}

func TestPresenter_Lists(t *testing.T) {
	p := NewPresenter()

	assert.Equal(t, "(none)", p.Students(nil))
	assert.Equal(t, "(none)", p.SubjectIDs(nil))
	assert.Equal(t, "2 < 4 < 9", p.SubjectIDs([]university.SubjectID{2, 4, 9}))
	assert.Equal(t, "Physics (id=2)", p.Subject(university.Subject{ID: 2, Name: "Physics"}))
}
