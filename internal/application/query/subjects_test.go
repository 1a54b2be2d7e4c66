package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expertsoft/university-analyzer/internal/domain/shared"
	"github.com/expertsoft/university-analyzer/internal/domain/university"
)

func newTeacher(id int, surname string, subjects ...university.Subject) *university.Teacher {
	return &university.Teacher{
		ID:             university.TeacherID(id),
		Surname:        surname,
		TaughtSubjects: subjects,
	}
}

func subject(id int, name string) university.Subject {
	return university.Subject{ID: university.SubjectID(id), Name: name}
}

func TestSubjectsByAcademicPerformance_WorstSubjectFirst(t *testing.T) {
	// subject 1 mean = 5, subject 2 mean = 9, subject 3 mean = 7.
	students := studentsSeq(
		newStudent(1, "Ivanov", bornYearsAgo(20), mark(1, 1, 4), mark(2, 1, 9)),
		newStudent(2, "Petrov", bornYearsAgo(20), mark(1, 1, 6), mark(3, 1, 7)),
	)

	ids := SubjectsByAcademicPerformance(students)

	assert.Equal(t, []university.SubjectID{1, 3, 2}, ids)
}

func TestSubjectsByAcademicPerformance_ReturnsDistinctSubjectsOnly(t *testing.T) {
	students := studentsSeq(
		newStudent(1, "Ivanov", bornYearsAgo(20), mark(5, 1, 4), mark(5, 2, 6), mark(5, 1, 8)),
	)

	ids := SubjectsByAcademicPerformance(students)

	assert.Equal(t, []university.SubjectID{5}, ids)
}

func TestSubjectsByAcademicPerformance_TiesOrderedByID(t *testing.T) {
	students := studentsSeq(
		newStudent(1, "Ivanov", bornYearsAgo(20), mark(4, 1, 7), mark(2, 1, 7), mark(9, 1, 7)),
	)

	ids := SubjectsByAcademicPerformance(students)

	assert.Equal(t, []university.SubjectID{2, 4, 9}, ids)
}

func TestSubjectsByAcademicPerformance_EmptySequence(t *testing.T) {
	ids := SubjectsByAcademicPerformance(studentsSeq())

	assert.Empty(t, ids)
}

func TestSubjectMostTeachersLead_CountsTeachersPerSubject(t *testing.T) {
	math := subject(1, "Mathematics")
	physics := subject(2, "Physics")
	teachers := teachersSeq(
		newTeacher(1, "Orlov", math, physics),
		newTeacher(2, "Vetrov", physics),
		newTeacher(3, "Sokolov", physics),
	)

	result, err := SubjectMostTeachersLead(teachers)

	require.NoError(t, err)
	assert.Equal(t, physics, result)
}

func TestSubjectMostTeachersLead_FirstSeenWinsOnTie(t *testing.T) {
	math := subject(1, "Mathematics")
	physics := subject(2, "Physics")
	teachers := teachersSeq(
		newTeacher(1, "Orlov", math),
		newTeacher(2, "Vetrov", physics),
	)

	result, err := SubjectMostTeachersLead(teachers)

	require.NoError(t, err)
	assert.Equal(t, math, result)
}

func TestSubjectMostTeachersLead_GroupsByIDNotByName(t *testing.T) {
	// Same subject ID with different record contents must merge; the
	// first-seen record is the one returned.
	teachers := teachersSeq(
		newTeacher(1, "Orlov", subject(1, "Maths")),
		newTeacher(2, "Vetrov", subject(1, "Mathematics")),
		newTeacher(3, "Sokolov", subject(2, "Physics")),
	)

	result, err := SubjectMostTeachersLead(teachers)

	require.NoError(t, err)
	assert.Equal(t, subject(1, "Maths"), result)
}

func TestSubjectMostTeachersLead_FailsWithoutSubjects(t *testing.T) {
	_, err := SubjectMostTeachersLead(teachersSeq())

	assert.ErrorIs(t, err, shared.ErrEmptySequence)

	_, err = SubjectMostTeachersLead(teachersSeq(newTeacher(1, "Orlov")))

	assert.ErrorIs(t, err, shared.ErrPrecondition)
}

func TestSubjectsHeadTeachesInDepartment_LiteralIDPredicate(t *testing.T) {
	// The inherited rule matches Subject.ID against Teacher.ID literally,
	// so only the subject whose ID collides with the head's ID is kept.
	head := newTeacher(2, "Orlov", subject(1, "Mathematics"))
	department := &university.Department{
		ID:   1,
		Name: "Applied Mathematics",
		Head: head,
		Subjects: []university.Subject{
			subject(1, "Mathematics"),
			subject(2, "Physics"),
			subject(3, "Chemistry"),
		},
	}

	result := SubjectsHeadTeachesInDepartment(department)

	assert.Equal(t, []university.Subject{subject(2, "Physics")}, result)
}

func TestSubjectsHeadTeachesInDepartment_PreservesOrder(t *testing.T) {
	head := newTeacher(7, "Orlov")
	department := &university.Department{
		ID:   1,
		Head: head,
		Subjects: []university.Subject{
			subject(7, "Algebra"),
			subject(3, "Physics"),
			subject(7, "Geometry"),
		},
	}

	result := SubjectsHeadTeachesInDepartment(department)

	assert.Equal(t, []university.Subject{subject(7, "Algebra"), subject(7, "Geometry")}, result)
}

func TestSubjectsHeadTeachesInDepartment_EmptyWhenNoMatch(t *testing.T) {
	department := &university.Department{
		ID:       1,
		Head:     newTeacher(99, "Orlov"),
		Subjects: []university.Subject{subject(1, "Mathematics")},
	}

	result := SubjectsHeadTeachesInDepartment(department)

	assert.Empty(t, result)
}
