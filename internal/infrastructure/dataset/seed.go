// Package dataset - слой конструирования записей. Анализатор сам ничего
// не загружает и не хранит: записи ему передаёт вызывающая сторона.
// Этот пакет - такой внешний поставщик для точки входа и примеров:
// детерминированный учебный набор данных в памяти, без какого-либо I/O.
package dataset

import (
	"fmt"
	"math/rand"

	"github.com/expertsoft/university-analyzer/internal/domain/university"
	"github.com/expertsoft/university-analyzer/pkg/timeutil"
)

// Списки для генерации реалистичных данных.
var studentSurnames = []string{
	"Иванов", "Петров", "Сидоров", "Смирнов", "Кузнецов", "Васильев", "Попов", "Соколов",
	"Михайлов", "Новиков", "Федоров", "Морозов", "Волков", "Алексеев", "Лебедев", "Семенов",
	"Егоров", "Павлов", "Козлов", "Степанов",
}

var teacherSurnames = []string{
	"Орлова", "Ветров", "Громова", "Белов", "Крылова", "Тихонов", "Зайцева", "Комаров",
}

var subjectNames = []string{
	"Математический анализ", "Линейная алгебра", "Общая физика", "Программирование",
	"Теория вероятностей", "Дискретная математика", "Химия", "Философия",
}

var departmentNames = []string{
	"Кафедра прикладной математики", "Кафедра физики", "Кафедра информатики",
}

// University представляет полный сгенерированный набор записей.
type University struct {
	Students    []*university.Student
	Teachers    []*university.Teacher
	Subjects    []university.Subject
	Departments []*university.Department
}

// Seed генерирует детерминированный набор данных: фиксированное зерно
// даёт одинаковый результат от запуска к запуску, так что отчёт
// воспроизводим.
func Seed() *University {
	rng := rand.New(rand.NewSource(42))

	subjects := seedSubjects()
	teachers := seedTeachers(rng, subjects)
	students := seedStudents(rng, subjects, teachers)
	departments := seedDepartments(teachers, students, subjects)

	return &University{
		Students:    students,
		Teachers:    teachers,
		Subjects:    subjects,
		Departments: departments,
	}
}

func seedSubjects() []university.Subject {
	subjects := make([]university.Subject, 0, len(subjectNames))
	for i, name := range subjectNames {
		subjects = append(subjects, university.Subject{
			ID:   university.SubjectID(i + 1),
			Name: name,
		})
	}
	return subjects
}

// Каждый преподаватель ведёт от одного до трёх предметов.
func seedTeachers(rng *rand.Rand, subjects []university.Subject) []*university.Teacher {
	teachers := make([]*university.Teacher, 0, len(teacherSurnames))
	for i, surname := range teacherSurnames {
		count := 1 + rng.Intn(3)
		taught := make([]university.Subject, 0, count)
		start := rng.Intn(len(subjects))
		for j := 0; j < count; j++ {
			taught = append(taught, subjects[(start+j)%len(subjects)])
		}
		teachers = append(teachers, &university.Teacher{
			ID:             university.TeacherID(i + 1),
			Surname:        surname,
			TaughtSubjects: taught,
		})
	}
	return teachers
}

// Студенты рождаются в 2000-2007 годах и получают от трёх до десяти
// оценок по случайным предметам у случайных преподавателей. Дубликаты
// по предмету/преподавателю допустимы - это мультимножество.
func seedStudents(rng *rand.Rand, subjects []university.Subject, teachers []*university.Teacher) []*university.Student {
	students := make([]*university.Student, 0, len(studentSurnames))
	for i, surname := range studentSurnames {
		year := 2000 + rng.Intn(8)
		month := 1 + rng.Intn(12)
		day := 1 + rng.Intn(28)

		markCount := 3 + rng.Intn(8)
		marks := make([]university.SubjectMark, 0, markCount)
		for j := 0; j < markCount; j++ {
			subj := subjects[rng.Intn(len(subjects))]
			teacher := teachers[rng.Intn(len(teachers))]
			marks = append(marks, university.SubjectMark{
				SubjectID: subj.ID,
				TeacherID: teacher.ID,
				Mark:      university.Mark(3 + rng.Intn(8)), // оценки 3..10
			})
		}

		students = append(students, &university.Student{
			ID:       university.StudentID(i + 1),
			Surname:  surname,
			Birthday: timeutil.Date(year, month, day),
			Marks:    marks,
		})
	}
	return students
}

// Студенты и предметы раскладываются по кафедрам круговым распределением,
// заведующие назначаются из начала списка преподавателей.
func seedDepartments(teachers []*university.Teacher, students []*university.Student, subjects []university.Subject) []*university.Department {
	departments := make([]*university.Department, 0, len(departmentNames))
	for i, name := range departmentNames {
		departments = append(departments, &university.Department{
			ID:   university.DepartmentID(i + 1),
			Name: name,
			Head: teachers[i%len(teachers)],
		})
	}
	for i, s := range students {
		d := departments[i%len(departments)]
		d.Students = append(d.Students, s)
	}
	for i, subj := range subjects {
		d := departments[i%len(departments)]
		d.Subjects = append(d.Subjects, subj)
	}
	return departments
}

// Describe возвращает краткую сводку набора для логов.
func (u *University) Describe() string {
	return fmt.Sprintf("%d students, %d teachers, %d subjects, %d departments",
		len(u.Students), len(u.Teachers), len(u.Subjects), len(u.Departments))
}
