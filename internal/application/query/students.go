package query

import (
	"cmp"
	"iter"
	"slices"
	"time"

	"github.com/expertsoft/university-analyzer/internal/domain/shared"
	"github.com/expertsoft/university-analyzer/internal/domain/university"
)

// ══════════════════════════════════════════════════════════════════════════════
// ЗАПРОСЫ ПО СТУДЕНТАМ
// Возраст всегда вычисляется относительно явно переданной даты today,
// чтобы результаты были воспроизводимы в тестах.
// ══════════════════════════════════════════════════════════════════════════════

// MinStudentAgeInYears возвращает минимальный возраст студента в полных
// годах на дату today.
//
// Предусловие: последовательность непуста. Пустой вход - ошибка
// вызывающей стороны (shared.ErrEmptySequence), а не нулевой возраст.
func MinStudentAgeInYears(students iter.Seq[*university.Student], today time.Time) (int, error) {
	minAge := 0
	seen := false
	for s := range students {
		age := s.AgeAt(today)
		if !seen || age < minAge {
			minAge = age
			seen = true
		}
	}
	if !seen {
		return 0, shared.PreconditionError("MinStudentAgeInYears", shared.ErrEmptySequence,
			"cannot compute min age of no students")
	}
	return minAge, nil
}

// StudentWithHighestAverageMark возвращает студента с максимальным
// средним баллом. При равенстве средних побеждает первый встреченный
// максимум - детерминированно для фиксированного порядка входа.
//
// Предусловия: последовательность непуста и у каждого студента есть
// хотя бы одна оценка (иначе его средний балл не определён).
func StudentWithHighestAverageMark(students iter.Seq[*university.Student]) (*university.Student, error) {
	const op = "StudentWithHighestAverageMark"

	var best *university.Student
	bestAvg := 0.0
	for s := range students {
		avg, ok := s.AverageMark()
		if !ok {
			return nil, shared.PreconditionError(op, shared.ErrStudentWithoutMarks,
				"average mark is undefined for student without marks")
		}
		if best == nil || avg > bestAvg {
			best = s
			bestAvg = avg
		}
	}
	if best == nil {
		return nil, shared.PreconditionError(op, shared.ErrEmptySequence,
			"cannot pick best student from no students")
	}
	return best, nil
}

// SortStudentsByMarkCount возвращает студентов, упорядоченных по
// убыванию количества оценок; при равенстве количества - по возрастанию
// фамилии. Порядок полный и стабильный: повторная сортировка результата
// тем же компаратором ничего не меняет.
func SortStudentsByMarkCount(students iter.Seq[*university.Student]) []*university.Student {
	sorted := slices.Collect(students)
	slices.SortStableFunc(sorted, func(a, b *university.Student) int {
		if c := cmp.Compare(b.MarkCount(), a.MarkCount()); c != 0 {
			return c
		}
		return cmp.Compare(a.Surname, b.Surname)
	})
	return sorted
}

// GraduatedExcellentStudents возвращает студентов-выпускников-отличников,
// отсортированных по возрастанию фамилии: возраст на дату today не
// меньше GraduateAge и средний балл не меньше ExcellentAverage.
//
// Студент без оценок не может удовлетворить критерию среднего балла и
// просто исключается: операция определена над потоком из нуля и более
// студентов, пустой результат - нормальный исход.
func GraduatedExcellentStudents(students iter.Seq[*university.Student], today time.Time) []*university.Student {
	graduated := make([]*university.Student, 0)
	for s := range students {
		if s.AgeAt(today) < GraduateAge {
			continue
		}
		avg, ok := s.AverageMark()
		if !ok || avg < ExcellentAverage {
			continue
		}
		graduated = append(graduated, s)
	}
	slices.SortStableFunc(graduated, func(a, b *university.Student) int {
		return cmp.Compare(a.Surname, b.Surname)
	})
	return graduated
}
