package query

import (
	"iter"

	"github.com/expertsoft/university-analyzer/internal/domain/shared"
	"github.com/expertsoft/university-analyzer/internal/domain/university"
)

// ══════════════════════════════════════════════════════════════════════════════
// АГРЕГАЦИИ ПО ОЦЕНКАМ
// Обе операции разворачивают оценки всех студентов и фильтруют их по
// заданному идентификатору. Отсутствие совпадений - нормальный исход,
// а не ошибка: результат Optional без значения.
// ══════════════════════════════════════════════════════════════════════════════

// MinSubjectMark возвращает минимальную оценку по предмету subjectID
// среди всех оценок всех студентов. Если по предмету нет ни одной
// оценки, возвращает отсутствующее значение.
func MinSubjectMark(students iter.Seq[*university.Student], subjectID university.SubjectID) shared.Optional[university.Mark] {
	result := shared.None[university.Mark]()
	for m := range allMarks(students) {
		if m.SubjectID != subjectID {
			continue
		}
		if best, ok := result.Get(); !ok || m.Mark < best {
			result = shared.Some(m.Mark)
		}
	}
	return result
}

// AverageTeacherMark возвращает среднее арифметическое оценок,
// выставленных преподавателем teacherID, по всем студентам. Если
// преподаватель не выставил ни одной оценки, возвращает отсутствующее
// значение.
func AverageTeacherMark(students iter.Seq[*university.Student], teacherID university.TeacherID) shared.Optional[float64] {
	sum := 0
	count := 0
	for m := range allMarks(students) {
		if m.TeacherID != teacherID {
			continue
		}
		sum += m.Mark.Int()
		count++
	}
	if count == 0 {
		return shared.None[float64]()
	}
	return shared.Some(float64(sum) / float64(count))
}
