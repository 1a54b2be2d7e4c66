package query

import (
	"iter"

	"github.com/expertsoft/university-analyzer/internal/domain/shared"
	"github.com/expertsoft/university-analyzer/internal/domain/university"
)

// ══════════════════════════════════════════════════════════════════════════════
// ЗАПРОСЫ ПО КАФЕДРАМ
// ══════════════════════════════════════════════════════════════════════════════

// HeadOfMostSuccessfulDepartment возвращает заведующего кафедрой, чьи
// студенты имеют максимальный средний балл по всем оценкам. При
// равенстве средних побеждает первая встреченная кафедра.
//
// Предусловия: последовательность непуста и на каждой кафедре есть хотя
// бы один студент хотя бы с одной оценкой - иначе средний балл кафедры
// не определён.
func HeadOfMostSuccessfulDepartment(departments iter.Seq[*university.Department]) (*university.Teacher, error) {
	const op = "HeadOfMostSuccessfulDepartment"

	var best *university.Department
	bestAvg := 0.0
	for d := range departments {
		avg, ok := departmentAverageMark(d)
		if !ok {
			return nil, shared.PreconditionError(op, shared.ErrDepartmentWithoutMarks,
				"average mark is undefined for department without marks")
		}
		if best == nil || avg > bestAvg {
			best = d
			bestAvg = avg
		}
	}
	if best == nil {
		return nil, shared.PreconditionError(op, shared.ErrEmptySequence,
			"cannot pick best department from no departments")
	}
	return best.Head, nil
}

// departmentAverageMark считает средний балл кафедры по развёрнутым
// оценкам всех её студентов. Второе значение false, если оценок нет.
func departmentAverageMark(d *university.Department) (float64, bool) {
	sum := 0
	count := 0
	for _, s := range d.Students {
		for _, m := range s.Marks {
			sum += m.Mark.Int()
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}
