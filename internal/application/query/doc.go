// Package query contains the analyzer's read operations following CQRS pattern.
// Queries never modify state - they only consume record sequences and return
// derived scalars, records, or ordered lists.
//
// Каждая операция - чистая функция от своих входных последовательностей и,
// где отмечено, от явно переданной даты вычисления. Последовательности
// (iter.Seq) обходятся ровно один раз: реализация не предполагает ни
// произвольного доступа, ни повторной итерации. Входные записи никогда
// не мутируются и не удерживаются после возврата.
//
// Политика отказов ровно двух видов:
//   - нарушение предусловия (shared.ErrPrecondition) - ошибка вызывающей
//     стороны: пустой вход там, где требуется хотя бы один элемент, или
//     студент/кафедра без оценок там, где средний балл обязан быть определён;
//   - отсутствующий результат (shared.Optional / пустой список) - нормальный
//     исход "данных нет", не ошибка.
package query

import (
	"iter"

	"github.com/expertsoft/university-analyzer/internal/domain/university"
)

// Пороговые значения доменных критериев.
const (
	// ExcellentAverage - минимальный средний балл студента-отличника.
	ExcellentAverage = 8.0

	// GraduateAge - минимальный возраст выпускника в полных годах.
	GraduateAge = 21
)

// allMarks разворачивает оценки всех студентов в один поток.
// Последовательность студентов при этом потребляется целиком один раз.
func allMarks(students iter.Seq[*university.Student]) iter.Seq[university.SubjectMark] {
	return func(yield func(university.SubjectMark) bool) {
		for s := range students {
			for _, m := range s.Marks {
				if !yield(m) {
					return
				}
			}
		}
	}
}
