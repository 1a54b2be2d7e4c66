package query

import (
	"cmp"
	"iter"
	"slices"

	"github.com/expertsoft/university-analyzer/internal/domain/shared"
	"github.com/expertsoft/university-analyzer/internal/domain/university"
)

// ══════════════════════════════════════════════════════════════════════════════
// ЗАПРОСЫ ПО ПРЕДМЕТАМ
// Ключ группировки - всегда SubjectID, никогда структурное равенство:
// логически одинаковые, но различные записи предмета не должны ни
// склеиваться, ни расщепляться.
// ══════════════════════════════════════════════════════════════════════════════

// SubjectsByAcademicPerformance возвращает идентификаторы предметов,
// упорядоченные по возрастанию среднего балла (худший предмет первым).
// При равенстве средних - по возрастанию идентификатора предмета.
// Пустой вход даёт пустой список.
func SubjectsByAcademicPerformance(students iter.Seq[*university.Student]) []university.SubjectID {
	sums := make(map[university.SubjectID]int)
	counts := make(map[university.SubjectID]int)
	for m := range allMarks(students) {
		sums[m.SubjectID] += m.Mark.Int()
		counts[m.SubjectID]++
	}

	ids := make([]university.SubjectID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	mean := func(id university.SubjectID) float64 {
		return float64(sums[id]) / float64(counts[id])
	}
	slices.SortFunc(ids, func(a, b university.SubjectID) int {
		if c := cmp.Compare(mean(a), mean(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return ids
}

// SubjectMostTeachersLead возвращает предмет, который ведёт наибольшее
// число преподавателей. При равенстве счётчиков побеждает предмет,
// встреченный первым. За каждым идентификатором сохраняется первая
// встреченная запись предмета.
//
// Предусловие: среди преподавателей есть хотя бы один ведомый предмет;
// иначе максимум не определён (shared.ErrEmptySequence).
func SubjectMostTeachersLead(teachers iter.Seq[*university.Teacher]) (university.Subject, error) {
	counts := make(map[university.SubjectID]int)
	firstSeen := make(map[university.SubjectID]university.Subject)
	order := make([]university.SubjectID, 0)

	for t := range teachers {
		for _, subj := range t.TaughtSubjects {
			if _, ok := counts[subj.ID]; !ok {
				firstSeen[subj.ID] = subj
				order = append(order, subj.ID)
			}
			counts[subj.ID]++
		}
	}
	if len(order) == 0 {
		return university.Subject{}, shared.PreconditionError("SubjectMostTeachersLead",
			shared.ErrEmptySequence, "no taught subjects to choose from")
	}

	bestID := order[0]
	for _, id := range order[1:] {
		if counts[id] > counts[bestID] {
			bestID = id
		}
	}
	return firstSeen[bestID], nil
}

// SubjectsHeadTeachesInDepartment возвращает подмножество предметов
// кафедры, чей идентификатор совпадает с идентификатором заведующего,
// с сохранением исходного порядка. Пустой результат - нормальный исход.
//
// ВНИМАНИЕ: предикат сравнивает Subject.ID с Teacher.ID - это два разных
// домена идентификаторов. Правило унаследовано от исходной логики как
// есть; "предмет, который ведёт заведующий" по этой модели выразить
// нельзя - у предмета нет ссылки на преподавателя. См. DESIGN.md.
func SubjectsHeadTeachesInDepartment(department *university.Department) []university.Subject {
	result := make([]university.Subject, 0)
	if department == nil || department.Head == nil {
		return result
	}
	for _, subj := range department.Subjects {
		if subj.ID.Int() == department.Head.ID.Int() {
			result = append(result, subj)
		}
	}
	return result
}
