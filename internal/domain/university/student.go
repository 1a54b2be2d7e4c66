package university

import (
	"time"

	"github.com/expertsoft/university-analyzer/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUBJECT MARK
// Минимальный факт модели: одна оценка одного студента по одному предмету,
// выставленная одним преподавателем. Дубликаты по предмету/преподавателю
// допустимы - студента можно оценивать многократно.
// ══════════════════════════════════════════════════════════════════════════════

// SubjectMark представляет одну выставленную оценку.
type SubjectMark struct {
	// SubjectID - предмет, по которому выставлена оценка.
	SubjectID SubjectID

	// TeacherID - преподаватель, выставивший оценку.
	TeacherID TeacherID

	// Mark - числовое значение оценки.
	Mark Mark
}

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student представляет студента с его оценками.
// Возраст никогда не хранится - он выводится из даты рождения
// относительно явно переданной даты вычисления.
type Student struct {
	// ID - уникальный идентификатор студента.
	ID StudentID

	// Surname - фамилия студента.
	Surname string

	// Birthday - дата рождения.
	Birthday time.Time

	// Marks - неупорядоченное мультимножество оценок студента.
	Marks []SubjectMark
}

// AgeAt возвращает возраст студента в полных годах на дату today.
func (s *Student) AgeAt(today time.Time) int {
	return timeutil.FullYearsBetween(s.Birthday, today)
}

// MarkCount возвращает количество оценок студента.
func (s *Student) MarkCount() int {
	return len(s.Marks)
}

// AverageMark возвращает средний балл студента.
// Второе значение false, если у студента нет ни одной оценки:
// средний балл в этом случае не определён, а не равен нулю.
func (s *Student) AverageMark() (float64, bool) {
	if len(s.Marks) == 0 {
		return 0, false
	}
	sum := 0
	for _, m := range s.Marks {
		sum += m.Mark.Int()
	}
	return float64(sum) / float64(len(s.Marks)), true
}
