// Package report formats analyzer results for display.
// Презентер - потребляющая сторона контракта анализатора: он превращает
// скаляры, записи и списки в человекочитаемые строки отчёта и ничего
// не вычисляет сам.
package report

import (
	"fmt"
	"strings"

	"github.com/expertsoft/university-analyzer/internal/domain/shared"
	"github.com/expertsoft/university-analyzer/internal/domain/university"
)

// Absent - текст для легитимно отсутствующего результата.
const Absent = "absent"

// Presenter форматирует результаты операций анализатора.
type Presenter struct{}

// NewPresenter создаёт новый презентер отчёта.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// OptionalMark форматирует опциональную оценку.
func (p *Presenter) OptionalMark(opt shared.Optional[university.Mark]) string {
	value, ok := opt.Get()
	if !ok {
		return Absent
	}
	return fmt.Sprintf("%d", value.Int())
}

// OptionalAverage форматирует опциональный средний балл.
func (p *Presenter) OptionalAverage(opt shared.Optional[float64]) string {
	value, ok := opt.Get()
	if !ok {
		return Absent
	}
	return fmt.Sprintf("%.2f", value)
}

// Student форматирует одного студента со средним баллом.
func (p *Presenter) Student(s *university.Student) string {
	if s == nil {
		return Absent
	}
	avg, ok := s.AverageMark()
	if !ok {
		return fmt.Sprintf("%s (id=%d, no marks)", s.Surname, s.ID.Int())
	}
	return fmt.Sprintf("%s (id=%d, avg=%.2f)", s.Surname, s.ID.Int(), avg)
}

// Students форматирует список студентов в одну строку.
func (p *Presenter) Students(students []*university.Student) string {
	if len(students) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(students))
	for _, s := range students {
		parts = append(parts, fmt.Sprintf("%s[%d]", s.Surname, s.MarkCount()))
	}
	return strings.Join(parts, ", ")
}

// Teacher форматирует преподавателя.
func (p *Presenter) Teacher(t *university.Teacher) string {
	if t == nil {
		return Absent
	}
	return fmt.Sprintf("%s (id=%d)", t.Surname, t.ID.Int())
}

// Subject форматирует предмет.
func (p *Presenter) Subject(s university.Subject) string {
	return fmt.Sprintf("%s (id=%s)", s.Name, s.ID)
}

// Subjects форматирует список предметов.
func (p *Presenter) Subjects(subjects []university.Subject) string {
	if len(subjects) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(subjects))
	for _, s := range subjects {
		parts = append(parts, p.Subject(s))
	}
	return strings.Join(parts, ", ")
}

// SubjectIDs форматирует упорядоченный список идентификаторов предметов.
func (p *Presenter) SubjectIDs(ids []university.SubjectID) string {
	if len(ids) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, " < ")
}
