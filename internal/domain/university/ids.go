package university

import "fmt"

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS: ИДЕНТИФИКАТОРЫ
// Все группировки и сравнения в запросах идут строго по идентификаторам,
// а не по структурному равенству записей.
// ══════════════════════════════════════════════════════════════════════════════

// StudentID представляет уникальный идентификатор студента.
type StudentID int

// IsValid проверяет, что идентификатор положительный.
func (id StudentID) IsValid() bool {
	return id > 0
}

// Int возвращает числовое значение идентификатора.
func (id StudentID) Int() int {
	return int(id)
}

// TeacherID представляет уникальный идентификатор преподавателя.
type TeacherID int

// IsValid проверяет, что идентификатор положительный.
func (id TeacherID) IsValid() bool {
	return id > 0
}

// Int возвращает числовое значение идентификатора.
func (id TeacherID) Int() int {
	return int(id)
}

// SubjectID представляет уникальный идентификатор предмета.
type SubjectID int

// IsValid проверяет, что идентификатор положительный.
func (id SubjectID) IsValid() bool {
	return id > 0
}

// Int возвращает числовое значение идентификатора.
func (id SubjectID) Int() int {
	return int(id)
}

// String возвращает строковое представление идентификатора.
func (id SubjectID) String() string {
	return fmt.Sprintf("%d", int(id))
}

// DepartmentID представляет уникальный идентификатор кафедры.
type DepartmentID int

// IsValid проверяет, что идентификатор положительный.
func (id DepartmentID) IsValid() bool {
	return id > 0
}

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECT: ОЦЕНКА
// ══════════════════════════════════════════════════════════════════════════════

// Mark представляет числовую оценку за один ответ по предмету.
// Анализатор не ограничивает диапазон оценок; порог "отлично"
// определён только для среднего балла (см. ExcellentAverage).
type Mark int

// Int возвращает числовое значение оценки.
func (m Mark) Int() int {
	return int(m)
}

// Float64 возвращает оценку как число с плавающей точкой
// для усреднения.
func (m Mark) Float64() float64 {
	return float64(m)
}
