package university

// ══════════════════════════════════════════════════════════════════════════════
// SUBJECT / DEPARTMENT
// ══════════════════════════════════════════════════════════════════════════════

// Subject представляет учебный предмет.
// Предметы группируются и сравниваются по ID, никогда по имени.
type Subject struct {
	// ID - уникальный идентификатор предмета.
	ID SubjectID

	// Name - название предмета.
	Name string
}

// Department представляет кафедру: заведующего, студентов и предметы.
// Заведующий хранится по ссылке и не принадлежит кафедре эксклюзивно -
// один преподаватель в принципе может заведовать несколькими кафедрами.
type Department struct {
	// ID - уникальный идентификатор кафедры.
	ID DepartmentID

	// Name - название кафедры.
	Name string

	// Head - заведующий кафедрой, ровно один.
	Head *Teacher

	// Students - студенты кафедры.
	Students []*Student

	// Subjects - предметы кафедры.
	Subjects []Subject
}
