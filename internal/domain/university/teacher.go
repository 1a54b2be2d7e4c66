package university

// ══════════════════════════════════════════════════════════════════════════════
// TEACHER
// ══════════════════════════════════════════════════════════════════════════════

// Teacher представляет преподавателя и список предметов, которые он ведёт.
type Teacher struct {
	// ID - уникальный идентификатор преподавателя.
	ID TeacherID

	// Surname - фамилия преподавателя.
	Surname string

	// TaughtSubjects - предметы, которые ведёт преподаватель.
	TaughtSubjects []Subject
}

// Teaches возвращает true, если преподаватель ведёт предмет с данным ID.
func (t *Teacher) Teaches(id SubjectID) bool {
	for _, subj := range t.TaughtSubjects {
		if subj.ID == id {
			return true
		}
	}
	return false
}
