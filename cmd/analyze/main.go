// Package main - точка входа демонстрационного отчёта анализатора.
//
// Бинарник показывает контракт анализатора от начала до конца:
// слой конструирования записей (dataset) отдаёт последовательности,
// каждая операция потребляет свою последовательность ровно один раз,
// презентер форматирует результаты, логгер их публикует.
package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/expertsoft/university-analyzer/config"
	"github.com/expertsoft/university-analyzer/internal/application/query"
	"github.com/expertsoft/university-analyzer/internal/infrastructure/dataset"
	"github.com/expertsoft/university-analyzer/internal/interface/report"
	"github.com/expertsoft/university-analyzer/pkg/logger"
	"github.com/expertsoft/university-analyzer/pkg/timeutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(logger.Options{
		Output: os.Stdout,
		Level:  logger.ParseLevel(cfg.LogLevel),
	}).With(logger.RunID(uuid.New().String()))

	log.Info("starting university analyzer report",
		logger.String("env", string(cfg.AppEnv)),
		logger.Time("eval_date", cfg.EvalDate),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. КОНСТРУИРОВАНИЕ ЗАПИСЕЙ
	// ─────────────────────────────────────────────────────────────────────────
	u := dataset.Seed()
	log.Info("dataset constructed", logger.String("summary", u.Describe()))

	// ─────────────────────────────────────────────────────────────────────────
	// 4. ВЫПОЛНЕНИЕ ОПЕРАЦИЙ И ОТЧЁТ
	// ─────────────────────────────────────────────────────────────────────────
	// Каждая операция получает свежую последовательность: переданную
	// последовательность нельзя использовать повторно.
	p := report.NewPresenter()
	started := time.Now()

	probeSubject := u.Subjects[0].ID
	probeTeacher := u.Teachers[0].ID

	minMark := query.MinSubjectMark(slices.Values(u.Students), probeSubject)
	log.Info("min subject mark",
		logger.SubjectID(probeSubject.Int()),
		logger.String("result", p.OptionalMark(minMark)),
	)

	avgMark := query.AverageTeacherMark(slices.Values(u.Students), probeTeacher)
	log.Info("average teacher mark",
		logger.TeacherID(probeTeacher.Int()),
		logger.String("result", p.OptionalAverage(avgMark)),
	)

	minAge, err := query.MinStudentAgeInYears(slices.Values(u.Students), cfg.EvalDate)
	if err != nil {
		return err
	}
	log.Info("min student age", logger.Int("years", minAge))

	bestStudent, err := query.StudentWithHighestAverageMark(slices.Values(u.Students))
	if err != nil {
		return err
	}
	log.Info("student with highest average mark",
		logger.String("result", p.Student(bestStudent)),
	)

	byMarkCount := query.SortStudentsByMarkCount(slices.Values(u.Students))
	log.Info("students by mark count",
		logger.StudentCount(len(byMarkCount)),
		logger.String("result", p.Students(byMarkCount)),
	)

	byPerformance := query.SubjectsByAcademicPerformance(slices.Values(u.Students))
	log.Info("subjects by academic performance",
		logger.String("result", p.SubjectIDs(byPerformance)),
	)

	popularSubject, err := query.SubjectMostTeachersLead(slices.Values(u.Teachers))
	if err != nil {
		return err
	}
	log.Info("subject most teachers lead",
		logger.String("result", p.Subject(popularSubject)),
	)

	graduates := query.GraduatedExcellentStudents(slices.Values(u.Students), cfg.EvalDate)
	log.Info("graduated excellent students",
		logger.StudentCount(len(graduates)),
		logger.String("result", p.Students(graduates)),
	)

	bestHead, err := query.HeadOfMostSuccessfulDepartment(slices.Values(u.Departments))
	if err != nil {
		return err
	}
	log.Info("head of most successful department",
		logger.String("result", p.Teacher(bestHead)),
	)

	headSubjects := query.SubjectsHeadTeachesInDepartment(u.Departments[0])
	log.Info("subjects head teaches in department",
		logger.String("department", u.Departments[0].Name),
		logger.String("result", p.Subjects(headSubjects)),
	)

	log.Info("report finished",
		logger.String("eval_date", timeutil.FormatDateStr(cfg.EvalDate)),
		logger.Latency(time.Since(started)),
	)
	return nil
}
