package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// SaveOne persists a single mark. An item without an id is inserted as-is;
// there is no (student_id, date) lookup before the insert, so saving the
// same student twice for the same date produces two rows. An item with an
// id updates that row, tenant-checked.
func (s *AttendanceService) SaveOne(ctx context.Context, p helperAuth.Principal, item *dto.AttendanceSaveItem) (*model.AttendanceModel, error) {
	if !model.IsValidAttendanceStatus(item.Status) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid attendance status")
	}
	date, err := time.Parse("2006-01-02", item.Date)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	if item.ID == nil || *item.ID == uuid.Nil {
		m := &model.AttendanceModel{
			StudentID: item.StudentID,
			GradeID:   item.GradeID,
			Date:      date,
			Status:    item.Status,
			Note:      item.Note,
		}
		if p.IsSuperAdmin() {
			if p.HasSchool() {
				m.SchoolID = p.SchoolID
			}
		} else {
			if !p.HasSchool() {
				return nil, fiber.NewError(fiber.StatusForbidden, "No school in token")
			}
			m.SchoolID = p.SchoolID
		}
		if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
			return nil, err
		}
		return m, nil
	}

	var m model.AttendanceModel
	if err := s.DB.WithContext(ctx).First(&m, "id = ?", *item.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attendance not found")
		}
		return nil, err
	}
	if !p.IsSuperAdmin() && m.SchoolID != p.SchoolID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Attendance not found")
	}

	m.StudentID = item.StudentID
	m.GradeID = item.GradeID
	m.Date = date
	m.Status = item.Status
	m.Note = item.Note
	if err := s.DB.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveBatch applies each item independently and reports per-item results.
// The batch always completes.
func (s *AttendanceService) SaveBatch(ctx context.Context, p helperAuth.Principal, items []dto.AttendanceSaveItem) []dto.AttendanceSaveResult {
	results := make([]dto.AttendanceSaveResult, 0, len(items))
	for i := range items {
		res := dto.AttendanceSaveResult{StudentID: items[i].StudentID}
		m, err := s.SaveOne(ctx, p, &items[i])
		if err != nil {
			res.Error = errMessage(err)
		} else {
			res.Saved = true
			res.ID = &m.ID
		}
		results = append(results, res)
	}
	return results
}

// Roster lists the grade's active students left-joined with that day's
// marks. A student marked twice (the double-insert gap) shows the earliest
// row.
func (s *AttendanceService) Roster(ctx context.Context, p helperAuth.Principal, gradeID uuid.UUID, date time.Time) ([]dto.RosterEntry, error) {
	studentQ := s.DB.WithContext(ctx).
		Where("grade_id = ? AND status = ?", gradeID, studentModel.StudentStatusActive).
		Order("full_name asc")
	if !p.IsSuperAdmin() {
		if !p.HasSchool() {
			return nil, fiber.NewError(fiber.StatusForbidden, "No school in token")
		}
		studentQ = studentQ.Where("school_id = ?", p.SchoolID)
	}

	var students []studentModel.StudentModel
	if err := studentQ.Find(&students).Error; err != nil {
		return nil, err
	}

	var marks []model.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Where("date = ?", date.Format("2006-01-02")).
		Order("created_at asc").
		Find(&marks).Error; err != nil {
		return nil, err
	}
	byStudent := make(map[uuid.UUID]*model.AttendanceModel, len(marks))
	for i := range marks {
		if _, seen := byStudent[marks[i].StudentID]; !seen {
			byStudent[marks[i].StudentID] = &marks[i]
		}
	}

	roster := make([]dto.RosterEntry, 0, len(students))
	for i := range students {
		entry := dto.RosterEntry{
			StudentID:   students[i].ID,
			StudentCode: students[i].StudentCode,
			FullName:    students[i].FullName,
		}
		if m, ok := byStudent[students[i].ID]; ok {
			resp := dto.FromModel(m)
			entry.Attendance = &resp
		}
		roster = append(roster, entry)
	}
	return roster, nil
}

func errMessage(err error) string {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
