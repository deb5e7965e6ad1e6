package service

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/students/dto"
	"sekolahku_backend/internals/features/school/students/model"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// StudentService owns the create paths that go beyond plain CRUD: the
// student row and its login account are written in one transaction, so a
// failure on either side leaves nothing behind.
type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

// CreateWithUser inserts the student and its user account atomically.
func (s *StudentService) CreateWithUser(ctx context.Context, p helperAuth.Principal, req *dto.StudentCreateRequest) (*model.StudentModel, error) {
	student := req.ToModel()

	// tenant defaulting, same rules as the generic service
	if p.IsSuperAdmin() {
		if student.SchoolID == uuid.Nil && p.HasSchool() {
			student.SchoolID = p.SchoolID
		}
	} else {
		if !p.HasSchool() {
			return nil, fiber.NewError(fiber.StatusForbidden, "No school in token")
		}
		student.SchoolID = p.SchoolID
	}

	password := req.Password
	if password == "" {
		// initial credential; the student changes it on first login
		password = req.StudentCode
	}
	hashed, err := authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		schoolID := student.SchoolID
		account := userModel.UserModel{
			UserName: req.StudentCode,
			FullName: req.FullName,
			Email:    strings.ToLower(strings.TrimSpace(req.Email)),
			Password: hashed,
			Role:     constants.RoleStudent,
			SchoolID: &schoolID,
			IsActive: true,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		student.UserID = &account.ID
		return tx.Create(student).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Student code or email already in use")
		}
		return nil, err
	}
	return student, nil
}

// importFieldCount is the fixed CSV layout:
// student_code, full_name, gender, birth_date (2006-01-02), phone, address, email
const importFieldCount = 7

// ImportCSV reads a delimited stream, skips the header line, and runs the
// normal create path per row. Best-effort: malformed rows are skipped,
// failing rows are reported, the import itself always completes.
func (s *StudentService) ImportCSV(ctx context.Context, p helperAuth.Principal, r io.Reader) (*dto.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row length checked by hand below

	summary := &dto.ImportSummary{RowStats: []dto.ImportRowResult{}}

	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			summary.Skipped++
			summary.RowStats = append(summary.RowStats, dto.ImportRowResult{
				Line: line, Success: false, Error: "unreadable row",
			})
			continue
		}
		if line == 1 {
			continue // header
		}
		summary.Total++

		if len(record) != importFieldCount {
			summary.Skipped++
			summary.RowStats = append(summary.RowStats, dto.ImportRowResult{
				Line: line, Success: false, Error: "wrong field count",
			})
			continue
		}

		req := rowToRequest(record)
		if _, err := s.CreateWithUser(ctx, p, req); err != nil {
			log.Printf("[WARNING] import line %d (%s): %v", line, req.StudentCode, err)
			summary.Failed++
			summary.RowStats = append(summary.RowStats, dto.ImportRowResult{
				Line: line, Code: req.StudentCode, Success: false, Error: errMessage(err),
			})
			continue
		}
		summary.Created++
		summary.RowStats = append(summary.RowStats, dto.ImportRowResult{
			Line: line, Code: req.StudentCode, Success: true,
		})
	}
	return summary, nil
}

func rowToRequest(record []string) *dto.StudentCreateRequest {
	req := &dto.StudentCreateRequest{
		StudentCode: strings.TrimSpace(record[0]),
		FullName:    strings.TrimSpace(record[1]),
		Gender:      strings.ToLower(strings.TrimSpace(record[2])),
		Phone:       strings.TrimSpace(record[4]),
		Address:     strings.TrimSpace(record[5]),
		Email:       strings.TrimSpace(record[6]),
	}
	if bd := strings.TrimSpace(record[3]); bd != "" {
		if t, err := time.Parse("2006-01-02", bd); err == nil {
			req.BirthDate = &t
		}
	}
	return req
}

func errMessage(err error) string {
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Message
	}
	return err.Error()
}
