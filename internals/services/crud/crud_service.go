package crud

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// Repository is the store collaborator the service delegates to. The GORM
// implementation lives in internals/repository; tests use an in-memory fake.
type Repository[M any] interface {
	List(ctx context.Context) ([]M, error)
	GetByID(ctx context.Context, id uuid.UUID) (*M, error)
	Create(ctx context.Context, m *M) error
	Update(ctx context.Context, m *M) error
	Delete(ctx context.Context, m *M) error
}

// Rules captures what differs per entity: name for error messages, id and
// school-id accessors, and an optional create hook for ownership defaults
// (e.g. a lesson's author).
type Rules[M any] struct {
	EntityName string

	IDOf func(*M) uuid.UUID

	// SchoolIDOf is nil for entities with no tenant dimension. For entities
	// scoped through a parent (Question via Exam) it reads the preloaded
	// parent and SetSchoolID stays nil.
	SchoolIDOf  func(*M) uuid.UUID
	SetSchoolID func(*M, uuid.UUID)

	BeforeCreate func(p helperAuth.Principal, m *M) error
}

// Service is the shared list/get/create/update/delete contract, with
// tenant scoping and role-conditioned defaults layered on the repository.
type Service[M any] struct {
	repo  Repository[M]
	rules Rules[M]
}

func NewService[M any](repo Repository[M], rules Rules[M]) *Service[M] {
	return &Service[M]{repo: repo, rules: rules}
}

func (s *Service[M]) tenantScoped() bool { return s.rules.SchoolIDOf != nil }

func (s *Service[M]) visible(p helperAuth.Principal, m *M) bool {
	if !s.tenantScoped() || p.IsSuperAdmin() {
		return true
	}
	return s.rules.SchoolIDOf(m) == p.SchoolID && p.HasSchool()
}

func (s *Service[M]) notFound() error {
	return fiber.NewError(fiber.StatusNotFound, s.rules.EntityName+" not found")
}

// List returns all rows visible to the principal. Non-superadmins on a
// tenant-scoped entity only ever see their own school's rows, regardless
// of store contents.
func (s *Service[M]) List(ctx context.Context, p helperAuth.Principal) ([]M, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !s.tenantScoped() || p.IsSuperAdmin() {
		return rows, nil
	}
	out := make([]M, 0, len(rows))
	for i := range rows {
		if s.visible(p, &rows[i]) {
			out = append(out, rows[i])
		}
	}
	return out, nil
}

// GetByID applies the same tenant predicate as List: a real row belonging
// to a foreign school answers NotFound, never the row.
func (s *Service[M]) GetByID(ctx context.Context, p helperAuth.Principal, id uuid.UUID) (*M, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil || !s.visible(p, m) {
		return nil, s.notFound()
	}
	return m, nil
}

// Create inserts one row. The school id defaults to the principal's
// school; a non-superadmin supplying a different school id has it
// overridden with their own.
func (s *Service[M]) Create(ctx context.Context, p helperAuth.Principal, m *M) error {
	if s.tenantScoped() && s.rules.SetSchoolID != nil {
		if p.IsSuperAdmin() {
			if s.rules.SchoolIDOf(m) == uuid.Nil && p.HasSchool() {
				s.rules.SetSchoolID(m, p.SchoolID)
			}
		} else {
			if !p.HasSchool() {
				return fiber.NewError(fiber.StatusForbidden, "No school in token")
			}
			s.rules.SetSchoolID(m, p.SchoolID)
		}
	}
	if s.rules.BeforeCreate != nil {
		if err := s.rules.BeforeCreate(p, m); err != nil {
			return err
		}
	}
	if err := s.repo.Create(ctx, m); err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, s.rules.EntityName+" already exists")
		}
		return err
	}
	return nil
}

// Update fetches the row (tenant-checked), applies the mutation, and
// persists. The school id is only reassignable by a superadmin; any other
// caller's change is reverted before the write.
func (s *Service[M]) Update(ctx context.Context, p helperAuth.Principal, id uuid.UUID, apply func(*M) error) (*M, error) {
	m, err := s.GetByID(ctx, p, id)
	if err != nil {
		return nil, err
	}

	var prevSchool uuid.UUID
	if s.tenantScoped() {
		prevSchool = s.rules.SchoolIDOf(m)
	}

	if err := apply(m); err != nil {
		return nil, err
	}

	if s.tenantScoped() && s.rules.SetSchoolID != nil && !p.IsSuperAdmin() {
		if s.rules.SchoolIDOf(m) != prevSchool {
			s.rules.SetSchoolID(m, prevSchool)
		}
	}

	if err := s.repo.Update(ctx, m); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, s.rules.EntityName+" already exists")
		}
		return nil, err
	}
	return m, nil
}

func (s *Service[M]) Delete(ctx context.Context, p helperAuth.Principal, id uuid.UUID) error {
	m, err := s.GetByID(ctx, p, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, m)
}
