package crud

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type noteRow struct {
	ID       uuid.UUID
	SchoolID uuid.UUID
	Title    string
	AuthorID uuid.UUID
}

// fakeRepo is an in-memory Repository used in place of the GORM one.
type fakeRepo struct {
	rows      map[uuid.UUID]*noteRow
	failDupOn string // Title that triggers a duplicate-key error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uuid.UUID]*noteRow{}}
}

func (r *fakeRepo) seed(schoolID uuid.UUID, title string) *noteRow {
	m := &noteRow{ID: uuid.New(), SchoolID: schoolID, Title: title}
	r.rows[m.ID] = m
	return m
}

func (r *fakeRepo) List(ctx context.Context) ([]noteRow, error) {
	out := make([]noteRow, 0, len(r.rows))
	for _, m := range r.rows {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*noteRow, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeRepo) Create(ctx context.Context, m *noteRow) error {
	if r.failDupOn != "" && m.Title == r.failDupOn {
		return gorm.ErrDuplicatedKey
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	r.rows[m.ID] = &cp
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, m *noteRow) error {
	if r.failDupOn != "" && m.Title == r.failDupOn {
		return gorm.ErrDuplicatedKey
	}
	cp := *m
	r.rows[m.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, m *noteRow) error {
	delete(r.rows, m.ID)
	return nil
}

func noteRules() Rules[noteRow] {
	return Rules[noteRow]{
		EntityName:  "Note",
		IDOf:        func(m *noteRow) uuid.UUID { return m.ID },
		SchoolIDOf:  func(m *noteRow) uuid.UUID { return m.SchoolID },
		SetSchoolID: func(m *noteRow, id uuid.UUID) { m.SchoolID = id },
	}
}

func principalFor(role string, schoolID uuid.UUID) helperAuth.Principal {
	return helperAuth.Principal{UserID: uuid.New(), Role: role, SchoolID: schoolID}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestListScopedToPrincipalSchool(t *testing.T) {
	repo := newFakeRepo()
	schoolA, schoolB := uuid.New(), uuid.New()
	repo.seed(schoolA, "a1")
	repo.seed(schoolA, "a2")
	repo.seed(schoolB, "b1")

	svc := NewService[noteRow](repo, noteRules())

	rows, err := svc.List(context.Background(), principalFor(constants.RoleTeacher, schoolA))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, m := range rows {
		assert.Equal(t, schoolA, m.SchoolID)
	}

	rows, err = svc.List(context.Background(), principalFor(constants.RoleSuperAdmin, uuid.Nil))
	require.NoError(t, err)
	assert.Len(t, rows, 3, "superadmin sees every school")
}

func TestGetByIDForeignSchoolAnswersNotFound(t *testing.T) {
	repo := newFakeRepo()
	schoolA, schoolB := uuid.New(), uuid.New()
	foreign := repo.seed(schoolB, "b1")

	svc := NewService[noteRow](repo, noteRules())

	_, err := svc.GetByID(context.Background(), principalFor(constants.RoleTeacher, schoolA), foreign.ID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err), "existing foreign row must be indistinguishable from absent")

	_, err = svc.GetByID(context.Background(), principalFor(constants.RoleTeacher, schoolA), uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))

	got, err := svc.GetByID(context.Background(), principalFor(constants.RoleSuperAdmin, uuid.Nil), foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, foreign.ID, got.ID)
}

func TestCreateDefaultsSchoolFromPrincipal(t *testing.T) {
	repo := newFakeRepo()
	schoolA := uuid.New()
	svc := NewService[noteRow](repo, noteRules())

	m := &noteRow{Title: "n1"}
	require.NoError(t, svc.Create(context.Background(), principalFor(constants.RoleTeacher, schoolA), m))
	assert.Equal(t, schoolA, m.SchoolID)
}

func TestCreateOverridesForeignSchoolForNonSuperadmin(t *testing.T) {
	repo := newFakeRepo()
	schoolA, schoolB := uuid.New(), uuid.New()
	svc := NewService[noteRow](repo, noteRules())

	m := &noteRow{Title: "n1", SchoolID: schoolB}
	require.NoError(t, svc.Create(context.Background(), principalFor(constants.RolePrincipal, schoolA), m))
	assert.Equal(t, schoolA, m.SchoolID, "explicit foreign school must be overridden")
}

func TestCreateSuperadminKeepsExplicitSchool(t *testing.T) {
	repo := newFakeRepo()
	schoolB := uuid.New()
	svc := NewService[noteRow](repo, noteRules())

	m := &noteRow{Title: "n1", SchoolID: schoolB}
	require.NoError(t, svc.Create(context.Background(), principalFor(constants.RoleSuperAdmin, uuid.Nil), m))
	assert.Equal(t, schoolB, m.SchoolID)
}

func TestCreateWithoutSchoolClaimIsForbidden(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService[noteRow](repo, noteRules())

	m := &noteRow{Title: "n1"}
	err := svc.Create(context.Background(), principalFor(constants.RoleTeacher, uuid.Nil), m)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	assert.Empty(t, repo.rows)
}

func TestCreateBeforeCreateHookRuns(t *testing.T) {
	repo := newFakeRepo()
	schoolA := uuid.New()
	author := uuid.New()

	rules := noteRules()
	rules.BeforeCreate = func(p helperAuth.Principal, m *noteRow) error {
		if m.AuthorID == uuid.Nil {
			m.AuthorID = p.TeacherID
		}
		return nil
	}
	svc := NewService[noteRow](repo, rules)

	p := principalFor(constants.RoleTeacher, schoolA)
	p.TeacherID = author
	m := &noteRow{Title: "n1"}
	require.NoError(t, svc.Create(context.Background(), p, m))
	assert.Equal(t, author, m.AuthorID)
}

func TestCreateUniqueViolationMapsToConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.failDupOn = "dup"
	svc := NewService[noteRow](repo, noteRules())

	m := &noteRow{Title: "dup"}
	err := svc.Create(context.Background(), principalFor(constants.RoleTeacher, uuid.New()), m)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestUpdateRevertsSchoolReassignment(t *testing.T) {
	repo := newFakeRepo()
	schoolA, schoolB := uuid.New(), uuid.New()
	row := repo.seed(schoolA, "n1")
	svc := NewService[noteRow](repo, noteRules())

	got, err := svc.Update(context.Background(), principalFor(constants.RolePrincipal, schoolA), row.ID, func(m *noteRow) error {
		m.Title = "renamed"
		m.SchoolID = schoolB
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, schoolA, got.SchoolID, "non-superadmin cannot move a row between schools")

	got, err = svc.Update(context.Background(), principalFor(constants.RoleSuperAdmin, uuid.Nil), row.ID, func(m *noteRow) error {
		m.SchoolID = schoolB
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, schoolB, got.SchoolID)
}

func TestUpdateForeignRowAnswersNotFound(t *testing.T) {
	repo := newFakeRepo()
	schoolA, schoolB := uuid.New(), uuid.New()
	row := repo.seed(schoolB, "n1")
	svc := NewService[noteRow](repo, noteRules())

	_, err := svc.Update(context.Background(), principalFor(constants.RolePrincipal, schoolA), row.ID, func(m *noteRow) error {
		m.Title = "stolen"
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	assert.Equal(t, "n1", repo.rows[row.ID].Title)
}

func TestDeleteForeignRowAnswersNotFound(t *testing.T) {
	repo := newFakeRepo()
	schoolA, schoolB := uuid.New(), uuid.New()
	row := repo.seed(schoolB, "n1")
	svc := NewService[noteRow](repo, noteRules())

	err := svc.Delete(context.Background(), principalFor(constants.RolePrincipal, schoolA), row.ID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	assert.Contains(t, repo.rows, row.ID)

	require.NoError(t, svc.Delete(context.Background(), principalFor(constants.RolePrincipal, schoolB), row.ID))
	assert.NotContains(t, repo.rows, row.ID)
}

func TestUntenantedEntityIgnoresScoping(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(uuid.New(), "n1")
	repo.seed(uuid.New(), "n2")

	rules := Rules[noteRow]{
		EntityName: "Note",
		IDOf:       func(m *noteRow) uuid.UUID { return m.ID },
	}
	svc := NewService[noteRow](repo, rules)

	rows, err := svc.List(context.Background(), principalFor(constants.RoleTeacher, uuid.Nil))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
