package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// Schools returns the school repository.
func (s *Storage) Schools() *Repository[models.School] {
	return NewRepository[models.School](s.db)
}

// Students returns the student repository.
func (s *Storage) Students() *Repository[models.Student] {
	return NewRepository[models.Student](s.db)
}

// GetSchool retrieves a school by ID within a tenant.
func (s *Storage) GetSchool(ctx context.Context, tenantID, id string) (*models.School, error) {
	return s.Schools().GetByID(ctx, tenantID, id)
}

// CreateSchool inserts a school, deriving and reserving its slug.
func (s *Storage) CreateSchool(ctx context.Context, school *models.School) error {
	if school.Slug == "" {
		school.Slug = models.Slugify(school.Name)
	}
	taken, err := s.Schools().Exists(ctx, TenantSpec(school.TenantID).Where("slug = ?", school.Slug))
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicate
	}
	return s.Schools().Create(ctx, school)
}

// UpdateSchool writes school changes.
func (s *Storage) UpdateSchool(ctx context.Context, school *models.School) error {
	school.UpdatedAt = time.Now()
	return s.Schools().Update(ctx, school)
}

// DeleteSchool removes a school. Schools with enrolled students cannot be
// deleted.
func (s *Storage) DeleteSchool(ctx context.Context, tenantID, id string) error {
	enrolled, err := s.Students().Exists(ctx, TenantSpec(tenantID).
		Where("school_id = ?", id).
		Where("status = ?", models.StudentStatusEnrolled))
	if err != nil {
		return err
	}
	if enrolled {
		return ErrConflict
	}

	n, err := s.Schools().Delete(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PageSchools returns a page of schools, name order, optionally searched.
func (s *Storage) PageSchools(ctx context.Context, tenantID string, params result.RequestParameters) (result.PaginatedResult[*models.School], error) {
	spec := TenantSpec(tenantID).Order("name ASC")
	if params.SearchTerm != "" {
		term := "%" + params.SearchTerm + "%"
		spec.Where("(name LIKE ? OR city LIKE ?)", term, term)
	}
	return s.Schools().Page(ctx, spec, params)
}

// GetStudent retrieves a student with their school loaded.
func (s *Storage) GetStudent(ctx context.Context, tenantID, id string) (*models.Student, error) {
	return s.Students().GetOne(ctx, NewSpec("st.tenant_id = ?", tenantID).
		Where("st.id = ?", id).
		Relation("School"))
}

// CreateStudent enrols a student, enforcing school capacity when set.
func (s *Storage) CreateStudent(ctx context.Context, student *models.Student) error {
	school, err := s.Schools().GetByID(ctx, student.TenantID, student.SchoolID)
	if err != nil {
		return err
	}
	if school.Capacity > 0 {
		enrolled, err := s.Students().Count(ctx, TenantSpec(student.TenantID).
			Where("school_id = ?", student.SchoolID).
			Where("status = ?", models.StudentStatusEnrolled))
		if err != nil {
			return err
		}
		if enrolled >= school.Capacity {
			return fmt.Errorf("school %s is at capacity (%d)", school.Name, school.Capacity)
		}
	}
	return s.Students().Create(ctx, student)
}

// UpdateStudent writes student changes.
func (s *Storage) UpdateStudent(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now()
	return s.Students().Update(ctx, student)
}

// DeleteStudent removes a student record.
func (s *Storage) DeleteStudent(ctx context.Context, tenantID, id string) error {
	n, err := s.Students().Delete(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PageStudents returns a page of students, surname order, optionally
// restricted to a school and searched by name/email.
func (s *Storage) PageStudents(ctx context.Context, tenantID, schoolID string, params result.RequestParameters) (result.PaginatedResult[*models.Student], error) {
	spec := TenantSpec(tenantID).Order("last_name ASC", "first_name ASC")
	if schoolID != "" {
		spec.Where("school_id = ?", schoolID)
	}
	if params.SearchTerm != "" {
		term := "%" + params.SearchTerm + "%"
		spec.Where("(first_name LIKE ? OR last_name LIKE ? OR email LIKE ?)", term, term, term)
	}
	return s.Students().Page(ctx, spec, params)
}
