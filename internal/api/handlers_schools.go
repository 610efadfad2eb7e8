package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// listSchools handles GET /api/v1/schools
// @Summary List schools
// @Description Page through the tenant's schools in name order
// @Tags Schools
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param search query string false "Search name and city"
// @Success 200 {object} result.PaginatedResult[models.School] "Page of schools"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /schools [get]
func (s *Server) listSchools(c echo.Context) error {
	page, err := s.storage.PageSchools(c.Request().Context(), s.authMiddle.Tenant(c), parseParams(c))
	if err != nil {
		return InternalError("Failed to list schools", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// getSchool handles GET /api/v1/schools/:id
// @Summary Get school
// @Tags Schools
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Success 200 {object} result.Result[models.School] "School"
// @Failure 404 {object} APIError "Not found"
// @Router /schools/{id} [get]
func (s *Server) getSchool(c echo.Context) error {
	id := c.Param("id")
	school, err := s.storage.GetSchool(c.Request().Context(), s.authMiddle.Tenant(c), id)
	if err != nil {
		return storageError(err, "School", id)
	}
	return c.JSON(http.StatusOK, result.Ok(school))
}

// createSchool handles POST /api/v1/schools
// @Summary Create school
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param school body models.School true "School"
// @Success 201 {object} result.Result[models.School] "Created school"
// @Failure 400 {object} APIError "Bad request or validation errors"
// @Failure 409 {object} APIError "Duplicate slug"
// @Router /schools [post]
func (s *Server) createSchool(c echo.Context) error {
	var school models.School
	if err := c.Bind(&school); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	school.ID = models.GenerateID("school")
	school.TenantID = s.authMiddle.Tenant(c)
	if school.Status == "" {
		school.Status = models.SchoolStatusActive
	}
	now := time.Now()
	school.CreatedAt = now
	school.UpdatedAt = now

	if res := s.validator.Validate(&school); !res.Valid {
		return ValidationFailedError("School validation failed", fieldErrorMap(res))
	}

	if err := s.storage.CreateSchool(c.Request().Context(), &school); err != nil {
		return storageError(err, "School", school.ID)
	}

	s.broadcast(school.TenantID, "school", EventCreated, &school)
	return c.JSON(http.StatusCreated, result.Ok(&school))
}

// updateSchool handles PUT /api/v1/schools/:id
// @Summary Update school
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param school body models.School true "School"
// @Success 200 {object} result.Result[models.School] "Updated school"
// @Failure 400 {object} APIError "Bad request"
// @Failure 404 {object} APIError "Not found"
// @Router /schools/{id} [put]
func (s *Server) updateSchool(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	existing, err := s.storage.GetSchool(ctx, tenant, id)
	if err != nil {
		return storageError(err, "School", id)
	}

	var school models.School
	if err := c.Bind(&school); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	school.ID = existing.ID
	school.TenantID = existing.TenantID
	school.Slug = existing.Slug
	school.CreatedAt = existing.CreatedAt

	if res := s.validator.Validate(&school); !res.Valid {
		return ValidationFailedError("School validation failed", fieldErrorMap(res))
	}

	if err := s.storage.UpdateSchool(ctx, &school); err != nil {
		return storageError(err, "School", id)
	}

	s.broadcast(tenant, "school", EventUpdated, &school)
	return c.JSON(http.StatusOK, result.Ok(&school))
}

// deleteSchool handles DELETE /api/v1/schools/:id
// @Summary Delete school
// @Description Delete a school; fails when enrolled students exist
// @Tags Schools
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} APIError "Not found"
// @Failure 409 {object} APIError "Enrolled students exist"
// @Router /schools/{id} [delete]
func (s *Server) deleteSchool(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	if err := s.storage.DeleteSchool(c.Request().Context(), tenant, id); err != nil {
		return storageError(err, "School", id)
	}

	s.broadcast(tenant, "school", EventDeleted, map[string]string{"id": id})
	return c.JSON(http.StatusOK, MessageResponse{Message: "school deleted", ID: id})
}

// listSchoolStudents handles GET /api/v1/schools/:id/students
// @Summary List a school's students
// @Tags Schools
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {object} result.PaginatedResult[models.Student] "Page of students"
// @Failure 404 {object} APIError "Not found"
// @Router /schools/{id}/students [get]
func (s *Server) listSchoolStudents(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	if _, err := s.storage.GetSchool(ctx, tenant, id); err != nil {
		return storageError(err, "School", id)
	}

	page, err := s.storage.PageStudents(ctx, tenant, id, parseParams(c))
	if err != nil {
		return InternalError("Failed to list students", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// listStudents handles GET /api/v1/students
// @Summary List students
// @Description Page through the tenant's students in surname order
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param school_id query string false "Filter by school"
// @Param search query string false "Search name and email"
// @Success 200 {object} result.PaginatedResult[models.Student] "Page of students"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /students [get]
func (s *Server) listStudents(c echo.Context) error {
	page, err := s.storage.PageStudents(c.Request().Context(), s.authMiddle.Tenant(c),
		c.QueryParam("school_id"), parseParams(c))
	if err != nil {
		return InternalError("Failed to list students", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// getStudent handles GET /api/v1/students/:id
// @Summary Get student
// @Description Get a student with their school loaded
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} result.Result[models.Student] "Student"
// @Failure 404 {object} APIError "Not found"
// @Router /students/{id} [get]
func (s *Server) getStudent(c echo.Context) error {
	id := c.Param("id")
	student, err := s.storage.GetStudent(c.Request().Context(), s.authMiddle.Tenant(c), id)
	if err != nil {
		return storageError(err, "Student", id)
	}
	return c.JSON(http.StatusOK, result.Ok(student))
}

// createStudent handles POST /api/v1/students
// @Summary Enrol student
// @Description Enrol a student; fails when the school is at capacity
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student body models.Student true "Student"
// @Success 201 {object} result.Result[models.Student] "Enrolled student"
// @Failure 400 {object} APIError "Bad request, validation errors or school at capacity"
// @Failure 404 {object} APIError "School not found"
// @Router /students [post]
func (s *Server) createStudent(c echo.Context) error {
	var student models.Student
	if err := c.Bind(&student); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	student.ID = models.GenerateID("student")
	student.TenantID = s.authMiddle.Tenant(c)
	if student.Status == "" {
		student.Status = models.StudentStatusEnrolled
	}
	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	if res := s.validator.Validate(&student); !res.Valid {
		return ValidationFailedError("Student validation failed", fieldErrorMap(res))
	}

	if err := s.storage.CreateStudent(c.Request().Context(), &student); err != nil {
		if apiErr := storageError(err, "School", student.SchoolID); apiErr.Code != http.StatusInternalServerError {
			return apiErr
		}
		return BadRequestError("Cannot enrol student", err.Error())
	}

	s.broadcast(student.TenantID, "student", EventCreated, &student)
	return c.JSON(http.StatusCreated, result.Ok(&student))
}

// updateStudent handles PUT /api/v1/students/:id
// @Summary Update student
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param student body models.Student true "Student"
// @Success 200 {object} result.Result[models.Student] "Updated student"
// @Failure 400 {object} APIError "Bad request"
// @Failure 404 {object} APIError "Not found"
// @Router /students/{id} [put]
func (s *Server) updateStudent(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	existing, err := s.storage.GetStudent(ctx, tenant, id)
	if err != nil {
		return storageError(err, "Student", id)
	}

	var student models.Student
	if err := c.Bind(&student); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	student.ID = existing.ID
	student.TenantID = existing.TenantID
	student.CreatedAt = existing.CreatedAt
	student.School = nil

	if res := s.validator.Validate(&student); !res.Valid {
		return ValidationFailedError("Student validation failed", fieldErrorMap(res))
	}

	if err := s.storage.UpdateStudent(ctx, &student); err != nil {
		return storageError(err, "Student", id)
	}

	s.broadcast(tenant, "student", EventUpdated, &student)
	return c.JSON(http.StatusOK, result.Ok(&student))
}

// deleteStudent handles DELETE /api/v1/students/:id
// @Summary Delete student
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} APIError "Not found"
// @Router /students/{id} [delete]
func (s *Server) deleteStudent(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	if err := s.storage.DeleteStudent(c.Request().Context(), tenant, id); err != nil {
		return storageError(err, "Student", id)
	}

	s.broadcast(tenant, "student", EventDeleted, map[string]string{"id": id})
	return c.JSON(http.StatusOK, MessageResponse{Message: "student deleted", ID: id})
}
