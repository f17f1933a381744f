// file: internals/features/school/courses/controller/course_controller_test.go
package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/school/courses/dto"
	"schoolku_backend/internals/features/school/courses/model"
)

type fakeCourseRepo struct {
	courses map[uuid.UUID]*model.CourseModel
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[uuid.UUID]*model.CourseModel{}}
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id uuid.UUID) (*model.CourseModel, error) {
	return f.courses[id], nil
}

func (f *fakeCourseRepo) ListBySchool(_ context.Context, schoolID uuid.UUID) ([]model.CourseModel, error) {
	out := make([]model.CourseModel, 0)
	for _, m := range f.courses {
		if m.CourseSchoolID == schoolID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) Create(_ context.Context, m *model.CourseModel) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	if m.CourseStatus == "" {
		m.CourseStatus = model.CourseStatusDraft
	}
	f.courses[m.CourseID] = m
	return nil
}

func (f *fakeCourseRepo) Update(_ context.Context, id uuid.UUID, req dto.UpdateCourseRequest) (*model.CourseModel, error) {
	m, ok := f.courses[id]
	if !ok {
		return nil, nil
	}
	if req.CourseStatus != nil && !m.CourseStatus.CanTransition(*req.CourseStatus) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"invalid course_status transition: "+string(m.CourseStatus)+" → "+string(*req.CourseStatus))
	}
	req.Apply(m)
	return m, nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.courses, id)
	return nil
}

func newCourseApp(ctl *CourseController) *fiber.App {
	app := fiber.New()
	app.Get("/api/schools/:school_id/courses", ctl.ListCoursesBySchool)
	app.Post("/api/courses", ctl.CreateCourse)
	app.Get("/api/courses/:id", ctl.GetCourse)
	app.Patch("/api/courses/:id", ctl.UpdateCourse)
	app.Delete("/api/courses/:id", ctl.DeleteCourse)
	return app
}

func TestCreateCourse_MissingTitle(t *testing.T) {
	ctl := NewCourseController(newFakeCourseRepo())
	app := newCourseApp(ctl)

	body := `{"course_school_id":"` + uuid.NewString() + `","course_subject":"Mathematics"}`
	req := httptest.NewRequest("POST", "/api/courses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCourseLifecycle(t *testing.T) {
	repo := newFakeCourseRepo()
	ctl := NewCourseController(repo)
	app := newCourseApp(ctl)

	body := `{"course_school_id":"` + uuid.NewString() + `","course_title":"Algebra I","course_subject":"Mathematics"}`
	req := httptest.NewRequest("POST", "/api/courses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created model.CourseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, model.CourseStatusDraft, created.CourseStatus)

	// Publish.
	req = httptest.NewRequest("PATCH", "/api/courses/"+created.CourseID.String(),
		strings.NewReader(`{"course_status":"published"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Mundur ke draft ditolak.
	req = httptest.NewRequest("PATCH", "/api/courses/"+created.CourseID.String(),
		strings.NewReader(`{"course_status":"draft"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Delete lalu GET: 404.
	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/courses/"+created.CourseID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/courses/"+created.CourseID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetCourse_InvalidID(t *testing.T) {
	ctl := NewCourseController(newFakeCourseRepo())
	app := newCourseApp(ctl)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/not-a-uuid", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListCoursesBySchool_EmptyArray(t *testing.T) {
	ctl := NewCourseController(newFakeCourseRepo())
	app := newCourseApp(ctl)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/schools/"+uuid.NewString()+"/courses", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []model.CourseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Empty(t, items)
}
