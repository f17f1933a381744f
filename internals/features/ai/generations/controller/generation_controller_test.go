// file: internals/features/ai/generations/controller/generation_controller_test.go
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/ai/generations/model"
	"schoolku_backend/internals/features/ai/generations/service"
)

/* =========================
   Fakes
========================= */

type fakeGenerationRepo struct {
	created   []*model.AiGenerationModel
	createErr error
}

func (f *fakeGenerationRepo) ListBySchool(_ context.Context, schoolID uuid.UUID) ([]model.AiGenerationModel, error) {
	out := make([]model.AiGenerationModel, 0)
	for _, m := range f.created {
		if m.AiGenerationSchoolID == schoolID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeGenerationRepo) Create(_ context.Context, m *model.AiGenerationModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, m)
	return nil
}

type fakeGenerator struct {
	calls  int
	gotReq service.CourseRequest
	course *model.GeneratedCourse
	err    error
}

func (f *fakeGenerator) GenerateCourse(_ context.Context, req service.CourseRequest) (*model.GeneratedCourse, error) {
	f.calls++
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.course, nil
}

func sampleCourse() *model.GeneratedCourse {
	return &model.GeneratedCourse{
		Title:        "Photosynthesis Basics",
		Description:  "Introductory unit on photosynthesis",
		Objectives:   []string{"Explain light reactions"},
		Outline:      []string{"Week 1: Light reactions"},
		TotalLessons: 1,
		Assessments:  []model.GeneratedAssessment{{Type: "quiz", Title: "Quiz 1", Weight: 0.2}},
		Resources:    []string{"textbook ch. 4"},
	}
}

func newGenerationApp(ctl *AiGenerationController) *fiber.App {
	app := fiber.New()
	app.Get("/api/schools/:school_id/ai-generations", ctl.ListGenerationsBySchool)
	app.Post("/api/ai/generate-course", ctl.GenerateCourse)
	return app
}

/* =========================
   Tests
========================= */

func TestGenerateCourse_UnconfiguredGenerator(t *testing.T) {
	ctl := NewAiGenerationController(&fakeGenerationRepo{}, nil)
	app := newGenerationApp(ctl)

	req := httptest.NewRequest("POST", "/api/ai/generate-course",
		strings.NewReader(`{"topic":"Photosynthesis","grade":"9","subject":"Biology"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestGenerateCourse_MissingTopicSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{course: sampleCourse()}
	ctl := NewAiGenerationController(&fakeGenerationRepo{}, gen)
	app := newGenerationApp(ctl)

	req := httptest.NewRequest("POST", "/api/ai/generate-course",
		strings.NewReader(`{"grade":"9","subject":"Biology"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Zero(t, gen.calls)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(t, body["message"], "Topic is required")
}

func TestGenerateCourse_ReturnsCourseAndSavesHistory(t *testing.T) {
	repo := &fakeGenerationRepo{}
	gen := &fakeGenerator{course: sampleCourse()}
	ctl := NewAiGenerationController(repo, gen)
	app := newGenerationApp(ctl)

	schoolID := uuid.New()
	body := `{"topic":"Photosynthesis","grade":"9","subject":"Biology","duration":"6-weeks","school_id":"` + schoolID.String() + `"}`
	req := httptest.NewRequest("POST", "/api/ai/generate-course", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got model.GeneratedCourse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "Photosynthesis Basics", got.Title)

	require.Len(t, repo.created, 1)
	hist := repo.created[0]
	require.Equal(t, schoolID, hist.AiGenerationSchoolID)
	require.Equal(t, "Photosynthesis", hist.AiGenerationTopic)
	require.NotEmpty(t, hist.AiGenerationPrompt)
	require.Contains(t, hist.AiGenerationPrompt, "Photosynthesis")
	require.Contains(t, hist.AiGenerationPrompt, "6-weeks")
	require.NotNil(t, hist.AiGenerationResult)
}

func TestGenerateCourse_NotesReachGeneratorAndHistory(t *testing.T) {
	repo := &fakeGenerationRepo{}
	gen := &fakeGenerator{course: sampleCourse()}
	ctl := NewAiGenerationController(repo, gen)
	app := newGenerationApp(ctl)

	body := `{"topic":"Photosynthesis","grade":"9","subject":"Biology",` +
		`"additional_notes":"focus on C4 plants","school_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest("POST", "/api/ai/generate-course", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Equal(t, "focus on C4 plants", gen.gotReq.AdditionalNotes)
	require.Len(t, repo.created, 1)
	require.Contains(t, repo.created[0].AiGenerationPrompt, "focus on C4 plants")
}

func TestGenerateCourse_HistoryFailureStillOK(t *testing.T) {
	repo := &fakeGenerationRepo{createErr: errors.New("db down")}
	gen := &fakeGenerator{course: sampleCourse()}
	ctl := NewAiGenerationController(repo, gen)
	app := newGenerationApp(ctl)

	body := `{"topic":"Photosynthesis","grade":"9","subject":"Biology","school_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest("POST", "/api/ai/generate-course", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGenerateCourse_GeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("completion timeout")}
	ctl := NewAiGenerationController(&fakeGenerationRepo{}, gen)
	app := newGenerationApp(ctl)

	body := `{"topic":"Photosynthesis","grade":"9","subject":"Biology"}`
	req := httptest.NewRequest("POST", "/api/ai/generate-course", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestListGenerationsBySchool_EmptyArray(t *testing.T) {
	ctl := NewAiGenerationController(&fakeGenerationRepo{}, nil)
	app := newGenerationApp(ctl)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/schools/"+uuid.NewString()+"/ai-generations", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []model.AiGenerationModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Empty(t, items)
}
