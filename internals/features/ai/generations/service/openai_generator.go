// file: internals/features/ai/generations/service/openai_generator.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"schoolku_backend/internals/features/ai/generations/model"
)

// CourseRequest: parameter generate; AdditionalNotes opsional dan ikut
// masuk ke prompt bila diisi.
type CourseRequest struct {
	Topic           string
	Grade           string
	Subject         string
	Duration        string
	AdditionalNotes string
}

// CourseGenerator menghasilkan kurikulum kursus lengkap dari topik singkat.
type CourseGenerator interface {
	GenerateCourse(ctx context.Context, req CourseRequest) (*model.GeneratedCourse, error)
}

const systemPrompt = "You are an expert educational curriculum designer for Ethiopian schools. " +
	"Generate a complete course curriculum for the requested topic, grade level and subject. " +
	"Respond with valid JSON only, using the keys: title (string), description (string), " +
	"objectives (array of 8-12 learning objective strings), outline (array of lesson title " +
	"strings forming a week-by-week breakdown), total_lessons (number), assessments (array of " +
	"objects with type, title and weight describing the assessment strategy) and resources " +
	"(array of recommended resource strings)."

// BuildUserPrompt menyusun instruksi user untuk model. Juga disimpan sebagai
// ringkasan permintaan di riwayat generate.
func BuildUserPrompt(req CourseRequest) string {
	duration := req.Duration
	if duration == "" {
		duration = "3-months"
	}
	var b strings.Builder
	fmt.Fprintf(&b,
		"Create a complete course about %q for grade %s, subject %s, spanning %s. "+
			"Include clear learning objectives, a week-by-week lesson outline and an "+
			"assessment strategy with weighted components.",
		req.Topic, req.Grade, req.Subject, duration,
	)
	if req.AdditionalNotes != "" {
		fmt.Fprintf(&b, " Additional notes: %s", req.AdditionalNotes)
	}
	return b.String()
}

type openAICourseGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAICourseGenerator(apiKey string) CourseGenerator {
	return &openAICourseGenerator{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (g *openAICourseGenerator) GenerateCourse(ctx context.Context, req CourseRequest) (*model.GeneratedCourse, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxCompletionTokens: 4096,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	var course model.GeneratedCourse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &course); err != nil {
		return nil, fmt.Errorf("parse generated course: %w", err)
	}
	if course.TotalLessons == 0 {
		course.TotalLessons = len(course.Outline)
	}
	return &course, nil
}
