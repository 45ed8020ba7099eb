package validation

import (
	"strings"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"
)

func BuildCreateCommentInput(req dto.CreateCommentRequest) (domain.CreateCommentInput, error) {
	if err := Struct(req); err != nil {
		return domain.CreateCommentInput{}, err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.CreateCommentInput{}, required("content")
	}
	return domain.CreateCommentInput{TaskID: req.Task, Content: content}, nil
}

func BuildCommentContent(req dto.UpdateCommentRequest) (string, error) {
	if err := Struct(req); err != nil {
		return "", err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return "", required("content")
	}
	return content, nil
}
