package usecase

import "strings"

// Required-field checks only. Field values are not sanitized or cross-checked
// beyond presence; reference existence is verified separately, after these
// checks pass.

func ValidateLeadInput(input LeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Source) == "" {
		errors = append(errors, ValidationError{"source", "is required"})
	}
	if strings.TrimSpace(input.SalesAgent) == "" {
		errors = append(errors, ValidationError{"salesAgent", "is required"})
	}
	if strings.TrimSpace(input.Status) == "" {
		errors = append(errors, ValidationError{"status", "is required"})
	}
	if input.TimeToClose == nil {
		errors = append(errors, ValidationError{"timeToClose", "is required"})
	}
	if strings.TrimSpace(input.Priority) == "" {
		errors = append(errors, ValidationError{"priority", "is required"})
	}
	if len(input.Tags) == 0 {
		errors = append(errors, ValidationError{"tags", "is required"})
	}

	return errors
}

func ValidateAgentInput(input AgentInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	}

	return errors
}

func ValidateCommentInput(input CommentInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.CommentText) == "" {
		errors = append(errors, ValidationError{"commentText", "is required"})
	}
	if strings.TrimSpace(input.Author) == "" {
		errors = append(errors, ValidationError{"author", "is required"})
	}

	return errors
}
