package upstream

import (
	"context"
	"fmt"

	"github.com/learnflow/gateway/internal/model"
)

// Stats returns the aggregate stats for one student.
func (c *Client) Stats(ctx context.Context, token string, studentID int) model.StudentStats {
	path := fmt.Sprintf("/analytics/student/%d/stats", studentID)
	var out model.StudentStats
	if err := c.get(ctx, path, token, &out); err != nil {
		c.fallback(path, err)
		return FallbackStats(studentID)
	}
	return out
}

// Progress returns the dashboard progress view for one student.
func (c *Client) Progress(ctx context.Context, token string, studentID int) model.StudentProgress {
	path := fmt.Sprintf("/analytics/student/%d/progress", studentID)
	var out model.StudentProgress
	if err := c.get(ctx, path, token, &out); err != nil {
		c.fallback(path, err)
		return FallbackProgress()
	}
	return out
}

// StudentProgress is the teacher-facing progress view with extra aggregates.
// Same endpoint as Progress; only the fallback differs.
func (c *Client) StudentProgress(ctx context.Context, token string, studentID int) model.StudentProgress {
	path := fmt.Sprintf("/analytics/student/%d/progress", studentID)
	var out model.StudentProgress
	if err := c.get(ctx, path, token, &out); err != nil {
		c.fallback(path, err)
		return FallbackStudentProgress()
	}
	return out
}

// Students lists the teacher dashboard roster.
func (c *Client) Students(ctx context.Context, token string) []model.StudentSummary {
	var out []model.StudentSummary
	if err := c.get(ctx, "/analytics/students", token, &out); err != nil {
		c.fallback("/analytics/students", err)
		return FallbackStudents()
	}
	return out
}
