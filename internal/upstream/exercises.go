package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/learnflow/gateway/internal/model"
)

// Exercises lists all exercises, preserving the backend's order.
func (c *Client) Exercises(ctx context.Context, token string) []model.Exercise {
	var out []model.Exercise
	if err := c.get(ctx, "/exercises", token, &out); err != nil {
		c.fallback("/exercises", err)
		return FallbackExercises()
	}
	return out
}

// Exercise fetches one exercise by id.
func (c *Client) Exercise(ctx context.Context, token string, id int) model.Exercise {
	path := fmt.Sprintf("/exercises/%d", id)
	var out model.Exercise
	if err := c.get(ctx, path, token, &out); err != nil {
		c.fallback(path, err)
		return FallbackExercise(id)
	}
	return out
}

// Levels lists the difficulty tiers.
func (c *Client) Levels(ctx context.Context, token string) []model.Level {
	var out []model.Level
	if err := c.get(ctx, "/topics/levels", token, &out); err != nil {
		c.fallback("/topics/levels", err)
		return FallbackLevels()
	}
	return out
}

// Topics lists curriculum topics, optionally filtered to one level.
func (c *Client) Topics(ctx context.Context, token string, levelID int) []model.Topic {
	path := "/topics/"
	if levelID > 0 {
		path += "?level_id=" + strconv.Itoa(levelID)
	}
	var out []model.Topic
	if err := c.get(ctx, path, token, &out); err != nil {
		c.fallback(path, err)
		return FallbackTopics()
	}
	return out
}

// CreateExercise posts a teacher-authored exercise. Unlike the read
// accessors this surfaces failure: the author needs to know their content
// was not saved.
func (c *Client) CreateExercise(ctx context.Context, token string, req model.CreateExerciseRequest) (model.Exercise, error) {
	var out model.Exercise
	if err := c.post(ctx, "/exercises", token, req, &out); err != nil {
		return model.Exercise{}, err
	}
	return out, nil
}

func queryInt(values url.Values, key string, v int) {
	if v > 0 {
		values.Set(key, strconv.Itoa(v))
	}
}
