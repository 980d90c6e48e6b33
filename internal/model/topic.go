package model

// Level is a difficulty tier grouping topics (Beginner ... Expert).
type Level struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// Topic is a unit of the Python curriculum within a level.
type Topic struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LevelID     int    `json:"level_id"`
}
