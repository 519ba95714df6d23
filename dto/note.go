package dto

import (
	"encoding/json"
	"time"

	"main/model"
)

// TagList tolerates clients sending tags as something other than a string
// array: null, a plain string, or a mixed array all decode to empty.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		*t = TagList{}
		return nil
	}
	if tags == nil {
		tags = []string{}
	}
	*t = TagList(tags)
	return nil
}

type NoteRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Tags    TagList `json:"tags"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToNoteResponse(note *model.Note) NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:        note.ID.Hex(),
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, ToNoteResponse(note))
	}
	return out
}
