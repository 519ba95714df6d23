package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"main/apperror"
	"main/dto"
	"main/usecase"
	"main/utils"
)

type NoteHandler struct {
	Notes *usecase.NoteService
}

func NewNoteHandler(notes *usecase.NoteService) *NoteHandler {
	return &NoteHandler{Notes: notes}
}

// ListNotes handles GET /notes.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID := c.GetString("user_id")

	notes, err := h.Notes.ListNotes(c.Request.Context(), userID)
	if err != nil {
		if apperror.StatusCode(err) >= 500 {
			log.Printf("List notes error: %v", err)
		}
		utils.Fail(c, err)
		return
	}

	utils.Success(c, gin.H{"notes": notes})
}

// CreateNote handles POST /notes.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.Notes.CreateNote(c.Request.Context(), userID, req)
	if err != nil {
		if apperror.StatusCode(err) >= 500 {
			log.Printf("Create note error: %v", err)
		}
		utils.Fail(c, err)
		return
	}

	utils.Success(c, gin.H{"note": note})
}

// UpdateNote handles PUT /notes/:id.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.Notes.UpdateNote(c.Request.Context(), userID, noteID, req)
	if err != nil {
		if apperror.StatusCode(err) >= 500 {
			log.Printf("Update note error: %v", err)
		}
		utils.Fail(c, err)
		return
	}

	utils.Success(c, gin.H{"note": note})
}

// DeleteNote handles DELETE /notes/:id.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	if err := h.Notes.DeleteNote(c.Request.Context(), userID, noteID); err != nil {
		if apperror.StatusCode(err) >= 500 {
			log.Printf("Delete note error: %v", err)
		}
		utils.Fail(c, err)
		return
	}

	utils.Message(c, "Note deleted successfully")
}
