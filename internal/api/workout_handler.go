package api

import (
	"net/http"

	"fittrack/internal/domain"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request Structs ---

type CreateWorkoutRequest struct {
	Title         string            `json:"title"`
	ScheduledDate string            `json:"scheduledDate"`
	ScheduledTime string            `json:"scheduledTime"`
	Exercises     []domain.Exercise `json:"exercises"`
}

type UpdateWorkoutRequest struct {
	Title         *string            `json:"title"`
	ScheduledDate *string            `json:"scheduledDate"`
	ScheduledTime *string            `json:"scheduledTime"`
	Exercises     *[]domain.Exercise `json:"exercises"`
	Status        *string            `json:"status"`
	Duration      *int               `json:"duration"`
	Notes         *string            `json:"notes"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

// --- Handler Methods ---

// CreateWorkout schedules a new workout owned by the caller.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), identity.UserID, service.WorkoutInput{
		Title:         req.Title,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Exercises:     req.Exercises,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Workout created successfully", workout)
}

// ListWorkouts returns the caller's workouts, optionally filtered by status
// and an inclusive scheduled-date window.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	workouts, err := h.workoutService.List(c.Request.Context(), identity.UserID, service.ListFilter{
		Status:    c.Query("status"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Workouts retrieved successfully", workouts)
}

// UpdateWorkout applies a partial update to an owned workout.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), identity.UserID, c.Param("id"), service.WorkoutUpdate{
		Title:         req.Title,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Exercises:     req.Exercises,
		Status:        req.Status,
		Duration:      req.Duration,
		Notes:         req.Notes,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Workout updated successfully", workout)
}

// DeleteWorkout removes a whole owned workout aggregate.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Workout deleted successfully")
}

// AddComment appends a comment to an owned workout.
func (h *WorkoutHandler) AddComment(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comments, err := h.workoutService.AddComment(c.Request.Context(), identity.UserID, c.Param("id"), req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Comment added successfully", comments)
}

// UpdateComment edits a comment located by its ID within an owned workout.
func (h *WorkoutHandler) UpdateComment(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.workoutService.UpdateComment(c.Request.Context(), identity.UserID, c.Param("id"), c.Param("commentId"), req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Comment updated successfully", comment)
}

// DeleteComment removes a comment and returns the remaining sequence.
func (h *WorkoutHandler) DeleteComment(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	comments, err := h.workoutService.DeleteComment(c.Request.Context(), identity.UserID, c.Param("id"), c.Param("commentId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Comment deleted successfully", comments)
}
