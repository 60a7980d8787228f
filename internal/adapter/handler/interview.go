package handler

import (
	"io"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-analyzer/errors"
	interviewdto "github.com/interview-coach-team/interview-analyzer/internal/adapter/dto/interview"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/interview"
)

// maxUploadBytes caps recording and resume uploads at 100 MB
const maxUploadBytes = 100 << 20

// Interview exposes interview CRUD and the processing pipeline
type Interview struct {
	service *interview.Service
	logger  *zap.Logger
}

// NewInterview creates a new interview handler
func NewInterview(service *interview.Service, logger *zap.Logger) *Interview {
	return &Interview{
		service: service,
		logger:  logger,
	}
}

// Create handles POST /v1/interviews
func (h *Interview) Create(c echo.Context) error {
	var req interviewdto.CreateInterviewRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	created, err := h.service.Create(c.Request().Context(), req.Title, req.Description, req.ResumeText)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, interviewdto.FromEntity(created))
}

// List handles GET /v1/interviews
func (h *Interview) List(c echo.Context) error {
	req := interviewdto.ListInterviewsRequest{Page: 1, PageSize: 20}
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	interviews, err := h.service.List(c.Request().Context(), req.Page, req.PageSize)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := interviewdto.ListInterviewsResponse{
		Interviews: make([]interviewdto.InterviewResponse, 0, len(interviews)),
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	for _, e := range interviews {
		resp.Interviews = append(resp.Interviews, interviewdto.FromEntity(e))
	}

	return HandleSuccess(h.logger, c, resp)
}

// Get handles GET /v1/interviews/:id
func (h *Interview) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid interview id"))
	}

	found, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, interviewdto.FromEntity(found))
}

// UploadAudio handles POST /v1/interviews/:id/audio
func (h *Interview) UploadAudio(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid interview id"))
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("missing audio file"))
	}
	if fileHeader.Size > maxUploadBytes {
		return HandleError(h.logger, c, errors.ErrUnsupportedMedia("audio file too large"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	updated, err := h.service.AttachAudio(c.Request().Context(), id, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, interviewdto.FromEntity(updated))
}

// UploadResume handles POST /v1/interviews/:id/resume
func (h *Interview) UploadResume(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid interview id"))
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("missing resume file"))
	}
	if fileHeader.Size > maxUploadBytes {
		return HandleError(h.logger, c, errors.ErrUnsupportedMedia("resume file too large"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	updated, err := h.service.AttachResume(c.Request().Context(), id, data, contentType)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, interviewdto.FromEntity(updated))
}

// Process handles POST /v1/interviews/:id/process
func (h *Interview) Process(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid interview id"))
	}

	result, err := h.service.Process(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, result)
}

// Reports handles GET /v1/interviews/:id/reports
func (h *Interview) Reports(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid interview id"))
	}

	reports, err := h.service.Reports(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, reports)
}

// Recordings handles GET /v1/interviews/:id/recordings
func (h *Interview) Recordings(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid interview id"))
	}

	keys, err := h.service.Recordings(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, interviewdto.RecordingListResponse{ObjectKeys: keys})
}
