package validators

import (
	"regexp"
	"strings"

	"socketPaint/internal/errs"
	"socketPaint/internal/models"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateRoomName rejects names that are empty after trimming, before any
// store call happens.
func ValidateRoomName(roomName string) []error {
	var errors []error
	if strings.TrimSpace(roomName) == "" {
		errors = append(errors, errs.ErrInvalidRoomName)
	}
	return errors
}

// ValidateStroke checks the styling fields. Eraser strokes may omit the
// color; pen strokes must carry a 6-hex-digit one.
func ValidateStroke(stroke *models.StrokePayload) []error {
	var errors []error
	if stroke == nil {
		errors = append(errors, errs.ErrInvalidStroke)
		return errors
	}
	if stroke.LineWidth <= 0 {
		errors = append(errors, errs.ErrInvalidStroke)
	}
	if !stroke.IsEraser && !colorPattern.MatchString(stroke.Color) {
		errors = append(errors, errs.ErrInvalidStroke)
	}
	if stroke.IsEraser && stroke.Color != "" && !colorPattern.MatchString(stroke.Color) {
		errors = append(errors, errs.ErrInvalidStroke)
	}
	return errors
}
