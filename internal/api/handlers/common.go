package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/folio/internal/api/middleware"
	"github.com/rohits-web03/folio/internal/auth"
	"github.com/rohits-web03/folio/internal/logging"
	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/repositories"
	"github.com/rohits-web03/folio/internal/utils"
)

// validationError is a client mistake that maps to 400 with its own message.
type validationError struct{ msg string }

func (e validationError) Error() string { return e.msg }

func invalid(msg string) error { return validationError{msg: msg} }

var errPicturesDisabled = errors.New("picture uploads are not configured")

// conflictError maps to 409.
type conflictError struct{ msg string }

func (e conflictError) Error() string { return e.msg }

// sessionUser returns the caller identity, answering 401 when there is none.
func sessionUser(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return auth.Identity{}, false
	}
	return id, true
}

// ownsRequest rejects a userId that names someone other than the session user.
func ownsRequest(w http.ResponseWriter, id auth.Identity, claimed string) bool {
	claimed = strings.TrimSpace(claimed)
	if claimed == "" || claimed == id.UserID.String() {
		return true
	}
	utils.ErrorResponse(w, http.StatusForbidden, "Cannot act on behalf of another user")
	return false
}

// writeError maps storage and validation failures onto the response.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr validationError
	var cerr conflictError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError

	switch {
	case errors.As(err, &verr):
		utils.ErrorResponse(w, http.StatusBadRequest, verr.msg)
	case errors.As(err, &cerr):
		utils.ErrorResponse(w, http.StatusConflict, cerr.msg)
	case errors.Is(err, utils.ErrEmptyBody), errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid input")
	case errors.As(err, &maxErr):
		utils.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, errPicturesDisabled):
		utils.ErrorResponse(w, http.StatusServiceUnavailable, "Picture uploads are not configured")
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
	case errors.Is(err, models.ErrEndBeforeStart),
		errors.Is(err, models.ErrMissingStartDate),
		errors.Is(err, models.ErrInvalidSkillLevel),
		errors.Is(err, models.ErrInvalidExperienceLevel),
		errors.Is(err, models.ErrNegativeYearsExperience):
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		utils.ErrorResponse(w, http.StatusConflict, "Record already exists")
	default:
		logging.From(r.Context()).Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		utils.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

// invalidate drops cached views of the caller's portfolio after a write.
func invalidate(ctx context.Context, id auth.Identity) {
	repositories.Cache.Invalidate(ctx, id.Username)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func parseRecordID(field string, candidates ...string) (uuid.UUID, error) {
	id, err := utils.ParseID(field, firstNonEmpty(candidates...))
	if err != nil {
		return uuid.Nil, invalid(err.Error())
	}
	return id, nil
}

// Optional tells an explicit JSON null apart from an absent key.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// listInput accepts either a JSON array of strings or a comma separated string.
type listInput []string

func (l *listInput) UnmarshalJSON(b []byte) error {
	var items []string
	if err := json.Unmarshal(b, &items); err == nil {
		*l = utils.CleanList(items)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return invalid("expected a list of strings")
	}
	*l = utils.SplitList(s)
	return nil
}

// parseListField reads a multipart list value the way listInput reads JSON.
func parseListField(raw string) []string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		var items []string
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return utils.CleanList(items)
		}
	}
	return utils.SplitList(raw)
}

func required(fields map[string]*string) error {
	var missing []string
	for name, v := range fields {
		if v == nil || strings.TrimSpace(*v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return invalid("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
