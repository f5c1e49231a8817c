package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/folio/internal/repositories"
	"github.com/rohits-web03/folio/internal/utils"
)

// entryInput is the request body for one kind of owned portfolio entry.
// Pointer fields left nil keep their stored value on update.
type entryInput[T any] interface {
	recordRef() string
	claimedOwner() string
	validateCreate() error
	applyTo(rec *T) error
}

// resource serves list/create/update/delete for one owned table.
type resource[T any, I any, PI interface {
	*I
	entryInput[T]
}] struct {
	label    string // "Experience"
	idParam  string // "experienceId"
	order    string
	setOwner func(*T, uuid.UUID)
	// check runs inside the write transaction, before the insert or update.
	check func(ctx context.Context, tx *gorm.DB, rec *T) error
	// duplicate replaces the generic 409 message when a unique index rejects the write.
	duplicate string
}

func (res resource[T, I, PI]) translate(err error) error {
	if res.duplicate != "" && errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflictError{msg: res.duplicate}
	}
	return err
}

func (res resource[T, I, PI]) list(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionUser(w, r)
	if !ok {
		return
	}
	if !ownsRequest(w, id, r.URL.Query().Get("userId")) {
		return
	}

	records, err := repositories.ListOwned[T](r.Context(), repositories.DB, id.UserID, res.order)
	if err != nil {
		writeError(w, r, err, res.label+" not found")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: res.label + " entries retrieved",
		Data:    records,
	})
}

func (res resource[T, I, PI]) create(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var in I
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		writeError(w, r, err, "")
		return
	}
	input := PI(&in)
	if !ownsRequest(w, id, input.claimedOwner()) {
		return
	}
	if err := input.validateCreate(); err != nil {
		writeError(w, r, err, "")
		return
	}

	var rec T
	if err := input.applyTo(&rec); err != nil {
		writeError(w, r, err, "")
		return
	}
	res.setOwner(&rec, id.UserID)

	err := repositories.DB.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		if res.check != nil {
			if err := res.check(r.Context(), tx, &rec); err != nil {
				return err
			}
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		writeError(w, r, res.translate(err), res.label+" not found")
		return
	}

	invalidate(r.Context(), id)
	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: res.label + " created",
		Data:    rec,
	})
}

func (res resource[T, I, PI]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var in I
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		writeError(w, r, err, "")
		return
	}
	input := PI(&in)
	if !ownsRequest(w, id, firstNonEmpty(input.claimedOwner(), r.URL.Query().Get("userId"))) {
		return
	}

	q := r.URL.Query()
	recID, err := parseRecordID(res.idParam, q.Get("id"), q.Get(res.idParam), input.recordRef())
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	var rec *T
	err = repositories.DB.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		found, err := repositories.FindOwned[T](r.Context(), tx, recID, id.UserID)
		if err != nil {
			return err
		}
		if err := input.applyTo(found); err != nil {
			return err
		}
		if res.check != nil {
			if err := res.check(r.Context(), tx, found); err != nil {
				return err
			}
		}
		rec = found
		return tx.Save(found).Error
	})
	if err != nil {
		writeError(w, r, res.translate(err), res.label+" not found")
		return
	}

	invalidate(r.Context(), id)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: res.label + " updated",
		Data:    rec,
	})
}

func (res resource[T, I, PI]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	if !ownsRequest(w, id, q.Get("userId")) {
		return
	}
	recID, err := parseRecordID(res.idParam, q.Get("id"), q.Get(res.idParam))
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	if err := repositories.DeleteOwned[T](r.Context(), repositories.DB, recID, id.UserID); err != nil {
		writeError(w, r, err, res.label+" not found")
		return
	}

	invalidate(r.Context(), id)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: res.label + " deleted",
		Data:    map[string]string{"id": recID.String()},
	})
}
