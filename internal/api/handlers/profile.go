package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/folio/internal/dashboard"
	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/repositories"
	"github.com/rohits-web03/folio/internal/utils"
)

const (
	maxPictureSize = 5 << 20 // 5 MB
	presignExpiry  = 15 * time.Minute
)

var pictureTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type profileInput struct {
	UserID            string     `json:"userId"`
	Tagline           *string    `json:"tagline"`
	Bio               *string    `json:"bio"`
	Hobbies           *listInput `json:"hobbies"`
	Languages         *listInput `json:"languages"`
	Picture           *string    `json:"picture"`
	PictureKey        *string    `json:"pictureKey"`
	PhoneNumber       *string    `json:"phoneNumber"`
	Address           *string    `json:"address"`
	LevelOfExperience *string    `json:"levelOfExperience"`
	YearsOfExperience *int       `json:"yearsOfExperience"`
}

// profileFromForm reads the same fields from a multipart form. Only keys present
// in the form are applied.
func profileFromForm(form *multipart.Form) (profileInput, error) {
	var in profileInput
	get := func(key string) *string {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			v := vals[0]
			return &v
		}
		return nil
	}

	in.UserID = firstNonEmpty(form.Value["userId"]...)
	in.Tagline = get("tagline")
	in.Bio = get("bio")
	in.Picture = get("picture")
	in.PhoneNumber = get("phoneNumber")
	in.Address = get("address")
	in.LevelOfExperience = get("levelOfExperience")
	if v := get("hobbies"); v != nil {
		l := listInput(parseListField(*v))
		in.Hobbies = &l
	}
	if v := get("languages"); v != nil {
		l := listInput(parseListField(*v))
		in.Languages = &l
	}
	if v := get("yearsOfExperience"); v != nil && strings.TrimSpace(*v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(*v))
		if err != nil {
			return in, invalid("yearsOfExperience must be a whole number")
		}
		in.YearsOfExperience = &n
	}
	return in, nil
}

func (in *profileInput) applyTo(p *models.Profile) error {
	setString(&p.Tagline, in.Tagline)
	setString(&p.Bio, in.Bio)
	setString(&p.PhoneNumber, in.PhoneNumber)
	setString(&p.Address, in.Address)
	if in.Picture != nil {
		p.Picture = utils.NormalizeURL(*in.Picture)
	}
	if in.Hobbies != nil {
		p.Hobbies = models.StringList(*in.Hobbies)
	}
	if in.Languages != nil {
		p.Languages = models.StringList(*in.Languages)
	}
	if in.LevelOfExperience != nil {
		level, err := parseExperienceLevel(*in.LevelOfExperience)
		if err != nil {
			return err
		}
		p.LevelOfExperience = level
	}
	if in.YearsOfExperience != nil {
		p.YearsOfExperience = *in.YearsOfExperience
	}
	return nil
}

func parseExperienceLevel(raw string) (models.ExperienceLevel, error) {
	raw = strings.TrimSpace(raw)
	for _, l := range []models.ExperienceLevel{models.LevelJunior, models.LevelMid, models.LevelSenior} {
		if strings.EqualFold(raw, string(l)) {
			return l, nil
		}
	}
	return "", models.ErrInvalidExperienceLevel
}

func findProfile(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/profile [get]
func GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionUser(w, r)
	if !ok {
		return
	}
	if !ownsRequest(w, id, r.URL.Query().Get("userId")) {
		return
	}

	p, err := findProfile(r.Context(), repositories.DB, id.UserID)
	if err != nil {
		writeError(w, r, err, "Profile not found")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile retrieved",
		Data:    p,
	})
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Accepts JSON, or multipart/form-data with an optional image in the "file" field.
// @Description List fields take a JSON array or a comma separated string. The profile is created on first save.
// @Tags Profile
// @Accept json,multipart/form-data
// @Produce json
// @Param file formData file false "Profile picture (≤5 MB)"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 403 {object} utils.Payload
// @Failure 503 {object} utils.Payload
// @Router /api/portfolio/profile [patch]
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var (
		in     profileInput
		upload *multipart.FileHeader
	)
	if isMultipart(r) {
		r.Body = http.MaxBytesReader(w, r.Body, maxPictureSize+(1<<20))
		if err := r.ParseMultipartForm(maxPictureSize); err != nil {
			utils.ErrorResponse(w, http.StatusBadRequest, "Invalid profile form")
			return
		}
		defer r.MultipartForm.RemoveAll()

		parsed, err := profileFromForm(r.MultipartForm)
		if err != nil {
			writeError(w, r, err, "")
			return
		}
		in = parsed
		if files := r.MultipartForm.File["file"]; len(files) > 0 {
			upload = files[0]
		}
	} else if err := utils.DecodeJSON(w, r, &in); err != nil {
		writeError(w, r, err, "")
		return
	}

	if !ownsRequest(w, id, in.UserID) {
		return
	}

	if upload != nil {
		url, err := storePicture(r.Context(), id.UserID, upload)
		if err != nil {
			writeError(w, r, err, "")
			return
		}
		in.Picture = &url
	}
	if in.PictureKey != nil {
		url, err := confirmPicture(r.Context(), id.UserID, *in.PictureKey)
		if err != nil {
			writeError(w, r, err, "")
			return
		}
		in.Picture = &url
	}

	var profile *models.Profile
	err := repositories.DB.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		p, err := findProfile(r.Context(), tx, id.UserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			empty := models.EmptyProfile(id.UserID)
			p, err = &empty, nil
		}
		if err != nil {
			return err
		}
		if err := in.applyTo(p); err != nil {
			return err
		}
		profile = p
		return tx.Save(p).Error
	})
	if err != nil {
		writeError(w, r, err, "Profile not found")
		return
	}

	invalidate(r.Context(), id)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile updated",
		Data:    profile,
	})
}

// GetProfileCompleteness godoc
// @Summary Per-field completeness of the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.Payload{data=dashboard.Completeness}
// @Failure 401 {object} utils.Payload
// @Router /api/portfolio/profile/completeness [get]
func GetProfileCompleteness(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionUser(w, r)
	if !ok {
		return
	}

	p, err := findProfile(r.Context(), repositories.DB, id.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		empty := models.EmptyProfile(id.UserID)
		p, err = &empty, nil
	}
	if err != nil {
		writeError(w, r, err, "Profile not found")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile completeness computed",
		Data:    dashboard.Evaluate(*p),
	})
}

// PresignProfilePicture godoc
// @Summary Get a presigned URL to upload a profile picture directly to storage
// @Description PUT the image to uploadUrl, then PATCH the profile with {"pictureKey": key}.
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 503 {object} utils.Payload
// @Router /api/portfolio/profile/picture/presign [post]
func PresignProfilePicture(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var in struct {
		ContentType string `json:"contentType"`
	}
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		writeError(w, r, err, "")
		return
	}
	if repositories.Pictures == nil {
		writeError(w, r, errPicturesDisabled, "")
		return
	}

	contentType, _, _ := mime.ParseMediaType(strings.TrimSpace(in.ContentType))
	ext, ok := pictureTypes[contentType]
	if !ok {
		utils.ErrorResponse(w, http.StatusBadRequest, "Picture must be a JPEG, PNG, GIF or WebP image")
		return
	}

	key := pictureObjectKey(id.UserID, ext)
	url, err := repositories.Pictures.PresignPut(r.Context(), key, contentType, presignExpiry)
	if err != nil {
		writeError(w, r, fmt.Errorf("presign picture: %w", err), "")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Upload URL created",
		Data: map[string]any{
			"uploadUrl": url,
			"key":       key,
			"publicUrl": repositories.Pictures.PublicURL(key),
			"expiresIn": int(presignExpiry.Seconds()),
		},
	})
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

func pictureObjectKey(userID uuid.UUID, ext string) string {
	return fmt.Sprintf("profiles/%s/%s%s", userID, uuid.NewString(), ext)
}

// storePicture sniffs the upload, sends it to the picture store and returns its public URL.
func storePicture(ctx context.Context, userID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	if repositories.Pictures == nil {
		return "", errPicturesDisabled
	}
	if fh.Size > maxPictureSize {
		return "", invalid("Picture exceeds 5 MB limit")
	}

	f, err := fh.Open()
	if err != nil {
		return "", invalid("Invalid picture upload")
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", invalid("Invalid picture upload")
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := pictureTypes[contentType]
	if !ok {
		return "", invalid("Picture must be a JPEG, PNG, GIF or WebP image")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	key := pictureObjectKey(userID, ext)
	if err := repositories.Pictures.Upload(ctx, key, f, fh.Size, contentType); err != nil {
		return "", fmt.Errorf("upload picture: %w", err)
	}
	return repositories.Pictures.PublicURL(key), nil
}

// confirmPicture checks that a presigned upload landed under the caller's prefix.
func confirmPicture(ctx context.Context, userID uuid.UUID, key string) (string, error) {
	if repositories.Pictures == nil {
		return "", errPicturesDisabled
	}
	key = strings.TrimSpace(key)
	if !strings.HasPrefix(key, fmt.Sprintf("profiles/%s/", userID)) || strings.Contains(key, "..") {
		return "", invalid("invalid pictureKey")
	}
	ok, err := repositories.Pictures.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("check picture: %w", err)
	}
	if !ok {
		return "", invalid("Picture has not been uploaded")
	}
	return repositories.Pictures.PublicURL(key), nil
}
