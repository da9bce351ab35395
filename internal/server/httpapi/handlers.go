package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	csrf "github.com/utrack/gin-csrf"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/dmitrijs2005/guestbook/internal/server/config"
	"github.com/dmitrijs2005/guestbook/internal/server/models"
	"github.com/dmitrijs2005/guestbook/internal/server/services"
	"github.com/dmitrijs2005/guestbook/internal/server/storage"
)

type handlers struct {
	cfg         *config.Config
	logger      logging.Logger
	entries     *services.EntryService
	users       *services.UserService
	maintenance *services.MaintenanceService
	photos      storage.PhotoStorage
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type entryRequest struct {
	Name          string     `json:"name"`
	From          string     `json:"from"`
	Comments      string     `json:"comments"`
	CheckIn       *time.Time `json:"checkIn"`
	CheckOut      *time.Time `json:"checkOut"`
	IsRepeatGuest bool       `json:"isRepeatGuest"`
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, common.ErrorValidation, h.cfg.Dev)
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *handlers) createEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, common.ErrorValidation, h.cfg.Dev)
		return
	}

	created, err := h.entries.Create(c.Request.Context(), &models.Entry{
		Name:          req.Name,
		From:          req.From,
		Comments:      req.Comments,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		IsRepeatGuest: req.IsRepeatGuest,
	})
	if err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// submitForm is the form-encoded variant of createEntry kept for the plain
// HTML guest book page; it redirects instead of returning the record.
func (h *handlers) submitForm(c *gin.Context) {
	_, err := h.entries.Create(c.Request.Context(), &models.Entry{
		Name:     c.PostForm("name"),
		From:     c.PostForm("from"),
		Comments: c.PostForm("comments"),
	})
	if err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}

	c.Redirect(http.StatusSeeOther, "/api/entries")
}

func (h *handlers) listEntries(c *gin.Context) {
	result, err := h.entries.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}
	if result == nil {
		result = []*models.Entry{}
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) searchEntries(c *gin.Context) {
	startDate, err := parseDateParam(c.Query("startDate"))
	if err != nil {
		abortWithError(c, common.ErrorValidation, h.cfg.Dev)
		return
	}
	endDate, err := parseDateParam(c.Query("endDate"))
	if err != nil {
		abortWithError(c, common.ErrorValidation, h.cfg.Dev)
		return
	}

	result, err := h.entries.Search(c.Request.Context(), c.Query("query"), startDate, endDate)
	if err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}
	if result == nil {
		result = []*models.Entry{}
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) deleteEntry(c *gin.Context) {
	if err := h.entries.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}
	c.Status(http.StatusNoContent)
}

// allowedPhotoTypes maps the accepted sniffed MIME types to the stored
// file extension.
var allowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

func (h *handlers) uploadPhoto(c *gin.Context) {
	// Resolve the entry first so a bad id never leaves an orphaned file in
	// storage.
	if _, err := h.entries.Get(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		abortWithError(c, common.ErrorValidation, h.cfg.Dev)
		return
	}

	if fileHeader.Size > h.cfg.UploadMaxBytes {
		abortWithError(c, common.ErrorPayloadTooLarge, h.cfg.Dev)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}
	defer file.Close()

	// Sniff the real content type; the client-declared header is not trusted.
	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		abortWithError(c, err, h.cfg.Dev)
		return
	}

	ext, ok := allowedPhotoTypes[http.DetectContentType(sniff[:n])]
	if !ok {
		abortWithError(c, common.ErrorUnsupportedMedia, h.cfg.Dev)
		return
	}

	fileName := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	body := io.MultiReader(bytes.NewReader(sniff[:n]), file)

	relPath, err := h.photos.Save(c.Request.Context(), fileName, body)
	if err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}

	if _, err := h.entries.AttachPhoto(c.Request.Context(), c.Param("id"), relPath); err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo uploaded successfully", "photo": relPath})
}

func (h *handlers) backup(c *gin.Context) {
	filename, err := h.maintenance.Backup(c.Request.Context())
	if err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup completed successfully", "file": filename})
}

func (h *handlers) restore(c *gin.Context) {
	if err := h.maintenance.Restore(c.Request.Context(), c.Param("filename")); err != nil {
		abortWithError(c, err, h.cfg.Dev)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restore completed successfully"})
}

func (h *handlers) csrfToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"csrfToken": csrf.GetToken(c)})
}

// parseDateParam accepts 2006-01-02 or full RFC 3339 timestamps.
func parseDateParam(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, v); err == nil {
			return &ts, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", v)
}
