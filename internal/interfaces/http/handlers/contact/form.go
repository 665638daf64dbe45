package contact

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/shared/logger"
)

// Historical file field names. The plural form is current; the singular one
// is kept for older cached versions of the contact page.
var attachmentFieldNames = []string{"attachments", "attachment"}

// normalizeFields turns either a multipart or a JSON request body into one
// string-keyed field map, independent of transport encoding. Malformed
// input yields an empty map, never an error: downstream treats an empty map
// as "all fields unset" and falls back to defaults.
func normalizeFields(c *gin.Context) (map[string]string, *multipart.Form) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil || form == nil {
			return map[string]string{}, nil
		}
		fields := make(map[string]string, len(form.Value))
		for name, values := range form.Value {
			if len(values) > 0 {
				fields[name] = values[0]
			}
		}
		return fields, form
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return map[string]string{}, nil
	}
	return fieldsFromJSON(body), nil
}

// fieldsFromJSON projects every scalar top-level key of a JSON object to a
// string. Composite values (objects, arrays) and nulls are dropped; a body
// that is not a JSON object at all yields an empty map.
func fieldsFromJSON(body []byte) map[string]string {
	fields := make(map[string]string)

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return fields
	}

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case json.Number:
			fields[key] = v.String()
		case bool:
			if v {
				fields[key] = "true"
			} else {
				fields[key] = "false"
			}
		}
	}
	return fields
}

// collectAttachments extracts file parts under both historical field names,
// plural first, preserving part order. Parts missing a filename, a MIME
// type, or a readable body are skipped rather than failing the request.
func collectAttachments(form *multipart.Form, log logger.Interface) []domain.Attachment {
	if form == nil {
		return nil
	}

	var attachments []domain.Attachment
	for _, fieldName := range attachmentFieldNames {
		for _, header := range form.File[fieldName] {
			att, ok := readAttachment(header, log)
			if ok {
				attachments = append(attachments, att)
			}
		}
	}
	return attachments
}

func readAttachment(header *multipart.FileHeader, log logger.Interface) (domain.Attachment, bool) {
	if header.Filename == "" {
		log.Debugw("skipping attachment without filename")
		return domain.Attachment{}, false
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		log.Debugw("skipping attachment without content type", "filename", header.Filename)
		return domain.Attachment{}, false
	}

	file, err := header.Open()
	if err != nil {
		log.Warnw("skipping unreadable attachment", "filename", header.Filename, "error", err)
		return domain.Attachment{}, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Warnw("skipping unreadable attachment", "filename", header.Filename, "error", err)
		return domain.Attachment{}, false
	}

	return domain.Attachment{
		Filename:    header.Filename,
		Content:     content,
		ContentType: contentType,
	}, true
}
