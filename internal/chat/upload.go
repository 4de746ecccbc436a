package chat

import (
	"mime"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/angelmondragon/sellerdash/pkg/envelope"
)

const (
	MaxUploadSize     = 5 * 1024 * 1024
	MaxFileNameLength = 125
)

const (
	messageEmptyFile       = "O arquivo está vazio."
	messageMimeNotAllowed  = "Tipo de arquivo não permitido. Envie imagens JPG, PNG ou arquivos PDF."
	messageFileTooLarge    = "Arquivo muito grande. O tamanho máximo é 5 MB."
	messageFileNameTooLong = "Nome do arquivo muito longo. Use no máximo 125 caracteres."
	messageFileNameInvalid = "Nome do arquivo inválido. Use apenas letras, números, ponto, hífen e sublinhado."
)

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
	"application/pdf": {},
}

var fileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// uploadViolation is a rejected upload: the envelope message and the field
// it is reported under.
type uploadViolation struct {
	message string
	field   envelope.ErrorField
}

// checkUpload applies the attachment rules in order and returns the first one
// broken, plus the effective content type when the upload is acceptable.
func checkUpload(up Upload) (string, *uploadViolation) {
	if len(up.Content) == 0 {
		return "", violation(messageEmptyFile, "file", 0)
	}
	size := int64(len(up.Content))
	if up.Size > size {
		size = up.Size
	}

	contentType := detectContentType(up)
	if _, ok := allowedMimeTypes[contentType]; !ok {
		return "", violation(messageMimeNotAllowed, "content_type", contentType)
	}
	if size > MaxUploadSize {
		return "", violation(messageFileTooLarge, "size", size)
	}
	if utf8.RuneCountInString(up.FileName) > MaxFileNameLength {
		return "", violation(messageFileNameTooLong, "file_name", up.FileName)
	}
	if !fileNamePattern.MatchString(up.FileName) {
		return "", violation(messageFileNameInvalid, "file_name", up.FileName)
	}
	return contentType, nil
}

// TooLarge is the rejection for a file over MaxUploadSize, for callers that
// stop reading before the content reaches the service.
func TooLarge(size int64) envelope.Envelope[Attachment] {
	v := violation(messageFileTooLarge, "size", size)
	return envelope.Invalid[Attachment](v.message, v.field)
}

func violation(message, key string, value any) *uploadViolation {
	return &uploadViolation{
		message: message,
		field:   envelope.ErrorField{Key: key, Error: message, Value: value},
	}
}

func detectContentType(up Upload) string {
	declared := strings.TrimSpace(up.ContentType)
	if declared == "" {
		declared = mimetype.Detect(up.Content).String()
	}
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return strings.ToLower(declared)
	}
	return strings.ToLower(mediaType)
}
