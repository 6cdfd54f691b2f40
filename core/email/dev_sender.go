package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender implements Sender for local development. It saves each message
// as a plain-text body plus a JSON metadata file instead of handing it to a
// real transport, so rendered notices can be inspected on disk.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that saves messages to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) Sender {
	return &DevSender{dir: dir}
}

// messageMetadata is the message envelope saved to JSON, excluding the body.
type messageMetadata struct {
	MessageID string `json:"message_id"`
	Timestamp string `json:"timestamp"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

// Send saves the message body as .txt and its metadata as .json in the
// configured directory. Filenames are timestamp-prefixed for chronological
// ordering.
func (d *DevSender) Send(ctx context.Context, params SendParams) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSend, err)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSend, err)
	}

	// Prefer tag for the filename, fall back to subject.
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}

	now := time.Now()
	baseFilename := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier))

	bodyPath := filepath.Join(d.dir, baseFilename+".txt")
	if err := os.WriteFile(bodyPath, []byte(params.BodyText), 0644); err != nil {
		return fmt.Errorf("%w: failed to write body file: %v", ErrFailedToSend, err)
	}

	metadata := messageMetadata{
		MessageID: uuid.NewString(),
		Timestamp: now.Format(time.RFC3339),
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
	}

	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSend, err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("%w: failed to write metadata file: %v", ErrFailedToSend, err)
	}

	return nil
}

// sanitizeRegex removes filesystem-unsafe characters from filenames.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts an identifier into a safe lowercase filename,
// replacing spaces with underscores and truncating to a reasonable length.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "message"
	}

	return strings.ToLower(s)
}
