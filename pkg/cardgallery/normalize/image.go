package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// NoImagePlaceholder is used when a row has no image cell.
	NoImagePlaceholder = "https://placehold.co/600x400/cccccc/ffffff?text=No+Image"
	// InvalidDriveLinkPlaceholder is used for Drive links without a file id.
	InvalidDriveLinkPlaceholder = "https://placehold.co/600x400/e74c3c/ffffff?text=Invalid+Drive+Link"

	driveHost         = "drive.google.com"
	driveThumbnailFmt = "https://drive.google.com/thumbnail?id=%s&sz=w600"
)

// driveFileID matches the share-link forms file/d/<id>, open?id=<id> and uc?id=<id>.
var driveFileID = regexp.MustCompile(`drive\.google\.com/(?:file/d/|open\?id=|uc\?id=)([a-zA-Z0-9_-]{25,})`)

// ImageURL converts an image cell into a directly embeddable URL.
// Google Drive share links are rewritten to the Drive thumbnail endpoint;
// any other present value is returned unchanged.
func ImageURL(cell interface{}) string {
	if !IsPresent(cell) {
		return NoImagePlaceholder
	}
	url := Text(cell)
	if !strings.Contains(url, driveHost) {
		return url
	}
	if id := DriveFileID(url); id != "" {
		return fmt.Sprintf(driveThumbnailFmt, id)
	}
	return InvalidDriveLinkPlaceholder
}

// DriveFileID extracts the file identifier from a Drive share link.
// It returns "" when the link carries no identifier.
func DriveFileID(url string) string {
	m := driveFileID.FindStringSubmatch(url)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
