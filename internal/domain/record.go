package domain

import (
	"strings"
	"time"
)

// Layouts of the textual date and time carried by a Record.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// MaxPhotos is the upper bound on photos attached to one record.
const MaxPhotos = 9

// Record is a single journal entry about a baby.
type Record struct {
	ID         string    `json:"id"`
	OwnerRef   string    `json:"ownerRef"`
	BabyRef    string    `json:"babyId,omitempty"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Photos     []string  `json:"photos"`
	Video      string    `json:"video,omitempty"`
	Text       string    `json:"text"`
	Tags       []Tag     `json:"tags"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
}

// HasPhotos reports whether the record carries at least one photo.
func (r *Record) HasPhotos() bool { return len(r.Photos) > 0 }

// HasVideo reports whether the record carries a video reference.
func (r *Record) HasVideo() bool { return r.Video != "" }

// HasText reports whether the record carries non-blank text.
func (r *Record) HasText() bool { return strings.TrimSpace(r.Text) != "" }

// HasContent reports whether at least one of photos, video or text is present.
func (r *Record) HasContent() bool {
	return r.HasPhotos() || r.HasVideo() || r.HasText()
}

// HasTag reports whether the record is labelled with tag.
func (r *Record) HasTag(tag Tag) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Thumbnail returns the first photo, else the video, else "".
func (r *Record) Thumbnail() string {
	if r.HasPhotos() {
		return r.Photos[0]
	}
	return r.Video
}

// SortKey is the lexicographic ordering key "YYYY-MM-DD HH:MM".
func (r *Record) SortKey() string {
	return r.Date + " " + r.Time
}

// Validate checks the record invariants that hold for every stored record.
func (r *Record) Validate() error {
	var errs []FieldError

	if !r.HasContent() {
		errs = append(errs, FieldError{Field: "content", Message: "add at least one photo, video or text"})
	}
	if len(r.Photos) > MaxPhotos {
		errs = append(errs, FieldError{Field: "photos", Message: "at most 9 photos"})
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if _, err := time.Parse(TimeLayout, r.Time); err != nil {
		errs = append(errs, FieldError{Field: "time", Message: "must be HH:MM"})
	}
	for _, t := range r.Tags {
		if !t.IsValid() {
			errs = append(errs, FieldError{Field: "tags", Message: "unknown tag " + string(t)})
			break
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// RecordScope narrows owner-scoped record reads. BabyRef "" means every
// baby of the owner.
type RecordScope struct {
	OwnerRef string
	BabyRef  string
}
