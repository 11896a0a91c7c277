package domain

import "strings"

// Tag is a predefined label attached to a record.
type Tag string

const (
	TagDaily     Tag = "daily"
	TagFirstTime Tag = "first_time"
	TagMilestone Tag = "milestone"
	TagGrowth    Tag = "growth"
	TagFun       Tag = "fun"
	TagHoliday   Tag = "holiday"
)

// AllTags lists the tags offered by the record editor, in display order.
var AllTags = []Tag{TagDaily, TagFirstTime, TagMilestone, TagGrowth, TagFun, TagHoliday}

var tagLabels = map[Tag]string{
	TagDaily:     "日常",
	TagFirstTime: "第一次",
	TagMilestone: "里程碑",
	TagGrowth:    "成长",
	TagFun:       "趣事",
	TagHoliday:   "节日",
}

func (t Tag) String() string { return string(t) }

func (t Tag) IsValid() bool {
	_, ok := tagLabels[t]
	return ok
}

// Label returns the display label of the tag.
func (t Tag) Label() string {
	if l, ok := tagLabels[t]; ok {
		return l
	}
	return string(t)
}

// ParseTag accepts either the slug or the display label.
func ParseTag(s string) (Tag, bool) {
	if t := Tag(s); t.IsValid() {
		return t, true
	}
	for t, l := range tagLabels {
		if l == s {
			return t, true
		}
	}
	return "", false
}

// FilterKind selects which records a listing shows.
// Values other than the four built-ins are treated as a tag category.
type FilterKind string

const (
	FilterAll   FilterKind = "all"
	FilterPhoto FilterKind = "photo"
	FilterVideo FilterKind = "video"
	FilterText  FilterKind = "text"
)

func (f FilterKind) String() string { return string(f) }

// IsBuiltin reports whether f is one of all/photo/video/text.
func (f FilterKind) IsBuiltin() bool {
	switch f {
	case FilterAll, FilterPhoto, FilterVideo, FilterText:
		return true
	}
	return false
}

// filterAllLabel is the label the category picker shows for FilterAll.
const filterAllLabel = "全部"

// Normalize trims f and maps "" and the "全部" label to FilterAll.
func (f FilterKind) Normalize() FilterKind {
	switch f = FilterKind(strings.TrimSpace(string(f))); f {
	case "", filterAllLabel:
		return FilterAll
	}
	return f
}

// Match reports whether r passes the filter.
func (f FilterKind) Match(r *Record) bool {
	switch f.Normalize() {
	case FilterAll:
		return true
	case FilterPhoto:
		return r.HasPhotos()
	case FilterVideo:
		return r.HasVideo()
	case FilterText:
		return r.HasText()
	default:
		tag, ok := ParseTag(strings.TrimSpace(string(f)))
		if !ok {
			return false
		}
		return r.HasTag(tag)
	}
}
