// Package models holds the fixed vocabularies shared by every dayboard entity.
// Values are stored and transmitted verbatim, so they are case- and
// space-sensitive ("Side Hustle" carries an embedded space).
package models

// Tag classifies an inbox item.
type Tag string

const (
	TagWork       Tag = "Work"
	TagPersonal   Tag = "Personal"
	TagSideHustle Tag = "Side Hustle"
	TagIdea       Tag = "Idea"
	TagGratitude  Tag = "Gratitude"
	TagFamily     Tag = "Family"
	TagSelf       Tag = "Self"
)

// AllTags returns the tag vocabulary in display order.
func AllTags() []Tag {
	return []Tag{TagWork, TagPersonal, TagSideHustle, TagIdea, TagGratitude, TagFamily, TagSelf}
}

// Valid reports whether t is part of the tag vocabulary.
func (t Tag) Valid() bool {
	for _, v := range AllTags() {
		if t == v {
			return true
		}
	}
	return false
}

// Column is a lane of the weekly board.
type Column string

const (
	ColumnWork       Column = "Work"
	ColumnSideHustle Column = "Side Hustle"
	ColumnFamily     Column = "Family"
	ColumnSelf       Column = "Self"
)

// AllColumns returns the board columns in display order.
func AllColumns() []Column {
	return []Column{ColumnWork, ColumnSideHustle, ColumnFamily, ColumnSelf}
}

// Valid reports whether c is one of the four board columns.
func (c Column) Valid() bool {
	for _, v := range AllColumns() {
		if c == v {
			return true
		}
	}
	return false
}

// ReviewType distinguishes the morning from the evening review.
type ReviewType string

const (
	ReviewAM ReviewType = "AM"
	ReviewPM ReviewType = "PM"
)

// AllReviewTypes returns both review types.
func AllReviewTypes() []ReviewType {
	return []ReviewType{ReviewAM, ReviewPM}
}

// Valid reports whether r is AM or PM.
func (r ReviewType) Valid() bool {
	return r == ReviewAM || r == ReviewPM
}

// AutomationStatus tracks how far an automation candidate has progressed.
type AutomationStatus string

const (
	StatusToAutomate  AutomationStatus = "To Automate"
	StatusInProgress  AutomationStatus = "In Progress"
	StatusAutomated   AutomationStatus = "Automated"
	StatusNeedsReview AutomationStatus = "Needs Review"
)

// AllAutomationStatuses returns the status vocabulary in workflow order.
func AllAutomationStatuses() []AutomationStatus {
	return []AutomationStatus{StatusToAutomate, StatusInProgress, StatusAutomated, StatusNeedsReview}
}

// Valid reports whether s is part of the status vocabulary.
func (s AutomationStatus) Valid() bool {
	for _, v := range AllAutomationStatuses() {
		if s == v {
			return true
		}
	}
	return false
}
