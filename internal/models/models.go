package models

import "time"

// SettingsID is the key of the singleton user settings row.
const SettingsID = "default"

// TextToolID is the key of the singleton scratchpad row.
const TextToolID = "default"

// CategoryIDs is the fixed set of life categories used as a partition key
// across most entities.
var CategoryIDs = []string{
	"physical", "hobby", "income", "assets",
	"family", "oneonone", "politics", "spiritual",
}

func IsCategoryID(id string) bool {
	for _, c := range CategoryIDs {
		if c == id {
			return true
		}
	}
	return false
}

type GoalType string

const (
	GoalShort  GoalType = "short"
	GoalMedium GoalType = "medium"
	GoalLong   GoalType = "long"
)

func (t GoalType) Valid() bool {
	switch t {
	case GoalShort, GoalMedium, GoalLong:
		return true
	}
	return false
}

type TrackerFieldType string

const (
	TrackerFieldCheckbox TrackerFieldType = "checkbox"
	TrackerFieldText     TrackerFieldType = "text"
	TrackerFieldDropdown TrackerFieldType = "dropdown"
)

func (t TrackerFieldType) Valid() bool {
	switch t {
	case TrackerFieldCheckbox, TrackerFieldText, TrackerFieldDropdown:
		return true
	}
	return false
}

type EntryFieldType string

const (
	EntryFieldText     EntryFieldType = "text"
	EntryFieldCheckbox EntryFieldType = "checkbox"
	EntryFieldRadio    EntryFieldType = "radio"
	EntryFieldArray    EntryFieldType = "array"
	EntryFieldTexts    EntryFieldType = "texts"
)

func (t EntryFieldType) Valid() bool {
	switch t {
	case EntryFieldText, EntryFieldCheckbox, EntryFieldRadio, EntryFieldArray, EntryFieldTexts:
		return true
	}
	return false
}

type SectionKind string

const (
	SectionKindCustom           SectionKind = "custom"
	SectionKindGoals            SectionKind = "goals"
	SectionKindContactsWebsites SectionKind = "contacts_websites"
)

func (k SectionKind) Valid() bool {
	switch k {
	case SectionKindCustom, SectionKindGoals, SectionKindContactsWebsites:
		return true
	}
	return false
}

type SectionGroup string

const (
	SectionGroupNone     SectionGroup = ""
	SectionGroupDiet     SectionGroup = "diet"
	SectionGroupExercise SectionGroup = "exercise"
)

func (g SectionGroup) Valid() bool {
	switch g {
	case SectionGroupNone, SectionGroupDiet, SectionGroupExercise:
		return true
	}
	return false
}

type ContactType string

const (
	ContactTypeWebsite ContactType = "website"
	ContactTypeContact ContactType = "contact"
)

func (t ContactType) Valid() bool {
	switch t {
	case ContactTypeWebsite, ContactTypeContact:
		return true
	}
	return false
}

type UserSettings struct {
	ID           string    `json:"id"`
	Religion     string    `json:"religion"`
	DarkMode     bool      `json:"isDarkMode"`
	Email        string    `json:"userEmail"`
	LastEndOfDay string    `json:"lastEndOfDay,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Verse is one religion/category cache row of formatted display strings
// ("quote text\n— reference").
type Verse struct {
	ID         string    `json:"id"`
	Religion   string    `json:"religion"`
	CategoryID string    `json:"categoryId"`
	Verses     []string  `json:"verses"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// VerseText is the unformatted verse shape returned by the generation endpoint.
type VerseText struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type Action struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type JournalEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

type SnapshotTodo struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type TrackerLogLine struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Value     string `json:"value,omitempty"`
}

type GoalLogLine struct {
	Text      string `json:"text"`
	Type      string `json:"type"`
	Completed bool   `json:"completed"`
}

// DailySnapshot is the immutable per-day archive written by the end-of-day
// rollover. CategoryID is empty for the global snapshot.
type DailySnapshot struct {
	ID           string           `json:"id"`
	Date         string           `json:"date"`
	CategoryID   string           `json:"categoryId,omitempty"`
	TodosDone    []SnapshotTodo   `json:"todosDone"`
	TodosNotDone []SnapshotTodo   `json:"todosNotDone"`
	TrackerLog   []TrackerLogLine `json:"trackerLog"`
	GoalsLog     []GoalLogLine    `json:"goalsLog"`
	JournalExtra []string         `json:"journalExtra"`
	CreatedAt    time.Time        `json:"createdAt"`
}

func SnapshotID(date, categoryID string) string {
	if categoryID == "" {
		return "snap_" + date
	}
	return "snap_" + date + "_" + categoryID
}

// TrackerTemplate is a checklist item definition; structural, not reset daily.
type TrackerTemplate struct {
	ID         string           `json:"id"`
	CategoryID string           `json:"categoryId"`
	Type       string           `json:"type"`
	Label      string           `json:"label"`
	FieldType  TrackerFieldType `json:"fieldType"`
	Options    []string         `json:"options,omitempty"`
	Order      int              `json:"order"`
}

// DailyTrackerLog records whether a template was completed on a date.
// One row per (date, template).
type DailyTrackerLog struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	TemplateID string `json:"templateId"`
	Completed  bool   `json:"completed"`
	Value      string `json:"value,omitempty"`
}

type HobbyLink struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	URL        string `json:"url"`
	CategoryID string `json:"categoryId"`
	Order      int    `json:"order"`
}

type Goal struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	GoalType   GoalType  `json:"goalType"`
	CategoryID string    `json:"categoryId"`
	Date       string    `json:"date"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CardSection struct {
	ID         string       `json:"id"`
	CategoryID string       `json:"categoryId"`
	Name       string       `json:"name"`
	Order      int          `json:"order"`
	Removable  bool         `json:"removable"`
	Kind       SectionKind  `json:"kind"`
	Group      SectionGroup `json:"group,omitempty"`
}

type SectionEntry struct {
	ID        string         `json:"id"`
	SectionID string         `json:"sectionId"`
	Name      string         `json:"name"`
	FieldType EntryFieldType `json:"fieldType"`
	Options   []string       `json:"options,omitempty"`
	Order     int            `json:"order"`
}

type DailyGoalItem struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// DailyGoals is one blob of goals per category per day, keyed categoryId_date.
type DailyGoals struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Date       string          `json:"date"`
	Goals      []DailyGoalItem `json:"goals"`
}

type ContactWebsite struct {
	ID          string      `json:"id"`
	CategoryID  string      `json:"categoryId"`
	Type        ContactType `json:"type"`
	LinkOrPhone string      `json:"linkOrPhone"`
	Order       int         `json:"order"`
}

// CategoryData is the free-form per-category blob backing the finance and
// family roster lists.
type CategoryData struct {
	ID        string         `json:"id"`
	Data      map[string]any `json:"data"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type TextTool struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FamilyPerson struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
	ContactNo string `json:"contactNo"`
}

func (p FamilyPerson) RecordID() string { return p.ID }

type Asset struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ProfitPerYear float64 `json:"profitPerYear"`
}

func (a Asset) RecordID() string { return a.ID }

type Liability struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CostPerYear float64 `json:"costPerYear"`
}

func (l Liability) RecordID() string { return l.ID }

type IncomeRecord struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AmountPerYear float64 `json:"amountPerYear"`
}

func (r IncomeRecord) RecordID() string { return r.ID }

type ExpenseRecord struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AmountPerYear float64 `json:"amountPerYear"`
}

func (r ExpenseRecord) RecordID() string { return r.ID }
