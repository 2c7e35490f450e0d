package models

// Collection names a stored collection.
type Collection string

const (
	CollectionClients  Collection = "clients"
	CollectionProjects Collection = "projects"
	CollectionPayments Collection = "payments"
	CollectionExpenses Collection = "expenses"
	CollectionNotes    Collection = "notes"
	CollectionSettings Collection = "settings"
)

// Op is the kind of write.
type Op int

const (
	OpCreate Op = iota + 1
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

func (o Op) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Project fields that a write-intent may update.
const (
	FieldStatus      = "status"
	FieldTotalPaid   = "totalPaid"
	FieldTasks       = "tasks"
	FieldName        = "name"
	FieldClientID    = "clientId"
	FieldClientName  = "clientName"
	FieldType        = "type"
	FieldValue       = "value"
	FieldDueDate     = "dueDate"
	FieldStartDate   = "startDate"
	FieldDescription = "description"
)

// WriteIntent describes one field-level write the core wants applied to a stored record.
// Updates carry only the changed Fields; Doc is set only when creating a record.
type WriteIntent struct {
	Op         Op             `json:"op"`
	Collection Collection     `json:"collection"`
	ParentID   string         `json:"parentId,omitempty"` // owning project for payments and notes
	ID         string         `json:"id"`
	Fields     map[string]any `json:"fields,omitempty"`
	Doc        any            `json:"doc,omitempty"`
}

// Batch is a group of write-intents that must be applied together or not at all.
type Batch []WriteIntent

// Empty reports whether the batch has nothing to write.
func (b Batch) Empty() bool { return len(b) == 0 }

// UpdateProject builds a partial update of one project.
func UpdateProject(id string, fields map[string]any) WriteIntent {
	return WriteIntent{Op: OpUpdate, Collection: CollectionProjects, ID: id, Fields: fields}
}
