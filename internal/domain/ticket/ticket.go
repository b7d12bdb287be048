package ticket

import (
	"fmt"
	"time"

	vo "atgs/internal/domain/ticket/valueobjects"
)

// DefaultDepartment is used when a submission does not name a department.
const DefaultDepartment = "Tykeson"

// Ticket is a student support request. Tickets are created by students and
// later triaged by advisors and admins; they are never deleted.
type Ticket struct {
	id          uint
	authorID    uint
	assigneeID  *uint
	department  string
	priority    *int
	subject     string
	message     string
	status      vo.Status
	createdAt   time.Time
	lastUpdated time.Time
}

// NewTicket creates a ticket for submission. Status starts open, the
// department falls back to DefaultDepartment, and both timestamps are set to
// the current time.
func NewTicket(authorID uint, department string, priority *int, subject, message string) (*Ticket, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if department == "" {
		department = DefaultDepartment
	}

	now := time.Now()

	return &Ticket{
		authorID:    authorID,
		department:  department,
		priority:    priority,
		subject:     subject,
		message:     message,
		status:      vo.StatusOpen,
		createdAt:   now,
		lastUpdated: now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from storage.
func ReconstructTicket(
	id uint,
	authorID uint,
	assigneeID *uint,
	department string,
	priority *int,
	subject string,
	message string,
	status vo.Status,
	createdAt time.Time,
	lastUpdated time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Ticket{
		id:          id,
		authorID:    authorID,
		assigneeID:  assigneeID,
		department:  department,
		priority:    priority,
		subject:     subject,
		message:     message,
		status:      status,
		createdAt:   createdAt,
		lastUpdated: lastUpdated,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) AuthorID() uint {
	return t.authorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Department() string {
	return t.department
}

func (t *Ticket) Priority() *int {
	return t.priority
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Message() string {
	return t.message
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) LastUpdated() time.Time {
	return t.lastUpdated
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignTo sets the assignee. Part of the triage path exercised by seeding;
// the HTTP mutation route is not wired yet.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = &assigneeID
	t.lastUpdated = time.Now()
	return nil
}

// ChangeStatus moves the ticket to a new lifecycle state.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	t.status = newStatus
	t.lastUpdated = time.Now()
	return nil
}
