package request

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Kind identifies one of the four request categories. Each kind lives in its
// own table; the shared shape below is what they all have in common.
type Kind string

const (
	KindInternship Kind = "internship"
	KindLeave      Kind = "leave"
	KindIDCard     Kind = "idcard"
	KindHackathon  Kind = "hackathon"
)

// KindConfig is the per-kind policy the lifecycle engine is parameterized
// by: which optional fields are mandatory and where records are stored.
type KindConfig struct {
	Table              string
	Label              string
	RequiresInstitute  bool
	RequiresReason     bool
	RequiresAttachment bool
}

var kindConfigs = map[Kind]KindConfig{
	KindInternship: {
		Table:              "internship_requests",
		Label:              "Internship",
		RequiresInstitute:  true,
		RequiresAttachment: true,
	},
	KindLeave: {
		Table:          "leave_requests",
		Label:          "Leave",
		RequiresReason: true,
	},
	KindIDCard: {
		Table:          "id_card_requests",
		Label:          "ID Card",
		RequiresReason: true,
	},
	KindHackathon: {
		Table:              "hackathon_requests",
		Label:              "Hackathon",
		RequiresInstitute:  true,
		RequiresAttachment: true,
	},
}

// Kinds returns every kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindInternship, KindLeave, KindIDCard, KindHackathon}
}

func (k Kind) Valid() bool {
	_, ok := kindConfigs[k]
	return ok
}

func (k Kind) Config() KindConfig {
	return kindConfigs[k]
}

func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	return k, k.Valid()
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Request struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	// Kind is derived from the table a record was loaded from, never stored.
	Kind Kind `gorm:"-"`

	Name       string `gorm:"type:varchar(120);not null"`
	RollNumber string `gorm:"type:varchar(40);not null"`
	College    string `gorm:"type:varchar(120);not null"`
	Branch     string `gorm:"type:varchar(60);not null"`
	Semester   string `gorm:"type:varchar(10);not null"`
	Email      string `gorm:"type:varchar(254);not null;index"`

	Institute string `gorm:"type:varchar(160)"`
	Reason    string `gorm:"type:text"`

	StartDate time.Time `gorm:"type:date;not null;index"`
	EndDate   time.Time `gorm:"type:date;not null"`

	AttachmentRef *string `gorm:"type:varchar(255)"`

	Status          string  `gorm:"type:varchar(20);not null;default:'Pending';index"`
	DecisionRemarks *string `gorm:"type:text"`

	CreatedAt time.Time
}
