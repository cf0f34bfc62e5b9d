package models

import "time"

// DayLayout formats a calendar day the way lastTakenDate stores it.
const DayLayout = "2006-01-02"

// Medication is a medication tracker record. TakenToday only means
// anything for the current day: LastTakenDate records when the box was
// last checked, and a session opened on a later day clears the check.
type Medication struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Dosage        string `json:"dosage"`
	Time          string `json:"time"` // 24h "HH:mm"
	TakenToday    bool   `json:"taken_today"`
	LastTakenDate string `json:"last_taken_date,omitempty"` // "YYYY-MM-DD"
}

func (m Medication) ItemID() string { return m.ID }

// MedicationDoc is a document in the meds collection.
type MedicationDoc struct {
	ID            string `gorm:"primaryKey;size:64"`
	UserID        string `gorm:"column:user_id;index;not null"`
	Name          string
	Dosage        string
	Time          string `gorm:"size:5"`
	TakenToday    bool
	LastTakenDate string `gorm:"size:10"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (MedicationDoc) TableName() string { return "meds" }

func MedicationFromDoc(d MedicationDoc) Medication {
	return Medication{
		ID:            d.ID,
		Name:          d.Name,
		Dosage:        d.Dosage,
		Time:          d.Time,
		TakenToday:    d.TakenToday,
		LastTakenDate: d.LastTakenDate,
	}
}

func (m Medication) Doc(userID string) MedicationDoc {
	return MedicationDoc{
		ID:            m.ID,
		UserID:        userID,
		Name:          m.Name,
		Dosage:        m.Dosage,
		Time:          m.Time,
		TakenToday:    m.TakenToday,
		LastTakenDate: m.LastTakenDate,
	}
}
