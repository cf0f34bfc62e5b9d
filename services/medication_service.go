package services

import (
	"strings"

	"carecompanion/models"

	"github.com/google/uuid"
)

// resetStaleMedChecks clears takenToday on every medication whose check is
// from a day other than today. Runs once per session open.
func resetStaleMedChecks(meds []models.Medication, today string) []models.Medication {
	out := make([]models.Medication, len(meds))
	for i, med := range meds {
		if med.LastTakenDate != today {
			med.TakenToday = false
		}
		out[i] = med
	}
	return out
}

type MedicationInput struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Time   string `json:"time"` // 24h "HH:mm"
}

func (m *SessionManager) ListMedications(user *models.User) []models.Medication {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.meds.View()
}

func (m *SessionManager) CreateMedication(user *models.User, in MedicationInput) (models.Medication, error) {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	med := models.Medication{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(in.Name),
		Dosage: strings.TrimSpace(in.Dosage),
		Time:   strings.TrimSpace(in.Time),
	}
	created, err := d.meds.Create(d.mode, med)
	if err != nil {
		return models.Medication{}, err
	}

	m.mirror("medications", func() error {
		_, err := m.remote.Meds.Create(user.UserID, created.Doc(user.UserID))
		return err
	})
	m.confirm.Emit(user.ID, "created", "medications", "Medication added.")
	return created, nil
}

func (m *SessionManager) UpdateMedication(user *models.User, id string, in MedicationInput) (models.Medication, error) {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	updated, err := d.meds.Update(d.mode, id, func(med models.Medication) models.Medication {
		med.Name = strings.TrimSpace(in.Name)
		med.Dosage = strings.TrimSpace(in.Dosage)
		med.Time = strings.TrimSpace(in.Time)
		return med
	})
	if err != nil {
		return models.Medication{}, err
	}

	m.mirror("medications", func() error {
		return m.remote.Meds.Update(user.UserID, id, map[string]any{
			"name":   updated.Name,
			"dosage": updated.Dosage,
			"time":   updated.Time,
		})
	})
	m.confirm.Emit(user.ID, "updated", "medications", "Medication updated.")
	return updated, nil
}

// ToggleMedicationTaken flips today's checkbox. Checking stamps the day so
// the next session knows whether the check is still current; unchecking
// keeps the stamp, matching the app.
func (m *SessionManager) ToggleMedicationTaken(user *models.User, id string) (models.Medication, error) {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	today := m.now().Format(models.DayLayout)
	toggled, err := d.meds.Toggle(d.mode, id, func(med models.Medication) models.Medication {
		med.TakenToday = !med.TakenToday
		if med.TakenToday {
			med.LastTakenDate = today
		}
		return med
	})
	if err != nil {
		return models.Medication{}, err
	}

	m.mirror("medications", func() error {
		return m.remote.Meds.Update(user.UserID, id, map[string]any{
			"taken_today":     toggled.TakenToday,
			"last_taken_date": toggled.LastTakenDate,
		})
	})

	msg := "Medication unmarked."
	if toggled.TakenToday {
		msg = "Medication marked as taken."
	}
	m.confirm.Emit(user.ID, "toggled", "medications", msg)
	return toggled, nil
}

// DeleteMedication is local-only; the meds collection has no delete.
func (m *SessionManager) DeleteMedication(user *models.User, id string) error {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.meds.Delete(d.mode, id); err != nil {
		return err
	}
	m.confirm.Emit(user.ID, "deleted", "medications", "Medication removed.")
	return nil
}
