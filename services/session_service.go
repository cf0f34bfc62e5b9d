package services

import (
	"log"
	"sync"
	"time"

	"carecompanion/dashboard"
	"carecompanion/models"
	"carecompanion/remote"
)

// Sample recordings shown until real ones are uploaded.
var sampleRecordings = []models.Recording{
	{
		ID:   "sample-1",
		Name: "Message from Sarah",
		URL:  "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
	},
	{
		ID:   "sample-2",
		Name: "Reminder from John",
		URL:  "https://interactive-examples.mdn.mozilla.net/media/cc0-audio/t-rex-roar.mp3",
	},
}

// PlaybackState names the one recording allowed to play at a time.
type PlaybackState struct {
	RecordingID string    `json:"recording_id"`
	URL         string    `json:"url"`
	StartedAt   time.Time `json:"started_at"`
}

// Dashboard is one user's widget state for the lifetime of their session.
// The stores are the source of truth while the session lives; the document
// store only mirrors them. Everything behind mu.
type Dashboard struct {
	mu   sync.Mutex
	mode dashboard.Role

	notes      *dashboard.Store[models.Note]
	todos      *dashboard.Store[models.TodoItem]
	journal    *dashboard.Store[models.JournalEntry]
	calendar   *dashboard.Store[models.CalendarEvent]
	meds       *dashboard.Store[models.Medication]
	recordings *dashboard.Store[models.Recording]

	playing *PlaybackState
}

// SessionManager owns the live dashboards, one per user. It is the only
// path from the HTTP layer to widget state.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Dashboard

	remote  *remote.Client
	confirm *ConfirmBus
	now     func() time.Time

	// upload overrides the S3 media upload; tests set it.
	upload func(base64Data, prefix string) (string, error)
}

func NewSessionManager(rc *remote.Client, confirm *ConfirmBus) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Dashboard),
		remote:   rc,
		confirm:  confirm,
		now:      time.Now,
	}
}

// Dashboard returns the user's live dashboard, opening one on first use.
// Opening loads the mirrored collections, resets stale medication checks
// and seeds sample recordings; todos and journal have nothing stored and
// start empty. Mode starts as patient, matching the app's home screen.
func (m *SessionManager) Dashboard(user *models.User) *Dashboard {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d, ok := m.sessions[user.UserID]; ok {
		return d
	}

	d := &Dashboard{
		mode:       dashboard.Patient,
		notes:      newNotesStore(),
		todos:      newTodosStore(),
		journal:    newJournalStore(),
		calendar:   newCalendarStore(),
		meds:       newMedsStore(),
		recordings: newRecordingsStore(),
	}
	m.load(user.UserID, d)
	m.sessions[user.UserID] = d
	return d
}

// Close discards the user's session state. Anything never mirrored is
// gone, which is how the widgets have always behaved.
func (m *SessionManager) Close(userID string) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}

// load replaces the fresh stores with whatever the document store has.
// A load failure leaves that widget empty; the session still opens.
func (m *SessionManager) load(userID string, d *Dashboard) {
	defer func() {
		if d.recordings.Len() == 0 {
			d.recordings.Replace(sampleRecordings)
		}
	}()
	if m.remote == nil {
		return
	}

	if docs, err := m.remote.Notes.ListForUser(userID); err != nil {
		log.Printf("notes load failed: %v", err)
	} else {
		notes := make([]models.Note, 0, len(docs))
		for _, doc := range docs {
			notes = append(notes, models.NoteFromDoc(doc))
		}
		d.notes.Replace(notes)
	}

	if docs, err := m.remote.Meds.ListForUser(userID); err != nil {
		log.Printf("meds load failed: %v", err)
	} else {
		meds := make([]models.Medication, 0, len(docs))
		for _, doc := range docs {
			meds = append(meds, models.MedicationFromDoc(doc))
		}
		d.meds.Replace(resetStaleMedChecks(meds, m.now().Format(models.DayLayout)))
	}

	if docs, err := m.remote.Calendar.ListForUser(userID); err != nil {
		log.Printf("calendar load failed: %v", err)
	} else {
		events := make([]models.CalendarEvent, 0, len(docs))
		for _, doc := range docs {
			events = append(events, models.CalendarEventFromDoc(doc))
		}
		d.calendar.Replace(events)
	}

	if docs, err := m.remote.Records.ListForUser(userID); err != nil {
		log.Printf("records load failed: %v", err)
	} else {
		recs := make([]models.Recording, 0, len(docs))
		for _, doc := range docs {
			recs = append(recs, models.RecordingFromDoc(doc))
		}
		d.recordings.Replace(recs)
	}
}

// Mode reports the dashboard's current mode.
func (m *SessionManager) Mode(user *models.User) dashboard.Role {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// SetMode flips the patient/family switch for the session.
func (m *SessionManager) SetMode(user *models.User, mode dashboard.Role) error {
	if !dashboard.ValidRole(mode) {
		return dashboard.InvalidFormat("mode")
	}
	d := m.Dashboard(user)
	d.mu.Lock()
	d.mode = mode
	d.mu.Unlock()
	return nil
}

// mirror runs a document store write after the local mutation has already
// committed. It never blocks the caller and a failure is only logged; the
// stores are not rolled back, so local and stored state may diverge until
// the next session open.
func (m *SessionManager) mirror(widget string, fn func() error) {
	if m.remote == nil {
		return
	}
	go func() {
		if err := fn(); err != nil {
			log.Printf("%s mirror failed: %v", widget, err)
		}
	}()
}
