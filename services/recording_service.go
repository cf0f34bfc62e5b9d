package services

import (
	"strings"

	"carecompanion/dashboard"
	"carecompanion/models"
	"carecompanion/utils"

	"github.com/google/uuid"
)

type RecordingUpload struct {
	Name        string `json:"name"`
	AudioBase64 string `json:"audio_base64"` // "data:audio/...;base64,..."
}

func (m *SessionManager) ListRecordings(user *models.User) []models.Recording {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.recordings.View()
}

// UploadRecording stores the audio in S3, adds the recording to the
// session and mirrors it into the records collection.
func (m *SessionManager) UploadRecording(user *models.User, in RecordingUpload) (models.Recording, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Recording{}, dashboard.Required("name")
	}
	if in.AudioBase64 == "" {
		return models.Recording{}, dashboard.Required("audio_base64")
	}

	d := m.Dashboard(user)
	d.mu.Lock()
	allowed := recordingsPolicy.Allows(d.mode, dashboard.OpCreate)
	d.mu.Unlock()
	// check the gate before paying for an upload
	if !allowed {
		return models.Recording{}, dashboard.ErrNotAllowed
	}

	url, err := m.uploadMedia(in.AudioBase64, "recordings/"+user.UserID)
	if err != nil {
		return models.Recording{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	rec := models.Recording{
		ID:   uuid.NewString(),
		Name: name,
		URL:  url,
	}
	created, err := d.recordings.Create(d.mode, rec)
	if err != nil {
		return models.Recording{}, err
	}

	m.mirror("recordings", func() error {
		_, err := m.remote.Records.Create(user.UserID, created.Doc(user.UserID))
		return err
	})
	m.confirm.Emit(user.ID, "created", "recordings", "Recording uploaded.")
	return created, nil
}

// PlayRecording makes the recording the session's one playing resource.
// Whatever was playing before is implicitly stopped.
func (m *SessionManager) PlayRecording(user *models.User, id string) (*PlaybackState, error) {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.recordings.Get(id)
	if !ok {
		return nil, dashboard.ErrNotFound
	}

	d.playing = &PlaybackState{
		RecordingID: rec.ID,
		URL:         rec.URL,
		StartedAt:   m.now(),
	}
	return d.playing, nil
}

// PausePlayback stops whatever is playing, if anything.
func (m *SessionManager) PausePlayback(user *models.User) {
	d := m.Dashboard(user)
	d.mu.Lock()
	d.playing = nil
	d.mu.Unlock()
}

// Playback reports the currently playing recording, or nil.
func (m *SessionManager) Playback(user *models.User) *PlaybackState {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.playing
}

func (m *SessionManager) uploadMedia(base64Data, prefix string) (string, error) {
	if m.upload != nil {
		return m.upload(base64Data, prefix)
	}
	return utils.UploadBase64ToS3(base64Data, prefix)
}
