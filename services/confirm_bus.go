package services

import (
	"time"

	"carecompanion/models"

	"gorm.io/gorm"
)

// ConfirmBus surfaces the acknowledgement every successful mutation owes
// the user: a stored row, a websocket broadcast to connected clients and a
// push to registered devices. A nil bus (tests) swallows everything.
type ConfirmBus struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

func NewConfirmBus(db *gorm.DB, rt *RealtimeHub, ps *PushService) *ConfirmBus {
	return &ConfirmBus{db: db, rt: rt, ps: ps}
}

func (b *ConfirmBus) Emit(userID uint, action, widget, message string) { // safe to call anywhere
	if b == nil || b.db == nil {
		return
	}
	c := &models.Confirmation{
		UserID:    userID,
		Action:    action,
		Widget:    widget,
		Message:   message,
		CreatedAt: time.Now(),
	}
	_ = b.db.Create(c).Error

	if b.rt != nil {
		b.rt.Broadcast(userID, map[string]any{
			"kind":         "confirmation",
			"confirmation": c,
		})
	}
	if b.ps != nil {
		b.ps.PushToUser(userID, "Care Companion", message, map[string]string{
			"widget": widget, "action": action,
		})
	}
}

// Recent returns the user's latest confirmations, newest first.
func (b *ConfirmBus) Recent(userID uint, limit int) ([]models.Confirmation, error) {
	if b == nil || b.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	var out []models.Confirmation
	err := b.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
