package audit

import (
	"log"

	"gorm.io/gorm"

	"slotbook/models"
)

// Recorder writes audit entries. Failures are logged and swallowed: a logging
// outage must never block or fail the operation being audited.
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

func (r *Recorder) Record(actorID uint, role models.Role, action, target string, meta models.Meta) {
	entry := models.AuditLog{
		ActorID:   actorID,
		ActorRole: role,
		Action:    action,
		Target:    target,
		Metadata:  meta,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		log.Printf("audit: failed to record %s on %s: %v", action, target, err)
	}
}
